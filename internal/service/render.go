package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"prankpress/internal/leaderboard"
	"prankpress/internal/store"
	"prankpress/pkg/errors"
	"prankpress/pkg/logger"
	"prankpress/pkg/xerr"
)

// ArticleView is an Article prepared for presentation: content split into
// paragraphs, recomputed on every call.
type ArticleView struct {
	*store.Article
	Paragraphs []string
}

// Rendering hands stored article data to presentation, counting the view
// as a side channel of the lookup.
type Rendering struct {
	store store.Store
	board *leaderboard.Board
}

func NewRendering(s store.Store, b *leaderboard.Board) *Rendering {
	return &Rendering{store: s, board: b}
}

// GetArticle looks the article up and bumps its view counter. Counter and
// leaderboard failures are logged, never surfaced; lookup and increment are
// not atomic with respect to each other.
func (r *Rendering) GetArticle(ctx context.Context, articleSlug string) (*ArticleView, error) {
	a, err := r.store.FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, errors.Wrap(xerr.ErrDB, "Failed to load article.", err)
	}
	if a == nil {
		return nil, errors.New(xerr.ErrNotFound, "Article not found.")
	}

	if err := r.store.IncrementViews(ctx, articleSlug); err != nil {
		logger.Warn("view count update failed", zap.String("slug", articleSlug), zap.Error(err))
	} else {
		a.Views++
	}
	if r.board != nil {
		r.board.Bump(ctx, articleSlug)
	}

	return &ArticleView{Article: a, Paragraphs: SplitParagraphs(a.Content)}, nil
}

// Peek returns the article without counting a view; used by the JSON API
// and the QR endpoint.
func (r *Rendering) Peek(ctx context.Context, articleSlug string) (*store.Article, error) {
	a, err := r.store.FindBySlug(ctx, articleSlug)
	if err != nil {
		return nil, errors.Wrap(xerr.ErrDB, "Failed to load article.", err)
	}
	if a == nil {
		return nil, errors.New(xerr.ErrNotFound, "Article not found.")
	}
	return a, nil
}

// SplitParagraphs splits a content block on its blank-line delimiter,
// trimming each paragraph and dropping empty ones.
func SplitParagraphs(content string) []string {
	parts := strings.Split(content, "\n\n")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
