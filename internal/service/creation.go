package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"prankpress/internal/generate"
	"prankpress/internal/slug"
	"prankpress/internal/store"
	"prankpress/pkg/errors"
	"prankpress/pkg/logger"
	"prankpress/pkg/xerr"
)

// DefaultType is the prank template used when the submission names none.
const DefaultType = "news-article"

// Categories is the fixed vocabulary a stored article may carry. Anything
// the generator returns outside this list falls back to BreakingNews.
var Categories = []string{
	"Food", "Technology", "Education", "Lifestyle",
	"Business", "Entertainment", "Travel",
}

const BreakingNews = "Breaking News"

type CreateRequest struct {
	Headline    string `json:"headline"`
	Description string `json:"description"`
	Type        string `json:"type"`
}

// Creation turns a user submission into a stored, uniquely-addressable
// article and a shareable link.
type Creation struct {
	store   store.Store
	gen     generate.Generator
	baseURL string
}

func NewCreation(s store.Store, g generate.Generator, baseURL string) *Creation {
	return &Creation{store: s, gen: g, baseURL: strings.TrimRight(baseURL, "/")}
}

// Create validates the submission, generates the article body, assigns a
// unique slug and persists the record. A generation failure aborts before
// anything is written; no partial article is ever stored. requestOrigin is
// used for the link when no base URL is configured.
func (c *Creation) Create(ctx context.Context, req CreateRequest, requestOrigin string) (string, error) {
	headline := strings.TrimSpace(req.Headline)
	if headline == "" {
		return "", errors.New(xerr.ErrInvalidInput, "Headline is required.")
	}
	description := strings.TrimSpace(req.Description)
	articleType := strings.TrimSpace(req.Type)
	if articleType == "" {
		articleType = DefaultType
	}

	fields, err := c.gen.Generate(ctx, description)
	if err != nil {
		return "", err
	}

	finalSlug := slug.Slugify(headline)
	if finalSlug == "" {
		finalSlug = fmt.Sprintf("prank-%d", time.Now().UnixMilli())
	}

	// Check-then-act: two identical headlines landing in the same instant
	// can still collide. Acceptable for throwaway prank pages.
	existing, err := c.store.FindBySlug(ctx, finalSlug)
	if err != nil {
		return "", errors.Wrap(xerr.ErrDB, "Failed to create prank link.", err)
	}
	if existing != nil {
		finalSlug = fmt.Sprintf("%s-%d", finalSlug, time.Now().UnixMilli())
	}

	var desc *string
	if description != "" {
		desc = &description
	}
	article := &store.Article{
		Headline:    headline,
		Description: desc,
		Content:     fields.Content,
		SubHeading:  subheadingFor(fields.SubHeading, description),
		Category:    categoryFor(fields.Category, headline),
		Type:        articleType,
		Slug:        finalSlug,
		Views:       0,
	}
	if _, err := c.store.Create(ctx, article); err != nil {
		return "", errors.Wrap(xerr.ErrDB, "Failed to create prank link.", err)
	}

	link := c.Link(finalSlug, requestOrigin)
	logger.Info("article created",
		zap.String("slug", finalSlug),
		zap.String("category", article.Category),
	)
	return link, nil
}

// Link builds the shareable article link from the configured base URL,
// falling back to the request origin.
func (c *Creation) Link(articleSlug, requestOrigin string) string {
	base := c.baseURL
	if base == "" {
		base = strings.TrimRight(requestOrigin, "/")
	}
	return fmt.Sprintf("%s/article/%s", base, articleSlug)
}

// categoryFor maps the generator's free-text category onto the fixed
// vocabulary, then falls back to headline keywords, then Breaking News.
func categoryFor(raw, headline string) string {
	raw = strings.TrimSpace(raw)
	for _, c := range Categories {
		if strings.EqualFold(raw, c) {
			return c
		}
	}

	h := strings.ToLower(headline)
	switch {
	case containsAny(h, "food", "restaurant", "meal", "mcdonald"):
		return "Food"
	case containsAny(h, "tech", "app", "device", "robot"):
		return "Technology"
	case containsAny(h, "university", "student", "campus", "school"):
		return "Education"
	}
	return BreakingNews
}

// subheadingFor backfills a missing subheading from the submission's
// description, then from a stock line.
func subheadingFor(generated, description string) string {
	if g := strings.TrimSpace(generated); g != "" {
		return g
	}
	if description != "" {
		return description
	}
	return "The announcement has generated significant buzz on social media"
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
