// Package leaderboard keeps a Redis ZSET of article views so the top-pranks
// listing never sorts the whole collection per request.
package leaderboard

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"prankpress/internal/store"
	"prankpress/pkg/logger"
)

const key = "prankpress:leaderboard"

type Entry struct {
	Slug     string `json:"slug"`
	Headline string `json:"headline"`
	Views    int64  `json:"views"`
}

type Board struct {
	rdb   *redis.Client
	store store.Store
	size  int
	cron  *cron.Cron
}

func New(rdb *redis.Client, s store.Store, size int) *Board {
	if size <= 0 {
		size = 100
	}
	return &Board{rdb: rdb, store: s, size: size}
}

// Bump records one view. Best effort: a dead Redis only costs the listing,
// never the article page.
func (b *Board) Bump(ctx context.Context, slug string) {
	if err := b.rdb.ZIncrBy(ctx, key, 1, slug).Err(); err != nil {
		logger.Warn("leaderboard bump failed", zap.String("slug", slug), zap.Error(err))
	}
}

// Top returns the n most-viewed articles. Headlines and authoritative view
// counts come from the store; the ZSET only ranks. Redis being unreachable
// degrades to an empty listing.
func (b *Board) Top(ctx context.Context, n int) []Entry {
	if n <= 0 || n > b.size {
		n = b.size
	}
	zs, err := b.rdb.ZRevRangeWithScores(ctx, key, 0, int64(n-1)).Result()
	if err != nil {
		logger.Warn("leaderboard read failed", zap.Error(err))
		return []Entry{}
	}

	out := make([]Entry, 0, len(zs))
	for _, z := range zs {
		slug, ok := z.Member.(string)
		if !ok {
			continue
		}
		e := Entry{Slug: slug, Views: int64(z.Score)}
		if a, err := b.store.FindBySlug(ctx, slug); err == nil && a != nil {
			e.Headline = a.Headline
			e.Views = a.Views
		}
		out = append(out, e)
	}
	return out
}

// Rebuild replaces the ZSET from the store, recovering the listing after a
// Redis restart and repairing drift from missed bumps.
func (b *Board) Rebuild(ctx context.Context) error {
	articles, err := b.store.TopByViews(ctx, b.size)
	if err != nil {
		return err
	}

	members := make([]*redis.Z, 0, len(articles))
	for _, a := range articles {
		members = append(members, &redis.Z{Score: float64(a.Views), Member: a.Slug})
	}

	pipe := b.rdb.TxPipeline()
	pipe.Del(ctx, key)
	if len(members) > 0 {
		pipe.ZAdd(ctx, key, members...)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// StartRebuilder schedules periodic rebuilds; spec is a cron expression
// such as "@every 5m".
func (b *Board) StartRebuilder(spec string) error {
	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := b.Rebuild(ctx); err != nil {
			logger.Warn("leaderboard rebuild failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	b.cron = c
	return nil
}

func (b *Board) Stop() {
	if b.cron != nil {
		b.cron.Stop()
	}
}
