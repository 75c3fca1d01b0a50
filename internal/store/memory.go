package store

import (
	"context"
	"sort"
	"strconv"
	"sync"
)

// Memory is an in-process Store for tests and for running the server
// without a Mongo instance. Same contract as Mongo, including the silent
// no-op on incrementing a missing slug.
type Memory struct {
	mu       sync.Mutex
	articles []*Article
	nextID   int
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) FindBySlug(_ context.Context, slug string) (*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.articles {
		if a.Slug == slug {
			cp := *a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *Memory) Create(_ context.Context, a *Article) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *a
	m.articles = append(m.articles, &cp)
	m.nextID++
	return strconv.Itoa(m.nextID), nil
}

func (m *Memory) IncrementViews(_ context.Context, slug string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.articles {
		if a.Slug == slug {
			a.Views++
			return nil
		}
	}
	return nil
}

func (m *Memory) TopByViews(_ context.Context, limit int) ([]*Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Article, 0, len(m.articles))
	for _, a := range m.articles {
		cp := *a
		out = append(out, &cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Views > out[j].Views })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len reports the number of stored articles; test helper.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.articles)
}
