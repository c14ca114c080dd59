package mock

import (
	"context"

	"github.com/fwojciec/punter"
)

var _ punter.SourceStore = (*SourceStore)(nil)

// SourceStore is a mock implementation of punter.SourceStore.
type SourceStore struct {
	SaveSourceFn func(ctx context.Context, path, html string) error
}

func (s *SourceStore) SaveSource(ctx context.Context, path, html string) error {
	return s.SaveSourceFn(ctx, path, html)
}

var _ punter.SourceCache = (*SourceCache)(nil)

// SourceCache is a mock implementation of punter.SourceCache.
type SourceCache struct {
	GetFn func(ctx context.Context, path string) (string, bool, error)
	PutFn func(ctx context.Context, path, html string) error
}

func (c *SourceCache) Get(ctx context.Context, path string) (string, bool, error) {
	return c.GetFn(ctx, path)
}

func (c *SourceCache) Put(ctx context.Context, path, html string) error {
	return c.PutFn(ctx, path, html)
}
