package punter

import "context"

// SourceStore archives raw page content fetched from the wiki.
type SourceStore interface {
	// SaveSource persists the raw content fetched for path.
	SaveSource(ctx context.Context, path, html string) error
}

// SourceCache caches raw page content between runs.
type SourceCache interface {
	// Get returns the cached content for path. ok is false on a miss.
	Get(ctx context.Context, path string) (html string, ok bool, err error)

	// Put stores the content fetched for path.
	Put(ctx context.Context, path, html string) error
}
