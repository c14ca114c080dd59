package slog

import (
	"context"
	"log/slog"

	"github.com/fwojciec/punter"
)

// Ensure LoggingSourceCache implements punter.SourceCache.
var _ punter.SourceCache = (*LoggingSourceCache)(nil)

// LoggingSourceCache wraps a SourceCache with debug logging.
type LoggingSourceCache struct {
	next   punter.SourceCache
	logger *slog.Logger
}

// NewLoggingSourceCache creates a new LoggingSourceCache.
func NewLoggingSourceCache(next punter.SourceCache, logger *slog.Logger) *LoggingSourceCache {
	return &LoggingSourceCache{next: next, logger: logger}
}

// Get delegates to the wrapped cache and logs hit or miss.
func (c *LoggingSourceCache) Get(ctx context.Context, path string) (html string, ok bool, err error) {
	defer func() {
		c.logger.Debug("source cache get", "path", path, "hit", ok, "err", err)
	}()
	return c.next.Get(ctx, path)
}

// Put delegates to the wrapped cache and logs the operation.
func (c *LoggingSourceCache) Put(ctx context.Context, path, html string) (err error) {
	defer func() {
		c.logger.Debug("source cache put", "path", path, "bytes", len(html), "err", err)
	}()
	return c.next.Put(ctx, path, html)
}
