package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/punter"
	"github.com/google/uuid"
)

// Ensure SourceCache implements punter.SourceCache at compile time.
var _ punter.SourceCache = (*SourceCache)(nil)

// SourceCache stores raw fetched pages keyed by wiki path, with a
// content hash so unchanged pages skip the rewrite.
type SourceCache struct {
	db *DB
}

// NewSourceCache creates a SourceCache backed by the given database.
func NewSourceCache(db *DB) *SourceCache {
	return &SourceCache{db: db}
}

// Get returns the cached content for path. ok is false on a miss.
func (c *SourceCache) Get(ctx context.Context, path string) (string, bool, error) {
	var content string
	err := c.db.QueryRowContext(ctx,
		`SELECT content FROM sources WHERE path = ?`, path,
	).Scan(&content)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return content, true, nil
}

// Put stores the content fetched for path, replacing any previous
// version. When the content hash is unchanged the row is left alone,
// preserving the original fetch timestamp.
func (c *SourceCache) Put(ctx context.Context, path, content string) error {
	hash := strconv.FormatUint(xxhash.Sum64String(content), 16)

	var existing string
	err := c.db.QueryRowContext(ctx,
		`SELECT content_hash FROM sources WHERE path = ?`, path,
	).Scan(&existing)
	if err == nil && existing == hash {
		return nil
	}
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	_, err = c.db.ExecContext(ctx, `
		INSERT INTO sources (id, path, content, content_hash, fetched_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			content = excluded.content,
			content_hash = excluded.content_hash,
			fetched_at = excluded.fetched_at`,
		uuid.New().String(), path, content, hash,
		time.Now().UTC().Format(time.RFC3339),
	)
	return err
}
