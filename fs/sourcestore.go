package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/punter"
	"golang.org/x/net/html"
)

// Ensure SourceStore implements punter.SourceStore at compile time.
var _ punter.SourceStore = (*SourceStore)(nil)

// SourceStore archives raw fetched pages under a base directory.
// Markup is normalized through an HTML parse/render pass so saved
// sources stay stable and diffable across runs.
type SourceStore struct {
	baseDir string
}

// NewSourceStore creates a SourceStore writing to the given directory.
func NewSourceStore(baseDir string) *SourceStore {
	return &SourceStore{baseDir: baseDir}
}

// SaveSource writes the page content for path to disk.
func (s *SourceStore) SaveSource(ctx context.Context, path, content string) error {
	full := filepath.Join(s.baseDir, PathToFile(path))

	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return err
	}

	normalized, err := normalizeHTML(content)
	if err != nil {
		return err
	}

	return os.WriteFile(full, []byte(normalized), 0644)
}

// normalizeHTML reparses and re-renders the markup, fixing unclosed
// tags and normalizing attribute quoting the way the parser sees it.
func normalizeHTML(content string) (string, error) {
	node, err := html.Parse(strings.NewReader(content))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if err := html.Render(&b, node); err != nil {
		return "", err
	}
	return b.String(), nil
}
