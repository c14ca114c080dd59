package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/punter"
)

// Ensure Fetcher implements punter.Fetcher at compile time.
var _ punter.Fetcher = (*Fetcher)(nil)

// Fetcher reads previously saved wiki pages from a local directory,
// letting the source base point at archived files instead of a URL.
type Fetcher struct {
	baseDir string
}

// NewFetcher creates a Fetcher reading from the given base directory.
func NewFetcher(baseDir string) *Fetcher {
	return &Fetcher{baseDir: baseDir}
}

// Fetch reads the file saved for the wiki path.
// Returns ENOTFOUND if no such file exists.
func (f *Fetcher) Fetch(ctx context.Context, path string) (string, error) {
	full := filepath.Join(f.baseDir, PathToFile(path))

	content, err := os.ReadFile(full)
	if os.IsNotExist(err) {
		return "", punter.Errorf(punter.ENOTFOUND, "no saved page for %q at %s", path, full)
	}
	if err != nil {
		return "", err
	}

	return string(content), nil
}

// Close releases resources; a no-op for local files.
func (f *Fetcher) Close() error {
	return nil
}
