package scrape_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/punter"
	"github.com/fwojciec/punter/mock"
	"github.com/fwojciec/punter/scrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// testPages is a fake wiki: the index table lists two units, each
// with its own detail page.
var testPages = map[string]string{
	"/Unit":     "index",
	"/Engineer": "engineer page",
	"/Wall":     "wall page",
}

func testTable() punter.UnitSet {
	return punter.UnitSet{
		"Engineer": {Name: "Engineer", Links: punter.Links{Path: "/Engineer"}},
		"Wall":     {Name: "Wall", Links: punter.Links{Path: "/Wall"}},
	}
}

func testScraper() *scrape.Scraper {
	return &scrape.Scraper{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				content, ok := testPages[path]
				if !ok {
					return "", punter.Errorf(punter.ENOTFOUND, "page not found: %s", path)
				}
				return content, nil
			},
		},
		Tables: &mock.TableParser{
			ParseTableFn: func(html string) (punter.UnitSet, error) {
				return testTable(), nil
			},
		},
		Units: &mock.UnitParser{
			ParseUnitFn: func(html string) (*punter.UnitDetail, error) {
				return &punter.UnitDetail{
					Abilities: "parsed: " + html,
					Position:  "Middle Far Right",
				}, nil
			},
		},
		RetryDelays: []time.Duration{},
		Logger:      discardLogger(),
	}
}

func TestScraper_FetchUnits(t *testing.T) {
	t.Parallel()

	t.Run("fetches and merges details for all units", func(t *testing.T) {
		t.Parallel()

		s := testScraper()

		units, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Equal(t, "parsed: engineer page", units["Engineer"].Abilities)
		assert.Equal(t, "parsed: wall page", units["Wall"].Abilities)
		assert.Equal(t, "/Engineer", units["Engineer"].Links.Path)
	})

	t.Run("include list returns exactly those units", func(t *testing.T) {
		t.Parallel()

		s := testScraper()

		units, err := s.FetchUnits(context.Background(), punter.FetchRequest{
			Include: []string{"Wall", "Gauss Cannon"},
		})

		require.NoError(t, err)
		assert.Equal(t, []string{"Wall"}, units.Names())
	})

	t.Run("missing detail page keeps table fields", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Tables = &mock.TableParser{
			ParseTableFn: func(html string) (punter.UnitSet, error) {
				return punter.UnitSet{
					"Engineer": {Name: "Engineer", Links: punter.Links{Path: "/Engineer"}},
					"Ghost":    {Name: "Ghost", Links: punter.Links{Path: "/Ghost"}},
				}, nil
			},
		}

		units, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Empty(t, units["Ghost"].Abilities)
		assert.Equal(t, "/Ghost", units["Ghost"].Links.Path)
		assert.Equal(t, "parsed: engineer page", units["Engineer"].Abilities)
	})

	t.Run("malformed detail page keeps table fields", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Units = &mock.UnitParser{
			ParseUnitFn: func(html string) (*punter.UnitDetail, error) {
				return nil, punter.Errorf(punter.EINVALID, "page has no unit title")
			},
		}

		units, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		require.Len(t, units, 2)
		assert.Empty(t, units["Engineer"].Abilities)
	})

	t.Run("unavailable index is fatal", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				return "", errors.New("connection refused")
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.Error(t, err)
		assert.Equal(t, punter.EUNAVAILABLE, punter.ErrorCode(err))
	})

	t.Run("empty index page is fatal", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				return "", nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.Error(t, err)
		assert.Equal(t, punter.EUNAVAILABLE, punter.ErrorCode(err))
	})

	t.Run("index with no units is fatal", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Tables = &mock.TableParser{
			ParseTableFn: func(html string) (punter.UnitSet, error) {
				return punter.UnitSet{}, nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.Error(t, err)
		assert.Equal(t, punter.EINVALID, punter.ErrorCode(err))
	})

	t.Run("cache hits skip the fetcher", func(t *testing.T) {
		t.Parallel()

		var fetched []string
		var mu sync.Mutex

		s := testScraper()
		s.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, path string) (string, error) {
				mu.Lock()
				fetched = append(fetched, path)
				mu.Unlock()
				return testPages[path], nil
			},
		}
		s.Cache = &mock.SourceCache{
			GetFn: func(ctx context.Context, path string) (string, bool, error) {
				if path == "/Engineer" {
					return "cached engineer page", true, nil
				}
				return "", false, nil
			},
			PutFn: func(ctx context.Context, path, html string) error {
				return nil
			},
		}

		units, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		assert.Equal(t, "parsed: cached engineer page", units["Engineer"].Abilities)
		assert.NotContains(t, fetched, "/Engineer")
		assert.Contains(t, fetched, "/Wall")
	})

	t.Run("fetched pages are written to the cache", func(t *testing.T) {
		t.Parallel()

		stored := make(map[string]string)
		var mu sync.Mutex

		s := testScraper()
		s.Cache = &mock.SourceCache{
			GetFn: func(ctx context.Context, path string) (string, bool, error) {
				return "", false, nil
			},
			PutFn: func(ctx context.Context, path, html string) error {
				mu.Lock()
				stored[path] = html
				mu.Unlock()
				return nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		assert.Equal(t, "index", stored["/Unit"])
		assert.Equal(t, "engineer page", stored["/Engineer"])
	})

	t.Run("save source archives every fetched page", func(t *testing.T) {
		t.Parallel()

		saved := make(map[string]string)
		var mu sync.Mutex

		s := testScraper()
		s.Store = &mock.SourceStore{
			SaveSourceFn: func(ctx context.Context, path, html string) error {
				mu.Lock()
				saved[path] = html
				mu.Unlock()
				return nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{SaveSource: true})

		require.NoError(t, err)
		assert.Len(t, saved, 3)
		assert.Equal(t, "index", saved["/Unit"])
	})

	t.Run("source is not archived without the flag", func(t *testing.T) {
		t.Parallel()

		s := testScraper()
		s.Store = &mock.SourceStore{
			SaveSourceFn: func(ctx context.Context, path, html string) error {
				t.Errorf("unexpected SaveSource call for %s", path)
				return nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
	})

	t.Run("limiter paces every fetch", func(t *testing.T) {
		t.Parallel()

		var waits int
		var mu sync.Mutex

		s := testScraper()
		s.Limiter = &mock.Limiter{
			WaitFn: func(ctx context.Context) error {
				mu.Lock()
				waits++
				mu.Unlock()
				return nil
			},
		}

		_, err := s.FetchUnits(context.Background(), punter.FetchRequest{})

		require.NoError(t, err)
		assert.Equal(t, 3, waits) // index + 2 detail pages
	})
}
