// Package scrape orchestrates the fetch-parse-merge pipeline against
// a wiki source.
package scrape

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/fwojciec/punter"
	"golang.org/x/sync/errgroup"
)

// DefaultUnitsPath is the wiki path of the unit index page.
const DefaultUnitsPath = "/Unit"

// Ensure Scraper implements punter.UnitService at compile time.
var _ punter.UnitService = (*Scraper)(nil)

// Scraper fetches the unit index, filters it, and enriches each
// record with its detail page.
type Scraper struct {
	Fetcher punter.Fetcher
	Tables  punter.TableParser
	Units   punter.UnitParser

	// Limiter, if set, spaces outgoing fetches.
	Limiter punter.Limiter

	// Cache, if set, serves raw pages fetched on earlier runs.
	Cache punter.SourceCache

	// Store, if set, archives raw pages when the request asks for it.
	Store punter.SourceStore

	// UnitsPath is the index page path. Defaults to DefaultUnitsPath.
	UnitsPath string

	// RetryDelays overrides the fetch backoff schedule; nil means
	// DefaultRetryDelays.
	RetryDelays []time.Duration

	Logger *slog.Logger
}

// FetchUnits runs the pipeline for the request. Units whose detail
// page is missing or malformed keep their index-table fields and are
// logged; only a missing or empty index page is fatal.
func (s *Scraper) FetchUnits(ctx context.Context, req punter.FetchRequest) (punter.UnitSet, error) {
	logger := s.logger()
	unitsPath := s.UnitsPath
	if unitsPath == "" {
		unitsPath = DefaultUnitsPath
	}

	logger.Info("fetching units",
		"path", unitsPath,
		"include", req.Include,
		"save_source", req.SaveSource,
	)

	content, err := s.fetch(ctx, unitsPath, req.SaveSource)
	if err != nil {
		return nil, punter.Errorf(punter.EUNAVAILABLE, "unit index unavailable: %v", err)
	}

	table, err := s.Tables.ParseTable(content)
	if err != nil {
		return nil, err
	}
	if len(table) == 0 {
		return nil, punter.Errorf(punter.EINVALID, "no units found at %q", unitsPath)
	}

	units := table.Filter(req.Include)

	g, gctx := errgroup.WithContext(ctx)
	limit := req.Concurrency
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	var mu sync.Mutex
	for _, name := range units.Names() {
		unit := units[name]
		g.Go(func() error {
			detail, err := s.fetchDetail(gctx, unit.Links.Path, req.SaveSource)
			if err != nil {
				if gctx.Err() != nil {
					return gctx.Err()
				}
				logger.Warn("skipping unit details",
					"unit", unit.Name,
					"path", unit.Links.Path,
					"err", err,
				)
				return nil
			}
			mu.Lock()
			unit.Merge(detail)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("units fetched", "count", len(units))
	return units, nil
}

// fetchDetail retrieves and parses one unit's own page.
func (s *Scraper) fetchDetail(ctx context.Context, path string, save bool) (*punter.UnitDetail, error) {
	if path == "" {
		return nil, punter.Errorf(punter.EINVALID, "unit has no page path")
	}

	content, err := s.fetch(ctx, path, save)
	if err != nil {
		return nil, err
	}

	return s.Units.ParseUnit(content)
}

// fetch retrieves raw page content, consulting the cache first and
// archiving the source when asked. Cache and archive failures are
// logged, not fatal.
func (s *Scraper) fetch(ctx context.Context, path string, save bool) (string, error) {
	logger := s.logger()

	if s.Cache != nil {
		content, ok, err := s.Cache.Get(ctx, path)
		if err != nil {
			logger.Warn("source cache read failed", "path", path, "err", err)
		} else if ok {
			return content, nil
		}
	}

	if s.Limiter != nil {
		if err := s.Limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	content, err := FetchWithRetry(ctx, path, s.Fetcher.Fetch, delays)
	if err != nil {
		return "", err
	}
	if content == "" {
		return "", punter.Errorf(punter.ENOTFOUND, "empty page content for %q", path)
	}

	if s.Cache != nil {
		if err := s.Cache.Put(ctx, path, content); err != nil {
			logger.Warn("source cache write failed", "path", path, "err", err)
		}
	}

	if save && s.Store != nil {
		if err := s.Store.SaveSource(ctx, path, content); err != nil {
			logger.Warn("failed to archive source", "path", path, "err", err)
		}
	}

	return content, nil
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.Default()
}
