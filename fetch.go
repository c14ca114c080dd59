package punter

import "context"

// IncludeAll is the sentinel include value selecting every unit.
const IncludeAll = "all"

// FetchRequest describes a scrape run.
type FetchRequest struct {
	// Include lists unit names to fetch. Empty, or containing
	// IncludeAll, selects every unit at the source.
	Include []string

	// SaveSource archives raw fetched pages via the configured
	// SourceStore.
	SaveSource bool

	// Concurrency bounds parallel detail-page fetches.
	// Values below 1 mean sequential fetching.
	Concurrency int
}

// Fetcher retrieves raw page content from a wiki source.
type Fetcher interface {
	// Fetch retrieves the content at path, resolved against the
	// implementation's configured base (a URL or a local directory).
	Fetch(ctx context.Context, path string) (html string, err error)

	// Close releases fetcher resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// Limiter throttles outgoing requests.
type Limiter interface {
	// Wait blocks until the next request is allowed, or the context
	// is canceled.
	Wait(ctx context.Context) error
}

// UnitService fetches and normalizes unit records.
type UnitService interface {
	// FetchUnits retrieves the unit index, filters it by the request's
	// include list, and enriches each remaining record with its
	// detail page. Units whose detail page is missing or malformed
	// keep their index-table fields.
	FetchUnits(ctx context.Context, req FetchRequest) (UnitSet, error)
}
