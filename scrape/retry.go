package scrape

import (
	"context"
	"time"

	"github.com/fwojciec/punter"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, path string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetry attempts a fetch with backoff, one attempt per delay
// plus the initial try. Pages that do not exist are not retried; a
// missing wiki page stays missing.
func FetchWithRetry(ctx context.Context, path string, fetch FetchFunc, delays []time.Duration) (string, error) {
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		html, err := fetch(ctx, path)
		if err == nil {
			return html, nil
		}
		if punter.ErrorCode(err) == punter.ENOTFOUND {
			return "", err
		}
		lastErr = err

		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}
