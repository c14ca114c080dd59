package scrape

import (
	"context"

	"github.com/fwojciec/punter"
	"golang.org/x/time/rate"
)

// Ensure Limiter implements punter.Limiter at compile time.
var _ punter.Limiter = (*Limiter)(nil)

// Limiter throttles requests to the wiki using a token bucket with a
// burst of 1, so consecutive fetches are evenly spaced.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a Limiter allowing rps requests per second.
func NewLimiter(rps float64) *Limiter {
	return &Limiter{limiter: rate.NewLimiter(rate.Limit(rps), 1)}
}

// Wait blocks until the rate limit allows the next request.
// Returns an error if the context is canceled before the wait
// completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
