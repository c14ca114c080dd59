package mock

import (
	"context"

	"github.com/fwojciec/punter"
)

var _ punter.Limiter = (*Limiter)(nil)

// Limiter is a mock implementation of punter.Limiter.
type Limiter struct {
	WaitFn func(ctx context.Context) error
}

func (l *Limiter) Wait(ctx context.Context) error {
	return l.WaitFn(ctx)
}
