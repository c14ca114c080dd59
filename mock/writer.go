package mock

import (
	"context"

	"github.com/fwojciec/punter"
)

var _ punter.UnitWriter = (*UnitWriter)(nil)

// UnitWriter is a mock implementation of punter.UnitWriter.
type UnitWriter struct {
	WriteUnitsFn func(ctx context.Context, units punter.UnitSet) error
}

func (w *UnitWriter) WriteUnits(ctx context.Context, units punter.UnitSet) error {
	return w.WriteUnitsFn(ctx, units)
}
