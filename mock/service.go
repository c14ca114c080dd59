package mock

import (
	"context"

	"github.com/fwojciec/punter"
)

var _ punter.UnitService = (*UnitService)(nil)

// UnitService is a mock implementation of punter.UnitService.
type UnitService struct {
	FetchUnitsFn func(ctx context.Context, req punter.FetchRequest) (punter.UnitSet, error)
}

func (s *UnitService) FetchUnits(ctx context.Context, req punter.FetchRequest) (punter.UnitSet, error) {
	return s.FetchUnitsFn(ctx, req)
}
