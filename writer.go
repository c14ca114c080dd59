package punter

import "context"

// UnitWriter serializes a unit set to an output.
type UnitWriter interface {
	WriteUnits(ctx context.Context, units UnitSet) error
}
