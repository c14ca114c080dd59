package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/punter"
)

// Ensure JSONWriter implements punter.UnitWriter at compile time.
var _ punter.UnitWriter = (*JSONWriter)(nil)

// JSONWriter exports a unit set as an indented JSON document keyed by
// unit name. Map keys marshal sorted, so output is stable across runs.
type JSONWriter struct {
	path string
}

// NewJSONWriter creates a JSONWriter targeting the given file path.
func NewJSONWriter(path string) *JSONWriter {
	return &JSONWriter{path: path}
}

// WriteUnits serializes the set to disk. I/O errors are returned
// verbatim; export failures are never silent.
func (w *JSONWriter) WriteUnits(ctx context.Context, units punter.UnitSet) error {
	for _, unit := range units {
		if err := unit.Validate(); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(units, "", "    ")
	if err != nil {
		return punter.Errorf(punter.EINTERNAL, "failed to encode units: %v", err)
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	if err := os.WriteFile(w.path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}

// ReadUnits reads a previously exported JSON file back into a unit
// set. Exporting and re-importing preserves all fields.
func ReadUnits(path string) (punter.UnitSet, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, punter.Errorf(punter.ENOTFOUND, "no export at %s", path)
	}
	if err != nil {
		return nil, err
	}

	var units punter.UnitSet
	if err := json.Unmarshal(data, &units); err != nil {
		return nil, punter.Errorf(punter.EINVALID, "failed to decode %s: %v", path, err)
	}
	return units, nil
}
