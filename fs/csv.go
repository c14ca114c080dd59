package fs

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/fwojciec/punter"
)

// Columns is the fixed CSV column order. The explicit list keeps
// exports diffable instead of following struct or map order.
var Columns = []string{
	"name", "supply", "type", "position", "unit_spell",
	"gold", "blue", "red", "green", "energy",
	"attack", "health", "blocker", "fragile",
	"frontline", "prompt", "lifespan", "stamina",
	"build_time", "exhaust_ability", "exhaust_turn",
	"abilities", "path", "image", "panel",
	"change_history",
}

// Ensure CSVWriter implements punter.UnitWriter at compile time.
var _ punter.UnitWriter = (*CSVWriter)(nil)

// CSVWriter exports a unit set as a flat CSV file, one row per unit,
// rows sorted by unit name.
type CSVWriter struct {
	path string
}

// NewCSVWriter creates a CSVWriter targeting the given file path.
func NewCSVWriter(path string) *CSVWriter {
	return &CSVWriter{path: path}
}

// WriteUnits serializes the set to disk. I/O errors are returned
// verbatim; export failures are never silent.
func (w *CSVWriter) WriteUnits(ctx context.Context, units punter.UnitSet) error {
	for _, unit := range units {
		if err := unit.Validate(); err != nil {
			return err
		}
	}

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(w.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", w.path, err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err := cw.Write(Columns); err != nil {
		return err
	}
	for _, name := range units.Names() {
		if err := cw.Write(flattenUnit(units[name])); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}

	return f.Close()
}

// flattenUnit produces the row values in Columns order.
func flattenUnit(u *punter.Unit) []string {
	return []string{
		u.Name,
		strconv.Itoa(u.Attributes.Supply),
		strconv.Itoa(u.Type),
		u.Position,
		u.UnitSpell,
		strconv.Itoa(u.Costs.Gold),
		strconv.Itoa(u.Costs.Blue),
		strconv.Itoa(u.Costs.Red),
		strconv.Itoa(u.Costs.Green),
		strconv.Itoa(u.Costs.Energy),
		strconv.Itoa(u.Stats.Attack),
		strconv.Itoa(u.Stats.Health),
		strconv.FormatBool(u.Attributes.Blocker),
		strconv.FormatBool(u.Attributes.Fragile),
		strconv.FormatBool(u.Attributes.Frontline),
		strconv.FormatBool(u.Attributes.Prompt),
		strconv.Itoa(u.Attributes.Lifespan),
		strconv.Itoa(u.Attributes.Stamina),
		strconv.Itoa(u.Attributes.BuildTime),
		strconv.Itoa(u.Attributes.ExhaustAbility),
		strconv.Itoa(u.Attributes.ExhaustTurn),
		u.Abilities,
		u.Links.Path,
		u.Links.Image,
		u.Links.Panel,
		flattenChangeHistory(u.ChangeHistory),
	}
}

// flattenChangeHistory folds the nested change log into a single cell:
// "date, change change|date, change".
func flattenChangeHistory(history map[string][]string) string {
	if len(history) == 0 {
		return ""
	}

	days := make([]string, 0, len(history))
	for day := range history {
		days = append(days, day)
	}
	sort.Strings(days)

	parts := make([]string, 0, len(days))
	for _, day := range days {
		parts = append(parts, fmt.Sprintf("%s, %s", day, strings.Join(history[day], " ")))
	}
	return strings.Join(parts, "|")
}
