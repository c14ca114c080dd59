// Package etree provides an XML exporter for unit sets.
package etree

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/fwojciec/punter"
)

// Ensure XMLWriter implements punter.UnitWriter at compile time.
var _ punter.UnitWriter = (*XMLWriter)(nil)

// XMLWriter exports a unit set as an XML document, one <unit> element
// per record, sorted by unit name.
type XMLWriter struct {
	path string
}

// NewXMLWriter creates an XMLWriter targeting the given file path.
func NewXMLWriter(path string) *XMLWriter {
	return &XMLWriter{path: path}
}

// WriteUnits serializes the set to disk. I/O errors are returned
// verbatim; export failures are never silent.
func (w *XMLWriter) WriteUnits(ctx context.Context, units punter.UnitSet) error {
	for _, unit := range units {
		if err := unit.Validate(); err != nil {
			return err
		}
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	root := doc.CreateElement("units")

	for _, name := range units.Names() {
		appendUnit(root, units[name])
	}

	doc.Indent(2)

	if dir := filepath.Dir(w.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := doc.WriteToFile(w.path); err != nil {
		return fmt.Errorf("failed to write %s: %w", w.path, err)
	}
	return nil
}

func appendUnit(root *etree.Element, u *punter.Unit) {
	el := root.CreateElement("unit")
	el.CreateAttr("name", u.Name)
	el.CreateAttr("type", strconv.Itoa(u.Type))
	el.CreateAttr("unit_spell", u.UnitSpell)

	costs := el.CreateElement("costs")
	costs.CreateAttr("gold", strconv.Itoa(u.Costs.Gold))
	costs.CreateAttr("energy", strconv.Itoa(u.Costs.Energy))
	costs.CreateAttr("green", strconv.Itoa(u.Costs.Green))
	costs.CreateAttr("blue", strconv.Itoa(u.Costs.Blue))
	costs.CreateAttr("red", strconv.Itoa(u.Costs.Red))

	stats := el.CreateElement("stats")
	stats.CreateAttr("attack", strconv.Itoa(u.Stats.Attack))
	stats.CreateAttr("health", strconv.Itoa(u.Stats.Health))

	attrs := el.CreateElement("attributes")
	attrs.CreateAttr("supply", strconv.Itoa(u.Attributes.Supply))
	attrs.CreateAttr("frontline", strconv.FormatBool(u.Attributes.Frontline))
	attrs.CreateAttr("fragile", strconv.FormatBool(u.Attributes.Fragile))
	attrs.CreateAttr("blocker", strconv.FormatBool(u.Attributes.Blocker))
	attrs.CreateAttr("prompt", strconv.FormatBool(u.Attributes.Prompt))
	attrs.CreateAttr("stamina", strconv.Itoa(u.Attributes.Stamina))
	attrs.CreateAttr("lifespan", strconv.Itoa(u.Attributes.Lifespan))
	attrs.CreateAttr("build_time", strconv.Itoa(u.Attributes.BuildTime))
	attrs.CreateAttr("exhaust_turn", strconv.Itoa(u.Attributes.ExhaustTurn))
	attrs.CreateAttr("exhaust_ability", strconv.Itoa(u.Attributes.ExhaustAbility))

	if u.Abilities != "" {
		el.CreateElement("abilities").SetText(u.Abilities)
	}
	if u.Position != "" {
		el.CreateElement("position").SetText(u.Position)
	}

	links := el.CreateElement("links")
	links.CreateAttr("path", u.Links.Path)
	if u.Links.Image != "" {
		links.CreateAttr("image", u.Links.Image)
	}
	if u.Links.Panel != "" {
		links.CreateAttr("panel", u.Links.Panel)
	}

	if len(u.ChangeHistory) > 0 {
		history := el.CreateElement("change_history")
		days := make([]string, 0, len(u.ChangeHistory))
		for day := range u.ChangeHistory {
			days = append(days, day)
		}
		sort.Strings(days)
		for _, day := range days {
			change := history.CreateElement("change")
			change.CreateAttr("date", day)
			change.SetText(strings.Join(u.ChangeHistory[day], " "))
		}
	}
}
