// Package goquery parses the wiki's semi-structured HTML into unit
// records, normalizing inconsistent source formatting along the way.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/punter"
)

// unitTableColumns is the number of cells a well-formed unit row
// carries in the index table.
const unitTableColumns = 20

// Index table cell positions.
const (
	colName = iota
	colType
	colUnitSpell
	colGold
	colEnergy
	colGreen
	colBlue
	colRed
	colSupply
	colBuildTime
	colHealth
	colFrontline
	colFragile
	colBlocker
	colPrompt
	colAttack
	colStamina
	colExhaustTurn
	colExhaustAbility
	colLifespan
)

// Ensure TableParser implements punter.TableParser at compile time.
var _ punter.TableParser = (*TableParser)(nil)

// TableParser parses the wiki's unit index table into unit records.
type TableParser struct{}

// NewTableParser creates a new TableParser.
func NewTableParser() *TableParser {
	return &TableParser{}
}

// ParseTable extracts one record per row of the first table in the
// document. Rows without data cells (headers) are skipped, as are
// rows with fewer cells than the table schema requires. Duplicate
// names keep the last row so the set stays keyed uniquely by name.
func (p *TableParser) ParseTable(html string) (punter.UnitSet, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, punter.Errorf(punter.EINVALID, "failed to parse HTML: %v", err)
	}

	units := make(punter.UnitSet)
	doc.Find("table").First().Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < unitTableColumns {
			return
		}
		unit := parseRow(cells)
		if unit.Name == "" {
			return
		}
		units[unit.Name] = unit
	})

	return units, nil
}

func parseRow(cells *goquery.Selection) *punter.Unit {
	unit := &punter.Unit{
		Name:      cellText(cells.Eq(colName)),
		Type:      cellInt(cells.Eq(colType)),
		UnitSpell: cellText(cells.Eq(colUnitSpell)),
		Costs: punter.Costs{
			Gold:   cellInt(cells.Eq(colGold)),
			Energy: cellInt(cells.Eq(colEnergy)),
			Green:  cellInt(cells.Eq(colGreen)),
			Blue:   cellInt(cells.Eq(colBlue)),
			Red:    cellInt(cells.Eq(colRed)),
		},
		Stats: punter.Stats{
			Attack: cellInt(cells.Eq(colAttack)),
			Health: cellInt(cells.Eq(colHealth)),
		},
		Attributes: punter.Attributes{
			Supply:         cellInt(cells.Eq(colSupply)),
			Frontline:      cellSet(cells.Eq(colFrontline)),
			Fragile:        cellSet(cells.Eq(colFragile)),
			Blocker:        cellSet(cells.Eq(colBlocker)),
			Prompt:         cellSet(cells.Eq(colPrompt)),
			Stamina:        cellInt(cells.Eq(colStamina)),
			Lifespan:       cellInt(cells.Eq(colLifespan)),
			BuildTime:      cellInt(cells.Eq(colBuildTime)),
			ExhaustTurn:    cellInt(cells.Eq(colExhaustTurn)),
			ExhaustAbility: cellInt(cells.Eq(colExhaustAbility)),
		},
	}

	if href, ok := cells.Eq(colName).Find("a").First().Attr("href"); ok {
		unit.Links.Path = href
	}

	return unit
}

// cellText returns the cell's text, preferring an inner div when the
// wiki wraps the value in one.
func cellText(cell *goquery.Selection) string {
	if div := cell.Find("div").First(); div.Length() > 0 {
		cell = div
	}
	return strings.TrimSpace(cell.Text())
}

// cellInt parses the cell as an integer. Empty and icon-only cells
// default to zero; the source is not consistent about marking them.
func cellInt(cell *goquery.Selection) int {
	n, err := strconv.Atoi(cellText(cell))
	if err != nil {
		return 0
	}
	return n
}

// cellSet reports whether the cell carries a value at all: boolean
// attributes are marked with an icon or any non-empty text.
func cellSet(cell *goquery.Selection) bool {
	if cell.Find("img").Length() > 0 {
		return true
	}
	return cellText(cell) != ""
}
