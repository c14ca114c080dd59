package mock

import "github.com/fwojciec/punter"

var _ punter.TableParser = (*TableParser)(nil)

// TableParser is a mock implementation of punter.TableParser.
type TableParser struct {
	ParseTableFn func(html string) (punter.UnitSet, error)
}

func (p *TableParser) ParseTable(html string) (punter.UnitSet, error) {
	return p.ParseTableFn(html)
}

var _ punter.UnitParser = (*UnitParser)(nil)

// UnitParser is a mock implementation of punter.UnitParser.
type UnitParser struct {
	ParseUnitFn func(html string) (*punter.UnitDetail, error)
}

func (p *UnitParser) ParseUnit(html string) (*punter.UnitDetail, error) {
	return p.ParseUnitFn(html)
}
