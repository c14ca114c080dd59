package punter

// TableParser parses the unit index table into unit records.
type TableParser interface {
	// ParseTable extracts one record per table row. Rows that do not
	// match the table schema are skipped.
	ParseTable(html string) (UnitSet, error)
}

// UnitParser parses a unit's own wiki page into detail fields.
type UnitParser interface {
	// ParseUnit extracts abilities, change history and links.
	// Returns EINVALID if the page does not look like a unit page.
	ParseUnit(html string) (*UnitDetail, error)
}
