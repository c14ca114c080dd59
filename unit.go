package punter

import "sort"

// Costs holds the resource costs of a unit.
type Costs struct {
	Gold   int `json:"gold"`
	Energy int `json:"energy"`
	Green  int `json:"green"`
	Blue   int `json:"blue"`
	Red    int `json:"red"`
}

// Stats holds the combat statistics of a unit.
type Stats struct {
	Attack int `json:"attack"`
	Health int `json:"health"`
}

// Attributes holds the remaining gameplay properties of a unit.
type Attributes struct {
	Supply         int  `json:"supply"`
	Frontline      bool `json:"frontline"`
	Fragile        bool `json:"fragile"`
	Blocker        bool `json:"blocker"`
	Prompt         bool `json:"prompt"`
	Stamina        int  `json:"stamina"`
	Lifespan       int  `json:"lifespan"`
	BuildTime      int  `json:"build_time"`
	ExhaustTurn    int  `json:"exhaust_turn"`
	ExhaustAbility int  `json:"exhaust_ability"`
}

// Links holds the wiki URLs associated with a unit. Path comes from
// the unit index table; Image and Panel come from the unit's own page.
type Links struct {
	Path  string `json:"path"`
	Image string `json:"image,omitempty"`
	Panel string `json:"panel,omitempty"`
}

// Unit represents a normalized unit record scraped from the wiki.
type Unit struct {
	Name          string              `json:"name"`
	Type          int                 `json:"type"`
	UnitSpell     string              `json:"unit_spell"`
	Costs         Costs               `json:"costs"`
	Stats         Stats               `json:"stats"`
	Attributes    Attributes          `json:"attributes"`
	Abilities     string              `json:"abilities,omitempty"`
	ChangeHistory map[string][]string `json:"change_history,omitempty"`
	Links         Links               `json:"links"`
	Position      string              `json:"position,omitempty"`
}

// Validate returns an error if the unit contains invalid fields.
func (u *Unit) Validate() error {
	if u.Name == "" {
		return Errorf(EINVALID, "unit name required")
	}
	return nil
}

// UnitDetail holds the fields parsed from a unit's own wiki page, as
// opposed to the unit index table.
type UnitDetail struct {
	Name          string
	Abilities     string
	ChangeHistory map[string][]string
	Links         Links
	Position      string
}

// Merge folds detail-page fields into the record. Link fields merge
// one level deep: the table-sourced path is kept unless the detail
// page provides its own.
func (u *Unit) Merge(d *UnitDetail) {
	if d == nil {
		return
	}
	if d.Name != "" {
		u.Name = d.Name
	}
	if d.Abilities != "" {
		u.Abilities = d.Abilities
	}
	if len(d.ChangeHistory) > 0 {
		u.ChangeHistory = d.ChangeHistory
	}
	if d.Links.Path != "" {
		u.Links.Path = d.Links.Path
	}
	if d.Links.Image != "" {
		u.Links.Image = d.Links.Image
	}
	if d.Links.Panel != "" {
		u.Links.Panel = d.Links.Panel
	}
	if d.Position != "" {
		u.Position = d.Position
	}
}

// UnitSet is a collection of units keyed uniquely by unit name.
type UnitSet map[string]*Unit

// Names returns the unit names in sorted order.
func (s UnitSet) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Filter returns the subset of units whose names appear in include.
// An empty include list, or one containing IncludeAll, selects every
// unit. Names not present at the source are ignored.
func (s UnitSet) Filter(include []string) UnitSet {
	if len(include) == 0 {
		return s
	}
	wanted := make(map[string]bool, len(include))
	for _, name := range include {
		if name == IncludeAll {
			return s
		}
		wanted[name] = true
	}
	filtered := make(UnitSet)
	for name, unit := range s {
		if wanted[name] {
			filtered[name] = unit
		}
	}
	return filtered
}
