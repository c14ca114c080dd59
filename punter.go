// Package punter gathers structured unit data for the strategy game
// Prismata from its wiki, normalizes it into a uniform record set
// keyed by unit name, and exports it as JSON, CSV or XML.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// sqlite/, http/).
package punter
