// Package dialect provides SQL dialect configuration: placeholder formatting,
// identifier quoting and default schemas. Built-in dialects are registered at
// init time; adapters expose their dialect via Dialect().
package dialect

import (
	"strconv"
	"strings"
)

// PlaceholderStyle describes how a dialect formats positional query
// parameters.
type PlaceholderStyle int

const (
	// PlaceholderQuestion uses "?" for every parameter (SQLite, DuckDB, MySQL).
	PlaceholderQuestion PlaceholderStyle = iota
	// PlaceholderDollar uses "$1", "$2", ... (PostgreSQL).
	PlaceholderDollar
)

// Dialect represents a SQL dialect configuration.
type Dialect struct {
	Name string

	// DefaultSchema is the schema used when a table reference is unqualified
	// ("main" for DuckDB and SQLite, "public" for Postgres).
	DefaultSchema string

	// Placeholder is how query parameters are formatted.
	Placeholder PlaceholderStyle

	// Identifier quoting characters.
	Quote    string
	QuoteEnd string
	Escape   string

	reserved map[string]struct{}
}

// New creates a dialect with standard double-quote identifier rules and the
// given reserved words.
func New(name, defaultSchema string, style PlaceholderStyle, reserved ...string) *Dialect {
	d := &Dialect{
		Name:          name,
		DefaultSchema: defaultSchema,
		Placeholder:   style,
		Quote:         `"`,
		QuoteEnd:      `"`,
		Escape:        `""`,
		reserved:      make(map[string]struct{}, len(reserved)),
	}
	for _, w := range reserved {
		d.reserved[strings.ToLower(w)] = struct{}{}
	}
	return d
}

// FormatPlaceholder returns a placeholder for the given parameter index
// (1-based): "?" for PlaceholderQuestion, "$1", "$2", ... for
// PlaceholderDollar.
func (d *Dialect) FormatPlaceholder(index int) string {
	switch d.Placeholder {
	case PlaceholderDollar:
		return "$" + strconv.Itoa(index)
	default:
		return "?"
	}
}

// IsReservedWord returns true if the word needs quoting when used as an
// identifier.
func (d *Dialect) IsReservedWord(word string) bool {
	_, ok := d.reserved[strings.ToLower(word)]
	return ok
}

// QuoteIdentifier quotes an identifier using the dialect's quote characters,
// escaping any embedded quote end characters.
func (d *Dialect) QuoteIdentifier(name string) string {
	escaped := strings.ReplaceAll(name, d.QuoteEnd, d.Escape)
	return d.Quote + escaped + d.QuoteEnd
}

// QuoteIdentifierIfNeeded quotes an identifier only if it's a reserved word.
func (d *Dialect) QuoteIdentifierIfNeeded(name string) string {
	if d.IsReservedWord(name) {
		return d.QuoteIdentifier(name)
	}
	return name
}
