package crud

import "strings"

// Generation describes whether, and how, the data source returns computed
// values on write. The zero value means no generated values: inserts and
// updates run as plain commands.
type Generation uint8

const (
	// GenerateKey means the insert statement returns the generated primary
	// key as the first column of a single row (e.g. INSERT ... RETURNING id).
	GenerateKey Generation = 1 << iota

	// GenerateOnInsert means the insert statement returns the full persisted
	// row, which is loaded back onto the record.
	GenerateOnInsert

	// GenerateOnUpdate means the update statement returns the full persisted
	// row, which is loaded back onto the record.
	GenerateOnUpdate

	// GenerateNone is the explicit spelling of the zero value.
	GenerateNone Generation = 0
)

// Has reports whether all bits of flag are set.
func (g Generation) Has(flag Generation) bool {
	return g&flag == flag
}

// Valid reports whether the flag combination is coherent: at most one of
// GenerateKey and GenerateOnInsert may apply to the insert path.
func (g Generation) Valid() bool {
	return !(g.Has(GenerateKey) && g.Has(GenerateOnInsert))
}

func (g Generation) String() string {
	if g == GenerateNone {
		return "none"
	}
	var parts []string
	if g.Has(GenerateKey) {
		parts = append(parts, "key")
	}
	if g.Has(GenerateOnInsert) {
		parts = append(parts, "on-insert")
	}
	if g.Has(GenerateOnUpdate) {
		parts = append(parts, "on-update")
	}
	return strings.Join(parts, "|")
}
