// Package statements derives CRUD statement text from a table description
// and a SQL dialect. The resulting Builder satisfies crud.Statements and is
// the stock Statement Source for stores whose statements follow the common
// single-table shape; anything fancier can implement crud.Statements
// directly.
package statements

import (
	"fmt"
	"slices"
	"strings"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
	"github.com/leapstack-labs/crudkit/pkg/crud"
	"github.com/leapstack-labs/crudkit/pkg/dialect"
)

// Ensure Builder implements crud.Statements
var _ crud.Statements = (*Builder)(nil)

// Table describes the statement-relevant shape of a database table.
type Table struct {
	// Name is the table name, optionally schema-qualified.
	Name string

	// Columns are all mapped columns in select/load order.
	Columns []string

	// Key are the key columns matched in UPDATE and DELETE statements.
	Key []string

	// Generated are columns the database computes itself; they are excluded
	// from INSERT column lists and UPDATE set lists.
	Generated []string
}

// FromMetadata builds a Table from introspected column metadata and the
// given key column names.
func FromMetadata(meta *adapter.TableMetadata, key ...string) Table {
	return Table{
		Name:    meta.Name,
		Columns: meta.ColumnNames(),
		Key:     key,
	}
}

// Builder produces statement text for one table in one dialect.
type Builder struct {
	d     *dialect.Dialect
	table Table

	insertReturning []string
	updateReturning []string
}

// New creates a statement builder for the table in the given dialect.
func New(d *dialect.Dialect, table Table) *Builder {
	return &Builder{d: d, table: table}
}

// InsertReturning appends a RETURNING clause to the insert statement.
// Use the key column for key generation, or all mapped columns when the
// full row is loaded back after insert.
func (b *Builder) InsertReturning(columns ...string) *Builder {
	b.insertReturning = columns
	return b
}

// UpdateReturning appends a RETURNING clause to the update statement.
func (b *Builder) UpdateReturning(columns ...string) *Builder {
	b.updateReturning = columns
	return b
}

// InsertSQL returns the INSERT statement, or false when the table has no
// insertable columns.
func (b *Builder) InsertSQL() (string, bool) {
	cols := b.insertableColumns()
	if len(cols) == 0 {
		return "", false
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = b.d.FormatPlaceholder(i + 1)
	}

	sql := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		b.table.Name, b.quoteAll(cols), strings.Join(placeholders, ", "))
	if len(b.insertReturning) > 0 {
		sql += " RETURNING " + b.quoteAll(b.insertReturning)
	}
	return sql, true
}

// UpdateSQL returns the UPDATE statement, or false when the table has no key
// columns or nothing to set.
func (b *Builder) UpdateSQL() (string, bool) {
	setCols := b.settableColumns()
	if len(setCols) == 0 || len(b.table.Key) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("UPDATE ")
	sb.WriteString(b.table.Name)
	sb.WriteString(" SET ")

	n := 0
	for i, col := range setCols {
		if i > 0 {
			sb.WriteString(", ")
		}
		n++
		sb.WriteString(b.d.QuoteIdentifierIfNeeded(col))
		sb.WriteString(" = ")
		sb.WriteString(b.d.FormatPlaceholder(n))
	}

	sb.WriteString(" WHERE ")
	for i, col := range b.table.Key {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		n++
		sb.WriteString(b.d.QuoteIdentifierIfNeeded(col))
		sb.WriteString(" = ")
		sb.WriteString(b.d.FormatPlaceholder(n))
	}

	if len(b.updateReturning) > 0 {
		sb.WriteString(" RETURNING ")
		sb.WriteString(b.quoteAll(b.updateReturning))
	}
	return sb.String(), true
}

// DeleteSQL returns the DELETE statement, or false when the table has no key
// columns.
func (b *Builder) DeleteSQL() (string, bool) {
	if len(b.table.Key) == 0 {
		return "", false
	}

	var sb strings.Builder
	sb.WriteString("DELETE FROM ")
	sb.WriteString(b.table.Name)
	sb.WriteString(" WHERE ")
	for i, col := range b.table.Key {
		if i > 0 {
			sb.WriteString(" AND ")
		}
		sb.WriteString(b.d.QuoteIdentifierIfNeeded(col))
		sb.WriteString(" = ")
		sb.WriteString(b.d.FormatPlaceholder(i + 1))
	}
	return sb.String(), true
}

// SelectSQL returns the SELECT statement filtered on the given columns, in
// order; with no columns it selects all rows.
func (b *Builder) SelectSQL(columns ...string) string {
	var sb strings.Builder
	sb.WriteString("SELECT ")
	sb.WriteString(b.quoteAll(b.table.Columns))
	sb.WriteString(" FROM ")
	sb.WriteString(b.table.Name)

	for i, col := range columns {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		sb.WriteString(b.d.QuoteIdentifierIfNeeded(col))
		sb.WriteString(" = ")
		sb.WriteString(b.d.FormatPlaceholder(i + 1))
	}
	return sb.String()
}

func (b *Builder) insertableColumns() []string {
	return exclude(b.table.Columns, b.table.Generated)
}

func (b *Builder) settableColumns() []string {
	return exclude(exclude(b.table.Columns, b.table.Key), b.table.Generated)
}

func (b *Builder) quoteAll(cols []string) string {
	quoted := make([]string, len(cols))
	for i, col := range cols {
		quoted[i] = b.d.QuoteIdentifierIfNeeded(col)
	}
	return strings.Join(quoted, ", ")
}

func exclude(cols, drop []string) []string {
	if len(drop) == 0 {
		return cols
	}
	out := make([]string, 0, len(cols))
	for _, col := range cols {
		if !slices.Contains(drop, col) {
			out = append(out, col)
		}
	}
	return out
}
