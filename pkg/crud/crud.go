// Package crud provides a generic CRUD execution core that maps record
// operations onto a relational data source.
//
// The core orchestrates three collaborator contracts: a Statements source
// that supplies SQL text per operation, a Mapper that converts between
// fetched rows and in-memory records, and an Executor that runs statements
// against the database. Statement text construction, connection management
// and transaction demarcation are the collaborators' business; the core
// decides which statement to run, how to bind parameters, how to consume
// the resulting cursor, and how to reconcile database-generated values back
// onto a record.
package crud

import "context"

// Statements supplies the SQL text for each operation kind.
//
// The write-path methods return false when no statement is defined for the
// operation, which the store surfaces as ErrMissingStatement. SelectSQL must
// always resolve: given the filter column names (possibly none, for a
// select-all), it returns the statement text with one positional placeholder
// per column, in the given order.
type Statements interface {
	InsertSQL() (string, bool)
	UpdateSQL() (string, bool)
	DeleteSQL() (string, bool)
	SelectSQL(columns ...string) string
}

// Mapper converts between persisted rows and records of type R.
//
// New returns a blank record for the read paths. Load overwrites all mapped
// fields of rec from the cursor's current row. The params methods extract
// ordered bind values matching the corresponding statement's placeholders.
// SetKey assigns a database-generated key to the record.
type Mapper[R any] interface {
	New() R
	Load(row Row, rec R) error
	InsertParams(rec R) []any
	UpdateParams(rec R) []any
	DeleteParams(rec R) []any
	SetKey(rec R, key any) error

	// Generation reports which values the data source generates on
	// insert/update for this record type. Fixed metadata, not per-call state.
	Generation() Generation
}

// Row is the cursor's current tuple. It is only valid until the cursor
// advances or closes; implementations must not retain it.
type Row interface {
	Scan(dest ...any) error
	Columns() ([]string, error)
}

// Rows is an open, forward-only cursor over query results.
// *sql.Rows satisfies Rows.
type Rows interface {
	Row
	Next() bool
	Close() error
	Err() error
}

// Executor runs statements against the data source. Exec is for statements
// that return no rows; Query yields a cursor the caller must close.
// Implementations must honor ctx cancellation on both calls.
type Executor interface {
	Exec(ctx context.Context, sql string, args ...any) error
	Query(ctx context.Context, sql string, args ...any) (Rows, error)
}
