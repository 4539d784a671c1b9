// Package adapter provides the database adapter contract and common
// database/sql plumbing for crudkit's execution core.
//
// An Adapter is a crud.Executor bound to a concrete driver and dialect.
// Concrete implementations live in pkg/adapters/ subdirectories and register
// themselves with this package's registry in their init() functions.
package adapter

import (
	"context"

	"github.com/leapstack-labs/crudkit/pkg/crud"
	"github.com/leapstack-labs/crudkit/pkg/dialect"
)

// Config holds the configuration for connecting to a database.
type Config struct {
	// Type specifies the database type (e.g., "sqlite", "postgres", "duckdb")
	Type string

	// Path is the file path for file-based databases (SQLite, DuckDB).
	// Use ":memory:" for an in-memory database.
	Path string

	// Host is the hostname for network-based databases
	Host string

	// Port is the port number for network-based databases
	Port int

	// Database is the database name
	Database string

	// Username for authentication
	Username string

	// Password for authentication
	Password string

	// Schema is the default schema to use
	Schema string

	// Options contains additional driver-specific options
	Options map[string]string
}

// Column represents a column in a database table.
type Column struct {
	// Name is the column name
	Name string

	// Type is the data type of the column
	Type string

	// Nullable indicates whether the column allows NULL values
	Nullable bool

	// Position is the ordinal position of the column in the table
	Position int
}

// TableMetadata holds metadata about a database table.
type TableMetadata struct {
	// Schema is the schema containing the table
	Schema string

	// Name is the table name
	Name string

	// Columns contains metadata for each column, in ordinal order
	Columns []Column

	// RowCount is the approximate number of rows (may not be exact)
	RowCount int64
}

// ColumnNames returns the column names in ordinal order.
func (m *TableMetadata) ColumnNames() []string {
	names := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		names[i] = c.Name
	}
	return names
}

// Adapter defines the interface that all database adapters must implement.
// Its Exec and Query methods satisfy crud.Executor, so a connected Adapter
// plugs directly into crud.NewStore.
type Adapter interface {
	// Connect establishes a connection to the database using the provided config.
	Connect(ctx context.Context, cfg Config) error

	// Close closes the database connection and releases resources.
	Close() error

	// Exec executes a statement that doesn't return rows, binding args
	// positionally.
	Exec(ctx context.Context, sql string, args ...any) error

	// Query executes a statement that returns rows, binding args positionally.
	// The caller owns the returned cursor and must close it.
	Query(ctx context.Context, sql string, args ...any) (crud.Rows, error)

	// DescribeTable retrieves column metadata for a table reference,
	// optionally schema-qualified ("schema.table").
	DescribeTable(ctx context.Context, table string) (*TableMetadata, error)

	// Dialect returns the SQL dialect configuration for this adapter,
	// used for placeholder formatting and identifier quoting.
	Dialect() *dialect.Dialect
}
