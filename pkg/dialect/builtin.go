package dialect

// commonReserved covers the short list of words that routinely collide with
// column names across all supported dialects.
var commonReserved = []string{
	"user", "order", "group", "table", "select", "from", "where", "index",
	"key", "value", "values", "default", "primary", "references",
}

var (
	postgres = New("postgres", "public", PlaceholderDollar, commonReserved...)
	sqlite   = New("sqlite", "main", PlaceholderQuestion, commonReserved...)
	duckdb   = New("duckdb", "main", PlaceholderQuestion, commonReserved...)
)

func init() {
	Register(postgres)
	Register(sqlite)
	Register(duckdb)
}

// Postgres returns the built-in PostgreSQL dialect.
func Postgres() *Dialect { return postgres }

// SQLite returns the built-in SQLite dialect.
func SQLite() *Dialect { return sqlite }

// DuckDB returns the built-in DuckDB dialect.
func DuckDB() *Dialect { return duckdb }
