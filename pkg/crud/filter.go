package crud

// Cond is a single filter criterion: a column name and the value bound to
// its placeholder.
type Cond struct {
	Column string
	Value  any
}

// Filter is an ordered set of filter criteria for the read paths. The order
// of conditions determines both the column-name order passed to
// Statements.SelectSQL and the positional order of the bind parameters.
//
// A nil or empty Filter selects all rows.
type Filter []Cond

// Where starts a filter with a single condition.
func Where(column string, value any) Filter {
	return Filter{{Column: column, Value: value}}
}

// And returns a new filter extended with one more condition. The receiver
// is left unchanged.
func (f Filter) And(column string, value any) Filter {
	out := make(Filter, len(f), len(f)+1)
	copy(out, f)
	return append(out, Cond{Column: column, Value: value})
}

// Columns returns the column names in filter order.
func (f Filter) Columns() []string {
	if len(f) == 0 {
		return nil
	}
	cols := make([]string, len(f))
	for i, c := range f {
		cols[i] = c.Column
	}
	return cols
}

// Values returns the bind values in filter order.
func (f Filter) Values() []any {
	if len(f) == 0 {
		return nil
	}
	vals := make([]any, len(f))
	for i, c := range f {
		vals[i] = c.Value
	}
	return vals
}
