package crud

// Records is a lazy, forward-only cursor over mapped records. It owns the
// underlying database cursor and closes it when iteration ends for any
// reason: normal exhaustion, a mapping error, or an explicit Close after
// partial consumption. Close is idempotent.
//
// Usage follows the sql.Rows pattern:
//
//	recs, err := store.FindAll(ctx)
//	if err != nil { ... }
//	defer recs.Close()
//	for recs.Next() {
//		r := recs.Record()
//		...
//	}
//	if err := recs.Err(); err != nil { ... }
type Records[R any] struct {
	rows   Rows
	mapper Mapper[R]
	cur    R
	err    error
	closed bool
}

// Next advances to the next record, mapping it with a fresh record instance.
// It returns false when the cursor is exhausted or an error occurred, closing
// the underlying cursor in either case.
func (r *Records[R]) Next() bool {
	if r.closed || r.err != nil {
		return false
	}
	if !r.rows.Next() {
		r.err = r.rows.Err()
		_ = r.Close()
		return false
	}
	rec := r.mapper.New()
	if err := r.mapper.Load(r.rows, rec); err != nil {
		r.err = err
		_ = r.Close()
		return false
	}
	r.cur = rec
	return true
}

// Record returns the record produced by the last successful Next.
func (r *Records[R]) Record() R {
	return r.cur
}

// Err returns the first error encountered during iteration, if any.
func (r *Records[R]) Err() error {
	return r.err
}

// Close releases the underlying cursor. Calling Close more than once, or
// after iteration finished, is a no-op.
func (r *Records[R]) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	return r.rows.Close()
}

// All drains the remaining records into a slice and closes the cursor.
func (r *Records[R]) All() ([]R, error) {
	defer func() { _ = r.Close() }()
	var out []R
	for r.Next() {
		out = append(out, r.Record())
	}
	return out, r.Err()
}
