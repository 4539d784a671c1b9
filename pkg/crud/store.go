package crud

import (
	"context"
	"fmt"
	"log/slog"
)

// Store executes CRUD operations for records of type R against a relational
// data source.
//
// A Store holds no per-call state and is safe for concurrent use, provided
// its Statements, Mapper and Executor are. Every cursor a Store opens is
// owned by the single in-flight call that opened it and is closed on every
// exit path.
type Store[R any] struct {
	exec   Executor
	stmts  Statements
	mapper Mapper[R]
	logger *slog.Logger
}

// NewStore creates a store from its three collaborators.
// If logger is nil, a discard logger is used.
func NewStore[R any](exec Executor, stmts Statements, mapper Mapper[R], logger *slog.Logger) (*Store[R], error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if gen := mapper.Generation(); !gen.Valid() {
		return nil, fmt.Errorf("invalid generation flags %q: at most one of key and on-insert may be set", gen)
	}
	return &Store[R]{
		exec:   exec,
		stmts:  stmts,
		mapper: mapper,
		logger: logger,
	}, nil
}

// Insert persists the record. Depending on the mapper's Generation flags it
// either runs the insert as a plain command, or as a query whose single
// returned row supplies the generated key (GenerateKey, first column) or the
// full persisted row (GenerateOnInsert, loaded back onto rec).
func (s *Store[R]) Insert(ctx context.Context, rec R) error {
	stmt, ok := s.stmts.InsertSQL()
	if !ok {
		return fmt.Errorf("insert: %w", ErrMissingStatement)
	}
	args := s.mapper.InsertParams(rec)
	gen := s.mapper.Generation()
	s.logger.Debug("insert", slog.String("generation", gen.String()), slog.Int("params", len(args)))

	switch {
	case gen.Has(GenerateOnInsert):
		return s.queryRow(ctx, "insert", stmt, args, func(row Row) error {
			return s.mapper.Load(row, rec)
		})
	case gen.Has(GenerateKey):
		return s.queryRow(ctx, "insert", stmt, args, func(row Row) error {
			key, err := firstColumn(row)
			if err != nil {
				return err
			}
			return s.mapper.SetKey(rec, key)
		})
	default:
		return s.exec.Exec(ctx, stmt, args...)
	}
}

// Update applies the record's current field values to its persisted
// counterpart. With GenerateOnUpdate the statement is run as a query and the
// single returned row is loaded back onto rec.
func (s *Store[R]) Update(ctx context.Context, rec R) error {
	stmt, ok := s.stmts.UpdateSQL()
	if !ok {
		return fmt.Errorf("update: %w", ErrMissingStatement)
	}
	args := s.mapper.UpdateParams(rec)
	gen := s.mapper.Generation()
	s.logger.Debug("update", slog.String("generation", gen.String()), slog.Int("params", len(args)))

	if gen.Has(GenerateOnUpdate) {
		return s.queryRow(ctx, "update", stmt, args, func(row Row) error {
			return s.mapper.Load(row, rec)
		})
	}
	return s.exec.Exec(ctx, stmt, args...)
}

// Delete removes the record's persisted counterpart. Deletes never return
// rows in this design, so the statement always runs as a command.
func (s *Store[R]) Delete(ctx context.Context, rec R) error {
	stmt, ok := s.stmts.DeleteSQL()
	if !ok {
		return fmt.Errorf("delete: %w", ErrMissingStatement)
	}
	args := s.mapper.DeleteParams(rec)
	s.logger.Debug("delete", slog.Int("params", len(args)))
	return s.exec.Exec(ctx, stmt, args...)
}

// FindOne returns the record matching the filter, deriving the statement
// from the filter's column names. The second return value is false when no
// row matched; that is a valid outcome, not an error.
func (s *Store[R]) FindOne(ctx context.Context, filter Filter) (R, bool, error) {
	stmt := s.stmts.SelectSQL(filter.Columns()...)
	return s.findOne(ctx, stmt, filter.Values())
}

// FindOneSQL is FindOne with caller-supplied statement text. The filter's
// values are bound positionally, in filter order.
func (s *Store[R]) FindOneSQL(ctx context.Context, stmt string, filter Filter) (R, bool, error) {
	return s.findOne(ctx, stmt, filter.Values())
}

func (s *Store[R]) findOne(ctx context.Context, stmt string, args []any) (R, bool, error) {
	var zero R
	rows, err := s.exec.Query(ctx, stmt, args...)
	if err != nil {
		return zero, false, err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		return zero, false, rows.Err()
	}
	rec := s.mapper.New()
	if err := s.mapper.Load(rows, rec); err != nil {
		return zero, false, err
	}
	// Any rows beyond the first are discarded by the deferred close.
	return rec, true, nil
}

// FindMany returns a lazy cursor over all records matching the filter,
// deriving the statement from the filter's column names. The result is a
// single-pass sequence: iterating again requires calling FindMany again,
// which issues a fresh query.
func (s *Store[R]) FindMany(ctx context.Context, filter Filter) (*Records[R], error) {
	stmt := s.stmts.SelectSQL(filter.Columns()...)
	return s.findMany(ctx, stmt, filter.Values())
}

// FindManySQL is FindMany with caller-supplied statement text.
func (s *Store[R]) FindManySQL(ctx context.Context, stmt string, filter Filter) (*Records[R], error) {
	return s.findMany(ctx, stmt, filter.Values())
}

// FindAll returns a lazy cursor over every record.
func (s *Store[R]) FindAll(ctx context.Context) (*Records[R], error) {
	return s.FindMany(ctx, nil)
}

func (s *Store[R]) findMany(ctx context.Context, stmt string, args []any) (*Records[R], error) {
	rows, err := s.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, err
	}
	return &Records[R]{rows: rows, mapper: s.mapper}, nil
}

// queryRow runs a write statement that is expected to return exactly one
// row, hands that row to consume, and closes the cursor on every path.
func (s *Store[R]) queryRow(ctx context.Context, op, stmt string, args []any, consume func(Row) error) error {
	rows, err := s.exec.Query(ctx, stmt, args...)
	if err != nil {
		return err
	}
	defer func() { _ = rows.Close() }()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return err
		}
		return fmt.Errorf("%s: %w", op, ErrNoReturnedRow)
	}
	return consume(rows)
}

// firstColumn extracts the value of the row's first column, scanning any
// remaining columns into throwaway holders.
func firstColumn(row Row) (any, error) {
	cols, err := row.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, fmt.Errorf("returned row has no columns")
	}
	dest := make([]any, len(cols))
	for i := range dest {
		dest[i] = new(any)
	}
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	return *dest[0].(*any), nil
}
