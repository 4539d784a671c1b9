package crud

import "errors"

var (
	// ErrMissingStatement is returned when the Statements source has no
	// statement defined for the requested operation. It indicates a setup
	// defect; no execution has taken place when it is returned.
	ErrMissingStatement = errors.New("statement not defined")

	// ErrNoReturnedRow is returned when a generation-mode path expected the
	// statement to return a row but the cursor was empty. It indicates a
	// mismatch between the declared Generation flags and the actual
	// statement behavior (e.g. a missing RETURNING clause).
	ErrNoReturnedRow = errors.New("statement returned no row")
)
