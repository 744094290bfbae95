package store

import "errors"

// Mirror usage errors.
var (
	// ErrInvalidOrderField is returned by ScanOrderedBy for a column that is
	// not orderable.
	ErrInvalidOrderField = errors.New("invalid order field")

	// ErrInvalidMaxKeep is returned by EvictOldest for a negative bound.
	ErrInvalidMaxKeep = errors.New("invalid mirror max keep")

	// ErrUnknownDriver is returned when the configured SQLite driver is not
	// one of the registered ones.
	ErrUnknownDriver = errors.New("unknown sqlite driver")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRows         = errors.New("failed to scan mirror rows")

	// ErrMarshalingPayload and ErrUnmarshalingPayload wrap JSON failures of
	// the stored record payload.
	ErrMarshalingPayload   = errors.New("failed to marshal record payload")
	ErrUnmarshalingPayload = errors.New("failed to unmarshal record payload")
)
