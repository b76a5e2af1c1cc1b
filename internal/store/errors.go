package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when the users.email unique
	// constraint rejects an INSERT.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when no user matches the lookup.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrTodoNotFound is returned when no todo matches both the id and the
	// owner. A foreign todo and a missing one are indistinguishable.
	ErrTodoNotFound = errors.New("todo was not found")

	// ErrLocalSessionNotFound is returned by the client cache when nobody
	// has logged in on this device yet.
	ErrLocalSessionNotFound = errors.New("local session not found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to executing statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
)
