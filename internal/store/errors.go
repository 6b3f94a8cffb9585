package store

import "errors"

// Sentinel errors returned by repository methods.
var (
	// ErrAccountNotFound is returned when no account matches the id or email.
	ErrAccountNotFound = errors.New("account not found")

	// ErrEmailAlreadyExists is returned on a unique violation of accounts.email.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrSessionNotFound is returned by LoadToken when nothing is stored.
	ErrSessionNotFound = errors.New("local session not found")

	// ErrTransient marks database failures worth retrying (connection loss,
	// serialization failure, deadlock).
	ErrTransient = errors.New("transient database error")
)

// Low-level failures wrapped around driver errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a query or statement fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRows is returned when result rows cannot be scanned.
	ErrScanningRows = errors.New("failed to scan rows")

	ErrNoConnection = errors.New("no database connection")
)
