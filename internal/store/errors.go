package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrAnalysisNotFound is returned when an update or lookup targets an
	// analysis record id that has no matching row.
	ErrAnalysisNotFound = errors.New("analysis record was not found")

	// ErrDeletionRequestNotFound is returned by CompleteDeletion when the
	// analysis has no pending deletion request.
	ErrDeletionRequestNotFound = errors.New("pending deletion request was not found")

	// ErrConflict is returned when a write violates a uniqueness constraint,
	// e.g. a duplicate reference symptom text.
	ErrConflict = errors.New("unique constraint violation")

	// ErrIncompleteStatusPayload is returned when a transition to
	// "completed" lacks one of the cloud-synthesis outputs.
	ErrIncompleteStatusPayload = errors.New("completed status requires ai response, skin conditions, recommendations and risk level")

	// ErrUnsupportedStatus is returned when a status transition targets a
	// state that cannot be entered through SetStatus.
	ErrUnsupportedStatus = errors.New("unsupported status transition target")

	// ErrUnsupportedDriver is returned by [NewStorages] for an unknown
	// database/sql driver name.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a query or statement
	// against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrEncodingValue is returned when a structured field cannot be encoded
	// into its stored textual form.
	ErrEncodingValue = errors.New("failed to encode value for storage")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
