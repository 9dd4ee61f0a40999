package store

import (
	"errors"
	"fmt"
	"time"
)

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
// Every not-found sentinel also matches [ErrNotFound].
var (
	// ErrNotFound is matched by every not-found sentinel below.
	ErrNotFound = errors.New("record is not found")

	// ErrAPIRootNotFound is returned when no API root has the requested id.
	ErrAPIRootNotFound = fmt.Errorf("api root: %w", ErrNotFound)

	// ErrCollectionNotFound is returned when no collection matches the
	// requested id or alias.
	ErrCollectionNotFound = fmt.Errorf("collection: %w", ErrNotFound)

	// ErrObjectNotFound is returned when a read or delete matched no STIX
	// object rows.
	ErrObjectNotFound = fmt.Errorf("stix object: %w", ErrNotFound)

	// ErrJobNotFound is returned when no job has the requested id under the
	// requested API root.
	ErrJobNotFound = fmt.Errorf("job: %w", ErrNotFound)

	// ErrJobDetailNotPending is returned when an outcome is recorded for a
	// job detail that has already left the pending state.
	ErrJobDetailNotPending = errors.New("job detail is not pending")

	// ErrAccountNotFound is returned when no account has the requested
	// username or id.
	ErrAccountNotFound = fmt.Errorf("account: %w", ErrNotFound)

	// ErrCollectionAliasExists is returned when a collection alias is already
	// used within the same API root.
	ErrCollectionAliasExists = errors.New("collection alias already exists")

	// ErrAPIRootExists is returned when an API root id is already taken.
	ErrAPIRootExists = errors.New("api root already exists")

	// ErrVersionConflict is returned when an object with the same
	// (collection, id, version) is already stored with a different payload.
	ErrVersionConflict = errors.New("stix object version conflict occurred")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when the database driver cannot
	// start a new transaction.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when committing an open transaction
	// fails. The transaction is considered rolled back at this point.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a multi-row result fails,
	// typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingColumn is returned when a structured value cannot be
	// encoded to or decoded from its text column.
	ErrEncodingColumn = errors.New("failed to encode column value")

	// ErrAcquiringLock is returned when the reconciliation advisory lock
	// cannot be taken.
	ErrAcquiringLock = errors.New("failed to acquire advisory lock")
)

// ConflictError reports an object version that is already stored with a
// different payload.
type ConflictError struct {
	CollectionID string
	ObjectID     string
	Version      time.Time
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("object %s version %s in collection %s is already stored with a different payload",
		e.ObjectID, e.Version.Format(time.RFC3339Nano), e.CollectionID)
}

// Is reports a match against [ErrVersionConflict].
func (e *ConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}
