package store

import "errors"

// Sentinel errors returned by storage implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrKeyNotFound is returned by [KeyValueStorage.Get] for a missing key.
	ErrKeyNotFound = errors.New("key not found")

	// ErrSnapshotNotFound means no session has been persisted.
	ErrSnapshotNotFound = errors.New("session snapshot not found")

	// ErrSnapshotCorrupt means the persisted session is partial or one of its
	// blobs could not be decoded.
	ErrSnapshotCorrupt = errors.New("session snapshot is corrupt")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")
)
