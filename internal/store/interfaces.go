package store

import (
	"context"

	"github.com/MKhiriev/go-school-link/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// KeyValueStorage is the Persistent Local Store: opaque string blobs by key,
// surviving process restarts. No partial-write semantics are assumed.
type KeyValueStorage interface {
	// Get returns the value stored under key, or [ErrKeyNotFound].
	Get(ctx context.Context, key string) (string, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes keys. Missing keys are not an error.
	Remove(ctx context.Context, keys ...string) error
	// Close releases the underlying connection.
	Close() error
}

// SnapshotRepository reads and writes the persisted session projection
// on top of a [KeyValueStorage].
type SnapshotRepository interface {
	// Load reads the snapshot. It returns [ErrSnapshotNotFound] when no
	// session was persisted and [ErrSnapshotCorrupt] when the stored blobs
	// are partial or cannot be decoded.
	Load(ctx context.Context) (models.Snapshot, error)
	// Save writes every key of the snapshot. An unauthenticated snapshot
	// clears the store instead.
	Save(ctx context.Context, snapshot models.Snapshot) error
	// Clear removes every snapshot key.
	Clear(ctx context.Context) error
}
