// Package interfaces defines the core interfaces used throughout the
// application. These interfaces allow for dependency injection and make the
// code testable.
package interfaces

import "context"

// SnapshotStore is the persisted keyed blob store backing the snapshot
// cache. Implementations can be file-based, in-memory, Redis, or SQLite.
//
// The store treats values as opaque bytes; the reference encoding (one JSON
// array of raw items per key) is owned by the snapshot service, not the
// store. Entries never expire on their own — staleness is bounded only by a
// forced re-collect.
type SnapshotStore interface {
	// Read returns the blob stored under key.
	// Returns coreerrors.ErrSnapshotNotFound when the key has never been
	// written.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores the blob under key, overwriting any previous value.
	Write(ctx context.Context, key string, value []byte) error

	// Delete removes the entry for key. Deleting a missing key is not an
	// error.
	Delete(ctx context.Context, key string) error
}
