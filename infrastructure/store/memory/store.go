// ABOUTME: In-memory snapshot store built on patrickmn/go-cache
// ABOUTME: Entries never expire; useful for tests and single-process deployments

package memory

import (
	"context"
	"errors"

	gocache "github.com/patrickmn/go-cache"

	coreerrors "mediawatch-api/core/errors"
)

// Store implements the SnapshotStore interface in process memory.
type Store struct {
	cache *gocache.Cache
}

// NewStore creates an in-memory store. Snapshots have no TTL — like the
// persistent backends, staleness is bounded only by a forced re-collect.
func NewStore() *Store {
	return &Store{
		cache: gocache.New(gocache.NoExpiration, 0),
	}
}

// Read returns the snapshot stored for key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v, ok := s.cache.Get(key)
	if !ok {
		return nil, coreerrors.ErrSnapshotNotFound
	}

	data, ok := v.([]byte)
	if !ok {
		return nil, errors.New("unexpected value type in memory store")
	}

	// Copy so callers cannot mutate the stored snapshot.
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write stores the snapshot for key.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	s.cache.Set(key, stored, gocache.NoExpiration)
	return nil
}

// Delete removes the snapshot for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cache.Delete(key)
	return nil
}
