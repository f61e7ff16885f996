// ABOUTME: Snapshot service implements the fetch-or-reuse policy over the blob store
// ABOUTME: Bounds remote-call volume; entries persist until a forced re-collect

package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync"

	"mediawatch-api/core/domain"
	coreerrors "mediawatch-api/core/errors"
	"mediawatch-api/core/interfaces"
)

// FetchFunc produces a fresh raw result set for a query. It is invoked at
// most once per GetOrFetch call, and exactly once per Refresh call.
type FetchFunc func(ctx context.Context) ([]domain.RawItem, error)

// Service owns the persisted raw snapshots. The normalizer only ever reads
// what this service returns; it never writes back.
type Service struct {
	store  interfaces.SnapshotStore
	logger interfaces.Logger

	// One lock per slug so concurrent refreshes of the same query cannot
	// interleave, while distinct queries proceed in parallel.
	locks sync.Map
}

// NewService creates a snapshot service over the given store.
func NewService(store interfaces.SnapshotStore, logger interfaces.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// GetOrFetch returns the stored raw set for slug when one exists. On a miss
// it invokes fetch, dedupes by key, persists the result, and returns it.
// The read path never silently refreshes: a stale snapshot stays until a
// caller forces a re-collect.
func (s *Service) GetOrFetch(ctx context.Context, slug string, key KeyFunc, fetch FetchFunc) ([]domain.RawItem, error) {
	items, err := s.load(ctx, slug)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, coreerrors.ErrSnapshotNotFound) {
		return nil, err
	}

	mu := s.lockFor(slug)
	mu.Lock()
	defer mu.Unlock()

	// Another request may have filled the entry while we waited.
	items, err = s.load(ctx, slug)
	if err == nil {
		return items, nil
	}
	if !errors.Is(err, coreerrors.ErrSnapshotNotFound) {
		return nil, err
	}

	return s.collect(ctx, slug, key, fetch)
}

// Refresh bypasses the hit check: it always invokes fetch and overwrites the
// stored entry. This is the explicit collect operation.
func (s *Service) Refresh(ctx context.Context, slug string, key KeyFunc, fetch FetchFunc) ([]domain.RawItem, error) {
	mu := s.lockFor(slug)
	mu.Lock()
	defer mu.Unlock()

	return s.collect(ctx, slug, key, fetch)
}

// collect fetches, dedupes, and persists under slug. Callers hold the slug
// lock.
func (s *Service) collect(ctx context.Context, slug string, key KeyFunc, fetch FetchFunc) ([]domain.RawItem, error) {
	fetched, err := fetch(ctx)
	if err != nil {
		return nil, err
	}

	items := Dedupe(fetched, key)

	data, err := encodeSnapshot(items)
	if err != nil {
		return nil, &coreerrors.StoreError{Op: "encode", Key: slug, Err: err}
	}

	if err := s.store.Write(ctx, slug, data); err != nil {
		return nil, &coreerrors.StoreError{Op: "write", Key: slug, Err: err}
	}

	if s.logger != nil {
		s.logger.Info("Snapshot stored", map[string]interface{}{
			"slug":    slug,
			"fetched": len(fetched),
			"kept":    len(items),
		})
	}

	return items, nil
}

// load reads and decodes the snapshot for slug. Cached reads are never
// re-deduplicated; the stored set is already canonical.
func (s *Service) load(ctx context.Context, slug string) ([]domain.RawItem, error) {
	data, err := s.store.Read(ctx, slug)
	if err != nil {
		if errors.Is(err, coreerrors.ErrSnapshotNotFound) {
			return nil, err
		}
		return nil, &coreerrors.StoreError{Op: "read", Key: slug, Err: err}
	}

	var items []domain.RawItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, &coreerrors.StoreError{Op: "decode", Key: slug, Err: err}
	}
	return items, nil
}

func (s *Service) lockFor(slug string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(slug, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// encodeSnapshot produces the reference snapshot encoding: one JSON array
// per key, 2-space indentation, non-ASCII characters preserved literally.
// Existing on-disk snapshots depend on this shape.
func encodeSnapshot(items []domain.RawItem) ([]byte, error) {
	if items == nil {
		items = []domain.RawItem{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
