// ABOUTME: Mock implementations for testing the articles service
// ABOUTME: Provides a counting fetcher, an in-memory store, and a no-op logger

package articles

import (
	"context"

	"mediawatch-api/core/domain"
	coreerrors "mediawatch-api/core/errors"
)

// mockFetcher implements interfaces.Fetcher with configurable behavior.
type mockFetcher struct {
	FetchFunc func(ctx context.Context, query string, maxCount int) ([]domain.RawItem, error)
	calls     int
}

func (m *mockFetcher) Fetch(ctx context.Context, query string, maxCount int) ([]domain.RawItem, error) {
	m.calls++
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, query, maxCount)
	}
	return nil, nil
}

// memStore is a map-backed snapshot store.
type memStore struct {
	entries map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string][]byte)}
}

func (m *memStore) Read(_ context.Context, key string) ([]byte, error) {
	v, ok := m.entries[key]
	if !ok {
		return nil, coreerrors.ErrSnapshotNotFound
	}
	return v, nil
}

func (m *memStore) Write(_ context.Context, key string, value []byte) error {
	m.entries[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.entries, key)
	return nil
}

// mockLogger implements interfaces.Logger discarding all output.
type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}
