// ABOUTME: Mock implementations for testing the snapshot service
// ABOUTME: Provides a func-field store and a no-op logger

package snapshot

import (
	"context"

	coreerrors "mediawatch-api/core/errors"
)

// mockStore implements interfaces.SnapshotStore with configurable behavior.
type mockStore struct {
	ReadFunc   func(ctx context.Context, key string) ([]byte, error)
	WriteFunc  func(ctx context.Context, key string, value []byte) error
	DeleteFunc func(ctx context.Context, key string) error
}

func (m *mockStore) Read(ctx context.Context, key string) ([]byte, error) {
	if m.ReadFunc != nil {
		return m.ReadFunc(ctx, key)
	}
	return nil, coreerrors.ErrSnapshotNotFound
}

func (m *mockStore) Write(ctx context.Context, key string, value []byte) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(ctx, key, value)
	}
	return nil
}

func (m *mockStore) Delete(ctx context.Context, key string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, key)
	}
	return nil
}

// memStore is a map-backed store for multi-call scenarios.
type memStore struct {
	entries map[string][]byte
	writes  int
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
	m.writes++
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
