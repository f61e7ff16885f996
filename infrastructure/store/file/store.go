// ABOUTME: File-based snapshot store keeping one JSON document per query slug
// ABOUTME: Survives process restarts; the on-disk layout is data/<slug>.json

package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	coreerrors "mediawatch-api/core/errors"
)

// Store implements the SnapshotStore interface on the local filesystem.
type Store struct {
	dir string
}

// NewStore creates a file store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		dir = "data"
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create snapshot directory: %w", err)
	}

	return &Store{dir: dir}, nil
}

// Read returns the snapshot stored for key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := s.path(key)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, coreerrors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return data, nil
}

// Write stores the snapshot for key. The write goes through a temp file and
// rename so concurrent readers never observe a partial document.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// Delete removes the snapshot for key. A missing file is not an error.
func (s *Store) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	path, err := s.path(key)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// path maps a key to its file, refusing anything that could escape the
// store directory. Keys are slugs in practice, but the store does not rely
// on its callers for safety.
func (s *Store) path(key string) (string, error) {
	if key == "" {
		return "", errors.New("key cannot be empty")
	}
	if strings.ContainsAny(key, "/\\") || strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid snapshot key %q", key)
	}
	return filepath.Join(s.dir, key+".json"), nil
}
