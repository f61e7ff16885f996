// ABOUTME: SQLite-backed snapshot store for single-file persistent deployments
// ABOUTME: One row per query slug; survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	coreerrors "mediawatch-api/core/errors"
)

// Store implements the SnapshotStore interface using SQLite.
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore creates a SQLite store backed by the given file.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "snapshots.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{db: db, filePath: filePath}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the snapshots table if it doesn't exist.
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS snapshots (
			slug TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			updated_at INTEGER NOT NULL
		);
	`

	_, err := s.db.Exec(query)
	return err
}

// Read returns the snapshot stored for key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, errors.New("key cannot be empty")
	}

	var value []byte

	query := "SELECT value FROM snapshots WHERE slug = ?"
	err := s.db.QueryRowContext(ctx, query, key).Scan(&value)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, coreerrors.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read snapshot: %w", err)
	}

	return value, nil
}

// Write stores the snapshot for key, overwriting any previous row.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := `
		INSERT OR REPLACE INTO snapshots (slug, value, updated_at)
		VALUES (?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query, key, value, time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}

// Delete removes the snapshot for key.
func (s *Store) Delete(ctx context.Context, key string) error {
	if key == "" {
		return errors.New("key cannot be empty")
	}

	query := "DELETE FROM snapshots WHERE slug = ?"
	if _, err := s.db.ExecContext(ctx, query, key); err != nil {
		return fmt.Errorf("failed to delete snapshot: %w", err)
	}

	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
