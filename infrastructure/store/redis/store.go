// ABOUTME: Redis snapshot store using the go-redis client
// ABOUTME: Lets several pipeline instances share one snapshot set

package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	coreerrors "mediawatch-api/core/errors"
	"mediawatch-api/pkg/config"
)

// keyPrefix namespaces snapshot entries inside a shared Redis database.
const keyPrefix = "snapshot:"

// Store implements the SnapshotStore interface using Redis.
type Store struct {
	client *redis.Client
}

// NewStore creates a Redis store and verifies connectivity.
func NewStore(cfg config.RedisConfig) (*Store, error) {
	if cfg.Address == "" {
		return nil, errors.New("redis address cannot be empty")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Store{client: client}, nil
}

// Read returns the snapshot stored for key.
func (s *Store) Read(ctx context.Context, key string) ([]byte, error) {
	val, err := s.client.Get(ctx, keyPrefix+key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, coreerrors.ErrSnapshotNotFound
		}
		return nil, err
	}
	return val, nil
}

// Write stores the snapshot for key. Snapshots carry no TTL; they live
// until the next forced collect overwrites them.
func (s *Store) Write(ctx context.Context, key string, value []byte) error {
	return s.client.Set(ctx, keyPrefix+key, value, 0).Err()
}

// Delete removes the snapshot for key. Deleting a missing key is fine.
func (s *Store) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, keyPrefix+key).Err()
}

// Close closes the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
