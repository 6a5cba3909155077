package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"lotview/internal/logic"
)

const checkpointKeyPrefix = "lotview:checkpoint:"

// CheckpointStore keeps checkpoint blobs in redis with an optional ttl
type CheckpointStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ logic.CheckpointStore = (*CheckpointStore)(nil)

// NewClient creates a redis client and verifies the connection
func NewClient(ctx context.Context, addr string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
		DB:   db,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}
	return client, nil
}

func NewCheckpointStore(client *redis.Client, ttl time.Duration) *CheckpointStore {
	return &CheckpointStore{
		client: client,
		ttl:    ttl,
	}
}

func (s *CheckpointStore) key(key string) string {
	return checkpointKeyPrefix + key
}

func (s *CheckpointStore) Load(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := s.client.Get(ctx, s.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to get checkpoint %s from redis: %w", key, err)
	}
	return val, true, nil
}

func (s *CheckpointStore) Save(ctx context.Context, key string, data []byte) error {
	if err := s.client.Set(ctx, s.key(key), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save checkpoint %s to redis: %w", key, err)
	}
	return nil
}

// Delete removes a checkpoint
func (s *CheckpointStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return fmt.Errorf("failed to delete checkpoint %s from redis: %w", key, err)
	}
	return nil
}
