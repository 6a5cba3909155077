package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *CheckpointStore {
	t.Helper()
	addr := os.Getenv("LOTVIEW_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("LOTVIEW_TEST_REDIS_ADDR not set")
	}
	client, err := NewClient(context.Background(), addr, 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	return NewCheckpointStore(client, time.Minute)
}

func TestCheckpointStore_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	key := "test/" + uuid.NewString()
	t.Cleanup(func() { _ = store.Delete(ctx, key) })

	_, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Save(ctx, key, []byte("version = 1")))

	data, ok, err := store.Load(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "version = 1", string(data))

	ttl, err := store.client.TTL(ctx, store.key(key)).Result()
	require.NoError(t, err)
	assert.Greater(t, ttl, time.Duration(0))
}

func TestNewClient_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err := NewClient(ctx, "127.0.0.1:1", 0)
	assert.Error(t, err)
}
