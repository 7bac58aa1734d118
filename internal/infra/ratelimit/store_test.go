package ratelimit

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_AllowsBurstThenRejects(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore(5, time.Minute)

	for i := 0; i < 5; i++ {
		allowed, err := store.Allow("user-1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d should pass", i+1)
	}

	allowed, err := store.Allow("user-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	allowed, err = store.Allow("user-2")
	require.NoError(t, err)
	assert.True(t, allowed)

	assert.Equal(t, 12*time.Second, store.RetryAfter("user-1"))
}

func TestRedisStore_FixedWindow(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}

	rdb := redis.NewClient(&redis.Options{Addr: addr})
	t.Cleanup(func() { _ = rdb.Close() })
	require.NoError(t, rdb.Ping(context.Background()).Err())

	prefix := "ratelimit:test:" + uuid.NewString()
	store := NewRedisStore(rdb, prefix, 2, time.Minute)

	for i := 0; i < 2; i++ {
		allowed, err := store.Allow("user-1")
		require.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := store.Allow("user-1")
	require.NoError(t, err)
	assert.False(t, allowed)

	retryAfter := store.RetryAfter("user-1")
	assert.Greater(t, retryAfter, time.Duration(0))
	assert.LessOrEqual(t, retryAfter, time.Minute)
}
