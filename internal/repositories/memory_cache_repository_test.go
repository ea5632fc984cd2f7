package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryCacheRepository_Expiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 12, 18, 10, 0, 0, 0, time.UTC)

	cache := NewMemoryCacheRepository()
	cache.now = func() time.Time { return now }

	require.NoError(t, cache.Set(ctx, "revoked_token:abc", uint64(7), time.Minute))

	value, err := cache.Get(ctx, "revoked_token:abc")
	require.NoError(t, err)
	assert.Equal(t, "7", value)

	ok, err := cache.Exists(ctx, "revoked_token:abc")
	require.NoError(t, err)
	assert.True(t, ok)

	now = now.Add(time.Minute)

	ok, err = cache.Exists(ctx, "revoked_token:abc")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cache.Get(ctx, "revoked_token:abc")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestMemoryCacheRepository_NoExpiryAndDel(t *testing.T) {
	ctx := context.Background()
	cache := NewMemoryCacheRepository()

	require.NoError(t, cache.Set(ctx, "a", "1", 0))
	require.NoError(t, cache.Set(ctx, "b", "2", 0))
	require.NoError(t, cache.Del(ctx, "a", "missing"))

	_, err := cache.Get(ctx, "a")
	assert.ErrorIs(t, err, ErrCacheMiss)

	value, err := cache.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}
