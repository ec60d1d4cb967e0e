package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shortlink/internal/cache"
)

func TestNew_ValidSize(t *testing.T) {
	c, err := cache.New(10, time.Minute) // 2^10 = 1KB
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestNew_ZeroSize(t *testing.T) {
	c, err := cache.New(0, 0) // 2^0 = 1 byte (min)
	require.NoError(t, err)
	require.NotNil(t, c)
	defer c.Close()
}

func TestGet_MissingKey(t *testing.T) {
	c, err := cache.New(10, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	val, found := c.Get(context.Background(), "nonexistent")
	assert.False(t, found)
	assert.Empty(t, val)
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	c, err := cache.New(20, time.Minute) // 2^20 = 1MB
	require.NoError(t, err)
	defer c.Close()

	key := "abc123"
	targetURL := "https://example.com/very/long/path"

	c.Set(ctx, key, targetURL)
	time.Sleep(10 * time.Millisecond) // Ristretto needs time to process

	val, found := c.Get(ctx, key)
	assert.True(t, found)
	assert.Equal(t, targetURL, val)
}

func TestSet_UpdateExisting(t *testing.T) {
	ctx := context.Background()
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(ctx, "abc123", "https://example.com/first")
	time.Sleep(10 * time.Millisecond)

	c.Set(ctx, "abc123", "https://example.com/second")
	time.Sleep(10 * time.Millisecond)

	val, found := c.Get(ctx, "abc123")
	assert.True(t, found)
	assert.Equal(t, "https://example.com/second", val)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	c.Set(ctx, "abc123", "https://example.com")
	time.Sleep(10 * time.Millisecond)

	c.Delete(ctx, "abc123")
	time.Sleep(10 * time.Millisecond)

	_, found := c.Get(ctx, "abc123")
	assert.False(t, found)
}

func TestSet_Expires(t *testing.T) {
	ctx := context.Background()
	c, err := cache.New(20, 50*time.Millisecond)
	require.NoError(t, err)
	defer c.Close()

	c.Set(ctx, "abc123", "https://example.com")
	time.Sleep(10 * time.Millisecond)

	_, found := c.Get(ctx, "abc123")
	require.True(t, found)

	time.Sleep(100 * time.Millisecond)

	_, found = c.Get(ctx, "abc123")
	assert.False(t, found)
}

func TestStats_AfterOperations(t *testing.T) {
	ctx := context.Background()
	c, err := cache.New(20, time.Minute)
	require.NoError(t, err)
	defer c.Close()

	hits, misses, _ := c.Stats()
	assert.Equal(t, uint64(0), hits)
	assert.Equal(t, uint64(0), misses)

	c.Get(ctx, "nonexistent")

	_, misses, _ = c.Stats()
	assert.Equal(t, uint64(1), misses)

	c.Set(ctx, "key1", "value1")
	time.Sleep(10 * time.Millisecond)
	c.Get(ctx, "key1")

	hits, _, ratio := c.Stats()
	assert.Equal(t, uint64(1), hits)
	assert.Equal(t, 0.5, ratio)
}

func TestNop(t *testing.T) {
	ctx := context.Background()
	var c cache.Nop

	c.Set(ctx, "abc", "https://example.com")
	_, found := c.Get(ctx, "abc")
	assert.False(t, found)
}
