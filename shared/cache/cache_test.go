package cache_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/chris-catignani/hotel-tracker-sub001/infras/otel/mocks"
	"github.com/chris-catignani/hotel-tracker-sub001/shared/cache"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type breakdown struct {
	NetCost float64 `json:"net_cost"`
}

func newCache(t *testing.T) (cache.RedisCache, *miniredis.Miniredis) {
	t.Helper()

	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	t.Cleanup(func() { _ = client.Close() })

	return cache.NewRedisCache(client, mocks.NewOtel()), server
}

func TestRedisCache_SaveAndGet(t *testing.T) {
	c, _ := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:get:b1", breakdown{NetCost: 688.5}, 60))

	var got breakdown
	require.NoError(t, c.Get(ctx, "booking:get:b1", &got))
	assert.InDelta(t, 688.5, got.NetCost, 1e-9)

	require.NoError(t, c.Save(ctx, "raw", "plain", 60))

	var raw string
	require.NoError(t, c.Get(ctx, "raw", &raw))
	assert.Equal(t, "plain", raw)
}

func TestRedisCache_GetMissWrapsNil(t *testing.T) {
	c, _ := newCache(t)

	var got breakdown
	err := c.Get(context.Background(), "missing", &got)

	require.Error(t, err)
	assert.True(t, errors.Is(err, cache.Nil))
}

func TestRedisCache_ClearByPrefix(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:get:b1", breakdown{}, 60))
	require.NoError(t, c.Save(ctx, "booking:gets:1:10", breakdown{}, 60))
	require.NoError(t, c.Save(ctx, "point-type:get:p1", breakdown{}, 60))

	require.NoError(t, c.Clear(ctx, "booking:*"))

	assert.False(t, server.Exists("booking:get:b1"))
	assert.False(t, server.Exists("booking:gets:1:10"))
	assert.True(t, server.Exists("point-type:get:p1"))
}

func TestRedisCache_Delete(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	require.NoError(t, c.Save(ctx, "booking:get:b1", breakdown{}, 60))
	require.NoError(t, c.Delete(ctx, "booking:get:b1"))

	assert.False(t, server.Exists("booking:get:b1"))
}

func TestRedisCache_IncrementStartsWindowOnce(t *testing.T) {
	c, server := newCache(t)
	ctx := context.Background()

	first, err := c.Increment(ctx, "limiter:10.0.0.7", 60)
	require.NoError(t, err)

	server.FastForward(30 * time.Second)

	second, err := c.Increment(ctx, "limiter:10.0.0.7", 60)
	require.NoError(t, err)

	assert.Equal(t, int64(1), first)
	assert.Equal(t, int64(2), second)
	assert.Equal(t, 30*time.Second, server.TTL("limiter:10.0.0.7"))

	server.FastForward(31 * time.Second)
	assert.False(t, server.Exists("limiter:10.0.0.7"))
}
