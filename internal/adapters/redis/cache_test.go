package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"

	"figctx/internal/adapters/redis"

	backend "github.com/redis/go-redis/v9"
)

func TestRedisCache_RoundTrip(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	cache := redis.NewFromClient(client)
	ctx := context.Background()

	// 1. Empty cache misses
	_, ok := cache.Get(ctx, "files/abc")
	assert.False(t, ok, "empty cache should miss")

	// 2. Store and read back
	cache.Set(ctx, "files/abc", []byte(`{"name":"Test"}`))
	assert.True(t, mr.Exists("figctx:cache:files/abc"), "key should carry the default prefix")

	val, ok := cache.Get(ctx, "files/abc")
	assert.True(t, ok)
	assert.Equal(t, []byte(`{"name":"Test"}`), val)
}

func TestRedisCache_TTLExpiry(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	cache := redis.NewFromClient(client, redis.WithTTL(time.Minute))
	ctx := context.Background()

	cache.Set(ctx, "files/abc", []byte("body"))

	_, ok := cache.Get(ctx, "files/abc")
	assert.True(t, ok, "fresh entry should hit")

	mr.FastForward(2 * time.Minute)

	_, ok = cache.Get(ctx, "files/abc")
	assert.False(t, ok, "expired entry should miss")
}

func TestRedisCache_CustomPrefix(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)
	defer mr.Close()

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	cache := redis.NewFromClient(client, redis.WithPrefix("test:"))

	cache.Set(context.Background(), "k", []byte("v"))
	assert.True(t, mr.Exists("test:k"))
	assert.False(t, mr.Exists("figctx:cache:k"))
}

func TestRedisCache_DegradesWhenUnavailable(t *testing.T) {
	mr, err := miniredis.Run()
	assert.NoError(t, err)

	client := backend.NewClient(&backend.Options{
		Addr: mr.Addr(),
	})
	cache := redis.NewFromClient(client)
	ctx := context.Background()

	cache.Set(ctx, "k", []byte("v"))
	mr.Close()

	// Lookups against a dead backend degrade to misses.
	_, ok := cache.Get(ctx, "k")
	assert.False(t, ok)

	// Stores must not panic either.
	cache.Set(ctx, "k2", []byte("v2"))
}
