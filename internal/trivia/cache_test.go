package trivia

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis cache tests")
	}
	client := redis.NewClient(&redis.Options{Addr: addr, DB: 15})
	t.Cleanup(func() {
		client.Del(context.Background(), categoriesKey)
		_ = client.Close()
	})
	return client
}

func TestRedisCategoryCache(t *testing.T) {
	client := newTestRedis(t)
	cache := NewRedisCategoryCache(client, time.Minute)
	ctx := context.Background()

	client.Del(ctx, categoriesKey)
	_, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := map[int]string{1: "Science", 6: "Sports"}
	require.NoError(t, cache.Set(ctx, want))

	got, ok, err := cache.Get(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, want, got)

	ttl, err := client.TTL(ctx, categoriesKey).Result()
	require.NoError(t, err)
	assert.LessOrEqual(t, ttl, time.Minute)
}

func TestNewRedisCategoryCacheDefaultTTL(t *testing.T) {
	cache := NewRedisCategoryCache(nil, 0)
	assert.Equal(t, defaultCacheTTL, cache.ttl)
}
