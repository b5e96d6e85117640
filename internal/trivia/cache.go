package trivia

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

const (
	defaultCacheTTL = 10 * time.Minute
	categoriesKey   = "trivia:categories"
)

var cacheLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
	Namespace: "trivia",
	Name:      "category_cache_lookups_total",
	Help:      "Category cache lookups by result.",
}, []string{"result"})

func init() {
	prometheus.MustRegister(cacheLookups)
}

// CategoryCache stores the category map so listing endpoints can skip the database.
type CategoryCache interface {
	Get(ctx context.Context) (map[int]string, bool, error)
	Set(ctx context.Context, categories map[int]string) error
}

// RedisCategoryCache is the Redis-backed CategoryCache.
type RedisCategoryCache struct {
	client *redis.Client
	ttl    time.Duration
}

var _ CategoryCache = (*RedisCategoryCache)(nil)

func NewRedisCategoryCache(client *redis.Client, ttl time.Duration) *RedisCategoryCache {
	if ttl <= 0 {
		ttl = defaultCacheTTL
	}
	return &RedisCategoryCache{client: client, ttl: ttl}
}

func (c *RedisCategoryCache) Get(ctx context.Context) (map[int]string, bool, error) {
	data, err := c.client.Get(ctx, categoriesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			cacheLookups.WithLabelValues("miss").Inc()
			return nil, false, nil
		}
		cacheLookups.WithLabelValues("error").Inc()
		return nil, false, err
	}
	var categories map[int]string
	if err := json.Unmarshal(data, &categories); err != nil {
		cacheLookups.WithLabelValues("error").Inc()
		return nil, false, err
	}
	cacheLookups.WithLabelValues("hit").Inc()
	return categories, true, nil
}

func (c *RedisCategoryCache) Set(ctx context.Context, categories map[int]string) error {
	data, err := json.Marshal(categories)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, categoriesKey, data, c.ttl).Err()
}
