package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/royaltyguard/royalty-checker/internal/adapter"
	"github.com/royaltyguard/royalty-checker/internal/metrics"
)

// Cache stores JSON documents with a TTL
//
//go:generate mockgen -source=cache.go -destination=../mocks/cache.go -package=mocks -mock_names=Cache=MockCache
type Cache interface {
	// GetJSON decodes the value at key into v and reports whether it was present
	GetJSON(ctx context.Context, key string, v interface{}) (bool, error)

	// SetJSON stores v at key for ttl
	SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error
}

type redisCache struct {
	client adapter.RedisClient
	json   adapter.JSON
	prefix string
}

// NewRedisCache creates a Cache whose keys are namespaced by prefix
func NewRedisCache(client adapter.RedisClient, json adapter.JSON, prefix string) Cache {
	return &redisCache{
		client: client,
		json:   json,
		prefix: prefix,
	}
}

func (c *redisCache) GetJSON(ctx context.Context, key string, v interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, c.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		metrics.Default().ObserveCacheLookup(false)
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}

	if err := c.json.Unmarshal(raw, v); err != nil {
		return false, fmt.Errorf("failed to decode cache key %s: %w", key, err)
	}
	metrics.Default().ObserveCacheLookup(true)
	return true, nil
}

func (c *redisCache) SetJSON(ctx context.Context, key string, v interface{}, ttl time.Duration) error {
	raw, err := c.json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode cache key %s: %w", key, err)
	}
	if err := c.client.Set(ctx, c.prefix+key, raw, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}
