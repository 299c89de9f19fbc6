package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/platewise/v1/internal/ports/outbound"
)

// CacheRepository implements outbound.CacheRepository on Redis.
type CacheRepository struct {
	client *redis.Client
}

// NewCacheRepository creates a Redis cache repository.
func NewCacheRepository(client *redis.Client) outbound.CacheRepository {
	return &CacheRepository{client: client}
}

// Get returns the cached value, or (nil, nil) on a miss.
func (c *CacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get cache key: %w", err)
	}
	return data, nil
}

// Set stores a value with a TTL.
func (c *CacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		return fmt.Errorf("failed to set cache key: %w", err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (c *CacheRepository) Delete(ctx context.Context, key string) error {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("failed to delete cache key: %w", err)
	}
	return nil
}

// Exists reports whether the key is present.
func (c *CacheRepository) Exists(ctx context.Context, key string) (bool, error) {
	n, err := c.client.Exists(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check cache key: %w", err)
	}
	return n > 0, nil
}
