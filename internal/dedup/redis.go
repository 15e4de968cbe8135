package dedup

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// SetNXer is the slice of redis.Cmdable RedisCache needs.
type SetNXer interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd
}

// RedisCache shares delivery ids across replicas. SET NX makes the
// first-seen decision atomic, and the key TTL is the retention window.
type RedisCache struct {
	client SetNXer
	prefix string
	window time.Duration
}

func NewRedisCache(client SetNXer, prefix string, window time.Duration) *RedisCache {
	if window <= 0 {
		window = DefaultWindow
	}
	return &RedisCache{
		client: client,
		prefix: prefix,
		window: window,
	}
}

func (c *RedisCache) Seen(ctx context.Context, deliveryID string) (bool, error) {
	if deliveryID == "" {
		return false, nil
	}

	stored, err := c.client.SetNX(ctx, c.prefix+deliveryID, time.Now().Unix(), c.window).Result()
	if err != nil {
		return false, fmt.Errorf("recording delivery %s: %w", deliveryID, err)
	}
	return !stored, nil
}

var _ DeliveryCache = (*RedisCache)(nil)
