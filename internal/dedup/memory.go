package dedup

import (
	"context"
	"sync"
	"time"
)

// MemoryCache is a process-local DeliveryCache. Expired entries are swept
// on every call, so there is no background goroutine to manage. In a
// multi-replica deployment each replica deduplicates only what it sees;
// use RedisCache there.
type MemoryCache struct {
	mu      sync.Mutex
	window  time.Duration
	entries map[string]time.Time
	Now     func() time.Time
}

func NewMemoryCache(window time.Duration) *MemoryCache {
	if window <= 0 {
		window = DefaultWindow
	}
	return &MemoryCache{
		window:  window,
		entries: map[string]time.Time{},
		Now:     time.Now,
	}
}

func (c *MemoryCache) Seen(_ context.Context, deliveryID string) (bool, error) {
	if deliveryID == "" {
		return false, nil
	}
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.purgeLocked(now)
	if _, ok := c.entries[deliveryID]; ok {
		return true, nil
	}
	c.entries[deliveryID] = now
	return false, nil
}

// Len returns the number of remembered deliveries, including any that
// expired since the last call to Seen.
func (c *MemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

func (c *MemoryCache) purgeLocked(now time.Time) {
	for id, receivedAt := range c.entries {
		if now.Sub(receivedAt) >= c.window {
			delete(c.entries, id)
		}
	}
}

func (c *MemoryCache) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

var _ DeliveryCache = (*MemoryCache)(nil)
