// Package dedup remembers webhook delivery ids for a retention window so a
// redelivered or replayed delivery is acknowledged without being processed
// twice.
package dedup

import (
	"context"
	"time"
)

// DefaultWindow is how long a delivery id is remembered.
const DefaultWindow = 10 * time.Minute

// DeliveryCache records delivery ids on first sight.
//
// Seen reports true when deliveryID was already recorded within the
// window, without extending its lifetime. Otherwise it records the id and
// reports false. An empty id is never a duplicate and is not recorded.
type DeliveryCache interface {
	Seen(ctx context.Context, deliveryID string) (bool, error)
}
