package dedup_test

import (
	"context"
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/redis/go-redis/v9"

	"basegraph.app/taskhook/internal/dedup"
)

type fakeRedis struct {
	keys    map[string]time.Duration
	err     error
	lastKey string
}

func (f *fakeRedis) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	f.lastKey = key
	if f.err != nil {
		return redis.NewBoolResult(false, f.err)
	}
	if _, ok := f.keys[key]; ok {
		return redis.NewBoolResult(false, nil)
	}
	f.keys[key] = expiration
	return redis.NewBoolResult(true, nil)
}

var _ = Describe("RedisCache", func() {
	var (
		client *fakeRedis
		cache  *dedup.RedisCache
		ctx    context.Context
	)

	BeforeEach(func() {
		ctx = context.Background()
		client = &fakeRedis{keys: map[string]time.Duration{}}
		cache = dedup.NewRedisCache(client, "taskhook:delivery:", 10*time.Minute)
	})

	It("claims the key with the retention window as TTL", func() {
		seen, err := cache.Seen(ctx, "72d3162e-cc78-11e3-81ab-4c9367dc0958")
		Expect(err).ToNot(HaveOccurred())
		Expect(seen).To(BeFalse())
		Expect(client.lastKey).To(Equal("taskhook:delivery:72d3162e-cc78-11e3-81ab-4c9367dc0958"))
		Expect(client.keys).To(HaveKeyWithValue(client.lastKey, 10*time.Minute))
	})

	It("reports a duplicate when the key already exists", func() {
		Expect(cache.Seen(ctx, "d-1")).To(BeFalse())
		Expect(cache.Seen(ctx, "d-1")).To(BeTrue())
	})

	It("skips redis entirely for an empty id", func() {
		Expect(cache.Seen(ctx, "")).To(BeFalse())
		Expect(client.lastKey).To(BeEmpty())
	})

	It("surfaces redis failures", func() {
		client.err = errors.New("connection refused")
		seen, err := cache.Seen(ctx, "d-1")
		Expect(err).To(MatchError(ContainSubstring("connection refused")))
		Expect(seen).To(BeFalse())
	})
})
