package cache

import (
	"context"
	"time"

	"chronicle/internal/config"
	"chronicle/internal/middleware"
	"chronicle/internal/models"
)

// FeedKey is the single key the global feed snapshot lives under. All viewers
// and pages share one TTL window: the snapshot holds the pre-pagination
// sequence and slicing happens after retrieval, so one key stays coherent.
const FeedKey = "feed:index"

// FeedTTL bounds how stale the global feed may get without a write.
const FeedTTL = 20 * time.Second

// FeedCache is the time-boxed snapshot of the global feed sequence with a
// configurable invalidation policy.
type FeedCache struct {
	cache  *Cache
	policy string
}

// NewFeedCache returns a FeedCache with the given policy
// (config.CachePolicy* constants). An empty policy means proactive.
func NewFeedCache(cache *Cache, policy string) *FeedCache {
	if policy == "" {
		policy = config.CachePolicyProactive
	}
	return &FeedCache{cache: cache, policy: policy}
}

// Aside serves the global post sequence cache-first, recomputing via fetch on
// a miss. fetch must write into dest.
func (f *FeedCache) Aside(ctx context.Context, dest *[]*models.Post, fetch func() error) error {
	hit, err := f.cache.Aside(ctx, FeedKey, dest, FeedTTL, fetch)
	if err != nil {
		return err
	}
	if f.cache.Enabled() {
		if hit {
			middleware.FeedCacheHits.Inc()
		} else {
			middleware.FeedCacheMisses.Inc()
		}
	}
	return nil
}

// OnPostCreated flushes the snapshot unless the policy is TTL-only.
func (f *FeedCache) OnPostCreated(ctx context.Context) {
	if f.policy == config.CachePolicyTTL {
		return
	}
	f.cache.Flush(ctx, FeedKey)
	middleware.FeedCacheFlushes.WithLabelValues("create").Inc()
}

// OnPostDeleted flushes the snapshot only under the "both" policy. The
// observed design relies purely on TTL expiry after deletes; that staleness
// window is intentional, not a bug.
func (f *FeedCache) OnPostDeleted(ctx context.Context) {
	if f.policy != config.CachePolicyBoth {
		return
	}
	f.cache.Flush(ctx, FeedKey)
	middleware.FeedCacheFlushes.WithLabelValues("delete").Inc()
}
