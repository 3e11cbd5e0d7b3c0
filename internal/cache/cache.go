package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// Cache is an explicit injected cache service over a Redis client. A nil
// client disables every operation, so callers never branch on availability.
type Cache struct {
	client *redis.Client
}

// New returns a Cache over the given client. client may be nil.
func New(client *redis.Client) *Cache {
	return &Cache{client: client}
}

// Client exposes the underlying Redis client (used by the rate limiter).
func (c *Cache) Client() *redis.Client {
	return c.client
}

// Enabled reports whether a backing Redis client is present.
func (c *Cache) Enabled() bool {
	return c != nil && c.client != nil
}

// GetJSON attempts to get the key and unmarshal into dest.
// Returns (true, nil) if found and unmarshaled, (false, nil) if not found.
func (c *Cache) GetJSON(ctx context.Context, key string, dest any) (bool, error) {
	if !c.Enabled() {
		return false, nil
	}
	s, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(s), dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON marshals v and sets the key with TTL.
func (c *Cache) SetJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	if !c.Enabled() {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, key, b, ttl).Err()
}

// Aside tries the cache first; on miss it calls fetch (which must populate
// dest), then stores the result with ttl. The hit result reports whether the
// value came from the cache. Cache read errors count as a miss, so the store
// stays authoritative when Redis is down; only fetch errors surface.
func (c *Cache) Aside(ctx context.Context, key string, dest any, ttl time.Duration, fetch func() error) (hit bool, err error) {
	found, getErr := c.GetJSON(ctx, key, dest)
	if found && getErr == nil {
		return true, nil
	}

	// Fetch from source (DB)
	if err := fetch(); err != nil {
		return false, err
	}

	// Store into cache (best-effort)
	_ = c.SetJSON(ctx, key, dest, ttl)
	return false, nil
}

// Flush removes the given keys. Safe under concurrent writers: DEL is atomic
// and the next read repopulates from the store.
func (c *Cache) Flush(ctx context.Context, keys ...string) {
	if !c.Enabled() || len(keys) == 0 {
		return
	}
	c.client.Del(ctx, keys...)
}
