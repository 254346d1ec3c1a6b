// Package memory provides an in-process response cache for single
// instance deployments that want fewer Figma round trips without
// running Redis.
package memory

import (
	"context"
	"sync"
	"time"

	"figctx/internal/metrics"
)

// Cache is a TTL map guarded by a mutex. Expired entries are dropped
// lazily on lookup.
type Cache struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

type entry struct {
	value     []byte
	expiresAt time.Time
}

type Option func(*Cache)

// WithTTL sets the expiration for cached responses.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// withClock overrides the time source in tests.
func withClock(now func() time.Time) Option {
	return func(c *Cache) {
		c.now = now
	}
}

// New creates an empty cache.
func New(opts ...Option) *Cache {
	cache := &Cache{
		entries: make(map[string]entry),
		ttl:     5 * time.Minute,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

// Get returns the cached body for key, if present and fresh.
func (c *Cache) Get(_ context.Context, key string) ([]byte, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		metrics.CacheMiss()
		return nil, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.entries, key)
		metrics.CacheMiss()
		return nil, false
	}

	metrics.CacheHit()
	val := make([]byte, len(e.value))
	copy(val, e.value)
	return val, true
}

// Set stores body under key with the configured TTL.
func (c *Cache) Set(_ context.Context, key string, value []byte) {
	val := make([]byte, len(value))
	copy(val, value)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{
		value:     val,
		expiresAt: c.now().Add(c.ttl),
	}
}
