// Package redis caches raw Figma API responses in Redis so repeated
// tool calls against the same file skip the upstream round trip.
package redis

import (
	"context"
	"log/slog"
	"time"

	"figctx/internal/logging"
	"figctx/internal/metrics"

	backend "github.com/redis/go-redis/v9"
)

// Cache stores API response bodies under a shared prefix. Lookup and
// store failures degrade to misses; they never fail the request.
type Cache struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

type Option func(*Cache)

// WithTTL sets the expiration for cached responses.
func WithTTL(ttl time.Duration) Option {
	return func(c *Cache) {
		c.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached responses.
func WithPrefix(prefix string) Option {
	return func(c *Cache) {
		c.prefix = prefix
	}
}

// WithLogger sets the logger used for degraded-mode warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Cache) {
		c.logger = logger
	}
}

// New creates a Redis cache with its own client.
func New(address, password string, db int, opts ...Option) *Cache {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a Redis cache from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Cache {
	cache := &Cache{
		client: client,
		prefix: "figctx:cache:",
		ttl:    5 * time.Minute,
		logger: logging.NewNop(),
	}

	for _, opt := range opts {
		opt(cache)
	}

	return cache
}

func (c *Cache) key(k string) string {
	return c.prefix + k
}

// Get returns the cached body for key, if present.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	val, err := c.client.Get(ctx, c.key(key)).Bytes()
	if err != nil {
		if err != backend.Nil {
			c.logger.Warn("redis cache lookup failed", "key", key, "error", err)
		}
		metrics.CacheMiss()
		return nil, false
	}

	metrics.CacheHit()
	return val, true
}

// Set stores body under key with the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) {
	if err := c.client.Set(ctx, c.key(key), value, c.ttl).Err(); err != nil {
		c.logger.Warn("redis cache store failed", "key", key, "error", err)
	}
}

// Close closes the redis client.
func (c *Cache) Close() error {
	return c.client.Close()
}
