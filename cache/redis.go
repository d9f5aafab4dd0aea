package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// DefaultKeyPrefix namespaces this module's keys in a shared Redis.
const DefaultKeyPrefix = "signgloss:"

// opTimeout bounds a single Redis round trip so a stalled server degrades to
// cache misses instead of blocking translations.
const opTimeout = 3 * time.Second

// RedisConfig holds configuration for the Redis cache.
type RedisConfig struct {
	URL       string        // Connection URL (e.g., "redis://localhost:6379")
	TTL       time.Duration // Entry lifetime (0 = no expiration)
	KeyPrefix string        // Prefix for all keys (default: DefaultKeyPrefix)
}

// RedisCache shares translation results across processes through Redis.
// Expiry is delegated to Redis key TTLs; every operation carries its own
// short timeout.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	prefix string
}

// NewRedisCache connects to Redis using the configured URL and verifies the
// connection before returning.
func NewRedisCache(cfg RedisConfig) (*RedisCache, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	c := NewRedisCacheFromClient(redis.NewClient(opts), cfg.TTL, cfg.KeyPrefix)
	if err := c.Ping(); err != nil {
		return nil, err
	}
	return c, nil
}

// NewRedisCacheFromClient wraps an existing client, e.g. a shared pool or a
// mock in tests.
func NewRedisCacheFromClient(client *redis.Client, ttl time.Duration, keyPrefix string) *RedisCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	if ttl < 0 {
		ttl = 0
	}
	return &RedisCache{client: client, ttl: ttl, prefix: keyPrefix}
}

func (c *RedisCache) opCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), opTimeout)
}

// Get retrieves a value. Missing keys, timeouts and connection failures all
// read as misses.
func (c *RedisCache) Get(key string) (string, bool) {
	ctx, cancel := c.opCtx()
	defer cancel()

	val, err := c.client.Get(ctx, c.prefix+key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set stores a value under the configured TTL.
func (c *RedisCache) Set(key string, value string) error {
	ctx, cancel := c.opCtx()
	defer cancel()

	return c.client.Set(ctx, c.prefix+key, value, c.ttl).Err()
}

// Ping verifies the connection.
func (c *RedisCache) Ping() error {
	ctx, cancel := c.opCtx()
	defer cancel()

	return c.client.Ping(ctx).Err()
}

// Close releases the underlying client.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Verify RedisCache implements TranslationCache
var _ TranslationCache = (*RedisCache)(nil)
