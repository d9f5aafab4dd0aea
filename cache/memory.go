package cache

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultCapacity is the default entry bound for the in-memory cache.
const DefaultCapacity = 1024

// cacheEntry holds a cached value with its creation timestamp. Entries are
// never mutated after creation.
type cacheEntry struct {
	value     string
	createdAt time.Time
}

// InMemoryCache is a thread-safe in-memory cache with TTL support and a
// fixed capacity bound. Least-recently-used entries are evicted once the
// bound is reached, so TTL alone is not relied on to reclaim space. Expired
// entries read as absent; the LRU policy removes them eventually.
type InMemoryCache struct {
	entries *lru.Cache[string, cacheEntry]
	mu      sync.Mutex
	ttl     time.Duration
}

// NewInMemoryCache creates an in-memory cache. If ttl is zero or negative,
// entries never expire. If capacity is zero or negative, DefaultCapacity is
// used.
func NewInMemoryCache(ttl time.Duration, capacity int) (*InMemoryCache, error) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if ttl < 0 {
		ttl = 0
	}
	entries, err := lru.New[string, cacheEntry](capacity)
	if err != nil {
		return nil, err
	}
	return &InMemoryCache{
		entries: entries,
		ttl:     ttl,
	}, nil
}

// Get retrieves a value from the cache. Returns the value and true if found
// and not expired, empty string and false otherwise.
func (c *InMemoryCache) Get(key string) (string, bool) {
	c.mu.Lock()
	entry, ok := c.entries.Get(key)
	c.mu.Unlock()

	if !ok {
		return "", false
	}

	if c.ttl > 0 && time.Since(entry.createdAt) > c.ttl {
		return "", false
	}

	return entry.value, true
}

// Set stores a value in the cache, evicting the least-recently-used entry
// when the capacity bound is reached.
func (c *InMemoryCache) Set(key string, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries.Add(key, cacheEntry{
		value:     value,
		createdAt: time.Now(),
	})
	return nil
}

// Len returns the number of entries in the cache (including expired ones not
// yet evicted).
func (c *InMemoryCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Clear removes all entries from the cache.
func (c *InMemoryCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Purge()
}

// Entries returns all non-expired entries as key-value pairs.
// This is used for cache export.
func (c *InMemoryCache) Entries() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()

	result := make(map[string]string)
	now := time.Now()

	for _, key := range c.entries.Keys() {
		entry, ok := c.entries.Peek(key)
		if !ok {
			continue
		}
		if c.ttl > 0 && now.Sub(entry.createdAt) > c.ttl {
			continue
		}
		result[key] = entry.value
	}

	return result
}

// Verify InMemoryCache implements TranslationCache
var _ TranslationCache = (*InMemoryCache)(nil)
