// Package cache provides translation result caching implementations.
//
// Values are opaque strings (the translator stores JSON-encoded results);
// keys are content-addressed hashes produced by the root package. All
// implementations are safe for concurrent use, apply a lazy TTL (expired
// entries read as absent) and degrade to misses on read failures.
package cache

import "time"

// DefaultTTL is the default entry lifetime: entries older than this are
// treated as absent.
const DefaultTTL = 24 * time.Hour

// TranslationCache is the interface for translation result caching.
type TranslationCache interface {
	// Get retrieves a cached value. Returns empty string and false if not
	// found or expired.
	Get(key string) (string, bool)

	// Set stores a value in the cache.
	Set(key string, value string) error
}
