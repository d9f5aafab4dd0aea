package cache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// fileEntry is the persisted record shape: the value plus its creation time.
type fileEntry struct {
	Value     string `json:"value"`
	CreatedAt int64  `json:"created_at"`
}

// FileCache stores one JSON file per cache key in a directory, surviving
// process restarts. Reads of missing, expired or corrupt files behave as
// misses.
type FileCache struct {
	dir string
	ttl time.Duration
}

// NewFileCache creates a file-backed cache rooted at dir, creating the
// directory if needed. If ttl is zero or negative, entries never expire.
func NewFileCache(dir string, ttl time.Duration) (*FileCache, error) {
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	if ttl < 0 {
		ttl = 0
	}
	return &FileCache{
		dir: dir,
		ttl: ttl,
	}, nil
}

// Get retrieves a value from disk. Any read or decode failure is a miss.
func (c *FileCache) Get(key string) (string, bool) {
	path, ok := c.entryPath(key)
	if !ok {
		return "", false
	}

	data, err := os.ReadFile(path) // #nosec G304 - path is derived from a hex cache key
	if err != nil {
		return "", false
	}

	var entry fileEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return "", false
	}

	if c.ttl > 0 && time.Since(time.Unix(entry.CreatedAt, 0)) > c.ttl {
		return "", false
	}

	return entry.Value, true
}

// Set writes the entry file. Existing entries for the same key are
// overwritten.
func (c *FileCache) Set(key string, value string) error {
	path, ok := c.entryPath(key)
	if !ok {
		return fmt.Errorf("invalid cache key %q", key)
	}

	entry := fileEntry{
		Value:     value,
		CreatedAt: time.Now().Unix(),
	}

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding cache entry: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing cache entry: %w", err)
	}
	return nil
}

// Len returns the number of entry files on disk (including expired ones).
func (c *FileCache) Len() int {
	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return 0
	}
	return len(matches)
}

// Entries returns all non-expired entries as key-value pairs.
// This is used for cache export.
func (c *FileCache) Entries() map[string]string {
	result := make(map[string]string)

	matches, err := filepath.Glob(filepath.Join(c.dir, "*.json"))
	if err != nil {
		return result
	}

	for _, path := range matches {
		key := strings.TrimSuffix(filepath.Base(path), ".json")
		if value, ok := c.Get(key); ok {
			result[key] = value
		}
	}

	return result
}

// entryPath maps a key to its file, rejecting keys that could escape the
// cache directory.
func (c *FileCache) entryPath(key string) (string, bool) {
	if key == "" || strings.ContainsAny(key, `/\.`) {
		return "", false
	}
	return filepath.Join(c.dir, key+".json"), true
}

// Verify FileCache implements TranslationCache
var _ TranslationCache = (*FileCache)(nil)
