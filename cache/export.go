package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"
)

// snapshotVersion is the format version written by Export.
const snapshotVersion = "1.0"

// Snapshot is the JSON document produced by Export, used to move cache
// contents between hosts or warm a fresh cache.
type Snapshot struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []SnapshotEntry   `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// SnapshotEntry is a single key-value pair in a snapshot.
type SnapshotEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// ImportResult reports what an import did.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}

// enumerable is implemented by caches whose live entries can be listed.
// The Redis cache deliberately is not: scanning a shared keyspace belongs to
// Redis tooling, not here.
type enumerable interface {
	Entries() map[string]string
}

// Export writes the cache's live entries to w as a JSON snapshot. Only caches
// that can enumerate their entries (in-memory, file) support export.
func Export(w io.Writer, c TranslationCache, metadata map[string]string) error {
	src, ok := c.(enumerable)
	if !ok {
		return fmt.Errorf("cache type %T does not support export", c)
	}

	snap := Snapshot{
		Version:    snapshotVersion,
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Metadata:   metadata,
	}
	for key, value := range src.Entries() {
		snap.Entries = append(snap.Entries, SnapshotEntry{Key: key, Value: value})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding snapshot: %w", err)
	}
	return nil
}

// ExportToFile writes a snapshot to the given path.
func ExportToFile(path string, c TranslationCache, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating snapshot file: %w", err)
	}
	defer f.Close()

	return Export(f, c, metadata)
}

// Import loads a snapshot into the cache. Entries the cache rejects are
// counted, not fatal, so one bad key does not abort a warm-up.
func Import(r io.Reader, c TranslationCache) (*ImportResult, error) {
	var snap Snapshot
	if err := json.NewDecoder(r).Decode(&snap); err != nil {
		return nil, fmt.Errorf("decoding snapshot: %w", err)
	}

	result := &ImportResult{
		Version:  snap.Version,
		Metadata: snap.Metadata,
	}
	for _, entry := range snap.Entries {
		if err := c.Set(entry.Key, entry.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}
	return result, nil
}

// ImportFromFile loads a snapshot from the given path.
func ImportFromFile(path string, c TranslationCache) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening snapshot file: %w", err)
	}
	defer f.Close()

	return Import(f, c)
}
