package cache

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func mustFileCache(t *testing.T, dir string, ttl time.Duration) *FileCache {
	t.Helper()
	c, err := NewFileCache(dir, ttl)
	if err != nil {
		t.Fatalf("NewFileCache failed: %v", err)
	}
	return c
}

func TestFileCache_GetSet(t *testing.T) {
	c := mustFileCache(t, t.TempDir(), time.Hour)

	if err := c.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	val, ok := c.Get("key1")
	if !ok {
		t.Error("Get should return true for existing key")
	}
	if val != "value1" {
		t.Errorf("Get returned %q, want %q", val, "value1")
	}

	if _, ok := c.Get("nonexistent"); ok {
		t.Error("Get should return false for missing key")
	}
}

func TestFileCache_Persistence(t *testing.T) {
	dir := t.TempDir()

	first := mustFileCache(t, dir, time.Hour)
	if err := first.Set("key1", "value1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	// A new cache over the same directory sees the entry.
	second := mustFileCache(t, dir, time.Hour)
	val, ok := second.Get("key1")
	if !ok || val != "value1" {
		t.Errorf("reopened cache returned (%q, %v), want (%q, true)", val, ok, "value1")
	}
}

func TestFileCache_TTL(t *testing.T) {
	c := mustFileCache(t, t.TempDir(), time.Second)

	c.Set("key1", "value1")

	if _, ok := c.Get("key1"); !ok {
		t.Error("Value should be available immediately after set")
	}

	time.Sleep(1100 * time.Millisecond)

	if _, ok := c.Get("key1"); ok {
		t.Error("Value should be expired after TTL")
	}
}

func TestFileCache_CorruptEntry(t *testing.T) {
	dir := t.TempDir()
	c := mustFileCache(t, dir, time.Hour)

	if err := os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatalf("writing corrupt entry: %v", err)
	}

	if _, ok := c.Get("bad"); ok {
		t.Error("corrupt entry should read as a miss")
	}
}

func TestFileCache_InvalidKey(t *testing.T) {
	c := mustFileCache(t, t.TempDir(), time.Hour)

	for _, key := range []string{"", "../escape", `a\b`, "dotted.key"} {
		if err := c.Set(key, "value"); err == nil {
			t.Errorf("Set(%q) should reject the key", key)
		}
		if _, ok := c.Get(key); ok {
			t.Errorf("Get(%q) should be a miss", key)
		}
	}
}

func TestFileCache_Overwrite(t *testing.T) {
	c := mustFileCache(t, t.TempDir(), time.Hour)

	c.Set("key1", "value1")
	c.Set("key1", "value2")

	val, ok := c.Get("key1")
	if !ok || val != "value2" {
		t.Errorf("Get returned (%q, %v), want (%q, true)", val, ok, "value2")
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestFileCache_Entries(t *testing.T) {
	c := mustFileCache(t, t.TempDir(), time.Hour)

	c.Set("key1", "value1")
	c.Set("key2", "value2")

	entries := c.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() returned %d entries, want 2", len(entries))
	}
	if entries["key1"] != "value1" || entries["key2"] != "value2" {
		t.Errorf("Entries() = %v, want both stored values", entries)
	}
}
