package cache

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
)

func TestExport(t *testing.T) {
	c := mustMemCache(t, time.Hour, 0)
	c.Set("key1", "value1")
	c.Set("key2", "value2")

	var buf bytes.Buffer
	if err := Export(&buf, c, map[string]string{"source": "test"}); err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	var snap Snapshot
	if err := json.Unmarshal(buf.Bytes(), &snap); err != nil {
		t.Fatalf("export output is not valid JSON: %v", err)
	}

	if snap.Version != "1.0" {
		t.Errorf("Version = %q, want %q", snap.Version, "1.0")
	}
	if snap.Metadata["source"] != "test" {
		t.Errorf("Metadata[source] = %q, want %q", snap.Metadata["source"], "test")
	}
	if len(snap.Entries) != 2 {
		t.Fatalf("exported %d entries, want 2", len(snap.Entries))
	}

	got := make(map[string]string)
	for _, e := range snap.Entries {
		got[e.Key] = e.Value
	}
	if got["key1"] != "value1" || got["key2"] != "value2" {
		t.Errorf("exported entries = %v, want both stored values", got)
	}
}

func TestExport_UnsupportedCache(t *testing.T) {
	db, _ := redismock.NewClientMock()
	defer db.Close()
	c := NewRedisCacheFromClient(db, time.Hour, "test:")

	var buf bytes.Buffer
	err := Export(&buf, c, nil)
	if err == nil {
		t.Fatal("Export should fail for a cache without entry enumeration")
	}
	if !strings.Contains(err.Error(), "does not support export") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestImport(t *testing.T) {
	input := `{
		"version": "1.0",
		"exported_at": "2026-01-01T00:00:00Z",
		"entries": [
			{"key": "key1", "value": "value1"},
			{"key": "key2", "value": "value2"}
		],
		"metadata": {"source": "other-host"}
	}`

	c := mustMemCache(t, time.Hour, 0)

	result, err := Import(strings.NewReader(input), c)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}
	if result.Failed != 0 {
		t.Errorf("Failed = %d, want 0", result.Failed)
	}
	if result.Metadata["source"] != "other-host" {
		t.Errorf("Metadata[source] = %q, want %q", result.Metadata["source"], "other-host")
	}

	val, ok := c.Get("key1")
	if !ok || val != "value1" {
		t.Errorf("imported entry missing: got (%q, %v)", val, ok)
	}
}

func TestImport_InvalidJSON(t *testing.T) {
	c := mustMemCache(t, time.Hour, 0)

	if _, err := Import(strings.NewReader("{broken"), c); err == nil {
		t.Fatal("Import should fail on invalid JSON")
	}
}

func TestImport_RejectedEntriesAreCounted(t *testing.T) {
	// A file cache rejects keys with path separators, so one entry fails.
	c := mustFileCache(t, t.TempDir(), time.Hour)

	input := `{
		"version": "1.0",
		"entries": [
			{"key": "good", "value": "v1"},
			{"key": "bad/key", "value": "v2"}
		]
	}`

	result, err := Import(strings.NewReader(input), c)
	if err != nil {
		t.Fatalf("Import failed: %v", err)
	}
	if result.Imported != 1 || result.Failed != 1 {
		t.Errorf("Imported=%d Failed=%d, want 1 and 1", result.Imported, result.Failed)
	}
}

func TestExportImport_RoundTripFile(t *testing.T) {
	src := mustMemCache(t, time.Hour, 0)
	src.Set("key1", "value1")
	src.Set("key2", "value2")

	path := filepath.Join(t.TempDir(), "snapshot.json")
	if err := ExportToFile(path, src, nil); err != nil {
		t.Fatalf("ExportToFile failed: %v", err)
	}

	dst := mustMemCache(t, time.Hour, 0)
	result, err := ImportFromFile(path, dst)
	if err != nil {
		t.Fatalf("ImportFromFile failed: %v", err)
	}
	if result.Imported != 2 {
		t.Errorf("Imported = %d, want 2", result.Imported)
	}

	for key, want := range map[string]string{"key1": "value1", "key2": "value2"} {
		if val, ok := dst.Get(key); !ok || val != want {
			t.Errorf("dst.Get(%q) = (%q, %v), want (%q, true)", key, val, ok, want)
		}
	}
}
