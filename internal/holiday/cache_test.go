package holiday

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func testCache(t *testing.T) *Cache {
	t.Helper()
	return &Cache{
		path: filepath.Join(t.TempDir(), "detection-cache.json"),
		log:  slog.Default(),
	}
}

func TestCache_RoundTrip(t *testing.T) {
	t.Parallel()

	c := testCache(t)
	cfg, _ := Builtin().ConfigFor(Christmas)
	det := Detection{
		Holiday:        Christmas,
		Config:         cfg,
		DetectedAt:     time.Now(),
		ManualOverride: true,
	}

	c.Write(det)
	got, ok := c.Read()
	if !ok {
		t.Fatal("fresh entry should be readable")
	}
	if got.Holiday != Christmas || !got.ManualOverride {
		t.Errorf("round trip lost fields: %+v", got)
	}
	if got.Config == nil || got.Config.ID != Christmas {
		t.Error("round trip lost the config")
	}
}

func TestCache_StaleEntryIgnoredButKept(t *testing.T) {
	t.Parallel()

	c := testCache(t)
	entry := cacheEntry{
		Result:    Detection{Holiday: Halloween},
		Timestamp: time.Now().Add(-2 * time.Hour).UnixMilli(),
	}
	data, err := json.Marshal(entry)
	if err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok := c.Read(); ok {
		t.Error("stale entry should not be returned")
	}
	// Not eagerly deleted: the file is still there for the next Write to
	// overwrite.
	if _, err := os.Stat(c.path); err != nil {
		t.Errorf("stale entry should remain on disk: %v", err)
	}
}

func TestCache_CorruptEntry(t *testing.T) {
	t.Parallel()

	c := testCache(t)
	if err := os.WriteFile(c.path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Read(); ok {
		t.Error("corrupt entry should be treated as absent")
	}
}

func TestCache_DisabledIsNoOp(t *testing.T) {
	t.Parallel()

	c := &Cache{log: slog.Default()} // no resolved path
	c.Write(Detection{Holiday: Christmas})
	if _, ok := c.Read(); ok {
		t.Error("disabled cache should never return entries")
	}
	c.Clear()

	var nilCache *Cache
	nilCache.Write(Detection{})
	nilCache.Clear()
	if _, ok := nilCache.Read(); ok {
		t.Error("nil cache should never return entries")
	}
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	c := testCache(t)
	c.Write(Detection{Holiday: MidAutumn})
	c.Clear()
	if _, ok := c.Read(); ok {
		t.Error("cleared cache should be empty")
	}
	c.Clear() // idempotent on missing file
}
