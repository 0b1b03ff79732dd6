package holiday

import (
	"encoding/json"
	"log/slog"
	"os"
	"time"

	"github.com/adrg/xdg"
)

// cacheFile lives under the XDG state directory.
const cacheFile = "festive/detection-cache.json"

// CacheTTL is the freshness window for a stored detection.
const CacheTTL = time.Hour

// Cache persists the latest detection to a small state file so other
// surfaces (debug panel, future sessions within the hour) can see it
// without recomputing. It is advisory only: every failure degrades to a
// no-op with a warning, and the detector never requires it.
type Cache struct {
	path string
	log  *slog.Logger
}

type cacheEntry struct {
	Result    Detection `json:"result"`
	Timestamp int64     `json:"timestamp"` // unix milliseconds
}

// NewCache resolves the state file path. When the state directory cannot
// be resolved the cache is permanently disabled.
func NewCache(logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	path, err := xdg.StateFile(cacheFile)
	if err != nil {
		logger.Warn("detection cache disabled", "error", err)
		path = ""
	}
	return &Cache{path: path, log: logger}
}

// NewCacheAt is NewCache with an explicit file path, for callers that
// manage their own state location. An empty path disables the cache.
func NewCacheAt(path string, logger *slog.Logger) *Cache {
	if logger == nil {
		logger = slog.Default()
	}
	return &Cache{path: path, log: logger}
}

// Write stores a detection with the current timestamp, overwriting any
// previous entry.
func (c *Cache) Write(det Detection) {
	if c == nil || c.path == "" {
		return
	}
	entry := cacheEntry{Result: det, Timestamp: time.Now().UnixMilli()}
	data, err := json.Marshal(entry)
	if err != nil {
		c.log.Warn("could not encode detection cache", "error", err)
		return
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		c.log.Warn("could not write detection cache", "error", err)
	}
}

// Read returns the stored detection if it is fresher than CacheTTL.
// Stale or unreadable entries report ok=false and are left in place; the
// next Write overwrites them.
func (c *Cache) Read() (Detection, bool) {
	if c == nil || c.path == "" {
		return Detection{}, false
	}
	data, err := os.ReadFile(c.path)
	if err != nil {
		return Detection{}, false
	}
	var entry cacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		c.log.Warn("could not decode detection cache", "error", err)
		return Detection{}, false
	}
	age := time.Since(time.UnixMilli(entry.Timestamp))
	if age < 0 || age >= CacheTTL {
		return Detection{}, false
	}
	return entry.Result, true
}

// Clear removes the cache file. Missing files are not an error.
func (c *Cache) Clear() {
	if c == nil || c.path == "" {
		return
	}
	if err := os.Remove(c.path); err != nil && !os.IsNotExist(err) {
		c.log.Warn("could not clear detection cache", "error", err)
	}
}
