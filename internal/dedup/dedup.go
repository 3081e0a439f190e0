package dedup

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const (
	cacheFile = "seen_jobs.json"
	// DefaultTTL is how long a scraped listing stays remembered.
	DefaultTTL = 30 * 24 * time.Hour
)

type seenEntry struct {
	URL       string `json:"url"`
	Timestamp int64  `json:"timestamp"`
}

// ListingCache remembers listing URLs written by previous runs.
type ListingCache struct {
	mu       sync.Mutex
	filePath string
	ttl      time.Duration
	now      func() time.Time
	seen     map[string]int64
}

// NewListingCache creates or loads the cache in cacheDir.
func NewListingCache(cacheDir string, ttl time.Duration) (*ListingCache, error) {
	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}
	cache := &ListingCache{
		filePath: filepath.Join(cacheDir, cacheFile),
		ttl:      ttl,
		now:      time.Now,
		seen:     make(map[string]int64),
	}
	cache.load()
	return cache, nil
}

func (c *ListingCache) IsSeen(url string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, exists := c.seen[url]
	return exists
}

// Add marks urls as seen and persists the cache when anything changed.
func (c *ListingCache) Add(urls []string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now().UnixMilli()
	changed := false
	for _, url := range urls {
		if _, exists := c.seen[url]; !exists {
			c.seen[url] = now
			changed = true
		}
	}

	if changed {
		c.save()
	}
}

func (c *ListingCache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.seen)
}

// load drops entries older than ttl.
func (c *ListingCache) load() {
	data, err := os.ReadFile(c.filePath)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("⚠️ Failed to read %s: %v", cacheFile, err)
		}
		return
	}

	var entries []seenEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Printf("⚠️ Failed to parse %s: %v", cacheFile, err)
		return
	}

	cutoff := c.now().Add(-c.ttl).UnixMilli()
	loaded := 0
	for _, e := range entries {
		if e.Timestamp > cutoff {
			c.seen[e.URL] = e.Timestamp
			loaded++
		}
	}
	log.Printf("📋 Loaded %d previously seen listings (%d expired and removed)", loaded, len(entries)-loaded)
}

// save must be called with mu held.
func (c *ListingCache) save() {
	entries := make([]seenEntry, 0, len(c.seen))
	for url, ts := range c.seen {
		entries = append(entries, seenEntry{URL: url, Timestamp: ts})
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		log.Printf("⚠️ Failed to marshal seen listings: %v", err)
		return
	}
	if err := os.WriteFile(c.filePath, data, 0644); err != nil {
		log.Printf("⚠️ Failed to write %s: %v", cacheFile, err)
		return
	}
	log.Printf("💾 Saved %d seen listings to cache", len(entries))
}
