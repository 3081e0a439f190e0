package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListingCache_PersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()

	first, err := NewListingCache(dir, DefaultTTL)
	require.NoError(t, err)
	assert.False(t, first.IsSeen("https://a"))

	first.Add([]string{"https://a", "https://b", "https://a"})
	assert.True(t, first.IsSeen("https://a"))
	assert.Equal(t, 2, first.Len())

	second, err := NewListingCache(dir, DefaultTTL)
	require.NoError(t, err)
	assert.True(t, second.IsSeen("https://a"))
	assert.True(t, second.IsSeen("https://b"))
	assert.False(t, second.IsSeen("https://c"))
}

func TestListingCache_DropsExpiredEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	entries := []seenEntry{
		{URL: "https://fresh", Timestamp: now.Add(-time.Hour).UnixMilli()},
		{URL: "https://stale", Timestamp: now.Add(-31 * 24 * time.Hour).UnixMilli()},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, cacheFile), data, 0644))

	cache, err := NewListingCache(dir, DefaultTTL)
	require.NoError(t, err)
	assert.True(t, cache.IsSeen("https://fresh"))
	assert.False(t, cache.IsSeen("https://stale"))
}

func TestListingCache_CorruptFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cacheFile), []byte("{not json"), 0644))

	cache, err := NewListingCache(dir, DefaultTTL)
	require.NoError(t, err)
	assert.Equal(t, 0, cache.Len())
}
