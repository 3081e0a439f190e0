package utils

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomDuration(t *testing.T) {
	for i := 0; i < 100; i++ {
		d := randomDuration(100, 300)
		assert.GreaterOrEqual(t, d, 100*time.Millisecond)
		assert.Less(t, d, 300*time.Millisecond)
	}
	assert.Equal(t, 50*time.Millisecond, randomDuration(50, 50))
	assert.Equal(t, 50*time.Millisecond, randomDuration(50, 10))
}

func TestScreenShotDebugger_Path(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "screenshots")
	s, err := NewScreenShotDebugger(dir)
	require.NoError(t, err)
	assert.DirExists(t, dir)

	ts := time.Date(2026, 1, 27, 9, 5, 3, 0, time.UTC)
	assert.Equal(t, filepath.Join(dir, "load-failed_2026-01-27_09-05-03.png"), s.Path("load-failed", ts))
}
