package profiling

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func record(name string, d time.Duration) {
	mu.Lock()
	frameTotals[name] += d
	frameCounts[name]++
	mu.Unlock()
}

func TestTopN(t *testing.T) {
	ResetFrame()
	record("renderer.Render", 4200*time.Microsecond)
	record("edit.RemoveVoxel", time.Millisecond)
	record("edit.RemoveVoxel", time.Millisecond)
	record("input.Poll", 100*time.Microsecond)

	assert.Equal(t, "renderer.Render:4.2ms, edit.RemoveVoxel:2ms(x2)", TopN(2))
	assert.Len(t, Slowest(10), 3)
	assert.Empty(t, TopN(0))
}

func TestTrackAndReset(t *testing.T) {
	ResetFrame()
	stop := Track("pipeline.Build")
	stop()
	snap := Snapshot()
	require.Contains(t, snap, "pipeline.Build")

	ResetFrame()
	assert.Empty(t, Snapshot())
	assert.Empty(t, Slowest(5))
}

func TestFormatMs(t *testing.T) {
	assert.Equal(t, "0ms", formatMs(0))
	assert.Equal(t, "16.5ms", formatMs(16500*time.Microsecond))
	assert.Equal(t, "3ms", formatMs(3*time.Millisecond))
}
