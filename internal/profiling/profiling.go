package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-frame CPU timings, keyed by "package.Operation".

var (
	mu          sync.Mutex
	frameTotals = make(map[string]time.Duration)
	frameCounts = make(map[string]int)
)

// Entry is one tracked name and its accumulated time in the current frame.
type Entry struct {
	Name  string
	Total time.Duration
	Calls int
}

// Track returns a stop function that adds the elapsed time to name.
// Usage: defer profiling.Track("edit.RemoveVoxel")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		frameTotals[name] += d
		frameCounts[name]++
		mu.Unlock()
	}
}

// ResetFrame clears the current totals. Call at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(frameTotals)
	clear(frameCounts)
	mu.Unlock()
}

// Snapshot returns a copy of the current totals.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(frameTotals))
	for k, v := range frameTotals {
		out[k] = v
	}
	return out
}

// Slowest returns up to n entries ordered by total time, longest first.
// Ties are broken by name.
func Slowest(n int) []Entry {
	mu.Lock()
	list := make([]Entry, 0, len(frameTotals))
	for k, v := range frameTotals {
		list = append(list, Entry{Name: k, Total: v, Calls: frameCounts[k]})
	}
	mu.Unlock()

	sort.Slice(list, func(i, j int) bool {
		if list[i].Total != list[j].Total {
			return list[i].Total > list[j].Total
		}
		return list[i].Name < list[j].Name
	})
	if n < len(list) {
		list = list[:n]
	}
	return list
}

// TopN formats the n slowest entries of the current frame.
// Example: "renderer.Render:4.2ms, edit.RemoveVoxel:2.1ms(x2)"
func TopN(n int) string {
	entries := Slowest(n)
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		s := e.Name + ":" + formatMs(e.Total)
		if e.Calls > 1 {
			s += "(x" + strconv.Itoa(e.Calls) + ")"
		}
		parts = append(parts, s)
	}
	return strings.Join(parts, ", ")
}

// formatMs renders d in milliseconds with one decimal, dropping ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	return strings.TrimSuffix(strconv.FormatFloat(ms, 'f', 1, 64), ".0") + "ms"
}
