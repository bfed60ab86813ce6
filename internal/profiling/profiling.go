package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Per-tick CPU timings for the world's step functions.

var (
	mu         sync.Mutex
	tickTotals = make(map[string]time.Duration)
	tickCounts = make(map[string]int)
)

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer profiling.Track("world.StreamAround")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		tickTotals[name] += d
		tickCounts[name]++
		mu.Unlock()
	}
}

// ResetTick clears the totals. Call once at the start of each tick.
func ResetTick() {
	mu.Lock()
	clear(tickTotals)
	clear(tickCounts)
	mu.Unlock()
}

// Sample is the accumulated time and call count of one tracked name.
type Sample struct {
	Name  string
	Total time.Duration
	Calls int
}

// Snapshot returns the current tick's samples, slowest first.
func Snapshot() []Sample {
	mu.Lock()
	out := make([]Sample, 0, len(tickTotals))
	for k, v := range tickTotals {
		out = append(out, Sample{Name: k, Total: v, Calls: tickCounts[k]})
	}
	mu.Unlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Calls returns how many times name was tracked this tick.
func Calls(name string) int {
	mu.Lock()
	defer mu.Unlock()
	return tickCounts[name]
}

// TopN formats the n slowest entries of the current tick.
// Example: "world.StreamAround:4.2ms(x1), world.Chunk.GenerateMesh:2.1ms(x9)"
func TopN(n int) string {
	samples := Snapshot()
	if n > len(samples) {
		n = len(samples)
	}
	parts := make([]string, 0, n)
	for _, s := range samples[:n] {
		ms := float64(s.Total.Microseconds()) / 1000.0
		parts = append(parts, s.Name+":"+strconv.FormatFloat(ms, 'f', 1, 64)+"ms(x"+strconv.Itoa(s.Calls)+")")
	}
	return strings.Join(parts, ", ")
}
