// Package measure is ff128's lightweight instrumentation counter set:
// gated, mutex-protected counters that package array reports into, one per
// bulk operation (elementwise vv/vs lanes, batch-inverse lanes,
// power-series length, matmul inner products), cheap enough to leave wired
// in production builds since Add is a no-op while Enabled is false.
package measure

import "sync"

// Enabled gates all counter writes; Add is a no-op while false so hot paths
// pay only a branch when instrumentation is off.
var Enabled = false

// Counters accumulates named int64 counters under a mutex. Global is the
// process-wide instance.
type Counters struct {
	mu   sync.Mutex
	vals map[string]int64
}

// Global is the process-wide counter set package array reports into.
var Global = &Counters{vals: make(map[string]int64)}

// Add increments the named counter by n. It is a no-op unless Enabled.
func (c *Counters) Add(name string, n int64) {
	if !Enabled {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals[name] += n
}

// SnapshotAndReset returns a copy of the current counters and clears them.
func (c *Counters) SnapshotAndReset() map[string]uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]uint64, len(c.vals))
	for k, v := range c.vals {
		if v < 0 {
			v = 0
		}
		out[k] = uint64(v)
	}
	c.vals = make(map[string]int64)
	return out
}

// Dump prints the current counters to stderr via the println builtin, for ad-hoc
// inspection from tests and cmd/ffbench runs.
func (c *Counters) Dump() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range c.vals {
		println(k, v)
	}
}

// BytesElement returns the byte footprint of n field elements of the given
// element size.
func BytesElement(n, elementSize int) int64 {
	return int64(n) * int64(elementSize)
}
