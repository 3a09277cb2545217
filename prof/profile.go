// Package prof is a process-global timing log: cmd/ffbench calls Track once
// per benchmarked op/size pair, independent of the measure package's op
// counters, so a run leaves both a throughput table and a raw timing trail.
package prof

import (
	"sync"
	"time"
)

// Entry is one Track call: a labeled duration.
type Entry struct {
	Label string
	Dur   time.Duration
}

var (
	mu     sync.Mutex
	record []Entry
)

// Track appends the elapsed time since start under name.
func Track(start time.Time, name string) {
	elapsed := time.Since(start)
	mu.Lock()
	record = append(record, Entry{Label: name, Dur: elapsed})
	mu.Unlock()
}

// SnapshotAndReset returns every entry recorded so far and clears the log.
func SnapshotAndReset() []Entry {
	mu.Lock()
	defer mu.Unlock()
	out := make([]Entry, len(record))
	copy(out, record)
	record = nil
	return out
}
