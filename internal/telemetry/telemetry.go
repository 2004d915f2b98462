// Package telemetry is a minimal global stage-timing recorder, adapted
// from the teacher's measure/measureutil split into a single package:
// a global accumulator the benchmark CLI drains between runs.
package telemetry

import "sync"

type registry struct {
	mu  sync.Mutex
	acc map[string]uint64
}

// Global accumulates nanosecond timings keyed by stage name (e.g.
// "generate", "respond", "parse").
var Global = &registry{acc: make(map[string]uint64)}

// Record adds d nanoseconds to the named stage's running total.
func (r *registry) Record(stage string, d uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.acc[stage] += d
}

// SnapshotAndReset returns a copy of the accumulated totals and clears
// the registry for the next measurement window.
func (r *registry) SnapshotAndReset() map[string]uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]uint64, len(r.acc))
	for k, v := range r.acc {
		out[k] = v
	}
	r.acc = make(map[string]uint64)
	return out
}
