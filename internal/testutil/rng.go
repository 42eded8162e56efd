// Package testutil provides deterministic test doubles for the
// simulation core: fixed random sources and small graph builders.
package testutil

import "sync"

// HalfRand always returns 0.5, which zeroes the diffusion noise term
// ((0.5 - 0.5) * entropy * 0.1 == 0). Use it to test pure diffusion.
type HalfRand struct{}

// Float64 returns 0.5.
func (HalfRand) Float64() float64 { return 0.5 }

// SequenceRand returns predetermined draws in order.
//
// This enables exact-value assertions on noise injection. Panics when
// the sequence is exhausted - a fail-fast guard against a test consuming
// more draws than it accounted for.
//
// Thread-safety: safe for concurrent use via internal mutex.
type SequenceRand struct {
	mu    sync.Mutex
	draws []float64
	idx   int
}

// NewSequenceRand creates a source that returns draws in order.
//
// Example:
//
//	rng := testutil.NewSequenceRand(0.5, 0.9)
//	rng.Float64() // 0.5
//	rng.Float64() // 0.9
//	rng.Float64() // panic: all draws exhausted
func NewSequenceRand(draws ...float64) *SequenceRand {
	return &SequenceRand{draws: draws}
}

// Float64 returns the next predetermined draw.
func (r *SequenceRand) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.idx >= len(r.draws) {
		panic("SequenceRand: all draws exhausted")
	}
	v := r.draws[r.idx]
	r.idx++
	return v
}
