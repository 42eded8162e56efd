package engine

import "math/rand/v2"

// Rand is the source of the uniform draws consumed by the diffusion step
// and by subject initialization. Abstracting it behind an interface keeps
// runs reproducible: production code seeds a generator per subject, tests
// substitute fixed sequences.
//
// Implementations are not required to be safe for concurrent use; the
// harness gives each subject a private generator.
type Rand interface {
	// Float64 returns a uniform draw in [0,1).
	Float64() float64
}

// NewSubjectRand returns the generator for one subject's run, derived
// from the master seed, the scenario ordinal, and the subject index.
//
// Each (scenario, subject) pair gets its own PCG stream, so parallel
// execution produces bit-identical results regardless of scheduling
// order, and any single subject can be re-run in isolation.
func NewSubjectRand(seed uint64, scenario, subject int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, uint64(scenario)<<32|uint64(uint32(subject))))
}
