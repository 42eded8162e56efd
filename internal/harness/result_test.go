package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/roach88/driftlab/internal/engine"
)

func traj(convergenceDay int, steps ...engine.StepRecord) engine.Trajectory {
	return engine.Trajectory{Steps: steps, ConvergenceDay: convergenceDay}
}

func step(eq, st float64, fired, fp bool) engine.StepRecord {
	return engine.StepRecord{Equilibrium: eq, Stability: st, Fired: fired, FalsePositive: fp}
}

// TestAggregate_Means tests the averaged fields and counters.
func TestAggregate_Means(t *testing.T) {
	r := aggregate("baseline", []engine.Trajectory{
		traj(2,
			step(0.2, 0.9, false, false),
			step(0.4, 0.7, true, false),
		),
		traj(4,
			step(0.6, 0.5, true, true),
			step(0.8, 0.9, false, false),
		),
	})

	assert.Equal(t, "baseline", r.Scenario)
	assert.Equal(t, 4, r.TotalObservations)
	assert.InDelta(t, 0.5, r.AvgEquilibrium, 1e-12)
	assert.InDelta(t, 0.75, r.AvgStability, 1e-12)
	assert.Equal(t, 2, r.TotalFires)
	assert.Equal(t, 1, r.FalsePositives)
	assert.InDelta(t, 0.5, r.Accuracy, 1e-12)
	assert.InDelta(t, 3.0, r.ConvergenceSpeed, 1e-12)
	assert.False(t, r.Passed, "accuracy 0.5 fails the acceptance rule")
}

// TestAggregate_ZeroFires tests the defined division-by-zero case:
// no alerts means nothing to be wrong about.
func TestAggregate_ZeroFires(t *testing.T) {
	r := aggregate("quiet", []engine.Trajectory{
		traj(1,
			step(0.1, 0.95, false, false),
			step(0.1, 0.95, false, false),
		),
	})

	assert.Zero(t, r.TotalFires)
	assert.Zero(t, r.FalsePositives)
	assert.Equal(t, 1.0, r.Accuracy)
	assert.True(t, r.Passed, "trivially accurate and stable enough")
}

// TestAggregate_StabilityClause tests that a never-firing scenario must
// still satisfy the stability clause.
func TestAggregate_StabilityClause(t *testing.T) {
	r := aggregate("turbulent", []engine.Trajectory{
		traj(0,
			step(0.5, 0.3, false, false),
			step(0.5, 0.4, false, false),
		),
	})

	assert.Equal(t, 1.0, r.Accuracy)
	assert.False(t, r.Passed, "avg stability 0.35 fails the stability clause")
}

// TestAggregate_AccuracyBoundary tests the 95% acceptance boundary.
func TestAggregate_AccuracyBoundary(t *testing.T) {
	// 20 fires, 1 false positive: accuracy exactly 0.95.
	steps := make([]engine.StepRecord, 20)
	for i := range steps {
		steps[i] = step(0.5, 0.9, true, i == 0)
	}
	r := aggregate("boundary", []engine.Trajectory{traj(1, steps...)})

	assert.InDelta(t, 0.95, r.Accuracy, 1e-12)
	assert.True(t, r.Passed)

	// One more false positive drops below the boundary.
	steps[1].FalsePositive = true
	r = aggregate("boundary", []engine.Trajectory{traj(1, steps...)})
	assert.False(t, r.Passed)
}

// TestAggregate_NeverConverged tests the convergence sentinel.
func TestAggregate_NeverConverged(t *testing.T) {
	r := aggregate("slow", []engine.Trajectory{
		traj(0, step(0.5, 0.5, false, false)),
		traj(0, step(0.5, 0.5, false, false)),
	})
	assert.Zero(t, r.ConvergenceSpeed)

	// Mixed: only converged subjects count.
	r = aggregate("mixed", []engine.Trajectory{
		traj(0, step(0.5, 0.5, false, false)),
		traj(6, step(0.5, 0.5, false, false)),
	})
	assert.InDelta(t, 6.0, r.ConvergenceSpeed, 1e-12)
}

// TestAggregate_Empty tests the degenerate zeroed result.
func TestAggregate_Empty(t *testing.T) {
	r := aggregate("empty", nil)

	assert.Zero(t, r.TotalObservations)
	assert.Zero(t, r.AvgEquilibrium)
	assert.Zero(t, r.AvgStability)
	assert.Equal(t, 1.0, r.Accuracy)
	assert.Zero(t, r.ConvergenceSpeed)
	assert.False(t, r.Passed, "zero stability fails the stability clause")
}
