package harness

import "github.com/roach88/driftlab/internal/engine"

// Acceptance rule: a scenario passes when alert accuracy reaches 95% and
// average stability reaches 0.6. A scenario that never fires trivially
// satisfies the accuracy clause and must still satisfy the stability one.
const (
	passAccuracy  = 0.95
	passStability = 0.6
)

// Result is the aggregated outcome for one scenario across all subjects.
// Derived purely from the subjects' step records; never mutated after
// computation.
type Result struct {
	// Scenario is the scenario name as requested.
	Scenario string `json:"scenario"`

	// TotalObservations is the number of recorded steps (subjects x days).
	TotalObservations int `json:"total_observations"`

	// AvgEquilibrium is the mean equilibrium over all observations.
	AvgEquilibrium float64 `json:"avg_equilibrium"`

	// AvgStability is the mean stability over all observations.
	AvgStability float64 `json:"avg_stability"`

	// TotalFires counts steps where the alert fired.
	TotalFires int `json:"total_fires"`

	// FalsePositives counts fires below the crisis boundary.
	FalsePositives int `json:"false_positives"`

	// Accuracy is (TotalFires - FalsePositives) / TotalFires, defined as
	// 1.0 when nothing fired: no alerts means nothing to be wrong about.
	Accuracy float64 `json:"accuracy"`

	// ConvergenceSpeed is the mean first day stability reached 0.8,
	// taken over subjects that converged; 0 when none did.
	ConvergenceSpeed float64 `json:"convergence_speed"`

	// Passed reports the acceptance rule verdict.
	Passed bool `json:"passed"`
}

// aggregate folds all subject trajectories for one scenario into a Result.
// A nil or empty trajectory set yields a zeroed result (degenerate runs
// are defined, not errors).
func aggregate(scenario string, trajectories []engine.Trajectory) Result {
	r := Result{Scenario: scenario, Accuracy: 1}

	var eqSum, stSum float64
	var convSum, convCount int
	for _, traj := range trajectories {
		for _, s := range traj.Steps {
			r.TotalObservations++
			eqSum += s.Equilibrium
			stSum += s.Stability
			if s.Fired {
				r.TotalFires++
			}
			if s.FalsePositive {
				r.FalsePositives++
			}
		}
		if traj.ConvergenceDay > 0 {
			convSum += traj.ConvergenceDay
			convCount++
		}
	}

	if r.TotalObservations > 0 {
		r.AvgEquilibrium = eqSum / float64(r.TotalObservations)
		r.AvgStability = stSum / float64(r.TotalObservations)
	}
	if r.TotalFires > 0 {
		r.Accuracy = float64(r.TotalFires-r.FalsePositives) / float64(r.TotalFires)
	}
	if convCount > 0 {
		r.ConvergenceSpeed = float64(convSum) / float64(convCount)
	}

	r.Passed = r.Accuracy >= passAccuracy && r.AvgStability >= passStability
	return r
}
