package engine

import "github.com/roach88/driftlab/internal/graph"

// Alert thresholds. The operational boundary (DefaultThreshold) is
// configurable per run; the ground-truth crisis boundary is fixed.
// Keeping them separate lets the stress harness measure precision, not
// just recall: a firing below the crisis boundary is a false positive.
const (
	// DefaultThreshold is the operational alert boundary: the system
	// fires when the top-pressure node reaches it.
	DefaultThreshold = 0.7

	// crisisThreshold is the stricter ground-truth boundary used purely
	// for evaluation, never for firing.
	crisisThreshold = 0.8
)

// Observation is the Event Monitor's verdict for one step.
type Observation struct {
	// TopNodeID is the node with maximum pressure. Exact ties break to
	// the lexicographically smallest node id.
	TopNodeID string

	// TopPressure is that node's pressure.
	TopPressure float64

	// Fired reports TopPressure >= threshold.
	Fired bool

	// FalsePositive reports Fired while TopPressure did not exceed the
	// crisis boundary.
	FalsePositive bool
}

// Observe evaluates the top-pressure node against the alert threshold.
func Observe(g *graph.Graph, threshold float64) Observation {
	top := g.Node(0)
	for i := 1; i < g.Len(); i++ {
		n := g.Node(i)
		if n.Pressure > top.Pressure {
			top = n
			continue
		}
		if n.Pressure == top.Pressure && n.ID < top.ID {
			top = n
		}
	}

	fired := top.Pressure >= threshold
	actualCrisis := top.Pressure > crisisThreshold

	return Observation{
		TopNodeID:     top.ID,
		TopPressure:   top.Pressure,
		Fired:         fired,
		FalsePositive: fired && !actualCrisis,
	}
}
