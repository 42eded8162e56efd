package engine

import "github.com/roach88/driftlab/internal/graph"

// Tuned sensitivity constants. These are calibrated against reference
// behavior; changing them changes every downstream statistic.
const (
	// inertiaDamping halves a node's responsiveness at inertia = 1.
	inertiaDamping = 0.5

	// noiseScale bounds per-step noise to entropy * 0.05 in magnitude.
	noiseScale = 0.1

	// stabilityScale converts pressure variance into the stability score.
	stabilityScale = 10.0
)

// Step advances every node's pressure by exactly one unit of time.
//
// All nodes are computed from one snapshot of the prior step's pressures,
// then written back for the whole graph (synchronous update).
//
// Each edge (n->m, w) carries a flow of conductivity(n)*w*(P(m)-P(n)):
// the flow is added to the source and its negation to the target, so an
// undamped, noiseless step conserves total pressure and the node on the
// low side of an edge strictly gains while the high side strictly loses.
// Inertia damping and noise are then applied per node. Exactly one
// uniform draw is consumed per node, in arena order, even at zero
// entropy, so graphs differing only in physical constants consume
// identical random streams.
func Step(g *graph.Graph, rng Rand) {
	prev := g.Pressures()

	flow := make([]float64, g.Len())
	for i := 0; i < g.Len(); i++ {
		n := g.Node(i)
		for _, e := range g.Out(i) {
			f := n.Conductivity * e.Weight * (prev[e.To] - prev[i])
			flow[i] += f
			flow[e.To] -= f
		}
	}

	for i := 0; i < g.Len(); i++ {
		n := g.Node(i)
		damped := flow[i] * (1 - n.Inertia*inertiaDamping)
		noise := (rng.Float64() - 0.5) * n.Entropy * noiseScale
		n.Pressure = clamp(prev[i] + damped + noise)
	}
}

// Metrics are the whole-graph measurements taken after each step.
type Metrics struct {
	// Equilibrium is the arithmetic mean of all node pressures, in [0,1].
	Equilibrium float64

	// Stability is 1 / (1 + variance * 10), in (0,1]. It is 1.0 at zero
	// variance and falls monotonically as pressure dispersion grows.
	Stability float64
}

// Measure computes equilibrium and stability for the graph's current state.
func Measure(g *graph.Graph) Metrics {
	n := g.Len()
	if n == 0 {
		return Metrics{Stability: 1}
	}

	var sum float64
	for i := 0; i < n; i++ {
		sum += g.Node(i).Pressure
	}
	mean := sum / float64(n)

	var variance float64
	for i := 0; i < n; i++ {
		d := g.Node(i).Pressure - mean
		variance += d * d
	}
	variance /= float64(n)

	return Metrics{
		Equilibrium: mean,
		Stability:   1 / (1 + variance*stabilityScale),
	}
}

// clamp bounds a computed pressure to [0,1]. Configuration values are
// never clamped - out-of-range configuration is a construction error.
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
