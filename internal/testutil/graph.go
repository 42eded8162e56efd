package testutil

import "github.com/roach88/driftlab/internal/graph"

// Pair builds a two-node graph with a single directed edge a->b.
// Both nodes share the given physical constants; starting pressures are
// set explicitly so tests control the initial state exactly.
func Pair(pa, pb, weight, inertia, conductivity, entropy float64) *graph.Graph {
	g, err := graph.New(
		[]graph.NodeConfig{
			{ID: "a", Name: "A", Inertia: inertia, Conductivity: conductivity, Entropy: entropy},
			{ID: "b", Name: "B", Inertia: inertia, Conductivity: conductivity, Entropy: entropy},
		},
		[]graph.EdgeConfig{
			{From: "a", To: "b", Weight: weight},
		},
	)
	if err != nil {
		panic(err) // test configuration bug
	}
	g.Node(0).Pressure = pa
	g.Node(1).Pressure = pb
	return g
}

// Isolated builds an n-node graph with no edges and the given pressures,
// ids "a", "b", ... in order. Zero inertia, conductivity, and entropy.
func Isolated(pressures ...float64) *graph.Graph {
	nodes := make([]graph.NodeConfig, len(pressures))
	for i := range pressures {
		nodes[i] = graph.NodeConfig{ID: nodeID(i), Name: nodeID(i)}
	}
	g, err := graph.New(nodes, nil)
	if err != nil {
		panic(err)
	}
	for i, p := range pressures {
		g.Node(i).Pressure = p
	}
	return g
}

func nodeID(i int) string {
	// Single letters keep tie-break assertions readable: "a" < "b" < ...
	return string(rune('a' + i))
}
