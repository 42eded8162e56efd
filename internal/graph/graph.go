package graph

import "fmt"

// NodeConfig is one row of the static node table.
// Initial pressure is not part of configuration; the caller sets it
// (the stress harness randomizes a low baseline per subject).
type NodeConfig struct {
	// ID is the stable unique identifier.
	ID string `json:"id" yaml:"id"`

	// Name is a human label. Not used in computation.
	Name string `json:"name" yaml:"name"`

	// Inertia is the node's resistance to change, in [0,1].
	Inertia float64 `json:"inertia" yaml:"inertia"`

	// Conductivity is how strongly the node transmits change along
	// its outgoing edges, in [0,1].
	Conductivity float64 `json:"conductivity" yaml:"conductivity"`

	// Entropy is the magnitude of stochastic noise injected per step,
	// in [0,1].
	Entropy float64 `json:"entropy" yaml:"entropy"`
}

// EdgeConfig is one row of the static edge table: a directed weighted
// relationship from -> to.
type EdgeConfig struct {
	From   string  `json:"from" yaml:"from"`
	To     string  `json:"to" yaml:"to"`
	Weight float64 `json:"weight" yaml:"weight"`
}

// Node is the live state of one tracked quantity.
// Pressure is the only mutable field after construction.
type Node struct {
	ID           string
	Name         string
	Pressure     float64
	Inertia      float64
	Conductivity float64
	Entropy      float64
}

// Edge is a directed weighted edge in arena form. To is an arena index.
type Edge struct {
	To     int
	Weight float64
}

// Graph holds the node arena and adjacency structure for one subject's run.
// Edges are static for the lifetime of the graph; node pressures mutate
// every step. A Graph is not safe for concurrent use - the harness gives
// each subject a private instance.
type Graph struct {
	nodes []Node
	index map[string]int
	out   [][]Edge
}

// New constructs a Graph from configuration tables, validating fail-fast.
// Every edge must reference existing node ids; all physical constants and
// edge weights must lie in [0,1]. Initial pressure is zero for all nodes.
func New(nodes []NodeConfig, edges []EdgeConfig) (*Graph, error) {
	if len(nodes) == 0 {
		return nil, &ConfigError{Code: ErrCodeEmptyGraph, Message: "node table is empty"}
	}

	g := &Graph{
		nodes: make([]Node, len(nodes)),
		index: make(map[string]int, len(nodes)),
		out:   make([][]Edge, len(nodes)),
	}

	for i, nc := range nodes {
		if nc.ID == "" {
			return nil, &ConfigError{Code: ErrCodeUnknownNode, Message: "node id is empty"}
		}
		if _, dup := g.index[nc.ID]; dup {
			return nil, &ConfigError{
				Code:    ErrCodeDuplicateNode,
				Message: "node id appears more than once",
				NodeID:  nc.ID,
			}
		}
		if !inUnit(nc.Inertia) {
			return nil, newRangeError(nc.ID, "inertia", nc.Inertia)
		}
		if !inUnit(nc.Conductivity) {
			return nil, newRangeError(nc.ID, "conductivity", nc.Conductivity)
		}
		if !inUnit(nc.Entropy) {
			return nil, newRangeError(nc.ID, "entropy", nc.Entropy)
		}
		g.nodes[i] = Node{
			ID:           nc.ID,
			Name:         nc.Name,
			Inertia:      nc.Inertia,
			Conductivity: nc.Conductivity,
			Entropy:      nc.Entropy,
		}
		g.index[nc.ID] = i
	}

	for _, ec := range edges {
		label := fmt.Sprintf("%s->%s", ec.From, ec.To)
		from, ok := g.index[ec.From]
		if !ok {
			return nil, &ConfigError{
				Code:    ErrCodeUnknownNode,
				Message: "edge references unknown node id",
				NodeID:  ec.From,
				Edge:    label,
			}
		}
		to, ok := g.index[ec.To]
		if !ok {
			return nil, &ConfigError{
				Code:    ErrCodeUnknownNode,
				Message: "edge references unknown node id",
				NodeID:  ec.To,
				Edge:    label,
			}
		}
		if !inUnit(ec.Weight) {
			return nil, &ConfigError{
				Code:    ErrCodeOutOfRange,
				Message: fmt.Sprintf("weight must be in [0,1], got %v", ec.Weight),
				Edge:    label,
			}
		}
		g.out[from] = append(g.out[from], Edge{To: to, Weight: ec.Weight})
	}

	return g, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Node returns a pointer to the node at arena index i.
// The pointer stays valid for the lifetime of the graph.
func (g *Graph) Node(i int) *Node {
	return &g.nodes[i]
}

// Index returns the arena index for a node id.
func (g *Graph) Index(id string) (int, bool) {
	i, ok := g.index[id]
	return i, ok
}

// Out returns the outgoing edges of the node at arena index i.
// Callers must not mutate the returned slice.
func (g *Graph) Out(i int) []Edge {
	return g.out[i]
}

// Pressures copies the current pressure of every node, in arena order.
// The diffusion step reads this snapshot so all nodes update synchronously.
func (g *Graph) Pressures() []float64 {
	p := make([]float64, len(g.nodes))
	for i := range g.nodes {
		p[i] = g.nodes[i].Pressure
	}
	return p
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
