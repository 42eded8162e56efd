package engine

import (
	"fmt"

	"github.com/roach88/driftlab/internal/graph"
)

// ShockCadence is the day interval on which scenario shocks are applied:
// every 10th simulated day, with days numbered from 1.
const ShockCadence = 10

// Shock is one externally injected pressure increase.
type Shock struct {
	// NodeID names the target node.
	NodeID string `json:"node" yaml:"node"`

	// Intensity is added to the node's pressure, clamped to [0,1].
	Intensity float64 `json:"intensity" yaml:"intensity"`
}

// Scenario is a named, fixed pattern of shocks. An empty shock list is a
// valid scenario (a pure baseline, conventionally named "none").
type Scenario struct {
	Name   string  `json:"name" yaml:"name"`
	Shocks []Shock `json:"shocks" yaml:"shocks"`
}

// ApplyShocks injects every shock into the graph:
// pressure(node) = clamp(pressure(node) + intensity, 0, 1).
//
// Shocks targeting unknown node ids are skipped; ValidateScenarios
// rejects them at construction time, so a skip here can only happen when
// validation was bypassed.
func ApplyShocks(g *graph.Graph, shocks []Shock) {
	for _, s := range shocks {
		i, ok := g.Index(s.NodeID)
		if !ok {
			continue
		}
		n := g.Node(i)
		n.Pressure = clamp(n.Pressure + s.Intensity)
	}
}

// ValidateScenarios checks every shock against the graph's node table.
// A shock targeting an unknown node id is a configuration error, same as
// an edge to an unknown id.
func ValidateScenarios(g *graph.Graph, scenarios []Scenario) error {
	for _, sc := range scenarios {
		for _, s := range sc.Shocks {
			if _, ok := g.Index(s.NodeID); !ok {
				return &graph.ConfigError{
					Code:    graph.ErrCodeUnknownNode,
					Message: fmt.Sprintf("scenario %q shock references unknown node id", sc.Name),
					NodeID:  s.NodeID,
				}
			}
		}
	}
	return nil
}
