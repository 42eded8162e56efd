package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/driftlab/internal/graph"
	"github.com/roach88/driftlab/internal/testutil"
)

// TestApplyShocks_Exact tests the injection arithmetic: 0.2 + 0.5 -> 0.7
// immediately, before any diffusion or noise.
func TestApplyShocks_Exact(t *testing.T) {
	g := testutil.Isolated(0.2, 0.1)

	ApplyShocks(g, []Shock{{NodeID: "a", Intensity: 0.5}})

	assert.InDelta(t, 0.7, g.Node(0).Pressure, 1e-12)
	assert.Equal(t, 0.1, g.Node(1).Pressure, "untargeted node untouched")
}

// TestApplyShocks_Clamp tests that injected pressure clamps at 1.
func TestApplyShocks_Clamp(t *testing.T) {
	g := testutil.Isolated(0.8)

	ApplyShocks(g, []Shock{{NodeID: "a", Intensity: 0.9}})

	assert.Equal(t, 1.0, g.Node(0).Pressure)
}

// TestApplyShocks_Cumulative tests repeated application on the cadence.
func TestApplyShocks_Cumulative(t *testing.T) {
	g := testutil.Isolated(0.0)
	shocks := []Shock{{NodeID: "a", Intensity: 0.25}}

	ApplyShocks(g, shocks)
	ApplyShocks(g, shocks)

	assert.InDelta(t, 0.5, g.Node(0).Pressure, 1e-12)
}

// TestValidateScenarios tests fail-fast rejection of shocks targeting
// unknown node ids.
func TestValidateScenarios(t *testing.T) {
	g := testutil.Isolated(0, 0)

	err := ValidateScenarios(g, []Scenario{
		{Name: "ok", Shocks: []Shock{{NodeID: "a", Intensity: 0.5}}},
		{Name: "broken", Shocks: []Shock{{NodeID: "ghost", Intensity: 0.5}}},
	})
	require.Error(t, err)

	var ce *graph.ConfigError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, graph.ErrCodeUnknownNode, ce.Code)
	assert.Equal(t, "ghost", ce.NodeID)
	assert.Contains(t, ce.Message, "broken")

	assert.NoError(t, ValidateScenarios(g, []Scenario{{Name: "none"}}))
}
