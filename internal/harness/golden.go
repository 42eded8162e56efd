package harness

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/driftlab/internal/engine"
)

// TrajectorySnapshot captures one subject's full trajectory for golden
// file comparison. Snapshots are only meaningful for deterministic
// setups: fixed seed, fixed configuration.
type TrajectorySnapshot struct {
	Scenario   string            `json:"scenario"`
	Seed       uint64            `json:"seed"`
	Trajectory engine.Trajectory `json:"trajectory"`
}

// AssertGolden compares a trajectory snapshot against the golden file
// testdata/golden/{name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func AssertGolden(t *testing.T, name string, snap TrajectorySnapshot) {
	t.Helper()

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	data = append(data, '\n')

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, data)
}
