package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/driftlab/internal/harness"
	"github.com/roach88/driftlab/internal/store"
)

// quietConfig freezes the dynamics (zero conductivity and entropy) so
// pressures never leave the low baseline: no fires, high stability.
const quietConfig = `
nodes:
  - {id: a, name: Alpha, inertia: 0, conductivity: 0, entropy: 0}
  - {id: b, name: Beta, inertia: 0, conductivity: 0, entropy: 0}
edges: []
scenarios:
  - name: none
    shocks: []
run:
  subjects: 3
  days: 20
  threshold: 0.7
  seed: 11
`

// blowoutConfig pins node a at full pressure from day 10 on. With two
// nodes far apart the variance stays high for 91 of 100 days, so average
// stability lands well under the 0.6 acceptance bound.
const blowoutConfig = `
nodes:
  - {id: a, name: Alpha, inertia: 0, conductivity: 0, entropy: 0}
  - {id: b, name: Beta, inertia: 0, conductivity: 0, entropy: 0}
edges: []
scenarios:
  - name: blowout
    shocks:
      - {node: a, intensity: 1.0}
run:
  subjects: 2
  days: 100
  threshold: 0.7
  seed: 11
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunPassingScenario(t *testing.T) {
	path := writeConfig(t, quietConfig)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--no-progress"})

	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "SCENARIO")
	assert.Contains(t, output, "none")
	assert.Contains(t, output, "PASS")
	assert.NotContains(t, output, "FAIL")
}

func TestRunFailingScenario(t *testing.T) {
	path := writeConfig(t, blowoutConfig)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--no-progress"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, err.Error(), "blowout")
	assert.Contains(t, buf.String(), "FAIL")
}

func TestRunJSONOutput(t *testing.T) {
	path := writeConfig(t, quietConfig)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path})

	err := cmd.Execute()
	require.NoError(t, err)

	var results []harness.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "none", results[0].Scenario)
	assert.Equal(t, 3*20, results[0].TotalObservations)
	assert.Equal(t, 0, results[0].TotalFires)
	assert.Equal(t, 1.0, results[0].Accuracy)
	assert.True(t, results[0].Passed)
}

func TestRunFlagOverrides(t *testing.T) {
	path := writeConfig(t, quietConfig)

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "json"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--subjects", "5", "--days", "7"})

	err := cmd.Execute()
	require.NoError(t, err)

	var results []harness.Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	assert.Equal(t, 5*7, results[0].TotalObservations)
}

func TestRunRecordsToDatabase(t *testing.T) {
	path := writeConfig(t, quietConfig)
	dbPath := filepath.Join(t.TempDir(), "runs.db")

	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{path, "--no-progress", "--db", dbPath})

	err := cmd.Execute()
	require.NoError(t, err)

	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()

	runs, err := st.ListRuns(t.Context())
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 3, runs[0].Subjects)
	assert.Equal(t, 20, runs[0].Days)
	assert.Equal(t, uint64(11), runs[0].Seed)

	results, err := st.Results(t.Context(), runs[0].ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "none", results[0].Scenario)
	assert.True(t, results[0].Passed)
}

func TestRunMissingConfigFile(t *testing.T) {
	buf := &bytes.Buffer{}
	rootOpts := &RootOptions{Format: "text"}
	cmd := NewRunCommand(rootOpts)
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"/nonexistent/sim.yaml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunDeterministicAcrossInvocations(t *testing.T) {
	path := writeConfig(t, quietConfig)

	out := func() string {
		buf := &bytes.Buffer{}
		rootOpts := &RootOptions{Format: "json"}
		cmd := NewRunCommand(rootOpts)
		cmd.SetOut(buf)
		cmd.SetErr(&bytes.Buffer{})
		cmd.SetArgs([]string{path})
		require.NoError(t, cmd.Execute())
		return buf.String()
	}

	assert.Equal(t, out(), out())
}
