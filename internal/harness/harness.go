package harness

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/roach88/driftlab/internal/engine"
	"github.com/roach88/driftlab/internal/graph"
)

// ProgressFunc receives the scenario name and the percentage of that
// scenario's subjects completed, in [0,100].
type ProgressFunc func(scenario string, percent float64)

// Params are the run parameters for one stress test.
type Params struct {
	// Subjects is the number of independent virtual subjects per scenario.
	Subjects int

	// Days is the number of simulated days per subject.
	Days int

	// Threshold is the operational alert boundary. Zero selects
	// engine.DefaultThreshold (0.7).
	Threshold float64

	// Seed is the master seed every subject stream derives from.
	Seed uint64

	// Workers bounds the worker pool. Zero or negative selects
	// runtime.GOMAXPROCS(0).
	Workers int

	// Scenarios selects which scenarios to run, by name, in this order.
	// Empty runs the full configured table in configuration order.
	Scenarios []string

	// Progress, if non-nil, is invoked after each subject completes.
	Progress ProgressFunc
}

// Harness drives stress tests over one validated graph configuration.
type Harness struct {
	nodes     []graph.NodeConfig
	edges     []graph.EdgeConfig
	scenarios []engine.Scenario
	byName    map[string]int
	logger    *slog.Logger
}

// New validates the configuration once and returns a reusable harness.
// Graph construction errors and shocks targeting unknown nodes fail here,
// fast, before any simulation runs. A nil logger discards.
func New(nodes []graph.NodeConfig, edges []graph.EdgeConfig, scenarios []engine.Scenario, logger *slog.Logger) (*Harness, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	g, err := graph.New(nodes, edges)
	if err != nil {
		return nil, fmt.Errorf("invalid graph configuration: %w", err)
	}
	if err := engine.ValidateScenarios(g, scenarios); err != nil {
		return nil, fmt.Errorf("invalid scenario table: %w", err)
	}

	byName := make(map[string]int, len(scenarios))
	for i, sc := range scenarios {
		if _, dup := byName[sc.Name]; dup {
			return nil, fmt.Errorf("invalid scenario table: name %q appears more than once", sc.Name)
		}
		byName[sc.Name] = i
	}

	return &Harness{
		nodes:     nodes,
		edges:     edges,
		scenarios: scenarios,
		byName:    byName,
		logger:    logger,
	}, nil
}

// Run executes the stress test and returns one Result per scenario, in
// request order. See RunTrajectories for the per-subject records.
func (h *Harness) Run(ctx context.Context, p Params) ([]Result, error) {
	results, _, err := h.RunTrajectories(ctx, p)
	return results, err
}

// RunTrajectories executes the stress test and additionally returns every
// subject's full trajectory, indexed [scenario][subject]. Trajectories
// exist for diagnostics and visualization; aggregation never needs them
// after Run returns.
func (h *Harness) RunTrajectories(ctx context.Context, p Params) ([]Result, [][]engine.Trajectory, error) {
	scenarios := h.resolve(p.Scenarios)

	threshold := p.Threshold
	if threshold == 0 {
		threshold = engine.DefaultThreshold
	}
	workers := p.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// Degenerate configurations are defined, not errors: zeroed results.
	if p.Subjects <= 0 || p.Days <= 0 {
		results := make([]Result, len(scenarios))
		trajectories := make([][]engine.Trajectory, len(scenarios))
		for i, sc := range scenarios {
			results[i] = aggregate(sc.Name, nil)
		}
		return results, trajectories, nil
	}

	trajectories := make([][]engine.Trajectory, len(scenarios))
	for i := range trajectories {
		trajectories[i] = make([]engine.Trajectory, p.Subjects)
	}

	type job struct{ scenario, subject int }
	jobs := make(chan job)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex // guards completed counts and the progress callback
		completed = make([]int, len(scenarios))

		errOnce sync.Once
		runErr  error
	)

	worker := func() {
		defer wg.Done()
		for j := range jobs {
			// Subject-granularity cancellation: skip, never abort mid-step.
			if ctx.Err() != nil {
				continue
			}

			g, err := graph.New(h.nodes, h.edges)
			if err != nil {
				// Cannot happen: configuration was validated in New.
				errOnce.Do(func() { runErr = err })
				continue
			}

			rng := engine.NewSubjectRand(p.Seed, j.scenario, j.subject)
			engine.InitPressures(g, rng)

			traj := engine.RunSubject(g, scenarios[j.scenario].Shocks, p.Days, threshold, rng)
			traj.Subject = j.subject
			trajectories[j.scenario][j.subject] = traj

			mu.Lock()
			completed[j.scenario]++
			if p.Progress != nil {
				p.Progress(scenarios[j.scenario].Name, 100*float64(completed[j.scenario])/float64(p.Subjects))
			}
			mu.Unlock()
		}
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go worker()
	}

	for si := range scenarios {
		for subject := 0; subject < p.Subjects; subject++ {
			jobs <- job{scenario: si, subject: subject}
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	if runErr != nil {
		return nil, nil, runErr
	}

	results := make([]Result, len(scenarios))
	for i, sc := range scenarios {
		results[i] = aggregate(sc.Name, trajectories[i])
	}
	return results, trajectories, nil
}

// resolve maps requested scenario names onto the configured table,
// preserving request order. Unknown names warn and run shock-free; an
// empty request selects the whole table in configuration order.
func (h *Harness) resolve(names []string) []engine.Scenario {
	if len(names) == 0 {
		return h.scenarios
	}

	out := make([]engine.Scenario, 0, len(names))
	for _, name := range names {
		if i, ok := h.byName[name]; ok {
			out = append(out, h.scenarios[i])
			continue
		}
		h.logger.Warn("unknown scenario, running without shocks", "scenario", name)
		out = append(out, engine.Scenario{Name: name})
	}
	return out
}
