package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/roach88/driftlab/internal/config"
	"github.com/roach88/driftlab/internal/engine"
	"github.com/roach88/driftlab/internal/harness"
	"github.com/roach88/driftlab/internal/store"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Subjects   int
	Days       int
	Threshold  float64
	Seed       uint64
	Workers    int
	Scenarios  []string
	Database   string
	Steps      bool
	NoProgress bool
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run [config.yaml]",
		Short: "Run the Monte Carlo stress test",
		Long: `Run the stress test over every configured scenario.

Without a config argument the embedded reference configuration is used.
Flags override the run parameters from the config file. Exit code 1
means at least one scenario failed the acceptance rule.

Example:
  driftlab run
  driftlab run sim.yaml --subjects 100 --days 200 --seed 7
  driftlab run sim.yaml --scenario bankruptcy --scenario none --db runs.db`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStressTest(opts, args, cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Subjects, "subjects", 0, "subjects per scenario (overrides config)")
	cmd.Flags().IntVar(&opts.Days, "days", 0, "simulated days per subject (overrides config)")
	cmd.Flags().Float64Var(&opts.Threshold, "threshold", 0, "alert threshold (overrides config)")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "master seed (overrides config)")
	cmd.Flags().IntVar(&opts.Workers, "workers", 0, "worker pool size (default: number of cores)")
	cmd.Flags().StringArrayVar(&opts.Scenarios, "scenario", nil, "scenario to run (repeatable; default: all)")
	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite database to record the run in")
	cmd.Flags().BoolVar(&opts.Steps, "steps", false, "also record per-day trajectories (requires --db)")
	cmd.Flags().BoolVar(&opts.NoProgress, "no-progress", false, "suppress the progress line")

	return cmd
}

func runStressTest(opts *RunOptions, args []string, cmd *cobra.Command) error {
	logger := newLogger(opts.Verbose)

	cfg, err := loadConfig(args)
	if err != nil {
		return err
	}

	params := harness.Params{
		Subjects:  cfg.Run.Subjects,
		Days:      cfg.Run.Days,
		Threshold: cfg.Run.Threshold,
		Seed:      cfg.Run.Seed,
		Workers:   opts.Workers,
		Scenarios: opts.Scenarios,
	}
	if cmd.Flags().Changed("subjects") {
		params.Subjects = opts.Subjects
	}
	if cmd.Flags().Changed("days") {
		params.Days = opts.Days
	}
	if cmd.Flags().Changed("threshold") {
		params.Threshold = opts.Threshold
	}
	if cmd.Flags().Changed("seed") {
		params.Seed = opts.Seed
	}

	if !opts.NoProgress && opts.Format == "text" {
		errOut := cmd.ErrOrStderr()
		params.Progress = func(scenario string, pct float64) {
			fmt.Fprintf(errOut, "\r%-20s %5.1f%%", scenario, pct)
			if pct >= 100 {
				fmt.Fprintln(errOut)
			}
		}
	}

	h, err := harness.New(cfg.Nodes, cfg.Edges, cfg.Scenarios, logger)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid configuration", err)
	}

	logger.Info("stress test starting",
		"scenarios", len(cfg.Scenarios),
		"subjects", params.Subjects,
		"days", params.Days,
		"seed", params.Seed,
	)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, trajectories, err := h.RunTrajectories(ctx, params)
	if err != nil {
		return WrapExitError(ExitFailure, "stress test failed", err)
	}

	if opts.Database != "" {
		if err := recordRun(opts, params, results, trajectories); err != nil {
			return WrapExitError(ExitCommandError, "failed to record run", err)
		}
	}

	if opts.Format == "json" {
		if err := writeJSON(cmd.OutOrStdout(), results); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode results", err)
		}
	} else {
		printResults(cmd, results)
	}

	for _, r := range results {
		if !r.Passed {
			return NewExitError(ExitFailure, fmt.Sprintf("scenario %q failed the acceptance rule", r.Scenario))
		}
	}
	return nil
}

// recordRun persists results (and optionally trajectories) to SQLite.
func recordRun(opts *RunOptions, params harness.Params, results []harness.Result, trajectories [][]engine.Trajectory) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return err
	}
	defer st.Close()

	ctx := context.Background()
	runID, err := st.BeginRun(ctx, store.RunMeta{
		Seed:      params.Seed,
		Subjects:  params.Subjects,
		Days:      params.Days,
		Threshold: params.Threshold,
	})
	if err != nil {
		return err
	}
	if err := st.WriteResults(ctx, runID, results); err != nil {
		return err
	}

	if opts.Steps {
		for si, subjectTrajs := range trajectories {
			for _, traj := range subjectTrajs {
				if err := st.WriteTrajectory(ctx, runID, results[si].Scenario, traj); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// printResults renders the per-scenario table with thousands separators.
func printResults(cmd *cobra.Command, results []harness.Result) {
	w := cmd.OutOrStdout()
	p := message.NewPrinter(language.English)

	fmt.Fprintf(w, "%-16s %8s %8s %10s %7s %7s %9s %8s %7s\n",
		"SCENARIO", "OBS", "FIRES", "FALSE POS", "ACC", "EQ", "STABILITY", "CONV", "VERDICT")
	for _, r := range results {
		verdict := "PASS"
		if !r.Passed {
			verdict = "FAIL"
		}
		p.Fprintf(w, "%-16s %8d %8d %10d %6.1f%% %7.3f %9.3f %8.1f %7s\n",
			r.Scenario, r.TotalObservations, r.TotalFires, r.FalsePositives,
			r.Accuracy*100, r.AvgEquilibrium, r.AvgStability, r.ConvergenceSpeed, verdict)
	}
}

// loadConfig reads the config argument, or falls back to the embedded
// reference configuration.
func loadConfig(args []string) (*config.Config, error) {
	if len(args) == 0 {
		return config.Default(), nil
	}
	cfg, err := config.Load(args[0])
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to load config", err)
	}
	return cfg, nil
}

// newLogger builds the slog logger for a command invocation.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
