package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/driftlab/internal/harness"
	"github.com/roach88/driftlab/internal/store"
)

// ResultsOptions holds flags for the results command.
type ResultsOptions struct {
	*RootOptions
	Database string
	Limit    int
}

// NewResultsCommand creates the results command.
func NewResultsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ResultsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "results",
		Short: "List recorded stress-test runs",
		Long: `List runs recorded with "driftlab run --db" and their per-scenario
results, most recent first.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return listResults(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 10, "maximum runs to show")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

type runReport struct {
	Run     store.RunSummary `json:"run"`
	Results []harness.Result `json:"results"`
}

func listResults(opts *ResultsOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runs, err := st.ListRuns(ctx)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}
	if opts.Limit > 0 && len(runs) > opts.Limit {
		runs = runs[:opts.Limit]
	}

	reports := make([]runReport, 0, len(runs))
	for _, run := range runs {
		results, err := st.Results(ctx, run.ID)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to read results", err)
		}
		reports = append(reports, runReport{Run: run, Results: results})
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), reports)
	}

	w := cmd.OutOrStdout()
	if len(reports) == 0 {
		fmt.Fprintln(w, "No recorded runs.")
		return nil
	}
	for _, rep := range reports {
		fmt.Fprintf(w, "%s  %s  subjects=%d days=%d seed=%d\n",
			rep.Run.ID, rep.Run.CreatedAt, rep.Run.Subjects, rep.Run.Days, rep.Run.Seed)
		for _, r := range rep.Results {
			verdict := "PASS"
			if !r.Passed {
				verdict = "FAIL"
			}
			fmt.Fprintf(w, "  %-16s acc=%5.1f%% stability=%.3f fires=%d %s\n",
				r.Scenario, r.Accuracy*100, r.AvgStability, r.TotalFires, verdict)
		}
	}
	return nil
}
