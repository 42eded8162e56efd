package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/driftlab/internal/config"
	"github.com/roach88/driftlab/internal/engine"
	"github.com/roach88/driftlab/internal/graph"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Validate a simulator configuration",
		Long: `Validate a configuration file without running anything.

Checks, in order: strict YAML decoding, schema constraints (required
fields, [0,1] bounds), graph construction (duplicate ids, edges to
unknown nodes), and scenario cross-references.

Exit code 2 on any validation failure.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateConfig(rootOpts, args[0], cmd)
		},
	}
	return cmd
}

type validationSummary struct {
	Path      string `json:"path"`
	Nodes     int    `json:"nodes"`
	Edges     int    `json:"edges"`
	Scenarios int    `json:"scenarios"`
	Valid     bool   `json:"valid"`
}

func validateConfig(opts *RootOptions, path string, cmd *cobra.Command) error {
	cfg, err := config.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid config", err)
	}

	g, err := graph.New(cfg.Nodes, cfg.Edges)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid graph", err)
	}
	if err := engine.ValidateScenarios(g, cfg.Scenarios); err != nil {
		return WrapExitError(ExitCommandError, "invalid scenarios", err)
	}

	summary := validationSummary{
		Path:      path,
		Nodes:     len(cfg.Nodes),
		Edges:     len(cfg.Edges),
		Scenarios: len(cfg.Scenarios),
		Valid:     true,
	}

	if opts.Format == "json" {
		return writeJSON(cmd.OutOrStdout(), summary)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%d nodes, %d edges, %d scenarios)\n",
		path, summary.Nodes, summary.Edges, summary.Scenarios)
	return nil
}
