package store

import (
	"context"
	"fmt"

	"github.com/roach88/driftlab/internal/harness"
)

// RunSummary is one row of the run history.
type RunSummary struct {
	ID        string  `json:"id"`
	CreatedAt string  `json:"created_at"`
	Seed      uint64  `json:"seed"`
	Subjects  int     `json:"subjects"`
	Days      int     `json:"days"`
	Threshold float64 `json:"threshold"`
}

// ListRuns returns all runs, most recent first.
func (s *Store) ListRuns(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, created_at, seed, subjects, days, threshold
		FROM runs
		ORDER BY id DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunSummary
	for rows.Next() {
		var r RunSummary
		var seed int64
		if err := rows.Scan(&r.ID, &r.CreatedAt, &seed, &r.Subjects, &r.Days, &r.Threshold); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		r.Seed = uint64(seed)
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Results returns the per-scenario results of one run, in the order the
// harness produced them.
func (s *Store) Results(ctx context.Context, runID string) ([]harness.Result, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT scenario, total_observations, avg_equilibrium, avg_stability,
		       total_fires, false_positives, accuracy, convergence_speed, passed
		FROM results
		WHERE run_id = ?
		ORDER BY ordinal ASC`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	var results []harness.Result
	for rows.Next() {
		var r harness.Result
		if err := rows.Scan(
			&r.Scenario, &r.TotalObservations, &r.AvgEquilibrium, &r.AvgStability,
			&r.TotalFires, &r.FalsePositives, &r.Accuracy, &r.ConvergenceSpeed, &r.Passed,
		); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
