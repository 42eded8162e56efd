package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/roach88/driftlab/internal/engine"
	"github.com/roach88/driftlab/internal/harness"
)

// RunMeta records the parameters a run executed with.
type RunMeta struct {
	Seed      uint64
	Subjects  int
	Days      int
	Threshold float64
}

// BeginRun inserts a run row and returns its id.
//
// Ids are UUIDv7: time-sortable, so "most recent run" is a plain ORDER BY.
func (s *Store) BeginRun(ctx context.Context, meta RunMeta) (string, error) {
	id := uuid.Must(uuid.NewV7()).String()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (id, seed, subjects, days, threshold) VALUES (?, ?, ?, ?, ?)`,
		id, int64(meta.Seed), meta.Subjects, meta.Days, meta.Threshold,
	)
	if err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}
	return id, nil
}

// WriteResults stores one row per scenario result, preserving order via
// the ordinal column. All rows commit atomically.
func (s *Store) WriteResults(ctx context.Context, runID string, results []harness.Result) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO results (
			run_id, ordinal, scenario, total_observations,
			avg_equilibrium, avg_stability, total_fires, false_positives,
			accuracy, convergence_speed, passed
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range results {
		if _, err := stmt.ExecContext(ctx,
			runID, i, r.Scenario, r.TotalObservations,
			r.AvgEquilibrium, r.AvgStability, r.TotalFires, r.FalsePositives,
			r.Accuracy, r.ConvergenceSpeed, r.Passed,
		); err != nil {
			return fmt.Errorf("failed to insert result %q: %w", r.Scenario, err)
		}
	}

	return tx.Commit()
}

// WriteTrajectory stores every step of one subject's trajectory, for
// diagnostics. Trajectories are bulky; callers opt in per run.
func (s *Store) WriteTrajectory(ctx context.Context, runID, scenario string, traj engine.Trajectory) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO steps (
			run_id, scenario, subject, day,
			equilibrium, stability, top_node_id, top_pressure,
			fired, false_positive
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, step := range traj.Steps {
		if _, err := stmt.ExecContext(ctx,
			runID, scenario, traj.Subject, step.Day,
			step.Equilibrium, step.Stability, step.TopNodeID, step.TopPressure,
			step.Fired, step.FalsePositive,
		); err != nil {
			return fmt.Errorf("failed to insert step day %d: %w", step.Day, err)
		}
	}

	return tx.Commit()
}
