package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/demoreel/demoreel/internal/domain/entity"
)

// RunStore persists run history in the runs table.
type RunStore struct {
	db *sql.DB
}

// NewRunStore creates a store over an initialized database.
func NewRunStore(db *sql.DB) *RunStore {
	return &RunStore{db: db}
}

// InsertRun records a completed run and returns it with the assigned ID.
func (s *RunStore) InsertRun(ctx context.Context, run entity.Run) (entity.Run, error) {
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (scenario, fingerprint, pane_count, op_count, failed_panes, started_at, finished_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.Scenario, run.Fingerprint, run.PaneCount, run.OpCount, run.FailedPanes,
		run.StartedAt.UTC(), run.FinishedAt.UTC(),
	)
	if err != nil {
		return entity.Run{}, fmt.Errorf("insert run: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return entity.Run{}, fmt.Errorf("insert run: %w", err)
	}
	run.ID = id
	return run, nil
}

// RecentRuns returns up to limit runs, newest first.
func (s *RunStore) RecentRuns(ctx context.Context, limit int64) ([]entity.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario, fingerprint, pane_count, op_count, failed_panes, started_at, finished_at
		FROM runs ORDER BY started_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query recent runs: %w", err)
	}
	return scanRuns(rows)
}

// RunsForScenario returns up to limit runs of one scenario, newest first.
func (s *RunStore) RunsForScenario(ctx context.Context, scenario string, limit int64) ([]entity.Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, scenario, fingerprint, pane_count, op_count, failed_panes, started_at, finished_at
		FROM runs WHERE scenario = ? ORDER BY started_at DESC, id DESC LIMIT ?`, scenario, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs for scenario: %w", err)
	}
	return scanRuns(rows)
}

// PruneRuns removes runs beyond maxRuns and runs older than keepForDays.
// A zero limit disables that bound.
func (s *RunStore) PruneRuns(ctx context.Context, maxRuns int, keepForDays int) error {
	if keepForDays > 0 {
		cutoff := time.Now().UTC().AddDate(0, 0, -keepForDays)
		if _, err := s.db.ExecContext(ctx, "DELETE FROM runs WHERE started_at < ?", cutoff); err != nil {
			return fmt.Errorf("prune old runs: %w", err)
		}
	}
	if maxRuns > 0 {
		if _, err := s.db.ExecContext(ctx, `
			DELETE FROM runs WHERE id NOT IN (
				SELECT id FROM runs ORDER BY started_at DESC, id DESC LIMIT ?
			)`, maxRuns); err != nil {
			return fmt.Errorf("prune excess runs: %w", err)
		}
	}
	return nil
}

func scanRuns(rows *sql.Rows) ([]entity.Run, error) {
	defer func() { _ = rows.Close() }()

	var runs []entity.Run
	for rows.Next() {
		var run entity.Run
		if err := rows.Scan(
			&run.ID, &run.Scenario, &run.Fingerprint,
			&run.PaneCount, &run.OpCount, &run.FailedPanes,
			&run.StartedAt, &run.FinishedAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return runs, nil
}
