package db

import (
	"context"

	"github.com/demoreel/demoreel/internal/domain/entity"
)

// RunQuerier defines the interface for run history operations
type RunQuerier interface {
	InsertRun(ctx context.Context, run entity.Run) (entity.Run, error)
	RecentRuns(ctx context.Context, limit int64) ([]entity.Run, error)
	RunsForScenario(ctx context.Context, scenario string, limit int64) ([]entity.Run, error)
	PruneRuns(ctx context.Context, maxRuns int, keepForDays int) error
}

// Ensure that *RunStore implements RunQuerier interface
var _ RunQuerier = (*RunStore)(nil)
