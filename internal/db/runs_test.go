package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoreel/demoreel/internal/db"
	"github.com/demoreel/demoreel/internal/domain/entity"
)

func newTestStore(t *testing.T) *db.RunStore {
	t.Helper()
	database, err := db.InitDB(filepath.Join(t.TempDir(), "runs.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return db.NewRunStore(database)
}

func testRun(scenario string, startedAt time.Time) entity.Run {
	return entity.Run{
		Scenario:    scenario,
		Fingerprint: "b2sum-deadbeef",
		PaneCount:   3,
		OpCount:     3,
		StartedAt:   startedAt,
		FinishedAt:  startedAt.Add(2 * time.Second),
	}
}

func TestInsertRunAssignsID(t *testing.T) {
	store := newTestStore(t)

	run, err := store.InsertRun(context.Background(), testRun("dev-workflow", time.Now()))
	require.NoError(t, err)
	assert.Positive(t, run.ID)

	second, err := store.InsertRun(context.Background(), testRun("dev-workflow", time.Now()))
	require.NoError(t, err)
	assert.Greater(t, second.ID, run.ID)
}

func TestRecentRunsNewestFirst(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		_, err := store.InsertRun(ctx, testRun("demo", base.Add(time.Duration(i)*time.Hour)))
		require.NoError(t, err)
	}

	runs, err := store.RecentRuns(ctx, 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.True(t, runs[0].StartedAt.After(runs[1].StartedAt))
}

func TestRunsForScenarioFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertRun(ctx, testRun("alpha", time.Now()))
	require.NoError(t, err)
	_, err = store.InsertRun(ctx, testRun("beta", time.Now()))
	require.NoError(t, err)

	runs, err := store.RunsForScenario(ctx, "alpha", 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "alpha", runs[0].Scenario)
	assert.Equal(t, 3, runs[0].PaneCount)
	assert.Equal(t, "b2sum-deadbeef", runs[0].Fingerprint)
}

func TestPruneRunsKeepsNewest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 5; i++ {
		_, err := store.InsertRun(ctx, testRun("demo", base.Add(time.Duration(i)*time.Minute)))
		require.NoError(t, err)
	}

	require.NoError(t, store.PruneRuns(ctx, 2, 0))

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, base.Add(4*time.Minute), runs[0].StartedAt.UTC())
}

func TestPruneRunsDropsOld(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, err := store.InsertRun(ctx, testRun("demo", time.Now().AddDate(0, 0, -30)))
	require.NoError(t, err)
	_, err = store.InsertRun(ctx, testRun("demo", time.Now()))
	require.NoError(t, err)

	require.NoError(t, store.PruneRuns(ctx, 0, 7))

	runs, err := store.RecentRuns(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
}
