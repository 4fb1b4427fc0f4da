package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoreel/demoreel/internal/layout"
)

func planFor(t *testing.T, grid [][]int, paneCount, w, h int) []layout.PlacementOp {
	t.Helper()
	model := layout.BuildGridModel(grid, paneCount)
	return layout.Plan(model, w, h)
}

func TestPlan_SingleCell(t *testing.T) {
	ops := planFor(t, [][]int{{0}}, 1, 1280, 720)

	require.Len(t, ops, 1)
	assert.True(t, ops[0].IsRoot())
	assert.Equal(t, 0, ops[0].Pane)
	assert.Empty(t, ops[0].Direction)
	assert.Nil(t, ops[0].Size)
}

func TestPlan_TwoPanesSideBySide(t *testing.T) {
	ops := planFor(t, [][]int{{0, 1}}, 2, 1280, 720)

	require.Len(t, ops, 2)
	assert.True(t, ops[0].IsRoot())
	assert.Equal(t, 0, ops[0].Pane)

	assert.Equal(t, 1, ops[1].Pane)
	assert.Equal(t, 0, ops[1].Reference)
	assert.Equal(t, layout.DirRight, ops[1].Direction)
	require.NotNil(t, ops[1].Size)
	assert.Equal(t, 640, ops[1].Size.Width)
	assert.Zero(t, ops[1].Size.Height)
}

func TestPlan_SpanningColumn(t *testing.T) {
	// Pane 0 spans both rows on the left; pane 2 should prefer docking below
	// pane 1 (same width) over docking right of pane 0 (half its height).
	ops := planFor(t, [][]int{
		{0, 1},
		{0, 2},
	}, 3, 1280, 720)

	require.Len(t, ops, 3)
	assert.True(t, ops[0].IsRoot())
	assert.Equal(t, 0, ops[0].Pane)

	assert.Equal(t, 1, ops[1].Pane)
	assert.Equal(t, 0, ops[1].Reference)
	assert.Equal(t, layout.DirRight, ops[1].Direction)
	require.NotNil(t, ops[1].Size)
	assert.Equal(t, 640, ops[1].Size.Width)
	assert.Zero(t, ops[1].Size.Height)

	assert.Equal(t, 2, ops[2].Pane)
	assert.Equal(t, 1, ops[2].Reference)
	assert.Equal(t, layout.DirBelow, ops[2].Direction)
	require.NotNil(t, ops[2].Size)
	assert.Equal(t, 360, ops[2].Size.Height)
	assert.Zero(t, ops[2].Size.Width)
}

func TestPlan_SpanningRow(t *testing.T) {
	// Pane 0 spans the top row; panes 1 and 2 share the bottom.
	ops := planFor(t, [][]int{
		{0, 0},
		{1, 2},
	}, 3, 1280, 720)

	require.Len(t, ops, 3)
	assert.Equal(t, 0, ops[0].Pane)

	assert.Equal(t, 1, ops[1].Pane)
	assert.Equal(t, 0, ops[1].Reference)
	assert.Equal(t, layout.DirBelow, ops[1].Direction)
	require.NotNil(t, ops[1].Size)
	assert.Equal(t, 360, ops[1].Size.Height)

	// Pane 2 fits pane 1 exactly, so it docks right of it rather than below
	// the wide pane 0.
	assert.Equal(t, 2, ops[2].Pane)
	assert.Equal(t, 1, ops[2].Reference)
	assert.Equal(t, layout.DirRight, ops[2].Direction)
	require.NotNil(t, ops[2].Size)
	assert.Equal(t, 640, ops[2].Size.Width)
}

func TestPlan_OutOfRangeIndexExcluded(t *testing.T) {
	ops := planFor(t, [][]int{
		{0, 5},
		{1, 2},
	}, 3, 1280, 720)

	assert.Len(t, ops, 3)
	for _, op := range ops {
		assert.NotEqual(t, 5, op.Pane)
	}
}

func TestPlan_DisconnectedPaneFallsBackToRoot(t *testing.T) {
	// The gap cell (-1) leaves pane 1 with no adjacency at all. It must
	// still be placed: right of the root, never dropped.
	ops := planFor(t, [][]int{{0, -1, 1}}, 2, 1200, 720)

	require.Len(t, ops, 2)
	assert.Equal(t, 1, ops[1].Pane)
	assert.Equal(t, 0, ops[1].Reference)
	assert.Equal(t, layout.DirRight, ops[1].Direction)
	require.NotNil(t, ops[1].Size)
	assert.Equal(t, 400, ops[1].Size.Width)
}

func TestPlan_EmptyModel(t *testing.T) {
	assert.Nil(t, layout.Plan(layout.BuildGridModel(nil, 3), 1280, 720))
}

func TestPlan_EveryOpReferencesEarlierPane(t *testing.T) {
	grids := [][][]int{
		{{0, 1, 2, 3}},
		{{0}, {1}, {2}, {3}},
		{{0, 1}, {2, 3}},
		{{0, 0, 1}, {2, 3, 1}, {2, 4, 4}},
		{{0, 1, 1}, {0, 2, 3}},
	}

	for _, grid := range grids {
		model := layout.BuildGridModel(grid, 16)
		ops := layout.Plan(model, 1920, 1080)
		require.Len(t, ops, len(model.Boxes))

		placed := map[int]bool{}
		for i, op := range ops {
			if i == 0 {
				assert.True(t, op.IsRoot())
				assert.Nil(t, op.Size)
			} else {
				assert.True(t, placed[op.Reference], "op %d references unplaced pane %d", i, op.Reference)
				assert.NotEmpty(t, op.Direction)
				assert.NotNil(t, op.Size)
			}
			assert.False(t, placed[op.Pane], "pane %d placed twice", op.Pane)
			placed[op.Pane] = true
		}
	}
}

func TestPlan_Deterministic(t *testing.T) {
	grid := [][]int{
		{0, 1, 2},
		{3, 4, 2},
		{3, 5, 6},
	}
	model := layout.BuildGridModel(grid, 7)
	first := layout.Plan(model, 1920, 1080)

	// Map iteration order must not leak into the plan.
	for i := 0; i < 50; i++ {
		assert.Equal(t, first, layout.Plan(layout.BuildGridModel(grid, 7), 1920, 1080))
	}
}

func TestPlan_SizeHintUsesRoundedCellSize(t *testing.T) {
	// 1000 / 3 columns rounds to 333 per cell; a two-column pane gets 666.
	ops := planFor(t, [][]int{{0, 1, 1}}, 2, 1000, 720)

	require.Len(t, ops, 2)
	require.NotNil(t, ops[1].Size)
	assert.Equal(t, 666, ops[1].Size.Width)
}
