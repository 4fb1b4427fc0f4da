package layout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoreel/demoreel/internal/layout"
)

func TestBuildGridModel_SingleCell(t *testing.T) {
	model := layout.BuildGridModel([][]int{{0}}, 1)

	require.Len(t, model.Boxes, 1)
	assert.Equal(t, 1, model.Rows)
	assert.Equal(t, 1, model.Cols)
	assert.Equal(t, layout.BoundingBox{}, model.Boxes[0])
}

func TestBuildGridModel_SpanningPane(t *testing.T) {
	// Pane 0 occupies the whole left column across both rows.
	model := layout.BuildGridModel([][]int{
		{0, 1},
		{0, 2},
	}, 3)

	require.Len(t, model.Boxes, 3)
	assert.Equal(t, layout.BoundingBox{MinRow: 0, MaxRow: 1, MinCol: 0, MaxCol: 0}, model.Boxes[0])
	assert.Equal(t, layout.BoundingBox{MinRow: 0, MaxRow: 0, MinCol: 1, MaxCol: 1}, model.Boxes[1])
	assert.Equal(t, layout.BoundingBox{MinRow: 1, MaxRow: 1, MinCol: 1, MaxCol: 1}, model.Boxes[2])
	assert.Equal(t, 2, model.Boxes[0].SpanRows())
	assert.Equal(t, 1, model.Boxes[0].SpanCols())
}

func TestBuildGridModel_RaggedRows(t *testing.T) {
	// Column count is the maximum row length.
	model := layout.BuildGridModel([][]int{
		{0, 1, 2},
		{3},
	}, 4)

	assert.Equal(t, 2, model.Rows)
	assert.Equal(t, 3, model.Cols)
	assert.Len(t, model.Boxes, 4)
}

func TestBuildGridModel_OutOfRangeIndexSkipped(t *testing.T) {
	// Index 5 references a pane that no longer exists; it must be dropped
	// without error.
	model := layout.BuildGridModel([][]int{
		{0, 5},
		{1, 2},
	}, 3)

	assert.Len(t, model.Boxes, 3)
	assert.NotContains(t, model.Boxes, 5)
}

func TestBuildGridModel_EmptyInputs(t *testing.T) {
	tests := []struct {
		name      string
		grid      [][]int
		paneCount int
	}{
		{name: "nil grid", grid: nil, paneCount: 2},
		{name: "empty grid", grid: [][]int{}, paneCount: 2},
		{name: "zero panes", grid: [][]int{{0}}, paneCount: 0},
		{name: "negative panes", grid: [][]int{{0}}, paneCount: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			model := layout.BuildGridModel(tt.grid, tt.paneCount)
			assert.True(t, model.Empty())
		})
	}
}

func TestDefaultGrid(t *testing.T) {
	assert.Equal(t, [][]int{{0, 1, 2}}, layout.DefaultGrid(3))
	assert.Nil(t, layout.DefaultGrid(0))
}
