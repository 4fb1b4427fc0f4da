// Package layout implements the grid placement engine: it converts a
// declarative rectangular grid of pane indices into an ordered sequence of
// incremental docking operations that a binary-split panel workspace can
// replay to reproduce the same visual arrangement.
//
// The engine is a pure function of (grid, pane count, viewport); it holds no
// state between builds. Rebuilding from scratch on every configuration change
// is the design: there is no incremental diffing of a previous layout.
package layout

// BoundingBox is the rectangular cell range a pane index occupies within the
// grid matrix. All bounds are inclusive.
type BoundingBox struct {
	MinRow int
	MaxRow int
	MinCol int
	MaxCol int
}

// SpanRows returns the number of rows the box covers.
func (b BoundingBox) SpanRows() int {
	return b.MaxRow - b.MinRow + 1
}

// SpanCols returns the number of columns the box covers.
func (b BoundingBox) SpanCols() int {
	return b.MaxCol - b.MinCol + 1
}

// rowOverlap returns the number of rows shared by both boxes, or 0.
func rowOverlap(a, b BoundingBox) int {
	lo := max(a.MinRow, b.MinRow)
	hi := min(a.MaxRow, b.MaxRow)
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// colOverlap returns the number of columns shared by both boxes, or 0.
func colOverlap(a, b BoundingBox) int {
	lo := max(a.MinCol, b.MinCol)
	hi := min(a.MaxCol, b.MaxCol)
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// GridModel is the output of the grid scan: one bounding box per eligible
// pane index, plus the matrix dimensions. Cols is the maximum row length
// since rows may be ragged.
type GridModel struct {
	Boxes map[int]BoundingBox
	Rows  int
	Cols  int
}

// Empty reports whether the model yields nothing to place.
func (m GridModel) Empty() bool {
	return len(m.Boxes) == 0
}

// BuildGridModel scans every cell of the grid and derives the bounding box of
// each pane index. Indices outside [0, paneCount) are skipped rather than
// rejected: a grid may legitimately reference panes that no longer exist
// after a config edit. An empty grid or non-positive paneCount yields an
// empty model.
//
// The model assumes each index's cells form a single axis-aligned rectangle.
// Disjoint or L-shaped regions are not validated; the box simply expands to
// cover every cell holding the index, which swallows any concavity.
func BuildGridModel(grid [][]int, paneCount int) GridModel {
	model := GridModel{Boxes: make(map[int]BoundingBox)}
	if len(grid) == 0 || paneCount <= 0 {
		return model
	}

	model.Rows = len(grid)
	for row, cells := range grid {
		if len(cells) > model.Cols {
			model.Cols = len(cells)
		}
		for col, idx := range cells {
			if idx < 0 || idx >= paneCount {
				continue
			}
			box, seen := model.Boxes[idx]
			if !seen {
				model.Boxes[idx] = BoundingBox{MinRow: row, MaxRow: row, MinCol: col, MaxCol: col}
				continue
			}
			if row < box.MinRow {
				box.MinRow = row
			}
			if row > box.MaxRow {
				box.MaxRow = row
			}
			if col < box.MinCol {
				box.MinCol = col
			}
			if col > box.MaxCol {
				box.MaxCol = col
			}
			model.Boxes[idx] = box
		}
	}
	return model
}

// DefaultGrid synthesizes the layout used when a scenario omits its grid:
// a single row with all panes side by side.
func DefaultGrid(paneCount int) [][]int {
	if paneCount <= 0 {
		return nil
	}
	row := make([]int, paneCount)
	for i := range row {
		row[i] = i
	}
	return [][]int{row}
}
