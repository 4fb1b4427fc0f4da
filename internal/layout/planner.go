package layout

import (
	"math"
	"sort"
)

// Direction tells the workspace which side of the reference panel a new
// panel docks onto.
type Direction string

const (
	DirLeft  Direction = "left"
	DirRight Direction = "right"
	DirAbove Direction = "above"
	DirBelow Direction = "below"
)

// SizeHint carries the pixel size a freshly docked panel should request.
// Exactly one dimension is set: width for horizontal docking, height for
// vertical docking.
type SizeHint struct {
	Width  int
	Height int
}

// PlacementOp is one instruction in the ordered plan. The first op of every
// plan is the root placement: Reference is -1, Direction is empty and Size is
// nil. Every other op references a pane placed earlier in the same plan.
type PlacementOp struct {
	Pane      int
	Reference int
	Direction Direction
	Size      *SizeHint
}

// IsRoot reports whether this op is the plan's root placement.
func (op PlacementOp) IsRoot() bool {
	return op.Reference < 0
}

// Plan orders the model's panes and computes a reference, direction and size
// hint for each. Panes are visited in reading order (ascending MinRow, then
// MinCol) so the plan is deterministic regardless of map iteration order and
// the top-left pane anchors the workspace root.
//
// For each pane after the first, every already-placed pane is tested for the
// four adjacency relations and the best-scoring (reference, direction) pair
// wins. A pane with no adjacency at all (disconnected region in a malformed
// grid) falls back to docking right of the root: a malformed spec still
// produces a renderable layout rather than aborting the scenario. The
// planner never fails.
func Plan(model GridModel, viewportWidth, viewportHeight int) []PlacementOp {
	if model.Empty() {
		return nil
	}

	cellW := 0
	cellH := 0
	if model.Cols > 0 {
		cellW = int(math.Round(float64(viewportWidth) / float64(model.Cols)))
	}
	if model.Rows > 0 {
		cellH = int(math.Round(float64(viewportHeight) / float64(model.Rows)))
	}

	order := make([]int, 0, len(model.Boxes))
	for idx := range model.Boxes {
		order = append(order, idx)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := model.Boxes[order[i]], model.Boxes[order[j]]
		if a.MinRow != b.MinRow {
			return a.MinRow < b.MinRow
		}
		if a.MinCol != b.MinCol {
			return a.MinCol < b.MinCol
		}
		return order[i] < order[j]
	})

	ops := make([]PlacementOp, 0, len(order))
	ops = append(ops, PlacementOp{Pane: order[0], Reference: -1})

	for _, pane := range order[1:] {
		box := model.Boxes[pane]

		bestScore := -1.0
		var bestRef int
		var bestDir Direction
		for _, placed := range ops {
			refBox := model.Boxes[placed.Pane]
			for _, dir := range []Direction{DirRight, DirBelow, DirLeft, DirAbove} {
				score, ok := adjacencyScore(box, refBox, dir)
				if ok && score > bestScore {
					bestScore = score
					bestRef = placed.Pane
					bestDir = dir
				}
			}
		}

		if bestScore < 0 {
			// Disconnected pane: attach right of the root so the build
			// still yields a complete, if imperfect, layout.
			ops = append(ops, PlacementOp{
				Pane:      pane,
				Reference: order[0],
				Direction: DirRight,
				Size:      &SizeHint{Width: box.SpanCols() * cellW},
			})
			continue
		}

		op := PlacementOp{Pane: pane, Reference: bestRef, Direction: bestDir}
		switch bestDir {
		case DirLeft, DirRight:
			op.Size = &SizeHint{Width: box.SpanCols() * cellW}
		case DirAbove, DirBelow:
			op.Size = &SizeHint{Height: box.SpanRows() * cellH}
		}
		ops = append(ops, op)
	}

	return ops
}

// adjacencyScore tests whether box b sits adjacent to box a in the given
// direction and, if so, scores the pairing. The first factor rewards full
// edge coverage (the fraction of b's shared edge actually touching a); the
// second rewards similar span perpendicular to the docking direction, which
// discourages picking a barely-fitting neighbor over a better-matched one.
// Both factors are in (0, 1], so scores are comparable across directions.
func adjacencyScore(b, a BoundingBox, dir Direction) (float64, bool) {
	switch dir {
	case DirRight:
		if b.MinCol != a.MaxCol+1 || rowOverlap(a, b) == 0 {
			return 0, false
		}
		return edgeScore(rowOverlap(a, b), b.SpanRows(), a.SpanRows()), true
	case DirLeft:
		if b.MaxCol+1 != a.MinCol || rowOverlap(a, b) == 0 {
			return 0, false
		}
		return edgeScore(rowOverlap(a, b), b.SpanRows(), a.SpanRows()), true
	case DirBelow:
		if b.MinRow != a.MaxRow+1 || colOverlap(a, b) == 0 {
			return 0, false
		}
		return edgeScore(colOverlap(a, b), b.SpanCols(), a.SpanCols()), true
	case DirAbove:
		if b.MaxRow+1 != a.MinRow || colOverlap(a, b) == 0 {
			return 0, false
		}
		return edgeScore(colOverlap(a, b), b.SpanCols(), a.SpanCols()), true
	}
	return 0, false
}

func edgeScore(overlap, bSpan, aSpan int) float64 {
	coverage := float64(overlap) / float64(bSpan)
	similarity := float64(min(bSpan, aSpan)) / float64(max(bSpan, aSpan))
	return coverage * similarity
}
