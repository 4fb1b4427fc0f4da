package workspace_test

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/demoreel/demoreel/internal/layout"
	"github.com/demoreel/demoreel/internal/workspace"
)

func newDock(t *testing.T) *workspace.Dock {
	t.Helper()
	return workspace.NewDock(1280, 720, zerolog.Nop())
}

func addRoot(t *testing.T, d *workspace.Dock, id string) workspace.PanelHandle {
	t.Helper()
	p, err := d.AddPanel(workspace.PanelSpec{ID: id})
	require.NoError(t, err)
	return p
}

func addRelative(t *testing.T, d *workspace.Dock, id, ref string, dir layout.Direction) workspace.PanelHandle {
	t.Helper()
	p, err := d.AddPanel(workspace.PanelSpec{
		ID:       id,
		Position: &workspace.Position{RelativeTo: ref, Direction: dir},
	})
	require.NoError(t, err)
	return p
}

func TestDock_RootPanelFillsViewport(t *testing.T) {
	d := newDock(t)

	p := addRoot(t, d, "pane-0")

	assert.Equal(t, workspace.Rect{Width: 1280, Height: 720}, p.Bounds())
	assert.Len(t, d.Panels(), 1)
	assert.Len(t, d.Groups(), 1)
}

func TestDock_SecondRootRejected(t *testing.T) {
	d := newDock(t)
	addRoot(t, d, "pane-0")

	_, err := d.AddPanel(workspace.PanelSpec{ID: "pane-1"})

	assert.ErrorIs(t, err, workspace.ErrRootOccupied)
}

func TestDock_UnknownReferenceRejected(t *testing.T) {
	d := newDock(t)
	addRoot(t, d, "pane-0")

	_, err := d.AddPanel(workspace.PanelSpec{
		ID:       "pane-1",
		Position: &workspace.Position{RelativeTo: "missing", Direction: layout.DirRight},
	})

	assert.ErrorIs(t, err, workspace.ErrUnknownReference)
}

func TestDock_RelativePlacementOnEmptyDockRejected(t *testing.T) {
	d := newDock(t)

	_, err := d.AddPanel(workspace.PanelSpec{
		ID:       "pane-0",
		Position: &workspace.Position{RelativeTo: "missing", Direction: layout.DirRight},
	})

	assert.ErrorIs(t, err, workspace.ErrEmptyWorkspace)
}

func TestDock_DuplicateIDRejected(t *testing.T) {
	d := newDock(t)
	addRoot(t, d, "pane-0")

	_, err := d.AddPanel(workspace.PanelSpec{
		ID:       "pane-0",
		Position: &workspace.Position{RelativeTo: "pane-0", Direction: layout.DirRight},
	})

	assert.ErrorIs(t, err, workspace.ErrPanelExists)
}

func TestDock_HorizontalSplitHalvesWidth(t *testing.T) {
	d := newDock(t)
	left := addRoot(t, d, "pane-0")
	right := addRelative(t, d, "pane-1", "pane-0", layout.DirRight)

	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 640, Height: 720}, left.Bounds())
	assert.Equal(t, workspace.Rect{X: 640, Y: 0, Width: 640, Height: 720}, right.Bounds())
}

func TestDock_DockAboveTakesTopSlot(t *testing.T) {
	d := newDock(t)
	base := addRoot(t, d, "pane-0")
	top := addRelative(t, d, "pane-1", "pane-0", layout.DirAbove)

	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 1280, Height: 360}, top.Bounds())
	assert.Equal(t, workspace.Rect{X: 0, Y: 360, Width: 1280, Height: 360}, base.Bounds())
}

func TestDock_SetSizeAdjustsEnclosingSplit(t *testing.T) {
	d := newDock(t)
	left := addRoot(t, d, "pane-0")
	right := addRelative(t, d, "pane-1", "pane-0", layout.DirRight)

	require.NoError(t, right.SetSize(workspace.Size{Width: 320}))

	assert.Equal(t, 960, left.Bounds().Width)
	assert.Equal(t, 320, right.Bounds().Width)
	assert.Equal(t, 960, right.Bounds().X)
}

func TestDock_SetSizeIgnoresAxisWithoutSplit(t *testing.T) {
	d := newDock(t)
	left := addRoot(t, d, "pane-0")
	right := addRelative(t, d, "pane-1", "pane-0", layout.DirRight)

	// No vertical split anywhere above pane-1: the height request is a
	// no-op, the width request still lands.
	require.NoError(t, right.SetSize(workspace.Size{Width: 640, Height: 100}))

	assert.Equal(t, 720, right.Bounds().Height)
	assert.Equal(t, 640, left.Bounds().Width)
}

func TestDock_NestedSplitGeometry(t *testing.T) {
	// Reproduces the [[0,1],[0,2]] layout: pane-0 full-height on the left,
	// pane-1 over pane-2 on the right.
	d := newDock(t)
	p0 := addRoot(t, d, "pane-0")
	p1 := addRelative(t, d, "pane-1", "pane-0", layout.DirRight)
	p2 := addRelative(t, d, "pane-2", "pane-1", layout.DirBelow)

	require.NoError(t, p1.SetSize(workspace.Size{Width: 640}))
	require.NoError(t, p2.SetSize(workspace.Size{Height: 360}))

	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 640, Height: 720}, p0.Bounds())
	assert.Equal(t, workspace.Rect{X: 640, Y: 0, Width: 640, Height: 360}, p1.Bounds())
	assert.Equal(t, workspace.Rect{X: 640, Y: 360, Width: 640, Height: 360}, p2.Bounds())
}

func TestDock_CloseCollapsesSibling(t *testing.T) {
	d := newDock(t)
	left := addRoot(t, d, "pane-0")
	right := addRelative(t, d, "pane-1", "pane-0", layout.DirRight)

	require.NoError(t, right.Close())

	assert.Equal(t, workspace.Rect{Width: 1280, Height: 720}, left.Bounds())
	assert.Len(t, d.Panels(), 1)
	assert.Len(t, d.Groups(), 1)
}

func TestDock_CloseRootEmptiesDock(t *testing.T) {
	d := newDock(t)
	p := addRoot(t, d, "pane-0")

	require.NoError(t, p.Close())

	assert.Empty(t, d.Panels())
	assert.Empty(t, d.Groups())

	// The dock accepts a fresh root after full teardown.
	addRoot(t, d, "pane-0")
	assert.Len(t, d.Panels(), 1)
}

func TestDock_CloseTwiceFails(t *testing.T) {
	d := newDock(t)
	p := addRoot(t, d, "pane-0")

	require.NoError(t, p.Close())
	assert.ErrorIs(t, p.Close(), workspace.ErrPanelClosed)
}

func TestDock_ResizeRecomputesGeometry(t *testing.T) {
	d := newDock(t)
	left := addRoot(t, d, "pane-0")
	addRelative(t, d, "pane-1", "pane-0", layout.DirRight)

	d.Resize(1920, 1080)

	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 960, Height: 1080}, left.Bounds())
}

func TestGroup_LockFlag(t *testing.T) {
	g := workspace.NewGroup()

	assert.False(t, g.Locked())
	g.SetLocked(true)
	assert.True(t, g.Locked())
}
