// Package workspace provides the binary-split docking surface that hosts
// scenario panes. Panels are added one at a time, each docked relative to an
// already-present panel; the workspace maintains the resulting split tree and
// the pixel geometry of every slot.
package workspace

import (
	"errors"
	"sync"

	"github.com/demoreel/demoreel/internal/layout"
)

var (
	// ErrRootOccupied is returned when a root placement is attempted on a
	// non-empty workspace.
	ErrRootOccupied = errors.New("workspace already has a root panel")
	// ErrPanelExists is returned when a panel ID is already in use.
	ErrPanelExists = errors.New("panel already exists")
	// ErrUnknownReference is returned when a docking position names a panel
	// that is not in the workspace.
	ErrUnknownReference = errors.New("reference panel not found")
	// ErrEmptyWorkspace is returned when a relative placement is attempted
	// on an empty workspace.
	ErrEmptyWorkspace = errors.New("workspace is empty")
	// ErrPanelClosed is returned when operating on a closed panel.
	ErrPanelClosed = errors.New("panel is closed")
)

// Content is what a panel displays. Concrete content types live in the
// renderer package; the workspace only needs identity and teardown.
type Content interface {
	Kind() string
	Title() string
	Close() error
}

// Rect is a pixel rectangle within the viewport.
type Rect struct {
	X      int
	Y      int
	Width  int
	Height int
}

// Size is a resize request. A zero dimension is left unchanged.
type Size struct {
	Width  int
	Height int
}

// Position describes where a new panel docks: on the given side of an
// existing panel. A nil Position in PanelSpec means root placement.
type Position struct {
	RelativeTo string
	Direction  layout.Direction
}

// PanelSpec describes a panel to add to the workspace.
type PanelSpec struct {
	ID       string
	Content  Content
	Position *Position
}

// PanelHandle is the live handle to one docked panel.
type PanelHandle interface {
	ID() string
	Content() Content
	Bounds() Rect
	SetSize(size Size) error
	Close() error
}

// Manager is the docking surface consumed by the plan executor.
type Manager interface {
	AddPanel(spec PanelSpec) (PanelHandle, error)
	Panels() []PanelHandle
	Groups() []*Group
	Resize(width, height int)
}

// Group is one panel slot as a drop target. The grid is system-authored, so
// after a build every group is locked against drag-based rearrangement.
type Group struct {
	mu     sync.RWMutex
	panels []PanelHandle
	locked bool
}

// NewGroup creates a group holding the given panels.
func NewGroup(panels ...PanelHandle) *Group {
	return &Group{panels: panels}
}

// Panels returns the panels in this group.
func (g *Group) Panels() []PanelHandle {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]PanelHandle, len(g.panels))
	copy(out, g.panels)
	return out
}

// Locked reports whether the group rejects drag-based re-layout.
func (g *Group) Locked() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.locked
}

// SetLocked sets the drag-target lock flag.
func (g *Group) SetLocked(locked bool) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.locked = locked
}
