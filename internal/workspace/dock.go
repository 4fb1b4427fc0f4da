package workspace

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"

	"github.com/demoreel/demoreel/internal/layout"
)

// node is one node of the split tree: either a leaf holding a panel or a
// split with exactly two children separated along one axis.
type node struct {
	parent     *node
	children   [2]*node
	horizontal bool    // split axis; meaningful for splits only
	ratio      float64 // start child's share of the split axis
	bounds     Rect
	panel      *dockPanel // non-nil for leaves
}

func (n *node) isLeaf() bool {
	return n.panel != nil
}

// Dock is the concrete binary-split docking surface. Adding a panel relative
// to a reference replaces the reference leaf with a split node; closing a
// panel collapses its parent split. Pixel geometry is recomputed from the
// viewport and the split ratios after every mutation.
type Dock struct {
	mu     sync.RWMutex
	logger zerolog.Logger
	width  int
	height int
	root   *node
	leaves map[string]*node
	order  []string // panel IDs in insertion order
	groups map[string]*Group
}

// NewDock creates an empty dock for the given viewport.
func NewDock(width, height int, logger zerolog.Logger) *Dock {
	return &Dock{
		logger: logger.With().Str("component", "dock").Logger(),
		width:  width,
		height: height,
		leaves: make(map[string]*node),
		groups: make(map[string]*Group),
	}
}

// AddPanel docks a new panel. A spec without a Position is the root
// placement and requires an empty dock; a spec with a Position docks on the
// given side of the reference panel.
func (d *Dock) AddPanel(spec PanelSpec) (PanelHandle, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if spec.ID == "" {
		return nil, fmt.Errorf("panel spec has empty ID")
	}
	if _, ok := d.leaves[spec.ID]; ok {
		return nil, fmt.Errorf("%w: %s", ErrPanelExists, spec.ID)
	}

	panel := &dockPanel{dock: d, id: spec.ID, content: spec.Content}
	leaf := &node{panel: panel}
	panel.node = leaf

	if spec.Position == nil {
		if d.root != nil {
			return nil, ErrRootOccupied
		}
		d.root = leaf
	} else {
		if d.root == nil {
			return nil, ErrEmptyWorkspace
		}
		ref, ok := d.leaves[spec.Position.RelativeTo]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownReference, spec.Position.RelativeTo)
		}
		d.splitLeaf(ref, leaf, spec.Position.Direction)
	}

	d.leaves[spec.ID] = leaf
	d.order = append(d.order, spec.ID)
	d.groups[spec.ID] = NewGroup(panel)
	d.recomputeGeometry()

	d.logger.Debug().
		Str("panel_id", spec.ID).
		Int("panel_count", len(d.leaves)).
		Msg("panel added")

	return panel, nil
}

// splitLeaf replaces ref with a split whose children are ref and leaf,
// ordered by the docking direction. Must be called with the lock held.
func (d *Dock) splitLeaf(ref, leaf *node, dir layout.Direction) {
	split := &node{
		parent:     ref.parent,
		horizontal: dir == layout.DirLeft || dir == layout.DirRight,
		ratio:      0.5,
	}

	newFirst := dir == layout.DirLeft || dir == layout.DirAbove
	if newFirst {
		split.children = [2]*node{leaf, ref}
	} else {
		split.children = [2]*node{ref, leaf}
	}

	if ref.parent == nil {
		d.root = split
	} else if ref.parent.children[0] == ref {
		ref.parent.children[0] = split
	} else {
		ref.parent.children[1] = split
	}
	ref.parent = split
	leaf.parent = split
}

// Panels returns all panels in insertion order.
func (d *Dock) Panels() []PanelHandle {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]PanelHandle, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.leaves[id].panel)
	}
	return out
}

// Groups returns all panel groups in insertion order.
func (d *Dock) Groups() []*Group {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := make([]*Group, 0, len(d.order))
	for _, id := range d.order {
		out = append(out, d.groups[id])
	}
	return out
}

// Resize changes the viewport and recomputes all slot geometry.
func (d *Dock) Resize(width, height int) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.width = width
	d.height = height
	d.recomputeGeometry()
}

// closePanel removes a leaf and promotes its sibling into the parent slot.
func (d *Dock) closePanel(p *dockPanel) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p.closed {
		return ErrPanelClosed
	}
	p.closed = true

	leaf := p.node
	switch {
	case leaf.parent == nil:
		d.root = nil
	default:
		parent := leaf.parent
		sibling := parent.children[0]
		if sibling == leaf {
			sibling = parent.children[1]
		}
		sibling.parent = parent.parent
		if parent.parent == nil {
			d.root = sibling
		} else if parent.parent.children[0] == parent {
			parent.parent.children[0] = sibling
		} else {
			parent.parent.children[1] = sibling
		}
	}

	delete(d.leaves, p.id)
	delete(d.groups, p.id)
	for i, id := range d.order {
		if id == p.id {
			d.order = append(d.order[:i], d.order[i+1:]...)
			break
		}
	}
	d.recomputeGeometry()

	if p.content != nil {
		return p.content.Close()
	}
	return nil
}

// setPanelSize adjusts the nearest enclosing split along the requested axis
// so the panel's subtree receives the given pixel size. A dimension with no
// matching ancestor split (the panel already spans the full axis) is ignored.
func (d *Dock) setPanelSize(p *dockPanel, size Size) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if p.closed {
		return ErrPanelClosed
	}

	if size.Width > 0 {
		d.adjustAncestorRatio(p.node, true, size.Width)
	}
	if size.Height > 0 {
		d.adjustAncestorRatio(p.node, false, size.Height)
	}
	d.recomputeGeometry()
	return nil
}

func (d *Dock) adjustAncestorRatio(leaf *node, horizontal bool, px int) {
	child := leaf
	for split := leaf.parent; split != nil; child, split = split, split.parent {
		if split.horizontal != horizontal {
			continue
		}
		total := split.bounds.Width
		if !horizontal {
			total = split.bounds.Height
		}
		if total <= 0 {
			return
		}
		ratio := float64(px) / float64(total)
		if split.children[1] == child {
			ratio = 1 - ratio
		}
		split.ratio = clampRatio(ratio)
		return
	}
}

// recomputeGeometry assigns pixel rects to every node from the viewport down.
// Must be called with the lock held.
func (d *Dock) recomputeGeometry() {
	if d.root == nil {
		return
	}
	d.assignBounds(d.root, Rect{Width: d.width, Height: d.height})
}

func (d *Dock) assignBounds(n *node, r Rect) {
	n.bounds = r
	if n.isLeaf() {
		return
	}

	if n.horizontal {
		startW := int(math.Round(float64(r.Width) * n.ratio))
		d.assignBounds(n.children[0], Rect{X: r.X, Y: r.Y, Width: startW, Height: r.Height})
		d.assignBounds(n.children[1], Rect{X: r.X + startW, Y: r.Y, Width: r.Width - startW, Height: r.Height})
		return
	}
	startH := int(math.Round(float64(r.Height) * n.ratio))
	d.assignBounds(n.children[0], Rect{X: r.X, Y: r.Y, Width: r.Width, Height: startH})
	d.assignBounds(n.children[1], Rect{X: r.X, Y: r.Y + startH, Width: r.Width, Height: r.Height - startH})
}

func clampRatio(ratio float64) float64 {
	if ratio < 0.0 {
		return 0.0
	}
	if ratio > 1.0 {
		return 1.0
	}
	return ratio
}

var _ Manager = (*Dock)(nil)

// dockPanel implements PanelHandle.
type dockPanel struct {
	dock    *Dock
	id      string
	content Content
	node    *node
	closed  bool
}

func (p *dockPanel) ID() string {
	return p.id
}

func (p *dockPanel) Content() Content {
	return p.content
}

func (p *dockPanel) Bounds() Rect {
	p.dock.mu.RLock()
	defer p.dock.mu.RUnlock()

	return p.node.bounds
}

func (p *dockPanel) SetSize(size Size) error {
	return p.dock.setPanelSize(p, size)
}

func (p *dockPanel) Close() error {
	return p.dock.closePanel(p)
}
