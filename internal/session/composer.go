// Package session orchestrates scenario runs: it turns a scenario into a
// placement plan, replays the plan against a workspace, and binds live pane
// content into the resulting slots.
package session

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/layout"
	"github.com/demoreel/demoreel/internal/logging"
	"github.com/demoreel/demoreel/internal/renderer"
	"github.com/demoreel/demoreel/internal/workspace"
)

// ContentRenderer produces pane content. Decoupled from the concrete registry
// so composition can be tested without sockets or browser processes.
type ContentRenderer interface {
	Render(pane entity.PaneSpec, scenario *entity.Scenario) renderer.Content
}

// Composer replays placement plans against a workspace. Every apply is a full
// rebuild: existing panels are torn down first, so the same scenario always
// yields the same tree regardless of what was on screen before.
type Composer struct {
	logger   zerolog.Logger
	renderer ContentRenderer
	ws       workspace.Manager
}

// NewComposer creates a composer bound to one workspace.
func NewComposer(ws workspace.Manager, renderer ContentRenderer, logger zerolog.Logger) *Composer {
	return &Composer{
		logger:   logger.With().Str("component", "composer").Logger(),
		renderer: renderer,
		ws:       ws,
	}
}

// Result describes one applied plan.
type Result struct {
	Ops     []layout.PlacementOp
	Panels  []workspace.PanelHandle
	Failed  int // panes whose content could not connect and show a placeholder
	OpCount int
}

// panelID names the workspace panel for a pane index.
func panelID(pane int) string {
	return fmt.Sprintf("pane-%d", pane)
}

// Compose plans and applies the scenario. Structural failures (a docking op
// the workspace rejects) abort the build; per-pane content failures do not.
func (c *Composer) Compose(ctx context.Context, scenario *entity.Scenario) (*Result, error) {
	grid := scenario.Grid
	if len(grid) == 0 {
		grid = layout.DefaultGrid(scenario.PaneCount())
	}
	model := layout.BuildGridModel(grid, scenario.PaneCount())
	ops := layout.Plan(model, scenario.Viewport.Width, scenario.Viewport.Height)

	c.logger.Debug().
		Str("scenario", scenario.Name).
		Int("panes", scenario.PaneCount()).
		Int("ops", len(ops)).
		Msg("plan built")

	if err := c.teardown(); err != nil {
		return nil, fmt.Errorf("teardown workspace: %w", err)
	}
	c.ws.Resize(scenario.Viewport.Width, scenario.Viewport.Height)

	result := &Result{Ops: ops, OpCount: len(ops)}
	contents := make(map[int]renderer.Content, len(ops))

	for _, op := range ops {
		pane := scenario.Pane(op.Pane)
		if pane == nil {
			return nil, fmt.Errorf("plan references pane %d outside scenario", op.Pane)
		}

		content := c.renderer.Render(*pane, scenario)
		spec := workspace.PanelSpec{
			ID:      panelID(op.Pane),
			Content: content,
		}
		if !op.IsRoot() {
			spec.Position = &workspace.Position{
				RelativeTo: panelID(op.Reference),
				Direction:  op.Direction,
			}
		}

		handle, err := c.ws.AddPanel(spec)
		if err != nil {
			return nil, fmt.Errorf("dock pane %d: %w", op.Pane, err)
		}
		if op.Size != nil {
			if err := handle.SetSize(workspace.Size{Width: op.Size.Width, Height: op.Size.Height}); err != nil {
				return nil, fmt.Errorf("size pane %d: %w", op.Pane, err)
			}
		}

		contents[op.Pane] = content
		result.Panels = append(result.Panels, handle)
	}

	// The layout is final once every op is applied; lock it so content
	// activity cannot reshuffle panes mid-recording.
	for _, group := range c.ws.Groups() {
		group.SetLocked(true)
	}

	result.Failed = c.connectAll(ctx, contents)
	return result, nil
}

// connectAll connects every pane's content concurrently. A failed connect is
// logged and counted; the slot keeps the content in its error state.
func (c *Composer) connectAll(ctx context.Context, contents map[int]renderer.Content) int {
	type slot struct {
		pane    int
		content renderer.Content
		bounds  workspace.Rect
	}

	var slots []slot
	for _, handle := range c.ws.Panels() {
		var pane int
		if _, err := fmt.Sscanf(handle.ID(), "pane-%d", &pane); err != nil {
			continue
		}
		content, ok := contents[pane]
		if !ok {
			continue
		}
		slots = append(slots, slot{pane: pane, content: content, bounds: handle.Bounds()})
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, s := range slots {
		g.Go(func() error {
			slotCtx := logging.WithPane(gctx, s.pane)
			if err := s.content.Connect(slotCtx, s.bounds); err != nil {
				logging.FromContext(slotCtx).Warn().Err(err).Msg("pane content failed to connect")
			}
			return nil
		})
	}
	_ = g.Wait()

	failed := 0
	for _, s := range slots {
		if s.content.Err() != nil {
			failed++
		}
	}
	return failed
}

// teardown closes every panel so the next apply starts from an empty
// workspace. Panels are closed in reverse insertion order; closing a panel
// collapses its split, so the last panel closed is the root.
func (c *Composer) teardown() error {
	panels := c.ws.Panels()
	for i := len(panels) - 1; i >= 0; i-- {
		if err := panels[i].Close(); err != nil {
			return fmt.Errorf("close panel %s: %w", panels[i].ID(), err)
		}
	}
	return nil
}
