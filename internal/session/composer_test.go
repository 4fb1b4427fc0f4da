package session_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/renderer"
	"github.com/demoreel/demoreel/internal/session"
	"github.com/demoreel/demoreel/internal/workspace"
	"github.com/demoreel/demoreel/internal/workspace/mocks"
)

// fakeContent records the slot it was connected into.
type fakeContent struct {
	pane       entity.PaneSpec
	connectErr error

	mu        sync.Mutex
	connected bool
	slot      workspace.Rect
	closed    bool
	err       error
}

func (f *fakeContent) Kind() string  { return string(f.pane.Kind) }
func (f *fakeContent) Title() string { return f.pane.Title }

func (f *fakeContent) Connect(_ context.Context, slot workspace.Rect) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.connectErr != nil {
		f.err = f.connectErr
		return f.connectErr
	}
	f.connected = true
	f.slot = slot
	return nil
}

func (f *fakeContent) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

func (f *fakeContent) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

// fakeRenderer hands out fakeContent per pane index.
type fakeRenderer struct {
	mu       sync.Mutex
	contents map[int]*fakeContent
	failPane int // pane index whose Connect fails, -1 for none
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{contents: make(map[int]*fakeContent), failPane: -1}
}

func (r *fakeRenderer) Render(pane entity.PaneSpec, _ *entity.Scenario) renderer.Content {
	r.mu.Lock()
	defer r.mu.Unlock()
	content := &fakeContent{pane: pane}
	if pane.Index == r.failPane {
		content.connectErr = errors.New("connect refused")
	}
	r.contents[pane.Index] = content
	return content
}

func threePaneScenario() *entity.Scenario {
	return &entity.Scenario{
		Name: "dev-workflow",
		Panes: []entity.PaneSpec{
			{Index: 0, Kind: entity.PaneBrowser, Title: "App", ContentRef: "http://localhost:3000"},
			{Index: 1, Kind: entity.PaneTerminal, Title: "Server", ContentRef: "npm run dev"},
			{Index: 2, Kind: entity.PaneTerminal, Title: "Logs", SessionID: "logs"},
		},
		Grid:     [][]int{{0, 1}, {0, 2}},
		Viewport: entity.Viewport{Width: 1280, Height: 720},
	}
}

func TestComposeBuildsExpectedGeometry(t *testing.T) {
	dock := workspace.NewDock(1280, 720, zerolog.Nop())
	r := newFakeRenderer()
	composer := session.NewComposer(dock, r, zerolog.Nop())

	result, err := composer.Compose(context.Background(), threePaneScenario())
	require.NoError(t, err)
	assert.Equal(t, 3, result.OpCount)
	assert.Zero(t, result.Failed)

	panels := dock.Panels()
	require.Len(t, panels, 3)

	bounds := make(map[string]workspace.Rect, len(panels))
	for _, p := range panels {
		bounds[p.ID()] = p.Bounds()
	}
	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 640, Height: 720}, bounds["pane-0"])
	assert.Equal(t, workspace.Rect{X: 640, Y: 0, Width: 640, Height: 360}, bounds["pane-1"])
	assert.Equal(t, workspace.Rect{X: 640, Y: 360, Width: 640, Height: 360}, bounds["pane-2"])
}

func TestComposeConnectsContentToSlots(t *testing.T) {
	dock := workspace.NewDock(1280, 720, zerolog.Nop())
	r := newFakeRenderer()
	composer := session.NewComposer(dock, r, zerolog.Nop())

	_, err := composer.Compose(context.Background(), threePaneScenario())
	require.NoError(t, err)

	for pane, content := range r.contents {
		assert.True(t, content.connected, "pane %d content not connected", pane)
	}
	assert.Equal(t, workspace.Rect{X: 0, Y: 0, Width: 640, Height: 720}, r.contents[0].slot)
}

func TestComposeLocksLayout(t *testing.T) {
	dock := workspace.NewDock(1280, 720, zerolog.Nop())
	composer := session.NewComposer(dock, newFakeRenderer(), zerolog.Nop())

	_, err := composer.Compose(context.Background(), threePaneScenario())
	require.NoError(t, err)

	groups := dock.Groups()
	require.NotEmpty(t, groups)
	for _, g := range groups {
		assert.True(t, g.Locked())
	}
}

func TestComposeRebuildsFromScratch(t *testing.T) {
	dock := workspace.NewDock(1280, 720, zerolog.Nop())
	r := newFakeRenderer()
	composer := session.NewComposer(dock, r, zerolog.Nop())
	scenario := threePaneScenario()

	_, err := composer.Compose(context.Background(), scenario)
	require.NoError(t, err)
	firstRound := make(map[int]*fakeContent, len(r.contents))
	for pane, content := range r.contents {
		firstRound[pane] = content
	}

	_, err = composer.Compose(context.Background(), scenario)
	require.NoError(t, err)

	// Same tree again, old content torn down.
	require.Len(t, dock.Panels(), 3)
	for pane, content := range firstRound {
		assert.True(t, content.closed, "pane %d content from first build not closed", pane)
	}
}

func TestComposeCountsFailedPanes(t *testing.T) {
	dock := workspace.NewDock(1280, 720, zerolog.Nop())
	r := newFakeRenderer()
	r.failPane = 2
	composer := session.NewComposer(dock, r, zerolog.Nop())

	result, err := composer.Compose(context.Background(), threePaneScenario())
	require.NoError(t, err)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, dock.Panels(), 3, "failed content must not remove the panel")
}

func TestComposeDefaultsToSingleRowGrid(t *testing.T) {
	dock := workspace.NewDock(1200, 600, zerolog.Nop())
	composer := session.NewComposer(dock, newFakeRenderer(), zerolog.Nop())

	scenario := &entity.Scenario{
		Name: "no-grid",
		Panes: []entity.PaneSpec{
			{Index: 0, Kind: entity.PaneTerminal},
			{Index: 1, Kind: entity.PaneTerminal},
		},
		Viewport: entity.Viewport{Width: 1200, Height: 600},
	}

	result, err := composer.Compose(context.Background(), scenario)
	require.NoError(t, err)
	assert.Equal(t, 2, result.OpCount)

	bounds := make(map[string]workspace.Rect)
	for _, p := range dock.Panels() {
		bounds[p.ID()] = p.Bounds()
	}
	assert.Equal(t, 600, bounds["pane-0"].Width)
	assert.Equal(t, 600, bounds["pane-1"].Width)
}

func TestComposePropagatesDockingFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	ws := mocks.NewMockManager(ctrl)

	ws.EXPECT().Panels().Return(nil)
	ws.EXPECT().Resize(1280, 720)
	ws.EXPECT().AddPanel(gomock.Any()).Return(nil, workspace.ErrPanelExists)

	composer := session.NewComposer(ws, newFakeRenderer(), zerolog.Nop())
	_, err := composer.Compose(context.Background(), threePaneScenario())
	require.Error(t, err)
	assert.ErrorIs(t, err, workspace.ErrPanelExists)
}
