// Package renderer binds pane content into workspace slots. Each pane kind
// has a renderer; renderers produce Content immediately (so panels can be
// docked synchronously) and connect lazily once every panel exists.
package renderer

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/workspace"
)

// Content is live pane content bound to one panel. Connect performs the
// actual IO (socket dial, page load) and runs concurrently across panes; a
// failed Connect leaves the content in the error state rather than failing
// the build, and the slot shows the failure instead of the pane.
type Content interface {
	workspace.Content
	Connect(ctx context.Context, slot workspace.Rect) error
	Err() error
}

// Renderer produces content for one pane kind. It never fails: a pane with
// no usable content source yields placeholder content carrying the reason.
type Renderer interface {
	Render(pane entity.PaneSpec, scenario *entity.Scenario) Content
}

// Registry maps pane kinds to renderers.
type Registry struct {
	logger    zerolog.Logger
	renderers map[entity.PaneKind]Renderer
}

// NewRegistry creates a registry with the default terminal and browser
// renderers.
func NewRegistry(logger zerolog.Logger) *Registry {
	return &Registry{
		logger: logger,
		renderers: map[entity.PaneKind]Renderer{
			entity.PaneTerminal: NewTerminalRenderer(logger),
			entity.PaneBrowser:  NewBrowserRenderer(NewBrowserDriver(), logger),
		},
	}
}

// Register replaces the renderer for a kind. Used by tests and by hosts that
// bring their own content surfaces.
func (r *Registry) Register(kind entity.PaneKind, renderer Renderer) {
	r.renderers[kind] = renderer
}

// Render produces content for the pane. Unknown kinds degrade to a
// placeholder, consistent with the engine's never-fail layout policy.
func (r *Registry) Render(pane entity.PaneSpec, scenario *entity.Scenario) Content {
	renderer, ok := r.renderers[pane.Kind]
	if !ok {
		r.logger.Warn().
			Int("pane", pane.Index).
			Str("kind", string(pane.Kind)).
			Msg("no renderer for pane kind")
		return NewPlaceholder(pane, "unknown pane kind")
	}
	return renderer.Render(pane, scenario)
}

// Placeholder is the in-slot error state: it renders instead of the pane
// content when the content source is missing or the connection failed.
type Placeholder struct {
	pane   entity.PaneSpec
	reason string
}

// NewPlaceholder creates placeholder content for the pane.
func NewPlaceholder(pane entity.PaneSpec, reason string) *Placeholder {
	return &Placeholder{pane: pane, reason: reason}
}

func (p *Placeholder) Kind() string  { return "placeholder" }
func (p *Placeholder) Title() string { return p.pane.Title }

// Connect is a no-op; the placeholder has nothing to connect to.
func (p *Placeholder) Connect(_ context.Context, _ workspace.Rect) error { return nil }

// Err returns the reason the real content could not be rendered.
func (p *Placeholder) Err() error { return &ContentError{Pane: p.pane.Index, Reason: p.reason} }

func (p *Placeholder) Close() error { return nil }

// ContentError describes why a slot shows the placeholder state.
type ContentError struct {
	Pane   int
	Reason string
}

func (e *ContentError) Error() string {
	return e.Reason
}

// failable tracks connection failure state shared by content types.
type failable struct {
	mu  sync.Mutex
	err error
}

func (f *failable) setErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.err = err
}

// Err returns the connection error, if any.
func (f *failable) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}
