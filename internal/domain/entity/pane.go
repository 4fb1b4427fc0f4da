// Package entity contains domain entities representing core business concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

// PaneKind identifies what kind of content a pane renders.
type PaneKind string

const (
	// PaneTerminal renders a connection to a terminal multiplexing service.
	PaneTerminal PaneKind = "terminal"
	// PaneBrowser renders an embedded browser page.
	PaneBrowser PaneKind = "browser"
)

// Valid reports whether the kind is one of the known pane kinds.
func (k PaneKind) Valid() bool {
	return k == PaneTerminal || k == PaneBrowser
}

// PaneSpec describes one content slot in a scenario grid.
// The ContentRef is a command identifier for terminal panes and a URL for
// browser panes. Specs are immutable once a grid has been built from them.
type PaneSpec struct {
	Index      int      `mapstructure:"-" yaml:"-" json:"index"`
	Kind       PaneKind `mapstructure:"kind" yaml:"kind" json:"kind"`
	Title      string   `mapstructure:"title" yaml:"title" json:"title"`
	ContentRef string   `mapstructure:"content" yaml:"content" json:"content"`
	// SessionID optionally names an existing terminal session to attach to
	// instead of spawning a command. Ignored for browser panes.
	SessionID string `mapstructure:"session_id" yaml:"session_id,omitempty" json:"session_id,omitempty"`
}
