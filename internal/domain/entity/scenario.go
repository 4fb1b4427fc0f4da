package entity

// Viewport is the pixel size of the recording surface.
type Viewport struct {
	Width  int `mapstructure:"width" yaml:"width" json:"width"`
	Height int `mapstructure:"height" yaml:"height" json:"height"`
}

// Scenario is the atomic grid configuration a session delivers to the layout
// engine: the pane list, the optional grid matrix arranging them, the
// viewport, and the base URL of the terminal multiplexing service.
//
// When Grid is nil the engine synthesizes a single-row layout with all panes
// side by side.
type Scenario struct {
	Name            string     `mapstructure:"name" yaml:"name" json:"name"`
	Panes           []PaneSpec `mapstructure:"panes" yaml:"panes" json:"panes"`
	Grid            [][]int    `mapstructure:"grid" yaml:"grid,omitempty" json:"grid,omitempty"`
	Viewport        Viewport   `mapstructure:"viewport" yaml:"viewport" json:"viewport"`
	TerminalBaseURL string     `mapstructure:"terminal_base_url" yaml:"terminal_base_url,omitempty" json:"terminal_base_url,omitempty"`
}

// PaneCount returns the number of panes declared by the scenario.
func (s *Scenario) PaneCount() int {
	return len(s.Panes)
}

// Pane returns the spec for the given index, or nil if out of range.
// The grid may legitimately reference indices that no longer exist after a
// config edit; callers treat a nil result as "skip".
func (s *Scenario) Pane(index int) *PaneSpec {
	if index < 0 || index >= len(s.Panes) {
		return nil
	}
	return &s.Panes[index]
}
