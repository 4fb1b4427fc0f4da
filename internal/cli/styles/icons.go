// Package styles provides reusable lipgloss-based TUI components.
package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconGlobe   = "\uf0ac" // browser/web
	IconVersion = "\uf02b" // tag
	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning

	IconFolder   = "\uf07b" // folder
	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database

	// UI
	IconCursor = "\uf054" // chevron-right

	// Layout
	IconPane     = "\uf0db" // columns
	IconTerminal = "\uf120" // terminal prompt
	IconClock    = "\uf017" // clock
	IconPlay     = "\uf04b" // play (running)
	IconStop     = "\uf04d" // stop (finished)
	IconGrid     = "\uf00a" // grid
)
