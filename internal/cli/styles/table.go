package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	// Apply theme styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(theme.Text).
		Background(theme.SurfaceVariant).
		Bold(true)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// RunsTableColumns returns columns for the run history table.
func RunsTableColumns() []table.Column {
	return []table.Column{
		{Title: "ID", Width: 6},
		{Title: "Scenario", Width: 24},
		{Title: "Panes", Width: 6},
		{Title: "Ops", Width: 5},
		{Title: "Failed", Width: 7},
		{Title: "Started", Width: 17},
		{Title: "Took", Width: 9},
	}
}

// PlanTableColumns returns columns for the placement plan table.
func PlanTableColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 3},
		{Title: "Pane", Width: 6},
		{Title: "Docking", Width: 24},
		{Title: "Size Hint", Width: 12},
	}
}
