package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/demoreel/demoreel/internal/cli/styles"
	"github.com/demoreel/demoreel/internal/config"
)

// NewPickCmd creates the interactive scenario picker command.
func NewPickCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick",
		Short: "Pick a scenario interactively and build it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.Get()
			paths, err := config.ListScenarios(cfg.Scenarios.Dir)
			if err != nil {
				return err
			}
			if len(paths) == 0 {
				return fmt.Errorf("no scenarios found in %s", cfg.Scenarios.Dir)
			}

			model := newPickerModel(paths)
			program := tea.NewProgram(model)
			final, err := program.Run()
			if err != nil {
				return fmt.Errorf("picker failed: %w", err)
			}

			picked := final.(pickerModel).picked
			if picked == "" {
				return nil // cancelled
			}
			return buildScenario(cmd.Context(), picked, false)
		},
	}
}

// pickerModel is the Bubble Tea model for the scenario picker.
type pickerModel struct {
	help  help.Model
	keys  pickerKeyMap
	theme *styles.Theme

	paths       []string
	selectedIdx int
	picked      string
}

// pickerKeyMap defines keybindings for the picker.
type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k pickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k pickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Select, k.Quit}}
}

func defaultPickerKeyMap() pickerKeyMap {
	return pickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "build"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newPickerModel(paths []string) pickerModel {
	return pickerModel{
		help:  help.New(),
		keys:  defaultPickerKeyMap(),
		theme: styles.NewTheme(),
		paths: paths,
	}
}

// Init implements tea.Model.
func (m pickerModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			if m.selectedIdx > 0 {
				m.selectedIdx--
			}
			return m, nil

		case key.Matches(msg, m.keys.Down):
			if m.selectedIdx < len(m.paths)-1 {
				m.selectedIdx++
			}
			return m, nil

		case key.Matches(msg, m.keys.Select):
			m.picked = m.paths[m.selectedIdx]
			return m, tea.Quit
		}
	}

	return m, nil
}

// View implements tea.Model.
func (m pickerModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(t.Title.Render(styles.IconGrid + " Scenarios"))
	b.WriteString("\n\n")

	for i, path := range m.paths {
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		if i == m.selectedIdx {
			b.WriteString(t.Highlight.Render(styles.IconCursor + " " + name))
		} else {
			b.WriteString(t.ListItem.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*pickerModel)(nil)
