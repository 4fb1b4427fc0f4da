package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/demoreel/demoreel/internal/cli/styles"
	"github.com/demoreel/demoreel/internal/config"
	"github.com/demoreel/demoreel/internal/domain/entity"
	"github.com/demoreel/demoreel/internal/layout"
	"github.com/demoreel/demoreel/internal/workspace"
)

// planOp is the JSON shape of one placement op.
type planOp struct {
	Pane      int    `json:"pane"`
	Reference int    `json:"reference"`
	Direction string `json:"direction,omitempty"`
	Width     int    `json:"width,omitempty"`
	Height    int    `json:"height,omitempty"`
}

// NewPlanCmd creates the plan command.
func NewPlanCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "plan <scenario>",
		Short: "Show the placement plan for a scenario without building it",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return showPlan(args[0], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the plan as JSON")
	return cmd
}

func showPlan(path string, asJSON bool) error {
	cfg := config.Get()
	scenario, err := config.LoadScenario(path, cfg)
	if err != nil {
		return err
	}

	grid := scenario.Grid
	if len(grid) == 0 {
		grid = layout.DefaultGrid(scenario.PaneCount())
	}
	model := layout.BuildGridModel(grid, scenario.PaneCount())
	ops := layout.Plan(model, scenario.Viewport.Width, scenario.Viewport.Height)

	if asJSON {
		out := make([]planOp, 0, len(ops))
		for _, op := range ops {
			p := planOp{Pane: op.Pane, Reference: op.Reference, Direction: string(op.Direction)}
			if op.IsRoot() {
				p.Direction = ""
			}
			if op.Size != nil {
				p.Width = op.Size.Width
				p.Height = op.Size.Height
			}
			out = append(out, p)
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	theme := styles.NewTheme()
	fmt.Println(theme.Title.Render(fmt.Sprintf("%s %s", styles.IconGrid, scenario.Name)))
	fmt.Println(theme.Subtle.Render(fmt.Sprintf("  viewport %dx%d, %d pane(s), %d op(s)",
		scenario.Viewport.Width, scenario.Viewport.Height, scenario.PaneCount(), len(ops))))
	fmt.Println()

	rows := make([]table.Row, 0, len(ops))
	for i, op := range ops {
		docking := "root"
		if !op.IsRoot() {
			docking = fmt.Sprintf("%s of pane %d", op.Direction, op.Reference)
		}
		size := "-"
		if op.Size != nil {
			switch {
			case op.Size.Width > 0:
				size = fmt.Sprintf("w=%d", op.Size.Width)
			case op.Size.Height > 0:
				size = fmt.Sprintf("h=%d", op.Size.Height)
			}
		}
		rows = append(rows, table.Row{strconv.Itoa(i + 1), strconv.Itoa(op.Pane), docking, size})
	}

	t := styles.NewStyledTable(theme, styles.PlanTableColumns(), rows, 52, len(rows)+1)
	fmt.Println(t.View())

	if preview := renderPreview(theme, scenario.Viewport, ops); preview != "" {
		fmt.Println()
		fmt.Println(preview)
	}
	return nil
}

// renderPreview sketches the planned geometry: the ops are replayed against a
// throwaway dock and each resulting slot is scaled onto a character canvas.
func renderPreview(theme *styles.Theme, viewport entity.Viewport, ops []layout.PlacementOp) string {
	const cols, rows = 64, 16

	dock := workspace.NewDock(viewport.Width, viewport.Height, zerolog.Nop())
	for _, op := range ops {
		spec := workspace.PanelSpec{ID: strconv.Itoa(op.Pane)}
		if !op.IsRoot() {
			spec.Position = &workspace.Position{
				RelativeTo: strconv.Itoa(op.Reference),
				Direction:  op.Direction,
			}
		}
		handle, err := dock.AddPanel(spec)
		if err != nil {
			return ""
		}
		if op.Size != nil {
			_ = handle.SetSize(workspace.Size{Width: op.Size.Width, Height: op.Size.Height})
		}
	}

	canvas := make([][]rune, rows)
	for y := range canvas {
		canvas[y] = make([]rune, cols)
		for x := range canvas[y] {
			canvas[y][x] = ' '
		}
	}

	for _, p := range dock.Panels() {
		b := p.Bounds()
		x0 := b.X * cols / viewport.Width
		y0 := b.Y * rows / viewport.Height
		x1 := (b.X+b.Width)*cols/viewport.Width - 1
		y1 := (b.Y+b.Height)*rows/viewport.Height - 1
		if x1 <= x0 || y1 <= y0 {
			continue
		}

		for x := x0; x <= x1; x++ {
			canvas[y0][x] = '─'
			canvas[y1][x] = '─'
		}
		for y := y0; y <= y1; y++ {
			canvas[y][x0] = '│'
			canvas[y][x1] = '│'
		}
		canvas[y0][x0], canvas[y0][x1] = '┌', '┐'
		canvas[y1][x0], canvas[y1][x1] = '└', '┘'

		label := []rune("pane " + p.ID())
		ly := (y0 + y1) / 2
		lx := x0 + (x1-x0+1-len(label))/2
		if lx > x0 && lx+len(label) <= x1 {
			copy(canvas[ly][lx:], label)
		}
	}

	lines := make([]string, rows)
	for y, row := range canvas {
		lines[y] = string(row)
	}
	return theme.Box.Render(theme.Subtle.Render(strings.Join(lines, "\n")))
}
