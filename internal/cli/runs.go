package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/spf13/cobra"

	"github.com/demoreel/demoreel/internal/cli/styles"
	"github.com/demoreel/demoreel/internal/domain/entity"
)

// NewRunsCmd creates the run history command.
func NewRunsCmd() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "runs [scenario]",
		Short: "List recorded runs, newest first",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}
			defer closeCLI(cli)

			var runs []entity.Run
			if len(args) > 0 {
				runs, err = cli.Runs.RunsForScenario(cmd.Context(), args[0], limit)
			} else {
				runs, err = cli.Runs.RecentRuns(cmd.Context(), limit)
			}
			if err != nil {
				return err
			}

			theme := styles.NewTheme()
			if len(runs) == 0 {
				fmt.Println(theme.Subtle.Render("No recorded runs."))
				return nil
			}

			rows := make([]table.Row, 0, len(runs))
			for _, run := range runs {
				rows = append(rows, table.Row{
					strconv.FormatInt(run.ID, 10),
					run.Scenario,
					strconv.Itoa(run.PaneCount),
					strconv.Itoa(run.OpCount),
					strconv.Itoa(run.FailedPanes),
					run.StartedAt.Local().Format("2006-01-02 15:04"),
					run.Duration().Round(time.Millisecond).String(),
				})
			}

			t := styles.NewStyledTable(theme, styles.RunsTableColumns(), rows, 84, len(rows)+1)
			fmt.Println(t.View())
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 20, "Maximum number of runs to list")
	return cmd
}
