package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/demoreel/demoreel/internal/cli/styles"
	"github.com/demoreel/demoreel/internal/logging"
	"github.com/demoreel/demoreel/internal/renderer"
	"github.com/demoreel/demoreel/internal/session"
	"github.com/demoreel/demoreel/internal/workspace"
)

// NewRunCmd creates the run command.
func NewRunCmd() *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "run <scenario>",
		Short: "Build a scenario layout and record the run",
		Long: `Loads the scenario file, plans pane placement from its grid, docks every
pane into the workspace, and records the run in the history database.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildScenario(cmd.Context(), args[0], watch)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Rebuild whenever the scenario file changes")
	return cmd
}

// buildScenario wires the full stack and builds the scenario at path.
func buildScenario(ctx context.Context, path string, watch bool) error {
	cli, err := NewCLI()
	if err != nil {
		return fmt.Errorf("failed to initialize CLI: %w", err)
	}
	defer closeCLI(cli)

	logCfg := logging.ConfigFromEnv()
	logger := logging.New(logCfg)
	if cli.Config.Logging.EnableFileLog && cli.Config.Logging.LogDir != "" {
		fileLogger, closer, logErr := logging.NewWithFile(logCfg, cli.Config.Logging.LogDir)
		if logErr != nil {
			logger.Warn().Err(logErr).Msg("file logging disabled")
		} else {
			logger = fileLogger
			defer func() { _ = closer.Close() }()
		}
	}

	runID := logging.GenerateRunID()
	ctx = logging.WithContext(ctx, logger)
	ctx = logging.WithRunID(ctx, logging.ShortRunID(runID))
	ctx = logging.WithComponent(ctx, "build")
	logger = *logging.FromContext(ctx)

	dock := workspace.NewDock(cli.Config.Viewport.Width, cli.Config.Viewport.Height, logger)
	registry := renderer.NewRegistry(logger)
	composer := session.NewComposer(dock, registry, logger)

	svc := session.NewService(cli.Config, composer, cli.Runs, logger)
	if err := svc.Initialize(); err != nil {
		return err
	}
	defer func() { _ = svc.Cleanup() }()

	if watch {
		return svc.Watch(ctx, path)
	}

	run, err := svc.Run(ctx, path)
	if err != nil {
		return err
	}

	theme := styles.NewTheme()
	status := theme.SuccessStyle.Render(styles.IconCheck + " built")
	if run.FailedPanes > 0 {
		status = theme.WarningStyle.Render(fmt.Sprintf("%s built with %d failed pane(s)", styles.IconWarning, run.FailedPanes))
	}
	fmt.Printf("%s %s\n", theme.Title.Render(run.Scenario), status)
	fmt.Printf("  panes: %d  ops: %d  took: %s\n", run.PaneCount, run.OpCount, run.Duration().Round(time.Millisecond))
	fmt.Printf("  fingerprint: %s\n", theme.Subtle.Render(run.Fingerprint[:16]))
	return nil
}
