// Package cli provides the command-line interface for demoreel.
package cli

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/demoreel/demoreel/internal/config"
	"github.com/demoreel/demoreel/internal/db"
	"github.com/demoreel/demoreel/internal/domain/build"
)

// CLI holds the database connection, run store, and configuration for the CLI commands
type CLI struct {
	DB     *sql.DB
	Runs   *db.RunStore
	Config *config.Config
}

// NewCLI creates a new CLI instance with database connection and configuration
func NewCLI() (*CLI, error) {
	// Get configuration
	cfg := config.Get()

	// Use configured database path
	dbPath := cfg.Database.Path
	if dbPath == "" {
		// Fallback to default path if not configured
		var err error
		dbPath, err = config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("failed to get database path: %w", err)
		}
	}

	database, err := db.InitDB(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	return &CLI{
		DB:     database,
		Runs:   db.NewRunStore(database),
		Config: cfg,
	}, nil
}

// Close closes the database connection
func (c *CLI) Close() error {
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}

func closeCLI(c *CLI) {
	if closeErr := c.Close(); closeErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to close database: %v\n", closeErr)
	}
}

// NewRootCmd creates the root command for demoreel
func NewRootCmd(info build.Info) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "demoreel [scenario]",
		Short: "Multi-pane layout builder for scripted session recordings",
		Long: `Demoreel turns a scenario file (a grid of terminal and browser panes)
into a deterministic docking layout, ready for automated recording.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Bare scenario argument is shorthand for "run"
			if len(args) > 0 {
				return buildScenario(cmd.Context(), args[0], false)
			}
			return cmd.Help()
		},
	}

	// Version command
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Printf("demoreel %s\n", info.Version)
			fmt.Printf("commit: %s\n", info.Commit)
			fmt.Printf("built: %s (%s)\n", info.BuildDate, info.GoVersion)
			fmt.Println(build.RepoURL())
		},
	}

	// Init command
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize demoreel database and configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			cli, err := NewCLI()
			if err != nil {
				return fmt.Errorf("failed to initialize CLI: %w", err)
			}
			defer closeCLI(cli)

			fmt.Printf("demoreel %s - Initialization complete!\n", info.Version)
			fmt.Println("Database initialized at:", cli.Config.Database.Path)

			// Show XDG directories
			xdgDirs, err := config.GetXDGDirs()
			if err == nil {
				fmt.Println("Configuration directories:")
				fmt.Printf("- Config: %s\n", xdgDirs.ConfigHome)
				fmt.Printf("- Data: %s\n", xdgDirs.DataHome)
				fmt.Printf("- State: %s\n", xdgDirs.StateHome)
			}

			fmt.Println("Scenario directory:", cli.Config.Scenarios.Dir)
			return nil
		},
	}

	// Config command
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration utilities",
	}
	configCmd.AddCommand(&cobra.Command{
		Use:   "schema",
		Short: "Generate the JSON schema for the configuration file",
		RunE: func(_ *cobra.Command, _ []string) error {
			return config.GenerateSchemaFile()
		},
	})
	configCmd.AddCommand(&cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(_ *cobra.Command, _ []string) error {
			path, err := config.GetConfigFile()
			if err != nil {
				return err
			}
			fmt.Println(path)
			return nil
		},
	})

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(NewRunCmd())
	rootCmd.AddCommand(NewPlanCmd())
	rootCmd.AddCommand(NewPickCmd())
	rootCmd.AddCommand(NewRunsCmd())

	return rootCmd
}
