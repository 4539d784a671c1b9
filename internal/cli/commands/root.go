// Package commands implements the crudkit CLI commands.
package commands

import (
	"log/slog"
	"os"

	"github.com/leapstack-labs/crudkit/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  *slog.Logger
)

// NewRootCommand creates the root crudkit command.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "crudkit",
		Short: "Inspect and verify crudkit database targets",
		Long: `crudkit is an operational companion to the crudkit library.

It connects to the database target configured in crudkit.yaml (or via
CRUDKIT_* environment variables and flags) and provides small inspection
commands: listing available adapters, verifying connectivity, and
describing table schemas.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			return nil
		},
	}

	root.PersistentFlags().StringVar(&cfgFile, "config", "", "Path to config file (default crudkit.yaml)")
	root.PersistentFlags().Bool("verbose", false, "Enable debug logging")
	root.PersistentFlags().String("target-type", "", "Database type (sqlite, duckdb, postgres)")
	root.PersistentFlags().String("target-database", "", "Database name or file path")

	root.AddCommand(
		NewAdaptersCommand(),
		NewPingCommand(),
		NewDescribeCommand(),
	)

	return root
}
