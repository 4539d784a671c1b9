package commands

import (
	"fmt"
	"time"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewPingCommand creates the ping command.
func NewPingCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ping",
		Short: "Verify the configured database target is reachable",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cfg.Target.Validate(); err != nil {
				return err
			}

			a, err := adapter.New(cfg.Target.ToAdapterConfig(), logger)
			if err != nil {
				return err
			}

			start := time.Now()
			if err := a.Connect(cmd.Context(), cfg.Target.ToAdapterConfig()); err != nil {
				return fmt.Errorf("target %s unreachable: %w", cfg.Target.Type, err)
			}
			defer func() { _ = a.Close() }()

			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n",
				cfg.Target.Type, time.Since(start).Round(time.Millisecond))
			return nil
		},
	}
}
