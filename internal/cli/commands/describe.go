package commands

import (
	"fmt"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewDescribeCommand creates the describe command.
func NewDescribeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <table>",
		Short: "Show column metadata for a table",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Target.Validate(); err != nil {
				return err
			}

			a, err := adapter.New(cfg.Target.ToAdapterConfig(), logger)
			if err != nil {
				return err
			}
			if err := a.Connect(cmd.Context(), cfg.Target.ToAdapterConfig()); err != nil {
				return err
			}
			defer func() { _ = a.Close() }()

			meta, err := a.DescribeTable(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s.%s (~%d rows)\n", meta.Schema, meta.Name, meta.RowCount)
			for _, col := range meta.Columns {
				nullable := "NOT NULL"
				if col.Nullable {
					nullable = "NULL"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %2d. %-24s %-16s %s\n", col.Position, col.Name, col.Type, nullable)
			}
			return nil
		},
	}
}
