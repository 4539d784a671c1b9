package commands

import (
	"fmt"

	"github.com/leapstack-labs/crudkit/pkg/adapter"
	"github.com/spf13/cobra"
)

// NewAdaptersCommand creates the adapters command.
func NewAdaptersCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "adapters",
		Short: "List registered adapter types",
		RunE: func(cmd *cobra.Command, _ []string) error {
			names := adapter.ListAdapters()
			fmt.Fprintf(cmd.OutOrStdout(), "Adapters (%d):\n", len(names))
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", name)
			}
			return nil
		},
	}
}
