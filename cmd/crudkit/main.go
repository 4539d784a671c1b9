// Package main provides the crudkit CLI.
package main

import (
	"fmt"
	"os"

	"github.com/leapstack-labs/crudkit/internal/cli/commands"

	// Register built-in adapters.
	_ "github.com/leapstack-labs/crudkit/pkg/adapters/duckdb"
	_ "github.com/leapstack-labs/crudkit/pkg/adapters/postgres"
	_ "github.com/leapstack-labs/crudkit/pkg/adapters/sqlite"
)

func main() {
	if err := commands.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
