/*
PURPOSE:
  Defines the root Cobra command for the benchkit CLI.
  Handles global flags and command initialization.

REQUIREMENTS:
  User-specified:
  - Provide a CLI interface.
  - Support global flags like --config.

  Implementation-discovered:
  - Needs to expose an Execute() function for main.go.

ARCHITECTURE INTEGRATION:
  - Called by: cmd/benchkit/main.go
  - Calls: Child commands (par2, compare, stats, cactus, filter,
    list-families)

ERROR HANDLING:
  - Returns error to main.go for exit code handling.

IMPLEMENTATION RULES:
  - Use `PersistentFlags()` for flags available to all subcommands.
  - Keep Run logic in subcommands, Root is usually empty or helps.

USAGE:
  Called by main.go.

SELF-HEALING INSTRUCTIONS:
  - If adding new global flags, add them to init().

RELATED FILES:
  - cmd/benchkit/main.go

MAINTENANCE:
  - Update when adding global configuration options.
*/

package cli

import (
	"github.com/spf13/cobra"
)

var (
	// cfgFile stores the path to the config file (if specified via flag)
	cfgFile string

	rootCmd = &cobra.Command{
		Use:   "benchkit",
		Short: "Analysis toolkit for hardware model-checking benchmark logs",
		Long: `benchkit parses IC3-style solver logs (rIC3 and IC3REF families),
aggregates them into per-benchmark result tables, and produces the
comparison data behind scatter plots, cactus plots, and PAR-2 tables.
Use 'par2 --help' or 'compare --help' for the main reports.`,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./benchkit.yaml)")
}
