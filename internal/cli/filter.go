/*
PURPOSE:
  Defines the 'filter' subcommand.
  Lists benchmarks whose runtime falls inside a time window; used to pick
  interesting cases for closer inspection.

REQUIREMENTS:
  User-specified:
  - Given one directory group and a [min, max] window, print the benchmark
    names whose solved runtime lies in the window.

ARCHITECTURE INTEGRATION:
  - Calls: internal/logparse.ReadDirs

ERROR HANDLING:
  - Returns error on unknown parser; empty output for empty directories.

IMPLEMENTATION RULES:
  - Plain names on stdout, one per line, so the output pipes into the
    rerun scripts.

USAGE:
  benchkit filter hpc_ric3_dyn_2025 --min 100 --max 1000

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/logparse/aggregate.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"strings"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/spf13/cobra"
)

var (
	filterMin float64
	filterMax float64
)

var filterCmd = &cobra.Command{
	Use:   "filter DIRS",
	Short: "List benchmarks with runtime inside a time window",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if parserOverride != "" {
			cfg.Parser = parserOverride
		}
		parser, err := logparse.ForSolver(cfg.Parser)
		if err != nil {
			return err
		}

		table := logparse.ReadDirs(strings.Split(args[0], ","), parser)
		for _, name := range table.Names() {
			rec := table[name]
			if rec.Seconds >= filterMin && rec.Seconds <= filterMax && rec.Seconds < cfg.TimeoutSeconds {
				fmt.Println(name)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(filterCmd)

	filterCmd.Flags().StringVar(&parserOverride, "parser", "", "Log format: ric3 or ic3ref")
	filterCmd.Flags().Float64Var(&filterMin, "min", 100, "Window lower bound in seconds")
	filterCmd.Flags().Float64Var(&filterMax, "max", 1000, "Window upper bound in seconds")
}
