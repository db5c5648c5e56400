/*
PURPOSE:
  Defines the 'stats' subcommand.
  Per-family safe/unsafe/unknown statistics for one or more solver
  directory groups.

REQUIREMENTS:
  User-specified:
  - For each solver: one table row per family with outcome counts, solved
    count, and solve rate, plus an ALL summary row.
  - Families with no matching logs are omitted.

ARCHITECTURE INTEGRATION:
  - Calls: internal/report.FamilyBreakdown
  - Uses: internal/logparse, internal/manifest

ERROR HANDLING:
  - Returns error on unusable parser/manifest; empty directories produce
    empty tables, not errors.

IMPLEMENTATION RULES:
  - Positional args are directory groups, one per solver.

USAGE:
  benchkit stats hpc_ric3_dyn_2025 hpc_ric3_mab_2025

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/report/stats.go

MAINTENANCE:
  - None.
*/

package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/hwmcc/benchkit/internal/manifest"
	"github.com/hwmcc/benchkit/internal/output"
	"github.com/hwmcc/benchkit/internal/report"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats DIRS...",
	Short: "Per-family outcome statistics for solver directory groups",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		applyCommonOverrides(cfg)
		if parserOverride != "" {
			cfg.Parser = parserOverride
		}

		parser, err := logparse.ForSolver(cfg.Parser)
		if err != nil {
			return err
		}
		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return fmt.Errorf("load manifest: %w", err)
		}

		for i, arg := range args {
			dirs := strings.Split(arg, ",")
			name := normalizeSolverName(dirs[0])
			table := logparse.ReadDirs(dirs, parser)
			output.Logger.Info("Parsed solver logs", "solver", name, "results", len(table))

			rows := report.FamilyBreakdown(m, table)

			if i > 0 {
				fmt.Println()
			}
			fmt.Printf("%s:\n", name)
			t := output.NewTable(os.Stdout, "Family", "Total", "Safe", "Unsafe", "Unknown", "Solved", "Solve%")
			for _, r := range append(rows, report.Totals(rows)) {
				t.Row(r.Family,
					fmt.Sprintf("%d", r.Total),
					fmt.Sprintf("%d", r.Safe),
					fmt.Sprintf("%d", r.Unsafe),
					fmt.Sprintf("%d", r.Unknown),
					fmt.Sprintf("%d", r.Solved),
					fmt.Sprintf("%.1f%%", r.SolveRate()*100))
			}
			t.Flush()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&parserOverride, "parser", "", "Log format: ric3 or ic3ref")
	statsCmd.Flags().StringVar(&manifestOverride, "manifest", "", "Path to the .aig family manifest")
}
