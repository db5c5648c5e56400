/*
PURPOSE:
  Defines the 'compare' subcommand.
  Head-to-head comparison of two solver log directories (or directory
  groups), producing the scatter-plot data CSV and a win/loss summary.

REQUIREMENTS:
  User-specified:
  - Compare exactly two solvers over the benchmarks both attempted.
  - Emit per-benchmark (time1, time2, verdict) rows for the scatter plots.
  - Surface verdict disagreements loudly.

  Implementation-discovered:
  - Each side may be a comma-separated directory group; the first directory
    wins for duplicated benchmarks, same as everywhere else.

ARCHITECTURE INTEGRATION:
  - Calls: internal/logparse.ReadDirs, internal/report.Compare
  - Uses: internal/config, internal/manifest, internal/output

ERROR HANDLING:
  - Returns error on unusable config/manifest; zero common benchmarks is an
    error too (nothing to compare means wrong directories).

IMPLEMENTATION RULES:
  - Positional args are the two directory groups; analysis knobs are flags.

USAGE:
  benchkit compare hpc_ric3_dyn_2025 hpc_ric3_mab_2025 --families hwmcc20

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/report/compare.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/hwmcc/benchkit/internal/manifest"
	"github.com/hwmcc/benchkit/internal/output"
	"github.com/hwmcc/benchkit/internal/report"
	"github.com/spf13/cobra"
)

var parserOverride string

var compareCmd = &cobra.Command{
	Use:   "compare DIRS1 DIRS2",
	Short: "Head-to-head comparison of two solver configurations",
	Long: `Parses two solver log directory groups (each argument may be a
comma-separated list merged first-directory-wins), pairs up the benchmarks
both solvers attempted, and prints a win/loss summary. The per-benchmark
time pairs are written as a CSV for the scatter-plot tooling.`,
	Example: `  # Two single directories, rIC3 format
  benchkit compare hpc_ric3_dyn_2025 hpc_ric3_mab_2025

  # Directory groups with overflow runs, IC3REF format
  benchkit compare hpc_IC3REF_basic_new,hpc_IC3REF_basic_new_2025 hpc_IC3REF_ctgdown --parser ic3ref`,
	Args: cobra.ExactArgs(2),
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
		keep := m.Basenames(cfg.Families...)

		dirs1 := strings.Split(args[0], ",")
		dirs2 := strings.Split(args[1], ",")
		name1 := normalizeSolverName(dirs1[0])
		name2 := normalizeSolverName(dirs2[0])

		table1 := logparse.ReadDirs(dirs1, parser)
		table2 := logparse.ReadDirs(dirs2, parser)
		output.Logger.Info("Parsed solver logs", "solver", name1, "results", len(table1))
		output.Logger.Info("Parsed solver logs", "solver", name2, "results", len(table2))

		h := report.Compare(table1, table2, keep, cfg.TimeoutSeconds)
		if len(h.Pairs) == 0 {
			return fmt.Errorf("no common benchmarks between %s and %s for families %v",
				args[0], args[1], cfg.Families)
		}

		printHeadToHead(h, name1, name2)

		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
		csvPath := filepath.Join(cfg.OutputDir, fmt.Sprintf("scatter_%s_vs_%s.csv", name1, name2))
		if err := writeScatterCSV(csvPath, h, name1, name2); err != nil {
			return err
		}
		output.Logger.Info("Wrote scatter CSV", "file", csvPath, "points", len(h.Pairs))
		return nil
	},
}

func printHeadToHead(h report.HeadToHead, name1, name2 string) {
	t := output.NewTable(os.Stdout, "", name1, name2)
	t.Row("Faster", fmt.Sprintf("%d", h.AWins), fmt.Sprintf("%d", h.BWins))
	t.Row("Solved alone", fmt.Sprintf("%d", h.OnlyA), fmt.Sprintf("%d", h.OnlyB))
	t.Flush()

	fmt.Printf("\nCommon benchmarks: %d (both solved %d, neither %d, equal time %d)\n",
		len(h.Pairs), h.BothSolved, h.Neither, h.Ties)

	if len(h.Disagreements) > 0 {
		output.Logger.Error("Verdict disagreements detected", "count", len(h.Disagreements), "benchmarks", h.Disagreements)
	}
}

func writeScatterCSV(path string, h report.HeadToHead, name1, name2 string) error {
	w, err := output.NewCSVWriter(path, []string{"Benchmark", name1 + " (s)", name2 + " (s)", "Result"})
	if err != nil {
		return err
	}
	defer w.Close()

	for _, p := range h.Pairs {
		err := w.Write([]string{p.Benchmark,
			fmt.Sprintf("%.2f", p.A.Seconds),
			fmt.Sprintf("%.2f", p.B.Seconds),
			p.Combined.String()})
		if err != nil {
			return err
		}
	}
	return nil
}

// normalizeSolverName shortens raw HPC directory names for labels, e.g.
// "hpc_ric3_dyn_2025" -> "ric3-dyn-2025".
func normalizeSolverName(dir string) string {
	name := strings.TrimPrefix(filepath.Base(filepath.Clean(dir)), "hpc_")
	return strings.ReplaceAll(name, "_", "-")
}

func init() {
	rootCmd.AddCommand(compareCmd)

	compareCmd.Flags().StringVar(&parserOverride, "parser", "", "Log format: ric3 or ic3ref")
	compareCmd.Flags().StringVar(&manifestOverride, "manifest", "", "Path to the .aig family manifest")
	compareCmd.Flags().StringSliceVar(&familiesOverride, "families", nil, "Comma-separated benchmark families to include")
	compareCmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Output directory for CSV files")
}
