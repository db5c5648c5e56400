/*
PURPOSE:
  Defines the 'par2' subcommand.
  Renders the PAR-2 score table for the configured solver sets and writes
  the matching CSV.

REQUIREMENTS:
  User-specified:
  - Solved count, delta vs baseline, overall PAR-2, and one column per
    time threshold.
  - CSV output consumable by the paper tooling.
  - --ic3ref switches to the IC3REF campaign defaults.

  Implementation-discovered:
  - Need to load config first, then apply flag overrides.

ARCHITECTURE INTEGRATION:
  - Calls: internal/report.LoadCampaign, report.PAR2Table
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config load or campaign load fails.

IMPLEMENTATION RULES:
  - Setup flags in init().
  - Logic: Load Config -> Override -> LoadCampaign -> Report.

USAGE:
  benchkit par2 --thresholds 1,100,200,500,1000

SELF-HEALING INSTRUCTIONS:
  - Check flag names match Config struct fields generally.

RELATED FILES:
  - internal/report/par2.go

MAINTENANCE:
  - Update when adding new CLI overrides.
*/

package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/output"
	"github.com/hwmcc/benchkit/internal/report"
	"github.com/spf13/cobra"
)

var (
	useIC3Ref          bool
	manifestOverride   string
	familiesOverride   []string
	outputDirOverride  string
	thresholdsOverride []float64
	dumpResults        bool
)

var par2Cmd = &cobra.Command{
	Use:   "par2",
	Short: "PAR-2 score table for the configured solver sets",
	Long: `Parses every configured solver set's log directories, restricts the
results to the configured benchmark families, and prints the PAR-2 score
table: solved count, delta against the baseline solver, overall PAR-2, and
one PAR-2 column per time threshold (scored over the benchmarks where at
least one solver exceeded that threshold).

A CSV with the same numbers is written to the output directory.`,
	Example: `  # rIC3 campaign with defaults (uses benchkit.yaml)
  benchkit par2

  # IC3REF campaign defaults instead
  benchkit par2 --ic3ref

  # Custom thresholds, write CSVs elsewhere
  benchkit par2 --thresholds 10,500 -o ./tables

  # Also dump per-benchmark CSV/JSONL result tables
  benchkit par2 --dump-results`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Config
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		// 2. Overrides
		if useIC3Ref {
			config.IC3RefDefaults(cfg)
		}
		applyCommonOverrides(cfg)
		if len(thresholdsOverride) > 0 {
			cfg.PAR2Thresholds = thresholdsOverride
		}

		// 3. Execution
		c, err := report.LoadCampaign(cfg)
		if err != nil {
			return err
		}
		rows := report.PAR2Table(c.Order, c.Tables, c.Keep, cfg.TimeoutSeconds, cfg.PAR2Thresholds)

		printPAR2(rows)

		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
		csvPath := filepath.Join(cfg.OutputDir, "par2_scores_"+cfg.Parser+".csv")
		if err := writePAR2CSV(csvPath, rows, c, cfg); err != nil {
			return err
		}
		output.Logger.Info("Wrote PAR-2 CSV", "file", csvPath)

		if dumpResults {
			return c.DumpResults(cfg.OutputDir)
		}
		return nil
	},
}

func printPAR2(rows []report.PAR2Row) {
	header := []string{"Solver", "Solved", "Δ", "All"}
	if len(rows) > 0 {
		for _, col := range rows[0].Columns {
			header = append(header, fmt.Sprintf(">%gs", col.Threshold))
		}
	}
	t := output.NewTable(os.Stdout, header...)
	for _, row := range rows {
		delta := fmt.Sprintf("%d", row.Delta)
		if row.Delta > 0 {
			delta = "+" + delta
		}
		cells := []string{row.Solver, fmt.Sprintf("%d", row.Solved), delta, fmt.Sprintf("%.2f", row.Overall)}
		for _, col := range row.Columns {
			if col.OK {
				cells = append(cells, fmt.Sprintf("%.2f", col.Score))
			} else {
				cells = append(cells, "N/A")
			}
		}
		t.Row(cells...)
	}
	t.Flush()
}

func writePAR2CSV(path string, rows []report.PAR2Row, c *report.Campaign, cfg *config.Config) error {
	w, err := output.NewCSVWriter(path, []string{"Solver", "Threshold", "Cases", "Solved", "PAR-2"})
	if err != nil {
		return err
	}
	defer w.Close()

	for _, row := range rows {
		err := w.Write([]string{row.Solver, "All", fmt.Sprintf("%d", len(c.Keep)),
			fmt.Sprintf("%d", row.Solved), fmt.Sprintf("%.2f", row.Overall)})
		if err != nil {
			return err
		}
	}
	for i := range cfg.PAR2Thresholds {
		for _, row := range rows {
			col := row.Columns[i]
			if !col.OK {
				continue
			}
			err := w.Write([]string{row.Solver, fmt.Sprintf(">%gs", col.Threshold),
				fmt.Sprintf("%d", col.Cases), fmt.Sprintf("%d", col.Solved),
				fmt.Sprintf("%.2f", col.Score)})
			if err != nil {
				return err
			}
		}
	}
	return nil
}

// applyCommonOverrides applies the flags shared by the campaign commands.
func applyCommonOverrides(cfg *config.Config) {
	if manifestOverride != "" {
		cfg.Manifest = manifestOverride
	}
	if len(familiesOverride) > 0 {
		cfg.Families = familiesOverride
	}
	if outputDirOverride != "" {
		cfg.OutputDir = outputDirOverride
	}
}

func init() {
	rootCmd.AddCommand(par2Cmd)

	par2Cmd.Flags().BoolVar(&useIC3Ref, "ic3ref", false, "Use the IC3REF campaign defaults instead of rIC3")
	par2Cmd.Flags().StringVar(&manifestOverride, "manifest", "", "Path to the .aig family manifest")
	par2Cmd.Flags().StringSliceVar(&familiesOverride, "families", nil, "Comma-separated benchmark families to include")
	par2Cmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Output directory for CSV files")
	par2Cmd.Flags().Float64SliceVar(&thresholdsOverride, "thresholds", nil, "Comma-separated PAR-2 time thresholds in seconds")
	par2Cmd.Flags().BoolVar(&dumpResults, "dump-results", false, "Also write per-benchmark CSV/JSONL tables per solver")
}
