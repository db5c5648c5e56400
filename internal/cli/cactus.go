/*
PURPOSE:
  Defines the 'cactus' subcommand.
  Writes each configured solver set's cactus curve (instances solved vs
  time) as CSV for the plotting tooling.

REQUIREMENTS:
  User-specified:
  - One curve per solver set: solved runtimes sorted ascending with the
    cumulative solved count.
  - Optional minimum time to cut the uninteresting left edge of the curve.

ARCHITECTURE INTEGRATION:
  - Calls: internal/report.LoadCampaign, report.Cactus
  - Uses: internal/config, internal/output

ERROR HANDLING:
  - Returns error if config or campaign load fails.

IMPLEMENTATION RULES:
  - Logic: Load Config -> Override -> LoadCampaign -> per-solver CSV.

USAGE:
  benchkit cactus --min-time 1 -o ./curves

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/report/cactus.go

MAINTENANCE:
  - None.
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

var minTime float64

var cactusCmd = &cobra.Command{
	Use:   "cactus",
	Short: "Cactus-curve CSVs for the configured solver sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if useIC3Ref {
			config.IC3RefDefaults(cfg)
		}
		applyCommonOverrides(cfg)

		c, err := report.LoadCampaign(cfg)
		if err != nil {
			return err
		}

		if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutputDir, err)
		}
		for _, solver := range c.Order {
			points := report.Cactus(c.Tables[solver], c.Keep, cfg.TimeoutSeconds)
			csvPath := filepath.Join(cfg.OutputDir, "cactus_"+solver+".csv")
			if err := writeCactusCSV(csvPath, points); err != nil {
				return err
			}
			output.Logger.Info("Wrote cactus CSV", "solver", solver, "file", csvPath, "points", len(points))
		}
		return nil
	},
}

func writeCactusCSV(path string, points []report.CurvePoint) error {
	w, err := output.NewCSVWriter(path, []string{"Solved", "Seconds"})
	if err != nil {
		return err
	}
	defer w.Close()

	for _, p := range points {
		if p.Seconds < minTime {
			continue
		}
		err := w.Write([]string{fmt.Sprintf("%d", p.Solved), fmt.Sprintf("%.2f", p.Seconds)})
		if err != nil {
			return err
		}
	}
	return nil
}

func init() {
	rootCmd.AddCommand(cactusCmd)

	cactusCmd.Flags().BoolVar(&useIC3Ref, "ic3ref", false, "Use the IC3REF campaign defaults instead of rIC3")
	cactusCmd.Flags().StringVar(&manifestOverride, "manifest", "", "Path to the .aig family manifest")
	cactusCmd.Flags().StringSliceVar(&familiesOverride, "families", nil, "Comma-separated benchmark families to include")
	cactusCmd.Flags().StringVarP(&outputDirOverride, "output-dir", "o", "", "Output directory for CSV files")
	cactusCmd.Flags().Float64Var(&minTime, "min-time", 0, "Drop curve points below this many seconds")
}
