package cli

import (
	"fmt"
	"os"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/manifest"
	"github.com/hwmcc/benchkit/internal/output"
	"github.com/spf13/cobra"
)

var listFamiliesCmd = &cobra.Command{
	Use:   "list-families",
	Short: "List benchmark families in the manifest",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reuse config loading/override logic for the manifest path so this
		// stays consistent with the report commands.
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if manifestOverride != "" {
			cfg.Manifest = manifestOverride
		}

		m, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return err
		}

		t := output.NewTable(os.Stdout, "Family", "Benchmarks")
		for _, family := range m.FamilyNames() {
			t.Row(family, fmt.Sprintf("%d", len(m.Families[family])))
		}
		return t.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listFamiliesCmd)
	listFamiliesCmd.Flags().StringVar(&manifestOverride, "manifest", "", "Path to the .aig family manifest")
}
