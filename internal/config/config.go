/*
PURPOSE:
  Defines the configuration structure and loading logic for benchkit.
  Adheres to "Config IS Code" philosophy.

REQUIREMENTS:
  User-specified:
  - Allow configuration of solver sets (name -> ordered log directories),
    the manifest path, families under study, timeout and PAR-2 thresholds.

  Implementation-discovered:
  - Needs to support YAML parsing.
  - Directory order inside a solver set is semantic: the first directory
    wins for duplicated benchmarks.

ARCHITECTURE INTEGRATION:
  - Used by: internal/cli, internal/report
  - Dependencies: gopkg.in/yaml.v3 (standard for Go config)

ERROR HANDLING:
  - Returns explicit error if config file is invalid.
  - Missing config file falls back to defaults.

IMPLEMENTATION RULES:
  - Config struct tags should support yaml.
  - Defaults mirror the hwmcc20+24+25 campaign the tool was built for.

USAGE:
  cfg, err := config.Load("benchkit.yaml")

SELF-HEALING INSTRUCTIONS:
  - If new fields are needed, add to Config struct and update Load()
    defaults.

RELATED FILES:
  - internal/cli/root.go

MAINTENANCE:
  - Update the default solver sets when new campaigns are run.
*/

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SolverSet names one solver configuration and the ordered log directories
// holding its results. Earlier directories take precedence when a benchmark
// appears in more than one (primary run first, overflow/rerun after).
type SolverSet struct {
	Name string   `yaml:"name"`
	Dirs []string `yaml:"dirs"`
}

// Config represents the full configuration for benchkit.
type Config struct {
	// Parser selects the log format: "ric3" or "ic3ref".
	Parser string `yaml:"parser"`
	// Solvers are the configurations under comparison, in table order.
	// The first entry is the baseline for delta columns.
	Solvers []SolverSet `yaml:"solvers"`
	// Manifest is the .aig family listing produced by the collector.
	Manifest string `yaml:"manifest"`
	// Families restricts reports to these benchmark suites.
	Families  []string `yaml:"families"`
	OutputDir string   `yaml:"output_dir"`
	// TimeoutSeconds is the per-run wall-clock bound the campaign used.
	TimeoutSeconds float64 `yaml:"timeout_seconds"`
	// PAR2Thresholds are the ">Ns" columns of the PAR-2 table.
	PAR2Thresholds []float64 `yaml:"par2_thresholds"`
}

// DefaultConfig returns the default configuration (the hwmcc20+24+25 rIC3
// campaign layout).
func DefaultConfig() *Config {
	return &Config{
		Parser: "ric3",
		Solvers: []SolverSet{
			{Name: "rIC3-Standard", Dirs: []string{"hpc_ric3_ic3_pure", "hpc_ric3_ic3_pure_2025"}},
			{Name: "rIC3-CtgDown", Dirs: []string{"hpc_ric3_ctg_2025", "hpc_ric3_ctg"}},
			{Name: "rIC3-DynAMic", Dirs: []string{"hpc_ric3_dyn_2025", "hpc_ric3_sl_dynamic"}},
			{Name: "rIC3-DynAMic-MAB", Dirs: []string{"hpc_ric3_mab_2025", "hpc_ric3_sl_mab_6_add_context_and_reward_decay070"}},
		},
		Manifest:       "aig_files_list.txt",
		Families:       []string{"hwmcc20", "hwmcc24", "hwmcc2025"},
		OutputDir:      ".",
		TimeoutSeconds: 3600,
		PAR2Thresholds: []float64{1, 100, 200, 500, 1000},
	}
}

// IC3RefDefaults switches the default solver sets to the IC3REF campaign.
func IC3RefDefaults(cfg *Config) {
	cfg.Parser = "ic3ref"
	cfg.Solvers = []SolverSet{
		{Name: "IC3REF-Standard", Dirs: []string{"hpc_IC3REF_basic_new", "hpc_IC3REF_basic_new_2025"}},
		{Name: "IC3REF-CtgDown", Dirs: []string{"hpc_IC3REF_ctg_new_2025", "hpc_IC3REF_ctgdown"}},
		{Name: "IC3REF-MAB", Dirs: []string{"hpc_IC3REF_mab_context_po_len_and_delta", "hpc_IC3REF_mab_new_2025"}},
	}
}

// Load reads configuration from a file.
// If path is specified, it attempts to load that file.
// If path is empty, it searches for default files in order.
// If no file found, returns default config.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	var data []byte
	var err error

	if path != "" {
		data, err = os.ReadFile(path)
		if err != nil {
			return cfg, err
		}
	} else {
		// Search for defaults
		defaults := []string{"benchkit.yaml", "benchkit.conf"}
		found := false
		for _, name := range defaults {
			data, err = os.ReadFile(name)
			if err == nil {
				path = name // record which file we loaded
				found = true
				break
			}
		}
		if !found {
			// No config file found, return default
			return cfg, nil
		}
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return cfg, nil
}
