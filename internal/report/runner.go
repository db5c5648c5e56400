/*
PURPOSE:
  High-level runner that loads one analysis campaign: the manifest, the
  configured solver sets, and their aggregated result tables.

REQUIREMENTS:
  User-specified:
  - Parse each solver set's log directories (first directory wins), restrict
    to the configured families, report progress.
  - Dump per-benchmark results to CSV/JSONL for downstream tooling.

  Implementation-discovered:
  - Needs to report parse counts to the CLI so sparse directories are
    noticed early.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli
  - Uses: internal/logparse, internal/manifest, internal/output

ERROR HANDLING:
  - Fatal only on unusable configuration (unknown parser, unreadable
    manifest). Everything below (missing dirs, bad logs) is warn-and-continue
    inside the aggregator.

IMPLEMENTATION RULES:
  - Iterate solver sets in config order; Order preserves it for baseline
    deltas and table layout.

USAGE:
  c, err := report.LoadCampaign(cfg)
  rows := report.PAR2Table(c.Order, c.Tables, c.Keep, ...)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/logparse/aggregate.go
  - internal/cli/par2.go

MAINTENANCE:
  - Update if campaigns grow enough to want parallel directory scans (the
    first-wins merge must then be re-applied sequentially).
*/

package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hwmcc/benchkit/internal/config"
	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/hwmcc/benchkit/internal/manifest"
	"github.com/hwmcc/benchkit/internal/output"
)

// Campaign is one fully loaded analysis run: every configured solver set's
// result table, restricted to the families under study.
type Campaign struct {
	Config *config.Config
	// Keep is the benchmark-name set of the configured families.
	Keep map[string]bool
	// Order lists solver names in config order (first is the baseline).
	Order []string
	// Tables maps solver name to its restricted result table.
	Tables map[string]logparse.Table
}

// LoadCampaign parses every configured solver set.
func LoadCampaign(cfg *config.Config) (*Campaign, error) {
	parser, err := logparse.ForSolver(cfg.Parser)
	if err != nil {
		return nil, err
	}

	m, err := manifest.Load(cfg.Manifest)
	if err != nil {
		return nil, fmt.Errorf("load manifest: %w", err)
	}
	keep := m.Basenames(cfg.Families...)
	output.Logger.Info("Loaded manifest", "families", cfg.Families, "benchmarks", len(keep))

	c := &Campaign{
		Config: cfg,
		Keep:   keep,
		Tables: make(map[string]logparse.Table, len(cfg.Solvers)),
	}
	for _, set := range cfg.Solvers {
		output.Logger.Info("Parsing solver logs", "solver", set.Name, "dirs", set.Dirs)
		table := logparse.ReadDirs(set.Dirs, parser).Restrict(keep)
		output.Logger.Info("Parsed solver logs", "solver", set.Name, "results", len(table))
		c.Order = append(c.Order, set.Name)
		c.Tables[set.Name] = table
	}
	return c, nil
}

// ResultRow is one per-benchmark line of the result dumps.
type ResultRow struct {
	Benchmark string  `json:"benchmark"`
	Seconds   float64 `json:"seconds"`
	Depth     int     `json:"depth"`
	Outcome   string  `json:"outcome"`
}

// resultHeader matches ResultRow's CSV columns.
var resultHeader = []string{"Benchmark", "Seconds", "Depth", "Outcome"}

func (r ResultRow) row() []string {
	return []string{
		r.Benchmark,
		fmt.Sprintf("%.2f", r.Seconds),
		fmt.Sprintf("%d", r.Depth),
		r.Outcome,
	}
}

// DumpResults writes each solver's table as results_<solver>.csv and
// results_<solver>.jsonl under dir. Per-solver failures are logged and do
// not abort the remaining dumps.
func (c *Campaign) DumpResults(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}

	for _, solver := range c.Order {
		base := filepath.Join(dir, "results_"+fileSafe(solver))
		if err := dumpTable(c.Tables[solver], base); err != nil {
			output.Logger.Error("Failed to dump results", "solver", solver, "error", err)
			continue
		}
		output.Logger.Info("Dumped results", "solver", solver, "file", base+".csv")
	}
	return nil
}

func dumpTable(table logparse.Table, base string) error {
	cw, err := output.NewCSVWriter(base+".csv", resultHeader)
	if err != nil {
		return err
	}
	defer cw.Close()

	jw, err := output.NewJSONWriter(base + ".jsonl")
	if err != nil {
		return err
	}
	defer jw.Close()

	for _, name := range table.Names() {
		rec := table[name]
		row := ResultRow{
			Benchmark: name,
			Seconds:   rec.Seconds,
			Depth:     rec.Depth,
			Outcome:   rec.Outcome.String(),
		}
		if err := cw.Write(row.row()); err != nil {
			return err
		}
		if err := jw.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// fileSafe turns a solver display name into a filename fragment.
func fileSafe(name string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, name)
}
