/*
PURPOSE:
  Per-family outcome tallies: how many safe/unsafe/unknown verdicts a solver
  configuration produced in each benchmark family.

REQUIREMENTS:
  User-specified:
  - Count proof/counter-example/unknown per family, plus solved and solve
    rate, restricted to benchmarks that actually have a log.
  - Families with no matching logs are omitted entirely.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (stats command)
  - Consumes: internal/manifest.Manifest, internal/logparse.Table

ERROR HANDLING:
  - None (pure computation).

IMPLEMENTATION RULES:
  - Total is the matched count, not the family size: reruns rarely cover a
    whole suite and an absent log says nothing about the solver.

USAGE:
  rows := report.FamilyBreakdown(m, table)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/manifest/manifest.go
  - internal/cli/stats.go

MAINTENANCE:
  - None.
*/

package report

import (
	"strings"

	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/hwmcc/benchkit/internal/manifest"
)

// FamilyStats is one family's row in the statistics table.
type FamilyStats struct {
	Family  string
	Total   int
	Safe    int
	Unsafe  int
	Unknown int
	Solved  int
}

// SolveRate returns the solved fraction, 0 for an empty family.
func (s FamilyStats) SolveRate() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Solved) / float64(s.Total)
}

// FamilyBreakdown tallies outcomes per family, in sorted family order.
// Families with no matched logs are dropped.
func FamilyBreakdown(m *manifest.Manifest, table logparse.Table) []FamilyStats {
	var rows []FamilyStats
	for _, family := range m.FamilyNames() {
		s := FamilyStats{Family: family}
		for _, file := range m.Families[family] {
			rec, ok := table[strings.TrimSuffix(file, ".aig")]
			if !ok {
				continue
			}
			s.Total++
			switch rec.Outcome {
			case logparse.Proof:
				s.Safe++
			case logparse.CounterExample:
				s.Unsafe++
			default:
				s.Unknown++
			}
		}
		if s.Total == 0 {
			continue
		}
		s.Solved = s.Safe + s.Unsafe
		rows = append(rows, s)
	}
	return rows
}

// Totals sums a breakdown into one overall row labeled "ALL".
func Totals(rows []FamilyStats) FamilyStats {
	all := FamilyStats{Family: "ALL"}
	for _, r := range rows {
		all.Total += r.Total
		all.Safe += r.Safe
		all.Unsafe += r.Unsafe
		all.Unknown += r.Unknown
		all.Solved += r.Solved
	}
	return all
}
