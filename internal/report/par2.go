/*
PURPOSE:
  PAR-2 scoring over aggregated result tables.
  Produces the solved/delta/score rows behind the PAR-2 table and CSV.

REQUIREMENTS:
  User-specified:
  - PAR-2 = average runtime with unsolved instances counted as twice the
    timeout bound.
  - Threshold columns (">1s", ">100s", ...) score only the benchmarks where
    at least one solver exceeded the threshold.
  - Delta column: solved-count difference against the first (baseline)
    solver set.

  Implementation-discovered:
  - "Solved" for PAR-2 purposes is runtime below the timeout bound; the
    parsers already normalize every inconclusive run to the sentinel.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (par2 command), internal/report/runner.go
  - Consumes: internal/logparse.Table

ERROR HANDLING:
  - None. A threshold with no qualifying cases yields a row with OK=false
    (rendered "N/A").

IMPLEMENTATION RULES:
  - Benchmarks absent from a solver's table simply do not contribute to its
    scores; they are not imputed.

USAGE:
  rows := report.PAR2Table(order, tables, keep, 3600, []float64{1, 100})

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/report/runner.go
  - internal/cli/par2.go

MAINTENANCE:
  - Update if the campaign moves to PAR-10 style scoring.
*/

package report

import (
	"github.com/hwmcc/benchkit/internal/logparse"
)

// PAR2 computes the penalized-average-runtime-2 score: runtimes at or above
// the timeout count double. Returns 0 for an empty slice.
func PAR2(times []float64, timeout float64) float64 {
	if len(times) == 0 {
		return 0
	}
	var sum float64
	for _, t := range times {
		if t >= timeout {
			sum += 2 * timeout
		} else {
			sum += t
		}
	}
	return sum / float64(len(times))
}

// ThresholdScore is one ">Ns" cell of the PAR-2 table.
type ThresholdScore struct {
	Threshold float64
	// Cases is how many benchmarks qualified (any solver slower than the
	// threshold).
	Cases  int
	Solved int
	Score  float64
	// OK is false when no qualifying case had a result for this solver.
	OK bool
}

// PAR2Row is one solver's line in the PAR-2 table.
type PAR2Row struct {
	Solver  string
	Solved  int
	Delta   int
	Overall float64
	Columns []ThresholdScore
}

// CasesAboveThreshold returns the benchmarks (restricted to keep) where at
// least one solver took more than threshold seconds. These are the "hard"
// cases the threshold columns focus on.
func CasesAboveThreshold(tables map[string]logparse.Table, keep map[string]bool, threshold float64) map[string]bool {
	cases := make(map[string]bool)
	for name := range keep {
		for _, table := range tables {
			if rec, ok := table[name]; ok && rec.Seconds > threshold {
				cases[name] = true
				break
			}
		}
	}
	return cases
}

// PAR2Table builds one row per solver, in the given order. The first solver
// is the baseline for the Delta column.
func PAR2Table(order []string, tables map[string]logparse.Table, keep map[string]bool,
	timeout float64, thresholds []float64) []PAR2Row {

	rows := make([]PAR2Row, 0, len(order))
	for _, solver := range order {
		table := tables[solver]
		times := timesOf(table, keep)

		row := PAR2Row{
			Solver:  solver,
			Solved:  solvedCount(times, timeout),
			Overall: PAR2(times, timeout),
		}
		for _, threshold := range thresholds {
			cases := CasesAboveThreshold(tables, keep, threshold)
			caseTimes := timesOf(table, cases)
			col := ThresholdScore{Threshold: threshold, Cases: len(cases)}
			if len(caseTimes) > 0 {
				col.Solved = solvedCount(caseTimes, timeout)
				col.Score = PAR2(caseTimes, timeout)
				col.OK = true
			}
			row.Columns = append(row.Columns, col)
		}
		rows = append(rows, row)
	}

	if len(rows) > 0 {
		baseline := rows[0].Solved
		for i := range rows {
			rows[i].Delta = rows[i].Solved - baseline
		}
	}
	return rows
}

func timesOf(table logparse.Table, keep map[string]bool) []float64 {
	times := make([]float64, 0, len(keep))
	for name := range keep {
		if rec, ok := table[name]; ok {
			times = append(times, rec.Seconds)
		}
	}
	return times
}

func solvedCount(times []float64, timeout float64) int {
	n := 0
	for _, t := range times {
		if t < timeout {
			n++
		}
	}
	return n
}
