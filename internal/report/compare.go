/*
PURPOSE:
  Head-to-head comparison of two solver configurations over their common
  benchmarks. Produces the scatter-plot data rows and the win/loss summary.

REQUIREMENTS:
  User-specified:
  - Pair up benchmarks present in BOTH tables (restricted to the families
    under study); benchmarks seen by only one solver are not comparable.
  - Each pair carries a combined verdict for scatter coloring: if exactly
    one side is unknown, the other side's verdict is used; if both know,
    the first solver's verdict is used (they should agree); otherwise
    unknown.

  Implementation-discovered:
  - Verdict disagreements (one says proof, the other counter-example) are
    worth surfacing explicitly; they indicate a solver or harness bug.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli (compare command)
  - Consumes: internal/logparse.Table

ERROR HANDLING:
  - None (pure computation).

IMPLEMENTATION RULES:
  - Wins are decided on runtime alone; the parsers already normalized every
    inconclusive run to the timeout sentinel.

USAGE:
  h := report.Compare(tableA, tableB, keep)

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/cli/compare.go

MAINTENANCE:
  - None.
*/

package report

import (
	"sort"

	"github.com/hwmcc/benchkit/internal/logparse"
)

// Pair is one benchmark solved (or attempted) by both solvers.
type Pair struct {
	Benchmark string
	A, B      logparse.Record
	// Combined is the verdict used for scatter coloring (see package docs).
	Combined logparse.Outcome
}

// HeadToHead summarizes a two-solver comparison.
type HeadToHead struct {
	Pairs []Pair

	// Runtime wins over common benchmarks (strictly faster side).
	AWins, BWins, Ties int
	// Solved-status breakdown at the timeout bound.
	BothSolved, OnlyA, OnlyB, Neither int
	// Disagreements lists benchmarks where both solvers produced verdicts
	// and the verdicts differ.
	Disagreements []string
}

// Compare pairs the common benchmarks of a and b, restricted to keep, and
// tallies the summary. Pairs come back sorted by benchmark name.
func Compare(a, b logparse.Table, keep map[string]bool, timeout float64) HeadToHead {
	var h HeadToHead
	for name := range keep {
		ra, okA := a[name]
		rb, okB := b[name]
		if !okA || !okB {
			continue
		}
		h.Pairs = append(h.Pairs, Pair{
			Benchmark: name,
			A:         ra,
			B:         rb,
			Combined:  combinedOutcome(ra.Outcome, rb.Outcome),
		})

		switch {
		case ra.Seconds < rb.Seconds:
			h.AWins++
		case rb.Seconds < ra.Seconds:
			h.BWins++
		default:
			h.Ties++
		}

		solvedA, solvedB := ra.Seconds < timeout, rb.Seconds < timeout
		switch {
		case solvedA && solvedB:
			h.BothSolved++
		case solvedA:
			h.OnlyA++
		case solvedB:
			h.OnlyB++
		default:
			h.Neither++
		}

		if ra.Outcome != logparse.Unknown && rb.Outcome != logparse.Unknown &&
			ra.Outcome != rb.Outcome {
			h.Disagreements = append(h.Disagreements, name)
		}
	}
	sort.Slice(h.Pairs, func(i, j int) bool { return h.Pairs[i].Benchmark < h.Pairs[j].Benchmark })
	sort.Strings(h.Disagreements)
	return h
}

func combinedOutcome(a, b logparse.Outcome) logparse.Outcome {
	switch {
	case a == logparse.Unknown && b != logparse.Unknown:
		return b
	case b == logparse.Unknown && a != logparse.Unknown:
		return a
	default:
		return a
	}
}
