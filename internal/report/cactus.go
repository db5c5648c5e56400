package report

import (
	"sort"

	"github.com/hwmcc/benchkit/internal/logparse"
)

// CurvePoint is one step of a cactus curve: after Seconds, Solved instances
// are done.
type CurvePoint struct {
	Solved  int
	Seconds float64
}

// Cactus returns the solver's cactus curve: its solved runtimes sorted
// ascending, each paired with the cumulative solved count. Runtimes at or
// above the timeout bound are excluded (those runs were never solved).
func Cactus(table logparse.Table, keep map[string]bool, timeout float64) []CurvePoint {
	times := make([]float64, 0, len(table))
	for name := range keep {
		if rec, ok := table[name]; ok && rec.Seconds < timeout {
			times = append(times, rec.Seconds)
		}
	}
	sort.Float64s(times)

	points := make([]CurvePoint, len(times))
	for i, t := range times {
		points[i] = CurvePoint{Solved: i + 1, Seconds: t}
	}
	return points
}
