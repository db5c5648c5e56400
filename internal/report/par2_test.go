package report

import (
	"testing"

	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(seconds float64) logparse.Record {
	o := logparse.Proof
	if seconds >= logparse.TimeoutSeconds {
		o = logparse.Unknown
	}
	return logparse.Record{Seconds: seconds, Depth: 1, Outcome: o}
}

func TestPAR2(t *testing.T) {
	tests := []struct {
		name    string
		times   []float64
		timeout float64
		want    float64
	}{
		{name: "no penalties", times: []float64{10, 20, 30}, timeout: 3600, want: 20},
		{name: "all timeouts", times: []float64{3600, 3600}, timeout: 3600, want: 7200},
		{name: "mixed", times: []float64{100, 3600}, timeout: 3600, want: (100 + 7200) / 2.0},
		{name: "at the bound counts double", times: []float64{3600}, timeout: 3600, want: 7200},
		{name: "empty", times: nil, timeout: 3600, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, PAR2(tt.times, tt.timeout), 1e-9)
		})
	}
}

func TestCasesAboveThreshold(t *testing.T) {
	tables := map[string]logparse.Table{
		"fast": {"a": rec(5), "b": rec(50), "c": rec(3600)},
		"slow": {"a": rec(500), "b": rec(20)},
	}
	keep := map[string]bool{"a": true, "b": true, "c": true}

	// a qualifies via slow, c via fast's timeout; b stays below 100 on both.
	got := CasesAboveThreshold(tables, keep, 100)
	assert.Equal(t, map[string]bool{"a": true, "c": true}, got)

	// Nothing exceeds an hour-level threshold strictly.
	assert.Empty(t, CasesAboveThreshold(tables, keep, 3600))
}

func TestPAR2Table(t *testing.T) {
	tables := map[string]logparse.Table{
		"base":   {"a": rec(10), "b": rec(3600), "c": rec(200)},
		"better": {"a": rec(5), "b": rec(100), "c": rec(150)},
	}
	keep := map[string]bool{"a": true, "b": true, "c": true}

	rows := PAR2Table([]string{"base", "better"}, tables, keep, 3600, []float64{100})
	require.Len(t, rows, 2)

	assert.Equal(t, "base", rows[0].Solver)
	assert.Equal(t, 2, rows[0].Solved)
	assert.Equal(t, 0, rows[0].Delta)
	assert.InDelta(t, (10+7200+200)/3.0, rows[0].Overall, 1e-9)

	assert.Equal(t, 3, rows[1].Solved)
	assert.Equal(t, 1, rows[1].Delta, "delta is against the first solver")
	assert.InDelta(t, (5+100+150)/3.0, rows[1].Overall, 1e-9)

	// Threshold column: b (base timed out) and c (base took 200s) qualify.
	require.Len(t, rows[0].Columns, 1)
	col := rows[0].Columns[0]
	require.True(t, col.OK)
	assert.Equal(t, 2, col.Cases)
	assert.Equal(t, 1, col.Solved)
	assert.InDelta(t, (7200+200)/2.0, col.Score, 1e-9)

	col = rows[1].Columns[0]
	require.True(t, col.OK)
	assert.Equal(t, 2, col.Solved)
	assert.InDelta(t, (100+150)/2.0, col.Score, 1e-9)
}

func TestPAR2TableMissingBenchmarksDoNotContribute(t *testing.T) {
	tables := map[string]logparse.Table{
		"sparse": {"a": rec(10)},
	}
	keep := map[string]bool{"a": true, "zzz": true}

	rows := PAR2Table([]string{"sparse"}, tables, keep, 3600, nil)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Solved)
	assert.InDelta(t, 10, rows[0].Overall, 1e-9)
}
