package report

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hwmcc/benchkit/internal/logparse"
	"github.com/hwmcc/benchkit/internal/manifest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleManifest(t *testing.T) *manifest.Manifest {
	t.Helper()
	content := "[hwmcc08] - 2 files\n/d/one.aig\n/d/two.aig\n" +
		"[hwmcc20] - 2 files\n/d/three.aig\n/d/four.aig\n" +
		"[empty] - 1 files\n/d/unrun.aig\n"
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	m, err := manifest.Load(path)
	require.NoError(t, err)
	return m
}

func TestFamilyBreakdown(t *testing.T) {
	m := sampleManifest(t)
	table := logparse.Table{
		"one":   {Seconds: 5, Depth: 2, Outcome: logparse.Proof},
		"two":   {Seconds: 3600, Depth: -1, Outcome: logparse.Unknown},
		"three": {Seconds: 12, Depth: 4, Outcome: logparse.CounterExample},
		// four has no log; empty family has no logs at all.
	}

	rows := FamilyBreakdown(m, table)
	require.Len(t, rows, 2, "families with no matched logs are omitted")

	assert.Equal(t, FamilyStats{Family: "hwmcc08", Total: 2, Safe: 1, Unsafe: 0, Unknown: 1, Solved: 1}, rows[0])
	assert.Equal(t, FamilyStats{Family: "hwmcc20", Total: 1, Safe: 0, Unsafe: 1, Unknown: 0, Solved: 1}, rows[1])
}

func TestSolveRate(t *testing.T) {
	assert.Equal(t, 0.5, FamilyStats{Total: 4, Solved: 2}.SolveRate())
	assert.Equal(t, 0.0, FamilyStats{}.SolveRate())
}

func TestTotals(t *testing.T) {
	rows := []FamilyStats{
		{Family: "a", Total: 2, Safe: 1, Unknown: 1, Solved: 1},
		{Family: "b", Total: 3, Safe: 1, Unsafe: 1, Unknown: 1, Solved: 2},
	}
	all := Totals(rows)
	assert.Equal(t, FamilyStats{Family: "ALL", Total: 5, Safe: 2, Unsafe: 1, Unknown: 2, Solved: 3}, all)
}
