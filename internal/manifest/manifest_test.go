package manifest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `Collected .aig files
====================

[hwmcc08] - 3 files
--------------------
/data/hwmcc08/139442p0.aig
/data/hwmcc08/6s0.aig
/data/hwmcc08/6s1.aig

[hwmcc20] - 2 files
--------------------
/data/hwmcc20/6s0.aig
/data/hwmcc20/vis_arrays_am2901.aig

Total: 5 files
`

func loadSample(t *testing.T) *Manifest {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aig_files_list.txt")
	require.NoError(t, os.WriteFile(path, []byte(sampleManifest), 0644))
	m, err := Load(path)
	require.NoError(t, err)
	return m
}

func TestLoadFamilies(t *testing.T) {
	m := loadSample(t)

	assert.Equal(t, []string{"hwmcc08", "hwmcc20"}, m.FamilyNames())
	assert.Equal(t, []string{"139442p0.aig", "6s0.aig", "6s1.aig"}, m.Families["hwmcc08"])
	assert.Equal(t, []string{"6s0.aig", "vis_arrays_am2901.aig"}, m.Families["hwmcc20"])
}

func TestLoadDuplicateBasenamesKeepEveryPath(t *testing.T) {
	m := loadSample(t)

	// 6s0.aig was re-released in hwmcc20; both paths must survive.
	assert.Equal(t, []string{"/data/hwmcc08/6s0.aig", "/data/hwmcc20/6s0.aig"}, m.Paths["6s0.aig"])
}

func TestBasenames(t *testing.T) {
	m := loadSample(t)

	tests := []struct {
		name     string
		families []string
		want     map[string]bool
	}{
		{
			name:     "single family",
			families: []string{"hwmcc20"},
			want:     map[string]bool{"6s0": true, "vis_arrays_am2901": true},
		},
		{
			name:     "union deduplicates shared benchmarks",
			families: []string{"hwmcc08", "hwmcc20"},
			want: map[string]bool{
				"139442p0": true, "6s0": true, "6s1": true, "vis_arrays_am2901": true,
			},
		},
		{
			name:     "unknown family contributes nothing",
			families: []string{"hwmcc99"},
			want:     map[string]bool{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, m.Basenames(tt.families...))
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

func TestLoadIgnoresEntriesBeforeAnyHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.txt")
	require.NoError(t, os.WriteFile(path, []byte("/stray/early.aig\n[fam] - 1 files\n/data/a.aig\n"), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"fam"}, m.FamilyNames())
	assert.Equal(t, []string{"a.aig"}, m.Families["fam"])
	// The stray path is still indexed by basename.
	assert.Contains(t, m.Paths, "early.aig")
}
