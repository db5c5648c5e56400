package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSVWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")

	w, err := NewCSVWriter(path, []string{"Benchmark", "Seconds"})
	require.NoError(t, err)
	require.NoError(t, w.Write([]string{"6s0", "4.50"}))
	require.NoError(t, w.Write([]string{"has,comma", "1.00"}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Benchmark,Seconds\n6s0,4.50\n\"has,comma\",1.00\n", string(data))
}

func TestJSONWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.jsonl")

	w, err := NewJSONWriter(path)
	require.NoError(t, err)
	require.NoError(t, w.Write(map[string]int{"solved": 3}))
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"solved":3}`, string(data))
}
