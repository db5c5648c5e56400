package logparse

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForSolver(t *testing.T) {
	tests := []struct {
		kind    string
		want    string
		wantErr bool
	}{
		{kind: "ric3", want: "ric3"},
		{kind: "ic3ref", want: "ic3ref"},
		{kind: "RIC3", want: "ric3"},
		{kind: "abc", wantErr: true},
		{kind: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.kind, func(t *testing.T) {
			p, err := ForSolver(tt.kind)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Name())
		})
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := ParseFile(RIC3Parser{}, filepath.Join(t.TempDir(), "nope_log.txt"))
	assert.Error(t, err)
}

func TestParseFileReadsContent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("result: safe\n[0, 1]\ntime: 5.0s\n"), 0644))

	rec, err := ParseFile(RIC3Parser{}, path)
	require.NoError(t, err)
	assert.Equal(t, Record{Seconds: 5.0, Depth: 2, Outcome: Proof}, rec)
}

func TestStampDelta(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
		ok   bool
	}{
		{
			name: "plain delta",
			text: "Started at: Tue Jun 10 04:16:20 CST 2025\nFinished at: Tue Jun 10 05:16:20 CST 2025\n",
			want: 3600,
			ok:   true,
		},
		{
			name: "zero delta",
			text: "Started at: Tue Jun 10 04:16:20 CST 2025\nFinished at: Tue Jun 10 04:16:20 CST 2025\n",
			want: 0,
			ok:   true,
		},
		{
			name: "missing finish line",
			text: "Started at: Tue Jun 10 04:16:20 CST 2025\n",
			ok:   false,
		},
		{
			name: "negative delta rejected",
			text: "Started at: Tue Jun 10 05:00:00 CST 2025\nFinished at: Tue Jun 10 04:00:00 CST 2025\n",
			ok:   false,
		},
		{
			name: "wrong timezone literal rejected",
			text: "Started at: Tue Jun 10 04:16:20 UTC 2025\nFinished at: Tue Jun 10 04:16:25 UTC 2025\n",
			ok:   false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := stampDelta(tt.text)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "proof", Proof.String())
	assert.Equal(t, "counter-example", CounterExample.String())
	assert.Equal(t, "unknown", Unknown.String())
}
