package logparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const ic3refSolvedLog = `IC3 with CTG handling
Level 1
. K:            3
Elapsed time: 10.50
Level 2
. K:            17
Elapsed time: 45.2

0
File: /benchmarks/hwmcc20/6s0.aig
Started at: Tue Jun 10 04:16:20 CST 2025
Finished at: Tue Jun 10 04:17:10 CST 2025
`

func TestIC3RefParse(t *testing.T) {
	tests := []struct {
		name string
		log  string
		want Record
	}{
		{
			name: "last elapsed time and last K win",
			log:  ic3refSolvedLog,
			want: Record{Seconds: 45.2, Depth: 17, Outcome: Proof},
		},
		{
			name: "status 1 is a counter-example",
			log:  ". K:            4\nElapsed time: 2.75\n\n1\nFile: /benchmarks/x.aig\n",
			want: Record{Seconds: 2.75, Depth: 4, Outcome: CounterExample},
		},
		{
			name: "real elapsed time but no status line is forced to timeout",
			log:  ". K:            9\nElapsed time: 120.0\n",
			want: Record{Seconds: TimeoutSeconds, Depth: 9, Outcome: Unknown},
		},
		{
			name: "status without any timing is a timeout with verdict",
			log:  "\n0\nFile: /benchmarks/x.aig\n",
			want: Record{Seconds: TimeoutSeconds, Depth: DepthUnknown, Outcome: Proof},
		},
		{
			name: "empty log",
			log:  "",
			want: Record{Seconds: TimeoutSeconds, Depth: DepthUnknown, Outcome: Unknown},
		},
		{
			name: "timestamp fallback when no elapsed line exists",
			log: ". K:            6\n\n0\nFile: /benchmarks/x.aig\n" +
				"Started at: Tue Jun 10 04:16:20 CST 2025\n" +
				"Finished at: Tue Jun 10 04:17:10 CST 2025\n",
			want: Record{Seconds: 50, Depth: 6, Outcome: Proof},
		},
		{
			name: "digit embedded in another line is not a status",
			log:  "Level 0\nElapsed time: 3.5\nFile: /benchmarks/x.aig\n",
			want: Record{Seconds: TimeoutSeconds, Depth: DepthUnknown, Outcome: Unknown},
		},
		{
			name: "status line with leading whitespace",
			log:  "Elapsed time: 7.25\n   1\nFile: /benchmarks/x.aig\n",
			want: Record{Seconds: 7.25, Depth: DepthUnknown, Outcome: CounterExample},
		},
	}

	p := IC3RefParser{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Parse([]byte(tt.log)))
		})
	}
}

func TestIC3RefParseRepeatedElapsedUsesLast(t *testing.T) {
	// An intermediate and a final report with the same value must still
	// resolve to the last occurrence.
	log := "Elapsed time: 45.2\nElapsed time: 45.2\n\n0\nFile: /x.aig\n"
	got := IC3RefParser{}.Parse([]byte(log))
	assert.Equal(t, 45.2, got.Seconds)

	log = "Elapsed time: 10.0\nElapsed time: 45.2\n\n0\nFile: /x.aig\n"
	got = IC3RefParser{}.Parse([]byte(log))
	assert.Equal(t, 45.2, got.Seconds)
}

func TestIC3RefParseIsPure(t *testing.T) {
	p := IC3RefParser{}
	assert.Equal(t, p.Parse([]byte(ic3refSolvedLog)), p.Parse([]byte(ic3refSolvedLog)))
}
