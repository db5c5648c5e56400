/*
PURPOSE:
  Defines the normalized result record produced by parsing one solver log.
  Shared by the parsers, the aggregator, and every report.

REQUIREMENTS:
  User-specified:
  - Record elapsed seconds, induction depth (K), and the result type.
  - Sentinels: 3600s for "no genuine measurement", -1 for unknown depth.

  Implementation-discovered:
  - Timing and outcome are extracted independently, so a record may carry a
    real elapsed time with an unknown outcome, or the timeout sentinel with a
    genuine outcome.

ARCHITECTURE INTEGRATION:
  - Used by: internal/logparse parsers, internal/report, internal/output
  - Shared across boundaries.

ERROR HANDLING:
  - None (pure data structs).

IMPLEMENTATION RULES:
  - Keep structs simple and public.
  - Sentinel values are data, not errors: downstream consumers must treat
    (3600, -1, Unknown) as "inconclusive", never as a measurement.

USAGE:
  rec := logparse.Record{Seconds: 12.3, Depth: 7, Outcome: logparse.Proof}

SELF-HEALING INSTRUCTIONS:
  - If new per-run metrics are needed, add a field and update the CSV/JSON
    writers in internal/output.

RELATED FILES:
  - internal/logparse/ric3.go
  - internal/logparse/ic3ref.go
  - internal/output/csv.go

MAINTENANCE:
  - Update when the solvers start reporting new statistics worth keeping.
*/

package logparse

// TimeoutSeconds is the wall-clock bound the benchmark runs were launched
// with. It doubles as the sentinel elapsed time for any run whose log yields
// no genuine measurement.
const TimeoutSeconds = 3600.0

// DepthUnknown is the sentinel induction depth for logs that never report a
// frame sequence.
const DepthUnknown = -1

// Outcome classifies what the solver concluded about the property.
type Outcome int

const (
	// Unknown covers timeouts, crashes, and any log with no recognizable
	// verdict.
	Unknown Outcome = iota
	// Proof means the property holds (solver printed "safe" / status 0).
	Proof
	// CounterExample means the property is violated ("unsafe" / status 1).
	CounterExample
)

// String returns the label used in tables and CSV output. The labels match
// the ones the downstream reporting conventions expect.
func (o Outcome) String() string {
	switch o {
	case Proof:
		return "proof"
	case CounterExample:
		return "counter-example"
	default:
		return "unknown"
	}
}

// Record is the normalized outcome of running one solver on one benchmark.
type Record struct {
	// Seconds is the wall-clock runtime, or TimeoutSeconds when no genuine
	// measurement could be recovered.
	Seconds float64
	// Depth is the length of the solver's frame/level sequence at
	// termination (the induction depth), or DepthUnknown.
	Depth int
	// Outcome is the solver's verdict.
	Outcome Outcome
}

// TimeoutRecord returns the fully degraded record for the given outcome.
// Outcome is kept because verdict and timing are extracted independently: a
// run may log "safe" yet leave no usable timing information.
func TimeoutRecord(o Outcome) Record {
	return Record{Seconds: TimeoutSeconds, Depth: DepthUnknown, Outcome: o}
}
