/*
PURPOSE:
  Log parser for the IC3REF solver family.
  Extracts runtime, induction depth, and verdict from one log.

REQUIREMENTS:
  User-specified:
  - Runtime from "Elapsed time: <float>" lines; the LAST occurrence wins
    (intermediate reports precede the final one). Timestamp pair fallback.
  - Depth from ". K: <int>" statistics lines; again last occurrence wins.
  - Verdict from a lone 0/1 digit on its own line immediately before the
    trailing "File:" line (0 = safe, 1 = unsafe).

  Implementation-discovered:
  - Normalization override: when no elapsed time was recovered OR the
    verdict is unknown, the elapsed time is forced to the 3600 sentinel even
    if a real "Elapsed time:" value was present. Aggregate statistics read
    "no definitive answer" as "timed out". The parsed K survives the
    override.

ARCHITECTURE INTEGRATION:
  - Implements: logparse.Parser
  - Called by: internal/logparse/aggregate.go

ERROR HANDLING:
  - None. Every input degrades to a well-defined record.

IMPLEMENTATION RULES:
  - Preserve the override exactly; it is observed behavior the reports
    depend on, not a bug to fix here.

USAGE:
  rec := logparse.IC3RefParser{}.Parse(content)

SELF-HEALING INSTRUCTIONS:
  - If IC3REF's final status block changes, update statusRe and add a
    fixture.

RELATED FILES:
  - internal/logparse/ric3.go
  - internal/logparse/parser.go

MAINTENANCE:
  - Revisit the override if the harness ever records exit reasons directly.
*/

package logparse

import (
	"regexp"
	"strconv"
)

var (
	elapsedRe = regexp.MustCompile(`Elapsed time:\s*([\d.]+)`)
	depthRe   = regexp.MustCompile(`\.\s+K:\s+(\d+)`)
	statusRe  = regexp.MustCompile(`\n\s*([01])\s*\nFile:`)
)

// IC3RefParser parses logs produced by IC3REF variants.
type IC3RefParser struct{}

// Name implements Parser.
func (IC3RefParser) Name() string { return "ic3ref" }

// Parse implements Parser.
func (IC3RefParser) Parse(content []byte) Record {
	text := string(content)

	// Timestamps are consulted only when no "Elapsed time:" line exists at
	// all; a present-but-garbled value counts as missing timing.
	var seconds float64
	var haveTime bool
	if ms := elapsedRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		if secs, err := strconv.ParseFloat(ms[len(ms)-1][1], 64); err == nil {
			seconds, haveTime = secs, true
		}
	} else if secs, ok := stampDelta(text); ok {
		seconds, haveTime = secs, true
	}

	depth := DepthUnknown
	if ms := depthRe.FindAllStringSubmatch(text, -1); len(ms) > 0 {
		if k, err := strconv.Atoi(ms[len(ms)-1][1]); err == nil {
			depth = k
		}
	}

	outcome := Unknown
	if m := statusRe.FindStringSubmatch(text); m != nil {
		if m[1] == "0" {
			outcome = Proof
		} else {
			outcome = CounterExample
		}
	}

	// Normalization: no timing, or no verdict, reads as a timeout. K is
	// deliberately left as parsed so "reached K before timing out" remains
	// visible in the statistics.
	if !haveTime || outcome == Unknown {
		seconds = TimeoutSeconds
	}
	return Record{Seconds: seconds, Depth: depth, Outcome: outcome}
}
