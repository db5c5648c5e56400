/*
PURPOSE:
  Log parser for the rIC3 solver family.
  Extracts runtime, induction depth, and verdict from one log.

REQUIREMENTS:
  User-specified:
  - Verdict from the "result: safe|unsafe" token (case-insensitive).
  - Depth from the first bracketed frame array "[n0, n1, ..., nk]"; its
    element count is the induction depth (0 for "[]").
  - Runtime from the "time: <float>s" token in the statistics section, with
    the Started/Finished timestamp pair as fallback.

  Implementation-discovered:
  - A log with no frame array at all is a timeout regardless of timing
    tokens: report (3600, -1) with whatever verdict was found.
  - Timestamp fallback failure also degrades depth to -1, not just time.

ARCHITECTURE INTEGRATION:
  - Implements: logparse.Parser
  - Called by: internal/logparse/aggregate.go

ERROR HANDLING:
  - None. Every input degrades to a well-defined record.

IMPLEMENTATION RULES:
  - First match wins for the array and the time token.
  - Verdict extraction is independent of timing extraction.

USAGE:
  rec := logparse.RIC3Parser{}.Parse(content)

SELF-HEALING INSTRUCTIONS:
  - If rIC3 changes its statistics block, update timeRe and add a fixture.

RELATED FILES:
  - internal/logparse/ic3ref.go
  - internal/logparse/parser.go

MAINTENANCE:
  - Track rIC3 releases for log format drift.
*/

package logparse

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	ric3ResultRe = regexp.MustCompile(`(?i)result:\s*(\w+)`)
	ric3ArrayRe  = regexp.MustCompile(`\[[\d,\s]*\]`)
	ric3TimeRe   = regexp.MustCompile(`time:\s*([\d.]+)s`)
)

// RIC3Parser parses logs produced by rIC3 variants.
type RIC3Parser struct{}

// Name implements Parser.
func (RIC3Parser) Name() string { return "ric3" }

// Parse implements Parser.
func (RIC3Parser) Parse(content []byte) Record {
	text := string(content)

	outcome := Unknown
	if m := ric3ResultRe.FindStringSubmatch(text); m != nil {
		switch strings.ToLower(m[1]) {
		case "safe":
			outcome = Proof
		case "unsafe":
			outcome = CounterExample
		}
	}

	// The frame array is the proof-of-progress marker. No array means the
	// run never got far enough to report one: a timeout.
	array := ric3ArrayRe.FindString(text)
	if array == "" {
		return TimeoutRecord(outcome)
	}
	depth := frameCount(array)

	if m := ric3TimeRe.FindStringSubmatch(text); m != nil {
		if secs, err := strconv.ParseFloat(m[1], 64); err == nil {
			return Record{Seconds: secs, Depth: depth, Outcome: outcome}
		}
	}
	if secs, ok := stampDelta(text); ok {
		return Record{Seconds: secs, Depth: depth, Outcome: outcome}
	}
	return TimeoutRecord(outcome)
}

// frameCount counts the elements of a bracketed integer list like
// "[0, 0, 17]". An empty list has depth 0.
func frameCount(array string) int {
	inner := strings.TrimSpace(strings.Trim(array, "[]"))
	if inner == "" {
		return 0
	}
	n := 0
	for _, part := range strings.Split(inner, ",") {
		if strings.TrimSpace(part) != "" {
			n++
		}
	}
	return n
}
