/*
PURPOSE:
  Parser strategy interface plus the shared timing helpers used by both
  solver-family parsers.

REQUIREMENTS:
  User-specified:
  - Two log formats (rIC3 and IC3REF) behind one contract, selected by
    configuration rather than duplicated call sites.
  - Parsing is a pure function of the text: any readable content yields a
    record, however degraded.

  Implementation-discovered:
  - Both families share the "Started at:" / "Finished at:" timestamp
    fallback, with a fixed CST timezone literal in the layout.

ARCHITECTURE INTEGRATION:
  - Implemented by: ric3.go, ic3ref.go
  - Called by: internal/logparse/aggregate.go, internal/cli

ERROR HANDLING:
  - Parse never fails. ParseFile fails only when the file cannot be read;
    that is the caller's signal to skip the benchmark entirely.

IMPLEMENTATION RULES:
  - Do not let a malformed log escape as an error. Degrade to the sentinel
    record instead.

USAGE:
  p, err := logparse.ForSolver("ric3")
  rec, err := logparse.ParseFile(p, "logs/6s0_log.txt")

SELF-HEALING INSTRUCTIONS:
  - New solver family: implement Parser, register it in ForSolver.

RELATED FILES:
  - internal/logparse/ric3.go
  - internal/logparse/ic3ref.go

MAINTENANCE:
  - Update the timestamp layout if the benchmark harness ever runs outside
    CST.
*/

package logparse

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"
)

// Parser converts the full text of one solver log into a Record. Parse is
// total: any input, including garbage or an empty file, produces a
// well-defined record.
type Parser interface {
	Parse(content []byte) Record
	// Name is the configuration key identifying this parser ("ric3",
	// "ic3ref").
	Name() string
}

// ForSolver selects the parser variant for a solver family name.
func ForSolver(kind string) (Parser, error) {
	switch strings.ToLower(kind) {
	case "ric3":
		return RIC3Parser{}, nil
	case "ic3ref":
		return IC3RefParser{}, nil
	default:
		return nil, fmt.Errorf("unknown solver family %q (want ric3 or ic3ref)", kind)
	}
}

// ParseFile reads and parses one log file. The only error condition is an
// unreadable file; inconclusive content is not an error.
func ParseFile(p Parser, path string) (Record, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Record{}, fmt.Errorf("read log %s: %w", path, err)
	}
	return p.Parse(content), nil
}

// The harness stamps logs with ctime-style lines in a fixed CST zone, e.g.
// "Tue Jun 10 04:16:20 CST 2025". CST is matched literally, not resolved.
const stampLayout = "Mon Jan 2 15:04:05 CST 2006"

var (
	startedRe  = regexp.MustCompile(`Started at:\s*(.+)`)
	finishedRe = regexp.MustCompile(`Finished at:\s*(.+)`)
)

// stampDelta recovers the runtime from the Started at / Finished at lines.
// Returns false when either line is missing, unparseable, or the delta is
// negative (clock skew or a truncated log).
func stampDelta(content string) (float64, bool) {
	sm := startedRe.FindStringSubmatch(content)
	fm := finishedRe.FindStringSubmatch(content)
	if sm == nil || fm == nil {
		return 0, false
	}
	start, err := time.Parse(stampLayout, collapseSpaces(sm[1]))
	if err != nil {
		return 0, false
	}
	finish, err := time.Parse(stampLayout, collapseSpaces(fm[1]))
	if err != nil {
		return 0, false
	}
	delta := finish.Sub(start).Seconds()
	if delta < 0 {
		return 0, false
	}
	return delta, true
}

// collapseSpaces normalizes ctime's space-padded day-of-month ("Jun  3") so
// a single layout string parses every stamp.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
