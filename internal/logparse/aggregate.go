/*
PURPOSE:
  Builds one result table by scanning log directories and parsing every
  per-benchmark log file found.

REQUIREMENTS:
  User-specified:
  - Logs are named "<benchmark>_log.txt"; the benchmark name is the filename
    minus that suffix.
  - First directory in the list wins for duplicated benchmarks: a primary
    results directory can be merged with an overflow directory without
    overwriting authoritative data.
  - Missing directories and unreadable files are warnings, never fatal.

  Implementation-discovered:
  - An unreadable file is SKIPPED (absent from the table), which is distinct
    from a readable-but-inconclusive log (present as a timeout record).

ARCHITECTURE INTEGRATION:
  - Called by: internal/report, internal/cli
  - Uses: internal/logparse parsers, internal/output (warnings)

ERROR HANDLING:
  - Per-entry warn-and-continue. One bad log must never abort a batch over
    thousands of logs.

IMPLEMENTATION RULES:
  - Strictly sequential single pass: directory order is an observable part
    of the merge contract. If scanning is ever parallelized, the duplicate
    resolution must still apply directories in list order.

USAGE:
  table := logparse.ReadDirs([]string{"primary", "overflow"}, logparse.RIC3Parser{})

SELF-HEALING INSTRUCTIONS:
  - None.

RELATED FILES:
  - internal/logparse/parser.go
  - internal/report/runner.go

MAINTENANCE:
  - Update LogSuffix if the benchmark harness renames its outputs.
*/

package logparse

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hwmcc/benchkit/internal/output"
)

// LogSuffix identifies result logs and separates the benchmark name from the
// rest of the filename.
const LogSuffix = "_log.txt"

// Table maps benchmark name to its parsed record for one solver
// configuration. It is built once per analysis run and read-only afterwards.
type Table map[string]Record

// ReadDirs scans the directories in order, parses every *_log.txt file with
// p, and merges the results. The first directory containing a given
// benchmark provides its record; later duplicates are ignored.
func ReadDirs(dirs []string, p Parser) Table {
	table := make(Table)
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			output.Logger.Warn("Skipping log directory", "dir", dir, "error", err)
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), LogSuffix) {
				continue
			}
			name := strings.TrimSuffix(entry.Name(), LogSuffix)
			if _, seen := table[name]; seen {
				continue
			}
			rec, err := ParseFile(p, filepath.Join(dir, entry.Name()))
			if err != nil {
				output.Logger.Warn("Skipping unreadable log", "file", entry.Name(), "dir", dir, "error", err)
				continue
			}
			table[name] = rec
		}
	}
	return table
}

// Restrict returns the subset of the table whose benchmark names appear in
// keep. Reports use it to limit results to the families under study.
func (t Table) Restrict(keep map[string]bool) Table {
	out := make(Table, len(t))
	for name, rec := range t {
		if keep[name] {
			out[name] = rec
		}
	}
	return out
}

// Names returns the benchmark names in the table, sorted for deterministic
// report output.
func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
