/*
PURPOSE:
  Parses the benchmark-family manifest: the text listing of every collected
  .aig file, grouped by benchmark suite/year.

REQUIREMENTS:
  User-specified:
  - Reports restrict their result tables to the families under study; the
    manifest is the authority on which benchmark belongs to which family.

  Implementation-discovered:
  - Manifest grammar: section headers like "[hwmcc20] - 317 files", entries
    are absolute .aig paths, interleaved with "Total:", "=" and "-"
    decoration lines that must be skipped.
  - The same basename may appear in several families (expected for
    re-released suites), so Paths keeps every occurrence.

ARCHITECTURE INTEGRATION:
  - Called by: internal/cli, internal/report
  - Consumed alongside: internal/logparse.Table (Restrict)

ERROR HANDLING:
  - Load fails only on an unreadable file. Unrecognized lines are skipped,
    not errors.

IMPLEMENTATION RULES:
  - Entries before any section header go into Paths but no family.

USAGE:
  m, err := manifest.Load("aig_files_list.txt")
  keep := m.Basenames("hwmcc20", "hwmcc24")

SELF-HEALING INSTRUCTIONS:
  - If the collector changes its header format, update the "[" prefix
    handling here and in its tests.

RELATED FILES:
  - internal/logparse/aggregate.go

MAINTENANCE:
  - Update when new suites are collected.
*/

package manifest

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Manifest is the parsed family listing.
type Manifest struct {
	// Families maps family name to the .aig file names it contains, in
	// manifest order.
	Families map[string][]string
	// Paths maps .aig file name to every full path it was collected from.
	Paths map[string][]string
}

// Load reads and parses a manifest file.
func Load(path string) (*Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open manifest %s: %w", path, err)
	}
	defer f.Close()

	m := &Manifest{
		Families: make(map[string][]string),
		Paths:    make(map[string][]string),
	}

	var family string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "Total:") ||
			strings.HasPrefix(line, "=") || strings.HasPrefix(line, "-") {
			continue
		}
		// Section header: "[hwmcc20] - 317 files"
		if strings.HasPrefix(line, "[") {
			if end := strings.Index(line, "]"); end > 0 {
				family = line[1:end]
			}
			continue
		}
		if !strings.HasSuffix(line, ".aig") {
			continue
		}
		base := filepath.Base(line)
		if family != "" {
			m.Families[family] = append(m.Families[family], base)
		}
		m.Paths[base] = append(m.Paths[base], line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}
	return m, nil
}

// FamilyNames returns the known families, sorted.
func (m *Manifest) FamilyNames() []string {
	names := make([]string, 0, len(m.Families))
	for name := range m.Families {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Basenames returns the benchmark names (extension stripped) belonging to
// the given families, as a set. Unknown family names contribute nothing.
func (m *Manifest) Basenames(families ...string) map[string]bool {
	keep := make(map[string]bool)
	for _, family := range families {
		for _, file := range m.Families[family] {
			keep[strings.TrimSuffix(file, ".aig")] = true
		}
	}
	return keep
}
