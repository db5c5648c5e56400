/*
PURPOSE:
  Writes report rows to a CSV file.
  Ensures data integrity by flushing writes immediately.

REQUIREMENTS:
  User-specified:
  - CSV output consumable by the plotting scripts downstream.
  - Overwrite per run (per original Python script behavior).

  Implementation-discovered:
  - Several reports (result dumps, PAR-2, scatter, cactus) share the same
    writer mechanics and differ only in header/rows, so the writer takes
    the header and leaves row formatting to the report types.

ARCHITECTURE INTEGRATION:
  - Called by: internal/report
  - Consumes: report row types via their Row() methods

ERROR HANDLING:
  - Returns error on file creation or write failure.

IMPLEMENTATION RULES:
  - Use encoding/csv.
  - Flush() after every write (critical for crash resilience).
  - Use Mutex if concurrent writes are expected.

USAGE:
  w, err := output.NewCSVWriter("par2.csv", []string{"Solver", "PAR-2"})
  w.Write([]string{"rIC3-MAB", "812.44"})
  w.Close()

SELF-HEALING INSTRUCTIONS:
  - If a report format changes, update that report's header and Row().

RELATED FILES:
  - internal/report/par2.go
  - internal/report/compare.go

MAINTENANCE:
  - Update if downstream consumers start wanting quoting changes.
*/

package output

import (
	"encoding/csv"
	"os"
	"sync"
)

// CSVWriter handles writing rows to a CSV file.
type CSVWriter struct {
	file   *os.File
	writer *csv.Writer
	mu     sync.Mutex
}

// NewCSVWriter creates a new CSVWriter and writes the header row.
// It overwrites the file if it exists.
func NewCSVWriter(path string, header []string) (*CSVWriter, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return nil, err
	}
	w.Flush()

	return &CSVWriter{
		file:   f,
		writer: w,
	}, nil
}

// Write writes a single row to the CSV file.
// It is thread-safe.
func (cw *CSVWriter) Write(row []string) error {
	cw.mu.Lock()
	defer cw.mu.Unlock()

	if err := cw.writer.Write(row); err != nil {
		return err
	}
	cw.writer.Flush()
	return cw.writer.Error()
}

// Close closes the underlying file.
func (cw *CSVWriter) Close() error {
	cw.writer.Flush()
	return cw.file.Close()
}
