package output

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Table renders aligned rows to w for terminal report output. Rows are
// printed as given; the writer only handles column alignment.
type Table struct {
	tw *tabwriter.Writer
}

// NewTable creates a table writer with the given header row.
func NewTable(w io.Writer, header ...string) *Table {
	t := &Table{tw: tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)}
	t.Row(header...)
	return t
}

// Row appends one row of cells.
func (t *Table) Row(cells ...string) {
	for i, c := range cells {
		if i > 0 {
			fmt.Fprint(t.tw, "\t")
		}
		fmt.Fprint(t.tw, c)
	}
	fmt.Fprintln(t.tw)
}

// Flush writes the accumulated rows.
func (t *Table) Flush() error {
	return t.tw.Flush()
}
