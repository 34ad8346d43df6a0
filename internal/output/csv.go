package output

import (
	"io"

	"github.com/phyten/contrastx/internal/audit"
)

// WriteCSV renders items as RFC 4180 compliant CSV (including CRLF endings).
func WriteCSV(w io.Writer, items []audit.Item, sel FieldSelection) error {
	return writeCSVRows(w, Headers(sel.Fields), itemRows(items, sel))
}

func itemRows(items []audit.Item, sel FieldSelection) [][]string {
	rows := make([][]string, len(items))
	for i, it := range items {
		rows[i] = RowValues(it, sel.Fields)
	}
	return rows
}
