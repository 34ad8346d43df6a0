package output

import (
	"io"

	"github.com/phyten/contrastx/internal/audit"
)

// WriteTSV renders a header line and one tab separated line per item.
// Tabs and newlines inside values become spaces.
func WriteTSV(w io.Writer, items []audit.Item, sel FieldSelection) error {
	return writeTSVRows(w, Headers(sel.Fields), itemRows(items, sel))
}
