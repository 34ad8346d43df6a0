package output

import (
	"io"

	"github.com/phyten/contrastx/internal/audit"
)

// WriteMarkdownTable renders items as a GitHub Flavored Markdown table.
func WriteMarkdownTable(w io.Writer, items []audit.Item, sel FieldSelection) error {
	return writeMarkdownRows(w, Headers(sel.Fields), itemRows(items, sel), rightAligned(sel))
}

func rightAligned(sel FieldSelection) []string {
	var out []string
	for _, f := range sel.Fields {
		if f.Key == "ratio" || f.Key == "index" {
			out = append(out, f.Header)
		}
	}
	return out
}
