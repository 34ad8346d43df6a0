package output

import (
	"encoding/json"
	"io"

	"github.com/phyten/contrastx/internal/audit"
)

// WriteNDJSON streams items as newline-delimited JSON objects.
func WriteNDJSON(w io.Writer, items []audit.Item) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	for _, it := range items {
		if err := enc.Encode(it); err != nil {
			return err
		}
	}
	return nil
}

// WriteJSON writes the whole result as one indented document.
func WriteJSON(w io.Writer, res *audit.Result) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
