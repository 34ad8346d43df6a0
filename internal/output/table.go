package output

import (
	"io"

	"github.com/phyten/contrastx/internal/audit"
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/textutil"
)

// TableOptions controls terminal rendering.
type TableOptions struct {
	Color      bool
	Profile    termcolor.Profile
	LabelWidth int
}

// WriteTable renders items as an aligned table. With Color set, color cells
// are painted as swatches and ratios follow a red to green gradient.
func WriteTable(w io.Writer, items []audit.Item, sel FieldSelection, opts TableOptions) error {
	right := rightAligned(sel)
	cols := make([]textutil.Column, len(sel.Fields))
	for i, f := range sel.Fields {
		cols[i] = textutil.Column{Header: f.Header}
		if contains(right, f.Header) {
			cols[i].Align = textutil.AlignRight
		}
		if f.Key == "label" {
			cols[i].MaxWidth = opts.LabelWidth
		}
	}
	grid := textutil.NewGrid(cols...)
	for _, it := range items {
		row := RowValues(it, sel.Fields)
		if opts.Color {
			for i, f := range sel.Fields {
				row[i] = paintCell(it, f.Key, row[i], opts.Profile)
			}
		}
		grid.Append(row...)
	}
	return grid.Render(w, func(s string) string {
		return termcolor.Apply(termcolor.HeaderStyle(), s, opts.Color)
	})
}

// PaintSwatch renders text on rgb when color is enabled.
func PaintSwatch(rgb colorutil.RGB, text string, profile termcolor.Profile, color bool) string {
	return termcolor.Apply(termcolor.Swatch(rgb, profile), text, color)
}

// PaintRatio renders a formatted ratio with its gradient color.
func PaintRatio(ratio float64, profile termcolor.Profile, color bool) string {
	return termcolor.Apply(termcolor.RatioStyle(ratio, profile), FormatRatio(ratio), color)
}

func paintCell(it audit.Item, key, value string, profile termcolor.Profile) string {
	switch key {
	case "fg", "fg_hex":
		return PaintSwatch(it.FG, value, profile, true)
	case "bg", "bg_hex":
		return PaintSwatch(it.BG, value, profile, true)
	case "ratio":
		return PaintRatio(it.Ratio, profile, true)
	case "level":
		return termcolor.Apply(termcolor.LevelStyle(colorutil.Grade(it.Ratio)), value, true)
	case "pass":
		if it.Pass {
			return value
		}
		return termcolor.Apply(termcolor.LevelStyle(colorutil.LevelFail), value, true)
	default:
		return value
	}
}
