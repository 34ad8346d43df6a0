package textutil

import (
	"io"
	"strings"
)

type Align int

const (
	AlignLeft Align = iota
	AlignRight
)

// Column describes one table column. MaxWidth of zero means unbounded.
type Column struct {
	Header   string
	Align    Align
	MaxWidth int
}

// Grid lays out rows of pre-rendered cells. Cells may carry ANSI escapes;
// widths are measured on the visible text.
type Grid struct {
	Columns []Column
	Gap     string
	rows    [][]string
	widths  []int
}

func NewGrid(cols ...Column) *Grid {
	g := &Grid{Columns: cols, Gap: "  ", widths: make([]int, len(cols))}
	for i, c := range cols {
		g.widths[i] = g.clip(i, VisibleWidth(c.Header))
	}
	return g
}

func (g *Grid) clip(i, w int) int {
	if m := g.Columns[i].MaxWidth; m > 0 && w > m {
		return m
	}
	return w
}

// Append adds a row. Missing cells render empty; extra cells are ignored.
func (g *Grid) Append(cells ...string) {
	row := make([]string, len(g.Columns))
	copy(row, cells)
	for i, cell := range row {
		if m := g.Columns[i].MaxWidth; m > 0 && VisibleWidth(cell) > m {
			row[i] = TruncateByWidth(cell, m, "…")
		}
		if w := VisibleWidth(row[i]); w > g.widths[i] {
			g.widths[i] = w
		}
	}
	g.rows = append(g.rows, row)
}

// Widths returns the current column widths.
func (g *Grid) Widths() []int {
	out := make([]int, len(g.widths))
	copy(out, g.widths)
	return out
}

// Render writes the header (styled by header) followed by every row.
// Trailing spaces are trimmed from each line.
func (g *Grid) Render(w io.Writer, header func(string) string) error {
	if header == nil {
		header = func(s string) string { return s }
	}
	heads := make([]string, len(g.Columns))
	for i, c := range g.Columns {
		heads[i] = header(TruncateByWidth(c.Header, g.widths[i], "…"))
	}
	if err := g.writeLine(w, heads); err != nil {
		return err
	}
	for _, row := range g.rows {
		if err := g.writeLine(w, row); err != nil {
			return err
		}
	}
	return nil
}

func (g *Grid) writeLine(w io.Writer, cells []string) error {
	var b strings.Builder
	for i, cell := range cells {
		if i > 0 {
			b.WriteString(g.Gap)
		}
		if g.Columns[i].Align == AlignRight {
			b.WriteString(PadLeft(cell, g.widths[i]))
		} else {
			b.WriteString(PadRight(cell, g.widths[i]))
		}
	}
	line := strings.TrimRight(b.String(), " ")
	_, err := io.WriteString(w, line+"\n")
	return err
}
