package textutil

import (
	"strings"
	"testing"
)

func TestGridAlignsColumns(t *testing.T) {
	setEastAsianWidth(t, false)
	g := NewGrid(
		Column{Header: "FG"},
		Column{Header: "RATIO", Align: AlignRight},
		Column{Header: "LEVEL"},
	)
	g.Append("black", "21.00:1", "AAA")
	g.Append("\x1b[31m#777\x1b[0m", "4.48:1", "AA Large")
	var b strings.Builder
	if err := g.Render(&b, nil); err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := "" +
		"FG       RATIO  LEVEL\n" +
		"black  21.00:1  AAA\n" +
		"\x1b[31m#777\x1b[0m    4.48:1  AA Large\n"
	if got := b.String(); got != want {
		t.Fatalf("Render mismatch\n got: %q\nwant: %q", got, want)
	}
	if w := g.Widths(); w[0] != 5 || w[1] != 7 || w[2] != 8 {
		t.Fatalf("unexpected widths %v", w)
	}
}

func TestGridTruncatesWideCells(t *testing.T) {
	setEastAsianWidth(t, false)
	g := NewGrid(Column{Header: "LABEL", MaxWidth: 6}, Column{Header: "X"})
	g.Append("navigation-link", "1")
	g.Append("short")
	var b strings.Builder
	if err := g.Render(&b, strings.ToLower); err != nil {
		t.Fatalf("Render: %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(b.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", b.String())
	}
	if lines[0] != "label   x" {
		t.Fatalf("header mismatch: %q", lines[0])
	}
	if lines[1] != "navig…  1" {
		t.Fatalf("truncated row mismatch: %q", lines[1])
	}
	if lines[2] != "short" {
		t.Fatalf("missing cells should render empty, got %q", lines[2])
	}
}
