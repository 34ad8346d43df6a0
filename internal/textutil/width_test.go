package textutil

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

// truecolor swatch as painted for "#663399" cells
const swatch = "\x1b[38;2;255;255;255;48;2;102;51;153m#663399\x1b[0m"

func TestVisibleWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name string
		s    string
		want int
	}{
		{name: "Ratio", s: "4.48:1", want: 6},
		{name: "Swatch", s: swatch, want: 7},
		{name: "Basic8Swatch", s: "\x1b[30;43mgold\x1b[0m", want: 4},
		{name: "JapaneseLabel", s: "見出し", want: 6},
		{name: "CombiningLabel", s: "cafe\u0301", want: 4},
		{name: "Empty", s: "", want: 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleWidth(tc.s); got != tc.want {
				t.Fatalf("VisibleWidth(%q) = %d, want %d", tc.s, got, tc.want)
			}
		})
	}
}

func TestTruncateByWidth(t *testing.T) {
	setEastAsianWidth(t, false)
	cases := []struct {
		name     string
		s        string
		width    int
		want     string
		ellipsis string
	}{
		{name: "Fits", s: "body text", width: 9, want: "body text", ellipsis: "…"},
		{name: "LongLabel", s: "navigation / footer links", width: 10, want: "navigatio…", ellipsis: "…"},
		{name: "JapaneseLabel", s: "本文テキストの色", width: 7, want: "本文テ…", ellipsis: "…"},
		{name: "SwatchLosesEscapes", s: swatch, width: 5, want: "#663…", ellipsis: "…"},
		{name: "EllipsisTooWide", s: "muted", width: 2, want: "mu", ellipsis: "..."},
		{name: "ZeroWidth", s: "muted", width: 0, want: "", ellipsis: "…"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := TruncateByWidth(tc.s, tc.width, tc.ellipsis)
			if got != tc.want {
				t.Fatalf("TruncateByWidth(%q, %d) = %q, want %q", tc.s, tc.width, got, tc.want)
			}
			if width := VisibleWidth(got); width > tc.width {
				t.Fatalf("result width %d exceeds limit %d", width, tc.width)
			}
		})
	}
}

func TestStripANSI(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "AA Large", want: "AA Large"},
		{in: swatch, want: "#663399"},
		{in: "\x1b[1;31mFail\x1b[0m", want: "Fail"},
		{in: "\x1b]8;;https://www.w3.org/TR/WCAG21/\x07WCAG\x1b]8;;\x07", want: "WCAG"},
	}
	for _, tc := range cases {
		if got := StripANSI(tc.in); got != tc.want {
			t.Fatalf("StripANSI(%q)=%q want %q", tc.in, got, tc.want)
		}
	}
}

func TestPadHelpers(t *testing.T) {
	setEastAsianWidth(t, false)
	if got := PadLeft("4.48:1", 8); got != "  4.48:1" {
		t.Fatalf("PadLeft ratio = %q", got)
	}
	if got := PadRight(swatch, 9); got != swatch+"  " {
		t.Fatalf("PadRight should measure the swatch without escapes: %q", got)
	}
	if got := VisibleWidth(PadRight("見出し", 8)); got != 8 {
		t.Fatalf("PadRight did not reach target width: %d", got)
	}
	if got := PadLeft("21.00:1", 3); got != "21.00:1" {
		t.Fatalf("PadLeft should never cut: %q", got)
	}
}

func setEastAsianWidth(t *testing.T, eastAsian bool) {
	t.Helper()
	runewidth.EastAsianWidth = eastAsian
	runewidth.DefaultCondition = runewidth.NewCondition()
}
