package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// ANSI escape sequences (CSI and OSC forms).
var ansiRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return ansiRe.ReplaceAllString(s, "")
}

// VisibleWidth returns the terminal display width of s, ignoring escapes and
// counting each grapheme cluster once.
func VisibleWidth(s string) int {
	if s == "" {
		return 0
	}
	width := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		width += runewidth.StringWidth(g.Str())
	}
	return width
}

// TruncateByWidth cuts s to at most w columns without splitting a grapheme.
// When s is cut and ellipsis fits, it replaces the tail. Escapes are dropped
// from truncated results.
func TruncateByWidth(s string, w int, ellipsis string) string {
	if s == "" || w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	limit := w
	ellW := runewidth.StringWidth(ellipsis)
	if ellW <= w {
		limit = w - ellW
	} else {
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		segW := runewidth.StringWidth(g.Str())
		if used+segW > limit {
			break
		}
		b.WriteString(g.Str())
		used += segW
	}
	return b.String() + ellipsis
}

func PadRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-VisibleWidth(s)))
}

func PadLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-VisibleWidth(s))) + s
}
