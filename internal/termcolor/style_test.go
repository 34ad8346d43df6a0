package termcolor

import "testing"

func TestApply(t *testing.T) {
	boldRed := Style{Bold: true}
	color := 1
	boldRed.FGBasic = &color
	got := Apply(boldRed, "Hello", true)
	want := "\x1b[1;31mHello\x1b[0m"
	if got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}

	if got := Apply(Style{}, "Hello", true); got != "Hello" {
		t.Fatalf("empty style should return original text, got %q", got)
	}
	if got := Apply(boldRed, "Hello", false); got != "Hello" {
		t.Fatalf("disabled Apply should return original text, got %q", got)
	}
}

func TestApplyBackground(t *testing.T) {
	bg := [3]uint8{0, 128, 255}
	fg := 7
	got := Apply(Style{BGTrue: &bg, FGBasic: &fg}, " ", true)
	want := "\x1b[37;48;2;0;128;255m \x1b[0m"
	if got != want {
		t.Fatalf("Apply produced %q, want %q", got, want)
	}
	idx := 21
	if got := Apply(Style{BG256: &idx}, "x", true); got != "\x1b[48;5;21mx\x1b[0m" {
		t.Fatalf("256 background mismatch: %q", got)
	}
	basic := 4
	if got := Apply(Style{BGBasic: &basic}, "x", true); got != "\x1b[44mx\x1b[0m" {
		t.Fatalf("basic background mismatch: %q", got)
	}
}
