package termcolor

import (
	"testing"

	"github.com/phyten/contrastx/internal/colorutil"
)

func TestHeaderStyle(t *testing.T) {
	s := HeaderStyle()
	if !s.Bold || !s.Underline {
		t.Fatalf("header style should enable bold+underline: %+v", s)
	}
}

func TestSwatchKeepsTextReadable(t *testing.T) {
	navy := colorutil.RGB{R: 0, G: 0, B: 128}
	s := Swatch(navy, ProfileTrueColor)
	if s.BGTrue == nil || *s.BGTrue != [3]uint8{0, 0, 128} {
		t.Fatalf("truecolor swatch background mismatch: %+v", s)
	}
	if s.FGTrue == nil || *s.FGTrue != [3]uint8{255, 255, 255} {
		t.Fatalf("navy swatch should use white text: %+v", s)
	}

	yellow := colorutil.RGB{R: 255, G: 255}
	s = Swatch(yellow, ProfileANSI256)
	if s.BG256 == nil || *s.BG256 != rgbToANSI256(255, 255, 0) {
		t.Fatalf("256 swatch background mismatch: %+v", s)
	}
	if s.FG256 == nil || *s.FG256 != 16 {
		t.Fatalf("yellow swatch should use black text: %+v", s)
	}

	s = Swatch(yellow, ProfileBasic8)
	if s.BGBasic == nil || *s.BGBasic != 3 || s.FGBasic == nil || *s.FGBasic != 0 {
		t.Fatalf("basic swatch mismatch: %+v", s)
	}
	s = Swatch(navy, ProfileBasic8)
	if s.BGBasic == nil || *s.BGBasic != 4 || s.FGBasic == nil || *s.FGBasic != 7 {
		t.Fatalf("basic navy swatch mismatch: %+v", s)
	}
}

func TestRatioStyleBasicLevels(t *testing.T) {
	tests := []struct {
		ratio float64
		want  int
	}{
		{1, 1},
		{2.9, 1},
		{3, 3},
		{4.5, 6},
		{7, 2},
		{21, 2},
	}
	for _, tc := range tests {
		style := RatioStyle(tc.ratio, ProfileBasic8)
		if style.FGBasic == nil {
			t.Fatalf("ratio %v missing basic color", tc.ratio)
		}
		if *style.FGBasic != tc.want {
			t.Fatalf("ratio %v expected color %d, got %d", tc.ratio, tc.want, *style.FGBasic)
		}
	}
}

func TestRatioStyleGradient(t *testing.T) {
	style := RatioStyle(1, ProfileANSI256)
	if style.FG256 == nil || *style.FG256 != rgbToANSI256(255, 0, 0) {
		t.Fatalf("ratio 1 should map to red in 256 palette, got %+v", style)
	}
	style = RatioStyle(21, ProfileTrueColor)
	if style.FGTrue == nil {
		t.Fatalf("true color style missing value")
	}
	if rgb := *style.FGTrue; rgb != [3]uint8{0, 255, 0} {
		t.Fatalf("ratio 21 should be green, got %v", rgb)
	}
	style = RatioStyle(4, ProfileTrueColor)
	if rgb := *style.FGTrue; rgb != [3]uint8{255, 255, 0} {
		t.Fatalf("ratio 4 should sit at the yellow midpoint, got %v", rgb)
	}
}

func TestLevelStyle(t *testing.T) {
	fail := LevelStyle(colorutil.LevelFail)
	if !fail.Bold || fail.FGBasic == nil || *fail.FGBasic != 1 {
		t.Fatalf("fail style mismatch: %+v", fail)
	}
	aaa := LevelStyle(colorutil.LevelAAA)
	if aaa.Bold || aaa.FGBasic == nil || *aaa.FGBasic != 2 {
		t.Fatalf("AAA style mismatch: %+v", aaa)
	}
}
