package termcolor

import (
	"math"

	"github.com/phyten/contrastx/internal/colorutil"
)

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

// Swatch paints a cell with rgb as its background and the better of black or
// white as its foreground, so the cell text stays readable on any color.
func Swatch(rgb colorutil.RGB, profile Profile) Style {
	text := colorutil.AutoTextColor(rgb)
	switch profile {
	case ProfileTrueColor:
		bg := [3]uint8{rgb.R, rgb.G, rgb.B}
		fg := [3]uint8{text.R, text.G, text.B}
		return Style{BGTrue: &bg, FGTrue: &fg}
	case ProfileANSI256:
		bg := rgbToANSI256(rgb.R, rgb.G, rgb.B)
		fg := rgbToANSI256(text.R, text.G, text.B)
		return Style{BG256: &bg, FG256: &fg}
	default:
		bg := rgbToBasic(rgb.R, rgb.G, rgb.B)
		fg := 0
		if text == colorutil.White {
			fg = 7
		}
		return Style{BGBasic: &bg, FGBasic: &fg}
	}
}

// RatioStyle colors a contrast ratio from red (1:1) to green (7:1 and up).
func RatioStyle(ratio float64, profile Profile) Style {
	switch profile {
	case ProfileTrueColor:
		r, g, b := gradientRGB(ratio)
		rgb := [3]uint8{r, g, b}
		return Style{FGTrue: &rgb}
	case ProfileANSI256:
		r, g, b := gradientRGB(ratio)
		idx := rgbToANSI256(r, g, b)
		return Style{FG256: &idx}
	default:
		color := levelColor(colorutil.Grade(ratio))
		return Style{FGBasic: &color}
	}
}

// LevelStyle picks a basic color per WCAG level; failures are bold.
func LevelStyle(level colorutil.Level) Style {
	color := levelColor(level)
	return Style{FGBasic: &color, Bold: level == colorutil.LevelFail}
}

func gradientRGB(ratio float64) (uint8, uint8, uint8) {
	t := (ratio - 1) / (colorutil.RatioAAA - 1)
	if t <= 0 {
		return 255, 0, 0
	}
	if t >= 1 {
		return 0, 255, 0
	}
	if t < 0.5 {
		g := uint8(math.Round(255 * t / 0.5))
		return 255, g, 0
	}
	r := uint8(math.Round(255 * (1 - (t-0.5)/0.5)))
	return r, 255, 0
}

func levelColor(level colorutil.Level) int {
	switch level {
	case colorutil.LevelAAA:
		return 2
	case colorutil.LevelAA:
		return 6
	case colorutil.LevelAALarge:
		return 3
	default:
		return 1
	}
}

func rgbToANSI256(r, g, b uint8) int {
	if r == g && g == b {
		if r < 8 {
			return 16
		}
		if r > 248 {
			return 231
		}
		return 232 + (int(r)-8)*24/247
	}
	rr := int(r) * 5 / 255
	gg := int(g) * 5 / 255
	bb := int(b) * 5 / 255
	return 16 + 36*rr + 6*gg + bb
}

// rgbToBasic maps to the nearest of the 8 ANSI colors by thresholding each
// channel at half intensity.
func rgbToBasic(r, g, b uint8) int {
	idx := 0
	if r >= 128 {
		idx |= 1
	}
	if g >= 128 {
		idx |= 2
	}
	if b >= 128 {
		idx |= 4
	}
	return idx
}
