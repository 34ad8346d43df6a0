// Package csscolor parses CSS color values (keywords, hex, rgb(), hsl())
// into normalized RGBA.
package csscolor

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/cssnum"
)

// RGBA holds channels and alpha as fractions in [0, 1].
type RGBA struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
	A float64 `json:"a"`
}

// FromRGB lifts an opaque 8-bit color.
func FromRGB(rgb colorutil.RGB) RGBA {
	return fromBytes(rgb.R, rgb.G, rgb.B, 1)
}

func fromBytes(r, g, b uint8, alpha float64) RGBA {
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: alpha,
	}
}

func toByte(v float64) uint8 {
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

// RGB8 rounds the color channels to 8 bits, dropping alpha.
func (c RGBA) RGB8() colorutil.RGB {
	return colorutil.RGB{R: toByte(c.R), G: toByte(c.G), B: toByte(c.B)}
}

func (c RGBA) Opaque() bool {
	return c.A >= 1
}

// Hex renders #rrggbb, or #rrggbbaa for translucent colors.
func (c RGBA) Hex() string {
	rgb := c.RGB8()
	if c.Opaque() {
		return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", rgb.R, rgb.G, rgb.B, toByte(c.A))
}

// String serializes c in the modern rgb() notation, e.g. "rgb(255 0 0 / 50%)".
func (c RGBA) String() string {
	rgb := c.RGB8()
	if c.Opaque() {
		return fmt.Sprintf("rgb(%d %d %d)", rgb.R, rgb.G, rgb.B)
	}
	return fmt.Sprintf("rgb(%d %d %d / %s)", rgb.R, rgb.G, rgb.B, cssnum.FormatPercentage(decimal.NewFromFloat(c.A)))
}

// ParseRGB parses text and returns its 8-bit RGB channels for contrast work.
func ParseRGB(text string) (colorutil.RGB, error) {
	c, err := Parse(text)
	if err != nil {
		return colorutil.RGB{}, err
	}
	return c.RGB8(), nil
}
