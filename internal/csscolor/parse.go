package csscolor

import (
	"encoding/hex"
	"fmt"
	"math"
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/shopspring/decimal"
	"github.com/tdewolff/parse/v2/css"

	"github.com/phyten/contrastx/internal/csserr"
	"github.com/phyten/contrastx/internal/cssnum"
)

// Functions that are valid CSS colors but live outside sRGB/HSL.
var unsupportedFunctions = map[string]struct{}{
	"hwb":        {},
	"lab":        {},
	"lch":        {},
	"oklab":      {},
	"oklch":      {},
	"color":      {},
	"color-mix":  {},
	"light-dark": {},
}

var dimensionRe = regexp.MustCompile(`^[+-]?(?:[0-9]*\.[0-9]+|[0-9]+)(?:[eE][+-]?[0-9]+)?`)

var byteMax = decimal.NewFromInt(255)

// Parse converts a CSS <color> value into normalized RGBA.
//
// Errors are *csserr.Error values: InvalidSyntax when text is not a CSS
// color, UnsupportedValue for currentcolor and for color functions outside
// sRGB/HSL.
func Parse(text string) (RGBA, error) {
	toks, err := tokenize(text)
	if err != nil {
		return RGBA{}, err
	}
	if len(toks) == 0 {
		return RGBA{}, csserr.NewInvalidSyntax("empty color")
	}

	first := toks[0]
	switch first.typ {
	case css.IdentToken:
		if len(toks) > 1 {
			return RGBA{}, trailing(toks[1])
		}
		return parseKeyword(first.data)
	case css.HashToken:
		if len(toks) > 1 {
			return RGBA{}, trailing(toks[1])
		}
		return parseHex(first.data)
	case css.FunctionToken:
		args, rest, err := functionArgs(toks)
		if err != nil {
			return RGBA{}, err
		}
		if len(rest) > 0 {
			return RGBA{}, trailing(rest[0])
		}
		name := strings.ToLower(strings.TrimSuffix(first.data, "("))
		switch name {
		case "rgb", "rgba":
			return parseRGBFunction(args)
		case "hsl", "hsla":
			return parseHSLFunction(args)
		}
		if _, ok := unsupportedFunctions[name]; ok {
			return RGBA{}, csserr.NewUnsupportedValue("format is not supported")
		}
		return RGBA{}, csserr.NewInvalidSyntax(fmt.Sprintf("unknown color function %q", name))
	default:
		return RGBA{}, csserr.NewInvalidSyntax(fmt.Sprintf("unexpected token %q", first.data))
	}
}

// MustParse is like Parse but panics on error. Intended for literals.
func MustParse(text string) RGBA {
	c, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("csscolor: %q: %v", text, err))
	}
	return c
}

func trailing(t token) error {
	return csserr.NewInvalidSyntax(fmt.Sprintf("unexpected token %q after color", t.data))
}

func parseKeyword(name string) (RGBA, error) {
	lower := strings.ToLower(name)
	if lower == "currentcolor" {
		return RGBA{}, csserr.NewUnsupportedValue("currentcolor is not supported in this context")
	}
	if c, ok := lookupNamed(lower); ok {
		return c, nil
	}
	return RGBA{}, csserr.NewInvalidSyntax(fmt.Sprintf("unknown color keyword %q", name))
}

func parseHex(data string) (RGBA, error) {
	digits := strings.TrimPrefix(data, "#")
	switch len(digits) {
	case 3, 4:
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(r)
			b.WriteRune(r)
		}
		digits = b.String()
	case 6, 8:
	default:
		return RGBA{}, csserr.NewInvalidSyntax(fmt.Sprintf("invalid hex color %q", data))
	}
	raw, err := hex.DecodeString(digits)
	if err != nil {
		return RGBA{}, csserr.NewInvalidSyntax(fmt.Sprintf("invalid hex color %q", data))
	}
	alpha := 1.0
	if len(raw) == 4 {
		alpha = float64(raw[3]) / 255
	}
	return fromBytes(raw[0], raw[1], raw[2], alpha), nil
}

func parseRGBFunction(args []token) (RGBA, error) {
	values, alphaTok, legacy, err := splitArgs(args)
	if err != nil {
		return RGBA{}, err
	}
	if legacy {
		kind := values[0].typ
		for _, v := range values[1:] {
			if v.typ != kind {
				return RGBA{}, csserr.NewInvalidSyntax("rgb() legacy syntax cannot mix numbers and percentages")
			}
		}
	}
	var channels [3]uint8
	for i, v := range values {
		c, err := rgbChannel(v, legacy)
		if err != nil {
			return RGBA{}, err
		}
		channels[i] = c
	}
	alpha, err := alphaValue(alphaTok, legacy)
	if err != nil {
		return RGBA{}, err
	}
	return fromBytes(channels[0], channels[1], channels[2], alpha), nil
}

func parseHSLFunction(args []token) (RGBA, error) {
	values, alphaTok, legacy, err := splitArgs(args)
	if err != nil {
		return RGBA{}, err
	}
	hue, err := hueValue(values[0], legacy)
	if err != nil {
		return RGBA{}, err
	}
	sat, err := hslPercentage(values[1], legacy)
	if err != nil {
		return RGBA{}, err
	}
	light, err := hslPercentage(values[2], legacy)
	if err != nil {
		return RGBA{}, err
	}
	alpha, err := alphaValue(alphaTok, legacy)
	if err != nil {
		return RGBA{}, err
	}
	c := colorful.Hsl(hue, sat, light).Clamped()
	return RGBA{R: c.R, G: c.G, B: c.B, A: alpha}, nil
}

func isNone(t token, legacy bool) bool {
	return !legacy && t.is(css.IdentToken, "none")
}

func rgbChannel(t token, legacy bool) (uint8, error) {
	if isNone(t, legacy) {
		return 0, nil
	}
	var v decimal.Decimal
	switch t.typ {
	case css.NumberToken:
		n, err := cssnum.ParseNumber(t.data)
		if err != nil {
			return 0, err
		}
		v = n
	case css.PercentageToken:
		p, err := cssnum.ParsePercentage(t.data)
		if err != nil {
			return 0, err
		}
		v = p.Mul(byteMax)
	default:
		return 0, csserr.NewInvalidSyntax(fmt.Sprintf("invalid rgb() channel %q", t.data))
	}
	return uint8(clamp(math.Round(cssnum.Float64(v)), 0, 255)), nil
}

// alphaValue resolves the optional alpha component. An omitted alpha means
// fully opaque; an explicit none means zero.
func alphaValue(t *token, legacy bool) (float64, error) {
	if t == nil {
		return 1, nil
	}
	if isNone(*t, legacy) {
		return 0, nil
	}
	switch t.typ {
	case css.NumberToken:
		n, err := cssnum.ParseNumber(t.data)
		if err != nil {
			return 0, err
		}
		return clamp(cssnum.Float64(n), 0, 1), nil
	case css.PercentageToken:
		p, err := cssnum.ParsePercentage(t.data)
		if err != nil {
			return 0, err
		}
		return clamp(cssnum.Float64(p), 0, 1), nil
	default:
		return 0, csserr.NewInvalidSyntax(fmt.Sprintf("invalid alpha value %q", t.data))
	}
}

// hueValue returns the hue in degrees normalized to [0, 360).
func hueValue(t token, legacy bool) (float64, error) {
	if isNone(t, legacy) {
		return 0, nil
	}
	var deg float64
	switch t.typ {
	case css.NumberToken:
		n, err := cssnum.ParseNumber(t.data)
		if err != nil {
			return 0, err
		}
		deg = cssnum.Float64(n)
	case css.DimensionToken:
		num := dimensionRe.FindString(t.data)
		n, err := cssnum.ParseNumber(num)
		if err != nil {
			return 0, err
		}
		v := cssnum.Float64(n)
		switch unit := strings.ToLower(t.data[len(num):]); unit {
		case "deg":
			deg = v
		case "grad":
			deg = v * 360 / 400
		case "rad":
			deg = v * 180 / math.Pi
		case "turn":
			deg = v * 360
		default:
			return 0, csserr.NewInvalidSyntax(fmt.Sprintf("invalid angle unit %q", unit))
		}
	default:
		return 0, csserr.NewInvalidSyntax(fmt.Sprintf("invalid hue %q", t.data))
	}
	if math.IsInf(deg, 0) || math.IsNaN(deg) {
		// An angle beyond float64 range has no position on the circle.
		return 0, nil
	}
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg, nil
}

// hslPercentage resolves saturation or lightness to a fraction in [0, 1].
// The modern syntax also accepts bare numbers on the 0..100 scale.
func hslPercentage(t token, legacy bool) (float64, error) {
	if isNone(t, legacy) {
		return 0, nil
	}
	switch {
	case t.typ == css.PercentageToken:
		p, err := cssnum.ParsePercentage(t.data)
		if err != nil {
			return 0, err
		}
		return clamp(cssnum.Float64(p), 0, 1), nil
	case t.typ == css.NumberToken && !legacy:
		n, err := cssnum.ParseNumber(t.data)
		if err != nil {
			return 0, err
		}
		return clamp(cssnum.Float64(n.Shift(-2)), 0, 1), nil
	default:
		return 0, csserr.NewInvalidSyntax(fmt.Sprintf("expected percentage, got %q", t.data))
	}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
