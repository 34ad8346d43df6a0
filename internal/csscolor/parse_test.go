package csscolor

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/csserr"
)

func approxEqual(a, b RGBA) bool {
	const eps = 1e-6
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func TestParseValidColors(t *testing.T) {
	red := RGBA{R: 1, A: 1}
	cases := []struct {
		in   string
		want RGBA
	}{
		{"rgb(255, 0, 0)", red},
		{"rgba(255, 0, 0, 1)", red},
		{"RGB(255,0,0)", red},
		{"rgb(100%, 0%, 0%)", red},
		{"rgb(255 0 0)", red},
		{"rgb(255 0 0 / 100%)", red},
		{"rgb(300, -20, 0)", red},
		{"rgb(255 none 0)", red},
		{"  rgb( 255 , 0 , 0 )  ", red},
		{"rgb(255 0 0 / 0.5)", RGBA{R: 1, A: 0.5}},
		{"rgba(255, 0, 0, 50%)", RGBA{R: 1, A: 0.5}},
		{"rgba(0, 0, 0, 2)", RGBA{A: 1}},
		{"hsl(0, 100%, 50%)", red},
		{"hsla(0, 100%, 50%, 1)", red},
		{"hsl(360 100% 50%)", red},
		{"hsl(120deg 100% 50%)", RGBA{G: 1, A: 1}},
		{"hsl(0.5turn 100% 50%)", RGBA{G: 1, B: 1, A: 1}},
		{"hsl(240 100 50)", RGBA{B: 1, A: 1}},
		{"hsl(-120, 100%, 50%)", RGBA{B: 1, A: 1}},
		{"hsl(0 0% 100%)", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"hsl(none 100% 50%)", red},
		{"hsl(0 100% 50% / none)", RGBA{R: 1}},
		{"#f00", red},
		{"#ff0000", red},
		{"#FF000080", RGBA{R: 1, A: 128.0 / 255}},
		{"#f008", RGBA{R: 1, A: 136.0 / 255}},
		{"red", red},
		{"Red", red},
		{"white", RGBA{R: 1, G: 1, B: 1, A: 1}},
		{"transparent", RGBA{}},
		{"rebeccapurple", RGBA{R: 0x66 / 255.0, G: 0x33 / 255.0, B: 0x99 / 255.0, A: 1}},
		{"/* note */ blue", RGBA{B: 1, A: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if !approxEqual(got, tc.want) {
				t.Fatalf("Parse(%q)=%+v want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseExtremeNumbers(t *testing.T) {
	red := RGBA{R: 1, A: 1}
	cases := []struct {
		in   string
		want RGBA
	}{
		{"rgb(1e200000000 0 0)", red},
		{"rgb(1e200000000, 0, -1e200000000)", red},
		{"rgb(1e200000000% 0% 0%)", red},
		{"rgb(255 0 0 / 1e999999)", red},
		{"rgb(255 0 0 / 1e-999999)", RGBA{R: 1}},
		{"rgb(255 1e-200000000 0)", red},
		{"hsl(1e309 100% 50%)", red},
		{"hsl(-1e309 100% 50%)", red},
		{"hsl(1e308turn 100% 50%)", red},
		{"hsl(1e200000000deg 100% 50%)", red},
		{"hsl(120 1e999% 50%)", RGBA{G: 1, A: 1}},
		{"hsl(240 100% 50% / 1e400%)", RGBA{B: 1, A: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			done := make(chan struct{})
			var got RGBA
			var err error
			go func() {
				defer close(done)
				got, err = Parse(tc.in)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("Parse(%q) did not return", tc.in)
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tc.in, err)
			}
			if !approxEqual(got, tc.want) {
				t.Fatalf("Parse(%q)=%+v want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseCurrentColorIsUnsupported(t *testing.T) {
	for _, in := range []string{"currentcolor", "currentColor", "CURRENTCOLOR"} {
		_, err := Parse(in)
		if !errors.Is(err, csserr.ErrUnsupportedValue) {
			t.Fatalf("Parse(%q) error=%v want unsupported value", in, err)
		}
		var pe *csserr.Error
		if !errors.As(err, &pe) || pe.Reason != "currentcolor is not supported in this context" {
			t.Fatalf("unexpected reason: %v", err)
		}
	}
}

func TestParseUnsupportedFormats(t *testing.T) {
	for _, in := range []string{
		"lab(50% 40 20)",
		"lch(50% 30 120)",
		"oklch(0.7 0.1 200)",
		"hwb(120 10% 20%)",
		"color(display-p3 1 0 0)",
		"color-mix(in srgb, red, blue)",
	} {
		_, err := Parse(in)
		if !errors.Is(err, csserr.ErrUnsupportedValue) {
			t.Fatalf("Parse(%q) error=%v want unsupported value", in, err)
		}
	}
}

func TestParseInvalidSyntax(t *testing.T) {
	for _, in := range []string{
		"",
		"   ",
		"not-a-color",
		"#ff",
		"#ggg",
		"#12345",
		"rgb(255, 0)",
		"rgb(255, 0, 0, 1, 1)",
		"rgb(255, 0%, 0)",
		"rgb(255, 0, 0",
		"rgb(255 0 0 / )",
		"rgb(255 0 0 / 1 2)",
		"rgb(255, , 0)",
		"rgb(255, 0, 0,)",
		"rgb(255, none, 0)",
		"rgb(red, 0, 0)",
		"hsl(0, 100, 50%)",
		"hsl(0px 100% 50%)",
		"hsl(0 100% 50%) extra",
		"red blue",
		"frobnicate(1 2 3)",
		"12",
		"\"red\"",
	} {
		_, err := Parse(in)
		if err == nil {
			t.Fatalf("Parse(%q) expected error", in)
		}
		if !errors.Is(err, csserr.ErrInvalidSyntax) {
			t.Fatalf("Parse(%q) error=%v want invalid syntax", in, err)
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustParse should panic on invalid input")
		}
	}()
	MustParse("nope")
}

func TestRGBAFormatting(t *testing.T) {
	cases := []struct {
		in     string
		hex    string
		css    string
		opaque bool
		rgb8   colorutil.RGB
	}{
		{"rgb(255 0 0)", "#ff0000", "rgb(255 0 0)", true, colorutil.RGB{R: 255}},
		{"rgb(0 128 255 / 50%)", "#0080ff80", "rgb(0 128 255 / 50%)", false, colorutil.RGB{G: 128, B: 255}},
		{"hsl(0 0% 50%)", "#808080", "rgb(128 128 128)", true, colorutil.RGB{R: 128, G: 128, B: 128}},
	}
	for _, tc := range cases {
		c := MustParse(tc.in)
		if got := c.Hex(); got != tc.hex {
			t.Fatalf("%s Hex()=%q want %q", tc.in, got, tc.hex)
		}
		if got := c.String(); got != tc.css {
			t.Fatalf("%s String()=%q want %q", tc.in, got, tc.css)
		}
		if c.Opaque() != tc.opaque {
			t.Fatalf("%s Opaque()=%v want %v", tc.in, c.Opaque(), tc.opaque)
		}
		if got := c.RGB8(); got != tc.rgb8 {
			t.Fatalf("%s RGB8()=%v want %v", tc.in, got, tc.rgb8)
		}
	}
}

func TestParseRGBFeedsContrast(t *testing.T) {
	white, err := ParseRGB("white")
	if err != nil {
		t.Fatalf("ParseRGB(white): %v", err)
	}
	black, err := ParseRGB("hsl(0 0% 0%)")
	if err != nil {
		t.Fatalf("ParseRGB(black): %v", err)
	}
	if got := colorutil.ContrastRatio(white, black); math.Abs(got-21) > 1e-9 {
		t.Fatalf("white/black ratio=%v want 21", got)
	}
	if _, err := ParseRGB("currentcolor"); !errors.Is(err, csserr.ErrUnsupportedValue) {
		t.Fatalf("ParseRGB(currentcolor) error=%v", err)
	}
}

func TestFromRGB(t *testing.T) {
	c := FromRGB(colorutil.RGB{R: 0x66, G: 0x33, B: 0x99})
	if c.Hex() != "#663399" || !c.Opaque() {
		t.Fatalf("FromRGB mismatch: %+v", c)
	}
	if c.RGB8() != MustParse("rebeccapurple").RGB8() {
		t.Fatalf("FromRGB should round trip through RGB8")
	}
}
