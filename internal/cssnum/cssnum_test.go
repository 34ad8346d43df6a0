package cssnum

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/phyten/contrastx/internal/csserr"
)

func TestParseNumberRoundTrip(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0"},
		{"1", "1"},
		{"1.2", "1.2"},
		{"0.6", "0.6"},
		{"-.5", "-0.5"},
		{"+12.75", "12.75"},
		{"3e2", "300"},
		{"2.5E-1", "0.25"},
		{"255", "255"},
		{"0.1", "0.1"},
		{"0.30000000000000004", "0.3"},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			d, err := ParseNumber(tc.in)
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tc.in, err)
			}
			if got := FormatNumber(d); got != tc.want {
				t.Fatalf("FormatNumber(ParseNumber(%q))=%q want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestParseNumberRejectsInvalidGrammar(t *testing.T) {
	for _, in := range []string{"", "abc", "1.", "1..2", "--1", "1e", "0x10", " 1", "1px", "NaN", "inf"} {
		_, err := ParseNumber(in)
		if err == nil {
			t.Fatalf("ParseNumber(%q) expected error", in)
		}
		if !errors.Is(err, csserr.ErrInvalidSyntax) {
			t.Fatalf("ParseNumber(%q) error %v should be invalid syntax", in, err)
		}
	}
}

func TestParseNumberExtremeExponents(t *testing.T) {
	huge := decimal.New(1, int32(MaxExponent))
	cases := []struct {
		in   string
		want decimal.Decimal
	}{
		{"1e1000", huge},
		{"1e200000000", huge},
		{"-1e200000000", huge.Neg()},
		{"12.5e999", huge},
		{"1e99999999999999999999", huge},
		{"1e-200000000", decimal.Zero},
		{"-1e-99999999999999999999", decimal.Zero},
		{"0e200000000", decimal.Zero},
		{"1e-33", decimal.Zero},
		{"1e-32", decimal.New(1, -32)},
		{"1e300", decimal.New(1, 300)},
		{"123456789e-40", decimal.New(1, -32)},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			done := make(chan struct{})
			var got decimal.Decimal
			var err error
			go func() {
				defer close(done)
				got, err = ParseNumber(tc.in)
			}()
			select {
			case <-done:
			case <-time.After(2 * time.Second):
				t.Fatalf("ParseNumber(%q) did not return", tc.in)
			}
			if err != nil {
				t.Fatalf("ParseNumber(%q) unexpected error: %v", tc.in, err)
			}
			if !got.Equal(tc.want) {
				t.Fatalf("ParseNumber(%q)=%s want %s", tc.in, got, tc.want)
			}
		})
	}

	if f := Float64(huge); !math.IsInf(f, 1) {
		t.Fatalf("saturated value should leave float64 range, got %v", f)
	}
}

func TestIsPercentage(t *testing.T) {
	cases := map[string]bool{
		"60%":  true,
		"%":    true,
		"x%":   true,
		"60":   false,
		"%60":  false,
		"":     false,
		"60% ": false,
	}
	for in, want := range cases {
		if got := IsPercentage(in); got != want {
			t.Fatalf("IsPercentage(%q)=%v want %v", in, got, want)
		}
	}
}

func TestParsePercentage(t *testing.T) {
	d, err := ParsePercentage("60%")
	if err != nil {
		t.Fatalf("ParsePercentage unexpected error: %v", err)
	}
	if !d.Equal(decimal.RequireFromString("0.6")) {
		t.Fatalf("ParsePercentage(60%%)=%s want 0.6", d)
	}
	if got := FormatPercentage(d); got != "60%" {
		t.Fatalf("FormatPercentage round trip=%q want 60%%", got)
	}

	d, err = ParsePercentage("12.5%")
	if err != nil {
		t.Fatalf("ParsePercentage unexpected error: %v", err)
	}
	if got := FormatNumber(d); got != "0.125" {
		t.Fatalf("FormatNumber(12.5%%)=%q want 0.125", got)
	}
}

func TestParsePercentageInvalidNumber(t *testing.T) {
	_, err := ParsePercentage("abc%")
	if !errors.Is(err, csserr.ErrInvalidSyntax) {
		t.Fatalf("expected invalid syntax, got %v", err)
	}
	_, err = ParsePercentage("5%%")
	if !errors.Is(err, csserr.ErrInvalidSyntax) {
		t.Fatalf("expected invalid syntax for double percent, got %v", err)
	}
}

func TestParsePercentagePanicsWithoutPercentSign(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("ParsePercentage without %% should panic")
		}
	}()
	_, _ = ParsePercentage("60")
}

func TestFormatPercentage(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0%"},
		{"1", "100%"},
		{"0.5", "50%"},
		{"0.333", "33.3%"},
	}
	for _, tc := range cases {
		if got := FormatPercentage(decimal.RequireFromString(tc.in)); got != tc.want {
			t.Fatalf("FormatPercentage(%s)=%q want %q", tc.in, got, tc.want)
		}
	}
}
