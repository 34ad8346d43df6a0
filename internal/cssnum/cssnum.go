// Package cssnum converts CSS <number> and <percentage> literals to and from
// arbitrary precision decimals.
//
// Values stay in decimal form while they are combined (percentage to fraction,
// fraction to channel) and are only quantized to single precision when they
// are formatted back to text.
package cssnum

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/phyten/contrastx/internal/csserr"
)

// Precision is the number of fractional decimal digits kept after parsing.
const Precision int32 = 32

// MaxExponent bounds the magnitude of parsed numbers. Larger values saturate
// to ±1e1000; every consumer clamps long before that.
const MaxExponent int64 = 1000

// https://www.w3.org/TR/css-values-3/#number
var numberRe = regexp.MustCompile(`^([+-]?(?:[0-9]+|[0-9]*\.[0-9]+))(?:[eE]([+-]?[0-9]+))?$`)

// ParseNumber parses a CSS number such as "1.2", "-.5" or "3e2".
//
// The exponent is applied without materializing 10^exp, so the cost depends
// on the length of text only. Magnitudes above 1e1000 saturate and values
// that round to zero at Precision digits become zero.
func ParseNumber(text string) (decimal.Decimal, error) {
	m := numberRe.FindStringSubmatch(text)
	if m == nil {
		return decimal.Zero, csserr.NewInvalidSyntax(fmt.Sprintf("invalid number %q", text))
	}
	mant, err := decimal.NewFromString(m[1])
	if err != nil {
		return decimal.Zero, csserr.NewInvalidSyntax(fmt.Sprintf("invalid number %q", text))
	}
	if mant.IsZero() {
		return decimal.Zero, nil
	}
	exp, err := parseExponent(m[2])
	if err != nil {
		return decimal.Zero, csserr.NewInvalidSyntax(fmt.Sprintf("invalid number %q", text))
	}

	// Position of the leading digit: the value lies in [10^(mag-1), 10^mag).
	mag := int64(mant.NumDigits()) + int64(mant.Exponent()) + exp
	switch {
	case mag > MaxExponent:
		return decimal.New(int64(mant.Sign()), int32(MaxExponent)), nil
	case mag < -int64(Precision):
		return decimal.Zero, nil
	}
	d := mant.Shift(int32(exp))
	if d.Exponent() < -Precision {
		d = d.Round(Precision)
	}
	return d, nil
}

// parseExponent reads the digits after 'e'. Out of range exponents saturate
// to the int32 bounds, which ParseNumber then saturates further.
func parseExponent(s string) (int64, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.ParseInt(s, 10, 32)
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(s, "-") {
			return math.MinInt32, nil
		}
		return math.MaxInt32, nil
	}
	return v, err
}

// FormatNumber renders d as the shortest decimal that round-trips through a
// float32, e.g. 0.6 as "0.6" and 60 as "60".
func FormatNumber(d decimal.Decimal) string {
	f, _ := d.Float64()
	return strconv.FormatFloat(float64(float32(f)), 'f', -1, 32)
}

// IsPercentage reports whether text ends with '%'. The number in front of it
// is not validated.
func IsPercentage(text string) bool {
	return strings.HasSuffix(text, "%")
}

// ParsePercentage parses a CSS percentage such as "60%" into the fraction 0.6.
// text must satisfy IsPercentage; anything else is a caller bug and panics.
// https://www.w3.org/TR/css-values-3/#percentage-value
func ParsePercentage(text string) (decimal.Decimal, error) {
	if !IsPercentage(text) {
		panic(fmt.Sprintf("cssnum: ParsePercentage called with non-percentage %q", text))
	}
	n, err := ParseNumber(text[:strings.LastIndexByte(text, '%')])
	if err != nil {
		return decimal.Zero, err
	}
	return n.Shift(-2), nil
}

// FormatPercentage renders the fraction d as a percentage, e.g. 0.6 as "60%".
func FormatPercentage(d decimal.Decimal) string {
	return FormatNumber(d.Shift(2)) + "%"
}

// Float64 converts d for arithmetic that leaves the decimal domain.
func Float64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
