package colorutil

import "math"

type RGB struct {
	R uint8
	G uint8
	B uint8
}

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

// Level is the highest WCAG 2.0 success criterion a contrast ratio meets.
type Level int

const (
	LevelFail Level = iota
	LevelAALarge
	LevelAA
	LevelAAA
)

// Minimum ratios per WCAG 2.0 G18/G17. AAA for large text shares the AA
// threshold.
const (
	RatioAALarge  = 3.0
	RatioAA       = 4.5
	RatioAAALarge = 4.5
	RatioAAA      = 7.0
)

func (l Level) String() string {
	switch l {
	case LevelAALarge:
		return "AA Large"
	case LevelAA:
		return "AA"
	case LevelAAA:
		return "AAA"
	default:
		return "Fail"
	}
}

// https://www.w3.org/TR/WCAG20-TECHS/G18.html#G18-tests
func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// RelativeLuminance returns the WCAG relative luminance of rgb in [0, 1].
// Alpha is not modelled; composite translucent colors before calling.
func RelativeLuminance(rgb RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio returns the WCAG contrast ratio of a and b. The result does not
// depend on argument order and lies in [1, 21].
func ContrastRatio(a, b RGB) float64 {
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Grade maps a contrast ratio to the highest level it satisfies.
func Grade(ratio float64) Level {
	switch {
	case ratio >= RatioAAA:
		return LevelAAA
	case ratio >= RatioAA:
		return LevelAA
	case ratio >= RatioAALarge:
		return LevelAALarge
	default:
		return LevelFail
	}
}

// BestContrast returns the candidate with the highest contrast to initial.
// Ties keep the earliest candidate. The returned pointer is one of the
// candidates, or initial itself when there are none.
func BestContrast(initial *RGB, candidates []*RGB) *RGB {
	best := 0.0
	chosen := initial
	for _, c := range candidates {
		ratio := ContrastRatio(*initial, *c)
		if ratio > best {
			best = ratio
			chosen = c
		}
	}
	return chosen
}

// BestContrastIndex is BestContrast over values. It returns -1 when
// candidates is empty.
func BestContrastIndex(initial RGB, candidates []RGB) int {
	best := 0.0
	idx := -1
	for i, c := range candidates {
		ratio := ContrastRatio(initial, c)
		if ratio > best {
			best = ratio
			idx = i
		}
	}
	return idx
}

func AutoTextColor(bg RGB) RGB {
	return *BestContrast(&bg, []*RGB{&Black, &White})
}

// EnsureContrast keeps fg when it reaches minRatio against bg and otherwise
// falls back to black or white, whichever contrasts more.
func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = RatioAA
	}
	if ContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	return AutoTextColor(bg)
}
