package audit

import (
	"fmt"

	"go.uber.org/multierr"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/csserr"
)

// Pair is one foreground/background combination to check.
type Pair struct {
	Foreground string `json:"fg" yaml:"fg" toml:"fg"`
	Background string `json:"bg" yaml:"bg" toml:"bg"`
	Label      string `json:"label,omitempty" yaml:"label,omitempty" toml:"label,omitempty"`
}

type Options struct {
	Pairs    []Pair
	MinRatio float64
	Jobs     int
}

// Item is the evaluated form of a Pair.
type Item struct {
	Index         int     `json:"index"`
	Label         string  `json:"label,omitempty"`
	Foreground    string  `json:"fg"`
	Background    string  `json:"bg"`
	ForegroundHex string  `json:"fg_hex"`
	BackgroundHex string  `json:"bg_hex"`
	Ratio         float64 `json:"ratio"`
	Level         string  `json:"level"`
	Pass          bool    `json:"pass"`

	FG colorutil.RGB `json:"-"`
	BG colorutil.RGB `json:"-"`
}

// ItemError records a pair that could not be evaluated.
type ItemError struct {
	Index  int    `json:"index"`
	Side   string `json:"side"`
	Input  string `json:"input"`
	Kind   string `json:"kind"`
	Reason string `json:"reason"`
}

func (e ItemError) Error() string {
	return fmt.Sprintf("pair %d %s %q: %s", e.Index, e.Side, e.Input, e.Reason)
}

type Result struct {
	Items     []Item      `json:"items"`
	Errors    []ItemError `json:"errors,omitempty"`
	MinRatio  float64     `json:"min_ratio"`
	Total     int         `json:"total"`
	Passed    int         `json:"passed"`
	Failed    int         `json:"failed"`
	ElapsedMS int64       `json:"elapsed_ms"`
}

// Err combines the per-pair errors, or returns nil when every pair parsed.
func (r *Result) Err() error {
	var err error
	for _, e := range r.Errors {
		err = multierr.Append(err, e)
	}
	return err
}

func newItemError(index int, side, input string, err error) ItemError {
	return ItemError{Index: index, Side: side, Input: input, Kind: csserr.KindOf(err).String(), Reason: err.Error()}
}
