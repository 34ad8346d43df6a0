package config

import (
	"fmt"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/output"
	"github.com/phyten/contrastx/internal/termcolor"
)

var levelRatios = map[string]float64{
	"aa-large":  colorutil.RatioAALarge,
	"aa":        colorutil.RatioAA,
	"aaa-large": colorutil.RatioAAALarge,
	"aaa":       colorutil.RatioAAA,
}

// CanonicalizeLevel lower-cases a WCAG level name and accepts "_" for "-".
func CanonicalizeLevel(raw string) (string, error) {
	level := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), "_", "-")
	if level == "" {
		return "aa", nil
	}
	if _, ok := levelRatios[level]; !ok {
		return "", fmt.Errorf("invalid level: %s (want aa, aa-large, aaa or aaa-large)", raw)
	}
	return level, nil
}

// LevelRatio returns the minimum contrast ratio for a canonical level.
func LevelRatio(level string) float64 {
	return levelRatios[level]
}

func ValidateJobs(jobs int) error {
	if jobs < 1 || jobs > maxJobs {
		return fmt.Errorf("jobs must be between 1 and %d", maxJobs)
	}
	return nil
}

// NormalizeCheck canonicalizes and validates merged settings. MinRatio is
// filled from Level when no layer set it.
func NormalizeCheck(values CheckSettings) (CheckSettings, error) {
	var err error
	values.Level, err = CanonicalizeLevel(values.Level)
	if err != nil {
		return values, err
	}
	if values.MinRatio == 0 {
		values.MinRatio = LevelRatio(values.Level)
	}
	if values.MinRatio < 1 || values.MinRatio > 21 {
		return values, fmt.Errorf("min_ratio must be between 1 and 21")
	}
	values.Output, err = output.NormalizeFormat(values.Output)
	if err != nil {
		return values, err
	}
	mode, err := termcolor.ParseMode(values.Color)
	if err != nil {
		return values, err
	}
	values.Color = mode.String()
	if err := ValidateJobs(values.Jobs); err != nil {
		return values, err
	}
	values.Background = strings.TrimSpace(values.Background)
	values.Fields = strings.TrimSpace(values.Fields)
	return values, nil
}

func NormalizeServe(values ServeSettings) (ServeSettings, error) {
	values.Addr = strings.TrimSpace(values.Addr)
	if values.Addr == "" {
		return values, fmt.Errorf("addr must not be empty")
	}
	return values, nil
}
