package config

import (
	"fmt"
	"strconv"
	"strings"
)

var (
	trueLiterals  = map[string]struct{}{"1": {}, "true": {}, "yes": {}, "on": {}}
	falseLiterals = map[string]struct{}{"0": {}, "false": {}, "no": {}, "off": {}}
)

// ParseBool accepts 1/0, true/false, yes/no and on/off in any case.
func ParseBool(raw, key string) (bool, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, ok := trueLiterals[v]; ok {
		return true, nil
	}
	if _, ok := falseLiterals[v]; ok {
		return false, nil
	}
	return false, fmt.Errorf("invalid value for %s: %q", key, raw)
}

// ParseIntInRange parses a string into an int and ensures it falls within [min, max].
// If max < min, the upper bound is ignored.
func ParseIntInRange(raw, key string, min, max int) (int, error) {
	v := strings.TrimSpace(raw)
	n, err := strconv.Atoi(v)
	if v == "" || err != nil {
		return 0, fmt.Errorf("invalid integer value for %s: %q", key, raw)
	}
	if n < min {
		if max >= min {
			return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
		}
		return 0, fmt.Errorf("%s must be >= %d", key, min)
	}
	if max >= min && n > max {
		return 0, fmt.Errorf("%s must be between %d and %d", key, min, max)
	}
	return n, nil
}

func ParseFloatInRange(raw, key string, min, max float64) (float64, error) {
	v := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(v, 64)
	if v == "" || err != nil {
		return 0, fmt.Errorf("invalid number for %s: %q", key, raw)
	}
	if f < min || f > max {
		return 0, fmt.Errorf("%s must be between %g and %g", key, min, max)
	}
	return f, nil
}

// SplitMulti flattens repeated values and comma separated lists. Commas
// inside parentheses do not split, so "rgb(0, 0, 0),white" yields two colors.
func SplitMulti(vals []string) []string {
	var out []string
	for _, raw := range vals {
		depth, start := 0, 0
		for i := 0; i <= len(raw); i++ {
			if i < len(raw) {
				switch raw[i] {
				case '(':
					depth++
					continue
				case ')':
					if depth > 0 {
						depth--
					}
					continue
				case ',':
					if depth > 0 {
						continue
					}
				default:
					continue
				}
			}
			if part := strings.TrimSpace(raw[start:i]); part != "" {
				out = append(out, part)
			}
			start = i + 1
		}
	}
	return out
}
