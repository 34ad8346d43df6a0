package config

import (
	"errors"
	"math"
	"strings"
)

// FromEnv reads CONTRASTX_* variables. Every malformed value is reported;
// the well-formed ones are still returned.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	lookup := func(key string) (string, bool) {
		raw := strings.TrimSpace(getenv(key))
		return raw, raw != ""
	}
	setString := func(target **string, key string) {
		if raw, ok := lookup(key); ok {
			*target = &raw
		}
	}
	setBool := func(target **bool, key string) {
		raw, ok := lookup(key)
		if !ok {
			return
		}
		v, err := ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	if raw, ok := lookup("CONTRASTX_MIN_RATIO"); ok {
		f, err := ParseFloatInRange(raw, "CONTRASTX_MIN_RATIO", 1, 21)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Check.MinRatio = &f
		}
	}
	setString(&cfg.Check.Level, "CONTRASTX_LEVEL")
	setString(&cfg.Check.Background, "CONTRASTX_BACKGROUND")
	if raw, ok := lookup("CONTRASTX_CANDIDATES"); ok {
		list := SplitMulti([]string{raw})
		cfg.Check.Candidates = &list
	}
	setString(&cfg.Check.Output, "CONTRASTX_OUTPUT")
	setString(&cfg.Check.Fields, "CONTRASTX_FIELDS")
	setString(&cfg.Check.Color, "CONTRASTX_COLOR")
	// The upper bound is enforced by NormalizeCheck so every layer shares one message.
	if raw, ok := lookup("CONTRASTX_JOBS"); ok {
		n, err := ParseIntInRange(raw, "CONTRASTX_JOBS", 0, math.MaxInt)
		if err != nil {
			errs = append(errs, err)
		} else {
			cfg.Check.Jobs = &n
		}
	}

	setString(&cfg.Serve.Addr, "CONTRASTX_ADDR")
	setBool(&cfg.Serve.Open, "CONTRASTX_OPEN")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
