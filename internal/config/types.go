package config

import "runtime"

const maxJobs = 64

type CheckConfig struct {
	MinRatio   *float64  `yaml:"min_ratio" toml:"min_ratio" json:"min_ratio"`
	Level      *string   `yaml:"level" toml:"level" json:"level"`
	Background *string   `yaml:"background" toml:"background" json:"background"`
	Candidates *[]string `yaml:"candidates" toml:"candidates" json:"candidates"`
	Output     *string   `yaml:"output" toml:"output" json:"output"`
	Fields     *string   `yaml:"fields" toml:"fields" json:"fields"`
	Color      *string   `yaml:"color" toml:"color" json:"color"`
	Jobs       *int      `yaml:"jobs" toml:"jobs" json:"jobs"`
}

type ServeConfig struct {
	Addr *string `yaml:"addr" toml:"addr" json:"addr"`
	Open *bool   `yaml:"open" toml:"open" json:"open"`
}

type Config struct {
	Check CheckConfig `yaml:"check" toml:"check" json:"check"`
	Serve ServeConfig `yaml:"serve" toml:"serve" json:"serve"`
}

// CheckSettings is the resolved form of CheckConfig. A zero MinRatio means
// the ratio is taken from Level during normalization.
type CheckSettings struct {
	MinRatio   float64
	Level      string
	Background string
	Candidates []string
	Output     string
	Fields     string
	Color      string
	Jobs       int
}

type ServeSettings struct {
	Addr string
	Open bool
}

func DefaultCheckSettings() CheckSettings {
	jobs := runtime.NumCPU()
	if jobs < 1 {
		jobs = 1
	}
	if jobs > maxJobs {
		jobs = maxJobs
	}
	return CheckSettings{
		Level:  "aa",
		Output: "table",
		Color:  "auto",
		Jobs:   jobs,
	}
}

func DefaultServeSettings() ServeSettings {
	return ServeSettings{Addr: "127.0.0.1:8080"}
}
