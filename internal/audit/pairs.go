package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

type pairsFile struct {
	Background string `json:"background" yaml:"background" toml:"background"`
	Pairs      []Pair `json:"pairs" yaml:"pairs" toml:"pairs"`
}

// LoadPairs reads a pairs file (.yaml, .yml, .toml or .json). A top-level
// background applies to pairs that do not set their own. Pairs may still lack
// a background afterwards; see FillBackground.
func LoadPairs(path string) ([]Pair, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return DecodePairs(data, filepath.Ext(path))
}

// DecodePairs decodes pairs from data in the format named by ext.
func DecodePairs(data []byte, ext string) ([]Pair, error) {
	var file pairsFile
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse pairs: %w", err)
		}
	case ".toml":
		if err := toml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse pairs: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("parse pairs: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported pairs file extension: %s", ext)
	}

	out := make([]Pair, 0, len(file.Pairs))
	for i, p := range file.Pairs {
		p.Foreground = strings.TrimSpace(p.Foreground)
		p.Background = strings.TrimSpace(p.Background)
		if p.Background == "" {
			p.Background = strings.TrimSpace(file.Background)
		}
		if p.Foreground == "" {
			return nil, fmt.Errorf("pair %d: fg is required", i)
		}
		out = append(out, p)
	}
	return out, nil
}

// FillBackground sets bg on every pair without a background and reports how
// many pairs still have none.
func FillBackground(pairs []Pair, bg string) int {
	bg = strings.TrimSpace(bg)
	missing := 0
	for i := range pairs {
		if pairs[i].Background == "" {
			pairs[i].Background = bg
		}
		if pairs[i].Background == "" {
			missing++
		}
	}
	return missing
}
