package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

var checkKeyMap = map[string]string{
	"min_ratio":  "min_ratio",
	"ratio":      "min_ratio",
	"level":      "level",
	"background": "background",
	"bg":         "background",
	"candidates": "candidates",
	"candidate":  "candidates",
	"output":     "output",
	"fields":     "fields",
	"color":      "color",
	"jobs":       "jobs",
}

var serveKeyMap = map[string]string{
	"addr":    "addr",
	"address": "addr",
	"open":    "open",
}

// Load reads a config file. The format follows the extension (.yaml, .yml,
// .toml, .json). An empty path yields an empty Config.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	ext := strings.ToLower(filepath.Ext(path))
	var raw map[string]any
	switch ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		err = toml.Unmarshal(data, &raw)
	case ".json":
		err = json.Unmarshal(data, &raw)
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	checkSection := make(map[string]any)
	serveSection := make(map[string]any)

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "check":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("check: %w", err)
			}
			if err := fillSection(checkSection, sub, checkKeyMap, "check"); err != nil {
				return cfg, err
			}
		case "serve":
			sub, err := toStringKeyMap(value)
			if err != nil {
				return cfg, fmt.Errorf("serve: %w", err)
			}
			if err := fillSection(serveSection, sub, serveKeyMap, "serve"); err != nil {
				return cfg, err
			}
		default:
			if canonical, ok := checkKeyMap[norm]; ok {
				checkSection[canonical] = value
				continue
			}
			if canonical, ok := serveKeyMap[norm]; ok {
				serveSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignCheck(checkSection, &cfg.Check); err != nil {
		return cfg, fmt.Errorf("check: %w", err)
	}
	if err := assignServe(serveSection, &cfg.Serve); err != nil {
		return cfg, fmt.Errorf("serve: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignCheck(section map[string]any, dst *CheckConfig) error {
	for key, value := range section {
		switch key {
		case "min_ratio":
			f, err := expectFloat(value, key)
			if err != nil {
				return err
			}
			dst.MinRatio = &f
		case "level", "background", "output", "fields", "color":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			switch key {
			case "level":
				dst.Level = &trimmed
			case "background":
				dst.Background = &trimmed
			case "output":
				dst.Output = &trimmed
			case "fields":
				dst.Fields = &trimmed
			default:
				dst.Color = &trimmed
			}
		case "candidates":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Candidates = &list
		case "jobs":
			n, err := expectInt(value, key)
			if err != nil {
				return err
			}
			dst.Jobs = &n
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignServe(section map[string]any, dst *ServeConfig) error {
	for key, value := range section {
		switch key {
		case "addr":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			dst.Addr = &trimmed
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectInt(value any, field string) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		if v != float64(int(v)) {
			return 0, fmt.Errorf("expected integer for %s, got %v", field, value)
		}
		return int(v), nil
	case string:
		return ParseIntInRange(v, field, 0, -1)
	default:
		return 0, fmt.Errorf("expected integer for %s, got %T", field, value)
	}
}

func expectFloat(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid number for %s: %q", field, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			if trimmed := strings.TrimSpace(str); trimmed != "" {
				out = append(out, trimmed)
			}
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	return strings.ReplaceAll(norm, "-", "_")
}
