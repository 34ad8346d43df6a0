package output

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/audit"
)

type Field struct {
	Key    string
	Header string
}

type FieldSelection struct {
	Fields []Field
}

var fieldRegistry = map[string]string{
	"index":  "#",
	"label":  "LABEL",
	"fg":     "FG",
	"bg":     "BG",
	"fg_hex": "FG_HEX",
	"bg_hex": "BG_HEX",
	"ratio":  "RATIO",
	"level":  "LEVEL",
	"pass":   "PASS",
}

var defaultFields = []string{"fg", "bg", "ratio", "level", "pass"}

// ResolveFields parses a comma separated field list. An empty list selects
// the default columns, with LABEL first when withLabel is set.
func ResolveFields(raw string, withLabel bool) (FieldSelection, error) {
	raw = strings.TrimSpace(raw)
	var keys []string
	if raw == "" {
		if withLabel {
			keys = append(keys, "label")
		}
		keys = append(keys, defaultFields...)
	} else {
		for _, part := range strings.Split(raw, ",") {
			name := strings.ToLower(strings.TrimSpace(part))
			if name == "" {
				return FieldSelection{}, fmt.Errorf("invalid fields: empty entry")
			}
			if _, ok := fieldRegistry[name]; !ok {
				return FieldSelection{}, fmt.Errorf("unknown field: %s", strings.TrimSpace(part))
			}
			keys = append(keys, name)
		}
	}
	sel := FieldSelection{Fields: make([]Field, 0, len(keys))}
	for _, key := range keys {
		sel.Fields = append(sel.Fields, Field{Key: key, Header: fieldRegistry[key]})
	}
	return sel, nil
}

func Headers(fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = f.Header
	}
	return out
}

func RowValues(it audit.Item, fields []Field) []string {
	out := make([]string, len(fields))
	for i, f := range fields {
		out[i] = FieldValue(it, f.Key)
	}
	return out
}

func FieldValue(it audit.Item, key string) string {
	switch key {
	case "index":
		return strconv.Itoa(it.Index)
	case "label":
		return it.Label
	case "fg":
		return it.Foreground
	case "bg":
		return it.Background
	case "fg_hex":
		return it.ForegroundHex
	case "bg_hex":
		return it.BackgroundHex
	case "ratio":
		return FormatRatio(it.Ratio)
	case "level":
		return it.Level
	case "pass":
		if it.Pass {
			return "yes"
		}
		return "no"
	default:
		return ""
	}
}

// FormatRatio renders a ratio the way WCAG tools usually show it, e.g. "4.48:1".
func FormatRatio(r float64) string {
	return strconv.FormatFloat(r, 'f', 2, 64) + ":1"
}

// NormalizeFormat validates and lower-cases an output format name.
func NormalizeFormat(value string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	switch v {
	case "":
		return "table", nil
	case "table", "tsv", "json", "ndjson", "csv":
		return v, nil
	case "md", "markdown":
		return "md", nil
	}
	return "", fmt.Errorf("invalid --output: %s", value)
}
