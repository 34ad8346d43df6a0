package config

import "strings"

// Resolve returns the value of the last non-nil layer, or def.
func Resolve[T any](def T, layers ...*T) T {
	result := def
	for _, v := range layers {
		if v != nil {
			result = *v
		}
	}
	return result
}

// ResolveTrimmed is Resolve with surrounding whitespace removed.
func ResolveTrimmed(def string, layers ...*string) string {
	return strings.TrimSpace(Resolve(def, layers...))
}

// ResolveColors resolves a list of color texts. A layer holding an empty
// list clears what earlier layers set. Entries are trimmed and blank entries
// dropped; the result never aliases a layer.
func ResolveColors(def []string, layers ...*[]string) []string {
	src := Resolve(def, layers...)
	out := make([]string, 0, len(src))
	for _, c := range src {
		if c = strings.TrimSpace(c); c != "" {
			out = append(out, c)
		}
	}
	return out
}
