package config

import "strings"

// MergeCheck applies layers in order; a non-nil field in a later layer wins.
func MergeCheck(base CheckSettings, layers ...CheckConfig) CheckSettings {
	out := base
	for _, layer := range layers {
		out.MinRatio = Resolve(out.MinRatio, layer.MinRatio)
		out.Level = ResolveTrimmed(out.Level, layer.Level)
		out.Background = ResolveTrimmed(out.Background, layer.Background)
		out.Candidates = ResolveColors(out.Candidates, layer.Candidates)
		out.Output = ResolveTrimmed(out.Output, layer.Output)
		out.Fields = ResolveTrimmed(out.Fields, layer.Fields)
		out.Color = ResolveTrimmed(out.Color, layer.Color)
		out.Jobs = Resolve(out.Jobs, layer.Jobs)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "table"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}

func MergeServe(base ServeSettings, layers ...ServeConfig) ServeSettings {
	out := base
	for _, layer := range layers {
		out.Addr = ResolveTrimmed(out.Addr, layer.Addr)
		out.Open = Resolve(out.Open, layer.Open)
	}
	return out
}
