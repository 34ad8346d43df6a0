package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Source names where Find located the config file.
type Source string

const (
	SourceExplicit Source = "explicit"
	SourceAncestor Source = "cwd-up"
	SourceXDG      Source = "xdg"
	SourceHome     Source = "home"
)

// configExts lists the formats Load understands, in lookup order.
var configExts = []string{".yaml", ".yml", ".toml", ".json"}

// Find locates the config file to load. An explicit path (from --config or
// CONTRASTX_CONFIG) is resolved against startDir and must name a file. Otherwise
// the first match wins among .contrastx.<ext> in startDir and its ancestors,
// $XDG_CONFIG_HOME/contrastx/config.<ext> (xdgHome defaults to home/.config),
// and home/.contrastx.<ext>. An empty path means no config exists.
func Find(startDir, explicitPath, xdgHome, home string) (string, Source, error) {
	start := strings.TrimSpace(startDir)
	if start == "" {
		start = "."
	}
	start, err := filepath.Abs(start)
	if err != nil {
		return "", "", err
	}

	if explicit := strings.TrimSpace(explicitPath); explicit != "" {
		if !filepath.IsAbs(explicit) {
			explicit = filepath.Join(start, explicit)
		}
		info, err := os.Stat(explicit)
		if err != nil {
			return "", "", fmt.Errorf("config file: %w", err)
		}
		if info.IsDir() {
			return "", "", fmt.Errorf("config file %q is a directory", explicit)
		}
		return explicit, SourceExplicit, nil
	}

	for dir := start; ; {
		if path, ok := firstFile(dir, ".contrastx"); ok {
			return path, SourceAncestor, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	home = strings.TrimSpace(home)
	xdg := strings.TrimSpace(xdgHome)
	if xdg == "" && home != "" {
		xdg = filepath.Join(home, ".config")
	}
	if xdg != "" {
		if path, ok := firstFile(filepath.Join(xdg, "contrastx"), "config"); ok {
			return path, SourceXDG, nil
		}
	}
	if home != "" {
		if path, ok := firstFile(home, ".contrastx"); ok {
			return path, SourceHome, nil
		}
	}
	return "", "", nil
}

// firstFile returns dir/stem<ext> for the first extension naming a regular file.
func firstFile(dir, stem string) (string, bool) {
	for _, ext := range configExts {
		path := filepath.Join(dir, stem+ext)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}
