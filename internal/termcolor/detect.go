package termcolor

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/phyten/contrastx/internal/colorutil"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseMode accepts the values of --color and CONTRASTX_COLOR.
func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "on", "force":
		return ModeAlways, nil
	case "never", "off", "none":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", v)
	}
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

type Scheme int

const (
	SchemeUnknown Scheme = iota
	SchemeDark
	SchemeLight
)

// Lookup reads one environment variable. os.Getenv satisfies it.
type Lookup func(string) string

// Terminal is what is known about the terminal output goes to.
type Terminal struct {
	Color   bool
	Profile Profile
	Scheme  Scheme
	// Background is the terminal's own background color: the COLORFGBG
	// palette entry when known, otherwise black or white by Scheme.
	Background colorutil.RGB
}

// Detect resolves mode against w and the environment. The profile and the
// background are detected even when color output is off, since the
// background also serves as the default for contrast checks.
func Detect(mode ColorMode, w io.Writer, env Lookup) Terminal {
	if env == nil {
		env = func(string) string { return "" }
	}
	t := Terminal{Profile: DetectProfile(env)}
	t.Background, t.Scheme = DetectBackground(env)
	switch mode {
	case ModeAlways:
		t.Color = true
	case ModeNever:
	default:
		t.Color = autoColor(w, env)
	}
	return t
}

// autoColor applies the environment conventions, first match wins:
// TERM=dumb, NO_COLOR and CLICOLOR=0 disable colors; non-zero CLICOLOR_FORCE
// or FORCE_COLOR enable them; otherwise w must be a TTY.
func autoColor(w io.Writer, env Lookup) bool {
	if strings.EqualFold(strings.TrimSpace(env("TERM")), "dumb") {
		return false
	}
	if strings.TrimSpace(env("NO_COLOR")) != "" {
		return false
	}
	if strings.TrimSpace(env("CLICOLOR")) == "0" {
		return false
	}
	if forceColor(env("CLICOLOR_FORCE")) || forceColor(env("FORCE_COLOR")) {
		return true
	}
	return IsTerminal(w)
}

// DetectProfile maps COLORTERM/TERM to a profile: truecolor or 24bit gives
// TrueColor, *256color gives ANSI256, anything else the basic 8 colors.
func DetectProfile(env Lookup) Profile {
	if v := strings.ToLower(strings.TrimSpace(env("COLORTERM"))); v != "" {
		if strings.Contains(v, "truecolor") || strings.Contains(v, "24bit") || strings.Contains(v, "24-bit") {
			return ProfileTrueColor
		}
	}
	if v := strings.ToLower(strings.TrimSpace(env("TERM"))); strings.Contains(v, "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

// xterm's default 16 color palette.
var ansi16 = [16]colorutil.RGB{
	{R: 0x00, G: 0x00, B: 0x00}, {R: 0xcd, G: 0x00, B: 0x00},
	{R: 0x00, G: 0xcd, B: 0x00}, {R: 0xcd, G: 0xcd, B: 0x00},
	{R: 0x00, G: 0x00, B: 0xee}, {R: 0xcd, G: 0x00, B: 0xcd},
	{R: 0x00, G: 0xcd, B: 0xcd}, {R: 0xe5, G: 0xe5, B: 0xe5},
	{R: 0x7f, G: 0x7f, B: 0x7f}, {R: 0xff, G: 0x00, B: 0x00},
	{R: 0x00, G: 0xff, B: 0x00}, {R: 0xff, G: 0xff, B: 0x00},
	{R: 0x5c, G: 0x5c, B: 0xff}, {R: 0xff, G: 0x00, B: 0xff},
	{R: 0x00, G: 0xff, B: 0xff}, {R: 0xff, G: 0xff, B: 0xff},
}

// DetectBackground reads the background palette index from COLORFGBG
// ("fg;bg" or "fg;default;bg"). The scheme is light when black text
// contrasts better with that background than white text. Without a usable
// index, a TERM name containing "light" selects white, anything else black.
func DetectBackground(env Lookup) (colorutil.RGB, Scheme) {
	if raw := strings.TrimSpace(env("COLORFGBG")); raw != "" {
		parts := strings.Split(raw, ";")
		last := strings.TrimSpace(parts[len(parts)-1])
		if idx, err := strconv.Atoi(last); err == nil && idx >= 0 && idx < len(ansi16) {
			bg := ansi16[idx]
			if colorutil.AutoTextColor(bg) == colorutil.Black {
				return bg, SchemeLight
			}
			return bg, SchemeDark
		}
	}
	if strings.Contains(strings.ToLower(env("TERM")), "light") {
		return colorutil.White, SchemeLight
	}
	return colorutil.Black, SchemeDark
}

// IsTerminal reports whether w is an *os.File attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
