package main

import (
	"context"
	"io"
	"os"

	cli "github.com/urfave/cli/v3"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/csscolor"
	"github.com/phyten/contrastx/internal/termcolor"
)

// flagCheckConfig turns explicitly set flags into the top config layer.
func flagCheckConfig(cmd *cli.Command) config.CheckConfig {
	var c config.CheckConfig
	if cmd.IsSet("min-ratio") {
		v := cmd.Float("min-ratio")
		c.MinRatio = &v
	}
	setString := func(target **string, name string) {
		if cmd.IsSet(name) {
			v := cmd.String(name)
			*target = &v
		}
	}
	setString(&c.Level, "level")
	setString(&c.Background, "background")
	setString(&c.Output, "output")
	setString(&c.Fields, "fields")
	setString(&c.Color, "color")
	if cmd.IsSet("jobs") {
		v := int(cmd.Int("jobs"))
		c.Jobs = &v
	}
	return c
}

func flagServeConfig(cmd *cli.Command) config.ServeConfig {
	var c config.ServeConfig
	if cmd.IsSet("addr") {
		v := cmd.String("addr")
		c.Addr = &v
	}
	if cmd.IsSet("open") {
		v := cmd.Bool("open")
		c.Open = &v
	}
	return c
}

func checkSettings(ctx context.Context, cmd *cli.Command) (config.CheckSettings, error) {
	env := envFromContext(ctx)
	merged := config.MergeCheck(config.DefaultCheckSettings(), env.Cfg.Check, env.EnvCfg.Check, flagCheckConfig(cmd))
	return config.NormalizeCheck(merged)
}

func serveSettings(ctx context.Context, cmd *cli.Command) (config.ServeSettings, error) {
	env := envFromContext(ctx)
	merged := config.MergeServe(config.DefaultServeSettings(), env.Cfg.Serve, env.EnvCfg.Serve, flagServeConfig(cmd))
	return config.NormalizeServe(merged)
}

// terminal describes how command output should be styled.
type terminal struct {
	w          io.Writer
	color      bool
	profile    termcolor.Profile
	background colorutil.RGB
}

// newTerminal detects the terminal for mode, which NormalizeCheck has already
// validated.
func newTerminal(ctx context.Context, cmd *cli.Command, mode string) terminal {
	w := cmd.Root().Writer
	if w == nil {
		w = os.Stdout
	}
	m, err := termcolor.ParseMode(mode)
	if err != nil {
		m = termcolor.ModeAuto
	}
	detected := termcolor.Detect(m, w, envFromContext(ctx).Getenv)
	return terminal{w: w, color: detected.Color, profile: detected.Profile, background: detected.Background}
}

// bgText resolves the background color text: explicit value first, then
// the terminal's own background.
func (t terminal) bgText(explicit string) string {
	if explicit != "" {
		return explicit
	}
	return csscolor.FromRGB(t.background).Hex()
}
