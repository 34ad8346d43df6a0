package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/termcolor"
)

var version = "dev"

type envKey struct{}

// appEnv carries what every subcommand needs.
type appEnv struct {
	Getenv     func(string) string
	Cfg        config.Config
	EnvCfg     config.Config
	ConfigPath string
	Log        *zap.Logger
	start      time.Time
}

func envFromContext(ctx context.Context) *appEnv {
	if env, ok := ctx.Value(envKey{}).(*appEnv); ok {
		return env
	}
	panic("appEnv not found in context")
}

func contextWithEnv(ctx context.Context, getenv func(string) string) context.Context {
	if getenv == nil {
		getenv = os.Getenv
	}
	return context.WithValue(ctx, envKey{}, &appEnv{Getenv: getenv, Log: zap.NewNop(), start: time.Now()})
}

// initializeAppContext loads configuration and prepares the logger once the
// global flags are parsed.
func initializeAppContext(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	env := envFromContext(ctx)
	errW := cmd.Root().ErrWriter
	if errW == nil {
		errW = os.Stderr
	}
	env.Log = config.NewLogger(errW, cmd.Bool("debug"), termcolor.IsTerminal(errW))

	explicit := cmd.String("config")
	if explicit == "" {
		explicit = env.Getenv("CONTRASTX_CONFIG")
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ctx, err
	}
	path, where, err := config.Find(cwd, explicit, env.Getenv("XDG_CONFIG_HOME"), env.Getenv("HOME"))
	if err != nil {
		return ctx, fmt.Errorf("unable to locate configuration: %w", err)
	}
	if env.Cfg, err = config.Load(path); err != nil {
		return ctx, fmt.Errorf("unable to load configuration: %w", err)
	}
	if env.EnvCfg, err = config.FromEnv(env.Getenv); err != nil {
		return ctx, fmt.Errorf("invalid environment: %w", err)
	}
	env.ConfigPath = path

	env.Log.Debug("Program started",
		zap.Strings("args", os.Args),
		zap.String("ver", version),
		zap.String("runtime", runtime.Version()),
		zap.String("config", path),
		zap.String("config_source", string(where)))
	return ctx, nil
}

func destroyAppContext(ctx context.Context, cmd *cli.Command) error {
	env := envFromContext(ctx)
	env.Log.Debug("Program ended", zap.Duration("elapsed", time.Since(env.start)), zap.Strings("parsed args", cmd.Args().Slice()))
	_ = env.Log.Sync()
	return nil
}

var errWasHandled bool

func exitErrHandler(ctx context.Context, _ *cli.Command, err error) {
	if err == nil {
		return
	}
	envFromContext(ctx).Log.Error("Program ended with error", zap.Error(err))
	errWasHandled = true
}

func usageErrorHandler(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return err
}

func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:            filepath.Base(os.Args[0]),
		Usage:           "parse CSS colors and check WCAG contrast",
		Version:         version + " (" + runtime.Version() + ")",
		HideHelpCommand: true,
		Writer:          stdout,
		ErrWriter:       stderr,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Usage: "load configuration from `FILE` (YAML, TOML or JSON)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "log debug details to stderr"},
			&cli.StringFlag{Name: "color", Usage: "colorize output: `MODE` auto, always or never"},
		},
		Commands: []*cli.Command{
			{
				Name:      "parse",
				Usage:     "Parses CSS colors and prints their normalized forms",
				ArgsUsage: "COLOR...",
				Action:    parseAction,
				Flags:     []cli.Flag{outputFlag()},
			},
			{
				Name:      "ratio",
				Usage:     "Computes the WCAG contrast ratio of two colors",
				ArgsUsage: "FOREGROUND [BACKGROUND]",
				Action:    ratioAction,
				Flags:     []cli.Flag{outputFlag(), backgroundFlag()},
			},
			{
				Name:      "best",
				Usage:     "Picks the candidate with the highest contrast against a background",
				ArgsUsage: "CANDIDATE...",
				Action:    bestAction,
				Flags:     []cli.Flag{outputFlag(), backgroundFlag()},
			},
			{
				Name:      "audit",
				Usage:     "Checks every foreground/background pair in a file",
				ArgsUsage: "FILE",
				Action:    auditAction,
				Flags: []cli.Flag{
					outputFlag(),
					backgroundFlag(),
					&cli.FloatFlag{Name: "min-ratio", Usage: "minimum passing contrast `RATIO` (1-21)"},
					&cli.StringFlag{Name: "level", Aliases: []string{"l"}, Usage: "WCAG `LEVEL` that sets the minimum ratio: aa, aa-large, aaa, aaa-large"},
					&cli.StringFlag{Name: "fields", Usage: "comma separated output `FIELDS` (index,label,fg,bg,fg_hex,bg_hex,ratio,level,pass)"},
					&cli.IntFlag{Name: "jobs", Aliases: []string{"j"}, Usage: "number of parallel `WORKERS`"},
				},
			},
			{
				Name:   "serve",
				Usage:  "Serves the JSON API over HTTP",
				Action: serveAction,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Aliases: []string{"a"}, Usage: "listen `ADDRESS`"},
					&cli.BoolFlag{Name: "open", Usage: "open the API in a browser once listening"},
				},
			},
		},
	}
}

func outputFlag() cli.Flag {
	return &cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "output `FORMAT`: table, tsv, json, ndjson, csv, md"}
}

func backgroundFlag() cli.Flag {
	return &cli.StringFlag{Name: "background", Aliases: []string{"b"}, Usage: "background `COLOR`"}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, getenv func(string) string) error {
	return newApp(stdout, stderr).Run(contextWithEnv(ctx, getenv), args)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	var err error
	defer func() {
		stop()
		if err != nil {
			if !errWasHandled {
				fmt.Fprintf(os.Stderr, "Program ended with error: %v\n", err)
			}
			os.Exit(1)
		}
	}()
	err = run(ctx, os.Args, os.Stdout, os.Stderr, os.Getenv)
}
