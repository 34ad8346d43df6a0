package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"github.com/phyten/contrastx/internal/audit"
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/csscolor"
	"github.com/phyten/contrastx/internal/output"
)

type parsedColor struct {
	Input string  `json:"input"`
	Hex   string  `json:"hex"`
	CSS   string  `json:"css"`
	R     uint8   `json:"r"`
	G     uint8   `json:"g"`
	B     uint8   `json:"b"`
	A     float64 `json:"a"`
}

type ratioResult struct {
	Foreground string  `json:"fg"`
	Background string  `json:"bg"`
	FGHex      string  `json:"fg_hex"`
	BGHex      string  `json:"bg_hex"`
	Ratio      float64 `json:"ratio"`
	Level      string  `json:"level"`
}

func parseAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() == 0 {
		return errors.New("parse: at least one COLOR is required")
	}
	settings, err := checkSettings(ctx, cmd)
	if err != nil {
		return err
	}
	log := envFromContext(ctx).Log
	term := newTerminal(ctx, cmd, settings.Color)

	parsed := make([]parsedColor, 0, cmd.NArg())
	var rgbs []colorutil.RGB
	var errs error
	for _, arg := range cmd.Args().Slice() {
		c, err := csscolor.Parse(arg)
		if err != nil {
			log.Debug("parse failed", zap.String("input", arg), zap.Error(err))
			errs = multierr.Append(errs, fmt.Errorf("%q: %w", arg, err))
			continue
		}
		rgb := c.RGB8()
		rgbs = append(rgbs, rgb)
		parsed = append(parsed, parsedColor{Input: arg, Hex: c.Hex(), CSS: c.String(), R: rgb.R, G: rgb.G, B: rgb.B, A: c.A})
	}

	switch settings.Output {
	case "json":
		if err := writeJSONValue(term.w, parsed, true); err != nil {
			return err
		}
	case "ndjson":
		for _, p := range parsed {
			if err := writeJSONValue(term.w, p, false); err != nil {
				return err
			}
		}
	default:
		rows := make([][]string, len(parsed))
		color := term.color && settings.Output == "table"
		for i, p := range parsed {
			hex := output.PaintSwatch(rgbs[i], p.Hex, term.profile, color)
			rows[i] = []string{p.Input, hex, p.CSS, strconv.FormatFloat(p.A, 'f', -1, 64)}
		}
		if err := output.WriteRecords(term.w, settings.Output, []string{"INPUT", "HEX", "CSS", "ALPHA"}, rows, color, "ALPHA"); err != nil {
			return err
		}
	}
	return errs
}

func ratioAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() < 1 || cmd.NArg() > 2 {
		return errors.New("ratio: expected FOREGROUND [BACKGROUND]")
	}
	settings, err := checkSettings(ctx, cmd)
	if err != nil {
		return err
	}
	term := newTerminal(ctx, cmd, settings.Color)
	fgText := cmd.Args().Get(0)
	bgText := cmd.Args().Get(1)
	if bgText == "" {
		bgText = term.bgText(settings.Background)
	}
	fg, err := csscolor.Parse(fgText)
	if err != nil {
		return fmt.Errorf("foreground %q: %w", fgText, err)
	}
	bg, err := csscolor.Parse(bgText)
	if err != nil {
		return fmt.Errorf("background %q: %w", bgText, err)
	}
	ratio := colorutil.ContrastRatio(fg.RGB8(), bg.RGB8())
	res := ratioResult{
		Foreground: fgText,
		Background: bgText,
		FGHex:      fg.Hex(),
		BGHex:      bg.Hex(),
		Ratio:      ratio,
		Level:      colorutil.Grade(ratio).String(),
	}
	envFromContext(ctx).Log.Debug("ratio computed", zap.String("fg", res.FGHex), zap.String("bg", res.BGHex), zap.Float64("ratio", ratio))

	switch settings.Output {
	case "json":
		return writeJSONValue(term.w, res, true)
	case "ndjson":
		return writeJSONValue(term.w, res, false)
	}
	color := term.color && settings.Output == "table"
	row := []string{
		output.PaintSwatch(fg.RGB8(), fgText, term.profile, color),
		output.PaintSwatch(bg.RGB8(), bgText, term.profile, color),
		output.PaintRatio(ratio, term.profile, color),
		res.Level,
	}
	return output.WriteRecords(term.w, settings.Output, []string{"FG", "BG", "RATIO", "LEVEL"}, [][]string{row}, color, "RATIO")
}

func bestAction(ctx context.Context, cmd *cli.Command) error {
	settings, err := checkSettings(ctx, cmd)
	if err != nil {
		return err
	}
	term := newTerminal(ctx, cmd, settings.Color)
	candidates := cmd.Args().Slice()
	if len(candidates) == 0 {
		candidates = settings.Candidates
	}
	bgText := term.bgText(settings.Background)
	res, err := audit.Best(bgText, candidates)
	if err != nil {
		return err
	}
	envFromContext(ctx).Log.Debug("best candidate",
		zap.String("bg", bgText),
		zap.Int("candidates", len(candidates)),
		zap.Int("index", res.Index),
		zap.Float64("ratio", res.Ratio))

	switch settings.Output {
	case "json":
		return writeJSONValue(term.w, res, true)
	case "ndjson":
		return writeJSONValue(term.w, res, false)
	}
	color := term.color && settings.Output == "table"
	row := []string{
		strconv.Itoa(res.Index),
		output.PaintSwatch(res.RGB, res.Candidate, term.profile, color),
		res.Hex,
		output.PaintRatio(res.Ratio, term.profile, color),
		res.Level,
	}
	return output.WriteRecords(term.w, settings.Output, []string{"INDEX", "CANDIDATE", "HEX", "RATIO", "LEVEL"}, [][]string{row}, color, "INDEX", "RATIO")
}

func auditAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.NArg() != 1 {
		return errors.New("audit: expected exactly one FILE")
	}
	settings, err := checkSettings(ctx, cmd)
	if err != nil {
		return err
	}
	log := envFromContext(ctx).Log
	term := newTerminal(ctx, cmd, settings.Color)

	pairs, err := audit.LoadPairs(cmd.Args().First())
	if err != nil {
		return fmt.Errorf("unable to load pairs: %w", err)
	}
	if missing := audit.FillBackground(pairs, settings.Background); missing > 0 {
		log.Warn("Pairs without background", zap.Int("count", missing))
	}
	sel, err := output.ResolveFields(settings.Fields, hasLabels(pairs))
	if err != nil {
		return err
	}
	res, err := audit.Run(ctx, audit.Options{Pairs: pairs, MinRatio: settings.MinRatio, Jobs: settings.Jobs}, log)
	if err != nil {
		return err
	}
	for _, e := range res.Errors {
		log.Warn("Unable to evaluate pair", zap.Int("index", e.Index), zap.String("side", e.Side), zap.String("input", e.Input), zap.String("kind", e.Kind), zap.String("reason", e.Reason))
	}

	switch settings.Output {
	case "json":
		err = output.WriteJSON(term.w, res)
	case "ndjson":
		err = output.WriteNDJSON(term.w, res.Items)
	case "csv":
		err = output.WriteCSV(term.w, res.Items, sel)
	case "tsv":
		err = output.WriteTSV(term.w, res.Items, sel)
	case "md":
		err = output.WriteMarkdownTable(term.w, res.Items, sel)
	default:
		err = output.WriteTable(term.w, res.Items, sel, output.TableOptions{Color: term.color, Profile: term.profile, LabelWidth: 40})
		if err == nil {
			_, err = fmt.Fprintf(term.w, "\n%d passed, %d failed, %d invalid (minimum %s)\n",
				res.Passed, res.Failed, len(res.Errors), output.FormatRatio(res.MinRatio))
		}
	}
	if err != nil {
		return err
	}

	var result error
	if res.Failed > 0 {
		result = multierr.Append(result, fmt.Errorf("%d of %d pairs below %s", res.Failed, res.Total, output.FormatRatio(res.MinRatio)))
	}
	return multierr.Append(result, res.Err())
}

func hasLabels(pairs []audit.Pair) bool {
	for _, p := range pairs {
		if p.Label != "" {
			return true
		}
	}
	return false
}

func writeJSONValue(w io.Writer, v any, indent bool) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}
