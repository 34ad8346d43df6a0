package audit

import (
	"context"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/csscolor"
)

// Run は各ペアの前景色・背景色を解析し、WCAG コントラスト比と判定結果を返します。
//
// 解析できなかったペアは Result.Errors に集約され、Items からは除外されます。
// 返される error は ctx のキャンセルのみを表します。
func Run(ctx context.Context, opts Options, log *zap.Logger) (*Result, error) {
	start := time.Now()
	if log == nil {
		log = zap.NewNop()
	}
	if opts.Jobs <= 0 {
		opts.Jobs = runtime.NumCPU()
	}
	if opts.MinRatio <= 0 {
		opts.MinRatio = colorutil.RatioAA
	}

	slots := make([]*Item, len(opts.Pairs))
	var errsMu sync.Mutex
	var errs []ItemError

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.Jobs)
	for i, p := range opts.Pairs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			item, itemErrs := evaluate(i, p, opts.MinRatio)
			if len(itemErrs) > 0 {
				errsMu.Lock()
				errs = append(errs, itemErrs...)
				errsMu.Unlock()
				return nil
			}
			slots[i] = &item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	res := &Result{MinRatio: opts.MinRatio, Total: len(opts.Pairs)}
	for _, it := range slots {
		if it == nil {
			continue
		}
		res.Items = append(res.Items, *it)
		if it.Pass {
			res.Passed++
		} else {
			res.Failed++
		}
	}
	sortErrors(errs)
	res.Errors = errs
	res.ElapsedMS = time.Since(start).Milliseconds()
	log.Debug("audit finished",
		zap.Int("pairs", res.Total),
		zap.Int("passed", res.Passed),
		zap.Int("failed", res.Failed),
		zap.Int("errors", len(res.Errors)),
		zap.Int64("elapsed_ms", res.ElapsedMS))
	return res, nil
}

func evaluate(index int, p Pair, minRatio float64) (Item, []ItemError) {
	var errs []ItemError
	fg, err := csscolor.Parse(p.Foreground)
	if err != nil {
		errs = append(errs, newItemError(index, "fg", p.Foreground, err))
	}
	bg, err := csscolor.Parse(p.Background)
	if err != nil {
		errs = append(errs, newItemError(index, "bg", p.Background, err))
	}
	if len(errs) > 0 {
		return Item{}, errs
	}
	fgRGB, bgRGB := fg.RGB8(), bg.RGB8()
	ratio := colorutil.ContrastRatio(fgRGB, bgRGB)
	return Item{
		Index:         index,
		Label:         p.Label,
		Foreground:    p.Foreground,
		Background:    p.Background,
		ForegroundHex: fg.Hex(),
		BackgroundHex: bg.Hex(),
		Ratio:         ratio,
		Level:         colorutil.Grade(ratio).String(),
		Pass:          ratio >= minRatio,
		FG:            fgRGB,
		BG:            bgRGB,
	}, nil
}

func sortErrors(errs []ItemError) {
	sort.SliceStable(errs, func(i, j int) bool {
		if errs[i].Index != errs[j].Index {
			return errs[i].Index < errs[j].Index
		}
		return errs[i].Side == "fg" && errs[j].Side != "fg"
	})
}

// BestResult describes the candidate chosen by Best.
type BestResult struct {
	Background string        `json:"bg"`
	Index      int           `json:"index"`
	Candidate  string        `json:"candidate"`
	Hex        string        `json:"hex"`
	Ratio      float64       `json:"ratio"`
	Level      string        `json:"level"`
	RGB        colorutil.RGB `json:"-"`
}

// Best parses background and every candidate and returns the candidate with
// the highest contrast against background. The first parse error aborts.
// With no candidates Index is -1 and the background itself is reported.
func Best(background string, candidates []string) (BestResult, error) {
	bg, err := csscolor.Parse(background)
	if err != nil {
		return BestResult{}, fmt.Errorf("background %q: %w", background, err)
	}
	initial := bg.RGB8()
	parsed := make([]csscolor.RGBA, len(candidates))
	ptrs := make([]*colorutil.RGB, len(candidates))
	for i, c := range candidates {
		v, err := csscolor.Parse(c)
		if err != nil {
			return BestResult{}, fmt.Errorf("candidate %q: %w", c, err)
		}
		parsed[i] = v
		rgb := v.RGB8()
		ptrs[i] = &rgb
	}
	chosen := colorutil.BestContrast(&initial, ptrs)
	res := BestResult{Background: background, Index: -1, Candidate: background, Hex: bg.Hex(), RGB: *chosen}
	for i, p := range ptrs {
		if p == chosen {
			res.Index = i
			res.Candidate = candidates[i]
			res.Hex = parsed[i].Hex()
			break
		}
	}
	res.Ratio = colorutil.ContrastRatio(initial, *chosen)
	res.Level = colorutil.Grade(res.Ratio).String()
	return res, nil
}
