package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"

	"github.com/phyten/contrastx/internal/audit"
	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/csscolor"
)

type parseResponse struct {
	Input  string  `json:"input"`
	Hex    string  `json:"hex"`
	CSS    string  `json:"css"`
	R      uint8   `json:"r"`
	G      uint8   `json:"g"`
	B      uint8   `json:"b"`
	A      float64 `json:"a"`
	Opaque bool    `json:"opaque"`
}

type contrastResponse struct {
	Foreground string  `json:"fg"`
	Background string  `json:"bg"`
	FGHex      string  `json:"fg_hex"`
	BGHex      string  `json:"bg_hex"`
	Ratio      float64 `json:"ratio"`
	Level      string  `json:"level"`
	AA         bool    `json:"aa"`
	AAA        bool    `json:"aaa"`
}

type auditRequest struct {
	Pairs      []audit.Pair `json:"pairs"`
	MinRatio   float64      `json:"min_ratio"`
	Background string       `json:"background"`
}

func (h *Handler) handleParse(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("color")
	if strings.TrimSpace(input) == "" {
		writeError(w, http.StatusBadRequest, errors.New("color is required"))
		return
	}
	c, err := csscolor.Parse(input)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rgb := c.RGB8()
	writeJSON(w, http.StatusOK, parseResponse{
		Input:  input,
		Hex:    c.Hex(),
		CSS:    c.String(),
		R:      rgb.R,
		G:      rgb.G,
		B:      rgb.B,
		A:      c.A,
		Opaque: c.Opaque(),
	})
}

func (h *Handler) handleContrast(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	fgText := q.Get("fg")
	bgText := h.background(q.Get("bg"))
	if strings.TrimSpace(fgText) == "" || bgText == "" {
		writeError(w, http.StatusBadRequest, errors.New("fg and bg are required"))
		return
	}
	fg, err := csscolor.Parse(fgText)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("fg: %w", err))
		return
	}
	bg, err := csscolor.Parse(bgText)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("bg: %w", err))
		return
	}
	ratio := colorutil.ContrastRatio(fg.RGB8(), bg.RGB8())
	writeJSON(w, http.StatusOK, contrastResponse{
		Foreground: fgText,
		Background: bgText,
		FGHex:      fg.Hex(),
		BGHex:      bg.Hex(),
		Ratio:      round2(ratio),
		Level:      colorutil.Grade(ratio).String(),
		AA:         ratio >= colorutil.RatioAA,
		AAA:        ratio >= colorutil.RatioAAA,
	})
}

func (h *Handler) handleBest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	bgText := h.background(q.Get("bg"))
	if bgText == "" {
		writeError(w, http.StatusBadRequest, errors.New("bg is required"))
		return
	}
	candidates := config.SplitMulti(q["candidate"])
	res, err := audit.Best(bgText, candidates)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res.Ratio = round2(res.Ratio)
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) handleAudit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req auditRequest
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}
	if len(req.Pairs) == 0 {
		writeError(w, http.StatusBadRequest, errors.New("pairs must not be empty"))
		return
	}
	bg := h.background(req.Background)
	for i := range req.Pairs {
		if strings.TrimSpace(req.Pairs[i].Background) == "" {
			req.Pairs[i].Background = bg
		}
	}
	minRatio := req.MinRatio
	if minRatio == 0 {
		minRatio = h.Defaults.MinRatio
	}
	if minRatio != 0 && (minRatio < 1 || minRatio > 21) {
		writeError(w, http.StatusBadRequest, errors.New("min_ratio must be between 1 and 21"))
		return
	}
	res, err := audit.Run(r.Context(), audit.Options{Pairs: req.Pairs, MinRatio: minRatio, Jobs: h.Defaults.Jobs}, h.Log)
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) background(v string) string {
	if v = strings.TrimSpace(v); v != "" {
		return v
	}
	return strings.TrimSpace(h.Defaults.Background)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
