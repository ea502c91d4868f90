package chroma

import (
	"fmt"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

// World runs the continuous-colour life rule on a pair of grids. The
// current generation is only ever replaced by a fully computed one.
type World struct {
	cfg Config

	cur *core.Grid
	nxt *core.Grid

	stats core.Stats
}

// New returns a chroma simulation with the provided dimensions using defaults.
func New(w, h int) *World {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a chroma world configured from the provided options.
func NewWithConfig(cfg Config) *World {
	cur := core.NewGrid(cfg.Width, cfg.Height)
	cfg.Width, cfg.Height = cur.W, cur.H
	return &World{
		cfg: cfg,
		cur: cur,
		nxt: core.NewGrid(cur.W, cur.H),
	}
}

// Name returns the simulation identifier.
func (w *World) Name() string { return "chroma" }

// Size reports the grid dimensions.
func (w *World) Size() core.Size { return w.cur.Size() }

// Grid exposes the current generation.
func (w *World) Grid() *core.Grid { return w.cur }

// Params returns the rule parameters.
func (w *World) Params() Params { return w.cfg.Params }

// Stats reports the summary of the most recent generation.
func (w *World) Stats() core.Stats { return w.stats }

// Reset seeds generation zero: each cell independently receives a random
// colour with probability SeedDensity and stays black otherwise. A zero seed
// falls back to the configured one.
func (w *World) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = w.cfg.Seed
	}
	rng := core.NewRNG(effective)
	cells := w.cur.Cells()
	for i := range cells {
		cells[i] = rgb.Black
		if rng.Chance(w.cfg.Params.SeedDensity) {
			cells[i] = rgb.Random(rng.Source())
		}
	}
	w.nxt.Clear()
	w.stats = w.census()
}

// Load replaces generation zero with a copy of g.
func (w *World) Load(g *core.Grid) error {
	if !w.cur.CopyFrom(g) {
		return fmt.Errorf("chroma: grid %dx%d does not match world %dx%d", g.W, g.H, w.cur.W, w.cur.H)
	}
	w.nxt.Clear()
	w.stats = w.census()
	return nil
}

// Step advances the simulation by one generation.
func (w *World) Step() {
	gen := w.stats.Generation + 1
	w.stats = Step(w.cur, w.nxt, w.cfg.Params)
	w.stats.Generation = gen
	w.cur, w.nxt = w.nxt, w.cur
}

func (w *World) census() core.Stats {
	var s core.Stats
	for _, c := range w.cur.Cells() {
		if c.Length() > w.cfg.Params.AliveThreshold {
			s.Alive++
		}
	}
	return s
}

// ScoreField evaluates every cell of the current generation and returns the
// neighbourhood scores together with a liveness mask, both in row-major
// order. The grid is not modified.
func (w *World) ScoreField() ([]float32, []bool) {
	g := w.cur
	scores := make([]float32, g.W*g.H)
	alive := make([]bool, g.W*g.H)
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			current, _ := g.At(x, y)
			st := Evaluate(g, x, y, current, w.cfg.Params)
			idx := g.Index(x, y)
			scores[idx] = float32(st.Neighborhood)
			alive[idx] = st.Alive
		}
	}
	return scores, alive
}

func init() {
	core.Register("chroma", func(cfg map[string]string) (core.Sim, error) {
		c, err := ParseConfig(cfg)
		if err != nil {
			return nil, err
		}
		return NewWithConfig(c), nil
	})
}
