// Package life runs the classic Conway rule on a colour grid: any non-black
// pixel is alive and every surviving or newborn cell is painted white.
package life

import (
	"fmt"
	"strconv"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

// Config holds parameters for the classic rule.
type Config struct {
	Width  int
	Height int
	Seed   int64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 256, Seed: 42}
}

// FromMap populates a Config from a string map. Keys belonging to other
// rules are ignored.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	return c
}

// Life implements Conway's Game of Life without wraparound.
type Life struct {
	seed int64
	cur  *core.Grid
	nxt  *core.Grid

	stats core.Stats
}

// New returns a Life simulation with the provided dimensions.
func New(w, h int) *Life {
	cur := core.NewGrid(w, h)
	return &Life{seed: DefaultConfig().Seed, cur: cur, nxt: core.NewGrid(cur.W, cur.H)}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return l.cur.Size() }

// Grid exposes the current generation.
func (l *Life) Grid() *core.Grid { return l.cur }

// Stats reports the summary of the most recent generation.
func (l *Life) Stats() core.Stats { return l.stats }

// Reset randomizes the board with white cells using the provided seed.
func (l *Life) Reset(seed int64) {
	if seed == 0 {
		seed = l.seed
	}
	rng := core.NewRNG(seed)
	cells := l.cur.Cells()
	for i := range cells {
		cells[i] = rgb.Black
		if rng.Bool() {
			cells[i] = rgb.White
		}
	}
	l.stats = core.Stats{Alive: l.population()}
}

// Load replaces the current generation with a copy of g.
func (l *Life) Load(g *core.Grid) error {
	if !l.cur.CopyFrom(g) {
		return fmt.Errorf("life: grid %dx%d does not match world %dx%d", g.W, g.H, l.cur.W, l.cur.H)
	}
	l.stats = core.Stats{Alive: l.population()}
	return nil
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	w, h := l.cur.W, l.cur.H
	stats := core.Stats{Generation: l.stats.Generation + 1}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			neighbors := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					if dx == 0 && dy == 0 {
						continue
					}
					if c, ok := l.cur.At(x+dx, y+dy); ok && alive(c) {
						neighbors++
					}
				}
			}
			c, _ := l.cur.At(x, y)
			was := alive(c)
			next := rgb.Black
			switch {
			case was && (neighbors == 2 || neighbors == 3):
				next = rgb.White
				stats.Survivals++
			case !was && neighbors == 3:
				next = rgb.White
				stats.Births++
			case was:
				stats.Deaths++
			}
			if next == rgb.White {
				stats.Alive++
			}
			l.nxt.Set(x, y, next)
		}
	}
	l.stats = stats
	l.cur, l.nxt = l.nxt, l.cur
}

func (l *Life) population() int {
	n := 0
	for _, c := range l.cur.Cells() {
		if alive(c) {
			n++
		}
	}
	return n
}

func alive(c rgb.Color) bool { return c.R > 0 || c.G > 0 || c.B > 0 }

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		c := FromMap(cfg)
		l := New(c.Width, c.Height)
		l.seed = c.Seed
		return l, nil
	})
}
