package core

import "chroma-ca/internal/rgb"

// Grid stores a 2D grid of colours in row-major order. Lookups outside the
// grid report absence; there is no wraparound.
type Grid struct {
	W, H int
	data []rgb.Color
}

// NewGrid allocates a zeroed grid with the given dimensions.
func NewGrid(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, data: make([]rgb.Color, w*h)}
}

// Size reports the grid dimensions.
func (g *Grid) Size() Size { return Size{W: g.W, H: g.H} }

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []rgb.Color { return g.data }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// In reports whether (x, y) lies inside the grid.
func (g *Grid) In(x, y int) bool { return x >= 0 && x < g.W && y >= 0 && y < g.H }

// At returns the colour at (x, y) and false when the coordinate is outside
// the grid.
func (g *Grid) At(x, y int) (rgb.Color, bool) {
	if !g.In(x, y) {
		return rgb.Black, false
	}
	return g.data[y*g.W+x], true
}

// Set stores c at (x, y). Out-of-range coordinates are ignored.
func (g *Grid) Set(x, y int, c rgb.Color) {
	if !g.In(x, y) {
		return
	}
	g.data[y*g.W+x] = c
}

// Clear fills the grid with the zero colour.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = rgb.Black
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{W: g.W, H: g.H, data: make([]rgb.Color, len(g.data))}
	copy(out.data, g.data)
	return out
}

// CopyFrom overwrites g with src. It reports false when the sizes differ.
func (g *Grid) CopyFrom(src *Grid) bool {
	if src == nil || src.W != g.W || src.H != g.H {
		return false
	}
	copy(g.data, src.data)
	return true
}

// Equal reports whether both grids have the same size and bit-identical
// cells.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, c := range g.data {
		if c != o.data[i] {
			return false
		}
	}
	return true
}
