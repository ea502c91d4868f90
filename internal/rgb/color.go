// Package rgb implements the floating-point colour vectors that make up a
// chroma generation.
package rgb

import (
	"image/color"
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r3"
)

// Color is an RGB colour with float64 channels, conventionally in [0,1].
// Channels are not clamped on construction.
type Color struct {
	R, G, B float64
}

var (
	// Black is the zero colour.
	Black = Color{}
	// White is the unit colour on every channel.
	White = Color{R: 1, G: 1, B: 1}
	// Red, Green and Blue are the unit basis colours.
	Red   = Color{R: 1}
	Green = Color{G: 1}
	Blue  = Color{B: 1}
)

func (c Color) vec() r3.Vec { return r3.Vec{X: c.R, Y: c.G, Z: c.B} }

func fromVec(v r3.Vec) Color { return Color{R: v.X, G: v.Y, B: v.Z} }

// Length returns the Euclidean norm of the three channels.
func (c Color) Length() float64 { return r3.Norm(c.vec()) }

// IsZero reports whether every channel is exactly zero.
func (c Color) IsZero() bool { return c.R == 0 && c.G == 0 && c.B == 0 }

// Normalize returns c scaled to unit length. The zero colour normalizes to
// itself.
func (c Color) Normalize() Color {
	if c.Length() == 0 {
		return Black
	}
	return fromVec(r3.Unit(c.vec()))
}

// Dot returns the channel-wise product sum of c and o.
func (c Color) Dot(o Color) float64 { return r3.Dot(c.vec(), o.vec()) }

// Add returns c + o.
func (c Color) Add(o Color) Color { return fromVec(r3.Add(c.vec(), o.vec())) }

// Div divides every channel by s. Dividing by zero yields the zero colour.
func (c Color) Div(s float64) Color {
	if s == 0 {
		return Black
	}
	return fromVec(r3.Scale(1/s, c.vec()))
}

// Clamp limits every channel to [lo, hi].
func (c Color) Clamp(lo, hi float64) Color {
	return Color{
		R: clamp(c.R, lo, hi),
		G: clamp(c.G, lo, hi),
		B: clamp(c.B, lo, hi),
	}
}

// Threshold returns c when its length is at least t and the zero colour
// otherwise.
func (c Color) Threshold(t float64) Color {
	if c.Length() >= t {
		return c
	}
	return Black
}

// Similarity returns the cosine similarity between current and neighbor.
// A zero neighbour contributes nothing. A zero current colour has no
// direction, so any non-zero neighbour counts as fully similar.
func Similarity(current, neighbor Color) float64 {
	if neighbor.IsZero() {
		return 0
	}
	if current.IsZero() {
		return 1
	}
	return current.Normalize().Dot(neighbor.Normalize())
}

// Random returns a colour with three independent uniform samples in [0,1).
func Random(r *rand.Rand) Color {
	return Color{R: r.Float64(), G: r.Float64(), B: r.Float64()}
}

// FromColor converts any image colour into the [0,1] float model. Alpha is
// ignored after un-premultiplying.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
	}
}

// NRGBA converts c to an opaque 8-bit colour, clamping channels to [0,1].
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8bit(c.R), G: to8bit(c.G), B: to8bit(c.B), A: 255}
}

func to8bit(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	return uint8(math.Round(clamp(v, 0, 1) * 255))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
