package chroma

import (
	"math"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

// CellState is derived for one coordinate from the previous generation.
type CellState struct {
	Alive bool
	// Neighborhood is the sum of similarities to the present neighbours,
	// rounded to four decimal places.
	Neighborhood float64
	// NeighborhoodColor is the similarity-weighted average of the neighbours
	// whose similarity reached the cutoff.
	NeighborhoodColor rgb.Color
}

// Evaluate inspects the Moore neighbourhood of (x, y) in prev. current is
// the colour similarity is measured from; the stepper passes the cell's
// previous colour.
func Evaluate(prev *core.Grid, x, y int, current rgb.Color, p Params) CellState {
	var st CellState
	if c, ok := prev.At(x, y); ok && c.Length() > p.AliveThreshold {
		st.Alive = true
	}

	var sum rgb.Color
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			neighbor, ok := prev.At(x+dx, y+dy)
			if !ok {
				continue
			}
			similarity := rgb.Similarity(current, neighbor)
			st.Neighborhood += similarity
			if similarity >= p.SimilarityCutoff {
				sum = sum.Add(neighbor)
			}
		}
	}

	st.Neighborhood = roundScore(st.Neighborhood)
	if st.Neighborhood != 0 {
		st.NeighborhoodColor = sum.Div(st.Neighborhood)
	}
	return st
}

func roundScore(v float64) float64 {
	return math.Round(v*10000) / 10000
}
