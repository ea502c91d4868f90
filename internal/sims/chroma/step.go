package chroma

import (
	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

// Step computes the generation after prev into next and returns a summary
// of what happened. next is cleared first and must be a distinct grid of the
// same size; prev is only read.
func Step(prev, next *core.Grid, p Params) core.Stats {
	if prev == next {
		panic("chroma: Step called with aliased buffers")
	}
	if prev.W != next.W || prev.H != next.H {
		panic("chroma: Step called with mismatched grid sizes")
	}
	next.Clear()

	var stats core.Stats
	for y := 0; y < prev.H; y++ {
		for x := 0; x < prev.W; x++ {
			current, _ := prev.At(x, y)
			st := Evaluate(prev, x, y, current, p)

			var out rgb.Color
			switch {
			case st.Alive && st.Neighborhood >= 2 && st.Neighborhood <= 3:
				out = current
				stats.Survivals++
			case !st.Alive && st.Neighborhood == 3:
				out = st.NeighborhoodColor.Clamp(p.ClampMin, p.ClampMax)
				stats.Births++
			case st.Alive:
				stats.Deaths++
			}
			if out.Length() > p.AliveThreshold {
				stats.Alive++
			}
			next.Set(x, y, out)
		}
	}
	return stats
}
