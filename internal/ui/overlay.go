//go:build ebiten

package ui

import (
	"image/color"

	"chroma-ca/internal/core"
	"chroma-ca/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type scoreProvider interface {
	ScoreField() ([]float32, []bool)
}

// Overlay draws optional debugging visuals on top of the base simulation.
type Overlay struct {
	sim       core.Sim
	scale     int
	showAlive bool
	showScore bool

	aliveMask []float32
}

// NewOverlay constructs a new overlay instance.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	return &Overlay{sim: sim, scale: scale}
}

// Update toggles the overlays from the keyboard.
func (o *Overlay) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit1) {
		o.showAlive = !o.showAlive
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyDigit2) {
		o.showScore = !o.showScore
	}
}

// Draw renders the enabled overlays using the painter's mask layer.
func (o *Overlay) Draw(screen *ebiten.Image, painter *render.GridPainter) {
	if !o.showAlive && !o.showScore {
		return
	}
	provider, ok := o.sim.(scoreProvider)
	if !ok {
		return
	}
	scale := o.scale
	if scale <= 0 {
		scale = 1
	}
	scores, alive := provider.ScoreField()

	if o.showScore {
		// Eight fully similar neighbours saturate the tint.
		for i := range scores {
			scores[i] /= 8
		}
		painter.BlitMask(screen, scores, color.RGBA{R: 255, G: 120, B: 40}, scale)
	}
	if o.showAlive {
		if len(o.aliveMask) != len(alive) {
			o.aliveMask = make([]float32, len(alive))
		}
		for i, a := range alive {
			o.aliveMask[i] = 0
			if a {
				o.aliveMask[i] = 0.6
			}
		}
		painter.BlitMask(screen, o.aliveMask, color.RGBA{R: 64, G: 164, B: 223}, scale)
	}
}
