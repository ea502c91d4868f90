//go:build ebiten

package ui

import (
	"fmt"
	"image/color"
	"strings"

	"chroma-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD renders the parameter and statistics panel to the right of the
// simulation view.
type HUD struct {
	sim        core.Sim
	width      int
	panel      *ebiten.Image
	lastHeight int

	snapshot core.ParameterSnapshot
	stats    core.Stats
	hasStats bool
	title    string
}

// NewHUD constructs a HUD for the provided simulation and panel width.
func NewHUD(sim core.Sim, width int) *HUD {
	if width < 0 {
		width = 0
	}
	h := &HUD{sim: sim, width: width, title: buildTitle(sim)}
	if provider, ok := sim.(core.ParameterProvider); ok {
		h.snapshot = provider.Parameters()
	}
	return h
}

// Update refreshes the cached statistics from the simulation.
func (h *HUD) Update(panelOffsetX int) {
	if h == nil {
		return
	}
	if provider, ok := h.sim.(core.StatsProvider); ok {
		h.stats = provider.Stats()
		h.hasStats = true
	}
}

// Draw paints the HUD panel anchored to the right edge of the simulation view.
func (h *HUD) Draw(screen *ebiten.Image, offsetX int, scale int) {
	if h == nil || h.width <= 0 {
		return
	}
	if scale <= 0 {
		scale = 1
	}
	height := h.sim.Size().H * scale
	if height <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != h.width || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})
	h.drawLines(h.lines())
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(offsetX), 0)
	screen.DrawImage(h.panel, op)
}

type hudLine struct {
	label  string
	value  string
	header bool
}

func (h *HUD) lines() []hudLine {
	var out []hudLine
	if h.hasStats {
		out = append(out,
			hudLine{label: "Generation", header: true},
			hudLine{label: "Index", value: fmt.Sprint(h.stats.Generation)},
			hudLine{label: "Alive", value: fmt.Sprint(h.stats.Alive)},
			hudLine{label: "Births", value: fmt.Sprint(h.stats.Births)},
			hudLine{label: "Survivals", value: fmt.Sprint(h.stats.Survivals)},
			hudLine{label: "Deaths", value: fmt.Sprint(h.stats.Deaths)},
		)
	}
	for _, group := range h.snapshot.Groups {
		out = append(out, hudLine{label: group.Name, header: true})
		for _, p := range group.Params {
			out = append(out, hudLine{label: p.Label, value: p.Value})
		}
	}
	out = append(out,
		hudLine{label: "Keys", header: true},
		hudLine{label: "space pause  n step"},
		hudLine{label: "r reset  s reseed"},
		hudLine{label: "1 alive  2 score"},
	)
	return out
}

func (h *HUD) drawLines(lines []hudLine) {
	face := basicfont.Face7x13
	header := color.RGBA{R: 200, G: 200, B: 210, A: 255}
	label := color.RGBA{R: 160, G: 160, B: 170, A: 255}
	value := color.RGBA{R: 220, G: 220, B: 230, A: 255}

	y := panelPadding + headerBaseline
	text.Draw(h.panel, h.title, face, panelPadding, y, header)
	for _, line := range lines {
		if line.header {
			y += sectionGap
		}
		y += lineHeight
		if y > h.lastHeight {
			return
		}
		if line.header {
			text.Draw(h.panel, line.label, face, panelPadding, y, header)
			continue
		}
		text.Draw(h.panel, line.label, face, panelPadding+indent, y, label)
		if line.value == "" {
			continue
		}
		w := text.BoundString(face, line.value).Dx()
		text.Draw(h.panel, line.value, face, h.width-panelPadding-w, y, value)
	}
}

func buildTitle(sim core.Sim) string {
	if sim == nil || sim.Name() == "" {
		return "Simulation"
	}
	name := sim.Name()
	return strings.ToUpper(name[:1]) + name[1:]
}

const (
	panelPadding   = 12
	headerBaseline = 18
	lineHeight     = 16
	sectionGap     = 8
	indent         = 8
)
