//go:build ebiten

package render

import (
	"image/color"

	"chroma-ca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter uploads colour grids into a single ebiten image.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte

	mask    *ebiten.Image
	maskBuf []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *core.Grid, scale int) {
	if g == nil || g.W != gp.w || g.H != gp.h {
		return
	}
	FillRGBA(gp.buf, g.Cells())
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// BlitMask draws a translucent tint over cells where mask is positive.
func (gp *GridPainter) BlitMask(dst *ebiten.Image, mask []float32, tint color.RGBA, scale int) {
	if len(mask) != gp.w*gp.h {
		return
	}
	if gp.mask == nil {
		gp.mask = ebiten.NewImage(gp.w, gp.h)
		gp.maskBuf = make([]byte, 4*gp.w*gp.h)
	}
	fillMaskRGBA(gp.maskBuf, mask, tint.R, tint.G, tint.B)
	gp.mask.WritePixels(gp.maskBuf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.mask, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
