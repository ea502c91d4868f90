package render

import (
	"image"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

// FillRGBA converts colour cells into opaque 8-bit RGBA pixels in buf.
// Channels are clamped to [0,1] before quantisation.
func FillRGBA(buf []byte, cells []rgb.Color) {
	for i, c := range cells {
		base := i * 4
		n := c.NRGBA()
		buf[base+0] = n.R
		buf[base+1] = n.G
		buf[base+2] = n.B
		buf[base+3] = n.A
	}
}

// Image renders the grid into a new NRGBA image of the same size.
func Image(g *core.Grid) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, g.W, g.H))
	FillRGBA(img.Pix, g.Cells())
	return img
}

// fillMaskRGBA tints buf with col where the mask is set, scaling alpha by the
// mask value clamped to [0,1]; unset cells become transparent.
func fillMaskRGBA(buf []byte, mask []float32, r, g, b uint8) {
	for i, v := range mask {
		base := i * 4
		if v <= 0 {
			buf[base+0], buf[base+1], buf[base+2], buf[base+3] = 0, 0, 0, 0
			continue
		}
		if v > 1 {
			v = 1
		}
		a := uint8(v*200 + 0.5)
		// Premultiplied for ebiten.
		buf[base+0] = uint8(uint16(r) * uint16(a) / 255)
		buf[base+1] = uint8(uint16(g) * uint16(a) / 255)
		buf[base+2] = uint8(uint16(b) * uint16(a) / 255)
		buf[base+3] = a
	}
}
