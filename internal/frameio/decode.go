// Package frameio reads seed images into colour grids and writes generations
// out as numbered PNG frames.
package frameio

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"

	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Stdin is the input source name that selects standard input.
const Stdin = "-"

// ErrNoInput is returned by Open for an empty source name.
var ErrNoInput = errors.New("frameio: no input source")

// Seeding controls how decoded pixels become grid colours.
type Seeding struct {
	// Threshold zeroes pixels whose colour length is below it.
	Threshold float64
	ClampMin  float64
	ClampMax  float64
	// Fit resizes the image to Width x Height when set.
	Fit           bool
	Width, Height int
}

// Open returns a reader for the named source. "-" selects stdin, which is
// never closed by the returned ReadCloser.
func Open(source string, stdin io.Reader) (io.ReadCloser, error) {
	switch source {
	case "":
		return nil, ErrNoInput
	case Stdin:
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Decode reads an image in any registered format (PNG, JPEG, GIF, BMP,
// TIFF, WebP) and converts it into a grid.
func Decode(r io.Reader, s Seeding) (*core.Grid, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if s.Fit {
		img, err = Fit(img, s.Width, s.Height)
		if err != nil {
			return nil, format, err
		}
	}
	return ToGrid(img, s), format, nil
}

// Fit resamples img to exactly w x h.
func Fit(img image.Image, w, h int) (image.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("frameio: cannot fit image to %dx%d", w, h)
	}
	b := img.Bounds()
	if b.Dx() == w && b.Dy() == h {
		return img, nil
	}
	return transform.Resize(img, w, h, transform.Lanczos), nil
}

// ToGrid converts every pixel to the colour model, then applies the seeding
// threshold followed by the clamp.
func ToGrid(img image.Image, s Seeding) *core.Grid {
	b := img.Bounds()
	g := core.NewGrid(b.Dx(), b.Dy())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := rgb.FromColor(img.At(b.Min.X+x, b.Min.Y+y))
			g.Set(x, y, c.Threshold(s.Threshold).Clamp(s.ClampMin, s.ClampMax))
		}
	}
	return g
}
