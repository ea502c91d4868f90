package frameio

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"

	"golang.org/x/image/bmp"
)

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(img.Pix); i += 4 {
		img.Pix[i] = 255
	}
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{R: 20, G: 20, B: 20, A: 255})
	img.SetNRGBA(2, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
	return img
}

func TestFramePath(t *testing.T) {
	if got := FramePath("output/", 7); got != "output/0007.png" {
		t.Fatalf("FramePath = %q", got)
	}
	if got := FramePath("run-", 12345); got != "run-12345.png" {
		t.Fatalf("FramePath = %q", got)
	}
}

func TestDecodeAppliesThresholdThenClamp(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}

	g, format, err := Decode(&buf, Seeding{Threshold: 0.25, ClampMin: 0, ClampMax: 0.5})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "png" {
		t.Fatalf("format = %q", format)
	}
	if g.W != 3 || g.H != 2 {
		t.Fatalf("size = %dx%d", g.W, g.H)
	}
	if c, _ := g.At(0, 0); c != (rgb.Color{R: 0.5}) {
		t.Fatalf("red pixel = %v, want clamped 0.5", c)
	}
	if c, _ := g.At(1, 0); c != rgb.Black {
		t.Fatalf("dim pixel should be thresholded away, got %v", c)
	}
	if c, _ := g.At(2, 1); c != (rgb.Color{R: 0.5, G: 0.5, B: 0.5}) {
		t.Fatalf("white pixel = %v", c)
	}
}

func TestDecodeBMP(t *testing.T) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	g, format, err := Decode(&buf, Seeding{ClampMax: 1})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if format != "bmp" || g.W != 3 || g.H != 2 {
		t.Fatalf("format=%q size=%dx%d", format, g.W, g.H)
	}
}

func TestDecodeFitResizes(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, testImage()); err != nil {
		t.Fatal(err)
	}
	g, _, err := Decode(&buf, Seeding{ClampMax: 1, Fit: true, Width: 12, Height: 8})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if g.W != 12 || g.H != 8 {
		t.Fatalf("size = %dx%d, want 12x8", g.W, g.H)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, _, err := Decode(strings.NewReader("not an image"), Seeding{}); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestOpenSources(t *testing.T) {
	if _, err := Open("", nil); !errors.Is(err, ErrNoInput) {
		t.Fatalf("Open(\"\") err = %v", err)
	}
	rc, err := Open(Stdin, strings.NewReader("payload"))
	if err != nil {
		t.Fatalf("Open(stdin): %v", err)
	}
	data, _ := io.ReadAll(rc)
	rc.Close()
	if string(data) != "payload" {
		t.Fatalf("stdin data = %q", data)
	}
	if _, err := Open(filepath.Join(t.TempDir(), "missing.png"), nil); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPNGSinkWritesNumberedFrames(t *testing.T) {
	prefix := filepath.Join(t.TempDir(), "frames") + string(filepath.Separator)
	sink := NewPNGSink(prefix)

	g := core.NewGrid(4, 3)
	g.Set(1, 1, rgb.Green)
	for i := 0; i < 3; i++ {
		if err := sink.WriteFrame(i, g); err != nil {
			t.Fatalf("WriteFrame(%d): %v", i, err)
		}
	}
	if sink.Written() != 3 {
		t.Fatalf("written = %d", sink.Written())
	}

	f, err := os.Open(FramePath(prefix, 2))
	if err != nil {
		t.Fatalf("open frame: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode frame: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("frame bounds = %v", b)
	}
	if r, g, b, _ := img.At(1, 1).RGBA(); r != 0 || g != 0xffff || b != 0 {
		t.Fatalf("frame pixel = %d,%d,%d", r, g, b)
	}
}

func TestPNGSinkFailsOnUnwritablePrefix(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	sink := NewPNGSink(blocker + string(filepath.Separator))
	if err := sink.WriteFrame(0, core.NewGrid(1, 1)); err == nil {
		t.Fatal("expected error when the prefix directory is a file")
	}
}
