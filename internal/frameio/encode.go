package frameio

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"chroma-ca/internal/core"
	"chroma-ca/internal/render"
)

// FramePath returns the file name of frame index under prefix, e.g.
// "output/" and 7 give "output/0007.png".
func FramePath(prefix string, index int) string {
	return fmt.Sprintf("%s%04d.png", prefix, index)
}

// PNGSink writes each frame to its own numbered PNG file.
type PNGSink struct {
	Prefix string

	encoder png.Encoder
	written int
}

// NewPNGSink returns a sink writing frames under prefix.
func NewPNGSink(prefix string) *PNGSink {
	return &PNGSink{Prefix: prefix, encoder: png.Encoder{CompressionLevel: png.BestSpeed}}
}

// WriteFrame encodes g as frame index. The parent directory is created on
// demand.
func (s *PNGSink) WriteFrame(index int, g *core.Grid) error {
	path := FramePath(s.Prefix, index)
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := s.encoder.Encode(f, render.Image(g)); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	s.written++
	return nil
}

// Written reports how many frames have been written successfully.
func (s *PNGSink) Written() int { return s.written }
