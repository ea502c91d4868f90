package batch

import (
	"bytes"
	"errors"
	"flag"
	"image"
	"image/color"
	"image/png"
	"strings"
	"testing"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
	_ "chroma-ca/internal/sims/life"
)

type memSink struct {
	indices []int
	frames  []*core.Grid
	failAt  int
}

func (m *memSink) WriteFrame(index int, g *core.Grid) error {
	if m.failAt > 0 && index == m.failAt {
		return errors.New("disk full")
	}
	m.indices = append(m.indices, index)
	m.frames = append(m.frames, g.Clone())
	return nil
}

func smallConfig() Config {
	cfg := *NewConfig()
	cfg.Width = 6
	cfg.Height = 4
	cfg.Generations = 5
	return cfg
}

func encodePNG(t *testing.T, img image.Image) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return &buf
}

func TestRunWritesEveryGeneration(t *testing.T) {
	sink := &memSink{}
	stats, err := Run(smallConfig(), sink)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(sink.indices) != 5 {
		t.Fatalf("wrote %d frames, want 5", len(sink.indices))
	}
	for i, idx := range sink.indices {
		if idx != i {
			t.Fatalf("frame %d has index %d", i, idx)
		}
		if f := sink.frames[i]; f.W != 6 || f.H != 4 {
			t.Fatalf("frame %d size %dx%d", i, f.W, f.H)
		}
	}
	if stats.Generation != 4 {
		t.Fatalf("final stats generation = %d", stats.Generation)
	}
}

func TestRunIsDeterministicForSeed(t *testing.T) {
	a, b := &memSink{}, &memSink{}
	if _, err := Run(smallConfig(), a); err != nil {
		t.Fatal(err)
	}
	if _, err := Run(smallConfig(), b); err != nil {
		t.Fatal(err)
	}
	for i := range a.frames {
		if !a.frames[i].Equal(b.frames[i]) {
			t.Fatalf("frame %d differs between identical runs", i)
		}
	}
}

func TestRunAllZeroSeedStaysZero(t *testing.T) {
	cfg := smallConfig()
	cfg.Density = 0
	sink := &memSink{}
	if _, err := Run(cfg, sink); err != nil {
		t.Fatal(err)
	}
	empty := core.NewGrid(cfg.Width, cfg.Height)
	for i, f := range sink.frames {
		if !f.Equal(empty) {
			t.Fatalf("frame %d is not empty", i)
		}
	}
}

func TestRunSeedsFromStdin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for y := 1; y <= 3; y++ {
		img.SetNRGBA(2, y, color.NRGBA{R: 255, A: 255})
	}

	cfg := smallConfig()
	cfg.Input = "-"
	cfg.Width, cfg.Height = 0, 0
	cfg.Generations = 3
	sink := &memSink{}
	if _, err := Run(cfg, sink, WithStdin(encodePNG(t, img))); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(sink.frames) != 3 {
		t.Fatalf("wrote %d frames", len(sink.frames))
	}
	first := sink.frames[0]
	if first.W != 5 || first.H != 5 {
		t.Fatalf("seed size %dx%d, want image size 5x5", first.W, first.H)
	}
	if c, _ := first.At(2, 1); c != rgb.Red {
		t.Fatalf("frame 0 should be the unmodified seed, got %v", c)
	}
	// A red blinker flips to horizontal and back.
	if c, _ := sink.frames[1].At(1, 2); c.Length() < 0.9 || c.G != 0 || c.B != 0 {
		t.Fatalf("frame 1 should contain a red birth at (1,2), got %v", c)
	}
	if !sink.frames[2].Equal(first) {
		// Births are averages and may differ by rounding; compare liveness.
		for i, c := range sink.frames[2].Cells() {
			if (c.Length() > 0.25) != (first.Cells()[i].Length() > 0.25) {
				t.Fatalf("frame 2 liveness differs from seed at cell %d", i)
			}
		}
	}
}

func TestRunClassicRule(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 5, 5))
	for x := 1; x <= 3; x++ {
		img.SetNRGBA(x, 2, color.NRGBA{G: 255, A: 255})
	}
	cfg := smallConfig()
	cfg.Rule = "life"
	cfg.Input = "-"
	cfg.Generations = 2
	sink := &memSink{}
	if _, err := Run(cfg, sink, WithStdin(encodePNG(t, img))); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c, _ := sink.frames[1].At(2, 1); c != rgb.White {
		t.Fatalf("classic birth should be white, got %v", c)
	}
}

func TestRunDecodeErrorIsFatal(t *testing.T) {
	cfg := smallConfig()
	cfg.Input = "-"
	sink := &memSink{}
	_, err := Run(cfg, sink, WithStdin(strings.NewReader("garbage")))
	if !errors.Is(err, ErrDecode) {
		t.Fatalf("err = %v, want ErrDecode", err)
	}
	if len(sink.frames) != 0 {
		t.Fatalf("no frame may be written after a decode error, got %d", len(sink.frames))
	}
}

func TestRunEncodeErrorAborts(t *testing.T) {
	sink := &memSink{failAt: 2}
	_, err := Run(smallConfig(), sink)
	if !errors.Is(err, ErrEncode) {
		t.Fatalf("err = %v, want ErrEncode", err)
	}
	if len(sink.indices) != 2 {
		t.Fatalf("wrote %d frames before failure, want 2", len(sink.indices))
	}
}

func TestValidateRejectsBadConfig(t *testing.T) {
	mutations := []func(*Config){
		func(c *Config) { c.Rule = "nope" },
		func(c *Config) { c.Generations = 0 },
		func(c *Config) { c.Width = 0 },
		func(c *Config) { c.Output = "" },
		func(c *Config) { c.ClampMin, c.ClampMax = 1, 0 },
		func(c *Config) { c.Overrides = KVList{"=3"} },
		func(c *Config) { c.Overrides = KVList{"bogus=1"} },
	}
	for i, mutate := range mutations {
		cfg := smallConfig()
		mutate(&cfg)
		if _, err := Run(cfg, &memSink{}); !errors.Is(err, ErrConfig) {
			t.Fatalf("mutation %d: err = %v, want ErrConfig", i, err)
		}
	}
}

func TestBindParsesFlags(t *testing.T) {
	cfg := NewConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	args := []string{"-w", "9", "-h", "7", "-n", "3", "-in", "seed.png", "-set", "clamp_max=0.5", "-set", "similarity=0.4"}
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Width != 9 || cfg.Height != 7 || cfg.Generations != 3 || cfg.Input != "seed.png" {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if got := cfg.Seeding().ClampMax; got != 0.5 {
		t.Fatalf("override should reach seeding, clamp max = %v", got)
	}
	if got := cfg.simOptions(9, 7)["similarity"]; got != "0.4" {
		t.Fatalf("similarity override = %q", got)
	}
	if err := fs.Parse([]string{"-set", "novalue"}); err == nil {
		t.Fatal("expected error for malformed -set")
	}
}
