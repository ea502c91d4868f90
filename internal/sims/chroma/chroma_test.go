package chroma

import (
	"slices"
	"testing"

	"chroma-ca/internal/core"
	"chroma-ca/internal/rgb"
)

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 32
	cfg.Height = 24
	cfg.Seed = 99

	world := NewWithConfig(cfg)
	world.Reset(0)
	initial := slices.Clone(world.Grid().Cells())

	world.Grid().Cells()[3] = rgb.Red
	world.Reset(0)
	if !slices.Equal(initial, world.Grid().Cells()) {
		t.Fatal("Reset with config seed not deterministic")
	}

	world.Reset(777)
	seeded := slices.Clone(world.Grid().Cells())
	if slices.Equal(initial, seeded) {
		t.Fatal("different seeds should produce different initial states")
	}
}

func TestResetDensity(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 40
	cfg.Height = 40

	cfg.Params.SeedDensity = 1
	full := NewWithConfig(cfg)
	full.Reset(1)
	for i, c := range full.Grid().Cells() {
		if c.IsZero() {
			t.Fatalf("density 1 left cell %d black", i)
		}
	}

	cfg.Params.SeedDensity = 0.5
	half := NewWithConfig(cfg)
	half.Reset(1)
	coloured := 0
	for _, c := range half.Grid().Cells() {
		if !c.IsZero() {
			coloured++
		}
	}
	total := cfg.Width * cfg.Height
	if coloured < total/3 || coloured > 2*total/3 {
		t.Fatalf("density 0.5 coloured %d of %d cells", coloured, total)
	}
}

func TestLoadRejectsMismatchedGrid(t *testing.T) {
	world := New(4, 4)
	if err := world.Load(core.NewGrid(5, 4)); err == nil {
		t.Fatal("expected size mismatch error")
	}

	src := core.NewGrid(4, 4)
	src.Set(1, 2, rgb.Green)
	if err := world.Load(src); err != nil {
		t.Fatalf("Load: %v", err)
	}
	src.Set(1, 2, rgb.Red)
	if got, _ := world.Grid().At(1, 2); got != rgb.Green {
		t.Fatalf("Load should copy the grid, got %v", got)
	}
	if world.Stats().Alive != 1 {
		t.Fatalf("census after load = %+v", world.Stats())
	}
}

func TestScoreFieldLeavesGridUntouched(t *testing.T) {
	world := New(3, 3)
	g := world.Grid()
	g.Set(0, 0, rgb.White)
	g.Set(1, 0, rgb.White)
	g.Set(2, 2, rgb.White)
	before := g.Clone()

	scores, alive := world.ScoreField()
	if !world.Grid().Equal(before) {
		t.Fatal("ScoreField modified the grid")
	}
	centre := g.Index(1, 1)
	if scores[centre] != 3 || alive[centre] {
		t.Fatalf("centre score=%v alive=%v", scores[centre], alive[centre])
	}
	if !alive[g.Index(0, 0)] {
		t.Fatal("white corner should be alive")
	}
}

func TestRegisteredFactory(t *testing.T) {
	sim, err := core.New("chroma", map[string]string{"w": "7", "h": "3", "alive": "0.5"})
	if err != nil {
		t.Fatalf("core.New: %v", err)
	}
	if sim.Size() != (core.Size{W: 7, H: 3}) {
		t.Fatalf("size = %+v", sim.Size())
	}
	if got := sim.(*World).Params().AliveThreshold; got != 0.5 {
		t.Fatalf("alive threshold = %v", got)
	}
	if _, err := core.New("chroma", map[string]string{"w": "zero"}); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestParseConfigErrors(t *testing.T) {
	bad := []map[string]string{
		{"w": "-3"},
		{"h": "abc"},
		{"alive": "x"},
		{"bogus": "1"},
		{"clamp_min": "0.8", "clamp_max": "0.2"},
		{"density": "1.5"},
	}
	for _, cfg := range bad {
		if _, err := ParseConfig(cfg); err == nil {
			t.Fatalf("ParseConfig(%v) should fail", cfg)
		}
	}

	c, err := ParseConfig(map[string]string{"clamp_min": "0.2", "clamp_max": "0.9", "seed": "-4"})
	if err != nil {
		t.Fatalf("ParseConfig: %v", err)
	}
	if c.Params.ClampMin != 0.2 || c.Params.ClampMax != 0.9 || c.Seed != -4 {
		t.Fatalf("unexpected config %+v", c)
	}
}

func TestFromMapKeepsDefaults(t *testing.T) {
	c := FromMap(map[string]string{"w": "nope", "h": "12", "clamp_min": "2"})
	def := DefaultConfig()
	if c.Width != def.Width || c.Height != 12 {
		t.Fatalf("unexpected size %dx%d", c.Width, c.Height)
	}
	if c.Params != def.Params {
		t.Fatalf("inconsistent params should fall back to defaults, got %+v", c.Params)
	}
}

func TestParametersSnapshot(t *testing.T) {
	world := New(10, 20)
	snap := world.Parameters()
	values := map[string]string{}
	for _, g := range snap.Groups {
		for _, p := range g.Params {
			values[p.Key] = p.Value
		}
	}
	if values["w"] != "10" || values["h"] != "20" || values["alive"] != "0.25" {
		t.Fatalf("unexpected snapshot values %v", values)
	}
}
