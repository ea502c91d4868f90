//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strconv"

	"chroma-ca/internal/app"
	"chroma-ca/internal/core"
	"chroma-ca/internal/frameio"
	"chroma-ca/internal/sims/chroma"
	_ "chroma-ca/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var seedGrid *core.Grid
	if cfg.Input != "" {
		rc, err := frameio.Open(cfg.Input, os.Stdin)
		if err != nil {
			log.Fatalf("open %s: %v", cfg.Input, err)
		}
		p := chroma.DefaultParams()
		seedGrid, _, err = frameio.Decode(rc, frameio.Seeding{Threshold: p.SeedThreshold, ClampMin: p.ClampMin, ClampMax: p.ClampMax})
		rc.Close()
		if err != nil {
			log.Fatalf("decode %s: %v", cfg.Input, err)
		}
		cfg.Width, cfg.Height = seedGrid.W, seedGrid.H
	}

	sim, err := core.New(cfg.Sim, map[string]string{
		"w":    strconv.Itoa(cfg.Width),
		"h":    strconv.Itoa(cfg.Height),
		"seed": strconv.FormatInt(cfg.Seed, 10),
	})
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim, *cfg, seedGrid)
	game.Reset(cfg.Seed)
	size := sim.Size()

	ebiten.SetWindowTitle("chroma-ca - " + sim.Name())
	ebiten.SetWindowSize(size.W*cfg.Scale+cfg.HUDWidth, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
