package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"chroma-ca/internal/sims/chroma"
)

type scenario struct {
	density float64
	seed    int64
}

type scenarioResult struct {
	scenario
	initialAlive int
	finalAlive   int
	peakAlive    int
	births       int
	deaths       int
	extinctAt    int
}

func main() {
	steps := flag.Int("steps", 200, "generations to simulate per scenario")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	width := flag.Int("w", 96, "grid width")
	height := flag.Int("h", 96, "grid height")
	seeds := flag.Int("seeds", 4, "seeds per density")
	flag.Parse()

	base := chroma.DefaultConfig()
	base.Width = *width
	base.Height = *height

	densities := []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8}
	var sets []scenario
	for _, d := range densities {
		for s := 1; s <= *seeds; s++ {
			sets = append(sets, scenario{density: d, seed: int64(s)})
		}
	}

	fmt.Printf("Surveying %d scenarios (%d workers, %d steps, %dx%d)\n", len(sets), *workers, *steps, *width, *height)

	jobs := make(chan scenario)
	results := make(chan scenarioResult)
	var wg sync.WaitGroup

	for i := 0; i < *workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for sc := range jobs {
				results <- runScenario(base, sc, *steps)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, sc := range sets {
			jobs <- sc
		}
		close(jobs)
	}()

	start := time.Now()
	var all []scenarioResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].density != all[j].density {
			return all[i].density < all[j].density
		}
		return all[i].seed < all[j].seed
	})

	fmt.Printf("\nResults (elapsed %s):\n", time.Since(start).Round(time.Millisecond))
	for _, res := range all {
		extinct := "-"
		if res.extinctAt >= 0 {
			extinct = fmt.Sprint(res.extinctAt)
		}
		fmt.Printf("density=%.1f seed=%d alive %d -> %d (peak %d) births=%d deaths=%d extinct=%s\n",
			res.density, res.seed, res.initialAlive, res.finalAlive, res.peakAlive, res.births, res.deaths, extinct)
	}
}

func runScenario(base chroma.Config, sc scenario, steps int) scenarioResult {
	cfg := base
	cfg.Seed = sc.seed
	cfg.Params.SeedDensity = sc.density

	world := chroma.NewWithConfig(cfg)
	world.Reset(sc.seed)

	res := scenarioResult{scenario: sc, extinctAt: -1}
	res.initialAlive = world.Stats().Alive
	res.peakAlive = res.initialAlive
	for step := 1; step <= steps; step++ {
		world.Step()
		s := world.Stats()
		res.births += s.Births
		res.deaths += s.Deaths
		if s.Alive > res.peakAlive {
			res.peakAlive = s.Alive
		}
		res.finalAlive = s.Alive
		if s.Alive == 0 {
			res.extinctAt = step
			break
		}
	}
	return res
}
