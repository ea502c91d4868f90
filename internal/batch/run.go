// Package batch drives a headless run: seed generation zero, then step and
// write one frame per generation.
package batch

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"chroma-ca/internal/core"
	"chroma-ca/internal/frameio"
)

var (
	// ErrConfig marks invalid configuration.
	ErrConfig = errors.New("invalid configuration")
	// ErrDecode marks an unreadable or undecodable seed image.
	ErrDecode = errors.New("decode input")
	// ErrEncode marks a frame that could not be written.
	ErrEncode = errors.New("encode frame")
)

// FrameSink persists generations as they are produced.
type FrameSink interface {
	WriteFrame(index int, g *core.Grid) error
}

// Option customises Run.
type Option func(*runner)

// WithLogger sets the logger used for progress messages.
func WithLogger(l *log.Logger) Option {
	return func(r *runner) { r.log = l }
}

// WithStdin sets the reader used when the input source is "-".
func WithStdin(in io.Reader) Option {
	return func(r *runner) { r.stdin = in }
}

type runner struct {
	log   *log.Logger
	stdin io.Reader
}

// Run executes cfg.Generations generations, writing frames 0..N-1 to sink.
// Frame 0 is the seed. Any failure aborts the run.
func Run(cfg Config, sink FrameSink, opts ...Option) (core.Stats, error) {
	r := runner{log: log.New(io.Discard, "", 0), stdin: os.Stdin}
	for _, opt := range opts {
		opt(&r)
	}
	if err := cfg.Validate(); err != nil {
		return core.Stats{}, err
	}

	seed, err := r.seedGrid(cfg)
	if err != nil {
		return core.Stats{}, err
	}

	w, h := cfg.Width, cfg.Height
	if seed != nil {
		w, h = seed.W, seed.H
	}
	sim, err := core.New(cfg.Rule, cfg.simOptions(w, h))
	if err != nil {
		return core.Stats{}, fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if seed != nil {
		if err := sim.Load(seed); err != nil {
			return core.Stats{}, fmt.Errorf("%w: %v", ErrDecode, err)
		}
	} else {
		sim.Reset(cfg.Seed)
	}

	size := sim.Size()
	r.log.Printf("running %s on %dx%d for %d generations", sim.Name(), size.W, size.H, cfg.Generations)

	var stats core.Stats
	for gen := 0; gen < cfg.Generations; gen++ {
		if gen > 0 {
			sim.Step()
		}
		if err := sink.WriteFrame(gen, sim.Grid()); err != nil {
			return stats, fmt.Errorf("%w %d: %v", ErrEncode, gen, err)
		}
		stats = statsOf(sim, gen)
		r.log.Printf("frame %04d alive=%d births=%d deaths=%d", gen, stats.Alive, stats.Births, stats.Deaths)
	}
	return stats, nil
}

func (r runner) seedGrid(cfg Config) (*core.Grid, error) {
	if cfg.Input == "" {
		return nil, nil
	}
	rc, err := frameio.Open(cfg.Input, r.stdin)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer rc.Close()

	g, format, err := frameio.Decode(rc, cfg.Seeding())
	if err != nil {
		return nil, fmt.Errorf("%w %s: %v", ErrDecode, cfg.Input, err)
	}
	r.log.Printf("decoded %s seed %s (%dx%d)", format, cfg.Input, g.W, g.H)
	return g, nil
}

func statsOf(sim core.Sim, gen int) core.Stats {
	if p, ok := sim.(core.StatsProvider); ok {
		s := p.Stats()
		s.Generation = gen
		return s
	}
	return core.Stats{Generation: gen}
}
