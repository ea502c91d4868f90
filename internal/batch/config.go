package batch

import (
	"flag"
	"fmt"
	"strconv"
	"strings"

	"chroma-ca/internal/core"
	"chroma-ca/internal/frameio"
	"chroma-ca/internal/sims/chroma"
)

// Config holds everything a batch run needs. It is validated once and then
// treated as read-only.
type Config struct {
	Rule        string
	Width       int
	Height      int
	Generations int
	// Input is a file path, "-" for stdin, or empty for a random seed.
	Input  string
	Output string
	Seed   int64
	Fit    bool

	Alive     float64
	Threshold float64
	ClampMin  float64
	ClampMax  float64
	Density   float64

	// Overrides are extra rule parameters in key=value form.
	Overrides KVList

	Verbose bool
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	p := chroma.DefaultParams()
	return &Config{
		Rule:        "chroma",
		Width:       128,
		Height:      128,
		Generations: 100,
		Output:      "output/",
		Seed:        42,
		Alive:       p.AliveThreshold,
		Threshold:   p.SeedThreshold,
		ClampMin:    p.ClampMin,
		ClampMax:    p.ClampMax,
		Density:     p.SeedDensity,
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Rule, "rule", c.Rule, "automaton rule ("+strings.Join(core.Names(), ", ")+")")
	fs.IntVar(&c.Width, "w", c.Width, "grid width (ignored for image input unless -fit)")
	fs.IntVar(&c.Height, "h", c.Height, "grid height (ignored for image input unless -fit)")
	fs.IntVar(&c.Generations, "n", c.Generations, "number of generations (frames) to write")
	fs.StringVar(&c.Input, "in", c.Input, "seed image path, - for stdin, empty for a random seed")
	fs.StringVar(&c.Output, "out", c.Output, "output path prefix; frames are written as <prefix>NNNN.png")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the random initial generation")
	fs.BoolVar(&c.Fit, "fit", c.Fit, "resize the seed image to -w x -h")
	fs.Float64Var(&c.Alive, "alive", c.Alive, "colour length above which a cell is alive")
	fs.Float64Var(&c.Threshold, "threshold", c.Threshold, "zero seed image pixels dimmer than this length")
	fs.Float64Var(&c.ClampMin, "clamp-min", c.ClampMin, "lower channel bound for seeded and newborn colours")
	fs.Float64Var(&c.ClampMax, "clamp-max", c.ClampMax, "upper channel bound for seeded and newborn colours")
	fs.Float64Var(&c.Density, "density", c.Density, "chance of a random colour per cell when seeding randomly")
	fs.Var(&c.Overrides, "set", "rule parameter override in key=value form (repeatable)")
	fs.BoolVar(&c.Verbose, "v", c.Verbose, "log every written frame")
}

// Validate checks the configuration before any simulation work starts.
func (c Config) Validate() error {
	if _, ok := core.Sims()[c.Rule]; !ok {
		return fmt.Errorf("%w: unknown rule %q (available: %v)", ErrConfig, c.Rule, core.Names())
	}
	if c.Generations <= 0 {
		return fmt.Errorf("%w: generations must be positive, got %d", ErrConfig, c.Generations)
	}
	if c.Input == "" || c.Fit {
		if c.Width <= 0 || c.Height <= 0 {
			return fmt.Errorf("%w: grid size must be positive, got %dx%d", ErrConfig, c.Width, c.Height)
		}
	}
	if c.Output == "" {
		return fmt.Errorf("%w: output prefix must not be empty", ErrConfig)
	}
	if _, err := c.Overrides.Map(); err != nil {
		return fmt.Errorf("%w: %v", ErrConfig, err)
	}
	if c.Rule == "chroma" {
		w, h := c.Width, c.Height
		if c.Input != "" && !c.Fit {
			// The image decides the size later.
			w, h = 1, 1
		}
		if _, err := chroma.ParseConfig(c.simOptions(w, h)); err != nil {
			return fmt.Errorf("%w: %v", ErrConfig, err)
		}
	}
	return nil
}

// Seeding returns the conversion rules for decoded input images. Overrides
// of threshold, clamp_min and clamp_max apply here as well.
func (c Config) Seeding() frameio.Seeding {
	opts := c.simOptions(c.Width, c.Height)
	return frameio.Seeding{
		Threshold: parseFloatOr(opts["threshold"], c.Threshold),
		ClampMin:  parseFloatOr(opts["clamp_min"], c.ClampMin),
		ClampMax:  parseFloatOr(opts["clamp_max"], c.ClampMax),
		Fit:       c.Fit,
		Width:     c.Width,
		Height:    c.Height,
	}
}

func parseFloatOr(v string, fallback float64) float64 {
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

// simOptions renders the configuration as rule parameters for a w x h
// world. Overrides win over the dedicated flags.
func (c Config) simOptions(w, h int) map[string]string {
	opts := map[string]string{
		"w":         strconv.Itoa(w),
		"h":         strconv.Itoa(h),
		"seed":      strconv.FormatInt(c.Seed, 10),
		"alive":     formatFloat(c.Alive),
		"threshold": formatFloat(c.Threshold),
		"clamp_min": formatFloat(c.ClampMin),
		"clamp_max": formatFloat(c.ClampMax),
		"density":   formatFloat(c.Density),
	}
	extra, _ := c.Overrides.Map()
	for k, v := range extra {
		opts[k] = v
	}
	return opts
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

// KVList collects repeatable key=value flags.
type KVList []string

func (l *KVList) String() string {
	return strings.Join(*l, ",")
}

// Set appends a key=value pair.
func (l *KVList) Set(value string) error {
	if !strings.Contains(value, "=") {
		return fmt.Errorf("expected key=value, got %q", value)
	}
	*l = append(*l, value)
	return nil
}

// Map splits the pairs into a map; later keys win.
func (l KVList) Map() (map[string]string, error) {
	out := make(map[string]string, len(l))
	for _, kv := range l {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, fmt.Errorf("malformed override %q", kv)
		}
		out[parts[0]] = parts[1]
	}
	return out, nil
}
