package chroma

import (
	"fmt"
	"strconv"
)

// Params holds the thresholds that drive the chroma rule.
type Params struct {
	// AliveThreshold is the colour length above which a cell counts as alive.
	AliveThreshold float64
	// SimilarityCutoff is the minimum similarity for a neighbour's colour to
	// feed the averaged birth colour.
	SimilarityCutoff float64
	ClampMin         float64
	ClampMax         float64

	// SeedThreshold zeroes decoded input pixels dimmer than this length.
	SeedThreshold float64
	// SeedDensity is the chance that a cell receives a random colour when
	// seeding without an input image.
	SeedDensity float64
}

// Config controls the chroma simulation dimensions.
type Config struct {
	Width  int
	Height int

	Seed int64

	Params Params
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  256,
		Height: 256,
		Seed:   42,
		Params: DefaultParams(),
	}
}

// DefaultParams returns the standard rule thresholds.
func DefaultParams() Params {
	return Params{
		AliveThreshold:   0.25,
		SimilarityCutoff: 0.25,
		ClampMin:         0,
		ClampMax:         1,
		SeedThreshold:    0.25,
		SeedDensity:      0.5,
	}
}

// Validate reports inconsistent parameter combinations.
func (p Params) Validate() error {
	if p.ClampMin > p.ClampMax {
		return fmt.Errorf("clamp_min %g exceeds clamp_max %g", p.ClampMin, p.ClampMax)
	}
	if p.AliveThreshold < 0 {
		return fmt.Errorf("alive threshold %g must not be negative", p.AliveThreshold)
	}
	if p.SeedThreshold < 0 {
		return fmt.Errorf("seed threshold %g must not be negative", p.SeedThreshold)
	}
	if p.SeedDensity < 0 || p.SeedDensity > 1 {
		return fmt.Errorf("seed density %g outside [0,1]", p.SeedDensity)
	}
	return nil
}

// ParseConfig populates a Config from a string map (flag-style key/value
// pairs). Unlike FromMap it rejects malformed values and unknown keys.
func ParseConfig(cfg map[string]string) (Config, error) {
	c := DefaultConfig()
	for key, v := range cfg {
		if err := c.apply(key, v); err != nil {
			return c, err
		}
	}
	if err := c.Params.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// FromMap populates the config from a string map, keeping defaults for any
// value that fails to parse. Inconsistent rule parameters fall back to the
// defaults as a group.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	for key, v := range cfg {
		_ = c.apply(key, v)
	}
	if c.Params.Validate() != nil {
		c.Params = DefaultParams()
	}
	return c
}

func (c *Config) apply(key, v string) error {
	if key == "w" || key == "h" {
		n, err := strconv.Atoi(v)
		if err == nil && n <= 0 {
			err = fmt.Errorf("must be positive")
		}
		if err != nil {
			return fmt.Errorf("parameter %s=%q: %w", key, v, err)
		}
		if key == "w" {
			c.Width = n
		} else {
			c.Height = n
		}
		return nil
	}
	if key == "seed" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parameter %s=%q: %w", key, v, err)
		}
		c.Seed = n
		return nil
	}

	var dst *float64
	switch key {
	case "alive":
		dst = &c.Params.AliveThreshold
	case "similarity":
		dst = &c.Params.SimilarityCutoff
	case "clamp_min":
		dst = &c.Params.ClampMin
	case "clamp_max":
		dst = &c.Params.ClampMax
	case "threshold":
		dst = &c.Params.SeedThreshold
	case "density":
		dst = &c.Params.SeedDensity
	default:
		return fmt.Errorf("unknown parameter %q", key)
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("parameter %s=%q: %w", key, v, err)
	}
	*dst = f
	return nil
}
