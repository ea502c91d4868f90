package chroma

import (
	"strconv"

	"chroma-ca/internal/core"
)

// Parameters describes the world's configuration for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Rule",
			Params: []core.Parameter{
				floatParam("alive", "Alive threshold", params.AliveThreshold),
				floatParam("similarity", "Similarity cutoff", params.SimilarityCutoff),
				floatParam("clamp_min", "Clamp min", params.ClampMin),
				floatParam("clamp_max", "Clamp max", params.ClampMax),
			},
		},
		{
			Name: "Seeding",
			Params: []core.Parameter{
				floatParam("threshold", "Input threshold", params.SeedThreshold),
				floatParam("density", "Random density", params.SeedDensity),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
