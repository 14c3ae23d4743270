package sird

import (
	"strconv"

	"epigrid/internal/core"
)

// Parameters reports the run settings for display and logging.
func (e *Engine) Parameters() core.ParameterSnapshot {
	c := e.cfg
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("width", "Width", c.Width),
				intParam("height", "Height", c.Height),
				intParam("days", "Days", c.Days),
				int64Param("seed", "Seed", e.seed),
				floatParam("initial", "Initial infected", c.InitialInfected),
			},
		},
		{
			Name: "Scheduling",
			Params: []core.Parameter{
				{Key: "mode", Label: "Mode", Type: core.ParamTypeString, Value: string(c.Mode)},
				intParam("cores", "Workers", c.EffectiveWorkers()),
				intParam("blocks", "Blocks", len(e.blocks)),
			},
		},
		{
			Name: "Rates",
			Params: []core.Parameter{
				floatParam("beta", "Transmission", c.Params.Beta),
				floatParam("gamma", "Recovery", c.Params.Gamma),
				floatParam("mu", "Mortality", c.Params.Mu),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}

func int64Param(key, label string, v int64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.FormatInt(v, 10)}
}

func floatParam(key, label string, v float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(v, 'g', -1, 64)}
}
