package sandbox

import (
	"strconv"

	"pixelsand/internal/core"
)

// Parameters reports the current tunables grouped for display.
func (w *World) Parameters() core.ParameterSnapshot {
	params := w.cfg.Params
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.cfg.Width),
				intParam("h", "Height", w.cfg.Height),
				int64Param("seed", "Seed", w.cfg.Seed),
				{Key: "scene", Label: "Scene", Type: core.ParamTypeString, Value: w.cfg.Scene},
			},
		},
		{
			Name: "Fire",
			Params: []core.Parameter{
				intParam("fire_lifetime_min", "Fire lifetime min", params.FireLifetimeMin),
				intParam("fire_lifetime_max", "Fire lifetime max", params.FireLifetimeMax),
				floatParam("ignite_chance", "Ignite chance", params.IgniteChance),
			},
		},
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the parameters that may be changed while running.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "fire_lifetime_min", Label: "Fire lifetime min", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 255, HasMax: true},
		{Key: "fire_lifetime_max", Label: "Fire lifetime max", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true, Max: 255, HasMax: true},
		{Key: "ignite_chance", Label: "Ignite chance", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 1, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable. The lifetime range is kept
// ordered by dragging the other bound along.
func (w *World) SetIntParameter(key string, value int) bool {
	ctrl, ok := w.control(key, core.ParamTypeInt)
	if !ok {
		return false
	}
	v := int(ctrl.Clamp(float64(value)))
	p := &w.cfg.Params
	switch key {
	case "fire_lifetime_min":
		p.FireLifetimeMin = v
		if p.FireLifetimeMax < v {
			p.FireLifetimeMax = v
		}
	case "fire_lifetime_max":
		p.FireLifetimeMax = v
		if p.FireLifetimeMin > v {
			p.FireLifetimeMin = v
		}
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point tunable, clamped to its control
// bounds.
func (w *World) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := w.control(key, core.ParamTypeFloat)
	if !ok {
		return false
	}
	switch key {
	case "ignite_chance":
		w.cfg.Params.IgniteChance = ctrl.Clamp(value)
	default:
		return false
	}
	return true
}

func (w *World) control(key string, typ core.ParamType) (core.ParameterControl, bool) {
	for _, c := range w.ParameterControls() {
		if c.Key == key && c.Type == typ {
			return c, true
		}
	}
	return core.ParameterControl{}, false
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
