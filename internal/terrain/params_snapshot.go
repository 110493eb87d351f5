package terrain

import (
	"relief/internal/core"
)

// Parameters reports the configuration the current map was generated with.
func (m *Map) Parameters() core.ParameterSnapshot {
	c := m.cfg
	p := c.Params
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				core.IntParam("size", "Requested size", int64(c.Size)),
				core.IntParam("side", "Side", int64(m.grid.Side())),
				core.IntParam("seed", "Seed", c.Seed),
				core.TextParam("corners", "Corners", FormatCorners(c.Corners)),
			},
		},
		{
			Name: "Relief",
			Params: []core.Parameter{
				core.FloatParam("roughness", "Roughness", p.Roughness),
				core.FloatParam("smooth", "Smooth factor", p.SmoothFactor),
				core.IntParam("passes", "Smooth passes", int64(p.SmoothPasses)),
			},
		},
		{
			Name: "Colour",
			Params: []core.Parameter{
				core.TextParam("picker", "Picker", c.Picker),
				core.IntParam("ocean", "Ocean height", int64(p.OceanHeight)),
				core.FloatParam("light", "Light level", p.LightLevel),
				core.FloatParam("moisture_scale", "Moisture scale", p.MoistureScale),
				core.IntParam("stops_below", "Ocean stops", int64(len(c.Stops.Below))),
				core.IntParam("stops_above", "Land stops", int64(len(c.Stops.Above))),
			},
		},
	}}
}

// ParameterControls lists the values the viewer HUD may adjust.
func (m *Map) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "roughness", Label: "Roughness", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, HasMin: true, Max: 4, HasMax: true},
		{Key: "smooth", Label: "Smooth factor", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, HasMin: true, Max: 1, HasMax: true},
		{Key: "passes", Label: "Smooth passes", Type: core.ParamTypeInt, Step: 1, Min: 0, HasMin: true, Max: 16, HasMax: true},
		{Key: "ocean", Label: "Ocean height", Type: core.ParamTypeInt, Step: 1024, Min: 0, HasMin: true, Max: core.MaxElevation, HasMax: true},
		{Key: "light", Label: "Light level", Type: core.ParamTypeFloat, Step: 0.25, Min: 0, HasMin: true, Max: 16, HasMax: true},
	}
}

// SetIntParameter updates an integer tunable and regenerates the map.
func (m *Map) SetIntParameter(key string, value int) bool {
	next := m.cfg
	switch key {
	case "passes":
		next.Params.SmoothPasses = value
	case "ocean":
		if value < 0 || value > core.MaxElevation {
			return false
		}
		next.Params.OceanHeight = uint16(value)
	case "seed":
		next.Seed = int64(value)
	default:
		return false
	}
	return m.apply(next)
}

// SetFloatParameter updates a floating point tunable and regenerates the map.
func (m *Map) SetFloatParameter(key string, value float64) bool {
	next := m.cfg
	switch key {
	case "roughness":
		next.Params.Roughness = value
	case "smooth":
		next.Params.SmoothFactor = value
	case "light":
		next.Params.LightLevel = value
	case "moisture_scale":
		next.Params.MoistureScale = value
	default:
		return false
	}
	return m.apply(next)
}

func (m *Map) apply(next Config) bool {
	if err := next.Validate(); err != nil {
		m.log.Warn("rejected parameter change", "error", err)
		return false
	}
	if next.Params.OceanHeight != m.cfg.Params.OceanHeight {
		m.colors = nil
	}
	m.cfg = next
	if err := m.Reset(0); err != nil {
		m.log.Error("regenerate", "error", err)
		return false
	}
	return true
}
