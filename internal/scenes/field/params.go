package field

import (
	"strconv"

	"em-fdtd/internal/core"
)

var controls = []core.ParameterControl{
	{Key: "period", Label: "Period (cells)", Type: core.ParamTypeFloat, Step: 1, Min: 2, Max: 200, HasMin: true, HasMax: true},
	{Key: "amplitude", Label: "Amplitude", Type: core.ParamTypeFloat, Step: 0.1, Min: 0.1, Max: 10, HasMin: true, HasMax: true},
	{Key: "pulse", Label: "Pulse cycles", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 20, HasMin: true, HasMax: true},
	{Key: "pml", Label: "PML cells", Type: core.ParamTypeInt, Step: 2, Min: 0, Max: 40, HasMin: true, HasMax: true},
}

// Parameters reports the scene state for the HUD.
func (s *Scene) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				{Key: "preset", Label: "Preset", Type: core.ParamTypeString, Value: s.cfg.Preset},
				core.IntParam("w", "Width", s.cfg.Width, ""),
				core.IntParam("h", "Height", s.cfg.Height, ""),
				core.FloatParam("courant", "Courant", s.sim.Grid().Courant(), "c*dt/spacing"),
				{Key: "time", Label: "Step", Type: core.ParamTypeInt, Value: strconv.FormatUint(s.sim.Time(), 10)},
				{Key: "component", Label: "Component", Type: core.ParamTypeString, Value: s.component.String()},
			},
		},
		{
			Name: "Sources",
			Params: []core.Parameter{
				core.IntParam("count", "Sources", s.sim.Sources().Len(), ""),
				core.FloatParam("period", "Period (cells)", s.cfg.Period, "applies to new sources"),
				core.FloatParam("amplitude", "Amplitude", s.cfg.Amplitude, "applies to new sources"),
				core.IntParam("pulse", "Pulse cycles", s.cfg.Pulse, "0 is continuous"),
			},
		},
		{
			Name: "Boundary",
			Params: []core.Parameter{
				core.IntParam("pml", "PML cells", s.cfg.PML, "changing it resets the scene"),
				core.IntParam("pml_cells", "Absorbing cells", s.sim.Boundaries().PMLCells(), ""),
			},
		},
	}}
}

// ParameterControls lists the HUD-adjustable values.
func (s *Scene) ParameterControls() []core.ParameterControl {
	return append([]core.ParameterControl(nil), controls...)
}

func control(key string) (core.ParameterControl, bool) {
	for _, c := range controls {
		if c.Key == key {
			return c, true
		}
	}
	return core.ParameterControl{}, false
}

// SetIntParameter updates an integer control. Changing the PML thickness
// rebuilds the scene.
func (s *Scene) SetIntParameter(key string, value int) bool {
	ctrl, ok := control(key)
	if !ok || ctrl.Type != core.ParamTypeInt {
		return false
	}
	value = int(ctrl.Clamp(float64(value)))
	switch key {
	case "pulse":
		s.cfg.Pulse = value
	case "pml":
		if value == s.cfg.PML {
			return true
		}
		s.cfg.PML = value
		s.Reset(s.seed)
	default:
		return false
	}
	return true
}

// SetFloatParameter updates a floating point control.
func (s *Scene) SetFloatParameter(key string, value float64) bool {
	ctrl, ok := control(key)
	if !ok || ctrl.Type != core.ParamTypeFloat {
		return false
	}
	value = ctrl.Clamp(value)
	switch key {
	case "period":
		s.cfg.Period = value
	case "amplitude":
		s.cfg.Amplitude = value
	default:
		return false
	}
	return true
}
