package field

import (
	"runtime"
	"strconv"
)

// Config controls the grid and source defaults of a field scene.
type Config struct {
	Preset string

	Width  int
	Height int
	// Spacing is the cell size in metres.
	Spacing float64
	Workers int

	// PML is the absorbing layer thickness in cells.
	PML int

	// Period is the source carrier period expressed as the time light needs
	// to cross that many cells.
	Period    float64
	Amplitude float64
	// Pulse limits new sources to a windowed burst of that many cycles. Zero
	// keeps them running.
	Pulse int
	// Component is the plane shown by Frame.
	Component string

	// Sources is the number of randomly placed sources added on Reset.
	Sources int

	LensPermittivity float64
	LensRadius       int
}

// DefaultConfig returns the 400x400 open-space scene.
func DefaultConfig() Config {
	return Config{
		Preset:           "open",
		Width:            400,
		Height:           400,
		Spacing:          1,
		Workers:          runtime.NumCPU(),
		PML:              10,
		Period:           20,
		Amplitude:        1,
		Component:        "Ez",
		LensPermittivity: 4,
		LensRadius:       60,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["preset"]; ok && v != "" {
		c.Preset = v
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["pml"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.PML = parsed
		}
	}
	if v, ok := cfg["period"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Period = parsed
		}
	}
	if v, ok := cfg["amplitude"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Amplitude = parsed
		}
	}
	if v, ok := cfg["pulse"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Pulse = parsed
		}
	}
	if v, ok := cfg["component"]; ok && v != "" {
		c.Component = v
	}
	if v, ok := cfg["sources"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Sources = parsed
		}
	}
	if v, ok := cfg["lens_eps"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.LensPermittivity = parsed
		}
	}
	if v, ok := cfg["lens_radius"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.LensRadius = parsed
		}
	}
	return c
}
