package fdtd

import (
	"fmt"
	"math"
	"runtime"
	"strconv"
)

// SpeedOfLight is the vacuum speed of light in m/s.
const SpeedOfLight = 299792458.0

// Config describes the lattice and default material of a grid.
type Config struct {
	Nx, Ny, Nz int

	// Spacing is the uniform cell size in metres.
	Spacing float64
	// Permittivity and Permeability are the relative material values applied
	// to every cell.
	Permittivity float64
	Permeability float64

	// Courant is c*dt/Spacing. Zero selects 0.99/sqrt(D), D being the number
	// of axes longer than one cell.
	Courant float64

	// Workers bounds the goroutines used by the field update. Values below one
	// run the update on the calling goroutine.
	Workers int
}

// DefaultConfig returns the 400x400 single-layer grid used by the viewer.
func DefaultConfig() Config {
	return Config{
		Nx:           400,
		Ny:           400,
		Nz:           1,
		Spacing:      1,
		Permittivity: 1,
		Permeability: 1,
		Workers:      runtime.NumCPU(),
	}
}

// FromMap populates a Config from flag-style key/value pairs. Unknown keys and
// unparsable values are ignored; range checks happen in New.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["nx"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Nx = parsed
		}
	}
	if v, ok := cfg["ny"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Ny = parsed
		}
	}
	if v, ok := cfg["nz"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Nz = parsed
		}
	}
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Spacing = parsed
		}
	}
	if v, ok := cfg["permittivity"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Permittivity = parsed
		}
	}
	if v, ok := cfg["permeability"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Permeability = parsed
		}
	}
	if v, ok := cfg["courant"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Courant = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Workers = parsed
		}
	}
	return c
}

// dimensions counts the axes that carry more than one cell.
func (c Config) dimensions() int {
	d := 0
	for _, n := range [3]int{c.Nx, c.Ny, c.Nz} {
		if n > 1 {
			d++
		}
	}
	if d == 0 {
		d = 1
	}
	return d
}

// validate checks the configuration and resolves the Courant number.
func (c Config) validate() (Config, error) {
	if c.Nx <= 0 || c.Ny <= 0 || c.Nz <= 0 {
		return c, fmt.Errorf("%w: %dx%dx%d", ErrInvalidShape, c.Nx, c.Ny, c.Nz)
	}
	if !(c.Spacing > 0) {
		return c, fmt.Errorf("%w: spacing %g", ErrInvalidConfig, c.Spacing)
	}
	if !(c.Permittivity > 0) || !(c.Permeability > 0) {
		return c, fmt.Errorf("%w: permittivity %g permeability %g", ErrInvalidConfig, c.Permittivity, c.Permeability)
	}
	limit := 1 / math.Sqrt(float64(c.dimensions()))
	if c.Courant == 0 {
		c.Courant = 0.99 * limit
	}
	if c.Courant < 0 || c.Courant > limit {
		return c, fmt.Errorf("%w: courant number %g exceeds %g", ErrInvalidConfig, c.Courant, limit)
	}
	return c, nil
}
