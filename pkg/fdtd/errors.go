package fdtd

import (
	"errors"
	"fmt"
)

// Setup errors. Stepping and extraction never fail once setup succeeded.
var (
	// ErrInvalidShape reports a grid dimension that is zero or negative.
	ErrInvalidShape = errors.New("fdtd: invalid grid shape")

	// ErrInvalidConfig reports a non-positive spacing, material or period, or a
	// Courant number outside the stable range.
	ErrInvalidConfig = errors.New("fdtd: invalid configuration")

	// ErrOutOfBounds reports a region or position that does not intersect the grid.
	ErrOutOfBounds = errors.New("fdtd: out of bounds")

	// ErrAmbiguousRegion reports a boundary region whose normal axis cannot be
	// determined.
	ErrAmbiguousRegion = errors.New("fdtd: ambiguous boundary region")

	// ErrFrozen reports a setup call made after stepping started.
	ErrFrozen = errors.New("fdtd: grid setup is frozen once stepping starts")
)

// RegionError adds the registration name and axis to a region failure.
type RegionError struct {
	Name    string
	Axis    int
	Wrapped error
}

func (e *RegionError) Error() string {
	if e.Axis < 0 {
		return fmt.Sprintf("region %q: %v", e.Name, e.Wrapped)
	}
	return fmt.Sprintf("region %q axis %s: %v", e.Name, axisNames[e.Axis], e.Wrapped)
}

func (e *RegionError) Unwrap() error {
	return e.Wrapped
}
