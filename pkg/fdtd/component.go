package fdtd

import (
	"fmt"
	"strings"
)

// Axis indices of the lattice.
const (
	AxisX = 0
	AxisY = 1
	AxisZ = 2
)

var axisNames = [3]string{"x", "y", "z"}

// Field selects the electric or magnetic field.
type Field uint8

const (
	FieldE Field = iota
	FieldH
)

// Component names one scalar component of E or H.
type Component struct {
	Field Field
	Axis  int
}

// Common components. Ez is the out-of-plane electric component that point
// sources drive by default.
var (
	Ex = Component{Field: FieldE, Axis: AxisX}
	Ey = Component{Field: FieldE, Axis: AxisY}
	Ez = Component{Field: FieldE, Axis: AxisZ}
	Hx = Component{Field: FieldH, Axis: AxisX}
	Hy = Component{Field: FieldH, Axis: AxisY}
	Hz = Component{Field: FieldH, Axis: AxisZ}
)

func (c Component) String() string {
	prefix := "E"
	if c.Field == FieldH {
		prefix = "H"
	}
	if c.Axis < 0 || c.Axis > 2 {
		return prefix + "?"
	}
	return prefix + axisNames[c.Axis]
}

func (c Component) valid() bool {
	return (c.Field == FieldE || c.Field == FieldH) && c.Axis >= 0 && c.Axis <= 2
}

// ParseComponent parses names such as "Ez" or "hx".
func ParseComponent(s string) (Component, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if len(s) != 2 {
		return Component{}, fmt.Errorf("%w: component %q", ErrInvalidConfig, s)
	}
	var c Component
	switch s[0] {
	case 'e':
		c.Field = FieldE
	case 'h':
		c.Field = FieldH
	default:
		return Component{}, fmt.Errorf("%w: component %q", ErrInvalidConfig, s)
	}
	switch s[1] {
	case 'x':
		c.Axis = AxisX
	case 'y':
		c.Axis = AxisY
	case 'z':
		c.Axis = AxisZ
	default:
		return Component{}, fmt.Errorf("%w: component %q", ErrInvalidConfig, s)
	}
	return c, nil
}
