package ui

import (
	"image"
	"math"

	"em-fdtd/internal/core"
	"em-fdtd/pkg/fdtd"
)

// boundaryRect returns the screen rectangle covered by a boundary region of
// the z=0 plane. Periodic regions are drawn as their seam column or row.
func boundaryRect(b fdtd.BoundaryInfo, vp core.Viewport) (image.Rectangle, bool) {
	lo, hi := b.Lo, b.Hi
	if b.Kind == fdtd.Periodic {
		hi = lo + 1
	}
	s := vp.Scale
	switch b.Axis {
	case fdtd.AxisX:
		return image.Rect(lo*s, 0, hi*s, vp.H*s), true
	case fdtd.AxisY:
		return image.Rect(0, (vp.H-hi)*s, vp.W*s, (vp.H-lo)*s), true
	default:
		return image.Rectangle{}, false
	}
}

// adjustTarget returns the value a HUD button press would set, and whether
// the press changes anything.
func adjustTarget(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	switch ctrl.Type {
	case core.ParamTypeInt:
		step = math.Round(step)
		if step <= 0 {
			step = 1
		}
	case core.ParamTypeFloat:
		if step <= 0 {
			step = 0.05
		}
	default:
		return current, false
	}
	target := ctrl.Clamp(current + float64(direction)*step)
	if ctrl.Type == core.ParamTypeInt {
		target = math.Round(target)
	}
	return target, math.Abs(target-current) >= 1e-9
}

// floatPrecision picks the number of decimals shown for a control.
func floatPrecision(step float64) int {
	if step <= 0 {
		step = 0.05
	}
	switch {
	case step < 0.001:
		return 4
	case step < 0.01:
		return 3
	case step < 0.1:
		return 2
	default:
		return 1
	}
}
