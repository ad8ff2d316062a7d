package core

// Viewport maps between screen pixels and grid cells. Each cell covers
// Scale×Scale pixels; screen rows grow downwards while grid y grows upwards.
type Viewport struct {
	W, H  int
	Scale int
}

// NewViewport returns the viewport for a plane of the given size.
func NewViewport(size Size, scale int) Viewport {
	if scale <= 0 {
		scale = 1
	}
	return Viewport{W: size.W, H: size.H, Scale: scale}
}

// ScreenSize returns the pixel dimensions covered by the grid.
func (v Viewport) ScreenSize() (int, int) { return v.W * v.Scale, v.H * v.Scale }

// ToGrid converts a screen position to grid coordinates. ok is false when the
// position lies outside the grid.
func (v Viewport) ToGrid(sx, sy int) (x, y int, ok bool) {
	if sx < 0 || sy < 0 {
		return 0, 0, false
	}
	x = sx / v.Scale
	row := sy / v.Scale
	if x >= v.W || row >= v.H {
		return 0, 0, false
	}
	return x, v.H - 1 - row, true
}

// ToScreen returns the top-left pixel of cell (x, y).
func (v Viewport) ToScreen(x, y int) (int, int) {
	return x * v.Scale, (v.H - 1 - y) * v.Scale
}

// Row returns the screen row index of grid row y.
func (v Viewport) Row(y int) int { return v.H - 1 - y }

// Clamp limits grid coordinates to the plane.
func (v Viewport) Clamp(x, y int) (int, int) {
	x = min(max(x, 0), v.W-1)
	y = min(max(y, 0), v.H-1)
	return x, y
}
