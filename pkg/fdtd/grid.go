package fdtd

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// Grid owns the E and H fields and the per-cell material coefficients of a
// rectangular Yee lattice. Cells are stored with x varying fastest, then y,
// then z. Array shapes never change after New.
type Grid struct {
	cfg    Config
	shape  [3]int
	stride [3]int
	cells  int
	dt     float64

	e, h          [3][]float64
	invEps, invMu [3][]float64

	frozen bool
}

// New allocates a zeroed grid filled with the configured default material.
func New(cfg Config) (*Grid, error) {
	cfg, err := cfg.validate()
	if err != nil {
		return nil, err
	}
	g := &Grid{
		cfg:   cfg,
		shape: [3]int{cfg.Nx, cfg.Ny, cfg.Nz},
		cells: cfg.Nx * cfg.Ny * cfg.Nz,
		dt:    cfg.Courant * cfg.Spacing / SpeedOfLight,
	}
	g.stride = [3]int{1, cfg.Nx, cfg.Nx * cfg.Ny}
	for c := 0; c < 3; c++ {
		g.e[c] = make([]float64, g.cells)
		g.h[c] = make([]float64, g.cells)
		g.invEps[c] = make([]float64, g.cells)
		g.invMu[c] = make([]float64, g.cells)
		floats.AddConst(1/cfg.Permittivity, g.invEps[c])
		floats.AddConst(1/cfg.Permeability, g.invMu[c])
	}
	return g, nil
}

// Config returns the validated configuration, with the Courant number resolved.
func (g *Grid) Config() Config { return g.cfg }

// Shape returns the cell counts along x, y and z.
func (g *Grid) Shape() (nx, ny, nz int) { return g.shape[0], g.shape[1], g.shape[2] }

// Cells returns the total number of cells.
func (g *Grid) Cells() int { return g.cells }

// Spacing returns the cell size in metres.
func (g *Grid) Spacing() float64 { return g.cfg.Spacing }

// Courant returns c*dt/spacing.
func (g *Grid) Courant() float64 { return g.cfg.Courant }

// DT returns the time step in seconds.
func (g *Grid) DT() float64 { return g.dt }

// InBounds reports whether (x, y, z) addresses a cell.
func (g *Grid) InBounds(x, y, z int) bool {
	return x >= 0 && x < g.shape[0] && y >= 0 && y < g.shape[1] && z >= 0 && z < g.shape[2]
}

func (g *Grid) index(x, y, z int) int {
	return x + g.shape[0]*(y+g.shape[1]*z)
}

func (g *Grid) field(c Component) []float64 {
	if c.Field == FieldH {
		return g.h[c.Axis]
	}
	return g.e[c.Axis]
}

// At returns one component value at a cell. It panics on invalid coordinates.
func (g *Grid) At(c Component, x, y, z int) float64 {
	if !g.InBounds(x, y, z) {
		panic(fmt.Sprintf("fdtd: cell (%d,%d,%d) outside %v", x, y, z, g.shape))
	}
	return g.field(c)[g.index(x, y, z)]
}

// Read returns the z=0 plane of a component.
func (g *Grid) Read(c Component) Plane {
	return g.plane(c, 0)
}

// ReadPlane returns the plane z of a component.
func (g *Grid) ReadPlane(c Component, z int) (Plane, error) {
	if z < 0 || z >= g.shape[2] {
		return Plane{}, fmt.Errorf("%w: plane z=%d of %d", ErrOutOfBounds, z, g.shape[2])
	}
	if !c.valid() {
		return Plane{}, fmt.Errorf("%w: component %v", ErrInvalidConfig, c)
	}
	return g.plane(c, z), nil
}

func (g *Grid) plane(c Component, z int) Plane {
	size := g.stride[2]
	data := g.field(c)[z*size : (z+1)*size]
	return Plane{data: data, nx: g.shape[0], ny: g.shape[1]}
}

// Energy returns the sum of squares of all six components. It is a
// material-independent measure used to compare field states.
func (g *Grid) Energy() float64 {
	var sum float64
	for c := 0; c < 3; c++ {
		sum += floats.Dot(g.e[c], g.e[c])
		sum += floats.Dot(g.h[c], g.h[c])
	}
	return sum
}

// Clear zeroes both fields. Materials and boundaries are kept.
func (g *Grid) Clear() {
	for c := 0; c < 3; c++ {
		clear(g.e[c])
		clear(g.h[c])
	}
}

// SetMaterial assigns relative permittivity and permeability to every cell of
// the region. It is only allowed before stepping starts. On a periodic axis a
// material set on either copy of the seam plane applies to both.
func (g *Grid) SetMaterial(r Region, permittivity, permeability float64, name string) error {
	if g.frozen {
		return &RegionError{Name: name, Axis: -1, Wrapped: ErrFrozen}
	}
	if !(permittivity > 0) || !(permeability > 0) {
		return &RegionError{
			Name:    name,
			Axis:    -1,
			Wrapped: fmt.Errorf("%w: permittivity %g permeability %g", ErrInvalidConfig, permittivity, permeability),
		}
	}
	b, err := resolveRegion(r, g.shape, name)
	if err != nil {
		return err
	}
	ie, im := 1/permittivity, 1/permeability
	b.each(func(x, y, z int) {
		i := g.index(x, y, z)
		for c := 0; c < 3; c++ {
			g.invEps[c][i] = ie
			g.invMu[c][i] = im
		}
	})
	return nil
}

// joinSeam makes both copies of the seam plane along periodic axis a share one
// material. A cell left at vacuum on one copy takes the other copy's values;
// where both copies were set, plane 0 wins.
func (g *Grid) joinSeam(a int) {
	offset := (g.shape[a] - 1) * g.stride[a]
	var plane box
	plane.hi = g.shape
	plane.hi[a] = 1
	plane.each(func(x, y, z int) {
		i := g.index(x, y, z)
		for c := 0; c < 3; c++ {
			joinCell(g.invEps[c], i, i+offset)
			joinCell(g.invMu[c], i, i+offset)
		}
	})
}

func joinCell(f []float64, i, j int) {
	if f[i] == 1 {
		f[i] = f[j]
		return
	}
	f[j] = f[i]
}

// Permittivity returns the relative permittivity of a cell.
func (g *Grid) Permittivity(x, y, z int) float64 {
	return 1 / g.invEps[AxisZ][g.index(x, y, z)]
}

// Plane is a read-only view of one component on one z plane. Values are
// row-major with rows along y.
type Plane struct {
	data   []float64
	nx, ny int
}

// Nx returns the number of columns.
func (p Plane) Nx() int { return p.nx }

// Ny returns the number of rows.
func (p Plane) Ny() int { return p.ny }

// Len returns Nx*Ny.
func (p Plane) Len() int { return len(p.data) }

// At returns the value at column x, row y.
func (p Plane) At(x, y int) float64 { return p.data[y*p.nx+x] }

// MaxAbs returns the largest absolute value on the plane.
func (p Plane) MaxAbs() float64 {
	if len(p.data) == 0 {
		return 0
	}
	return floats.Norm(p.data, math.Inf(1))
}

// CopyTo copies the plane into dst and returns the number of values copied.
func (p Plane) CopyTo(dst []float64) int { return copy(dst, p.data) }
