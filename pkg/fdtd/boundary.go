package fdtd

import (
	"fmt"
)

// Kind selects the behaviour of a boundary region.
type Kind uint8

const (
	// PML absorbs outgoing waves with a graded conductivity.
	PML Kind = iota + 1
	// Periodic wraps the normal axis onto itself.
	Periodic
)

func (k Kind) String() string {
	switch k {
	case PML:
		return "pml"
	case Periodic:
		return "periodic"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// ParseKind parses "pml" or "periodic".
func ParseKind(s string) (Kind, error) {
	switch s {
	case "pml", "PML":
		return PML, nil
	case "periodic", "Periodic":
		return Periodic, nil
	}
	return 0, fmt.Errorf("%w: boundary kind %q", ErrInvalidConfig, s)
}

// BoundaryInfo describes a registered boundary region.
type BoundaryInfo struct {
	Name   string
	Kind   Kind
	Region Region
	Axis   int
	// High is set for a PML that absorbs towards the far edge of its axis.
	High bool
	// Lo and Hi bound the resolved cells along Axis.
	Lo, Hi int
}

type boundary struct {
	BoundaryInfo
	box box
}

// Boundaries is the ordered list of boundary regions of a grid. Regions are
// only recorded by Register; compile applies them in order once stepping
// starts, so a later region overwrites what an earlier one set on shared cells.
type Boundaries struct {
	grid *Grid
	list []boundary

	periodic [3]bool
	sigmaE   [3][]float64
	sigmaH   [3][]float64
	cells    []pmlCell
}

func newBoundaries(g *Grid) *Boundaries {
	return &Boundaries{grid: g}
}

// Register records a boundary region. The region's normal axis is the axis
// given with At, otherwise the single axis that does not span the whole grid.
func (b *Boundaries) Register(r Region, kind Kind, name string) error {
	if b.grid.frozen {
		return &RegionError{Name: name, Axis: -1, Wrapped: ErrFrozen}
	}
	if kind != PML && kind != Periodic {
		return &RegionError{Name: name, Axis: -1, Wrapped: fmt.Errorf("%w: boundary kind %v", ErrInvalidConfig, kind)}
	}
	bx, err := resolveRegion(r, b.grid.shape, name)
	if err != nil {
		return err
	}
	axis, err := normalAxis(r, bx, b.grid.shape)
	if err != nil {
		return &RegionError{Name: name, Axis: -1, Wrapped: err}
	}
	info := BoundaryInfo{
		Name:   name,
		Kind:   kind,
		Region: r,
		Axis:   axis,
		Lo:     bx.lo[axis],
		Hi:     bx.hi[axis],
	}
	if kind == PML {
		n := b.grid.shape[axis]
		switch {
		case info.Lo == 0:
			info.High = false
		case info.Hi == n:
			info.High = true
		default:
			info.High = n-info.Hi < info.Lo
		}
	}
	b.list = append(b.list, boundary{BoundaryInfo: info, box: bx})
	return nil
}

// List returns the registered regions in registration order.
func (b *Boundaries) List() []BoundaryInfo {
	out := make([]BoundaryInfo, len(b.list))
	for i := range b.list {
		out[i] = b.list[i].BoundaryInfo
	}
	return out
}

// Len returns the number of registered regions.
func (b *Boundaries) Len() int { return len(b.list) }

// Periodic reports whether axis wraps. It reflects registered regions, also
// before compilation.
func (b *Boundaries) Periodic(axis int) bool {
	for i := range b.list {
		if b.list[i].Kind == Periodic && b.list[i].Axis == axis {
			return true
		}
	}
	return false
}

// PMLCells returns the number of cells carrying absorbing state after
// compilation.
func (b *Boundaries) PMLCells() int { return len(b.cells) }

// Sigma returns the compiled E-point conductivity of a cell along axis.
func (b *Boundaries) Sigma(axis, x, y, z int) float64 {
	if b.sigmaE[axis] == nil {
		return 0
	}
	return b.sigmaE[axis][b.grid.index(x, y, z)]
}

func normalAxis(r Region, bx box, shape [3]int) (int, error) {
	axis := -1
	for a, s := range r.spans() {
		if s.kind != spanAt {
			continue
		}
		if axis >= 0 {
			return -1, fmt.Errorf("%w: more than one single-index axis in %v", ErrAmbiguousRegion, r)
		}
		axis = a
	}
	if axis >= 0 {
		return axis, nil
	}
	for a := 0; a < 3; a++ {
		if bx.lo[a] == 0 && bx.hi[a] == shape[a] {
			continue
		}
		if axis >= 0 {
			return -1, fmt.Errorf("%w: more than one partial axis in %v", ErrAmbiguousRegion, r)
		}
		axis = a
	}
	if axis < 0 {
		return -1, fmt.Errorf("%w: %v covers the whole grid", ErrAmbiguousRegion, r)
	}
	return axis, nil
}

// compile applies the regions in registration order and builds the list of
// absorbing cells.
func (b *Boundaries) compile() {
	g := b.grid
	b.periodic = [3]bool{}
	for i := range b.list {
		bd := &b.list[i]
		a := bd.Axis
		switch bd.Kind {
		case PML:
			if b.sigmaE[a] == nil {
				b.sigmaE[a] = make([]float64, g.cells)
				b.sigmaH[a] = make([]float64, g.cells)
			}
			se, sh := pmlProfile(bd.Hi-bd.Lo, bd.High)
			bd.box.each(func(x, y, z int) {
				p := [3]int{x, y, z}
				j := p[a] - bd.Lo
				idx := g.index(x, y, z)
				b.sigmaE[a][idx] = se[j]
				b.sigmaH[a][idx] = sh[j]
			})
		case Periodic:
			b.periodic[a] = true
			if b.sigmaE[a] == nil {
				continue
			}
			bd.box.each(func(x, y, z int) {
				idx := g.index(x, y, z)
				b.sigmaE[a][idx] = 0
				b.sigmaH[a][idx] = 0
			})
		}
	}

	b.cells = b.cells[:0]
	s := g.cfg.Courant
	for z := 0; z < g.shape[2]; z++ {
		for y := 0; y < g.shape[1]; y++ {
			for x := 0; x < g.shape[0]; x++ {
				idx := g.index(x, y, z)
				var cell pmlCell
				active := false
				for a := 0; a < 3; a++ {
					var se, sh float64
					if b.sigmaE[a] != nil {
						se, sh = b.sigmaE[a][idx], b.sigmaH[a][idx]
					}
					if se != 0 || sh != 0 {
						active = true
					}
					cell.bE[a], cell.cE[a] = cpmlCoefficients(se, s)
					cell.bH[a], cell.cH[a] = cpmlCoefficients(sh, s)
				}
				if !active {
					continue
				}
				cell.idx = idx
				cell.coord = [3]int{x, y, z}
				b.cells = append(b.cells, cell)
			}
		}
	}
}
