package fdtd

// neighbors maps a coordinate to its lower and upper neighbour along each
// axis. A negative entry means the neighbour lies outside the grid and reads
// as zero. Periodic axes treat index 0 and n-1 as the same plane and wrap
// across it; single-cell axes are their own neighbour so derivatives along
// them vanish.
type neighbors struct {
	next, prev [3][]int
}

func buildNeighbors(shape [3]int, periodic [3]bool) neighbors {
	var nb neighbors
	for a := 0; a < 3; a++ {
		n := shape[a]
		next := make([]int, n)
		prev := make([]int, n)
		for k := 0; k < n; k++ {
			next[k] = k + 1
			prev[k] = k - 1
		}
		switch {
		case n == 1:
			next[0], prev[0] = 0, 0
		case periodic[a]:
			next[n-1] = 1
			prev[0] = n - 2
		default:
			next[n-1] = -1
			prev[0] = -1
		}
		nb.next[a], nb.prev[a] = next, prev
	}
	return nb
}

// fwd returns f(k+1) - f(k) along axis a for the cell at idx whose coordinate
// along a is k.
func (nb *neighbors) fwd(f []float64, stride [3]int, a, idx, k int) float64 {
	n := nb.next[a][k]
	if n < 0 {
		return -f[idx]
	}
	return f[idx+(n-k)*stride[a]] - f[idx]
}

// bwd returns f(k) - f(k-1) along axis a.
func (nb *neighbors) bwd(f []float64, stride [3]int, a, idx, k int) float64 {
	p := nb.prev[a][k]
	if p < 0 {
		return f[idx]
	}
	return f[idx] - f[idx+(p-k)*stride[a]]
}

// curlAxes lists, per component c, the axes of the two curl terms:
// (curl F)_c = d/d[a1] F[a2] - d/d[a2] F[a1].
var curlAxes = [3][2]int{{AxisY, AxisZ}, {AxisZ, AxisX}, {AxisX, AxisY}}

// updateH advances H over rows [lo, hi), a row being one (y, z) line of cells.
func (s *Simulation) updateH(lo, hi int) {
	g := s.grid
	nx, ny := g.shape[0], g.shape[1]
	k := g.cfg.Courant
	for row := lo; row < hi; row++ {
		y, z := row%ny, row/ny
		base := row * nx
		for x := 0; x < nx; x++ {
			idx := base + x
			coord := [3]int{x, y, z}
			for c := 0; c < 3; c++ {
				a1, a2 := curlAxes[c][0], curlAxes[c][1]
				curl := s.nb.fwd(g.e[a2], g.stride, a1, idx, coord[a1]) -
					s.nb.fwd(g.e[a1], g.stride, a2, idx, coord[a2])
				g.h[c][idx] -= k * g.invMu[c][idx] * curl
			}
		}
	}
}

// updateE advances E over rows [lo, hi).
func (s *Simulation) updateE(lo, hi int) {
	g := s.grid
	nx, ny := g.shape[0], g.shape[1]
	k := g.cfg.Courant
	for row := lo; row < hi; row++ {
		y, z := row%ny, row/ny
		base := row * nx
		for x := 0; x < nx; x++ {
			idx := base + x
			coord := [3]int{x, y, z}
			for c := 0; c < 3; c++ {
				a1, a2 := curlAxes[c][0], curlAxes[c][1]
				curl := s.nb.bwd(g.h[a2], g.stride, a1, idx, coord[a1]) -
					s.nb.bwd(g.h[a1], g.stride, a2, idx, coord[a2])
				g.e[c][idx] += k * g.invEps[c][idx] * curl
			}
		}
	}
}

// absorbH applies the PML correction to H for compiled cells [lo, hi).
func (s *Simulation) absorbH(lo, hi int) {
	g := s.grid
	k := g.cfg.Courant
	cells := s.bounds.cells
	for i := lo; i < hi; i++ {
		p := &cells[i]
		for c := 0; c < 3; c++ {
			a1, a2 := curlAxes[c][0], curlAxes[c][1]
			d1 := s.nb.fwd(g.e[a2], g.stride, a1, p.idx, p.coord[a1])
			d2 := s.nb.fwd(g.e[a1], g.stride, a2, p.idx, p.coord[a2])
			p.psiH[c][0] = p.bH[a1]*p.psiH[c][0] + p.cH[a1]*d1
			p.psiH[c][1] = p.bH[a2]*p.psiH[c][1] + p.cH[a2]*d2
			g.h[c][p.idx] -= k * g.invMu[c][p.idx] * (p.psiH[c][0] - p.psiH[c][1])
		}
	}
}

// absorbE applies the PML correction to E for compiled cells [lo, hi).
func (s *Simulation) absorbE(lo, hi int) {
	g := s.grid
	k := g.cfg.Courant
	cells := s.bounds.cells
	for i := lo; i < hi; i++ {
		p := &cells[i]
		for c := 0; c < 3; c++ {
			a1, a2 := curlAxes[c][0], curlAxes[c][1]
			d1 := s.nb.bwd(g.h[a2], g.stride, a1, p.idx, p.coord[a1])
			d2 := s.nb.bwd(g.h[a1], g.stride, a2, p.idx, p.coord[a2])
			p.psiE[c][0] = p.bE[a1]*p.psiE[c][0] + p.cE[a1]*d1
			p.psiE[c][1] = p.bE[a2]*p.psiE[c][1] + p.cE[a2]*d2
			g.e[c][p.idx] += k * g.invEps[c][p.idx] * (p.psiE[c][0] - p.psiE[c][1])
		}
	}
}
