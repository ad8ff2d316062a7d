package fdtd

// NormEpsilon keeps normalisation finite on an all-zero plane.
const NormEpsilon = 1e-9

// Extract returns the z=0 plane of c as single-precision values divided by
// max|plane| + NormEpsilon, so every value lies in [-1, 1]. The layout is
// row-major with rows along y: buf[y*Nx+x]. The grid is not modified.
func (s *Simulation) Extract(c Component) []float32 {
	dst := make([]float32, s.grid.shape[0]*s.grid.shape[1])
	s.ExtractInto(dst, c)
	return dst
}

// ExtractInto writes the normalised plane into dst, which must hold Nx*Ny
// values, and returns the normalisation divisor.
func (s *Simulation) ExtractInto(dst []float32, c Component) float64 {
	return normalizeInto(dst, s.grid.Read(c))
}

func normalizeInto(dst []float32, p Plane) float64 {
	scale := p.MaxAbs() + NormEpsilon
	inv := 1 / scale
	for i, v := range p.data {
		dst[i] = float32(v * inv)
	}
	return scale
}
