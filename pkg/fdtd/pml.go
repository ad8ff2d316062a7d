package fdtd

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// pmlAlpha is the complex-frequency shift of the convolutional PML.
const pmlAlpha = 1e-8

// pmlProfile returns the conductivity at E and H sample points for each of the
// thickness cells of a layer, ordered by increasing index. The conductivity is
// zero at the inner edge and grows cubically towards the outer edge.
func pmlProfile(thickness int, high bool) (sigmaE, sigmaH []float64) {
	depthE := make([]float64, thickness)
	depthH := make([]float64, thickness)
	t := float64(thickness)
	if thickness == 1 {
		depthE[0], depthH[0] = 0.5, 0
	} else {
		floats.Span(depthE, t-0.5, 0.5)
		floats.Span(depthH, t-1, 0)
	}
	if high {
		floats.Reverse(depthE)
		floats.Reverse(depthH)
		floats.AddConst(1, depthH)
	}
	norm := math.Pow(t+1, 4)
	sigmaE = make([]float64, thickness)
	sigmaH = make([]float64, thickness)
	for i := range depthE {
		sigmaE[i] = 40 * depthE[i] * depthE[i] * depthE[i] / norm
		sigmaH[i] = 40 * depthH[i] * depthH[i] * depthH[i] / norm
	}
	return sigmaE, sigmaH
}

// cpmlCoefficients returns the recursive convolution coefficients for a
// conductivity sigma and Courant number s.
func cpmlCoefficients(sigma, s float64) (b, c float64) {
	b = math.Exp(-(sigma + pmlAlpha) * s)
	if sigma == 0 {
		return b, 0
	}
	c = (b - 1) * sigma / (sigma + pmlAlpha)
	return b, c
}

// pmlCell carries the absorbing state of one cell. Index a of b and c is the
// derivative axis; psi[c][k] belongs to component c and its k-th curl term.
type pmlCell struct {
	idx    int
	coord  [3]int
	bE, cE [3]float64
	bH, cH [3]float64
	psiE   [3][2]float64
	psiH   [3][2]float64
}
