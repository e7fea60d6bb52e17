package integrals

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/basis"
)

func TestHermiteExpansionBaseCase(t *testing.T) {
	// E^{00}_0 = exp(-q d^2) with q = ab/(a+b)
	for _, testCase := range []struct{ dist, a, b float64 }{
		{0, 1, 1},
		{1.4, 3.425250914, 0.6239137298},
		{-0.7, 0.5, 2.25},
	} {
		q := testCase.a * testCase.b / (testCase.a + testCase.b)
		want := math.Exp(-q * testCase.dist * testCase.dist)
		got := hermiteExpansion(0, 0, 0, testCase.dist, testCase.a, testCase.b)
		assert.InEpsilon(t, want, got, 1e-12)
	}
}

func TestHermiteExpansionOutOfRange(t *testing.T) {
	for i := 0; i <= 3; i++ {
		for j := 0; j <= 3; j++ {
			assert.Zero(t, hermiteExpansion(i, j, -1, 0.5, 1, 2))
			assert.Zero(t, hermiteExpansion(i, j, i+j+1, 0.5, 1, 2))
		}
	}
}

func TestHermiteExpansionSwapSymmetry(t *testing.T) {
	// swapping the two Gaussians mirrors the displacement: E^{ij}_t(d; a,b) =
	// E^{ji}_t(-d; b,a)
	const dist, a, b = 0.9, 1.25, 0.4
	for i := 0; i <= 2; i++ {
		for j := 0; j <= 2; j++ {
			for order := 0; order <= i+j; order++ {
				left := hermiteExpansion(i, j, order, dist, a, b)
				right := hermiteExpansion(j, i, order, -dist, b, a)
				assert.InDelta(t, left, right, 1e-12, "i=%d j=%d t=%d", i, j, order)
			}
		}
	}
}

func TestHermiteExpansionSumRule(t *testing.T) {
	// at zero separation the t = 0 coefficient reduces to the 1D overlap
	// moment: E^{11}_0(0; a, b) = 1/(2p)
	const a, b = 0.8, 1.9
	p := a + b
	assert.InEpsilon(t, 1/(2*p), hermiteExpansion(1, 1, 0, 0, a, b), 1e-12)

	// and odd angular sums vanish by parity
	assert.Zero(t, hermiteExpansion(1, 0, 0, 0, a, b))
	assert.Zero(t, hermiteExpansion(0, 1, 0, 0, a, b))
}

func TestCoulombAuxiliaryBaseCase(t *testing.T) {
	diff := r3.Vec{X: 0.3, Y: -0.2, Z: 0.9}
	for n := 0; n <= 4; n++ {
		want := math.Pow(-2*2.5, float64(n)) * boys(n, 2.5*r3.Norm2(diff))
		assert.InEpsilon(t, want, coulombAuxiliary(0, 0, 0, n, 2.5, diff), 1e-12, "n=%d", n)
	}
}

func TestCoulombAuxiliaryAxisSymmetry(t *testing.T) {
	// R is built from the same 1D recursion on each axis, so permuting
	// (t,u,v) together with the displacement components leaves it unchanged
	const p = 1.75
	diff := r3.Vec{X: 0.4, Y: -0.6, Z: 0.2}
	permuted := r3.Vec{X: diff.Y, Y: diff.Z, Z: diff.X}

	for i := 0; i <= 2; i++ {
		for u := 0; u <= 2; u++ {
			for v := 0; v <= 2; v++ {
				left := coulombAuxiliary(i, u, v, 0, p, diff)
				right := coulombAuxiliary(u, v, i, 0, p, permuted)
				assert.InDelta(t, left, right, 1e-12, "t=%d u=%d v=%d", i, u, v)
			}
		}
	}
}

func TestCoulombAuxiliaryParity(t *testing.T) {
	// flipping the displacement flips the sign of odd-order terms
	const p = 0.9
	diff := r3.Vec{X: 0.8, Y: 0.1, Z: -0.5}
	negated := r3.Scale(-1, diff)

	for i := 0; i <= 2; i++ {
		for u := 0; u <= 2; u++ {
			for v := 0; v <= 2; v++ {
				sign := 1.0
				if (i+u+v)%2 == 1 {
					sign = -1
				}
				left := coulombAuxiliary(i, u, v, 0, p, diff)
				right := sign * coulombAuxiliary(i, u, v, 0, p, negated)
				assert.InDelta(t, left, right, 1e-12, "t=%d u=%d v=%d", i, u, v)
			}
		}
	}
}

func TestProductCenter(t *testing.T) {
	posA := r3.Vec{Z: 0}
	posB := r3.Vec{Z: 2}

	// equal exponents put the product center in the middle
	center := productCenter(1.5, posA, 1.5, posB)
	assert.InDelta(t, 1.0, center.Z, 1e-12)

	// a much steeper left Gaussian pulls the center towards it
	center = productCenter(10, posA, 0.1, posB)
	assert.Less(t, center.Z, 0.1)
}

func TestExpansionCoefficientsMatchScalarRecursion(t *testing.T) {
	a := basis.ContractedGaussian{
		Coefficients: []float64{0.3, 0.7},
		Exponents:    []float64{1.2, 0.45},
		Angular:      [3]int{1, 0, 0},
	}
	b := basis.ContractedGaussian{
		Coefficients: []float64{1},
		Exponents:    []float64{0.8},
		Angular:      [3]int{0, 1, 1},
	}
	diff := r3.Vec{X: 0.5, Y: -1.1, Z: 0.3}

	expansion := newExpansionCoefficients(a, b, diff)
	distances := [3]float64{diff.X, diff.Y, diff.Z}

	for axis := 0; axis < 3; axis++ {
		i := a.Angular[axis]
		j := b.Angular[axis]
		for order := 0; order <= i+j; order++ {
			for ki, expA := range a.Exponents {
				for kj, expB := range b.Exponents {
					want := hermiteExpansion(i, j, order, distances[axis], expA, expB)
					assert.InDelta(t, want, expansion.Coefficient(axis, ki, kj, order), 1e-15)
				}
			}
		}
	}
}

func BenchmarkHermiteExpansion(b *testing.B) {
	for i := 0; i < b.N; i++ {
		hermiteExpansion(2, 2, 1, 0.75, 1.3, 0.4)
	}
}

func BenchmarkCoulombAuxiliary(b *testing.B) {
	diff := r3.Vec{X: 0.3, Y: -0.2, Z: 0.9}
	for i := 0; i < b.N; i++ {
		coulombAuxiliary(2, 1, 1, 0, 1.8, diff)
	}
}
