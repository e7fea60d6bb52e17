package integrals

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/system"
)

// computeKinetic computes the kinetic energy block between two shells.
//
// The kinetic operator applied to a cartesian Gaussian decomposes into
// overlaps with the angular exponents of the right-hand function shifted by
// 0 and +-2, so the kernel is a weighted sum of primitive overlaps
// (Obara-Saika).
func computeKinetic(basisA, basisB system.ShellBasis) *mat.Dense {
	diff := r3.Sub(basisB.Center, basisA.Center)

	result := mat.NewDense(basisA.Count, basisB.Count, nil)

	for i, a := range basisA.Basis {
		globalA := basisA.Start + i
		for j, b := range basisB.Basis {
			globalB := basisB.Start + j
			if globalB < globalA {
				continue
			}

			l1, m1, n1 := a.Angular[0], a.Angular[1], a.Angular[2]
			l2, m2, n2 := b.Angular[0], b.Angular[1], b.Angular[2]

			sum := 0.0
			for ki, coeffA := range a.Coefficients {
				expA := a.Exponents[ki]
				for kj, coeffB := range b.Coefficients {
					expB := b.Exponents[kj]

					angularStep := func(dl, dm, dn int) float64 {
						return primitiveOverlap(expA, expB, l1, m1, n1, l2+dl, m2+dm, n2+dn, diff)
					}

					term0 := expB * float64(2*(l2+m2+n2)+3) * angularStep(0, 0, 0)
					term1 := -2 * expB * expB *
						(angularStep(2, 0, 0) + angularStep(0, 2, 0) + angularStep(0, 0, 2))
					term2 := -0.5 * (float64(l2*(l2-1))*angularStep(-2, 0, 0) +
						float64(m2*(m2-1))*angularStep(0, -2, 0) +
						float64(n2*(n2-1))*angularStep(0, 0, -2))

					sum += coeffA * coeffB * (term0 + term1 + term2)
				}
			}
			result.Set(i, j, sum)
		}
	}
	return result
}

// primitiveOverlap is the overlap of two primitive Gaussians, the product of
// the three 1D Hermite expansions with the 3D prefactor (pi/p)^(3/2).
func primitiveOverlap(expA, expB float64, l1, m1, n1, l2, m2, n2 int, diff r3.Vec) float64 {
	return math.Sqrt(math.Pow(math.Pi/(expA+expB), 3)) *
		hermiteExpansion(l1, l2, 0, diff.X, expA, expB) *
		hermiteExpansion(m1, m2, 0, diff.Y, expA, expB) *
		hermiteExpansion(n1, n2, 0, diff.Z, expA, expB)
}
