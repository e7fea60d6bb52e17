package integrals

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/system"
)

// computeNuclear computes the electron-nuclear attraction block between two
// shells, summed over every nucleus of the system.
//
// For each primitive pair the product Gaussian centered at P is contracted
// against the Coulomb operator of nucleus C through the Hermite expansion and
// the auxiliary integrals R(t,u,v) evaluated at C - P. The E coefficients
// use the center displacement B - A, and C - P is the direction that pairs
// with it; the ERI kernel likewise evaluates R at P_CD - P_AB.
func computeNuclear(basisA, basisB system.ShellBasis, sys *system.MolecularSystem) *mat.Dense {
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

					p := expA + expB
					center := productCenter(expA, basisA.Center, expB, basisB.Center)

					// hoist the E coefficients out of the nucleus loop, they
					// only depend on the primitive pair
					ex := make([]float64, l1+l2+1)
					for t := range ex {
						ex[t] = hermiteExpansion(l1, l2, t, diff.X, expA, expB)
					}
					ey := make([]float64, m1+m2+1)
					for u := range ey {
						ey[u] = hermiteExpansion(m1, m2, u, diff.Y, expA, expB)
					}
					ez := make([]float64, n1+n2+1)
					for v := range ez {
						ez[v] = hermiteExpansion(n1, n2, v, diff.Z, expA, expB)
					}

					for _, atom := range sys.Atoms {
						diffCP := r3.Sub(atom.Position, center)

						hermiteSum := 0.0
						for t := 0; t <= l1+l2; t++ {
							for u := 0; u <= m1+m2; u++ {
								for v := 0; v <= n1+n2; v++ {
									hermiteSum += ex[t] * ey[u] * ez[v] *
										coulombAuxiliary(t, u, v, 0, p, diffCP)
								}
							}
						}

						sum += coeffA * coeffB * hermiteSum *
							-2 * math.Pi * float64(atom.Ordinal) / p
					}
				}
			}
			result.Set(i, j, sum)
		}
	}
	return result
}
