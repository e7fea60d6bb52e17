package integrals

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/system"
)

// computeOverlap computes the overlap block between two shells. Entries whose
// global indices are non-canonical are left zero; the storage layer skips
// them when the block is copied in.
func computeOverlap(basisA, basisB system.ShellBasis) *mat.Dense {
	diff := r3.Sub(basisB.Center, basisA.Center)

	result := mat.NewDense(basisA.Count, basisB.Count, nil)

	// basisA holds all basis functions that are part of shell A, basisB those
	// of shell B. The two may be the same shell. The block computed here is
	// S_AB in the total overlap matrix S, and because S_kl = S_lk only pairs
	// with globalA <= globalB are evaluated.
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

					sum += coeffA * coeffB *
						hermiteExpansion(l1, l2, 0, diff.X, expA, expB) *
						hermiteExpansion(m1, m2, 0, diff.Y, expA, expB) *
						hermiteExpansion(n1, n2, 0, diff.Z, expA, expB) *
						math.Sqrt(math.Pow(math.Pi/(expA+expB), 3))
				}
			}
			result.Set(i, j, sum)
		}
	}
	return result
}
