package integrals

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/basis"
	"github.com/TimothyStiles/molint/system"
)

// ExpansionCoefficients holds, for one ordered pair of contracted basis
// functions, all Hermite expansion coefficients of their primitive pairs. For
// each cartesian axis there is one K_A by K_B matrix per Hermite order t, up
// to the combined angular momentum on that axis.
type ExpansionCoefficients struct {
	axes [3][]*mat.Dense
}

// newExpansionCoefficients computes the coefficient tables for the pair
// (a, b) whose centers are separated by diff.
func newExpansionCoefficients(a, b basis.ContractedGaussian, diff r3.Vec) *ExpansionCoefficients {
	distances := [3]float64{diff.X, diff.Y, diff.Z}

	var coefficients ExpansionCoefficients
	for axis := 0; axis < 3; axis++ {
		i := a.Angular[axis]
		j := b.Angular[axis]

		tables := make([]*mat.Dense, i+j+1)
		for t := range tables {
			table := mat.NewDense(a.Primitives(), b.Primitives(), nil)
			for ki, expA := range a.Exponents {
				for kj, expB := range b.Exponents {
					table.Set(ki, kj, hermiteExpansion(i, j, t, distances[axis], expA, expB))
				}
			}
			tables[t] = table
		}
		coefficients.axes[axis] = tables
	}
	return &coefficients
}

// Coefficient returns E^{ij}_t on the given axis for the primitive pair
// (ki, kj), where i and j are the angular exponents the table was built for.
func (e *ExpansionCoefficients) Coefficient(axis, ki, kj, t int) float64 {
	return e.axes[axis][t].At(ki, kj)
}

// hermiteCache precomputes the expansion coefficients of every ordered pair
// of basis functions in a system. The ERI shell-quartet loop reads each pair
// table many times, once per partner quartet, so hoisting them out of the
// inner loop trades memory proportional to N_basis^2 * K^2 * (L+1) for a
// large amount of redundant recursion work.
type hermiteCache struct {
	pairs  []*ExpansionCoefficients
	nBasis int
}

// newHermiteCache walks all ordered shell pairs and fills the pair tables,
// sharing the center displacement across each shell pair.
func newHermiteCache(sys *system.MolecularSystem) *hermiteCache {
	cache := &hermiteCache{
		pairs:  make([]*ExpansionCoefficients, sys.NBasis()*sys.NBasis()),
		nBasis: sys.NBasis(),
	}

	for a := 0; a < sys.NShells(); a++ {
		basisA := sys.ShellBasis(a)
		for b := 0; b < sys.NShells(); b++ {
			basisB := sys.ShellBasis(b)
			diff := r3.Sub(basisB.Center, basisA.Center)

			for i, functionA := range basisA.Basis {
				for j, functionB := range basisB.Basis {
					globalI := basisA.Start + i
					globalJ := basisB.Start + j
					cache.pairs[globalI*cache.nBasis+globalJ] = newExpansionCoefficients(functionA, functionB, diff)
				}
			}
		}
	}
	return cache
}

// at returns the expansion coefficients of the ordered basis pair (i, j).
func (c *hermiteCache) at(i, j int) *ExpansionCoefficients {
	return c.pairs[i*c.nBasis+j]
}
