package integrals

import (
	"math"
	"time"

	"github.com/lunny/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/storage"
	"github.com/TimothyStiles/molint/system"
)

// ScreeningThreshold is the Cauchy-Schwarz screening cutoff tau. A shell
// quartet (a,b,c,d) is skipped when norm(a,b)*norm(c,d) < tau, where
// norm(a,b) = sqrt(max |(ab|ab)|) over the shell pair block. The Cauchy-
// Schwarz inequality |(ab|cd)|^2 <= (ab|ab)(cd|cd) bounds every skipped
// integral by tau. Set to 0 to disable screening.
var ScreeningThreshold = 1e-6

// ERI computes the four-index electron repulsion tensor of the system.
//
// The driver builds the Hermite expansion cache once, runs a Cauchy-Schwarz
// screening pass over the diagonal quartets (ab|ab), and then walks all
// canonical shell quartets a <= b, c <= d, (a,b) <= (c,d). Each surviving
// quartet block is evaluated with the McMurchie-Davidson kernel and folded
// into the eightfold-symmetric storage.
func ERI(sys *system.MolecularSystem) *storage.EriTensor {
	nShells := sys.NShells()

	start := time.Now()
	cache := newHermiteCache(sys)
	log.Debugf("computing hermite expansion coefficient cache took %v", time.Since(start))

	output := storage.NewEriTensor(sys.NBasis())

	// diagonal pass: every (ab|ab) both seeds the screening norms and is a
	// canonical quartet in its own right, so store it while it's hot
	start = time.Now()
	// norms is indexed a*nShells+b: the triangular pair index is a preorder
	// with ties between distinct pairs, so it cannot key this table
	norms := make([]float64, nShells*nShells)
	for a := 0; a < nShells; a++ {
		basisA := sys.ShellBasis(a)
		for b := a; b < nShells; b++ {
			basisB := sys.ShellBasis(b)

			block := eriBlock(basisA, basisB, basisA, basisB, cache)
			norms[a*nShells+b] = math.Sqrt(block.MaxAbs())
			output.CopyBlock(block, basisA.Start, basisB.Start, basisA.Start, basisB.Start)
		}
	}
	diagonalElapsed := time.Since(start)
	log.Debugf("diagonal pass took %v, extrapolated total %v",
		diagonalElapsed,
		time.Duration(float64(diagonalElapsed)*float64(nShells*nShells)/8))

	screened, total := 0, 0
	for a := 0; a < nShells; a++ {
		basisA := sys.ShellBasis(a)
		for b := a; b < nShells; b++ {
			basisB := sys.ShellBasis(b)
			normAB := norms[a*nShells+b]

			minBra := pairIndex(basisA.Start, basisB.Start)

			for c := 0; c < nShells; c++ {
				basisC := sys.ShellBasis(c)

				for d := c; d < nShells; d++ {
					if c == a && d == b {
						// stored during the diagonal pass
						continue
					}
					basisD := sys.ShellBasis(d)

					// skip quartets that cannot contain a canonical tuple.
					// The comparison runs on basis pair indices rather than
					// shell pair indices: the triangular index is a preorder
					// and distinct pairs can tie, so tied tuples have to be
					// evaluated in both orders to fill both storage slots.
					maxKet := pairIndex(basisC.Start+basisC.Count-1, basisD.Start+basisD.Count-1)
					if maxKet < minBra {
						continue
					}
					total++

					if normAB*norms[c*nShells+d] < ScreeningThreshold {
						screened++
						continue
					}

					block := eriBlock(basisA, basisB, basisC, basisD, cache)
					output.CopyBlock(block, basisA.Start, basisB.Start, basisC.Start, basisD.Start)
				}
			}
		}
	}

	if total > 0 {
		log.Debugf("screened %d of %d off-diagonal shell quartets (%.1f%%)",
			screened, total, 100*float64(screened)/float64(total))
	}
	return output
}

// pairIndex returns the triangular index a(a+1)/2 + b of an ordered index
// pair a <= b. Distinct pairs can share an index.
func pairIndex(a, b int) int {
	return a*(a+1)/2 + b
}

// eriBlock computes the dense quartet block, dispatching to the closed-form
// fast path when all four shells are s shells.
func eriBlock(basisA, basisB, basisC, basisD system.ShellBasis, cache *hermiteCache) *storage.Block4 {
	if basisA.Type == 0 && basisB.Type == 0 && basisC.Type == 0 && basisD.Type == 0 {
		return ssssBlock(basisA, basisB, basisC, basisD)
	}
	return generalBlock(basisA, basisB, basisC, basisD, cache)
}

// generalBlock evaluates a shell quartet with the McMurchie-Davidson
// reduction, reading the Hermite expansion coefficients from the cache.
// Inside the block only tuples whose global indices are canonical are
// computed; the rest stay zero and are skipped by the storage layer.
func generalBlock(basisA, basisB, basisC, basisD system.ShellBasis, cache *hermiteCache) *storage.Block4 {
	block := storage.NewBlock4(basisA.Count, basisB.Count, basisC.Count, basisD.Count)

	for i, a := range basisA.Basis {
		globalA := basisA.Start + i
		for j, b := range basisB.Basis {
			globalB := basisB.Start + j
			if globalB < globalA {
				continue
			}
			expansionAB := cache.at(globalA, globalB)
			pairAB := pairIndex(globalA, globalB)

			for k, c := range basisC.Basis {
				globalC := basisC.Start + k
				for l, d := range basisD.Basis {
					globalD := basisD.Start + l
					if globalD < globalC || pairIndex(globalC, globalD) < pairAB {
						continue
					}
					expansionCD := cache.at(globalC, globalD)

					sum := 0.0
					for ki, coeffA := range a.Coefficients {
						expA := a.Exponents[ki]
						for kj, coeffB := range b.Coefficients {
							expB := b.Exponents[kj]

							p := expA + expB
							centerAB := productCenter(expA, basisA.Center, expB, basisB.Center)

							for kk, coeffC := range c.Coefficients {
								expC := c.Exponents[kk]
								for kl, coeffD := range d.Coefficients {
									expD := d.Exponents[kl]

									q := expC + expD
									centerCD := productCenter(expC, basisC.Center, expD, basisD.Center)

									sum += coeffA * coeffB * coeffC * coeffD *
										2 * math.Pow(math.Pi, 2.5) / (p * q * math.Sqrt(p+q)) *
										hermiteContraction(
											expansionAB, expansionCD,
											ki, kj, kk, kl,
											a.Angular, b.Angular, c.Angular, d.Angular,
											p*q/(p+q), r3.Sub(centerCD, centerAB),
										)
								}
							}
						}
					}
					block.Set(i, j, k, l, sum)
				}
			}
		}
	}
	return block
}

// hermiteContraction runs the six-fold Hermite index sum coupling the bra and
// ket expansions through the Coulomb auxiliary integrals.
func hermiteContraction(
	expansionAB, expansionCD *ExpansionCoefficients,
	ki, kj, kk, kl int,
	angularA, angularB, angularC, angularD [3]int,
	alpha float64, diff r3.Vec,
) float64 {
	sum := 0.0
	for t1 := 0; t1 <= angularA[0]+angularB[0]; t1++ {
		et1 := expansionAB.Coefficient(0, ki, kj, t1)
		for u1 := 0; u1 <= angularA[1]+angularB[1]; u1++ {
			eu1 := expansionAB.Coefficient(1, ki, kj, u1)
			for v1 := 0; v1 <= angularA[2]+angularB[2]; v1++ {
				bra := et1 * eu1 * expansionAB.Coefficient(2, ki, kj, v1)

				for t2 := 0; t2 <= angularC[0]+angularD[0]; t2++ {
					et2 := expansionCD.Coefficient(0, kk, kl, t2)
					for u2 := 0; u2 <= angularC[1]+angularD[1]; u2++ {
						eu2 := expansionCD.Coefficient(1, kk, kl, u2)
						for v2 := 0; v2 <= angularC[2]+angularD[2]; v2++ {
							ket := et2 * eu2 * expansionCD.Coefficient(2, kk, kl, v2)

							term := bra * ket *
								coulombAuxiliary(t1+t2, u1+u2, v1+v2, 0, alpha, diff)
							if (t2+u2+v2)%2 == 1 {
								term = -term
							}
							sum += term
						}
					}
				}
			}
		}
	}
	return sum
}

// ssssBlock is the closed-form fast path for quartets of four s shells: the
// Hermite expansion collapses to the Gaussian product prefactors and a single
// Boys evaluation per primitive quartet.
func ssssBlock(basisA, basisB, basisC, basisD system.ShellBasis) *storage.Block4 {
	diffAB := r3.Sub(basisB.Center, basisA.Center)
	diffCD := r3.Sub(basisD.Center, basisC.Center)

	block := storage.NewBlock4(basisA.Count, basisB.Count, basisC.Count, basisD.Count)

	for i, a := range basisA.Basis {
		globalA := basisA.Start + i
		for j, b := range basisB.Basis {
			globalB := basisB.Start + j
			if globalB < globalA {
				continue
			}
			pairAB := pairIndex(globalA, globalB)

			for k, c := range basisC.Basis {
				globalC := basisC.Start + k
				for l, d := range basisD.Basis {
					globalD := basisD.Start + l
					if globalD < globalC || pairIndex(globalC, globalD) < pairAB {
						continue
					}

					sum := 0.0
					for ki, coeffA := range a.Coefficients {
						expA := a.Exponents[ki]
						for kj, coeffB := range b.Coefficients {
							expB := b.Exponents[kj]

							p := expA + expB
							qAB := expA * expB / p
							centerAB := productCenter(expA, basisA.Center, expB, basisB.Center)

							for kk, coeffC := range c.Coefficients {
								expC := c.Exponents[kk]
								for kl, coeffD := range d.Coefficients {
									expD := d.Exponents[kl]

									q := expC + expD
									qCD := expC * expD / q
									centerCD := productCenter(expC, basisC.Center, expD, basisD.Center)
									diff := r3.Sub(centerCD, centerAB)

									sum += coeffA * coeffB * coeffC * coeffD *
										math.Exp(-qAB*r3.Norm2(diffAB)) *
										math.Exp(-qCD*r3.Norm2(diffCD)) *
										boys(0, p*q/(p+q)*r3.Norm2(diff)) *
										2 * math.Pow(math.Pi, 2.5) / (p * q * math.Sqrt(p+q))
								}
							}
						}
					}
					block.Set(i, j, k, l, sum)
				}
			}
		}
	}
	return block
}
