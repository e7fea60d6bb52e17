/*
Package integrals evaluates molecular integrals over contracted cartesian
Gaussian basis functions.

The four entry points Overlap, Kinetic, Nuclear and ERI take a
system.MolecularSystem and return the overlap matrix S, the kinetic energy
matrix T, the electron-nuclear attraction matrix V and the electron repulsion
tensor G. The one-electron drivers walk all canonical shell pairs and copy
each dense block into packed symmetric storage; the ERI driver additionally
precomputes a Hermite expansion cache and screens negligible shell quartets
with the Cauchy-Schwarz bound.

Given a valid molecular system, evaluation is total: there is no error path,
no IO and no shared mutable state, so independent systems may be processed
concurrently from separate goroutines.
*/
package integrals

import (
	"github.com/lunny/log"
	"gonum.org/v1/gonum/mat"

	"github.com/TimothyStiles/molint/storage"
	"github.com/TimothyStiles/molint/system"
)

// Overlap computes the overlap matrix S of the system.
func Overlap(sys *system.MolecularSystem) *storage.SymmetricMatrix {
	return oneElectron("overlap", sys, computeOverlap)
}

// Kinetic computes the kinetic energy matrix T of the system.
func Kinetic(sys *system.MolecularSystem) *storage.SymmetricMatrix {
	return oneElectron("kinetic", sys, computeKinetic)
}

// Nuclear computes the electron-nuclear attraction matrix V of the system,
// summed over all nuclei.
func Nuclear(sys *system.MolecularSystem) *storage.SymmetricMatrix {
	return oneElectron("nuclear", sys, func(basisA, basisB system.ShellBasis) *mat.Dense {
		return computeNuclear(basisA, basisB, sys)
	})
}

// oneElectron runs the canonical shell pair loop shared by all one-electron
// integral drivers and folds the per-pair blocks into symmetric storage.
func oneElectron(name string, sys *system.MolecularSystem, kernel func(a, b system.ShellBasis) *mat.Dense) *storage.SymmetricMatrix {
	output := storage.NewSymmetricMatrix(sys.NBasis())

	for a := 0; a < sys.NShells(); a++ {
		basisA := sys.ShellBasis(a)
		for b := a; b < sys.NShells(); b++ {
			basisB := sys.ShellBasis(b)

			block := kernel(basisA, basisB)
			output.CopyBlock(block, basisA.Start, basisB.Start)
		}
	}

	log.Debugf("%s:\n%.4f", name, mat.Formatted(output.Dense()))
	return output
}
