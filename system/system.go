/*
Package system assembles molecular systems out of atoms and a basis set.

A MolecularSystem is the input of every integral driver: it holds the atoms,
the flat ordered list of contracted Gaussian basis functions, and the shells
that group those functions. A shell collects all basis functions which are
centered on the same atom and share the same cartesian angular triple, so
integral kernels can treat them as one block.
*/
package system

import (
	"sort"
	"strconv"

	"github.com/lunny/log"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/basis"
	"github.com/TimothyStiles/molint/periodic"
)

// Atom is a nucleus with its position in atomic units. The ordinal doubles as
// the charge of the nucleus because only neutral elements are considered.
type Atom struct {
	Ordinal  int
	Position r3.Vec
}

// ShellType is the angular momentum magnitude L = i + j + k shared by every
// basis function of a shell. 0 through 4 are the usual S, P, D, F, G shells.
type ShellType int

func (s ShellType) String() string {
	switch s {
	case 0:
		return "S"
	case 1:
		return "P"
	case 2:
		return "D"
	case 3:
		return "F"
	case 4:
		return "G"
	}
	return "L=" + strconv.Itoa(int(s))
}

// Shell groups the basis functions that share an atom and an angular triple.
// The functions of a shell occupy a contiguous range of the system basis list.
type Shell struct {
	Type       ShellType
	AtomIndex  int
	BasisStart int
	BasisSize  int
}

// ShellBasis is a transient view of one shell: its type, the position it is
// centered on, and its slice of the system basis list. It borrows from the
// MolecularSystem it came from and must not outlive it.
type ShellBasis struct {
	Type   ShellType
	Center r3.Vec
	Basis  []basis.ContractedGaussian
	Start  int
	Count  int
}

// MolecularSystem is a molecule expressed in a basis set: atoms, the flat
// list of basis functions, and the shells grouping them.
type MolecularSystem struct {
	Atoms  []Atom
	Basis  []basis.ContractedGaussian
	Shells []Shell
}

// NewSystem builds a molecular system from atoms and a basis set.
//
// Basis functions are grouped into shells keyed by (atom index, angular
// triple) and emitted atom by atom with the angular triples in lexicographic
// order, so the layout is deterministic for a given input.
func NewSystem(atoms []Atom, set *basis.BasisSet) (*MolecularSystem, error) {
	type shellKey struct {
		atomIndex int
		angular   [3]int
	}

	shellMap := make(map[shellKey][]basis.ContractedGaussian)
	var keys []shellKey

	for atomIndex, atom := range atoms {
		element, err := periodic.FromOrdinal(atom.Ordinal)
		if err != nil {
			return nil, err
		}
		atomicBasis, err := set.ForElement(element)
		if err != nil {
			return nil, err
		}

		for _, function := range atomicBasis {
			key := shellKey{atomIndex: atomIndex, angular: function.Angular}
			if _, seen := shellMap[key]; !seen {
				keys = append(keys, key)
			}
			shellMap[key] = append(shellMap[key], function)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].atomIndex != keys[j].atomIndex {
			return keys[i].atomIndex < keys[j].atomIndex
		}
		a, b := keys[i].angular, keys[j].angular
		for axis := 0; axis < 3; axis++ {
			if a[axis] != b[axis] {
				return a[axis] < b[axis]
			}
		}
		return false
	})

	system := &MolecularSystem{
		Atoms:  append([]Atom(nil), atoms...),
		Shells: make([]Shell, 0, len(keys)),
	}
	for _, key := range keys {
		functions := shellMap[key]
		system.Shells = append(system.Shells, Shell{
			Type:       ShellType(key.angular[0] + key.angular[1] + key.angular[2]),
			AtomIndex:  key.atomIndex,
			BasisStart: len(system.Basis),
			BasisSize:  len(functions),
		})
		system.Basis = append(system.Basis, functions...)
	}

	log.Infof("loaded molecular system with %d atoms and %d basis functions, which were decomposed into %d shells",
		len(system.Atoms), len(system.Basis), len(system.Shells))

	return system, nil
}

// NBasis returns the number of contracted basis functions in the system.
func (s *MolecularSystem) NBasis() int {
	return len(s.Basis)
}

// NShells returns the number of shells in the system.
func (s *MolecularSystem) NShells() int {
	return len(s.Shells)
}

// ShellBasis returns the view of the shell with the given index.
func (s *MolecularSystem) ShellBasis(shellIndex int) ShellBasis {
	shell := s.Shells[shellIndex]
	return ShellBasis{
		Type:   shell.Type,
		Center: s.Atoms[shell.AtomIndex].Position,
		Basis:  s.Basis[shell.BasisStart : shell.BasisStart+shell.BasisSize],
		Start:  shell.BasisStart,
		Count:  shell.BasisSize,
	}
}
