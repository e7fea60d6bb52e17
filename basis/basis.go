/*
Package basis provides Gaussian basis sets for molecular integral evaluation.

A basis set maps each element to the list of contracted Cartesian Gaussian
basis functions that represent its electrons. Basis sets are loaded from JSON
files in the Basis Set Exchange schema, the format served by
https://www.basissetexchange.org.
*/
package basis

import (
	"errors"
	"fmt"

	"github.com/TimothyStiles/molint/periodic"
)

// ErrUnknownElement is returned when a basis set has no entry for an element.
var ErrUnknownElement = errors.New("basis: element not in basis set")

// ContractedGaussian is a single contracted Cartesian Gaussian basis function
//
//	phi(r) = sum_k c_k * x^i * y^j * z^k * exp(-alpha_k * r^2)
//
// centered on an atom. Coefficients and Exponents always have the same length,
// and the stored coefficients already carry the per-primitive normalization
// constant, so they can be used directly in integral formulas.
//
// A ContractedGaussian is never mutated after construction.
type ContractedGaussian struct {
	Coefficients []float64
	Exponents    []float64
	// Angular holds the cartesian angular exponents (i, j, k) of the
	// polynomial prefactor x^i y^j z^k.
	Angular [3]int
}

// Primitives returns the number of primitive Gaussians in the contraction.
func (c ContractedGaussian) Primitives() int {
	return len(c.Coefficients)
}

// TotalAngular returns the angular momentum magnitude L = i + j + k.
func (c ContractedGaussian) TotalAngular() int {
	return c.Angular[0] + c.Angular[1] + c.Angular[2]
}

// BasisSet maps elements to their contracted Gaussian basis functions.
// A BasisSet is immutable after loading.
type BasisSet struct {
	elements map[periodic.Element][]ContractedGaussian
}

// ForElement returns the basis functions of the given element, in the order
// they were emitted by the loader. The returned slice is shared and must not
// be modified.
func (b *BasisSet) ForElement(element periodic.Element) ([]ContractedGaussian, error) {
	functions, ok := b.elements[element]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, element.Symbol())
	}
	return functions, nil
}

// Elements returns the number of elements the basis set covers.
func (b *BasisSet) Elements() int {
	return len(b.elements)
}
