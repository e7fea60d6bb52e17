/*
Package periodic provides the periodic table of the neutral elements.

Elements are identified by their ordinal, which for a neutral atom is also the
charge of its nucleus. Only ordinals 1 through 118 are valid.
*/
package periodic

import (
	"errors"
	"fmt"
)

// ErrInvalidOrdinal is returned when an ordinal falls outside 1..118.
var ErrInvalidOrdinal = errors.New("periodic: ordinal outside 1..118")

// Element is a chemical element, identified by its ordinal.
type Element int

// MaxOrdinal is the highest element ordinal the table knows about (Oganesson).
const MaxOrdinal = 118

// symbols[ordinal] is the element symbol. Index 0 is unused.
var symbols = [MaxOrdinal + 1]string{
	1: "H", "He",
	"Li", "Be", "B", "C", "N", "O", "F", "Ne",
	"Na", "Mg", "Al", "Si", "P", "S", "Cl", "Ar",
	"K", "Ca", "Sc", "Ti", "V", "Cr", "Mn", "Fe", "Co", "Ni", "Cu", "Zn",
	"Ga", "Ge", "As", "Se", "Br", "Kr",
	"Rb", "Sr", "Y", "Zr", "Nb", "Mo", "Tc", "Ru", "Rh", "Pd", "Ag", "Cd",
	"In", "Sn", "Sb", "Te", "I", "Xe",
	"Cs", "Ba",
	"La", "Ce", "Pr", "Nd", "Pm", "Sm", "Eu", "Gd", "Tb", "Dy", "Ho", "Er", "Tm", "Yb", "Lu",
	"Hf", "Ta", "W", "Re", "Os", "Ir", "Pt", "Au", "Hg",
	"Tl", "Pb", "Bi", "Po", "At", "Rn",
	"Fr", "Ra",
	"Ac", "Th", "Pa", "U", "Np", "Pu", "Am", "Cm", "Bk", "Cf", "Es", "Fm", "Md", "No", "Lr",
	"Rf", "Db", "Sg", "Bh", "Hs", "Mt", "Ds", "Rg", "Cn",
	"Nh", "Fl", "Mc", "Lv", "Ts", "Og",
}

var bySymbol = make(map[string]Element, MaxOrdinal)

func init() {
	for ordinal := 1; ordinal <= MaxOrdinal; ordinal++ {
		bySymbol[symbols[ordinal]] = Element(ordinal)
	}
}

// FromOrdinal returns the element with the given ordinal, or ErrInvalidOrdinal
// if the ordinal is outside 1..118.
func FromOrdinal(ordinal int) (Element, error) {
	if ordinal < 1 || ordinal > MaxOrdinal {
		return 0, fmt.Errorf("%w: %d", ErrInvalidOrdinal, ordinal)
	}
	return Element(ordinal), nil
}

// FromSymbol looks an element up by its symbol, i.e "He" for Helium.
// Symbols are case sensitive.
func FromSymbol(symbol string) (Element, bool) {
	element, ok := bySymbol[symbol]
	return element, ok
}

// Symbol returns the symbol of the element, i.e "He" for Helium.
func (e Element) Symbol() string {
	if e < 1 || e > MaxOrdinal {
		return fmt.Sprintf("Element(%d)", int(e))
	}
	return symbols[e]
}

// Ordinal returns the ordinal of the element, which for neutral atoms equals
// the charge of the nucleus.
func (e Element) Ordinal() int {
	return int(e)
}
