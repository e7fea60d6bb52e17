package system

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/TimothyStiles/molint/periodic"
)

/******************************************************************************

Molecule file IO begins here.

A molecule file is a JSON array of atoms in atomic units:

	[
	  {"element": "8", "position": [0.0, 0.0, -0.31]},
	  {"element": "H", "position": [0.4175, 0.0, 0.83]}
	]

The element field accepts the ordinal as a string or the element symbol.

******************************************************************************/

type configAtom struct {
	Element  string     `json:"element"`
	Position [3]float64 `json:"position"`
}

// LoadMolecule reads a molecule JSON file from disk.
func LoadMolecule(path string) ([]Atom, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading molecule %s: %w", path, err)
	}
	return ParseMolecule(file)
}

// ParseMolecule parses a molecule from a JSON array of atom documents.
func ParseMolecule(file []byte) ([]Atom, error) {
	var configAtoms []configAtom
	if err := json.Unmarshal(file, &configAtoms); err != nil {
		return nil, fmt.Errorf("parsing molecule: %w", err)
	}

	atoms := make([]Atom, len(configAtoms))
	for i, config := range configAtoms {
		element, err := parseElement(config.Element)
		if err != nil {
			return nil, fmt.Errorf("atom %d: %w", i, err)
		}
		atoms[i] = Atom{
			Ordinal:  element.Ordinal(),
			Position: r3.Vec{X: config.Position[0], Y: config.Position[1], Z: config.Position[2]},
		}
	}
	return atoms, nil
}

func parseElement(field string) (periodic.Element, error) {
	if ordinal, err := strconv.Atoi(field); err == nil {
		return periodic.FromOrdinal(ordinal)
	}
	if element, ok := periodic.FromSymbol(field); ok {
		return element, nil
	}
	return 0, fmt.Errorf("element %q is neither an ordinal nor a symbol", field)
}
