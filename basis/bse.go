package basis

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/lunny/log"

	"github.com/TimothyStiles/molint/periodic"
)

/******************************************************************************

Basis Set Exchange JSON parsing begins here.

The schema looks like this (heavily truncated):

	{
	  "elements": {
	    "1": {
	      "electron_shells": [
	        {
	          "function_type": "gto",
	          "angular_momentum": [0],
	          "exponents": ["0.3425250914E+01", ...],
	          "coefficients": [["0.1543289673E+00", ...]]
	        }
	      ]
	    }
	  }
	}

Exponents and coefficients arrive as strings and are parsed as doubles. One
electron shell may carry several angular momenta (an SP shell has
angular_momentum [0, 1] and one coefficient row per momentum, sharing the
exponents). Spherical-harmonic shells cannot be integrated by the cartesian
engine and are skipped with a warning.

******************************************************************************/

// ErrMalformedBasis is the root of all basis file shape errors.
var ErrMalformedBasis = errors.New("basis: malformed basis set")

type bseBasisSet struct {
	Elements map[string]bseElement `json:"elements"`
}

type bseElement struct {
	ElectronShells []bseElectronShell `json:"electron_shells"`
}

type bseElectronShell struct {
	FunctionType    string     `json:"function_type"`
	AngularMomentum []int      `json:"angular_momentum"`
	Exponents       []string   `json:"exponents"`
	Coefficients    [][]string `json:"coefficients"`
}

// Load reads a Basis Set Exchange JSON file from disk.
func Load(path string) (*BasisSet, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading basis set %s: %w", path, err)
	}
	return Parse(file)
}

// Parse parses a basis set from Basis Set Exchange JSON. The coefficients of
// the returned basis functions carry the primitive normalization constants.
func Parse(file []byte) (*BasisSet, error) {
	var raw bseBasisSet
	if err := json.Unmarshal(file, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBasis, err)
	}
	if raw.Elements == nil {
		return nil, fmt.Errorf("%w: missing \"elements\" key", ErrMalformedBasis)
	}

	elements := make(map[periodic.Element][]ContractedGaussian, len(raw.Elements))

	// map iteration order is random, so walk the ordinals sorted to keep
	// warnings and errors deterministic.
	ordinals := make([]string, 0, len(raw.Elements))
	for ordinal := range raw.Elements {
		ordinals = append(ordinals, ordinal)
	}
	sort.Strings(ordinals)

	for _, ordinalKey := range ordinals {
		element, err := parseOrdinalKey(ordinalKey)
		if err != nil {
			return nil, err
		}

		var elementBasis []ContractedGaussian
		for _, shell := range raw.Elements[ordinalKey].ElectronShells {
			functions, err := parseElectronShell(element, shell)
			if err != nil {
				return nil, err
			}
			elementBasis = append(elementBasis, functions...)
		}
		elements[element] = elementBasis
	}

	return &BasisSet{elements: elements}, nil
}

func parseOrdinalKey(key string) (periodic.Element, error) {
	ordinal, err := strconv.Atoi(key)
	if err != nil {
		return 0, fmt.Errorf("%w: element key %q is not an ordinal", ErrMalformedBasis, key)
	}
	element, err := periodic.FromOrdinal(ordinal)
	if err != nil {
		return 0, fmt.Errorf("%w: element key %q: %v", ErrMalformedBasis, key, err)
	}
	return element, nil
}

// parseElectronShell expands one electron shell into contracted Gaussians,
// one per cartesian angular triple per angular momentum.
func parseElectronShell(element periodic.Element, shell bseElectronShell) ([]ContractedGaussian, error) {
	switch shell.FunctionType {
	case "gto", "gto_cartesian":
		// equivalent: angular momentum is represented as cartesian polynomials
	case "gto_spherical":
		// spherical-harmonic shells would need a solid-harmonic transformation
		// before the cartesian integral kernels could consume them
		log.Warnf("skipping unsupported basis function type %q on element %s", shell.FunctionType, element.Symbol())
		return nil, nil
	default:
		log.Warnf("skipping unknown basis function type %q on element %s", shell.FunctionType, element.Symbol())
		return nil, nil
	}

	if len(shell.Coefficients) != len(shell.AngularMomentum) {
		return nil, fmt.Errorf("%w: element %s: %d coefficient rows for %d angular momenta",
			ErrMalformedBasis, element.Symbol(), len(shell.Coefficients), len(shell.AngularMomentum))
	}

	exponents := make([]float64, len(shell.Exponents))
	for i, raw := range shell.Exponents {
		exponent, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: element %s: exponent %q: %v", ErrMalformedBasis, element.Symbol(), raw, err)
		}
		exponents[i] = exponent
	}

	var functions []ContractedGaussian
	for index, angularMagnitude := range shell.AngularMomentum {
		row := shell.Coefficients[index]
		if len(row) != len(exponents) {
			return nil, fmt.Errorf("%w: element %s: %d coefficients for %d exponents",
				ErrMalformedBasis, element.Symbol(), len(row), len(exponents))
		}

		rawCoefficients := make([]float64, len(row))
		for i, raw := range row {
			coefficient, err := strconv.ParseFloat(raw, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: element %s: coefficient %q: %v", ErrMalformedBasis, element.Symbol(), raw, err)
			}
			rawCoefficients[i] = coefficient
		}

		for _, angular := range angularVectors(angularMagnitude) {
			coefficients := make([]float64, len(rawCoefficients))
			for i, coefficient := range rawCoefficients {
				coefficients[i] = coefficient * gaussianNorm(exponents[i], angular)
			}
			functions = append(functions, ContractedGaussian{
				Coefficients: coefficients,
				Exponents:    exponents,
				Angular:      angular,
			})
		}
	}
	return functions, nil
}

// angularVectors generates all (i, j, k) with i+j+k = angularMagnitude in
// lexicographic order.
func angularVectors(angularMagnitude int) [][3]int {
	vectors := make([][3]int, 0, (angularMagnitude+1)*(angularMagnitude+2)/2)
	for i := 0; i <= angularMagnitude; i++ {
		for j := 0; j <= angularMagnitude-i; j++ {
			vectors = append(vectors, [3]int{i, j, angularMagnitude - i - j})
		}
	}
	return vectors
}

// gaussianNorm is the normalization constant of a primitive Gaussian with the
// given exponent and cartesian angular exponents.
func gaussianNorm(exponent float64, angular [3]int) float64 {
	angularMagnitude := angular[0] + angular[1] + angular[2]

	// product over axes of (2a)! / a!, which equals 2^L times the product of
	// the odd double factorials (2a-1)!!
	denominator := 1.0
	for _, a := range angular {
		for factor := a + 1; factor <= 2*a; factor++ {
			denominator *= float64(factor)
		}
	}

	return math.Sqrt(math.Sqrt(math.Pow(2/math.Pi*exponent, 3))) *
		math.Sqrt(math.Pow(8*exponent, float64(angularMagnitude))/denominator)
}
