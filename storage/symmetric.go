package storage

import (
	"encoding/json"

	"gonum.org/v1/gonum/mat"
)

// SymmetricMatrix is an N by N symmetric matrix of which only the upper
// triangle is stored, N(N+1)/2 values in total. Reads and writes canonicalize
// the index, so m.At(i, j) and m.At(j, i) address the same storage.
type SymmetricMatrix struct {
	data []float64
	n    int
}

// NewSymmetricMatrix returns a zero-initialized n by n symmetric matrix.
func NewSymmetricMatrix(n int) *SymmetricMatrix {
	return &SymmetricMatrix{
		data: make([]float64, n*(n+1)/2),
		n:    n,
	}
}

// N returns the dimension of the matrix.
func (m *SymmetricMatrix) N() int {
	return m.n
}

// At returns the element at (i, j), canonicalizing the index.
func (m *SymmetricMatrix) At(i, j int) float64 {
	i, j = canonical2(i, j)
	return m.data[linearizeUpperTriangular(m.n, i, j)]
}

// Set writes the element at (i, j), canonicalizing the index.
func (m *SymmetricMatrix) Set(i, j int, value float64) {
	i, j = canonical2(i, j)
	m.data[linearizeUpperTriangular(m.n, i, j)] = value
}

// CopyBlock copies a dense block computed for the basis ranges starting at
// (startI, startJ) into the matrix. Only canonical destinations are written,
// so kernels may hand over blocks with untouched zeros in the positions they
// skipped for symmetry.
func (m *SymmetricMatrix) CopyBlock(block *mat.Dense, startI, startJ int) {
	rows, cols := block.Dims()
	for i := 0; i < rows; i++ {
		globalI := startI + i
		for j := 0; j < cols; j++ {
			globalJ := startJ + j
			if globalI <= globalJ {
				m.data[linearizeUpperTriangular(m.n, globalI, globalJ)] = block.At(i, j)
			}
		}
	}
}

// Dense reconstructs the full n by n matrix, mirroring the stored triangle.
// Useful for diagnostics and formatted output.
func (m *SymmetricMatrix) Dense() *mat.Dense {
	dense := mat.NewDense(m.n, m.n, nil)
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			dense.Set(i, j, m.At(i, j))
		}
	}
	return dense
}

// symmetricMatrixJSON is the serialized shape of a SymmetricMatrix.
type symmetricMatrixJSON struct {
	N      int       `json:"n"`
	Packed []float64 `json:"packed"`
}

// MarshalJSON serializes the matrix as its dimension plus the packed upper
// triangle.
func (m *SymmetricMatrix) MarshalJSON() ([]byte, error) {
	return json.Marshal(symmetricMatrixJSON{N: m.n, Packed: m.data})
}

// UnmarshalJSON restores a matrix serialized by MarshalJSON.
func (m *SymmetricMatrix) UnmarshalJSON(data []byte) error {
	var raw symmetricMatrixJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.n = raw.N
	m.data = raw.Packed
	return nil
}
