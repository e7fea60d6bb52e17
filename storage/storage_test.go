package storage

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func ExampleSymmetricMatrix() {
	m := NewSymmetricMatrix(3)
	m.Set(2, 0, 5)

	// reads through any permutation see the same storage
	fmt.Println(m.At(2, 0), m.At(0, 2))
	// Output:
	// 5 5
}

func TestSymmetricMatrixRoundTrip(t *testing.T) {
	const n = 5
	m := NewSymmetricMatrix(n)

	// writing a canonical index and reading back returns the value exactly;
	// non-canonical reads return the canonical image
	value := 0.0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			value += 1.0
			m.Set(i, j, value)
			assert.Equal(t, value, m.At(i, j))
			assert.Equal(t, value, m.At(j, i))
		}
	}

	// writing through a non-canonical index updates the canonical slot
	m.Set(4, 1, -7)
	assert.Equal(t, -7.0, m.At(1, 4))
}

func TestSymmetricMatrixCopyBlock(t *testing.T) {
	m := NewSymmetricMatrix(4)

	// a diagonal block: the kernel computed only the upper triangle and left
	// the lower one zero, which CopyBlock must not write
	block := mat.NewDense(2, 2, []float64{
		1, 2,
		0, 3,
	})
	m.CopyBlock(block, 2, 2)

	assert.Equal(t, 1.0, m.At(2, 2))
	assert.Equal(t, 2.0, m.At(2, 3))
	assert.Equal(t, 2.0, m.At(3, 2))
	assert.Equal(t, 3.0, m.At(3, 3))

	// an off-diagonal block is fully canonical
	offDiagonal := mat.NewDense(2, 2, []float64{
		4, 5,
		6, 7,
	})
	m.CopyBlock(offDiagonal, 0, 2)
	assert.Equal(t, 4.0, m.At(0, 2))
	assert.Equal(t, 6.0, m.At(1, 2))
	assert.Equal(t, 7.0, m.At(3, 1))
}

func TestSymmetricMatrixDense(t *testing.T) {
	m := NewSymmetricMatrix(3)
	m.Set(0, 1, 2)
	m.Set(1, 2, 3)

	dense := m.Dense()
	rows, cols := dense.Dims()
	require.Equal(t, 3, rows)
	require.Equal(t, 3, cols)

	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, m.At(i, j), dense.At(i, j))
			assert.Equal(t, dense.At(j, i), dense.At(i, j))
		}
	}
}

func TestEriTensorEightfoldSymmetry(t *testing.T) {
	tensor := NewEriTensor(4)
	tensor.Set(0, 1, 2, 3, 1.25)

	permutations := [][4]int{
		{0, 1, 2, 3}, {1, 0, 2, 3}, {0, 1, 3, 2}, {1, 0, 3, 2},
		{2, 3, 0, 1}, {3, 2, 0, 1}, {2, 3, 1, 0}, {3, 2, 1, 0},
	}
	for _, p := range permutations {
		assert.Equal(t, 1.25, tensor.At(p[0], p[1], p[2], p[3]), "permutation %v", p)
	}
}

func TestEriTensorRoundTrip(t *testing.T) {
	const n = 3
	tensor := NewEriTensor(n)

	// write every canonical quadruple a distinct value, then verify all
	// permutation reads
	value := 0.0
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			for k := 0; k < n; k++ {
				for l := k; l < n; l++ {
					if pairIndex(i, j) > pairIndex(k, l) {
						continue
					}
					value += 1.0
					tensor.Set(i, j, k, l, value)
					assert.Equal(t, value, tensor.At(i, j, k, l))
					assert.Equal(t, value, tensor.At(j, i, l, k))
					assert.Equal(t, value, tensor.At(k, l, i, j))
					assert.Equal(t, value, tensor.At(l, k, j, i))
				}
			}
		}
	}

	// a write through a non-canonical permutation lands in the canonical slot
	tensor.Set(2, 1, 1, 0, 42)
	assert.Equal(t, 42.0, tensor.At(0, 1, 1, 2))
}

func TestEriTensorCopyBlock(t *testing.T) {
	tensor := NewEriTensor(2)

	block := NewBlock4(2, 2, 2, 2)
	// fill only the canonical positions, as the kernels do
	for i := 0; i < 2; i++ {
		for j := i; j < 2; j++ {
			for k := 0; k < 2; k++ {
				for l := k; l < 2; l++ {
					if pairIndex(i, j) > pairIndex(k, l) {
						continue
					}
					block.Set(i, j, k, l, float64(1+i+2*j+4*k+8*l))
				}
			}
		}
	}
	tensor.CopyBlock(block, 0, 0, 0, 0)

	assert.Equal(t, block.At(0, 0, 0, 0), tensor.At(0, 0, 0, 0))
	assert.Equal(t, block.At(0, 1, 0, 1), tensor.At(1, 0, 1, 0))
	assert.Equal(t, block.At(0, 0, 1, 1), tensor.At(1, 1, 0, 0))
	// the zero left in a non-canonical block slot must not clobber the value
	// written from its canonical twin
	assert.NotZero(t, tensor.At(1, 0, 0, 0))
	assert.Equal(t, tensor.At(0, 1, 0, 0), tensor.At(1, 0, 0, 0))
}

func TestBlock4MaxAbs(t *testing.T) {
	block := NewBlock4(1, 2, 1, 2)
	block.Set(0, 0, 0, 1, -3)
	block.Set(0, 1, 0, 0, 2)
	assert.Equal(t, 3.0, block.MaxAbs())
}

func TestSymmetricMatrixJSON(t *testing.T) {
	m := NewSymmetricMatrix(2)
	m.Set(0, 1, 0.5)
	m.Set(1, 1, 2)

	encoded, err := json.Marshal(m)
	require.NoError(t, err)

	var decoded SymmetricMatrix
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 2, decoded.N())
	assert.Equal(t, 0.5, decoded.At(1, 0))
	assert.Equal(t, 2.0, decoded.At(1, 1))
}

func TestEriTensorJSON(t *testing.T) {
	tensor := NewEriTensor(2)
	tensor.Set(0, 0, 1, 1, 0.75)

	encoded, err := json.Marshal(tensor)
	require.NoError(t, err)

	var decoded EriTensor
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, 0.75, decoded.At(1, 1, 0, 0))
}

func TestCanonical4(t *testing.T) {
	i, j, k, l := canonical4(3, 2, 1, 0)
	assert.Equal(t, [4]int{0, 1, 2, 3}, [4]int{i, j, k, l})

	i, j, k, l = canonical4(0, 0, 0, 0)
	assert.Equal(t, [4]int{0, 0, 0, 0}, [4]int{i, j, k, l})

	// equal triangular pair indices keep the pairs in place
	i, j, k, l = canonical4(1, 1, 2, 0)
	assert.Equal(t, [4]int{1, 1, 0, 2}, [4]int{i, j, k, l})

	// pair order is decided by the triangular pair index
	i, j, k, l = canonical4(1, 2, 0, 1)
	assert.Equal(t, [4]int{0, 1, 1, 2}, [4]int{i, j, k, l})
}
