/*
Package storage provides compact storage for symmetric integral results.

The one-electron matrices S, T and V are symmetric, and the two-electron
repulsion tensor carries the eightfold permutational symmetry

	(ij|kl) = (ji|kl) = (ij|lk) = (ji|lk) = (kl|ij) = ...

so both types store only one representative per equivalence class and
canonicalize every index on access. Integral kernels hand their results over
as dense per-shell blocks; the block-copy routines keep only the canonical
entries, so kernels never have to reason about aliasing.
*/
package storage

// canonical2 permutes (i, j) such that i <= j.
func canonical2(i, j int) (int, int) {
	if i <= j {
		return i, j
	}
	return j, i
}

// pairIndex returns the triangular index i(i+1)/2 + j of an ordered pair
// i <= j, used to compare index pairs. Distinct pairs can share an index,
// e.g. (0,2) and (1,1).
func pairIndex(i, j int) int {
	return i*(i+1)/2 + j
}

// canonical4 permutes (i, j, k, l) such that
//  1. i <= j
//  2. k <= l
//  3. i(i+1)/2+j <= k(k+1)/2+l
func canonical4(i, j, k, l int) (int, int, int, int) {
	i, j = canonical2(i, j)
	k, l = canonical2(k, l)
	if pairIndex(i, j) <= pairIndex(k, l) {
		return i, j, k, l
	}
	return k, l, i, j
}

// linearizeUpperTriangular maps a canonical pair i <= j into the packed upper
// triangle of an n by n matrix.
func linearizeUpperTriangular(n, i, j int) int {
	return n*i + j - i*(i+1)/2
}

// linearizeSymmetric4 maps a canonical quadruple into the packed eightfold
// symmetric storage of an n^4 tensor.
func linearizeSymmetric4(n, i, j, k, l int) int {
	blockIJ := linearizeUpperTriangular(n, i, j)
	blockKL := linearizeUpperTriangular(n, k, l)
	return blockIJ*n*(n+1)/2 + blockKL
}
