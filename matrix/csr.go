// SPDX-License-Identifier: MIT
// Package: matrix
//
// File: csr.go
// Role: Compressed sparse row storage for square symmetric matrices.
// Policy:
//   - Immutable after construction; safe for concurrent readers.
//   - Implements gonum mat.Symmetric so any gonum routine accepts a *CSR.
//   - Column indices inside a row are strictly increasing; explicit zeros are dropped.
// AI-HINT (file):
//   - Use MulVecTo in iterative solvers: it is O(nnz) and allocation-free.
//   - Use ToSymDense only when a dense factorization is acceptable (O(n²) memory).

package matrix

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Triplet is one (row, col, value) entry used to assemble a CSR.
type Triplet struct {
	Row, Col int
	Val      float64
}

// CSR is an n×n symmetric sparse matrix in compressed sparse row layout.
//
// rowPtr has n+1 entries; the non-zeros of row i live in
// colIdx[rowPtr[i]:rowPtr[i+1]] and vals[rowPtr[i]:rowPtr[i+1]].
type CSR struct {
	n      int
	rowPtr []int
	colIdx []int
	vals   []float64
}

// compile-time interface check
var _ mat.Symmetric = (*CSR)(nil)

// NewSymmetricCSR assembles a CSR from triplets, summing duplicates.
//
// Implementation:
//   - Stage 1: Validate n > 0, indices in range, values finite.
//   - Stage 2: Bucket triplets by row, sort by column, merge duplicates, drop zeros.
//   - Stage 3: Verify |A[i,j] - A[j,i]| ≤ eps for every stored entry.
//
// Errors:
//   - ErrBadShape (n ≤ 0), ErrOutOfRange, ErrNaNInf, ErrAsymmetry.
//
// Complexity:
//   - Time O(nnz·log(nnz/n)), Space O(nnz + n).
func NewSymmetricCSR(n int, entries []Triplet, eps float64) (*CSR, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewSymmetricCSR: n=%d: %w", n, ErrBadShape)
	}

	rows := make([][]Triplet, n)
	for _, t := range entries {
		if t.Row < 0 || t.Row >= n || t.Col < 0 || t.Col >= n {
			return nil, fmt.Errorf("NewSymmetricCSR: (%d,%d) for n=%d: %w", t.Row, t.Col, n, ErrOutOfRange)
		}
		if math.IsNaN(t.Val) || math.IsInf(t.Val, 0) {
			return nil, fmt.Errorf("NewSymmetricCSR: (%d,%d): %w", t.Row, t.Col, ErrNaNInf)
		}
		rows[t.Row] = append(rows[t.Row], t)
	}

	m := &CSR{n: n, rowPtr: make([]int, n+1)}
	for i, row := range rows {
		sort.SliceStable(row, func(a, b int) bool { return row[a].Col < row[b].Col })
		for k := 0; k < len(row); {
			col, sum := row[k].Col, 0.0
			for ; k < len(row) && row[k].Col == col; k++ {
				sum += row[k].Val
			}
			if sum == 0 {
				continue
			}
			m.colIdx = append(m.colIdx, col)
			m.vals = append(m.vals, sum)
		}
		m.rowPtr[i+1] = len(m.colIdx)
	}

	for i := 0; i < n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			j := m.colIdx[k]
			if j <= i {
				continue
			}
			if math.Abs(m.vals[k]-m.lookup(j, i)) > eps {
				return nil, fmt.Errorf("NewSymmetricCSR: (%d,%d): %w", i, j, ErrAsymmetry)
			}
		}
	}

	return m, nil
}

// lookup returns A[i,j] by binary search in row i; 0 if not stored.
func (m *CSR) lookup(i, j int) float64 {
	cols := m.colIdx[m.rowPtr[i]:m.rowPtr[i+1]]
	k := sort.SearchInts(cols, j)
	if k < len(cols) && cols[k] == j {
		return m.vals[m.rowPtr[i]+k]
	}

	return 0
}

// Dims returns (n, n).
func (m *CSR) Dims() (r, c int) { return m.n, m.n }

// At returns A[i,j]. It panics with mat.ErrIndexOutOfRange on bad indices,
// as required by the gonum mat.Matrix contract.
func (m *CSR) At(i, j int) float64 {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		panic(mat.ErrIndexOutOfRange)
	}

	return m.lookup(i, j)
}

// T returns the receiver: a symmetric matrix is its own transpose.
func (m *CSR) T() mat.Matrix { return m }

// SymmetricDim returns n.
func (m *CSR) SymmetricDim() int { return m.n }

// NNZ returns the number of stored (non-zero) entries.
func (m *CSR) NNZ() int { return len(m.vals) }

// Row returns the column indices and values of row i. The slices alias
// internal storage and must not be modified.
func (m *CSR) Row(i int) ([]int, []float64) {
	lo, hi := m.rowPtr[i], m.rowPtr[i+1]

	return m.colIdx[lo:hi], m.vals[lo:hi]
}

// Diagonal returns a fresh slice with A[i,i] for i in [0,n).
func (m *CSR) Diagonal() []float64 {
	d := make([]float64, m.n)
	for i := range d {
		d[i] = m.lookup(i, i)
	}

	return d
}

// MulVecTo computes dst = A·x.
// Errors: ErrDimensionMismatch when len(x) or len(dst) differ from n.
// Complexity: O(nnz), no allocations.
func (m *CSR) MulVecTo(dst, x []float64) error {
	if err := ValidateVecLen(x, m.n); err != nil {
		return fmt.Errorf("MulVecTo: x: %w", err)
	}
	if err := ValidateVecLen(dst, m.n); err != nil {
		return fmt.Errorf("MulVecTo: dst: %w", err)
	}

	var (
		i, k int
		sum  float64
	)
	for i = 0; i < m.n; i++ {
		sum = 0
		for k = m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			sum += m.vals[k] * x[m.colIdx[k]]
		}
		dst[i] = sum
	}

	return nil
}

// ToSymDense materializes the matrix as a gonum *mat.SymDense.
// Complexity: O(n² + nnz) time and O(n²) memory.
func (m *CSR) ToSymDense() *mat.SymDense {
	s := mat.NewSymDense(m.n, nil)
	for i := 0; i < m.n; i++ {
		for k := m.rowPtr[i]; k < m.rowPtr[i+1]; k++ {
			if j := m.colIdx[k]; j >= i {
				s.SetSym(i, j, m.vals[k])
			}
		}
	}

	return s
}
