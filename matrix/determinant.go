// SPDX-License-Identifier: MIT
// Package matrix: determinant, cofactor, adjugate and inverse.
//
// Purpose:
//   - Classic Laplace (cofactor) expansion along row 0, with a fresh
//     (n−1)×(n−1) minor allocated per recursive call.
//   - Adjugate-based inversion: A⁻¹ = adj(A) / det(A).
//
// Determinism & Performance:
//   - Determinant is O(n!) time and O(n²) live memory per recursion level;
//     Cofactor is O(n·n!). Intended for small n only; callers bound input size.
//   - No pivoting, no LU: results for float T follow the naive expansion
//     order exactly, which is what the predicates (IsSingular) rely on.

package matrix

import (
	"fmt"
	"log/slog"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// minor copies m without row `row` and column `col` into a new Dense.
// Callers guarantee m is at least 2×2 and indices are in range.
//
// Implementation:
//   - Stage 1: allocate (r−1)×(c−1).
//   - Stage 2: copy row-major, skipping the deleted row and column.
//
// Complexity:
//   - Time O(r*c), Space O((r−1)*(c−1)).
func (m *Dense[T]) minor(row, col int) *Dense[T] {
	out := newDense[T](m.r-1, m.c-1, m.opts)
	var i, j, dst int
	for i = 0; i < m.r; i++ {
		if i == row {
			continue
		}
		for j = 0; j < m.c; j++ {
			if j == col {
				continue
			}
			out.data[dst] = m.data[i*m.c+j]
			dst++
		}
	}

	return out
}

// Minor returns the sub-matrix formed by deleting row i and column j.
//
// Errors:
//   - ErrInvalidSize when m has fewer than 2 rows or columns.
//   - ErrOutOfRange when (i, j) is outside m.
func (m *Dense[T]) Minor(i, j int) (*Dense[T], error) {
	if err := ValidateDims(m.r, m.c, 2); err != nil {
		return nil, matrixErrorf(opMinor, err)
	}
	if err := ValidateIndex(m, i, j); err != nil {
		return nil, matrixErrorf(opMinor, denseErrorf(opMinor, i, j, err))
	}

	return m.minor(i, j), nil
}

// Determinant returns det(m) by cofactor expansion along the first row.
//
// Implementation:
//   - Stage 1: validate non-empty and square.
//   - Stage 2: base cases 1×1 → a, 2×2 → ad − bc.
//   - Stage 3: det = Σ_i sign(i)·a[0][i]·det(minor(0,i)), sign(i) = +1 for
//     even i, −1 for odd i.
//
// Errors:
//   - ErrInvalidSize (0×0 after Move), ErrNotSquare.
//
// Complexity:
//   - Time O(n!), Space O(n²) along the recursion path.
func (m *Dense[T]) Determinant() (T, error) {
	if err := ValidateNonEmpty(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if err := ValidateSquare(m); err != nil {
		return 0, matrixErrorf(opDeterminant, err)
	}
	if m.r > 2 {
		Logger().Debug("cofactor expansion", slog.String("op", opDeterminant), slog.Int("n", m.r))
	}

	return m.det(), nil
}

// det is the unchecked recursive kernel behind Determinant.
func (m *Dense[T]) det() T {
	switch m.r {
	case 1:
		return m.data[0]
	case 2:
		return m.data[0]*m.data[3] - m.data[1]*m.data[2]
	}

	var acc, term T
	for i := 0; i < m.c; i++ {
		term = m.data[i] * m.minor(0, i).det()
		if i%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}

// cofactorSign returns +1 for even k and −1 for odd k.
func cofactorSign[T Number](k int) T {
	if k%2 == 0 {
		return 1
	}

	return -1
}

// Cofactor returns the n×n matrix C with C[i][j] = (−1)^(i+j)·det(minor(i,j)).
// The cofactor of a 1×1 matrix is [1] (determinant of the empty minor).
//
// Errors:
//   - ErrInvalidSize, ErrNotSquare.
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func (m *Dense[T]) Cofactor() (*Dense[T], error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opCofactor, err)
	}

	n := m.r
	out := newDense[T](n, n, m.opts)
	if n == 1 {
		out.data[0] = 1
		return out, nil
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			out.data[i*n+j] = cofactorSign[T](i+j) * m.minor(i, j).det()
		}
	}

	return out, nil
}

// Adjugate returns the transpose of the cofactor matrix.
// Errors: as Cofactor.
func (m *Dense[T]) Adjugate() (*Dense[T], error) {
	c, err := m.Cofactor()
	if err != nil {
		return nil, matrixErrorf(opAdjugate, err)
	}
	c.TransposeInPlace()

	return c, nil
}

// Inverse returns adj(m) / det(m).
//
// Implementation:
//   - Stage 1: validate non-empty and square.
//   - Stage 2: det == 0 → ErrSingular.
//   - Stage 3: divide every adjugate entry by det.
//
// Behavior highlights:
//   - Division per entry (not multiplication by 1/det) so integer T yields
//     exact results for unimodular inputs instead of truncating 1/det to 0.
//     Non-unimodular integer inverses truncate per entry; use float T.
//
// Errors:
//   - ErrInvalidSize, ErrNotSquare, ErrSingular.
//
// Complexity:
//   - Time O(n²·(n−1)!), Space O(n²).
func (m *Dense[T]) Inverse() (*Dense[T], error) {
	if err := ValidateNonEmpty(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	det := m.det()
	if det == 0 {
		Logger().Warn("inverse of singular matrix", slog.Int("n", m.r))
		return nil, matrixErrorf(opInverse, fmt.Errorf("determinant is zero: %w", ErrSingular))
	}
	adj, err := m.Adjugate()
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	for idx := range adj.data {
		adj.data[idx] /= det
	}

	return adj, nil
}

// Inverse is the pure form of (*Dense).Inverse for a distinct operand.
// Errors: ErrNilMatrix, plus those of the method.
func Inverse[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opInverse, ErrNilMatrix)
	}

	return m.Inverse()
}

// Determinant is the pure form of (*Dense).Determinant.
func Determinant[T Number](m *Dense[T]) (T, error) {
	if m == nil {
		return 0, matrixErrorf(opDeterminant, ErrNilMatrix)
	}

	return m.Determinant()
}
