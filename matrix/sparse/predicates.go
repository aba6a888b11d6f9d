// SPDX-License-Identifier: MIT

package sparse

import (
	"slices"

	"github.com/katalvlaran/linalg/matrix"
)

// Equal reports identical dimensions and entries. Canonical storage makes
// this a direct slice comparison. Nil matrices equal only each other.
func Equal[T matrix.Number](a, b *Sparse[T]) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.rows == b.rows && a.cols == b.cols &&
		slices.Equal(a.rowIdx, b.rowIdx) &&
		slices.Equal(a.colIdx, b.colIdx) &&
		slices.Equal(a.vals, b.vals)
}

// Equal is the method form of Equal(s, other).
func (s *Sparse[T]) Equal(other *Sparse[T]) bool { return Equal(s, other) }

// IsEmpty reports that no entry is stored.
func (s *Sparse[T]) IsEmpty() bool { return len(s.vals) == 0 }

// IsZero reports an all-zero matrix; same as IsEmpty under canonical form.
func (s *Sparse[T]) IsZero() bool { return s.IsEmpty() }

// IsSquare reports rows == cols.
func (s *Sparse[T]) IsSquare() bool { return s.rows == s.cols }

// IsDiagonal reports a square matrix whose stored entries are exactly its
// n diagonal cells (the matrix.Dense contract: no zero on the diagonal).
func (s *Sparse[T]) IsDiagonal() bool {
	if !s.IsSquare() || len(s.vals) != s.rows {
		return false
	}
	for k := range s.vals {
		if s.rowIdx[k] != s.colIdx[k] {
			return false
		}
	}

	return true
}

// IsIdentity reports a diagonal matrix of ones.
func (s *Sparse[T]) IsIdentity() bool {
	if !s.IsDiagonal() {
		return false
	}
	for _, v := range s.vals {
		if v != 1 {
			return false
		}
	}

	return true
}

// FillDiagonal stores v at (i,i) for every i < min(rows, cols), replacing
// existing diagonal entries. A zero v clears the diagonal.
func (s *Sparse[T]) FillDiagonal(v T) {
	for i := 0; i < min(s.rows, s.cols); i++ {
		s.put(i, i, v)
	}
}
