// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opTrace       = "Trace"
	opMinor       = "Minor"
	opDeterminant = "Determinant"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// Trace returns the sum of the diagonal.
// Errors: ErrNotSquare.
func (s *Sparse[T]) Trace() (T, error) {
	if err := matrix.ValidateSquare(s); err != nil {
		return 0, sparseErrorf(opTrace, err)
	}
	var tr T
	for k, v := range s.vals {
		if s.rowIdx[k] == s.colIdx[k] {
			tr += v
		}
	}

	return tr, nil
}

// minor drops row `row` and column `col`; s is at least 2×2. Surviving
// entries keep their relative order, so the result is canonical.
func (s *Sparse[T]) minor(row, col int) *Sparse[T] {
	out := &Sparse[T]{rows: s.rows - 1, cols: s.cols - 1}
	var i, j int
	for k, v := range s.vals {
		i, j = s.rowIdx[k], s.colIdx[k]
		if i == row || j == col {
			continue
		}
		if i > row {
			i--
		}
		if j > col {
			j--
		}
		out.push(i, j, v)
	}

	return out
}

// Minor returns s without row i and column j.
// Errors: ErrInvalidSize (fewer than 2 rows or cols), ErrOutOfRange.
func (s *Sparse[T]) Minor(i, j int) (*Sparse[T], error) {
	if err := matrix.ValidateDims(s.rows, s.cols, 2); err != nil {
		return nil, sparseErrorf(opMinor, err)
	}
	if err := matrix.ValidateIndex(s, i, j); err != nil {
		return nil, sparseErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, err))
	}

	return s.minor(i, j), nil
}

// Determinant returns det(s) by cofactor expansion along the first row,
// visiting stored entries of that row only.
// Errors: ErrNotSquare.
func (s *Sparse[T]) Determinant() (T, error) {
	if err := matrix.ValidateSquare(s); err != nil {
		return 0, sparseErrorf(opDeterminant, err)
	}
	if s.rows > 2 {
		matrix.Logger().Debug("cofactor expansion", slog.String("op", "sparse."+opDeterminant),
			slog.Int("n", s.rows), slog.Int("nnz", len(s.vals)))
	}

	return s.det(), nil
}

func (s *Sparse[T]) det() T {
	switch s.rows {
	case 1:
		v, _ := s.Value(0, 0)
		return v
	case 2:
		a, _ := s.Value(0, 0)
		b, _ := s.Value(0, 1)
		c, _ := s.Value(1, 0)
		d, _ := s.Value(1, 1)
		return a*d - b*c
	}

	_, hi := s.rowRange(0)
	var acc, term T
	for k := 0; k < hi; k++ {
		term = s.vals[k] * s.minor(0, s.colIdx[k]).det()
		if s.colIdx[k]%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}

// cofactorAt returns (−1)^(i+j)·det(minor(i,j)); s is at least 2×2.
func (s *Sparse[T]) cofactorAt(i, j int) T {
	d := s.minor(i, j).det()
	if (i+j)%2 != 0 {
		return -d
	}

	return d
}

// Cofactor returns the cofactor matrix; the cofactor of a 1×1 is [1].
// Errors: ErrNotSquare.
func (s *Sparse[T]) Cofactor() (*Sparse[T], error) {
	if err := matrix.ValidateSquare(s); err != nil {
		return nil, sparseErrorf(opCofactor, err)
	}
	out := &Sparse[T]{rows: s.rows, cols: s.cols}
	if s.rows == 1 {
		out.push(0, 0, 1)
		return out, nil
	}
	var c T
	for i := 0; i < s.rows; i++ {
		for j := 0; j < s.cols; j++ {
			if c = s.cofactorAt(i, j); c != 0 {
				out.push(i, j, c)
			}
		}
	}

	return out, nil
}

// Adjugate returns the transposed cofactor matrix.
// Errors: ErrNotSquare.
func (s *Sparse[T]) Adjugate() (*Sparse[T], error) {
	c, err := s.Cofactor()
	if err != nil {
		return nil, sparseErrorf(opAdjugate, err)
	}
	c.TransposeInPlace()

	return c, nil
}

// Inverse returns adj(s) / det(s), each entry divided by the determinant.
// For integer T entries that truncate to zero are dropped.
// Errors: ErrNotSquare, ErrSingular.
func (s *Sparse[T]) Inverse() (*Sparse[T], error) {
	if err := matrix.ValidateSquare(s); err != nil {
		return nil, sparseErrorf(opInverse, err)
	}
	det := s.det()
	if det == 0 {
		matrix.Logger().Warn("inverse of singular matrix", slog.String("op", "sparse."+opInverse), slog.Int("n", s.rows))
		return nil, sparseErrorf(opInverse, fmt.Errorf("determinant is zero: %w", matrix.ErrSingular))
	}
	adj, err := s.Adjugate()
	if err != nil {
		return nil, sparseErrorf(opInverse, err)
	}

	return adj.mapNonZero(func(v T) T { return v / det }), nil
}
