// SPDX-License-Identifier: MIT
// Package sparse: arithmetic on canonical COO storage.
//
// Purpose:
//   - Add/Sub: one merge walk over both sorted entry lists, O(nnzA + nnzB).
//   - Mul: for every entry (i,k) of A scan row k of B and accumulate into
//     (i,j) of the result; cancelled sums are dropped.
//   - Transpose: swap indices, then restore row-major order.

package sparse

import (
	"cmp"
	"fmt"
	"log/slog"
	"slices"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
)

// compareAt orders entry ka of a against entry kb of b row-major.
func compareAt[T matrix.Number](a *Sparse[T], ka int, b *Sparse[T], kb int) int {
	if c := cmp.Compare(a.rowIdx[ka], b.rowIdx[kb]); c != 0 {
		return c
	}

	return cmp.Compare(a.colIdx[ka], b.colIdx[kb])
}

// merge walks a and b in lockstep, emitting a ± b.
func merge[T matrix.Number](a, b *Sparse[T], sub bool, op string) (*Sparse[T], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(op, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return nil, sparseErrorf(op, err)
	}

	out := &Sparse[T]{rows: a.rows, cols: a.cols}
	neg := func(v T) T {
		if sub {
			return -v
		}
		return v
	}
	var ka, kb int
	for ka < len(a.vals) && kb < len(b.vals) {
		switch c := compareAt(a, ka, b, kb); {
		case c < 0:
			out.push(a.rowIdx[ka], a.colIdx[ka], a.vals[ka])
			ka++
		case c > 0:
			out.push(b.rowIdx[kb], b.colIdx[kb], neg(b.vals[kb]))
			kb++
		default:
			if v := a.vals[ka] + neg(b.vals[kb]); v != 0 {
				out.push(a.rowIdx[ka], a.colIdx[ka], v)
			}
			ka++
			kb++
		}
	}
	for ; ka < len(a.vals); ka++ {
		out.push(a.rowIdx[ka], a.colIdx[ka], a.vals[ka])
	}
	for ; kb < len(b.vals); kb++ {
		out.push(b.rowIdx[kb], b.colIdx[kb], neg(b.vals[kb]))
	}

	return out, nil
}

// Add returns a + b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T matrix.Number](a, b *Sparse[T]) (*Sparse[T], error) { return merge(a, b, false, opAdd) }

// Sub returns a − b.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T matrix.Number](a, b *Sparse[T]) (*Sparse[T], error) { return merge(a, b, true, opSub) }

// Mul returns the product a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols() == b.Rows().
//   - Stage 2: for each stored a(i,k), binary-search the contiguous row k
//     of b and accumulate a(i,k)·b(k,j) into out(i,j).
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity: O(nnzA · (log nnzB + nnzB_row) · insert) in the worst case.
func Mul[T matrix.Number](a, b *Sparse[T]) (*Sparse[T], error) {
	if a == nil || b == nil {
		return nil, sparseErrorf(opMul, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, sparseErrorf(opMul, fmt.Errorf("%dx%d · %dx%d: %w", a.rows, a.cols, b.rows, b.cols, err))
	}

	out := &Sparse[T]{rows: a.rows, cols: b.cols}
	var lo, hi, kb int
	for ka, av := range a.vals {
		lo, hi = b.rowRange(a.colIdx[ka])
		for kb = lo; kb < hi; kb++ {
			out.accumulate(a.rowIdx[ka], b.colIdx[kb], av*b.vals[kb])
		}
	}
	matrix.Logger().Debug("sparse product",
		slog.Int("nnz_a", len(a.vals)), slog.Int("nnz_b", len(b.vals)), slog.Int("nnz_out", len(out.vals)))

	return out, nil
}

// Scale returns alpha·s; alpha == 0 yields an empty matrix of the same shape.
// Errors: ErrNilMatrix.
func Scale[T matrix.Number](s *Sparse[T], alpha T) (*Sparse[T], error) {
	if s == nil {
		return nil, sparseErrorf(opScale, matrix.ErrNilMatrix)
	}

	return s.mapNonZero(func(v T) T { return v * alpha }), nil
}

// Transpose returns sᵀ in canonical order.
// Errors: ErrNilMatrix.
func Transpose[T matrix.Number](s *Sparse[T]) (*Sparse[T], error) {
	if s == nil {
		return nil, sparseErrorf(opTranspose, matrix.ErrNilMatrix)
	}
	perm := make([]int, len(s.vals))
	for k := range perm {
		perm[k] = k
	}
	// Order by (col, row) of s, which is (row, col) of the transpose.
	slices.SortFunc(perm, func(x, y int) int {
		if c := cmp.Compare(s.colIdx[x], s.colIdx[y]); c != 0 {
			return c
		}
		return cmp.Compare(s.rowIdx[x], s.rowIdx[y])
	})
	out := &Sparse[T]{rows: s.cols, cols: s.rows}
	for _, k := range perm {
		out.push(s.colIdx[k], s.rowIdx[k], s.vals[k])
	}

	return out, nil
}

// replace adopts res storage after an out-of-place kernel.
func (s *Sparse[T]) replace(res *Sparse[T]) {
	*s = *res
}

// AddInPlace sets s = s + o. s is unchanged on error.
func (s *Sparse[T]) AddInPlace(o *Sparse[T]) error {
	res, err := Add(s, o)
	if err != nil {
		return err
	}
	s.replace(res)

	return nil
}

// SubInPlace sets s = s − o. s is unchanged on error.
func (s *Sparse[T]) SubInPlace(o *Sparse[T]) error {
	res, err := Sub(s, o)
	if err != nil {
		return err
	}
	s.replace(res)

	return nil
}

// MulInPlace sets s = s × o; the column count of s may change.
func (s *Sparse[T]) MulInPlace(o *Sparse[T]) error {
	res, err := Mul(s, o)
	if err != nil {
		return err
	}
	s.replace(res)

	return nil
}

// ScaleInPlace multiplies every entry by alpha.
func (s *Sparse[T]) ScaleInPlace(alpha T) {
	s.replace(s.mapNonZero(func(v T) T { return v * alpha }))
}

// TransposeInPlace replaces s with sᵀ.
func (s *Sparse[T]) TransposeInPlace() {
	res, _ := Transpose(s)
	s.replace(res)
}
