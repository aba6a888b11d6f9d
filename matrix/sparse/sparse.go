// SPDX-License-Identifier: MIT

package sparse

import (
	"fmt"
	"slices"
	"sort"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opNew       = "New"
	opFromDense = "FromDense"
	opAddValue  = "AddValue"
	opValue     = "Value"
)

// Sparse is a rows×cols matrix holding only its non-zero entries.
type Sparse[T matrix.Number] struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	vals       []T
}

var _ matrix.Matrix[float64] = (*Sparse[float64])(nil)

// sparseErrorf tags err with the package and operation name.
func sparseErrorf(op string, err error) error {
	return fmt.Errorf("sparse.%s: %w", op, err)
}

// New returns an empty rows×cols matrix.
// Errors: ErrInvalidSize if rows or cols < 1.
func New[T matrix.Number](rows, cols int) (*Sparse[T], error) {
	if err := matrix.ValidateDims(rows, cols, 1); err != nil {
		return nil, sparseErrorf(opNew, err)
	}

	return &Sparse[T]{rows: rows, cols: cols}, nil
}

// FromDense collects the non-zero elements of d.
// Errors: ErrNilMatrix.
func FromDense[T matrix.Number](d *matrix.Dense[T]) (*Sparse[T], error) {
	if d == nil {
		return nil, sparseErrorf(opFromDense, matrix.ErrNilMatrix)
	}
	s := &Sparse[T]{rows: d.Rows(), cols: d.Cols()}
	// Dense.Do is row-major, so appends arrive in canonical order.
	d.Do(func(i, j int, v T) bool {
		if v != 0 {
			s.push(i, j, v)
		}
		return true
	})

	return s, nil
}

// ToDense expands s into a new Dense.
func (s *Sparse[T]) ToDense() (*matrix.Dense[T], error) {
	d, err := matrix.NewDense[T](s.rows, s.cols)
	if err != nil {
		return nil, err
	}
	for k, v := range s.vals {
		_ = d.Set(s.rowIdx[k], s.colIdx[k], v)
	}

	return d, nil
}

// Rows returns the row count.
func (s *Sparse[T]) Rows() int { return s.rows }

// Cols returns the column count.
func (s *Sparse[T]) Cols() int { return s.cols }

// Dims returns (rows, cols).
func (s *Sparse[T]) Dims() (rows, cols int) { return s.rows, s.cols }

// NonZeroCount returns the number of stored entries.
func (s *Sparse[T]) NonZeroCount() int { return len(s.vals) }

// Clone returns a deep copy.
func (s *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{
		rows:   s.rows,
		cols:   s.cols,
		rowIdx: slices.Clone(s.rowIdx),
		colIdx: slices.Clone(s.colIdx),
		vals:   slices.Clone(s.vals),
	}
}

// Clear drops every entry; the dimensions are kept.
func (s *Sparse[T]) Clear() {
	s.rowIdx, s.colIdx, s.vals = s.rowIdx[:0], s.colIdx[:0], s.vals[:0]
}

// Do visits stored entries in row-major order until f returns false.
func (s *Sparse[T]) Do(f func(i, j int, v T) bool) {
	for k, v := range s.vals {
		if !f(s.rowIdx[k], s.colIdx[k], v) {
			return
		}
	}
}

// push appends an entry known to sort after every stored one.
func (s *Sparse[T]) push(i, j int, v T) {
	s.rowIdx = append(s.rowIdx, i)
	s.colIdx = append(s.colIdx, j)
	s.vals = append(s.vals, v)
}

// search returns the position of (i,j) or its insertion point.
func (s *Sparse[T]) search(i, j int) (int, bool) {
	k := sort.Search(len(s.vals), func(k int) bool {
		r := s.rowIdx[k]
		return r > i || (r == i && s.colIdx[k] >= j)
	})

	return k, k < len(s.vals) && s.rowIdx[k] == i && s.colIdx[k] == j
}

// rowRange returns the half-open entry range [lo, hi) of row i.
func (s *Sparse[T]) rowRange(i int) (lo, hi int) {
	lo, _ = s.search(i, 0)
	hi, _ = s.search(i+1, 0)

	return lo, hi
}

// put stores v at (i,j) in canonical form: overwrite, insert, or delete
// when v is zero. Indices are already validated.
func (s *Sparse[T]) put(i, j int, v T) {
	k, found := s.search(i, j)
	switch {
	case found && v == 0:
		s.rowIdx = slices.Delete(s.rowIdx, k, k+1)
		s.colIdx = slices.Delete(s.colIdx, k, k+1)
		s.vals = slices.Delete(s.vals, k, k+1)
	case found:
		s.vals[k] = v
	case v != 0:
		s.rowIdx = slices.Insert(s.rowIdx, k, i)
		s.colIdx = slices.Insert(s.colIdx, k, j)
		s.vals = slices.Insert(s.vals, k, v)
	}
}

// accumulate adds delta to (i,j), dropping the entry if it cancels to zero.
func (s *Sparse[T]) accumulate(i, j int, delta T) {
	k, found := s.search(i, j)
	if found {
		s.put(i, j, s.vals[k]+delta)
		return
	}
	s.put(i, j, delta)
}

// AddValue stores v at (i,j), replacing any existing entry. A zero v
// removes the entry.
// Errors: ErrOutOfRange.
func (s *Sparse[T]) AddValue(i, j int, v T) error {
	if err := matrix.ValidateIndex(s, i, j); err != nil {
		return sparseErrorf(opAddValue, fmt.Errorf("(%d,%d) of %dx%d: %w", i, j, s.rows, s.cols, err))
	}
	s.put(i, j, v)

	return nil
}

// Value returns the element at (i,j); unstored coordinates read as zero.
// Errors: ErrOutOfRange.
func (s *Sparse[T]) Value(i, j int) (T, error) {
	if err := matrix.ValidateIndex(s, i, j); err != nil {
		return 0, sparseErrorf(opValue, fmt.Errorf("(%d,%d) of %dx%d: %w", i, j, s.rows, s.cols, err))
	}
	if k, found := s.search(i, j); found {
		return s.vals[k], nil
	}

	return 0, nil
}

// At is Value under the matrix.Matrix interface.
func (s *Sparse[T]) At(i, j int) (T, error) { return s.Value(i, j) }

// Set is AddValue under the matrix.Matrix interface.
func (s *Sparse[T]) Set(i, j int, v T) error { return s.AddValue(i, j, v) }

// mapNonZero returns a copy of s with f applied to every entry; results
// equal to zero are dropped.
func (s *Sparse[T]) mapNonZero(f func(v T) T) *Sparse[T] {
	out := &Sparse[T]{rows: s.rows, cols: s.cols}
	var w T
	for k, v := range s.vals {
		if w = f(v); w != 0 {
			out.push(s.rowIdx[k], s.colIdx[k], w)
		}
	}

	return out
}
