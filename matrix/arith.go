// SPDX-License-Identifier: MIT
// Package matrix provides the dense arithmetic kernels: element-wise addition,
// subtraction, matrix multiplication, transpose and scalar scaling.
//
// Purpose:
//   - Every primitive comes as a PAIR: a pure function that allocates a fresh
//     result (Add, Sub, Mul, Scale, Transpose) and a mutating method on the
//     receiver (AddInPlace, SubInPlace, MulInPlace, ScaleInPlace,
//     TransposeInPlace) defined as self = self op other.
//   - All kernels validate first and mutate last, so failures leave every
//     operand untouched.

package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opTranspose = "Transpose"
	opScale     = "Scale"
	opAllClose  = "AllClose"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// addSub computes elementwise out = a + b (sub=false) or a - b (sub=true).
// Inputs must have identical shapes. A fresh Dense is allocated; operands are not mutated.
//
// Implementation:
//   - Stage 1: nil guard, ValidateSameShape(a, b).
//   - Stage 2: single flat loop 0..n-1 over both buffers.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the new result.
//
// Notes:
//   - The result inherits a's numeric policy.
func addSub[T Number](a, b *Dense[T], sub bool, opTag string) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opTag, ErrNilMatrix)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	res := newDense[T](a.r, a.c, a.opts)
	n := len(a.data)
	if sub {
		for idx := 0; idx < n; idx++ {
			res.data[idx] = a.data[idx] - b.data[idx]
		}
	} else {
		for idx := 0; idx < n; idx++ {
			res.data[idx] = a.data[idx] + b.data[idx]
		}
	}

	return res, nil
}

// Add computes the element-wise sum C = A + B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Add[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, false, opAdd) }

// Sub computes the element-wise difference C = A - B and returns a fresh Dense result.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (shape mismatch).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Sub[T Number](a, b *Dense[T]) (*Dense[T], error) { return addSub(a, b, true, opSub) }

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: nil guard and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: triple loop i→j→k accumulating Σ_k a[i,k]·b[k,j] into a T.
//
// Behavior highlights:
//   - Plain textbook accumulation: no blocking, no zero-skipping, so integer
//     overflow and float rounding follow the naive order exactly.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (inner mismatch).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c).
func Mul[T Number](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMul, ErrNilMatrix)
	}
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, inner, bCols := a.r, a.c, b.c
	res := newDense[T](aRows, bCols, a.opts)

	var i, j, k int
	var acc T
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			acc = 0
			for k = 0; k < inner; k++ {
				acc += a.data[i*inner+k] * b.data[k*bCols+j]
			}
			res.data[i*bCols+j] = acc
		}
	}

	return res, nil
}

// Scale returns α·m as a fresh Dense.
// Complexity: O(r*c).
func Scale[T Number](m *Dense[T], alpha T) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opScale, ErrNilMatrix)
	}
	res := newDense[T](m.r, m.c, m.opts)
	for idx, v := range m.data {
		res.data[idx] = v * alpha
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// The original matrix is never mutated.
//
// Implementation:
//   - Stage 1: nil guard; allocate Dense(cols, rows).
//   - Stage 2: data[i*cols + j] → res.data[j*rows + i].
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose[T Number](m *Dense[T]) (*Dense[T], error) {
	if m == nil {
		return nil, matrixErrorf(opTranspose, ErrNilMatrix)
	}
	rows, cols := m.r, m.c
	res := newDense[T](cols, rows, m.opts)

	var i, j, baseSrc int
	for i = 0; i < rows; i++ {
		baseSrc = i * cols
		for j = 0; j < cols; j++ {
			res.data[j*rows+i] = m.data[baseSrc+j]
		}
	}

	return res, nil
}

// ---------- In-place twins (self = self op other) ----------

// AddInPlace sets m = m + b.
func (m *Dense[T]) AddInPlace(b *Dense[T]) error {
	res, err := Add(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// SubInPlace sets m = m - b.
func (m *Dense[T]) SubInPlace(b *Dense[T]) error {
	res, err := Sub(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// MulInPlace sets m = m × b. The receiver takes the product's shape
// (m.Rows() × b.Cols()), which differs from the old one for non-square b.
func (m *Dense[T]) MulInPlace(b *Dense[T]) error {
	res, err := Mul(m, b)
	if err != nil {
		return err
	}
	m.replace(res)

	return nil
}

// ScaleInPlace sets m = α·m. Never fails on a non-nil receiver.
func (m *Dense[T]) ScaleInPlace(alpha T) {
	for idx := range m.data {
		m.data[idx] *= alpha
	}
}

// TransposeInPlace replaces m with mᵀ by building the swapped-shape copy
// and adopting its buffer.
func (m *Dense[T]) TransposeInPlace() {
	res, _ := Transpose(m) // only fails on nil, and m is the receiver
	m.replace(res)
}

// ---------- Equality ----------

// Equal reports whether a and b have identical shape and elements.
// Exact comparison, no epsilon: for float T use AllClose in tests.
// Nil matrices compare equal only to each other.
// Complexity: O(r*c).
func Equal[T Number](a, b *Dense[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.r != b.r || a.c != b.c {
		return false
	}
	for idx := range a.data {
		if a.data[idx] != b.data[idx] {
			return false
		}
	}

	return true
}

// Equal is the method form of Equal(m, other).
func (m *Dense[T]) Equal(other *Dense[T]) bool { return Equal(m, other) }
