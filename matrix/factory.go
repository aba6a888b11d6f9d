// SPDX-License-Identifier: MIT

// Package matrix: factories and structural mutators.
//
// Factories enforce the MinSize floor (ErrInvalidSize); mutators validate
// squareness and lengths before touching storage, so they are atomic.
package matrix

import "fmt"

const (
	opMakeIdentity  = "MakeIdentity"
	opMakeZero      = "MakeZero"
	opSetIdentity   = "SetIdentity"
	opSetDiagonal   = "SetDiagonal"
	opSetTriangular = "SetTriangular"
	opSetUpperFrom  = "SetUpperFrom"
	opSetLowerFrom  = "SetLowerFrom"
)

// identity builds I_n without validation.
func identity[T Number](n int, o Options) *Dense[T] {
	id := newDense[T](n, n, o)
	for i := 0; i < n; i++ {
		id.data[i*n+i] = 1
	}

	return id
}

// MakeIdentity returns I_n (ones on the diagonal, zeros elsewhere).
//
// Errors:
//   - ErrInvalidSize when n < MinSize.
//
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func MakeIdentity[T Number](n int, opts ...Option) (*Dense[T], error) {
	if err := ValidateDims(n, n, MinSize); err != nil {
		return nil, matrixErrorf(opMakeIdentity, err)
	}

	return identity[T](n, gatherOptions(opts...)), nil
}

// MakeZero returns a rows×cols zero matrix.
//
// Errors:
//   - ErrInvalidSize when rows or cols < MinSize.
func MakeZero[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateDims(rows, cols, MinSize); err != nil {
		return nil, matrixErrorf(opMakeZero, err)
	}

	return newDense[T](rows, cols, gatherOptions(opts...)), nil
}

// SetZero overwrites every element with zero.
func (m *Dense[T]) SetZero() {
	clear(m.data)
}

// SetIdentity overwrites m with I_n.
// Errors: ErrNotSquare.
func (m *Dense[T]) SetIdentity() error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSetIdentity, err)
	}
	clear(m.data)
	for i := 0; i < m.r; i++ {
		m.data[i*m.c+i] = 1
	}

	return nil
}

// SetDiagonal overwrites m with diag(values): values[i] at (i,i), zero elsewhere.
//
// Errors:
//   - ErrNotSquare, then ErrLengthMismatch (len(values) != Rows()),
//     then ErrNaNInf under the guard.
func (m *Dense[T]) SetDiagonal(values []T) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSetDiagonal, err)
	}
	if err := ValidateSameLen(len(values), m.r); err != nil {
		return matrixErrorf(opSetDiagonal, fmt.Errorf("got %d values for %d rows: %w", len(values), m.r, err))
	}
	if m.opts.guardNaNInf {
		for i, v := range values {
			if isNaNInf(v) {
				return matrixErrorf(opSetDiagonal, denseErrorf(ctxSet, i, i, ErrNaNInf))
			}
		}
	}
	clear(m.data)
	for i, v := range values {
		m.data[i*m.c+i] = v
	}

	return nil
}

// SetTriangular fills one triangular half (diagonal included) with value
// and zeroes the other half. upper=true fills j ≥ i, upper=false fills j ≤ i.
//
// Errors:
//   - ErrNotSquare, ErrNaNInf under the guard.
func (m *Dense[T]) SetTriangular(value T, upper bool) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(opSetTriangular, err)
	}
	if m.opts.guardNaNInf && isNaNInf(value) {
		return matrixErrorf(opSetTriangular, ErrNaNInf)
	}
	n := m.r
	var inHalf bool
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if upper {
				inHalf = j >= i
			} else {
				inHalf = j <= i
			}
			if inHalf {
				m.data[i*n+j] = value
			} else {
				m.data[i*n+j] = 0
			}
		}
	}

	return nil
}

// SetUpperFrom writes values row-major into the upper half (j ≥ i, diagonal
// included) and zeroes the strict lower half. A 3×3 takes
// [a b c d e f] as {{a,b,c},{0,d,e},{0,0,f}}.
//
// Errors:
//   - ErrNotSquare, then ErrLengthMismatch (len(values) != n(n+1)/2),
//     then ErrNaNInf under the guard.
func (m *Dense[T]) SetUpperFrom(values []T) error {
	return m.setHalfFrom(opSetUpperFrom, values, true)
}

// SetLowerFrom is SetUpperFrom for the lower half (j ≤ i): a 3×3 takes
// [a b c d e f] as {{a,0,0},{b,c,0},{d,e,f}}.
func (m *Dense[T]) SetLowerFrom(values []T) error {
	return m.setHalfFrom(opSetLowerFrom, values, false)
}

func (m *Dense[T]) setHalfFrom(op string, values []T, upper bool) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf(op, err)
	}
	n := m.r
	want := n * (n + 1) / 2
	if err := ValidateSameLen(len(values), want); err != nil {
		return matrixErrorf(op, fmt.Errorf("got %d values for %d triangular slots: %w", len(values), want, err))
	}
	if m.opts.guardNaNInf {
		for k, v := range values {
			if isNaNInf(v) {
				return matrixErrorf(op, fmt.Errorf("value %d: %w", k, ErrNaNInf))
			}
		}
	}

	clear(m.data)
	k := 0
	for i := 0; i < n; i++ {
		lo, hi := 0, i // lower half: columns 0..i
		if upper {
			lo, hi = i, n-1
		}
		for j := lo; j <= hi; j++ {
			m.data[i*n+j] = values[k]
			k++
		}
	}

	return nil
}
