// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Value semantics: no two Dense values ever share a buffer (Move transfers, never aliases).
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Move: O(1).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt       = "At"       // method tag used in error wrappers
	ctxSet      = "Set"      // method tag used in error wrappers
	ctxApply    = "Apply"    // method tag used in error wrappers
	ctxRow      = "Row"      // method tag used in error wrappers
	ctxCopyFrom = "CopyFrom" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
//
// Implementation:
//   - Stage 1: format "Dense.<method>(row,col): %w".
//   - Stage 2: return wrapped error.
//
// Behavior highlights:
//   - Stable, human-friendly messages; preserves sentinel via %w.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix of T.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - opts carries the per-instance numeric policy (see options.go).
//
// A Dense is not safe for concurrent mutation; share copies, not pointers.
type Dense[T Number] struct {
	r, c int     // row and column counts (0×0 only after Move)
	data []T     // contiguous row-major storage (len == r*c)
	opts Options // numeric policy, preserved by Clone/Move
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix[float64] = (*Dense[float64])(nil)
	_ Matrix[int]     = (*Dense[int])(nil)
	_ fmt.Stringer    = (*Dense[float64])(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows ≥ 1 && cols ≥ 1; else ErrInvalidSize.
//   - Stage 2: allocate zero-filled buffer.
//   - Stage 3: resolve options.
//
// Behavior highlights:
//   - 1×1 is legal: it is the determinant base case and the minor of a 2×2.
//     The MinSize floor applies to the factories (MakeIdentity, MakeZero).
//
// Errors:
//   - ErrInvalidSize (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense[T Number](rows, cols int, opts ...Option) (*Dense[T], error) {
	if err := ValidateDims(rows, cols, 1); err != nil {
		return nil, fmt.Errorf("NewDense: %w", err)
	}

	return newDense[T](rows, cols, gatherOptions(opts...)), nil
}

// newDense allocates without validation; callers guarantee rows, cols ≥ 0.
func newDense[T Number](rows, cols int, o Options) *Dense[T] {
	return &Dense[T]{r: rows, c: cols, data: make([]T, rows*cols), opts: o}
}

// NewDefault returns a MinSize×MinSize zero matrix.
// Complexity: O(1).
func NewDefault[T Number](opts ...Option) *Dense[T] {
	return newDense[T](MinSize, MinSize, gatherOptions(opts...))
}

// NewSquare returns an n×n zero matrix. Errors as NewDense.
func NewSquare[T Number](n int, opts ...Option) (*Dense[T], error) {
	return NewDense[T](n, n, opts...)
}

// NewDenseFrom deep-copies a rectangular 2D array.
//
// Implementation:
//   - Stage 1: reject empty input (ErrInvalidSize) and ragged rows (ErrDimensionMismatch).
//   - Stage 2: copy row by row into the flat buffer.
//   - Stage 3: when the guard option is on, reject NaN/±Inf (ErrNaNInf).
//
// Notes:
//   - The caller keeps ownership of src; later edits to src are not observed.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom[T Number](src [][]T, opts ...Option) (*Dense[T], error) {
	if len(src) == 0 || len(src[0]) == 0 {
		return nil, fmt.Errorf("NewDenseFrom: %w", ErrInvalidSize)
	}
	rows, cols := len(src), len(src[0])
	m := newDense[T](rows, cols, gatherOptions(opts...))

	var i, j int
	for i = 0; i < rows; i++ {
		if len(src[i]) != cols {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d values, want %d: %w",
				i, len(src[i]), cols, ErrDimensionMismatch)
		}
		if m.opts.guardNaNInf {
			for j = 0; j < cols; j++ {
				if isNaNInf(src[i][j]) {
					return nil, fmt.Errorf("NewDenseFrom: %w", denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
			}
		}
		copy(m.data[i*cols:(i+1)*cols], src[i])
	}

	return m, nil
}

// isNaNInf reports NaN/±Inf for float kinds; always false for integers.
func isNaNInf[T Number](v T) bool {
	f := float64(v)

	return math.IsNaN(f) || math.IsInf(f, 0)
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense[T]) Shape() (rows, cols int) { return m.r, m.c }

// Options returns the effective per-instance configuration.
func (m *Dense[T]) Options() Options { return m.opts }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap with coordinates and method name.
// Complexity: O(1).
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if err := ValidateIndex(m, row, col); err != nil {
		return 0, err
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: enforce numeric policy (reject NaN/±Inf when enabled).
//   - Stage 3: write into flat buffer.
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers under the guard.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.opts.guardNaNInf && isNaNInf(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns a copy of row i.
func (m *Dense[T]) Row(i int) ([]T, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]T, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// RawCopy returns the elements as a freshly allocated 2D array.
// Counterpart of NewDenseFrom; used to convert between storage layouts.
// Complexity: O(r*c).
func (m *Dense[T]) RawCopy() [][]T {
	out := make([][]T, m.r)
	for i := 0; i < m.r; i++ {
		out[i] = make([]T, m.c)
		copy(out[i], m.data[i*m.c:(i+1)*m.c])
	}

	return out
}

// Clone returns a deep copy (new buffer, same numeric policy).
//
// Behavior highlights:
//   - Independence: mutations do not affect the original.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	copy(cp, m.data)

	return &Dense[T]{r: m.r, c: m.c, data: cp, opts: m.opts}
}

// CopyFrom is copy-assignment: m discards its buffer and becomes a deep copy
// of src (shape, data and policy). Self-assignment is a no-op.
func (m *Dense[T]) CopyFrom(src *Dense[T]) error {
	if src == nil {
		return denseErrorf(ctxCopyFrom, 0, 0, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	*m = *src.Clone()

	return nil
}

// Move transfers the buffer into a new Dense and leaves m as a valid,
// empty 0×0 matrix. The two values never share storage afterwards.
// Complexity: O(1).
func (m *Dense[T]) Move() *Dense[T] {
	out := &Dense[T]{r: m.r, c: m.c, data: m.data, opts: m.opts}
	m.r, m.c, m.data = 0, 0, []T{}

	return out
}

// replace swaps in a freshly computed result (used by the InPlace family).
// The argument is consumed; its buffer becomes m's buffer.
func (m *Dense[T]) replace(res *Dense[T]) {
	m.r, m.c, m.data = res.r, res.c, res.data
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense[T]) Do(f func(i, j int, v T) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v).
//
// Implementation:
//   - Stage 1: compute every new value into a staging buffer.
//   - Stage 2: reject NaN/Inf if the guard is enabled.
//   - Stage 3: swap the staging buffer in.
//
// Behavior highlights:
//   - All-or-nothing: on error m is unchanged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) staging.
func (m *Dense[T]) Apply(f func(i, j int, v T) T) error {
	staged := make([]T, len(m.data))
	var i, j, base int
	var nv T
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.opts.guardNaNInf && isNaNInf(nv) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			staged[base+j] = nv
		}
	}
	m.data = staged

	return nil
}

// FrobeniusNorm returns sqrt(Σ a_ij²) computed in float64.
// Complexity: O(r*c).
func (m *Dense[T]) FrobeniusNorm() float64 {
	return math.Sqrt(m.SumSquares())
}

// SumSquares returns Σ a_ij² in float64 so tiled layouts can root once
// over all tiles.
func (m *Dense[T]) SumSquares() float64 {
	var s, f float64
	for _, v := range m.data {
		f = float64(v)
		s += f * f
	}

	return s
}

// String provides a readable row-wise dump for diagnostics: "[1, 2]\n[3, 4]\n".
// For the whitespace text format use WriteText.
// Complexity: O(r*c).
func (m *Dense[T]) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			fmt.Fprint(&b, m.data[base+j])
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
