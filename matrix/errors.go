// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used by matrix and its
// storage sub-packages (block, sparse). All algorithms MUST return these
// sentinels and tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these with an operation tag via
// fmt.Errorf("Op: %w", ErrX); callers still match with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> size -> index -> shape/dimension -> squareness -> singularity.

var (
	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/AddValue/Value) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Sub different shapes, Mul where a.Cols != b.Rows, Concat with
	// unequal extent on the non-joined axis, or a ragged source array.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNotSquare signals that a square matrix was required but the input wasn't.
	ErrNotSquare = errors.New("matrix: matrix is not square")

	// ErrInvalidSize is returned when a requested dimension is below the
	// allowed minimum (MinSize for factories and tile shapes, 1 for constructors).
	ErrInvalidSize = errors.New("matrix: invalid size")

	// ErrSingular is returned when an inverse is requested for a matrix whose
	// determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrLengthMismatch signals that a supplied value sequence has the wrong
	// length (SetDiagonal).
	ErrLengthMismatch = errors.New("matrix: length mismatch")

	// ErrNilMatrix indicates that a nil matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNaNInf signals a NaN or ±Inf value was written while the NaN/Inf guard
	// option was enabled on the destination matrix.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeExponent is returned by Pow for exp < 0 (no inverse powers).
	ErrNegativeExponent = errors.New("matrix: negative exponent")

	// ErrShortInput is returned by text readers when fewer than rows*cols
	// values are available. It wraps io.ErrUnexpectedEOF at the call site.
	ErrShortInput = errors.New("matrix: short input")

	// ErrBadToken is returned by text readers when a token is not a number of
	// the matrix element type.
	ErrBadToken = errors.New("matrix: malformed numeric token")
)
