// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/size/index checks here.
//  - Return sentinels tagged with the validator name so call sites can wrap
//    uniformly and callers can still match with errors.Is.
//
// Validators accept Shaper so Dense, block.Block and sparse.Sparse share them.
// Each validator assumes a non-nil argument; nil guards live at the typed
// entry points, where a typed nil is still detectable.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameShape ensures a and b have equal dimensions.
// Complexity: O(1).
// AI-Hints: Use for Add/Sub kernels of every storage layout.
func ValidateSameShape(a, b Shaper) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols() == b.Rows().
// Complexity: O(1).
func ValidateMulCompatible(a, b Shaper) error {
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Errors: ErrNotSquare.
// Complexity: O(1).
func ValidateSquare(m Shaper) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNotSquare)
	}

	return nil
}

// ValidateNonEmpty rejects 0×N and N×0 extents (e.g. a matrix drained by Move).
func ValidateNonEmpty(m Shaper) error {
	if m.Rows() < 1 || m.Cols() < 1 {
		return validatorErrorf("ValidateNonEmpty", ErrInvalidSize)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < Rows() and 0 ≤ j < Cols().
// Errors: ErrOutOfRange.
// Complexity: O(1).
func ValidateIndex(m Shaper, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return ErrOutOfRange // plain sentinel; callers attach coordinates
	}

	return nil
}

// ValidateDims checks a requested extent against a lower bound.
// Constructors pass min=1; factories and tile shapes pass MinSize.
func ValidateDims(rows, cols, min int) error {
	if rows < min || cols < min {
		return validatorErrorf(fmt.Sprintf("ValidateDims(%d,%d) min %d", rows, cols, min), ErrInvalidSize)
	}

	return nil
}

// ValidateSameLen checks a value sequence length against n.
// Errors: ErrLengthMismatch.
func ValidateSameLen(length, n int) error {
	if length != n {
		return validatorErrorf("ValidateSameLen", ErrLengthMismatch)
	}

	return nil
}
