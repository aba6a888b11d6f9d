// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by Dense and the storage sub-packages.
// This file contains ONLY the element constraint, the size constant and the
// small interfaces consumed by validators and the text codec.
package matrix

// MinSize is the minimum extent accepted by the factories (MakeIdentity,
// MakeZero), by NewDefault and by block tile shapes.
const MinSize = 2

// Number is the set of element types a matrix may hold.
// Unsigned kinds are excluded: cofactor signs and Sub need negatives.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Shaper is anything with a rectangular extent.
// Validators accept Shaper so Dense, Block and Sparse share one guard set.
type Shaper interface {
	// Rows returns the number of rows.
	Rows() int
	// Cols returns the number of columns.
	Cols() int
}

// Matrix is the element-level surface shared by every storage layout.
//
// Implementations MUST return ErrOutOfRange for indices outside
// [0,Rows())×[0,Cols()) and never panic on user input.
// Complexity notes: Dense and Block are O(1); Sparse is O(log nnz) reads and
// O(nnz) writes.
type Matrix[T Number] interface {
	Shaper

	// At retrieves the element at position (i, j).
	At(i, j int) (T, error)

	// Set assigns the value v at position (i, j).
	Set(i, j int, v T) error
}
