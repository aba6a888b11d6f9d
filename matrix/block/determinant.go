// SPDX-License-Identifier: MIT
// Package block: determinant, minors, cofactor, adjugate and inverse.
//
// The recursion mirrors matrix.Dense: Laplace expansion along row 0 with a
// fresh minor per call. Minors are Blocks with the parent's tile shape, so
// a minor of a 5×5 tiled 2×2 is a 4×4 tiled 2×2. Cost is O(n!).

package block

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opDeterminant = "Determinant"
	opMinor       = "Minor"
	opCofactor    = "Cofactor"
	opAdjugate    = "Adjugate"
	opInverse     = "Inverse"
)

// minor copies b without row `row` and column `col`; b is at least 2×2.
func (b *Block[T]) minor(row, col int) *Block[T] {
	out := b.like(b.rows-1, b.cols-1, b.br, b.bc)
	b.Do(func(i, j int, v T) bool {
		if i == row || j == col {
			return true
		}
		if i > row {
			i--
		}
		if j > col {
			j--
		}
		_ = out.Set(i, j, v)
		return true
	})

	return out
}

// Minor returns b without row i and column j, keeping the tile shape.
// Errors: ErrInvalidSize (fewer than 2 rows or cols), ErrOutOfRange.
func (b *Block[T]) Minor(i, j int) (*Block[T], error) {
	if err := matrix.ValidateDims(b.rows, b.cols, 2); err != nil {
		return nil, blockErrorf(opMinor, err)
	}
	if err := matrix.ValidateIndex(b, i, j); err != nil {
		return nil, blockErrorf(opMinor, fmt.Errorf("(%d,%d): %w", i, j, err))
	}

	return b.minor(i, j), nil
}

// validateSquare checks the common preconditions of the expansion kernels.
func (b *Block[T]) validateSquare(op string) error {
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return blockErrorf(op, err)
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return blockErrorf(op, err)
	}

	return nil
}

// Determinant returns det(b) by cofactor expansion along the first row.
// Errors: ErrInvalidSize, ErrNotSquare.
func (b *Block[T]) Determinant() (T, error) {
	if err := b.validateSquare(opDeterminant); err != nil {
		return 0, err
	}
	if b.rows > 2 {
		matrix.Logger().Debug("cofactor expansion", slog.String("op", "block."+opDeterminant), slog.Int("n", b.rows))
	}

	return b.det(), nil
}

func (b *Block[T]) det() T {
	at := func(i, j int) T {
		v, _ := b.At(i, j)
		return v
	}
	switch b.rows {
	case 1:
		return at(0, 0)
	case 2:
		return at(0, 0)*at(1, 1) - at(0, 1)*at(1, 0)
	}

	var acc, term T
	for j := 0; j < b.cols; j++ {
		term = at(0, j) * b.minor(0, j).det()
		if j%2 == 0 {
			acc += term
		} else {
			acc -= term
		}
	}

	return acc
}

// cofactorAt returns (−1)^(i+j)·det(minor(i,j)); b is at least 2×2.
func (b *Block[T]) cofactorAt(i, j int) T {
	d := b.minor(i, j).det()
	if (i+j)%2 != 0 {
		return -d
	}

	return d
}

// Cofactor returns the cofactor matrix with the tile shape of b.
// The cofactor of a 1×1 is [1].
// Errors: ErrInvalidSize, ErrNotSquare.
func (b *Block[T]) Cofactor() (*Block[T], error) {
	if err := b.validateSquare(opCofactor); err != nil {
		return nil, err
	}
	out := b.like(b.rows, b.cols, b.br, b.bc)
	if b.rows == 1 {
		_ = out.Set(0, 0, 1)
		return out, nil
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			_ = out.Set(i, j, b.cofactorAt(i, j))
		}
	}

	return out, nil
}

// Adjugate returns the transposed cofactor matrix. Unlike Transpose it keeps
// the tile shape of b, so adj(b) and b can be combined tile-wise.
// Errors: ErrInvalidSize, ErrNotSquare.
func (b *Block[T]) Adjugate() (*Block[T], error) {
	if err := b.validateSquare(opAdjugate); err != nil {
		return nil, err
	}
	out := b.like(b.rows, b.cols, b.br, b.bc)
	if b.rows == 1 {
		_ = out.Set(0, 0, 1)
		return out, nil
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			_ = out.Set(j, i, b.cofactorAt(i, j))
		}
	}

	return out, nil
}

// Inverse returns adj(b) / det(b), each entry divided by the determinant.
// Errors: ErrInvalidSize, ErrNotSquare, ErrSingular.
func (b *Block[T]) Inverse() (*Block[T], error) {
	if err := b.validateSquare(opInverse); err != nil {
		return nil, err
	}
	det := b.det()
	if det == 0 {
		matrix.Logger().Warn("inverse of singular matrix", slog.String("op", "block."+opInverse), slog.Int("n", b.rows))
		return nil, blockErrorf(opInverse, fmt.Errorf("determinant is zero: %w", matrix.ErrSingular))
	}
	adj, err := b.Adjugate()
	if err != nil {
		return nil, blockErrorf(opInverse, err)
	}
	for _, row := range adj.tiles {
		for _, t := range row {
			// Padding stays zero: 0 / det == 0.
			_ = t.Apply(func(_, _ int, v T) T { return v / det })
		}
	}

	return adj, nil
}
