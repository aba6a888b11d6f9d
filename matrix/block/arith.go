// SPDX-License-Identifier: MIT
// Package block: tile-level arithmetic.
//
// Purpose:
//   - Lift matrix.Add / Sub / Mul / Scale / Transpose from tiles to Blocks.
//   - Provide out-of-place functions plus in-place receiver twins.
//
// Contracts:
//   - Add/Sub need equal logical shape AND equal tile shape.
//   - Mul needs a.Cols()==b.Rows() only. When a.bc != b.br the right operand
//     is re-cut into a.bc×b.bc tiles first so the inner tile grids line up;
//     the result has tile shape a.br×b.bc.
//   - Zero padding is preserved by every kernel: zero rows/columns stay zero
//     under addition, scaling, products and transposition.

package block

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opAdd       = "Add"
	opSub       = "Sub"
	opMul       = "Mul"
	opScale     = "Scale"
	opTranspose = "Transpose"
	opConcat    = "Concat"
	opPow       = "Pow"
	opIdentity  = "Identity"
)

// sameTiling reports ErrDimensionMismatch when tile shapes differ.
func sameTiling[T matrix.Number](a, b *Block[T]) error {
	if a.br != b.br || a.bc != b.bc {
		return fmt.Errorf("tile %dx%d vs %dx%d: %w", a.br, a.bc, b.br, b.bc, matrix.ErrDimensionMismatch)
	}

	return nil
}

// validatePair checks the Add/Sub preconditions.
func validatePair[T matrix.Number](a, b *Block[T]) error {
	if a == nil || b == nil {
		return matrix.ErrNilMatrix
	}
	if err := matrix.ValidateSameShape(a, b); err != nil {
		return err
	}

	return sameTiling(a, b)
}

// tileWise applies f to each pair of corresponding tiles into a new Block.
func tileWise[T matrix.Number](a, b *Block[T], f func(x, y *matrix.Dense[T]) (*matrix.Dense[T], error)) (*Block[T], error) {
	out := &Block[T]{rows: a.rows, cols: a.cols, br: a.br, bc: a.bc, opts: a.opts}
	out.tiles = make([][]*matrix.Dense[T], len(a.tiles))
	var err error
	for i, row := range a.tiles {
		out.tiles[i] = make([]*matrix.Dense[T], len(row))
		for j := range row {
			if out.tiles[i][j], err = f(a.tiles[i][j], b.tiles[i][j]); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Add returns a + b tile by tile.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Add[T matrix.Number](a, b *Block[T]) (*Block[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, blockErrorf(opAdd, err)
	}
	out, err := tileWise(a, b, matrix.Add[T])
	if err != nil {
		return nil, blockErrorf(opAdd, err)
	}

	return out, nil
}

// Sub returns a − b tile by tile.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sub[T matrix.Number](a, b *Block[T]) (*Block[T], error) {
	if err := validatePair(a, b); err != nil {
		return nil, blockErrorf(opSub, err)
	}
	out, err := tileWise(a, b, matrix.Sub[T])
	if err != nil {
		return nil, blockErrorf(opSub, err)
	}

	return out, nil
}

// Mul returns the block product a × b.
//
// Implementation:
//   - Stage 1: validate a.Cols()==b.Rows().
//   - Stage 2: when a.bc != b.br, retile b to a.bc×b.bc (one O(b.rows·b.cols)
//     copy; b itself is not modified).
//   - Stage 3: for every output tile (i,j) accumulate Σ_k A(i,k)·B(k,j)
//     with matrix.Mul and AddInPlace.
//
// Errors: ErrNilMatrix, ErrInvalidSize (empty operand), ErrDimensionMismatch.
//
// Complexity: O(a.rows·a.cols·b.cols) padded to whole tiles.
func Mul[T matrix.Number](a, b *Block[T]) (*Block[T], error) {
	if a == nil || b == nil {
		return nil, blockErrorf(opMul, matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateNonEmpty(a); err != nil {
		return nil, blockErrorf(opMul, err)
	}
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return nil, blockErrorf(opMul, err)
	}
	if err := matrix.ValidateMulCompatible(a, b); err != nil {
		return nil, blockErrorf(opMul, err)
	}
	if a.bc != b.br {
		matrix.Logger().Debug("block mul retile", slog.Int("from_br", b.br), slog.Int("to_br", a.bc), slog.Int("bc", b.bc))
		rb, err := b.retile(a.bc, b.bc)
		if err != nil {
			return nil, blockErrorf(opMul, err)
		}
		b = rb
	}

	tr, inner, tc := len(a.tiles), len(b.tiles), len(b.tiles[0])
	out := &Block[T]{rows: a.rows, cols: b.cols, br: a.br, bc: b.bc, opts: a.opts}
	out.tiles = make([][]*matrix.Dense[T], tr)
	var (
		acc, p *matrix.Dense[T]
		err    error
	)
	for i := 0; i < tr; i++ {
		out.tiles[i] = make([]*matrix.Dense[T], tc)
		for j := 0; j < tc; j++ {
			if acc, err = matrix.Mul(a.tiles[i][0], b.tiles[0][j]); err != nil {
				return nil, blockErrorf(opMul, err)
			}
			for k := 1; k < inner; k++ {
				if p, err = matrix.Mul(a.tiles[i][k], b.tiles[k][j]); err != nil {
					return nil, blockErrorf(opMul, err)
				}
				if err = acc.AddInPlace(p); err != nil {
					return nil, blockErrorf(opMul, err)
				}
			}
			out.tiles[i][j] = acc
		}
	}

	return out, nil
}

// Scale returns alpha·b.
// Errors: ErrNilMatrix.
func Scale[T matrix.Number](b *Block[T], alpha T) (*Block[T], error) {
	if b == nil {
		return nil, blockErrorf(opScale, matrix.ErrNilMatrix)
	}
	out := b.Clone()
	out.ScaleInPlace(alpha)

	return out, nil
}

// Transpose returns bᵀ with tile shape bc×br: tile (j,i) of the result is
// the transpose of tile (i,j).
// Errors: ErrNilMatrix.
func Transpose[T matrix.Number](b *Block[T]) (*Block[T], error) {
	if b == nil {
		return nil, blockErrorf(opTranspose, matrix.ErrNilMatrix)
	}
	tr, tc := b.Grid()
	out := &Block[T]{rows: b.cols, cols: b.rows, br: b.bc, bc: b.br, opts: b.opts}
	out.tiles = make([][]*matrix.Dense[T], tc)
	for j := 0; j < tc; j++ {
		out.tiles[j] = make([]*matrix.Dense[T], tr)
		for i := 0; i < tr; i++ {
			out.tiles[j][i], _ = matrix.Transpose(b.tiles[i][j])
		}
	}

	return out, nil
}

// AddInPlace sets b = b + o. b is unchanged on error.
func (b *Block[T]) AddInPlace(o *Block[T]) error {
	if err := validatePair(b, o); err != nil {
		return blockErrorf(opAdd, err)
	}
	for i, row := range b.tiles {
		for j, t := range row {
			_ = t.AddInPlace(o.tiles[i][j])
		}
	}

	return nil
}

// SubInPlace sets b = b − o. b is unchanged on error.
func (b *Block[T]) SubInPlace(o *Block[T]) error {
	if err := validatePair(b, o); err != nil {
		return blockErrorf(opSub, err)
	}
	for i, row := range b.tiles {
		for j, t := range row {
			_ = t.SubInPlace(o.tiles[i][j])
		}
	}

	return nil
}

// MulInPlace sets b = b × o; the logical shape and tile shape of b may change.
func (b *Block[T]) MulInPlace(o *Block[T]) error {
	res, err := Mul(b, o)
	if err != nil {
		return err
	}
	b.replace(res)

	return nil
}

// ScaleInPlace multiplies every element by alpha.
func (b *Block[T]) ScaleInPlace(alpha T) {
	for _, row := range b.tiles {
		for _, t := range row {
			t.ScaleInPlace(alpha)
		}
	}
}

// TransposeInPlace replaces b with bᵀ; the tile shape swaps to bc×br.
func (b *Block[T]) TransposeInPlace() {
	res, _ := Transpose(b)
	b.replace(res)
}

// Identity returns the n×n identity with br×bc tiles.
// Errors: ErrInvalidSize (see New).
func Identity[T matrix.Number](n, br, bc int, opts ...matrix.Option) (*Block[T], error) {
	out, err := New[T](n, n, br, bc, opts...)
	if err != nil {
		return nil, blockErrorf(opIdentity, err)
	}
	out.setIdentity()

	return out, nil
}

// setIdentity writes 1 on the logical diagonal; b is zeroed and square.
func (b *Block[T]) setIdentity() {
	for i := 0; i < b.rows; i++ {
		_ = b.tiles[i/b.br][i/b.bc].Set(i%b.br, i%b.bc, 1)
	}
}

// Concat joins a and b side by side (horizontal) or stacked (vertical).
//
// Errors:
//   - ErrNilMatrix.
//   - ErrDimensionMismatch if tile shapes differ, or rows differ
//     (horizontal), or cols differ (vertical).
func Concat[T matrix.Number](a, b *Block[T], horizontal bool) (*Block[T], error) {
	if a == nil || b == nil {
		return nil, blockErrorf(opConcat, matrix.ErrNilMatrix)
	}
	if err := sameTiling(a, b); err != nil {
		return nil, blockErrorf(opConcat, err)
	}

	var out *Block[T]
	var offR, offC int
	if horizontal {
		if a.rows != b.rows {
			return nil, blockErrorf(opConcat, fmt.Errorf("rows %d vs %d: %w", a.rows, b.rows, matrix.ErrDimensionMismatch))
		}
		out, offC = a.like(a.rows, a.cols+b.cols, a.br, a.bc), a.cols
	} else {
		if a.cols != b.cols {
			return nil, blockErrorf(opConcat, fmt.Errorf("cols %d vs %d: %w", a.cols, b.cols, matrix.ErrDimensionMismatch))
		}
		out, offR = a.like(a.rows+b.rows, a.cols, a.br, a.bc), a.rows
	}
	a.Do(func(i, j int, v T) bool {
		_ = out.Set(i, j, v)
		return true
	})
	b.Do(func(i, j int, v T) bool {
		_ = out.Set(i+offR, j+offC, v)
		return true
	})

	return out, nil
}

// Pow returns b raised to a non-negative integer power by repeated Mul.
//
// Behavior highlights:
//   - exp == 0 yields the identity with the tile shape of b.
//   - Every result keeps the tile shape of b. Rectangular tiles are fine:
//     the right factor is re-cut into bc×bc tiles once, before the loop.
//
// Errors: ErrInvalidSize (empty), ErrNotSquare, ErrNegativeExponent.
func (b *Block[T]) Pow(exp int) (*Block[T], error) {
	if err := matrix.ValidateNonEmpty(b); err != nil {
		return nil, blockErrorf(opPow, err)
	}
	if err := matrix.ValidateSquare(b); err != nil {
		return nil, blockErrorf(opPow, err)
	}
	if exp < 0 {
		return nil, blockErrorf(opPow, fmt.Errorf("exp %d: %w", exp, matrix.ErrNegativeExponent))
	}
	matrix.Logger().Debug("block pow", slog.Int("n", b.rows), slog.Int("exp", exp), slog.Int("br", b.br), slog.Int("bc", b.bc))

	if exp == 0 {
		out := b.like(b.rows, b.cols, b.br, b.bc)
		out.setIdentity()
		return out, nil
	}
	res := b.Clone()
	rhs := b
	var err error
	if exp > 1 && b.br != b.bc {
		if rhs, err = b.retile(b.bc, b.bc); err != nil {
			return nil, blockErrorf(opPow, err)
		}
	}
	for k := 1; k < exp; k++ {
		if res, err = Mul(res, rhs); err != nil {
			return nil, blockErrorf(opPow, err)
		}
	}

	return res, nil
}
