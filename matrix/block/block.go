// SPDX-License-Identifier: MIT

package block

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opNew       = "New"
	opFromDense = "FromDense"
	opToDense   = "ToDense"
	opAt        = "At"
	opSet       = "Set"
	opTile      = "Tile"
	opCopyFrom  = "CopyFrom"
	opReshape   = "Reshape"
)

// Block is a logical rows×cols matrix tiled into br×bc Dense blocks.
// The zero value is an empty 0×0 Block; use New or FromDense.
type Block[T matrix.Number] struct {
	rows, cols int
	br, bc     int
	tiles      [][]*matrix.Dense[T]
	opts       []matrix.Option
}

var _ matrix.Matrix[float64] = (*Block[float64])(nil)

// blockErrorf tags err with the package and operation name.
func blockErrorf(op string, err error) error {
	return fmt.Errorf("block.%s: %w", op, err)
}

// gridExtent returns ceil(n/b).
func gridExtent(n, b int) int { return (n + b - 1) / b }

// New allocates a zeroed rows×cols Block with br×bc tiles.
//
// Errors:
//   - ErrInvalidSize if rows or cols < 1, or br or bc < matrix.MinSize.
//
// Options (e.g. matrix.WithNaNInfGuard) are applied to every tile.
func New[T matrix.Number](rows, cols, br, bc int, opts ...matrix.Option) (*Block[T], error) {
	if err := matrix.ValidateDims(rows, cols, 1); err != nil {
		return nil, blockErrorf(opNew, err)
	}
	if err := matrix.ValidateDims(br, bc, matrix.MinSize); err != nil {
		return nil, blockErrorf(opNew, err)
	}

	return alloc[T](rows, cols, br, bc, opts), nil
}

// alloc builds the tile grid; callers have validated the extents.
func alloc[T matrix.Number](rows, cols, br, bc int, opts []matrix.Option) *Block[T] {
	tr, tc := gridExtent(rows, br), gridExtent(cols, bc)
	tiles := make([][]*matrix.Dense[T], tr)
	for i := range tiles {
		tiles[i] = make([]*matrix.Dense[T], tc)
		for j := range tiles[i] {
			// br, bc ≥ MinSize, so NewDense cannot fail.
			tiles[i][j], _ = matrix.NewDense[T](br, bc, opts...)
		}
	}

	return &Block[T]{rows: rows, cols: cols, br: br, bc: bc, tiles: tiles, opts: opts}
}

// like allocates a zeroed Block with the same options as b.
func (b *Block[T]) like(rows, cols, br, bc int) *Block[T] {
	return alloc[T](rows, cols, br, bc, b.opts)
}

// retile copies b into a fresh Block of the same logical shape cut into
// br×bc tiles.
func (b *Block[T]) retile(br, bc int) (*Block[T], error) {
	out := b.like(b.rows, b.cols, br, bc)
	var err error
	b.Do(func(i, j int, v T) bool {
		if v == 0 {
			return true
		}
		err = out.Set(i, j, v)
		return err == nil
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// FromDense splits d into br×bc tiles.
//
// Errors: ErrNilMatrix, ErrInvalidSize (see New).
func FromDense[T matrix.Number](d *matrix.Dense[T], br, bc int, opts ...matrix.Option) (*Block[T], error) {
	if d == nil {
		return nil, blockErrorf(opFromDense, matrix.ErrNilMatrix)
	}
	out, err := New[T](d.Rows(), d.Cols(), br, bc, opts...)
	if err != nil {
		return nil, err
	}
	var setErr error
	d.Do(func(i, j int, v T) bool {
		setErr = out.Set(i, j, v)
		return setErr == nil
	})
	if setErr != nil {
		return nil, blockErrorf(opFromDense, setErr)
	}

	return out, nil
}

// ToDense assembles the logical elements into one Dense.
//
// Errors: ErrInvalidSize for an empty (moved-from) Block.
func (b *Block[T]) ToDense() (*matrix.Dense[T], error) {
	out, err := matrix.NewDense[T](b.rows, b.cols, b.opts...)
	if err != nil {
		return nil, blockErrorf(opToDense, err)
	}
	b.Do(func(i, j int, v T) bool {
		_ = out.Set(i, j, v)
		return true
	})

	return out, nil
}

// Rows returns the logical row count.
func (b *Block[T]) Rows() int { return b.rows }

// Cols returns the logical column count.
func (b *Block[T]) Cols() int { return b.cols }

// Shape returns the logical (rows, cols).
func (b *Block[T]) Shape() (rows, cols int) { return b.rows, b.cols }

// Grid returns the number of tile rows and tile columns.
func (b *Block[T]) Grid() (tr, tc int) {
	if b.rows == 0 || b.cols == 0 {
		return 0, 0
	}

	return len(b.tiles), len(b.tiles[0])
}

// BlockShape returns the tile extent (br, bc).
func (b *Block[T]) BlockShape() (br, bc int) { return b.br, b.bc }

// locate maps a logical coordinate to its tile and in-tile offset.
func (b *Block[T]) locate(i, j int) (*matrix.Dense[T], int, int, error) {
	if err := matrix.ValidateIndex(b, i, j); err != nil {
		return nil, 0, 0, fmt.Errorf("(%d,%d) of %dx%d: %w", i, j, b.rows, b.cols, err)
	}

	return b.tiles[i/b.br][j/b.bc], i % b.br, j % b.bc, nil
}

// At returns the logical element (i,j).
// Errors: ErrOutOfRange (padding cells included).
func (b *Block[T]) At(i, j int) (T, error) {
	t, ti, tj, err := b.locate(i, j)
	if err != nil {
		return 0, blockErrorf(opAt, err)
	}

	return t.At(ti, tj)
}

// Set assigns the logical element (i,j).
// Errors: ErrOutOfRange, ErrNaNInf when the tiles carry the guard option.
func (b *Block[T]) Set(i, j int, v T) error {
	t, ti, tj, err := b.locate(i, j)
	if err != nil {
		return blockErrorf(opSet, err)
	}
	if err = t.Set(ti, tj, v); err != nil {
		return blockErrorf(opSet, err)
	}

	return nil
}

// Tile returns tile (ti,tj) by reference. Writes through it are visible in
// b; the caller must keep padding cells zero and must not retain the tile
// past the next Reshape, CopyFrom or Move of b.
// Errors: ErrOutOfRange.
func (b *Block[T]) Tile(ti, tj int) (*matrix.Dense[T], error) {
	tr, tc := b.Grid()
	if ti < 0 || ti >= tr || tj < 0 || tj >= tc {
		return nil, blockErrorf(opTile, fmt.Errorf("tile (%d,%d) of %dx%d: %w", ti, tj, tr, tc, matrix.ErrOutOfRange))
	}

	return b.tiles[ti][tj], nil
}

// Do visits logical elements in row-major order until f returns false.
func (b *Block[T]) Do(f func(i, j int, v T) bool) {
	var v T
	for i := 0; i < b.rows; i++ {
		row := b.tiles[i/b.br]
		for j := 0; j < b.cols; j++ {
			v, _ = row[j/b.bc].At(i%b.br, j%b.bc)
			if !f(i, j, v) {
				return
			}
		}
	}
}

// Clone returns a deep copy with the same tile shape.
func (b *Block[T]) Clone() *Block[T] {
	out := &Block[T]{rows: b.rows, cols: b.cols, br: b.br, bc: b.bc, opts: b.opts}
	out.tiles = make([][]*matrix.Dense[T], len(b.tiles))
	for i, row := range b.tiles {
		out.tiles[i] = make([]*matrix.Dense[T], len(row))
		for j, t := range row {
			out.tiles[i][j] = t.Clone()
		}
	}

	return out
}

// CopyFrom rebuilds every tile of b as a copy of src, adopting its shape.
// Copying b onto itself is a no-op.
// Errors: ErrNilMatrix.
func (b *Block[T]) CopyFrom(src *Block[T]) error {
	if src == nil {
		return blockErrorf(opCopyFrom, matrix.ErrNilMatrix)
	}
	if src == b {
		return nil
	}
	*b = *src.Clone()

	return nil
}

// Move transfers the storage of b into a new Block and leaves b empty (0×0).
func (b *Block[T]) Move() *Block[T] {
	out := &Block[T]{rows: b.rows, cols: b.cols, br: b.br, bc: b.bc, tiles: b.tiles, opts: b.opts}
	b.rows, b.cols, b.tiles = 0, 0, nil

	return out
}

// Reshape discards all content and reallocates zeroed tiles.
// Errors: ErrInvalidSize (see New); b is unchanged on error.
func (b *Block[T]) Reshape(rows, cols, br, bc int) error {
	nb, err := New[T](rows, cols, br, bc, b.opts...)
	if err != nil {
		return blockErrorf(opReshape, err)
	}
	*b = *nb

	return nil
}

// replace adopts res storage after an out-of-place kernel.
func (b *Block[T]) replace(res *Block[T]) {
	b.rows, b.cols, b.br, b.bc, b.tiles = res.rows, res.cols, res.br, res.bc, res.tiles
}

// FrobeniusNorm returns sqrt(Σ a_ij²) over the logical elements. Padding is
// zero, so the per-tile sums of squares are added and rooted once.
func (b *Block[T]) FrobeniusNorm() float64 {
	var s float64
	for _, row := range b.tiles {
		for _, t := range row {
			s += t.SumSquares()
		}
	}

	return math.Sqrt(s)
}

// String renders logical rows as "[1, 2]\n[3, 4]\n", matching matrix.Dense.
func (b *Block[T]) String() string {
	var sb strings.Builder
	b.Do(func(i, j int, v T) bool {
		if j == 0 {
			sb.WriteByte('[')
		} else {
			sb.WriteString(", ")
		}
		fmt.Fprint(&sb, v)
		if j == b.cols-1 {
			sb.WriteString("]\n")
		}
		return true
	})

	return sb.String()
}
