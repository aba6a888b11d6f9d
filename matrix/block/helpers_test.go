// SPDX-License-Identifier: MIT
// Package block_test contains test helpers for tiled matrices.

package block_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/block"
	"github.com/stretchr/testify/require"
)

// tilings are the tile shapes every layout-independent test runs under:
// square, rectangular both ways, and a single tile covering everything.
var tilings = [][2]int{{2, 2}, {3, 2}, {2, 3}, {5, 5}}

// mustDense BUILDS a *matrix.Dense[T] from literal rows or fails the test.
func mustDense[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// mustBlock BUILDS a Block from literal rows with br×bc tiles or fails the test.
func mustBlock[T matrix.Number](t testing.TB, rows [][]T, br, bc int) *block.Block[T] {
	t.Helper()
	b, err := block.FromDense(mustDense(t, rows), br, bc)
	require.NoError(t, err)

	return b
}

// rowsOf RETURNS the logical content of b as [][]T.
func rowsOf[T matrix.Number](t testing.TB, b *block.Block[T]) [][]T {
	t.Helper()
	d, err := b.ToDense()
	require.NoError(t, err)

	return d.RawCopy()
}

// randomDense FILLS an r×c int Dense with values in [-4,4] from a seeded source.
func randomDense(t testing.TB, r, c int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := matrix.NewDense[int](r, c)
	require.NoError(t, err)
	require.NoError(t, d.Apply(func(_, _ int, _ int) int { return rng.Intn(9) - 4 }))

	return d
}

// requirePaddingZero asserts every cell past the logical bounds is zero.
func requirePaddingZero[T matrix.Number](t *testing.T, b *block.Block[T]) {
	t.Helper()
	tr, tc := b.Grid()
	br, bc := b.BlockShape()
	for ti := 0; ti < tr; ti++ {
		for tj := 0; tj < tc; tj++ {
			tile, err := b.Tile(ti, tj)
			require.NoError(t, err)
			tile.Do(func(i, j int, v T) bool {
				if ti*br+i >= b.Rows() || tj*bc+j >= b.Cols() {
					require.Zerof(t, v, "padding (%d,%d) of tile (%d,%d)", i, j, ti, tj)
				}
				return true
			})
		}
	}
}
