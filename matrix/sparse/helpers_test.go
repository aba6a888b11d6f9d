// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers for COO matrices.

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/sparse"
	"github.com/stretchr/testify/require"
)

// entry is one (row, col, value) triple.
type entry[T matrix.Number] struct {
	i, j int
	v    T
}

// mustSparse BUILDS an r×c Sparse from triples or fails the test.
func mustSparse[T matrix.Number](t testing.TB, r, c int, entries ...entry[T]) *sparse.Sparse[T] {
	t.Helper()
	s, err := sparse.New[T](r, c)
	require.NoError(t, err)
	for _, e := range entries {
		require.NoError(t, s.AddValue(e.i, e.j, e.v))
	}

	return s
}

// fromRows BUILDS a Sparse from literal dense rows or fails the test.
func fromRows[T matrix.Number](t testing.TB, rows [][]T) *sparse.Sparse[T] {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)
	s, err := sparse.FromDense(d)
	require.NoError(t, err)

	return s
}

// rowsOf RETURNS the dense content of s as [][]T.
func rowsOf[T matrix.Number](t testing.TB, s *sparse.Sparse[T]) [][]T {
	t.Helper()
	d, err := s.ToDense()
	require.NoError(t, err)

	return d.RawCopy()
}

// randomSparse FILLS an r×c int Dense in which about half the cells are
// zero and converts it.
func randomSparse(t testing.TB, r, c int, seed int64) (*sparse.Sparse[int], *matrix.Dense[int]) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	d, err := matrix.NewDense[int](r, c)
	require.NoError(t, err)
	require.NoError(t, d.Apply(func(_, _ int, _ int) int {
		if rng.Intn(2) == 0 {
			return 0
		}
		return rng.Intn(9) - 4
	}))
	s, err := sparse.FromDense(d)
	require.NoError(t, err)

	return s, d
}

// requireCanonical asserts row-major order, unique coordinates and no zero.
func requireCanonical[T matrix.Number](t *testing.T, s *sparse.Sparse[T]) {
	t.Helper()
	pi, pj := -1, -1
	s.Do(func(i, j int, v T) bool {
		require.NotZerof(t, v, "stored zero at (%d,%d)", i, j)
		require.Truef(t, i > pi || (i == pi && j > pj), "(%d,%d) after (%d,%d)", i, j, pi, pj)
		pi, pj = i, j
		return true
	})
}
