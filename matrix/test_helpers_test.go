// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for kernels.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// tol is the absolute tolerance for float round-trips (inverse, A·A⁻¹).
const tol = 1e-9

// mustDense ALLOCATES an r×c zero *Dense[T] or fails the test.
func mustDense[T matrix.Number](t testing.TB, r, c int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDense[T](r, c)
	require.NoError(t, err)

	return m
}

// mustFrom BUILDS a *Dense[T] from a literal 2D array or fails the test.
func mustFrom[T matrix.Number](t testing.TB, rows [][]T) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// mustIdentity RETURNS I_n or fails the test.
func mustIdentity[T matrix.Number](t testing.TB, n int) *matrix.Dense[T] {
	t.Helper()
	m, err := matrix.MakeIdentity[T](n)
	require.NoError(t, err)

	return m
}

// requireClose asserts element-wise |got-want| ≤ tol.
func requireClose(t *testing.T, want [][]float64, got *matrix.Dense[float64]) {
	t.Helper()
	ok, err := matrix.AllClose(got, mustFrom(t, want), 0, tol)
	require.NoError(t, err)
	require.Truef(t, ok, "got\n%vwant\n%v", got, want)
}

// randomInts FILLS an n×n int matrix from a seeded source with values in [-4,4].
// Small magnitudes keep determinants and products far from overflow.
func randomInts(t testing.TB, n int, seed int64) *matrix.Dense[int] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[int](t, n, n)
	require.NoError(t, m.Apply(func(_, _ int, _ int) int { return rng.Intn(9) - 4 }))

	return m
}

// randomFloats FILLS an r×c float matrix with values in [-1,1).
func randomFloats(t testing.TB, r, c int, seed int64) *matrix.Dense[float64] {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustDense[float64](t, r, c)
	require.NoError(t, m.Apply(func(_, _ int, _ float64) float64 { return rng.Float64()*2 - 1 }))

	return m
}
