// SPDX-License-Identifier: MIT

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/sparse"
	"github.com/stretchr/testify/require"
)

func TestAdd(t *testing.T) {
	a := mustSparse(t, 3, 3, entry[int]{0, 0, 1}, entry[int]{1, 1, 2})
	b := mustSparse(t, 3, 3, entry[int]{0, 0, 3}, entry[int]{1, 1, 4})
	sum, err := sparse.Add(a, b)
	require.NoError(t, err)

	v, _ := sum.Value(0, 0)
	require.Equal(t, 4, v)
	v, _ = sum.Value(1, 1)
	require.Equal(t, 6, v)
	v, _ = sum.Value(2, 2)
	require.Zero(t, v)
}

func TestSub(t *testing.T) {
	a := mustSparse(t, 3, 3, entry[int]{0, 0, 5}, entry[int]{1, 1, 4})
	b := mustSparse(t, 3, 3, entry[int]{0, 0, 3}, entry[int]{1, 1, 2})
	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)

	v, _ := diff.Value(0, 0)
	require.Equal(t, 2, v)
	v, _ = diff.Value(1, 1)
	require.Equal(t, 2, v)

	self, err := sparse.Sub(a, a)
	require.NoError(t, err)
	require.True(t, self.IsEmpty(), "cancellation must not store zeros")
}

func TestMul(t *testing.T) {
	a := mustSparse(t, 2, 3, entry[int]{0, 0, 1}, entry[int]{1, 2, 2})
	b := mustSparse(t, 3, 2, entry[int]{0, 1, 3}, entry[int]{2, 0, 4})
	p, err := sparse.Mul(a, b)
	require.NoError(t, err)

	v, _ := p.Value(0, 1)
	require.Equal(t, 3, v)
	v, _ = p.Value(1, 0)
	require.Equal(t, 8, v)
	require.Equal(t, 2, p.NonZeroCount())
}

func TestMul_CancellationDropped(t *testing.T) {
	// [1 1] times the column (1, -1) is the 1×1 zero.
	a := fromRows(t, [][]int{{1, 1}})
	b := fromRows(t, [][]int{{1}, {-1}})
	p, err := sparse.Mul(a, b)
	require.NoError(t, err)
	require.True(t, p.IsEmpty())
}

// TestArith_MatchesDense checks every kernel against the Dense reference.
func TestArith_MatchesDense(t *testing.T) {
	a, da := randomSparse(t, 4, 5, 2)
	b, db := randomSparse(t, 4, 5, 3)
	c, dc := randomSparse(t, 5, 3, 4)

	sum, err := sparse.Add(a, b)
	require.NoError(t, err)
	want, _ := matrix.Add(da, db)
	require.Equal(t, want.RawCopy(), rowsOf(t, sum))
	requireCanonical(t, sum)

	diff, err := sparse.Sub(a, b)
	require.NoError(t, err)
	want, _ = matrix.Sub(da, db)
	require.Equal(t, want.RawCopy(), rowsOf(t, diff))
	requireCanonical(t, diff)

	p, err := sparse.Mul(a, c)
	require.NoError(t, err)
	want, _ = matrix.Mul(da, dc)
	require.Equal(t, want.RawCopy(), rowsOf(t, p))
	requireCanonical(t, p)

	sc, err := sparse.Scale(a, -2)
	require.NoError(t, err)
	want, _ = matrix.Scale(da, -2)
	require.Equal(t, want.RawCopy(), rowsOf(t, sc))

	tr, err := sparse.Transpose(a)
	require.NoError(t, err)
	want, _ = matrix.Transpose(da)
	require.Equal(t, want.RawCopy(), rowsOf(t, tr))
	requireCanonical(t, tr)

	zero, err := sparse.Scale(a, 0)
	require.NoError(t, err)
	require.True(t, zero.IsEmpty())
}

func TestArith_Errors(t *testing.T) {
	a := mustSparse[int](t, 2, 2)
	b := mustSparse[int](t, 3, 3)
	_, err := sparse.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = sparse.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = sparse.Mul(mustSparse[int](t, 2, 3), mustSparse[int](t, 4, 2))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = sparse.Add[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = sparse.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestInPlace_Twins(t *testing.T) {
	a, _ := randomSparse(t, 3, 3, 10)
	b, _ := randomSparse(t, 3, 3, 11)

	got := a.Clone()
	require.NoError(t, got.AddInPlace(b))
	want, _ := sparse.Add(a, b)
	require.True(t, got.Equal(want))

	got = a.Clone()
	require.NoError(t, got.SubInPlace(b))
	want, _ = sparse.Sub(a, b)
	require.True(t, got.Equal(want))

	got = a.Clone()
	require.NoError(t, got.MulInPlace(b))
	want, _ = sparse.Mul(a, b)
	require.True(t, got.Equal(want))

	got = a.Clone()
	got.ScaleInPlace(3)
	want, _ = sparse.Scale(a, 3)
	require.True(t, got.Equal(want))

	got = fromRows(t, [][]int{{0, 2, 0}, {1, 0, 3}})
	got.TransposeInPlace()
	require.Equal(t, [][]int{{0, 1}, {2, 0}, {0, 3}}, rowsOf(t, got))

	bad := mustSparse[int](t, 2, 2)
	require.ErrorIs(t, got.AddInPlace(bad), matrix.ErrDimensionMismatch)
	require.Equal(t, [][]int{{0, 1}, {2, 0}, {0, 3}}, rowsOf(t, got))
}
