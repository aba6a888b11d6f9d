// Package matrix_test contains unit tests for the dense arithmetic kernels.
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestAdd_Succeeds(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]int{{5, 6}, {7, 8}})

	sum, err := matrix.Add(a, b)
	require.NoError(t, err)
	require.True(t, sum.Equal(mustFrom(t, [][]int{{6, 8}, {10, 12}})))

	// operands untouched
	require.True(t, a.Equal(mustFrom(t, [][]int{{1, 2}, {3, 4}})))
}

func TestAdd_DimensionMismatch(t *testing.T) {
	a := mustDense[int](t, 2, 2)
	b := mustDense[int](t, 3, 3)
	_, err := matrix.Add(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.Sub(a, b)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	require.ErrorIs(t, a.AddInPlace(b), matrix.ErrDimensionMismatch)
	require.Equal(t, 2, a.Rows()) // unchanged on failure
}

func TestSub_Succeeds(t *testing.T) {
	a := mustFrom(t, [][]float64{{5, 4}, {3, 2}, {1, 0}})
	b := mustFrom(t, [][]float64{{1, 1}, {1, 1}, {1, 1}})

	diff, err := matrix.Sub(a, b)
	require.NoError(t, err)
	require.True(t, diff.Equal(mustFrom(t, [][]float64{{4, 3}, {2, 1}, {0, -1}})))
}

func TestMul_RectangularProduct(t *testing.T) {
	a := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	b := mustFrom(t, [][]int{{7, 8}, {9, 10}, {11, 12}})

	p, err := matrix.Mul(a, b)
	require.NoError(t, err)
	require.Equal(t, [][]int{{58, 64}, {139, 154}}, p.RawCopy())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestNilOperands(t *testing.T) {
	a := mustDense[int](t, 2, 2)
	_, err := matrix.Add(a, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Mul[int](nil, a)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Transpose[int](nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.Scale[int](nil, 2)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.False(t, matrix.Equal(a, nil))
	require.True(t, matrix.Equal[int](nil, nil))
}

func TestScaleAndTranspose(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})

	s, err := matrix.Scale(m, 3)
	require.NoError(t, err)
	require.Equal(t, [][]int{{3, 6, 9}, {12, 15, 18}}, s.RawCopy())

	tr, err := matrix.Transpose(m)
	require.NoError(t, err)
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, tr.RawCopy())
	require.Equal(t, 2, m.Rows()) // pure form leaves m alone
	require.Equal(t, 3, m.Cols())
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.RawCopy())
}

func TestInPlaceTwins(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	other := mustFrom(t, [][]int{{1, 1}, {1, 1}})

	require.NoError(t, m.AddInPlace(other))
	require.Equal(t, [][]int{{2, 3}, {4, 5}}, m.RawCopy())

	require.NoError(t, m.SubInPlace(other))
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, m.RawCopy())

	m.ScaleInPlace(2)
	require.Equal(t, [][]int{{2, 4}, {6, 8}}, m.RawCopy())

	m.TransposeInPlace()
	require.Equal(t, [][]int{{2, 6}, {4, 8}}, m.RawCopy())

	col := mustFrom(t, [][]int{{1}, {1}})
	require.NoError(t, m.MulInPlace(col)) // shape changes to 2×1
	require.Equal(t, [][]int{{8}, {12}}, m.RawCopy())
}

func TestTransposeInPlace_Rectangular(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 2, 3}, {4, 5, 6}})
	m.TransposeInPlace()
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.Equal(t, [][]int{{1, 4}, {2, 5}, {3, 6}}, m.RawCopy())
}

// TestAlgebraicLaws checks associativity, commutativity and neutral elements
// on seeded random integer matrices (exact arithmetic).
func TestAlgebraicLaws(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		a := randomInts(t, 4, seed)
		b := randomInts(t, 4, seed+100)
		c := randomInts(t, 4, seed+200)

		ab, _ := matrix.Add(a, b)
		abc1, _ := matrix.Add(ab, c)
		bc, _ := matrix.Add(b, c)
		abc2, _ := matrix.Add(a, bc)
		require.True(t, abc1.Equal(abc2), "associativity")

		ba, _ := matrix.Add(b, a)
		require.True(t, ab.Equal(ba), "commutativity")

		zero, _ := matrix.MakeZero[int](4, 4)
		az, _ := matrix.Add(a, zero)
		require.True(t, az.Equal(a), "additive identity")

		id := mustIdentity[int](t, 4)
		ai, _ := matrix.Mul(a, id)
		ia, _ := matrix.Mul(id, a)
		require.True(t, ai.Equal(a), "right identity")
		require.True(t, ia.Equal(a), "left identity")

		at, _ := matrix.Transpose(a)
		att, _ := matrix.Transpose(at)
		require.True(t, att.Equal(a), "double transpose")
	}
}

func TestAllClose(t *testing.T) {
	a := mustFrom(t, [][]float64{{1, 2}, {3, 4}})
	b := mustFrom(t, [][]float64{{1 + 1e-12, 2}, {3, 4 - 1e-12}})

	ok, err := matrix.AllClose(a, b, 0, 1e-9)
	require.NoError(t, err)
	require.True(t, ok)
	require.False(t, a.Equal(b)) // library equality stays exact

	ok, err = matrix.AllClose(a, b, 0, 0)
	require.NoError(t, err)
	require.False(t, ok)

	_, err = matrix.AllClose(a, mustDense[float64](t, 3, 3), 0, 1)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
