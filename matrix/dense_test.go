// Package matrix_test contains unit tests for the Dense storage layer.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDefault_ZeroFilled covers the default-constructed 2×2.
func TestNewDefault_ZeroFilled(t *testing.T) {
	m := matrix.NewDefault[int]()
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 2, m.Cols())
	require.True(t, m.IsZero())
}

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense[float64](0, 5)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	_, err = matrix.NewDense[float64](5, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	m, err := matrix.NewDense[float64](1, 1) // 1×1 is legal below MinSize
	require.NoError(t, err)
	require.Equal(t, 1, m.Rows())
}

func TestNewSquare(t *testing.T) {
	m, err := matrix.NewSquare[int](3)
	require.NoError(t, err)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 3, m.Cols())
	require.True(t, m.IsZero())
	require.True(t, m.IsSquare())

	_, err = matrix.NewSquare[int](0)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
	_, err = matrix.NewSquare[int](-2)
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	g, err := matrix.NewSquare[float64](2, matrix.WithNaNInfGuard())
	require.NoError(t, err)
	require.True(t, g.Options().GuardNaNInf())
	require.ErrorIs(t, g.Set(1, 1, math.NaN()), matrix.ErrNaNInf)
}

func TestNewDenseFrom(t *testing.T) {
	src := [][]int{{1, 2, 3}, {4, 5, 6}}
	m, err := matrix.NewDenseFrom(src)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	src[0][0] = 99 // the matrix owns a copy
	v, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1, v)
	require.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, m.RawCopy())

	_, err = matrix.NewDenseFrom([][]int{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom([][]int{})
	require.ErrorIs(t, err, matrix.ErrInvalidSize)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := mustDense[float64](t, 2, 2)

	_, err := m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetGet validates correct behavior of Set() followed by At() on valid indices.
func TestSetGet(t *testing.T) {
	m := mustDense[float64](t, 2, 3)
	require.NoError(t, m.Set(1, 2, 7.89))

	val, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.89, val)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0, 7.89}, row)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 0}, {0, 2}})
	clone := m.Clone()
	require.NoError(t, clone.Set(0, 0, 3))

	orig, _ := m.At(0, 0)
	require.Equal(t, 1, orig)
	cv, _ := clone.At(0, 0)
	require.Equal(t, 3, cv)
}

func TestMove_LeavesEmptySource(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	moved := m.Move()

	require.Equal(t, 0, m.Rows())
	require.Equal(t, 0, m.Cols())
	require.True(t, m.IsZero()) // valid, empty
	_, err := m.At(0, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.Determinant()
	require.ErrorIs(t, err, matrix.ErrInvalidSize)

	require.True(t, moved.Equal(mustFrom(t, [][]int{{1, 2}, {3, 4}})))
}

func TestCopyFrom(t *testing.T) {
	dst := mustDense[int](t, 3, 3)
	src := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	require.NoError(t, dst.CopyFrom(src))
	require.True(t, dst.Equal(src))

	require.NoError(t, src.Set(0, 0, 42)) // no aliasing after copy
	v, _ := dst.At(0, 0)
	require.Equal(t, 1, v)

	require.NoError(t, dst.CopyFrom(dst))
	require.ErrorIs(t, dst.CopyFrom(nil), matrix.ErrNilMatrix)
}

func TestDoStopsEarly(t *testing.T) {
	m := mustFrom(t, [][]int{{1, 2}, {3, 4}})
	var seen []int
	m.Do(func(_, _ int, v int) bool {
		seen = append(seen, v)
		return v < 3
	})
	require.Equal(t, []int{1, 2, 3}, seen)
}

func TestApply_GuardIsAtomic(t *testing.T) {
	m, err := matrix.NewDense[float64](2, 2, matrix.WithNaNInfGuard())
	require.NoError(t, err)
	require.NoError(t, m.Set(0, 0, 1))

	err = m.Apply(func(i, j int, v float64) float64 {
		if i == 1 && j == 1 {
			return math.Inf(1)
		}
		return v + 10
	})
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	v, _ := m.At(0, 0)
	require.Equal(t, 1.0, v) // first cell untouched despite being visited
}

func TestFrobeniusNorm(t *testing.T) {
	m := mustFrom(t, [][]float64{{3, 0}, {0, 4}})
	require.InDelta(t, 5.0, m.FrobeniusNorm(), tol)
	require.InDelta(t, 25.0, m.SumSquares(), tol)
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := mustFrom(t, [][]float64{{1, 2}, {3, 4.5}})
	require.Equal(t, "[1, 2]\n[3, 4.5]\n", m.String())
}
