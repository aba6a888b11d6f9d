// SPDX-License-Identifier: MIT

package sparse_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestWriteText(t *testing.T) {
	s := mustSparse(t, 3, 3, entry[float64]{2, 0, -1.5}, entry[float64]{0, 1, 4})
	var buf bytes.Buffer
	require.NoError(t, s.WriteText(&buf))
	require.Equal(t, "0 1 4\n2 0 -1.5\n", buf.String())
	require.Equal(t, buf.String(), s.String())
}

func TestReadText_RoundTrip(t *testing.T) {
	src, _ := randomSparse(t, 4, 4, 7)
	var buf bytes.Buffer
	require.NoError(t, src.WriteText(&buf))

	dst := mustSparse(t, 4, 4, entry[int]{3, 3, 9})
	require.NoError(t, dst.ReadText(&buf))
	require.True(t, dst.Equal(src))
}

func TestReadText_Errors(t *testing.T) {
	s := mustSparse(t, 2, 2, entry[int]{0, 0, 1})
	keep := [][]int{{1, 0}, {0, 0}}

	require.ErrorIs(t, s.ReadText(strings.NewReader("0 1 2 1 1")), matrix.ErrShortInput)
	require.ErrorIs(t, s.ReadText(strings.NewReader("0 x 2")), matrix.ErrBadToken)
	require.ErrorIs(t, s.ReadText(strings.NewReader("0 1 2.5")), matrix.ErrBadToken)
	require.ErrorIs(t, s.ReadText(strings.NewReader("2 0 1")), matrix.ErrOutOfRange)
	require.Equal(t, keep, rowsOf(t, s))

	require.NoError(t, s.ReadText(strings.NewReader("1 1 3\n1 1 0\n0 1 4\n")))
	require.Equal(t, [][]int{{0, 4}, {0, 0}}, rowsOf(t, s))
}
