// SPDX-License-Identifier: MIT

package block

import (
	"bytes"
	"encoding"
	"io"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opWriteText = "WriteText"
	opReadText  = "ReadText"
)

var (
	_ encoding.TextMarshaler   = (*Block[float64])(nil)
	_ encoding.TextUnmarshaler = (*Block[float64])(nil)
)

// WriteText renders the logical elements in the matrix whitespace format.
func (b *Block[T]) WriteText(w io.Writer) error {
	if err := matrix.WriteGrid[T](w, b); err != nil {
		return blockErrorf(opWriteText, err)
	}

	return nil
}

// ReadText reads Rows()*Cols() values into b. b is unchanged on any error,
// including a guard rejection raised by a tile.
func (b *Block[T]) ReadText(r io.Reader) error {
	vals, err := matrix.ReadValues[T](r, b.rows*b.cols)
	if err != nil {
		return blockErrorf(opReadText, err)
	}
	staged := b.Clone()
	for idx, v := range vals {
		if err = staged.Set(idx/b.cols, idx%b.cols, v); err != nil {
			return blockErrorf(opReadText, err)
		}
	}
	b.tiles = staged.tiles

	return nil
}

// MarshalText implements encoding.TextMarshaler with the WriteText format.
func (b *Block[T]) MarshalText() ([]byte, error) {
	var buf bytes.Buffer
	if err := b.WriteText(&buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler into the existing shape.
func (b *Block[T]) UnmarshalText(text []byte) error {
	return b.ReadText(bytes.NewReader(text))
}
