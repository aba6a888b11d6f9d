// SPDX-License-Identifier: MIT

// Package matrix: whitespace text codec.
//
// Format (shared by Dense and block.Block):
//   - one line per row, elements separated by a single space,
//     no trailing space, '\n' after every row,
//   - one extra '\n' after the whole matrix (blank line terminator).
//
// Reading consumes exactly Rows()*Cols() whitespace-delimited tokens in
// row-major order into a matrix of the existing shape; the destination is
// only written once every token parsed, so failures leave it unchanged.
package matrix

import (
	"bufio"
	"bytes"
	"encoding"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
)

const (
	opWriteText = "WriteText"
	opReadText  = "ReadText"
)

var (
	_ encoding.TextMarshaler   = (*Dense[float64])(nil)
	_ encoding.TextUnmarshaler = (*Dense[float64])(nil)
)

// WriteGrid renders any Matrix in the whitespace text format.
func WriteGrid[T Number](w io.Writer, m Matrix[T]) error {
	bw := bufio.NewWriter(w)
	rows, cols := m.Rows(), m.Cols()
	var (
		i, j int
		v    T
		err  error
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return matrixErrorf(opWriteText, err)
			}
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(formatNumber(v))
		}
		_ = bw.WriteByte('\n')
	}
	_ = bw.WriteByte('\n')

	if err = bw.Flush(); err != nil {
		return matrixErrorf(opWriteText, err)
	}

	return nil
}

// ReadValues scans exactly n whitespace-delimited values of T from r.
//
// Errors:
//   - ErrShortInput (wrapping io.ErrUnexpectedEOF) when fewer than n tokens exist.
//   - ErrBadToken when a token does not parse as T.
//   - Any read error from r.
func ReadValues[T Number](r io.Reader, n int) ([]T, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	out := make([]T, 0, n)
	for len(out) < n && sc.Scan() {
		v, err := ParseNumber[T](sc.Text())
		if err != nil {
			return nil, fmt.Errorf("token %d: %w", len(out), err)
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) < n {
		return nil, fmt.Errorf("read %d of %d values: %w: %w", len(out), n, ErrShortInput, io.ErrUnexpectedEOF)
	}

	return out, nil
}

// ParseNumber parses one token as T using the kind and width of T.
// "1.5" is rejected for integer T rather than silently truncated.
func ParseNumber[T Number](tok string) (T, error) {
	var zero T
	rt := reflect.TypeOf(zero)
	switch rt.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(tok, rt.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", tok, errors.Join(ErrBadToken, err))
		}
		return T(f), nil
	default:
		n, err := strconv.ParseInt(tok, 10, rt.Bits())
		if err != nil {
			return 0, fmt.Errorf("%q: %w", tok, errors.Join(ErrBadToken, err))
		}
		return T(n), nil
	}
}

// formatNumber renders v the way fmt's %v does for its kind.
func formatNumber[T Number](v T) string {
	return fmt.Sprint(v)
}

// WriteText renders m in the whitespace text format.
func (m *Dense[T]) WriteText(w io.Writer) error { return WriteGrid[T](w, m) }

// ReadText reads Rows()*Cols() values into m.
//
// Behavior highlights:
//   - Atomic: values are parsed and policy-checked before any write.
func (m *Dense[T]) ReadText(r io.Reader) error {
	vals, err := ReadValues[T](r, len(m.data))
	if err != nil {
		return matrixErrorf(opReadText, err)
	}
	if m.opts.guardNaNInf {
		for idx, v := range vals {
			if isNaNInf(v) {
				return matrixErrorf(opReadText, denseErrorf(ctxSet, idx/m.c, idx%m.c, ErrNaNInf))
			}
		}
	}
	copy(m.data, vals)

	return nil
}

// MarshalText implements encoding.TextMarshaler with the WriteText format.
func (m *Dense[T]) MarshalText() ([]byte, error) {
	var b bytes.Buffer
	if err := m.WriteText(&b); err != nil {
		return nil, err
	}

	return b.Bytes(), nil
}

// UnmarshalText implements encoding.TextUnmarshaler into the existing shape.
func (m *Dense[T]) UnmarshalText(text []byte) error {
	return m.ReadText(bytes.NewReader(text))
}
