// SPDX-License-Identifier: MIT

package sparse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
)

const (
	opWriteText = "WriteText"
	opReadText  = "ReadText"
)

// WriteText renders one "row col value" line per stored entry.
func (s *Sparse[T]) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for k, v := range s.vals {
		if _, err := fmt.Fprintf(bw, "%d %d %v\n", s.rowIdx[k], s.colIdx[k], v); err != nil {
			return sparseErrorf(opWriteText, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return sparseErrorf(opWriteText, err)
	}

	return nil
}

// ReadText replaces the entries of s with "row col value" triples read
// until EOF. Later triples overwrite earlier ones for the same coordinate;
// zero values are dropped. s is unchanged on any error.
//
// Errors: ErrShortInput (incomplete triple), ErrBadToken, ErrOutOfRange.
func (s *Sparse[T]) ReadText(r io.Reader) error {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	staged := &Sparse[T]{rows: s.rows, cols: s.cols}
	var (
		tok  [3]string
		n    int
		i, j int
		v    T
		err  error
	)
	for sc.Scan() {
		tok[n] = sc.Text()
		if n++; n < 3 {
			continue
		}
		n = 0
		if i, err = strconv.Atoi(tok[0]); err != nil {
			return sparseErrorf(opReadText, fmt.Errorf("row %q: %w: %w", tok[0], matrix.ErrBadToken, err))
		}
		if j, err = strconv.Atoi(tok[1]); err != nil {
			return sparseErrorf(opReadText, fmt.Errorf("col %q: %w: %w", tok[1], matrix.ErrBadToken, err))
		}
		if v, err = matrix.ParseNumber[T](tok[2]); err != nil {
			return sparseErrorf(opReadText, err)
		}
		if err = staged.AddValue(i, j, v); err != nil {
			return sparseErrorf(opReadText, err)
		}
	}
	if err = sc.Err(); err != nil {
		return sparseErrorf(opReadText, err)
	}
	if n != 0 {
		return sparseErrorf(opReadText, fmt.Errorf("%d trailing tokens: %w: %w", n, matrix.ErrShortInput, io.ErrUnexpectedEOF))
	}
	s.replace(staged)

	return nil
}

// String renders the coordinate list as WriteText does.
func (s *Sparse[T]) String() string {
	var b strings.Builder
	_ = s.WriteText(&b)

	return b.String()
}
