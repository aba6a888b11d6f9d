// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/matrix/block"
	"github.com/katalvlaran/linalg/matrix/sparse"
)

// Operation names accepted by -op.
const (
	opDet       = "det"
	opInv       = "inv"
	opTranspose = "transpose"
	opAdj       = "adj"
	opCofactor  = "cofactor"
	opNorm      = "norm"
	opTrace     = "trace"
)

// Storage layouts accepted by -layout.
const (
	layoutDense  = "dense"
	layoutBlock  = "block"
	layoutSparse = "sparse"
)

// errUnsupported reports an op the chosen layout does not provide.
var errUnsupported = errors.New("matcalc: unsupported operation for layout")

// config is the parsed command line shared by every run.
type config struct {
	op     string
	layout string
	tile   int
	float  bool
}

// run reads one matrix from r, applies cfg.op and writes the result to w.
func run(cfg config, r io.Reader, w io.Writer) error {
	if cfg.float {
		return runTyped[float64](cfg, r, w)
	}

	return runTyped[int](cfg, r, w)
}

// readInput parses "rows cols" followed by rows*cols values.
func readInput[T matrix.Number](r io.Reader) (*matrix.Dense[T], error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	fields := strings.Fields(string(data))
	if len(fields) < 2 {
		return nil, fmt.Errorf("header: %w", matrix.ErrShortInput)
	}
	rows, err := matrix.ParseNumber[int](fields[0])
	if err != nil {
		return nil, fmt.Errorf("rows: %w", err)
	}
	cols, err := matrix.ParseNumber[int](fields[1])
	if err != nil {
		return nil, fmt.Errorf("cols: %w", err)
	}
	d, err := matrix.NewDense[T](rows, cols, matrix.WithNaNInfGuard())
	if err != nil {
		return nil, err
	}
	if err = d.ReadText(strings.NewReader(strings.Join(fields[2:], " "))); err != nil {
		return nil, err
	}

	return d, nil
}

func runTyped[T matrix.Number](cfg config, r io.Reader, w io.Writer) error {
	d, err := readInput[T](r)
	if err != nil {
		return err
	}
	switch cfg.layout {
	case layoutDense:
		return runDense(cfg.op, d, w)
	case layoutBlock:
		b, err := block.FromDense(d, cfg.tile, cfg.tile, matrix.WithNaNInfGuard())
		if err != nil {
			return err
		}
		return runBlock(cfg.op, b, w)
	case layoutSparse:
		s, err := sparse.FromDense(d)
		if err != nil {
			return err
		}
		return runSparse(cfg.op, s, w)
	default:
		return fmt.Errorf("matcalc: unknown layout %q", cfg.layout)
	}
}

// writeScalar prints a single result value on its own line.
func writeScalar(w io.Writer, v any, err error) error {
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, v)

	return err
}

func runDense[T matrix.Number](op string, d *matrix.Dense[T], w io.Writer) error {
	var (
		out *matrix.Dense[T]
		err error
	)
	switch op {
	case opDet:
		v, err := d.Determinant()
		return writeScalar(w, v, err)
	case opNorm:
		return writeScalar(w, d.FrobeniusNorm(), nil)
	case opInv:
		out, err = d.Inverse()
	case opTranspose:
		out, err = matrix.Transpose(d)
	case opAdj:
		out, err = d.Adjugate()
	case opCofactor:
		out, err = d.Cofactor()
	default:
		return fmt.Errorf("%q: %w", op, errUnsupported)
	}
	if err != nil {
		return err
	}

	return out.WriteText(w)
}

func runBlock[T matrix.Number](op string, b *block.Block[T], w io.Writer) error {
	var (
		out *block.Block[T]
		err error
	)
	switch op {
	case opDet:
		v, err := b.Determinant()
		return writeScalar(w, v, err)
	case opNorm:
		return writeScalar(w, b.FrobeniusNorm(), nil)
	case opInv:
		out, err = b.Inverse()
	case opTranspose:
		out, err = block.Transpose(b)
	case opAdj:
		out, err = b.Adjugate()
	case opCofactor:
		out, err = b.Cofactor()
	default:
		return fmt.Errorf("%q: %w", op, errUnsupported)
	}
	if err != nil {
		return err
	}

	return out.WriteText(w)
}

func runSparse[T matrix.Number](op string, s *sparse.Sparse[T], w io.Writer) error {
	var (
		out *sparse.Sparse[T]
		err error
	)
	switch op {
	case opDet:
		v, err := s.Determinant()
		return writeScalar(w, v, err)
	case opTrace:
		v, err := s.Trace()
		return writeScalar(w, v, err)
	case opInv:
		out, err = s.Inverse()
	case opTranspose:
		out, err = sparse.Transpose(s)
	case opAdj:
		out, err = s.Adjugate()
	case opCofactor:
		out, err = s.Cofactor()
	default:
		return fmt.Errorf("%q: %w", op, errUnsupported)
	}
	if err != nil {
		return err
	}

	return out.WriteText(w)
}
