// SPDX-License-Identifier: MIT

// Command matcalc reads a matrix as text, applies one operation and prints
// the result in the library's whitespace text format.
//
// Input: "rows cols" followed by rows*cols values, any whitespace.
//
//	matcalc -op det -in m.txt
//	echo "2 2  4 7 2 6" | matcalc -op inv -float
//	matcalc -op adj -layout block -tile 2 -in m.txt -watch
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"github.com/katalvlaran/linalg/matrix"
)

func main() {
	op := flag.String("op", opDet, "operation: det, inv, transpose, adj, cofactor, norm (dense, block), trace (sparse)")
	in := flag.String("in", "-", "input file, - for stdin")
	layout := flag.String("layout", layoutDense, "storage layout: dense, block or sparse")
	tile := flag.Int("tile", matrix.MinSize, "square tile extent for -layout block")
	float := flag.Bool("float", false, "parse elements as float64 instead of int")
	watchIn := flag.Bool("watch", false, "re-run whenever -in changes (requires a file)")
	verbose := flag.Bool("v", false, "debug logging on stderr")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	if *verbose {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		matrix.SetLogger(logger)
	}

	cfg := config{op: *op, layout: *layout, tile: *tile, float: *float}
	once := func() error {
		var r io.Reader = os.Stdin
		if *in != "-" {
			f, err := os.Open(*in)
			if err != nil {
				return err
			}
			defer f.Close()
			r = f
		}
		return run(cfg, r, os.Stdout)
	}

	if !*watchIn {
		if err := once(); err != nil {
			log.Fatalf("matcalc: %v", err)
		}
		return
	}
	if *in == "-" {
		log.Fatalf("matcalc: -watch requires -in <file>")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := watch(ctx, *in, once, logger); err != nil {
		log.Fatalf("matcalc: watch %s: %v", *in, err)
	}
}
