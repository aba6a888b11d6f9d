// SPDX-License-Identifier: MIT

// Package block provides a tiled matrix: a logical rows×cols matrix stored
// as a grid of equally shaped matrix.Dense tiles.
//
// Layout:
//   - Tile shape br×bc (each ≥ matrix.MinSize) is fixed per Block.
//   - The grid is ceil(rows/br) × ceil(cols/bc); edge tiles keep the full
//     br×bc extent and the cells past the logical bounds are padding.
//   - Padding cells are always zero. Every operation maintains this, so
//     tile-level kernels (matrix.Add, matrix.Mul, matrix.Transpose) can run
//     on whole tiles without masking.
//
// Logical access (At, Set, text I/O, predicates) never touches padding;
// a padding coordinate is reported as matrix.ErrOutOfRange.
//
// Errors are the matrix sentinels (ErrDimensionMismatch, ErrNotSquare,
// ErrSingular, ...) wrapped as "block.Op: ..." and matched with errors.Is.
package block
