// SPDX-License-Identifier: MIT

// Package sparse provides a coordinate-list (COO) matrix.
//
// Storage is three parallel slices (row, col, value) kept in canonical
// form: sorted row-major, one entry per coordinate, and no stored zero.
// Every mutator restores that form, which lets Add/Sub run as a single
// merge walk and makes Equal a slice comparison.
//
// Expansion kernels (Determinant, Cofactor, Adjugate, Inverse) use Laplace
// expansion along row 0 and skip unstored entries, so their cost shrinks
// with the number of non-zeros in each expanded row but stays O(n!) in the
// worst case.
//
// Errors are the matrix sentinels wrapped as "sparse.Op: ..." and matched
// with errors.Is.
package sparse
