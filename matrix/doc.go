// Package matrix offers a generic dense matrix engine and the shared
// vocabulary (element constraint, sentinels, validators, text codec) of the
// block and sparse storage layouts.
//
// The matrix package provides:
//
//   - Dense[T]: row-major storage with bounds-checked At/Set.
//   - Arithmetic in pairs: pure Add/Sub/Mul/Scale/Transpose and receiver
//     twins AddInPlace/SubInPlace/MulInPlace/ScaleInPlace/TransposeInPlace.
//   - Exact structural predicates (IsSymmetric, IsOrthogonal, IsNormal, ...).
//   - Determinant, Cofactor, Adjugate and Inverse by cofactor expansion.
//     This is O(n!) by construction; use small matrices.
//   - A whitespace text format (WriteText/ReadText) for round-trips.
//
// Sub-packages block and sparse implement the same surface over a grid of
// Dense tiles and over sorted coordinate triples.
//
// No type in this package is safe for concurrent mutation.
package matrix
