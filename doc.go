// Package linalg is a small generic linear-algebra toolkit: dense, tiled
// and sparse matrices over any integer or floating-point element type.
//
// 🚀 What is in the box?
//
//   - matrix: Dense[T] with arithmetic, predicates, determinant, cofactor,
//     adjugate, inverse and text I/O
//   - matrix/block: Block[T], a grid of Dense tiles with the same API
//   - matrix/sparse: Sparse[T], sorted coordinate list (COO) storage
//   - cmd/matcalc: read a matrix as text, apply one operation, print it
//
// ✨ Why choose linalg?
//
//   - One element constraint (matrix.Number) shared by every layout
//   - Sentinel errors matched with errors.Is (ErrNotSquare, ErrSingular…)
//   - Exact arithmetic for integer T: inverses of unimodular matrices stay
//     integral, no float round-trip
//   - Textbook algorithms: determinants by cofactor expansion, O(n!), so
//     results are easy to follow and reproduce for small n
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{4, 7}, {2, 6}})
//	inv, _ := a.Inverse()
//	fmt.Print(inv) // [0.6, -0.7]
//	               // [-0.2, 0.4]
//
// Install:
//
//	go get github.com/katalvlaran/linalg/matrix
package linalg
