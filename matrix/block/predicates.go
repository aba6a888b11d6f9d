// SPDX-License-Identifier: MIT

package block

import "github.com/katalvlaran/linalg/matrix"

// Equal reports identical logical shape and elements. Tile shapes may
// differ: a 4×4 with 2×2 tiles equals the same 4×4 tiled 3×3.
// Nil Blocks compare equal only to each other.
func Equal[T matrix.Number](a, b *Block[T]) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false
	}
	eq := true
	a.Do(func(i, j int, v T) bool {
		w, _ := b.At(i, j)
		eq = v == w
		return eq
	})

	return eq
}

// Equal is the method form of Equal(b, other).
func (b *Block[T]) Equal(other *Block[T]) bool { return Equal(b, other) }

// IsSquare reports rows == cols.
func (b *Block[T]) IsSquare() bool { return b.rows == b.cols }

// IsSymmetric reports b == bᵀ.
// With square tiles the check runs tile-wise: tile(i,j) must equal the
// transpose of tile(j,i). Otherwise elements are compared directly.
func (b *Block[T]) IsSymmetric() bool {
	if !b.IsSquare() {
		return false
	}
	if b.br == b.bc {
		for i, row := range b.tiles {
			for j := i; j < len(row); j++ {
				tt, _ := matrix.Transpose(b.tiles[j][i])
				if !row[j].Equal(tt) {
					return false
				}
			}
		}
		return true
	}
	sym := true
	b.Do(func(i, j int, v T) bool {
		if j > i {
			w, _ := b.At(j, i)
			sym = v == w
		}
		return sym
	})

	return sym
}

// all reports whether pred holds for every logical element.
func (b *Block[T]) all(pred func(i, j int, v T) bool) bool {
	ok := true
	b.Do(func(i, j int, v T) bool {
		ok = pred(i, j, v)
		return ok
	})

	return ok
}

// IsZero reports that every element is zero.
func (b *Block[T]) IsZero() bool {
	for _, row := range b.tiles {
		for _, t := range row {
			if !t.IsZero() {
				return false
			}
		}
	}

	return true
}

// IsIdentity reports a square Block with 1 on the diagonal and 0 elsewhere.
func (b *Block[T]) IsIdentity() bool {
	return b.IsSquare() && b.all(func(i, j int, v T) bool {
		if i == j {
			return v == 1
		}
		return v == 0
	})
}

// IsDiagonal reports squareness, zero off-diagonal elements and a diagonal
// without zero entries (the same contract as matrix.Dense.IsDiagonal).
func (b *Block[T]) IsDiagonal() bool {
	return b.IsSquare() && b.all(func(i, j int, v T) bool {
		return (i == j) == (v != 0)
	})
}

// IsUpperTriangular reports b[i][j] == 0 for all j < i.
func (b *Block[T]) IsUpperTriangular() bool {
	return b.all(func(i, j int, v T) bool { return j >= i || v == 0 })
}

// IsLowerTriangular reports b[i][j] == 0 for all j > i.
func (b *Block[T]) IsLowerTriangular() bool {
	return b.all(func(i, j int, v T) bool { return j <= i || v == 0 })
}

// IsTriangular reports upper OR lower triangular.
func (b *Block[T]) IsTriangular() bool {
	return b.IsUpperTriangular() || b.IsLowerTriangular()
}

// IsSingular reports squareness and determinant == 0.
func (b *Block[T]) IsSingular() bool {
	det, err := b.Determinant()

	return err == nil && det == 0
}

// IsOrthogonal reports B·Bᵀ == I or Bᵀ·B == I (exact).
func (b *Block[T]) IsOrthogonal() bool {
	if !b.IsSquare() || b.rows == 0 {
		return false
	}
	bt, _ := Transpose(b)
	left, _ := Mul(b, bt)
	if left.IsIdentity() {
		return true
	}
	right, _ := Mul(bt, b)

	return right.IsIdentity()
}

// IsNormal reports B·Bᵀ == Bᵀ·B and B·I == I·B, where each identity is
// tiled to fit its side of the product.
func (b *Block[T]) IsNormal() bool {
	if !b.IsSquare() || b.rows == 0 {
		return false
	}
	bt, _ := Transpose(b)
	left, _ := Mul(b, bt)
	right, _ := Mul(bt, b)
	if !Equal(left, right) {
		return false
	}
	idR := b.like(b.rows, b.rows, b.bc, b.bc)
	idR.setIdentity()
	idL := b.like(b.rows, b.rows, b.br, b.br)
	idL.setIdentity()
	bi, _ := Mul(b, idR)
	ib, _ := Mul(idL, b)

	return Equal(bi, ib)
}
