// SPDX-License-Identifier: MIT

package matrix

// Structural predicates. All are read-only, exact (no epsilon) and never
// fail: a predicate that needs a square matrix reports false otherwise.

// IsSquare reports Rows() == Cols().
func (m *Dense[T]) IsSquare() bool { return m.r == m.c }

// IsSymmetric reports squareness and a[i][j] == a[j][i] for all i<j.
func (m *Dense[T]) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	n := m.r
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if m.data[i*n+j] != m.data[j*n+i] {
				return false
			}
		}
	}

	return true
}

// IsZero reports whether every element is zero.
func (m *Dense[T]) IsZero() bool {
	for _, v := range m.data {
		if v != 0 {
			return false
		}
	}

	return true
}

// IsIdentity reports squareness, ones on the diagonal and zeros elsewhere.
func (m *Dense[T]) IsIdentity() bool {
	if !m.IsSquare() {
		return false
	}
	n := m.r
	var want T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want = 0
			if i == j {
				want = 1
			}
			if m.data[i*n+j] != want {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports squareness, zero off-diagonal entries and a diagonal
// with no zero entry. A zero diagonal cell disqualifies the matrix, so the
// zero matrix is not diagonal under this predicate.
func (m *Dense[T]) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	n := m.r
	var v T
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v = m.data[i*n+j]
			if i == j && v == 0 {
				return false
			}
			if i != j && v != 0 {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports a[i][j] == 0 for all j < i.
// Rectangular inputs are checked over their full extent (trapezoidal form).
func (m *Dense[T]) IsUpperTriangular() bool {
	for i := 0; i < m.r; i++ {
		for j := 0; j < i && j < m.c; j++ {
			if m.data[i*m.c+j] != 0 {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports a[i][j] == 0 for all j > i.
func (m *Dense[T]) IsLowerTriangular() bool {
	for i := 0; i < m.r; i++ {
		for j := i + 1; j < m.c; j++ {
			if m.data[i*m.c+j] != 0 {
				return false
			}
		}
	}

	return true
}

// IsTriangular reports upper OR lower triangular.
func (m *Dense[T]) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsSingular reports squareness and determinant == 0.
// Cost is that of Determinant: O(n!).
func (m *Dense[T]) IsSingular() bool {
	if !m.IsSquare() || m.r == 0 {
		return false
	}
	det, err := m.Determinant()

	return err == nil && det == 0
}

// IsOrthogonal reports squareness and M·Mᵀ == I or Mᵀ·M == I (exact).
func (m *Dense[T]) IsOrthogonal() bool {
	if !m.IsSquare() || m.r == 0 {
		return false
	}
	mt, _ := Transpose(m)
	left, _ := Mul(m, mt)
	if left.IsIdentity() {
		return true
	}
	right, _ := Mul(mt, m)

	return right.IsIdentity()
}

// IsNormal reports squareness, M·Mᵀ == Mᵀ·M, and M·I == I·M.
// The identity commutation always holds; it is kept as part of the
// predicate contract shared with block.Block.
func (m *Dense[T]) IsNormal() bool {
	if !m.IsSquare() || m.r == 0 {
		return false
	}
	mt, _ := Transpose(m)
	left, _ := Mul(m, mt)
	right, _ := Mul(mt, m)
	if !Equal(left, right) {
		return false
	}
	id := identity[T](m.r, m.opts)
	mi, _ := Mul(m, id)
	im, _ := Mul(id, m)

	return Equal(mi, im)
}
