// SPDX-License-Identifier: MIT
// Package linalg: 4x4 matrix.
// Mat4 is the conversion hub for matrices: every MatN widens to Mat4 by
// embedding itself top-left over the identity, and every narrowing takes
// the top-left block of a Mat4.

package linalg

import (
	"strings"

	"github.com/katalvlaran/lmath/scalar"
)

// Mat4 is a 4x4 matrix stored as four columns: m[col][row].
type Mat4[T scalar.Number] [4]Vec4[T]

// NewMat4 builds a matrix from its sixteen entries given row by row
// (mRC is row R, column C) and stores them column-major.
func NewMat4[T scalar.Number](
	m00, m01, m02, m03,
	m10, m11, m12, m13,
	m20, m21, m22, m23,
	m30, m31, m32, m33 T,
) Mat4[T] {
	return Mat4[T]{
		{m00, m10, m20, m30},
		{m01, m11, m21, m31},
		{m02, m12, m22, m32},
		{m03, m13, m23, m33},
	}
}

// Mat4FromCols builds a matrix from four columns.
func Mat4FromCols[T scalar.Number](c0, c1, c2, c3 Vec4[T]) Mat4[T] {
	return Mat4[T]{c0, c1, c2, c3}
}

// Diag4 places s on the main diagonal; every other entry is zero.
func Diag4[T scalar.Number](s T) Mat4[T] {
	var m Mat4[T]
	for i := range m {
		m[i][i] = s
	}
	return m
}

// Identity4 returns the 4x4 identity.
func Identity4[T scalar.Number]() Mat4[T] { return Diag4[T](1) }

// Mat1 returns the top-left entry.
func (m Mat4[T]) Mat1() Mat1[T] { return Mat1[T]{m[0].Vec1()} }

// Mat2 returns the top-left 2x2 block.
func (m Mat4[T]) Mat2() Mat2[T] { return Mat2[T]{m[0].Vec2(), m[1].Vec2()} }

// Mat3 returns the top-left 3x3 block.
func (m Mat4[T]) Mat3() Mat3[T] { return Mat3[T]{m[0].Vec3(), m[1].Vec3(), m[2].Vec3()} }

// Mat4 returns m unchanged.
func (m Mat4[T]) Mat4() Mat4[T] { return m }

// Col returns column j, or ErrOutOfRange unless 0 <= j < 4.
func (m Mat4[T]) Col(j int) (Vec4[T], error) {
	if err := checkIndex(j, len(m)); err != nil {
		return Vec4[T]{}, linalgErrorf("Mat4", opCol, err, j)
	}
	return m[j], nil
}

// Row returns row i, or ErrOutOfRange unless 0 <= i < 4.
func (m Mat4[T]) Row(i int) (Vec4[T], error) {
	if err := checkIndex(i, len(m)); err != nil {
		return Vec4[T]{}, linalgErrorf("Mat4", opRow, err, i)
	}
	return m.row(i), nil
}

func (m Mat4[T]) row(i int) Vec4[T] { return Vec4[T]{m[0][i], m[1][i], m[2][i], m[3][i]} }

// At returns the entry at (row, col).
func (m Mat4[T]) At(row, col int) (T, error) {
	if err := checkCell(row, col, len(m)); err != nil {
		var zero T
		return zero, linalgErrorf("Mat4", opAt, err, row, col)
	}
	return m[col][row], nil
}

// Set assigns the entry at (row, col).
func (m *Mat4[T]) Set(row, col int, v T) error {
	if err := checkCell(row, col, len(m)); err != nil {
		return linalgErrorf("Mat4", opSet, err, row, col)
	}
	m[col][row] = v
	return nil
}

// MulVec returns the matrix-vector product m·v.
//
// Implementation:
//   - The result is the linear combination Σ_k m[k]*v[k] of the columns,
//     accumulated column by column.
//
// Complexity:
//   - Time O(16), no allocation.
func (m Mat4[T]) MulVec(v Vec4[T]) Vec4[T] {
	var out Vec4[T]
	for k := range m {
		for i := range out {
			out[i] += m[k][i] * v[k]
		}
	}
	return out
}

// Mul returns the matrix product m·o.
//
// Implementation:
//   - Column j of the result is m·o[j], i.e. Σ_k m[k]*o[j][k].
//
// Behavior highlights:
//   - Not commutative; m.Mul(o) applies o first when used on column vectors.
//   - Identity4 is a two-sided neutral element.
//
// Complexity:
//   - Time O(64), no allocation.
func (m Mat4[T]) Mul(o Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for j := range o {
		out[j] = m.MulVec(o[j])
	}
	return out
}

// Add returns m + o entry-wise.
func (m Mat4[T]) Add(o Mat4[T]) Mat4[T] {
	for c := range m {
		m[c] = m[c].Add(o[c])
	}
	return m
}

// Sub returns m - o entry-wise.
func (m Mat4[T]) Sub(o Mat4[T]) Mat4[T] {
	for c := range m {
		m[c] = m[c].Sub(o[c])
	}
	return m
}

// AddScalar adds s to every entry.
func (m Mat4[T]) AddScalar(s T) Mat4[T] {
	for c := range m {
		m[c] = m[c].AddScalar(s)
	}
	return m
}

// SubScalar subtracts s from every entry.
func (m Mat4[T]) SubScalar(s T) Mat4[T] {
	for c := range m {
		m[c] = m[c].SubScalar(s)
	}
	return m
}

// MulScalar multiplies every entry by s.
func (m Mat4[T]) MulScalar(s T) Mat4[T] {
	for c := range m {
		m[c] = m[c].MulScalar(s)
	}
	return m
}

// DivScalar divides every entry by s.
func (m Mat4[T]) DivScalar(s T) Mat4[T] {
	for c := range m {
		m[c] = m[c].DivScalar(s)
	}
	return m
}

// AddAssign sets m to m + o and returns m.
func (m *Mat4[T]) AddAssign(o Mat4[T]) *Mat4[T] { *m = m.Add(o); return m }

// SubAssign sets m to m - o and returns m.
func (m *Mat4[T]) SubAssign(o Mat4[T]) *Mat4[T] { *m = m.Sub(o); return m }

// MulAssign sets m = m·o.
func (m *Mat4[T]) MulAssign(o Mat4[T]) *Mat4[T] { *m = m.Mul(o); return m }

// Neg negates every entry.
func (m Mat4[T]) Neg() Mat4[T] {
	for c := range m {
		m[c] = m[c].Neg()
	}
	return m
}

// Pos returns m unchanged (unary plus).
func (m Mat4[T]) Pos() Mat4[T] { return m }

// Inc adds 1 to every entry and returns m.
func (m *Mat4[T]) Inc() *Mat4[T] {
	for c := range m {
		m[c].Inc()
	}
	return m
}

// Dec subtracts 1 from every entry and returns m.
func (m *Mat4[T]) Dec() *Mat4[T] {
	for c := range m {
		m[c].Dec()
	}
	return m
}

// PostInc increments m and returns its previous value.
func (m *Mat4[T]) PostInc() Mat4[T] { old := *m; m.Inc(); return old }

// PostDec decrements m and returns its previous value.
func (m *Mat4[T]) PostDec() Mat4[T] { old := *m; m.Dec(); return old }

// Equal reports exact equality of all sixteen entries.
func (m Mat4[T]) Equal(o Mat4[T]) bool { return m == o }

// Transpose swaps rows and columns.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{m.row(0), m.row(1), m.row(2), m.row(3)}
}

// Trace returns the sum of the diagonal.
func (m Mat4[T]) Trace() T { return m[0][0] + m[1][1] + m[2][2] + m[3][3] }

// laplace4 returns the 2x2 minors of rows 0-1 (s) and rows 2-3 (c) shared
// by Determinant and Inverse4. s[k] and c[5-k] are complementary.
func laplace4[T scalar.Number](m Mat4[T]) (s, c [6]T) {
	s[0] = m[0][0]*m[1][1] - m[0][1]*m[1][0]
	s[1] = m[0][0]*m[2][1] - m[0][1]*m[2][0]
	s[2] = m[0][0]*m[3][1] - m[0][1]*m[3][0]
	s[3] = m[1][0]*m[2][1] - m[1][1]*m[2][0]
	s[4] = m[1][0]*m[3][1] - m[1][1]*m[3][0]
	s[5] = m[2][0]*m[3][1] - m[2][1]*m[3][0]

	c[5] = m[2][2]*m[3][3] - m[2][3]*m[3][2]
	c[4] = m[1][2]*m[3][3] - m[1][3]*m[3][2]
	c[3] = m[1][2]*m[2][3] - m[1][3]*m[2][2]
	c[2] = m[0][2]*m[3][3] - m[0][3]*m[3][2]
	c[1] = m[0][2]*m[2][3] - m[0][3]*m[2][2]
	c[0] = m[0][2]*m[1][3] - m[0][3]*m[1][2]
	return s, c
}

// Determinant returns det(m).
//
// Implementation:
//   - Laplace expansion by complementary minors: the six 2x2 minors of
//     rows 0-1 are paired with the six 2x2 minors of rows 2-3.
//
// Behavior highlights:
//   - Exact for integer types as long as the products do not overflow.
//   - det(A·B) = det(A)·det(B) up to rounding for float types.
//
// Complexity:
//   - Time O(1): 30 multiplications.
func (m Mat4[T]) Determinant() T {
	s, c := laplace4(m)
	return s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]
}

// String renders one line per row with entries separated by two spaces.
func (m Mat4[T]) String() string {
	var sb strings.Builder
	for i := range m {
		if i > 0 {
			sb.WriteByte('\n')
		}
		r := m.row(i)
		sb.WriteString(formatComponents(r[:], "  "))
	}
	return sb.String()
}
