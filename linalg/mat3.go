package linalg

import (
	"strings"

	"github.com/katalvlaran/lmath/scalar"
)

// Mat3 is a 3x3 matrix stored as three columns: m[col][row].
type Mat3[T scalar.Number] [3]Vec3[T]

// NewMat3 takes the nine entries row by row (mRC is row R, column C).
func NewMat3[T scalar.Number](
	m00, m01, m02,
	m10, m11, m12,
	m20, m21, m22 T,
) Mat3[T] {
	return Mat3[T]{
		{m00, m10, m20},
		{m01, m11, m21},
		{m02, m12, m22},
	}
}

// Mat3FromCols builds a matrix from three columns.
func Mat3FromCols[T scalar.Number](c0, c1, c2 Vec3[T]) Mat3[T] {
	return Mat3[T]{c0, c1, c2}
}

// Diag3 places s on the main diagonal.
func Diag3[T scalar.Number](s T) Mat3[T] {
	var m Mat3[T]
	for i := range m {
		m[i][i] = s
	}
	return m
}

// Identity3 returns the 3x3 identity.
func Identity3[T scalar.Number]() Mat3[T] { return Diag3[T](1) }

// Mat1 returns the top-left 1x1 block.
func (m Mat3[T]) Mat1() Mat1[T] { return m.Mat4().Mat1() }

// Mat2 returns the top-left 2x2 block.
func (m Mat3[T]) Mat2() Mat2[T] { return m.Mat4().Mat2() }

// Mat3 returns m unchanged.
func (m Mat3[T]) Mat3() Mat3[T] { return m }

// Mat4 embeds m top-left in the 4x4 identity.
func (m Mat3[T]) Mat4() Mat4[T] {
	out := Identity4[T]()
	for c := range m {
		copy(out[c][:], m[c][:])
	}
	return out
}

// Col returns column j, or ErrOutOfRange unless 0 <= j < 3.
func (m Mat3[T]) Col(j int) (Vec3[T], error) {
	if err := checkIndex(j, len(m)); err != nil {
		return Vec3[T]{}, linalgErrorf("Mat3", opCol, err, j)
	}
	return m[j], nil
}

// Row returns row i, or ErrOutOfRange unless 0 <= i < 3.
func (m Mat3[T]) Row(i int) (Vec3[T], error) {
	if err := checkIndex(i, len(m)); err != nil {
		return Vec3[T]{}, linalgErrorf("Mat3", opRow, err, i)
	}
	return m.row(i), nil
}

func (m Mat3[T]) row(i int) Vec3[T] { return Vec3[T]{m[0][i], m[1][i], m[2][i]} }

// At returns the entry at (row, col).
func (m Mat3[T]) At(row, col int) (T, error) {
	if err := checkCell(row, col, len(m)); err != nil {
		var zero T
		return zero, linalgErrorf("Mat3", opAt, err, row, col)
	}
	return m[col][row], nil
}

// Set assigns the entry at (row, col).
func (m *Mat3[T]) Set(row, col int, v T) error {
	if err := checkCell(row, col, len(m)); err != nil {
		return linalgErrorf("Mat3", opSet, err, row, col)
	}
	m[col][row] = v
	return nil
}

// MulVec returns m·v as the column combination Σ_k m[k]*v[k].
func (m Mat3[T]) MulVec(v Vec3[T]) Vec3[T] {
	var out Vec3[T]
	for k := range m {
		for i := range out {
			out[i] += m[k][i] * v[k]
		}
	}
	return out
}

// Mul returns m·o; column j of the result is m·o[j].
func (m Mat3[T]) Mul(o Mat3[T]) Mat3[T] {
	var out Mat3[T]
	for j := range o {
		out[j] = m.MulVec(o[j])
	}
	return out
}

// Add returns m + o entry-wise.
func (m Mat3[T]) Add(o Mat3[T]) Mat3[T] {
	for c := range m {
		m[c] = m[c].Add(o[c])
	}
	return m
}

// Sub returns m - o entry-wise.
func (m Mat3[T]) Sub(o Mat3[T]) Mat3[T] {
	for c := range m {
		m[c] = m[c].Sub(o[c])
	}
	return m
}

// AddScalar adds s to every entry.
func (m Mat3[T]) AddScalar(s T) Mat3[T] {
	for c := range m {
		m[c] = m[c].AddScalar(s)
	}
	return m
}

// SubScalar subtracts s from every entry.
func (m Mat3[T]) SubScalar(s T) Mat3[T] {
	for c := range m {
		m[c] = m[c].SubScalar(s)
	}
	return m
}

// MulScalar scales every entry by s.
func (m Mat3[T]) MulScalar(s T) Mat3[T] {
	for c := range m {
		m[c] = m[c].MulScalar(s)
	}
	return m
}

// DivScalar divides every entry by s.
func (m Mat3[T]) DivScalar(s T) Mat3[T] {
	for c := range m {
		m[c] = m[c].DivScalar(s)
	}
	return m
}

// AddAssign sets m to m + o and returns m.
func (m *Mat3[T]) AddAssign(o Mat3[T]) *Mat3[T] { *m = m.Add(o); return m }

// SubAssign sets m to m - o and returns m.
func (m *Mat3[T]) SubAssign(o Mat3[T]) *Mat3[T] { *m = m.Sub(o); return m }

// MulAssign sets m to m·o and returns m.
func (m *Mat3[T]) MulAssign(o Mat3[T]) *Mat3[T] { *m = m.Mul(o); return m }

// Neg negates every entry.
func (m Mat3[T]) Neg() Mat3[T] {
	for c := range m {
		m[c] = m[c].Neg()
	}
	return m
}

// Pos returns m unchanged (unary plus).
func (m Mat3[T]) Pos() Mat3[T] { return m }

// Inc adds 1 to every entry and returns m.
func (m *Mat3[T]) Inc() *Mat3[T] {
	for c := range m {
		m[c].Inc()
	}
	return m
}

// Dec subtracts 1 from every entry and returns m.
func (m *Mat3[T]) Dec() *Mat3[T] {
	for c := range m {
		m[c].Dec()
	}
	return m
}

// PostInc increments m and returns its previous value.
func (m *Mat3[T]) PostInc() Mat3[T] { old := *m; m.Inc(); return old }

// PostDec decrements m and returns its previous value.
func (m *Mat3[T]) PostDec() Mat3[T] { old := *m; m.Dec(); return old }

// Equal reports exact entry equality.
func (m Mat3[T]) Equal(o Mat3[T]) bool { return m == o }

// Transpose returns the transpose of m.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{m.row(0), m.row(1), m.row(2)}
}

// Trace returns the sum of the diagonal.
func (m Mat3[T]) Trace() T { return m[0][0] + m[1][1] + m[2][2] }

// adjugate3 returns the transposed cofactor matrix of m: entry (r, c) of
// the result is the signed minor of entry (c, r) of m.
func adjugate3[T scalar.Number](m Mat3[T]) Mat3[T] {
	return Mat3[T]{
		{
			m[1][1]*m[2][2] - m[2][1]*m[1][2],
			m[2][1]*m[0][2] - m[0][1]*m[2][2],
			m[0][1]*m[1][2] - m[1][1]*m[0][2],
		},
		{
			m[2][0]*m[1][2] - m[1][0]*m[2][2],
			m[0][0]*m[2][2] - m[2][0]*m[0][2],
			m[1][0]*m[0][2] - m[0][0]*m[1][2],
		},
		{
			m[1][0]*m[2][1] - m[2][0]*m[1][1],
			m[2][0]*m[0][1] - m[0][0]*m[2][1],
			m[0][0]*m[1][1] - m[1][0]*m[0][1],
		},
	}
}

// Determinant returns det(m) by cofactor expansion along the first row.
func (m Mat3[T]) Determinant() T {
	adj := adjugate3(m)
	return m[0][0]*adj[0][0] + m[1][0]*adj[0][1] + m[2][0]*adj[0][2]
}

// String renders one row per line, entries separated by two spaces.
func (m Mat3[T]) String() string {
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
