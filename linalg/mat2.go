package linalg

import (
	"strings"

	"github.com/katalvlaran/lmath/scalar"
)

// Mat2 is a 2x2 matrix stored as two columns: m[col][row].
type Mat2[T scalar.Number] [2]Vec2[T]

// NewMat2 takes the entries row by row:
//
//	| m00 m01 |
//	| m10 m11 |
func NewMat2[T scalar.Number](m00, m01, m10, m11 T) Mat2[T] {
	return Mat2[T]{{m00, m10}, {m01, m11}}
}

// Mat2FromCols builds a matrix from two columns.
func Mat2FromCols[T scalar.Number](c0, c1 Vec2[T]) Mat2[T] { return Mat2[T]{c0, c1} }

// Diag2 places s on the main diagonal.
func Diag2[T scalar.Number](s T) Mat2[T] { return Mat2[T]{{s, 0}, {0, s}} }

// Identity2 returns the 2x2 identity.
func Identity2[T scalar.Number]() Mat2[T] { return Diag2[T](1) }

// Mat1 returns the top-left 1x1 block.
func (m Mat2[T]) Mat1() Mat1[T] { return m.Mat4().Mat1() }

// Mat2 returns m unchanged.
func (m Mat2[T]) Mat2() Mat2[T] { return m }

// Mat3 embeds m top-left in the 3x3 identity.
func (m Mat2[T]) Mat3() Mat3[T] { return m.Mat4().Mat3() }

// Mat4 embeds m top-left in the 4x4 identity.
func (m Mat2[T]) Mat4() Mat4[T] {
	out := Identity4[T]()
	copy(out[0][:], m[0][:])
	copy(out[1][:], m[1][:])
	return out
}

// Col returns column j, or ErrOutOfRange unless 0 <= j < 2.
func (m Mat2[T]) Col(j int) (Vec2[T], error) {
	if err := checkIndex(j, len(m)); err != nil {
		return Vec2[T]{}, linalgErrorf("Mat2", opCol, err, j)
	}
	return m[j], nil
}

// Row returns row i, or ErrOutOfRange unless 0 <= i < 2.
func (m Mat2[T]) Row(i int) (Vec2[T], error) {
	if err := checkIndex(i, len(m)); err != nil {
		return Vec2[T]{}, linalgErrorf("Mat2", opRow, err, i)
	}
	return m.row(i), nil
}

func (m Mat2[T]) row(i int) Vec2[T] { return Vec2[T]{m[0][i], m[1][i]} }

// At returns the entry at (row, col), or ErrOutOfRange.
func (m Mat2[T]) At(row, col int) (T, error) {
	if err := checkCell(row, col, len(m)); err != nil {
		var zero T
		return zero, linalgErrorf("Mat2", opAt, err, row, col)
	}
	return m[col][row], nil
}

// Set assigns the entry at (row, col), or returns ErrOutOfRange.
func (m *Mat2[T]) Set(row, col int, v T) error {
	if err := checkCell(row, col, len(m)); err != nil {
		return linalgErrorf("Mat2", opSet, err, row, col)
	}
	m[col][row] = v
	return nil
}

// MulVec returns m·v.
func (m Mat2[T]) MulVec(v Vec2[T]) Vec2[T] {
	return Vec2[T]{
		m[0][0]*v[0] + m[1][0]*v[1],
		m[0][1]*v[0] + m[1][1]*v[1],
	}
}

// Mul returns m·o.
func (m Mat2[T]) Mul(o Mat2[T]) Mat2[T] { return Mat2[T]{m.MulVec(o[0]), m.MulVec(o[1])} }

// Add returns m + o entry-wise.
func (m Mat2[T]) Add(o Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Add(o[0]), m[1].Add(o[1])} }

// Sub returns m - o entry-wise.
func (m Mat2[T]) Sub(o Mat2[T]) Mat2[T] { return Mat2[T]{m[0].Sub(o[0]), m[1].Sub(o[1])} }

// AddScalar adds s to every entry.
func (m Mat2[T]) AddScalar(s T) Mat2[T] { return Mat2[T]{m[0].AddScalar(s), m[1].AddScalar(s)} }

// SubScalar subtracts s from every entry.
func (m Mat2[T]) SubScalar(s T) Mat2[T] { return Mat2[T]{m[0].SubScalar(s), m[1].SubScalar(s)} }

// MulScalar scales every entry by s.
func (m Mat2[T]) MulScalar(s T) Mat2[T] { return Mat2[T]{m[0].MulScalar(s), m[1].MulScalar(s)} }

// DivScalar divides every entry by s.
func (m Mat2[T]) DivScalar(s T) Mat2[T] { return Mat2[T]{m[0].DivScalar(s), m[1].DivScalar(s)} }

// AddAssign sets m to m + o and returns m.
func (m *Mat2[T]) AddAssign(o Mat2[T]) *Mat2[T] { *m = m.Add(o); return m }

// SubAssign sets m to m - o and returns m.
func (m *Mat2[T]) SubAssign(o Mat2[T]) *Mat2[T] { *m = m.Sub(o); return m }

// MulAssign sets m to m·o and returns m.
func (m *Mat2[T]) MulAssign(o Mat2[T]) *Mat2[T] { *m = m.Mul(o); return m }

// Neg negates every entry.
func (m Mat2[T]) Neg() Mat2[T] { return Mat2[T]{m[0].Neg(), m[1].Neg()} }

// Pos returns m unchanged (unary plus).
func (m Mat2[T]) Pos() Mat2[T] { return m }

// Inc adds 1 to every entry and returns m.
func (m *Mat2[T]) Inc() *Mat2[T] { m[0].Inc(); m[1].Inc(); return m }

// Dec subtracts 1 from every entry and returns m.
func (m *Mat2[T]) Dec() *Mat2[T] { m[0].Dec(); m[1].Dec(); return m }

// PostInc increments m and returns its previous value.
func (m *Mat2[T]) PostInc() Mat2[T] { old := *m; m.Inc(); return old }

// PostDec decrements m and returns its previous value.
func (m *Mat2[T]) PostDec() Mat2[T] { old := *m; m.Dec(); return old }

// Equal reports exact entry equality.
func (m Mat2[T]) Equal(o Mat2[T]) bool { return m == o }

// Transpose returns the transpose of m.
func (m Mat2[T]) Transpose() Mat2[T] { return Mat2[T]{m.row(0), m.row(1)} }

// Trace returns the sum of the diagonal.
func (m Mat2[T]) Trace() T { return m[0][0] + m[1][1] }

// Determinant returns m00*m11 - m01*m10.
func (m Mat2[T]) Determinant() T { return m[0][0]*m[1][1] - m[1][0]*m[0][1] }

// String renders one row per line, entries separated by two spaces.
func (m Mat2[T]) String() string {
	r0, r1 := m.row(0), m.row(1)
	return strings.Join([]string{
		formatComponents(r0[:], "  "),
		formatComponents(r1[:], "  "),
	}, "\n")
}
