package linalg

import "github.com/katalvlaran/lmath/scalar"

// Mat1 is a 1x1 matrix. It exists so that size conversions and generic
// callers have a complete family from 1 to 4.
type Mat1[T scalar.Number] [1]Vec1[T]

// NewMat1 builds a matrix from its entries given in row-major order.
func NewMat1[T scalar.Number](m00 T) Mat1[T] { return Mat1[T]{{m00}} }

// Mat1FromCols builds a matrix from its columns.
func Mat1FromCols[T scalar.Number](c0 Vec1[T]) Mat1[T] { return Mat1[T]{c0} }

// Diag1 returns s on the diagonal and 0 elsewhere.
func Diag1[T scalar.Number](s T) Mat1[T] { return Mat1[T]{{s}} }

// Identity1 returns the 1x1 identity.
func Identity1[T scalar.Number]() Mat1[T] { return Mat1[T]{{1}} }

// Mat1 returns m unchanged.
func (m Mat1[T]) Mat1() Mat1[T] { return m }

// Mat2 embeds m top-left in the 2x2 identity.
func (m Mat1[T]) Mat2() Mat2[T] { return m.Mat4().Mat2() }

// Mat3 embeds m top-left in the 3x3 identity.
func (m Mat1[T]) Mat3() Mat3[T] { return m.Mat4().Mat3() }

// Mat4 embeds m top-left in the 4x4 identity.
func (m Mat1[T]) Mat4() Mat4[T] {
	out := Identity4[T]()
	out[0][0] = m[0][0]
	return out
}

// Col returns column j, or ErrOutOfRange.
func (m Mat1[T]) Col(j int) (Vec1[T], error) {
	if err := checkIndex(j, len(m)); err != nil {
		return Vec1[T]{}, linalgErrorf("Mat1", opCol, err, j)
	}
	return m[j], nil
}

// Row returns row i, or ErrOutOfRange.
func (m Mat1[T]) Row(i int) (Vec1[T], error) {
	if err := checkIndex(i, len(m)); err != nil {
		return Vec1[T]{}, linalgErrorf("Mat1", opRow, err, i)
	}
	return m[0], nil
}

// At returns the entry at (row, col), or ErrOutOfRange.
func (m Mat1[T]) At(row, col int) (T, error) {
	if err := checkCell(row, col, len(m)); err != nil {
		var zero T
		return zero, linalgErrorf("Mat1", opAt, err, row, col)
	}
	return m[0][0], nil
}

// Set assigns the entry at (row, col), or returns ErrOutOfRange.
func (m *Mat1[T]) Set(row, col int, v T) error {
	if err := checkCell(row, col, len(m)); err != nil {
		return linalgErrorf("Mat1", opSet, err, row, col)
	}
	m[0][0] = v
	return nil
}

// MulVec returns the matrix-vector product m·v.
func (m Mat1[T]) MulVec(v Vec1[T]) Vec1[T] { return Vec1[T]{m[0][0] * v[0]} }

// Mul returns the matrix product m·o.
func (m Mat1[T]) Mul(o Mat1[T]) Mat1[T] { return Mat1[T]{m.MulVec(o[0])} }

// Add returns m + o entry-wise.
func (m Mat1[T]) Add(o Mat1[T]) Mat1[T] { return Mat1[T]{m[0].Add(o[0])} }

// Sub returns m - o entry-wise.
func (m Mat1[T]) Sub(o Mat1[T]) Mat1[T] { return Mat1[T]{m[0].Sub(o[0])} }

// AddScalar adds s to every entry.
func (m Mat1[T]) AddScalar(s T) Mat1[T] { return Mat1[T]{m[0].AddScalar(s)} }

// SubScalar subtracts s from every entry.
func (m Mat1[T]) SubScalar(s T) Mat1[T] { return Mat1[T]{m[0].SubScalar(s)} }

// MulScalar scales every entry by s.
func (m Mat1[T]) MulScalar(s T) Mat1[T] { return Mat1[T]{m[0].MulScalar(s)} }

// DivScalar divides every entry by s.
func (m Mat1[T]) DivScalar(s T) Mat1[T] { return Mat1[T]{m[0].DivScalar(s)} }

// AddAssign sets m to m + o and returns m.
func (m *Mat1[T]) AddAssign(o Mat1[T]) *Mat1[T] { *m = m.Add(o); return m }

// SubAssign sets m to m - o and returns m.
func (m *Mat1[T]) SubAssign(o Mat1[T]) *Mat1[T] { *m = m.Sub(o); return m }

// MulAssign sets m to m·o and returns m.
func (m *Mat1[T]) MulAssign(o Mat1[T]) *Mat1[T] { *m = m.Mul(o); return m }

// Neg negates every entry.
func (m Mat1[T]) Neg() Mat1[T] { return Mat1[T]{m[0].Neg()} }

// Pos returns m unchanged (unary plus).
func (m Mat1[T]) Pos() Mat1[T] { return m }

// Inc adds 1 to every entry and returns m.
func (m *Mat1[T]) Inc() *Mat1[T] { m[0].Inc(); return m }

// Dec subtracts 1 from every entry and returns m.
func (m *Mat1[T]) Dec() *Mat1[T] { m[0].Dec(); return m }

// PostInc increments m and returns its previous value.
func (m *Mat1[T]) PostInc() Mat1[T] { old := *m; m.Inc(); return old }

// PostDec decrements m and returns its previous value.
func (m *Mat1[T]) PostDec() Mat1[T] { old := *m; m.Dec(); return old }

// Equal reports exact entry equality.
func (m Mat1[T]) Equal(o Mat1[T]) bool { return m == o }

// Transpose returns the transpose of m.
func (m Mat1[T]) Transpose() Mat1[T] { return m }

// Trace returns the sum of the diagonal.
func (m Mat1[T]) Trace() T { return m[0][0] }

// Determinant returns det(m).
func (m Mat1[T]) Determinant() T { return m[0][0] }

// String renders one row per line, entries separated by two spaces.
func (m Mat1[T]) String() string { return m[0].String() }
