package linalg

import "github.com/katalvlaran/lmath/scalar"

// Vec4 is a four-component vector stored contiguously as x, y, z, w.
// r, g, b, a name the same slots for colour data.
//
// Vec4 is the hub of the size conversions: every VecN widens to Vec4
// (zero-filling) and every narrowing keeps the leading components of the
// Vec4, so each size pair follows one rule.
type Vec4[T scalar.Number] [4]T

// NewVec4 builds a vector from its components.
func NewVec4[T scalar.Number](x, y, z, w T) Vec4[T] { return Vec4[T]{x, y, z, w} }

// Splat4 broadcasts s into every component.
func Splat4[T scalar.Number](s T) Vec4[T] { return Vec4[T]{s, s, s, s} }

// Len returns the number of components (4).
func (v Vec4[T]) Len() int { return len(v) }

// X returns the first component.
func (v Vec4[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec4[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec4[T]) Z() T { return v[2] }

// W returns the fourth component.
func (v Vec4[T]) W() T { return v[3] }

// R is X under the color naming.
func (v Vec4[T]) R() T { return v[0] }

// G is Y under the color naming.
func (v Vec4[T]) G() T { return v[1] }

// B is Z under the color naming.
func (v Vec4[T]) B() T { return v[2] }

// A is W under the color naming.
func (v Vec4[T]) A() T { return v[3] }

// SetX assigns the first component.
func (v *Vec4[T]) SetX(x T) { v[0] = x }

// SetY assigns the second component.
func (v *Vec4[T]) SetY(y T) { v[1] = y }

// SetZ assigns the third component.
func (v *Vec4[T]) SetZ(z T) { v[2] = z }

// SetW assigns the fourth component.
func (v *Vec4[T]) SetW(w T) { v[3] = w }

// At returns component i, or ErrOutOfRange unless 0 <= i < 4.
func (v Vec4[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v)); err != nil {
		var zero T
		return zero, linalgErrorf("Vec4", opAt, err, i)
	}
	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange unless 0 <= i < 4.
func (v *Vec4[T]) Set(i int, val T) error {
	if err := checkIndex(i, len(v)); err != nil {
		return linalgErrorf("Vec4", opSet, err, i)
	}
	v[i] = val
	return nil
}

// Vec1 keeps the first component.
func (v Vec4[T]) Vec1() Vec1[T] { return Vec1[T]{v[0]} }

// Vec2 keeps the leading two components.
func (v Vec4[T]) Vec2() Vec2[T] { return Vec2[T]{v[0], v[1]} }

// Vec3 keeps the leading three components.
func (v Vec4[T]) Vec3() Vec3[T] { return Vec3[T]{v[0], v[1], v[2]} }

// Vec4 returns v unchanged.
func (v Vec4[T]) Vec4() Vec4[T] { return v }

// Add returns v + o component-wise.
func (v Vec4[T]) Add(o Vec4[T]) Vec4[T] { addInto(v[:], v[:], o[:]); return v }

// Sub returns v - o component-wise.
func (v Vec4[T]) Sub(o Vec4[T]) Vec4[T] { subInto(v[:], v[:], o[:]); return v }

// Mul is the component-wise product.
func (v Vec4[T]) Mul(o Vec4[T]) Vec4[T] { mulInto(v[:], v[:], o[:]); return v }

// Div returns v / o component-wise. Zero float divisors yield ±Inf/NaN.
func (v Vec4[T]) Div(o Vec4[T]) Vec4[T] { divInto(v[:], v[:], o[:]); return v }

// Mod returns the component-wise remainder of v / o.
func (v Vec4[T]) Mod(o Vec4[T]) Vec4[T] { modInto(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec4[T]) AddScalar(s T) Vec4[T] { addScalarInto(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec4[T]) SubScalar(s T) Vec4[T] { subScalarInto(v[:], v[:], s); return v }

// MulScalar scales every component by s.
func (v Vec4[T]) MulScalar(s T) Vec4[T] { mulScalarInto(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec4[T]) DivScalar(s T) Vec4[T] { divScalarInto(v[:], v[:], s); return v }

// ModScalar reduces every component modulo s.
func (v Vec4[T]) ModScalar(s T) Vec4[T] { modScalarInto(v[:], v[:], s); return v }

// SubFrom returns s - v.
func (v Vec4[T]) SubFrom(s T) Vec4[T] { subFromInto(v[:], v[:], s); return v }

// DivFrom returns s / v.
func (v Vec4[T]) DivFrom(s T) Vec4[T] { divFromInto(v[:], v[:], s); return v }

// ModFrom returns s mod v.
func (v Vec4[T]) ModFrom(s T) Vec4[T] { modFromInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec4[T]) Neg() Vec4[T] { negInto(v[:], v[:]); return v }

// Pos returns v unchanged (unary plus).
func (v Vec4[T]) Pos() Vec4[T] { return v }

// AddAssign sets v to v + o and returns v.
func (v *Vec4[T]) AddAssign(o Vec4[T]) *Vec4[T] { addInto(v[:], v[:], o[:]); return v }

// SubAssign sets v to v - o and returns v.
func (v *Vec4[T]) SubAssign(o Vec4[T]) *Vec4[T] { subInto(v[:], v[:], o[:]); return v }

// MulAssign multiplies v by o component-wise in place.
func (v *Vec4[T]) MulAssign(o Vec4[T]) *Vec4[T] { mulInto(v[:], v[:], o[:]); return v }

// DivAssign divides v by o component-wise in place.
func (v *Vec4[T]) DivAssign(o Vec4[T]) *Vec4[T] { divInto(v[:], v[:], o[:]); return v }

// ScaleAssign multiplies every component by s in place.
func (v *Vec4[T]) ScaleAssign(s T) *Vec4[T] { mulScalarInto(v[:], v[:], s); return v }

// Inc adds 1 to every component and returns v.
func (v *Vec4[T]) Inc() *Vec4[T] { addScalarInto(v[:], v[:], 1); return v }

// Dec subtracts 1 from every component and returns v.
func (v *Vec4[T]) Dec() *Vec4[T] { subScalarInto(v[:], v[:], 1); return v }

// PostInc increments v and returns its previous value.
func (v *Vec4[T]) PostInc() Vec4[T] { old := *v; v.Inc(); return old }

// PostDec decrements v and returns its previous value.
func (v *Vec4[T]) PostDec() Vec4[T] { old := *v; v.Dec(); return old }

// Equal reports exact component equality.
func (v Vec4[T]) Equal(o Vec4[T]) bool { return equal(v[:], o[:]) }

// EqualScalar reports whether every component equals s.
func (v Vec4[T]) EqualScalar(s T) bool { return equalScalar(v[:], s) }

// Dot returns the dot product of v and o.
func (v Vec4[T]) Dot(o Vec4[T]) T { return dot(v[:], o[:]) }

// SqrMagnitude returns the sum of squared components.
func (v Vec4[T]) SqrMagnitude() T { return dot(v[:], v[:]) }

// Magnitude returns sqrt(x² + y² + z² + w²).
func (v Vec4[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Distance returns |v - o|.
func (v Vec4[T]) Distance(o Vec4[T]) T { return v.Sub(o).Magnitude() }

// Normalized returns v/|v|, or the zero vector when |v| <= scalar.Epsilon[T].
func (v Vec4[T]) Normalized() Vec4[T] { normalizedInto(v[:], v[:]); return v }

// Normalize is the in-place form of Normalized.
func (v *Vec4[T]) Normalize() *Vec4[T] { normalizedInto(v[:], v[:]); return v }

// String renders "x y z w".
func (v Vec4[T]) String() string { return formatComponents(v[:], " ") }
