package linalg

import "github.com/katalvlaran/lmath/scalar"

// Vec2 is a two-component vector stored as x, y (or r, g).
type Vec2[T scalar.Number] [2]T

// NewVec2 builds a vector from its components.
func NewVec2[T scalar.Number](x, y T) Vec2[T] { return Vec2[T]{x, y} }

// Splat2 broadcasts s into both components.
func Splat2[T scalar.Number](s T) Vec2[T] { return Vec2[T]{s, s} }

// Len returns 2.
func (v Vec2[T]) Len() int { return len(v) }

// X returns the first component.
func (v Vec2[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec2[T]) Y() T { return v[1] }

// R is X under the color naming.
func (v Vec2[T]) R() T { return v[0] }

// G is Y under the color naming.
func (v Vec2[T]) G() T { return v[1] }

// SetX assigns the first component.
func (v *Vec2[T]) SetX(x T) { v[0] = x }

// SetY assigns the second component.
func (v *Vec2[T]) SetY(y T) { v[1] = y }

// At returns component i, or ErrOutOfRange unless 0 <= i < 2.
func (v Vec2[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v)); err != nil {
		var zero T
		return zero, linalgErrorf("Vec2", opAt, err, i)
	}
	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange unless 0 <= i < 2.
func (v *Vec2[T]) Set(i int, val T) error {
	if err := checkIndex(i, len(v)); err != nil {
		return linalgErrorf("Vec2", opSet, err, i)
	}
	v[i] = val
	return nil
}

// Extend appends z.
func (v Vec2[T]) Extend(z T) Vec3[T] { return Vec3[T]{v[0], v[1], z} }

// Vec1 keeps the first component.
func (v Vec2[T]) Vec1() Vec1[T] { return v.Vec4().Vec1() }

// Vec2 returns v unchanged.
func (v Vec2[T]) Vec2() Vec2[T] { return v }

// Vec3 widens v, zero-filling the new components.
func (v Vec2[T]) Vec3() Vec3[T] { return v.Vec4().Vec3() }

// Vec4 zero-fills z and w.
func (v Vec2[T]) Vec4() Vec4[T] {
	var out Vec4[T]
	copy(out[:], v[:])
	return out
}

// Add returns v + o.
func (v Vec2[T]) Add(o Vec2[T]) Vec2[T] { addInto(v[:], v[:], o[:]); return v }

// Sub returns v - o.
func (v Vec2[T]) Sub(o Vec2[T]) Vec2[T] { subInto(v[:], v[:], o[:]); return v }

// Mul returns the component-wise product.
func (v Vec2[T]) Mul(o Vec2[T]) Vec2[T] { mulInto(v[:], v[:], o[:]); return v }

// Div returns the component-wise quotient.
func (v Vec2[T]) Div(o Vec2[T]) Vec2[T] { divInto(v[:], v[:], o[:]); return v }

// Mod returns the component-wise remainder.
func (v Vec2[T]) Mod(o Vec2[T]) Vec2[T] { modInto(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec2[T]) AddScalar(s T) Vec2[T] { addScalarInto(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec2[T]) SubScalar(s T) Vec2[T] { subScalarInto(v[:], v[:], s); return v }

// MulScalar scales every component by s.
func (v Vec2[T]) MulScalar(s T) Vec2[T] { mulScalarInto(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec2[T]) DivScalar(s T) Vec2[T] { divScalarInto(v[:], v[:], s); return v }

// ModScalar reduces every component modulo s.
func (v Vec2[T]) ModScalar(s T) Vec2[T] { modScalarInto(v[:], v[:], s); return v }

// SubFrom returns s - v.
func (v Vec2[T]) SubFrom(s T) Vec2[T] { subFromInto(v[:], v[:], s); return v }

// DivFrom returns s / v.
func (v Vec2[T]) DivFrom(s T) Vec2[T] { divFromInto(v[:], v[:], s); return v }

// ModFrom returns s mod v.
func (v Vec2[T]) ModFrom(s T) Vec2[T] { modFromInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec2[T]) Neg() Vec2[T] { negInto(v[:], v[:]); return v }

// Pos returns v unchanged (unary plus).
func (v Vec2[T]) Pos() Vec2[T] { return v }

// AddAssign sets v to v + o and returns v.
func (v *Vec2[T]) AddAssign(o Vec2[T]) *Vec2[T] { addInto(v[:], v[:], o[:]); return v }

// SubAssign sets v to v - o and returns v.
func (v *Vec2[T]) SubAssign(o Vec2[T]) *Vec2[T] { subInto(v[:], v[:], o[:]); return v }

// MulAssign multiplies v by o component-wise in place.
func (v *Vec2[T]) MulAssign(o Vec2[T]) *Vec2[T] { mulInto(v[:], v[:], o[:]); return v }

// DivAssign divides v by o component-wise in place.
func (v *Vec2[T]) DivAssign(o Vec2[T]) *Vec2[T] { divInto(v[:], v[:], o[:]); return v }

// ScaleAssign multiplies every component by s in place.
func (v *Vec2[T]) ScaleAssign(s T) *Vec2[T] { mulScalarInto(v[:], v[:], s); return v }

// Inc is prefix ++ on every component.
func (v *Vec2[T]) Inc() *Vec2[T] { addScalarInto(v[:], v[:], 1); return v }

// Dec is prefix -- on every component.
func (v *Vec2[T]) Dec() *Vec2[T] { subScalarInto(v[:], v[:], 1); return v }

// PostInc is postfix ++: it returns the value before the increment.
func (v *Vec2[T]) PostInc() Vec2[T] { old := *v; v.Inc(); return old }

// PostDec is postfix --: it returns the value before the decrement.
func (v *Vec2[T]) PostDec() Vec2[T] { old := *v; v.Dec(); return old }

// Equal reports exact component equality.
func (v Vec2[T]) Equal(o Vec2[T]) bool { return equal(v[:], o[:]) }

// EqualScalar reports whether every component equals s.
func (v Vec2[T]) EqualScalar(s T) bool { return equalScalar(v[:], s) }

// Dot returns x*o.x + y*o.y.
func (v Vec2[T]) Dot(o Vec2[T]) T { return dot(v[:], o[:]) }

// SqrMagnitude returns x² + y².
func (v Vec2[T]) SqrMagnitude() T { return dot(v[:], v[:]) }

// Magnitude returns sqrt(x² + y²).
func (v Vec2[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Distance returns |v - o|.
func (v Vec2[T]) Distance(o Vec2[T]) T { return v.Sub(o).Magnitude() }

// Normalized returns v/|v|, or the zero vector when |v| <= scalar.Epsilon[T].
func (v Vec2[T]) Normalized() Vec2[T] { normalizedInto(v[:], v[:]); return v }

// Normalize is the in-place form of Normalized.
func (v *Vec2[T]) Normalize() *Vec2[T] { normalizedInto(v[:], v[:]); return v }

// String renders "x y".
func (v Vec2[T]) String() string { return formatComponents(v[:], " ") }
