package linalg

import "github.com/katalvlaran/lmath/scalar"

// Vec1 is a one-component vector. It behaves like a scalar that still
// follows the vector API (conversions, checked access, normalization).
type Vec1[T scalar.Number] [1]T

// NewVec1 builds a vector from x.
func NewVec1[T scalar.Number](x T) Vec1[T] { return Vec1[T]{x} }

// Splat1 is NewVec1 under the broadcast name shared by every size.
func Splat1[T scalar.Number](s T) Vec1[T] { return Vec1[T]{s} }

// Len returns 1, the number of components.
func (v Vec1[T]) Len() int { return len(v) }

// X returns the first component.
func (v Vec1[T]) X() T { return v[0] }

// R is X under the color naming.
func (v Vec1[T]) R() T { return v[0] }

// SetX assigns the first component.
func (v *Vec1[T]) SetX(x T) { v[0] = x }

// At returns component i, or ErrOutOfRange unless i == 0.
func (v Vec1[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v)); err != nil {
		var zero T
		return zero, linalgErrorf("Vec1", opAt, err, i)
	}
	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange unless i == 0.
func (v *Vec1[T]) Set(i int, val T) error {
	if err := checkIndex(i, len(v)); err != nil {
		return linalgErrorf("Vec1", opSet, err, i)
	}
	v[i] = val
	return nil
}

// Extend appends y.
func (v Vec1[T]) Extend(y T) Vec2[T] { return Vec2[T]{v[0], y} }

// Vec1 returns v unchanged.
func (v Vec1[T]) Vec1() Vec1[T] { return v }

// Vec2 widens v, zero-filling the new components.
func (v Vec1[T]) Vec2() Vec2[T] { return v.Vec4().Vec2() }

// Vec3 widens v, zero-filling the new components.
func (v Vec1[T]) Vec3() Vec3[T] { return v.Vec4().Vec3() }

// Vec4 widens v, zero-filling the new components.
func (v Vec1[T]) Vec4() Vec4[T] { return Vec4[T]{v[0], 0, 0, 0} }

// Add returns v + o component-wise.
func (v Vec1[T]) Add(o Vec1[T]) Vec1[T] { addInto(v[:], v[:], o[:]); return v }

// Sub returns v - o component-wise.
func (v Vec1[T]) Sub(o Vec1[T]) Vec1[T] { subInto(v[:], v[:], o[:]); return v }

// Mul returns the component-wise product.
func (v Vec1[T]) Mul(o Vec1[T]) Vec1[T] { mulInto(v[:], v[:], o[:]); return v }

// Div returns v / o component-wise. Zero float divisors yield ±Inf/NaN.
func (v Vec1[T]) Div(o Vec1[T]) Vec1[T] { divInto(v[:], v[:], o[:]); return v }

// Mod returns the component-wise remainder of v / o.
func (v Vec1[T]) Mod(o Vec1[T]) Vec1[T] { modInto(v[:], v[:], o[:]); return v }

// AddScalar adds s to every component.
func (v Vec1[T]) AddScalar(s T) Vec1[T] { addScalarInto(v[:], v[:], s); return v }

// SubScalar subtracts s from every component.
func (v Vec1[T]) SubScalar(s T) Vec1[T] { subScalarInto(v[:], v[:], s); return v }

// MulScalar scales every component by s.
func (v Vec1[T]) MulScalar(s T) Vec1[T] { mulScalarInto(v[:], v[:], s); return v }

// DivScalar divides every component by s.
func (v Vec1[T]) DivScalar(s T) Vec1[T] { divScalarInto(v[:], v[:], s); return v }

// ModScalar reduces every component modulo s.
func (v Vec1[T]) ModScalar(s T) Vec1[T] { modScalarInto(v[:], v[:], s); return v }

// SubFrom returns s - v component-wise.
func (v Vec1[T]) SubFrom(s T) Vec1[T] { subFromInto(v[:], v[:], s); return v }

// DivFrom returns s / v component-wise.
func (v Vec1[T]) DivFrom(s T) Vec1[T] { divFromInto(v[:], v[:], s); return v }

// ModFrom returns s mod v component-wise.
func (v Vec1[T]) ModFrom(s T) Vec1[T] { modFromInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec1[T]) Neg() Vec1[T] { negInto(v[:], v[:]); return v }

// Pos returns v unchanged (unary plus).
func (v Vec1[T]) Pos() Vec1[T] { return v }

// AddAssign sets v to v + o and returns v.
func (v *Vec1[T]) AddAssign(o Vec1[T]) *Vec1[T] { addInto(v[:], v[:], o[:]); return v }

// SubAssign sets v to v - o and returns v.
func (v *Vec1[T]) SubAssign(o Vec1[T]) *Vec1[T] { subInto(v[:], v[:], o[:]); return v }

// MulAssign multiplies v by o component-wise in place.
func (v *Vec1[T]) MulAssign(o Vec1[T]) *Vec1[T] { mulInto(v[:], v[:], o[:]); return v }

// DivAssign divides v by o component-wise in place.
func (v *Vec1[T]) DivAssign(o Vec1[T]) *Vec1[T] { divInto(v[:], v[:], o[:]); return v }

// ScaleAssign multiplies every component by s in place.
func (v *Vec1[T]) ScaleAssign(s T) *Vec1[T] { mulScalarInto(v[:], v[:], s); return v }

// Inc adds 1 to every component and returns v.
func (v *Vec1[T]) Inc() *Vec1[T] { addScalarInto(v[:], v[:], 1); return v }

// Dec subtracts 1 from every component and returns v.
func (v *Vec1[T]) Dec() *Vec1[T] { subScalarInto(v[:], v[:], 1); return v }

// PostInc increments v and returns its previous value.
func (v *Vec1[T]) PostInc() Vec1[T] { old := *v; v.Inc(); return old }

// PostDec decrements v and returns its previous value.
func (v *Vec1[T]) PostDec() Vec1[T] { old := *v; v.Dec(); return old }

// Equal reports exact component equality.
func (v Vec1[T]) Equal(o Vec1[T]) bool { return equal(v[:], o[:]) }

// EqualScalar reports whether every component equals s.
func (v Vec1[T]) EqualScalar(s T) bool { return equalScalar(v[:], s) }

// Dot returns the dot product of v and o.
func (v Vec1[T]) Dot(o Vec1[T]) T { return dot(v[:], o[:]) }

// SqrMagnitude returns the sum of squared components.
func (v Vec1[T]) SqrMagnitude() T { return dot(v[:], v[:]) }

// Magnitude returns |x| (as sqrt(x²), so integer overflow follows x²).
func (v Vec1[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Distance returns |v - o|.
func (v Vec1[T]) Distance(o Vec1[T]) T { return v.Sub(o).Magnitude() }

// Normalized returns the sign of x as ±1, or 0 when |x| <= scalar.Epsilon[T].
func (v Vec1[T]) Normalized() Vec1[T] { normalizedInto(v[:], v[:]); return v }

// Normalize is the in-place form of Normalized.
func (v *Vec1[T]) Normalize() *Vec1[T] { normalizedInto(v[:], v[:]); return v }

// String renders the components separated by single spaces.
func (v Vec1[T]) String() string { return formatComponents(v[:], " ") }
