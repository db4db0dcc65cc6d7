package linalg

import "github.com/katalvlaran/lmath/scalar"

// Vec3 is a three-component vector stored contiguously as x, y, z.
// r, g, b name the same slots for colour data.
type Vec3[T scalar.Number] [3]T

// NewVec3 builds a vector from its components.
func NewVec3[T scalar.Number](x, y, z T) Vec3[T] { return Vec3[T]{x, y, z} }

// Splat3 broadcasts s into every component.
func Splat3[T scalar.Number](s T) Vec3[T] { return Vec3[T]{s, s, s} }

// Up returns the unit +Y axis.
func Up[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 1, 0} }

// Right returns the unit +X axis.
func Right[T scalar.Number]() Vec3[T] { return Vec3[T]{1, 0, 0} }

// Forward returns the unit +Z axis.
func Forward[T scalar.Number]() Vec3[T] { return Vec3[T]{0, 0, 1} }

// Len returns the number of components (3).
func (v Vec3[T]) Len() int { return len(v) }

// X returns the first component.
func (v Vec3[T]) X() T { return v[0] }

// Y returns the second component.
func (v Vec3[T]) Y() T { return v[1] }

// Z returns the third component.
func (v Vec3[T]) Z() T { return v[2] }

// R is X under the color naming.
func (v Vec3[T]) R() T { return v[0] }

// G is Y under the color naming.
func (v Vec3[T]) G() T { return v[1] }

// B is Z under the color naming.
func (v Vec3[T]) B() T { return v[2] }

// SetX assigns the first component.
func (v *Vec3[T]) SetX(x T) { v[0] = x }

// SetY assigns the second component.
func (v *Vec3[T]) SetY(y T) { v[1] = y }

// SetZ assigns the third component.
func (v *Vec3[T]) SetZ(z T) { v[2] = z }

// At returns component i, or ErrOutOfRange unless 0 <= i < 3.
func (v Vec3[T]) At(i int) (T, error) {
	if err := checkIndex(i, len(v)); err != nil {
		var zero T
		return zero, linalgErrorf("Vec3", opAt, err, i)
	}
	return v[i], nil
}

// Set assigns component i, or returns ErrOutOfRange unless 0 <= i < 3.
func (v *Vec3[T]) Set(i int, val T) error {
	if err := checkIndex(i, len(v)); err != nil {
		return linalgErrorf("Vec3", opSet, err, i)
	}
	v[i] = val
	return nil
}

// Extend appends w, producing a Vec4 (typically w=1 for points, 0 for directions).
func (v Vec3[T]) Extend(w T) Vec4[T] { return Vec4[T]{v[0], v[1], v[2], w} }

// Vec1 keeps x.
func (v Vec3[T]) Vec1() Vec1[T] { return v.Vec4().Vec1() }

// Vec2 keeps x and y.
func (v Vec3[T]) Vec2() Vec2[T] { return v.Vec4().Vec2() }

// Vec3 returns v unchanged.
func (v Vec3[T]) Vec3() Vec3[T] { return v }

// Vec4 zero-fills w.
func (v Vec3[T]) Vec4() Vec4[T] {
	var out Vec4[T]
	copy(out[:], v[:])
	return out
}

// Add returns v + o component-wise.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] { addInto(v[:], v[:], o[:]); return v }

// Sub returns v - o component-wise.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] { subInto(v[:], v[:], o[:]); return v }

// Mul returns the component-wise (Hadamard) product. See Dot and Cross for
// the vector products.
func (v Vec3[T]) Mul(o Vec3[T]) Vec3[T] { mulInto(v[:], v[:], o[:]); return v }

// Div returns v / o component-wise. Zero float divisors yield ±Inf/NaN.
func (v Vec3[T]) Div(o Vec3[T]) Vec3[T] { divInto(v[:], v[:], o[:]); return v }

// Mod returns v mod o component-wise (see scalar.Mod).
func (v Vec3[T]) Mod(o Vec3[T]) Vec3[T] { modInto(v[:], v[:], o[:]); return v }

// AddScalar returns v + s for every component; s + v is the same vector.
func (v Vec3[T]) AddScalar(s T) Vec3[T] { addScalarInto(v[:], v[:], s); return v }

// SubScalar returns v - s for every component.
func (v Vec3[T]) SubScalar(s T) Vec3[T] { subScalarInto(v[:], v[:], s); return v }

// MulScalar returns v * s for every component; s * v is the same vector.
func (v Vec3[T]) MulScalar(s T) Vec3[T] { mulScalarInto(v[:], v[:], s); return v }

// DivScalar returns v / s for every component.
func (v Vec3[T]) DivScalar(s T) Vec3[T] { divScalarInto(v[:], v[:], s); return v }

// ModScalar returns v mod s for every component.
func (v Vec3[T]) ModScalar(s T) Vec3[T] { modScalarInto(v[:], v[:], s); return v }

// SubFrom returns s - v for every component.
func (v Vec3[T]) SubFrom(s T) Vec3[T] { subFromInto(v[:], v[:], s); return v }

// DivFrom returns s / v for every component.
func (v Vec3[T]) DivFrom(s T) Vec3[T] { divFromInto(v[:], v[:], s); return v }

// ModFrom returns s mod v for every component.
func (v Vec3[T]) ModFrom(s T) Vec3[T] { modFromInto(v[:], v[:], s); return v }

// Neg returns -v.
func (v Vec3[T]) Neg() Vec3[T] { negInto(v[:], v[:]); return v }

// Pos returns v unchanged (unary plus).
func (v Vec3[T]) Pos() Vec3[T] { return v }

// AddAssign sets v = v + o and returns v.
func (v *Vec3[T]) AddAssign(o Vec3[T]) *Vec3[T] { addInto(v[:], v[:], o[:]); return v }

// SubAssign sets v = v - o and returns v.
func (v *Vec3[T]) SubAssign(o Vec3[T]) *Vec3[T] { subInto(v[:], v[:], o[:]); return v }

// MulAssign sets v = v * o component-wise and returns v.
func (v *Vec3[T]) MulAssign(o Vec3[T]) *Vec3[T] { mulInto(v[:], v[:], o[:]); return v }

// DivAssign sets v = v / o component-wise and returns v.
func (v *Vec3[T]) DivAssign(o Vec3[T]) *Vec3[T] { divInto(v[:], v[:], o[:]); return v }

// ScaleAssign sets v = v * s and returns v.
func (v *Vec3[T]) ScaleAssign(s T) *Vec3[T] { mulScalarInto(v[:], v[:], s); return v }

// Inc adds 1 to every component and returns v (prefix ++).
func (v *Vec3[T]) Inc() *Vec3[T] { addScalarInto(v[:], v[:], 1); return v }

// Dec subtracts 1 from every component and returns v (prefix --).
func (v *Vec3[T]) Dec() *Vec3[T] { subScalarInto(v[:], v[:], 1); return v }

// PostInc adds 1 to every component and returns the previous value (postfix ++).
func (v *Vec3[T]) PostInc() Vec3[T] { old := *v; v.Inc(); return old }

// PostDec subtracts 1 from every component and returns the previous value (postfix --).
func (v *Vec3[T]) PostDec() Vec3[T] { old := *v; v.Dec(); return old }

// Equal reports exact equality of all three components.
func (v Vec3[T]) Equal(o Vec3[T]) bool { return equal(v[:], o[:]) }

// EqualScalar reports whether every component equals s.
func (v Vec3[T]) EqualScalar(s T) bool { return equalScalar(v[:], s) }

// Dot returns the scalar product v · o.
func (v Vec3[T]) Dot(o Vec3[T]) T { return dot(v[:], o[:]) }

// Cross returns the right-handed vector product v × o.
func (v Vec3[T]) Cross(o Vec3[T]) Vec3[T] {
	return Vec3[T]{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

// SqrMagnitude returns x² + y² + z².
func (v Vec3[T]) SqrMagnitude() T { return dot(v[:], v[:]) }

// Magnitude returns the Euclidean length sqrt(x² + y² + z²).
func (v Vec3[T]) Magnitude() T { return scalar.Sqrt(v.SqrMagnitude()) }

// Distance returns |v - o|.
func (v Vec3[T]) Distance(o Vec3[T]) T { return v.Sub(o).Magnitude() }

// Normalized returns v scaled to unit length. A vector whose magnitude is
// at most scalar.Epsilon[T] yields the zero vector instead of NaNs.
func (v Vec3[T]) Normalized() Vec3[T] { normalizedInto(v[:], v[:]); return v }

// Normalize scales v to unit length in place under the same zero guard as
// Normalized and returns v.
func (v *Vec3[T]) Normalize() *Vec3[T] { normalizedInto(v[:], v[:]); return v }

// String renders "x y z".
func (v Vec3[T]) String() string { return formatComponents(v[:], " ") }
