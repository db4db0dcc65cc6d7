package scalar

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// unary evaluates f on v in the precision of T.
func unary[T Number](v T, f32 func(float32) float32, f64 func(float64) float64) T {
	if x, ok := any(v).(float32); ok {
		return T(f32(x))
	}
	return T(f64(float64(v)))
}

// binary evaluates f on (a, b) in the precision of T.
func binary[T Number](a, b T, f32 func(float32, float32) float32, f64 func(float64, float64) float64) T {
	if x, ok := any(a).(float32); ok {
		return T(f32(x, any(b).(float32)))
	}
	return T(f64(float64(a), float64(b)))
}

// Abs returns |v|. Unsigned values are returned unchanged.
func Abs[T Number](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T { return min(a, b) }

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T { return max(a, b) }

// Clamp limits v to the closed range [lo, hi].
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to [0, 1].
func Clamp01[T Number](v T) T { return Clamp(v, 0, 1) }

// LerpUnclamped returns a + t*(b-a) without limiting t.
// The difference is taken in F so unsigned operands do not wrap.
func LerpUnclamped[V Number, F Float](a, b V, t F) V {
	return V(F(a) + t*(F(b)-F(a)))
}

// Lerp interpolates between a and b with t clamped to [0, 1].
func Lerp[V Number, F Float](a, b V, t F) V {
	return LerpUnclamped(a, b, Clamp01(t))
}

// Mod returns the remainder of a / b: the built-in % for integer types and
// an fmod-style remainder (sign of a) for float types.
// An integer b of zero panics like the built-in operator.
func Mod[T Number](a, b T) T {
	switch {
	case isFloat[T]():
		return binary(a, b, math32.Mod, math.Mod)
	case isSigned[T]():
		return T(int64(a) % int64(b))
	default:
		return T(uint64(a) % uint64(b))
	}
}

// Sqrt returns the square root of v, truncated for integer types.
func Sqrt[T Number](v T) T { return unary(v, math32.Sqrt, math.Sqrt) }

// InverseSqrt returns 1/sqrt(v).
func InverseSqrt[T Float](v T) T { return 1 / Sqrt(v) }

// Pow returns base**exp.
func Pow[T Number](base, exp T) T { return binary(base, exp, math32.Pow, math.Pow) }

// Exp returns e**v.
func Exp[T Float](v T) T { return unary(v, math32.Exp, math.Exp) }

// Log returns the natural logarithm of v.
func Log[T Float](v T) T { return unary(v, math32.Log, math.Log) }

// Log10 returns the decimal logarithm of v.
func Log10[T Float](v T) T { return unary(v, math32.Log10, math.Log10) }

// Sin returns the sine of rad.
func Sin[T Float](rad T) T { return unary(rad, math32.Sin, math.Sin) }

// Cos returns the cosine of rad.
func Cos[T Float](rad T) T { return unary(rad, math32.Cos, math.Cos) }

// Tan returns the tangent of rad.
func Tan[T Float](rad T) T { return unary(rad, math32.Tan, math.Tan) }

// Asin returns the arcsine of v in radians.
func Asin[T Float](v T) T { return unary(v, math32.Asin, math.Asin) }

// Acos returns the arccosine of v in radians.
func Acos[T Float](v T) T { return unary(v, math32.Acos, math.Acos) }

// Atan returns the arctangent of v in radians.
func Atan[T Float](v T) T { return unary(v, math32.Atan, math.Atan) }

// Atan2 returns the arctangent of y/x using the signs of both to pick the quadrant.
func Atan2[T Float](y, x T) T { return binary(y, x, math32.Atan2, math.Atan2) }
