package linalg

import "github.com/katalvlaran/lmath/scalar"

// lerpInto interpolates every component with scalar.LerpUnclamped.
func lerpInto[T scalar.Number, F scalar.Float](dst, a, b []T, t F) {
	for i := range dst {
		dst[i] = scalar.LerpUnclamped(a[i], b[i], t)
	}
}

// LerpUnclamped1 returns a + t*(b-a) component-wise with t unrestricted.
func LerpUnclamped1[T scalar.Number, F scalar.Float](a, b Vec1[T], t F) Vec1[T] {
	lerpInto(a[:], a[:], b[:], t)
	return a
}

// LerpUnclamped2 returns a + t*(b-a) component-wise with t unrestricted.
func LerpUnclamped2[T scalar.Number, F scalar.Float](a, b Vec2[T], t F) Vec2[T] {
	lerpInto(a[:], a[:], b[:], t)
	return a
}

// LerpUnclamped3 returns a + t*(b-a) component-wise with t unrestricted.
func LerpUnclamped3[T scalar.Number, F scalar.Float](a, b Vec3[T], t F) Vec3[T] {
	lerpInto(a[:], a[:], b[:], t)
	return a
}

// LerpUnclamped4 returns a + t*(b-a) component-wise with t unrestricted.
func LerpUnclamped4[T scalar.Number, F scalar.Float](a, b Vec4[T], t F) Vec4[T] {
	lerpInto(a[:], a[:], b[:], t)
	return a
}

// Lerp1 interpolates between a (t=0) and b (t=1); t is clamped to [0, 1].
func Lerp1[T scalar.Number, F scalar.Float](a, b Vec1[T], t F) Vec1[T] {
	return LerpUnclamped1(a, b, scalar.Clamp01(t))
}

// Lerp2 interpolates between a (t=0) and b (t=1); t is clamped to [0, 1].
func Lerp2[T scalar.Number, F scalar.Float](a, b Vec2[T], t F) Vec2[T] {
	return LerpUnclamped2(a, b, scalar.Clamp01(t))
}

// Lerp3 interpolates between a (t=0) and b (t=1); t is clamped to [0, 1].
func Lerp3[T scalar.Number, F scalar.Float](a, b Vec3[T], t F) Vec3[T] {
	return LerpUnclamped3(a, b, scalar.Clamp01(t))
}

// Lerp4 interpolates between a (t=0) and b (t=1); t is clamped to [0, 1].
func Lerp4[T scalar.Number, F scalar.Float](a, b Vec4[T], t F) Vec4[T] {
	return LerpUnclamped4(a, b, scalar.Clamp01(t))
}
