package linalg

import (
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lmath/scalar"
)

// Interop with golang.org/x/image/math/f32, whose matrices are flat
// row-major float32 arrays: f32.Mat4[4*r+c] is entry (r, c).

// F32 converts v to single precision.
func (v Vec2[T]) F32() f32.Vec2 { return f32.Vec2{float32(v[0]), float32(v[1])} }

// F32 converts v to single precision.
func (v Vec3[T]) F32() f32.Vec3 { return f32.Vec3{float32(v[0]), float32(v[1]), float32(v[2])} }

// F32 converts v to single precision.
func (v Vec4[T]) F32() f32.Vec4 {
	return f32.Vec4{float32(v[0]), float32(v[1]), float32(v[2]), float32(v[3])}
}

// Vec2FromF32 converts a to T, truncating for integer T.
func Vec2FromF32[T scalar.Number](a f32.Vec2) Vec2[T] { return Vec2[T]{T(a[0]), T(a[1])} }

// Vec3FromF32 converts a to T, truncating for integer T.
func Vec3FromF32[T scalar.Number](a f32.Vec3) Vec3[T] { return Vec3[T]{T(a[0]), T(a[1]), T(a[2])} }

// Vec4FromF32 converts a to T, truncating for integer T.
func Vec4FromF32[T scalar.Number](a f32.Vec4) Vec4[T] {
	return Vec4[T]{T(a[0]), T(a[1]), T(a[2]), T(a[3])}
}

// F32 flattens m into row-major single precision.
func (m Mat3[T]) F32() f32.Mat3 {
	var out f32.Mat3
	for c := range m {
		for r := range m[c] {
			out[3*r+c] = float32(m[c][r])
		}
	}
	return out
}

// F32 flattens m into row-major single precision.
//
// Complexity:
//   - Time O(16), no allocation.
func (m Mat4[T]) F32() f32.Mat4 {
	var out f32.Mat4
	for c := range m {
		for r := range m[c] {
			out[4*r+c] = float32(m[c][r])
		}
	}
	return out
}

// Mat3FromF32 is the inverse of Mat3.F32.
func Mat3FromF32[T scalar.Number](a f32.Mat3) Mat3[T] {
	var out Mat3[T]
	for c := range out {
		for r := range out[c] {
			out[c][r] = T(a[3*r+c])
		}
	}
	return out
}

// Mat4FromF32 is the inverse of Mat4.F32.
func Mat4FromF32[T scalar.Number](a f32.Mat4) Mat4[T] {
	var out Mat4[T]
	for c := range out {
		for r := range out[c] {
			out[c][r] = T(a[4*r+c])
		}
	}
	return out
}
