package transform

import (
	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/scalar"
)

// depthTerms returns the entries that map view depth into clip space:
// zz at (2,2), zw at (2,3) and wz at (3,2), for planes near and far.
// wz is the sign of the viewing direction along Z; the clip range decides
// whether near lands on -1 or 0.
func depthTerms[T scalar.Float](o Options, near, far T) (zz, zw, wz T) {
	wz = -1
	if o.handedness == LeftHanded {
		wz = 1
	}
	if o.clipRange == ZeroToOne {
		zz = wz * far / (far - near)
		zw = -(far * near) / (far - near)
	} else {
		zz = wz * (far + near) / (far - near)
		zw = -(2 * far * near) / (far - near)
	}
	return zz, zw, wz
}

// Frustum builds a perspective projection for the view volume whose near
// plane spans [left, right] x [bottom, top].
//
// Implementation:
//   - x and y are scaled by 2*near/(right-left) and 2*near/(top-bottom) and
//     skewed so the window centre lands on the Z axis.
//   - The depth row comes from depthTerms; w receives ±z_view.
//
// Behavior highlights:
//   - A point on the near plane inside the window lands on depth -1
//     (NegativeOneToOne) or 0 (ZeroToOne); the far plane lands on 1.
func Frustum[T scalar.Float](left, right, bottom, top, near, far T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)
	zz, zw, wz := depthTerms(o, near, far)

	return linalg.NewMat4(
		2*near/(right-left), 0, -wz*(right+left)/(right-left), 0,
		0, 2*near/(top-bottom), -wz*(top+bottom)/(top-bottom), 0,
		0, 0, zz, zw,
		0, 0, wz, 0,
	)
}

// Perspective builds a symmetric perspective projection from a vertical
// field of view in radians and a width/height aspect ratio.
func Perspective[T scalar.Float](fovy, aspect, near, far T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)
	zz, zw, wz := depthTerms(o, near, far)
	f := 1 / scalar.Tan(fovy/2)

	return linalg.NewMat4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, zz, zw,
		0, 0, wz, 0,
	)
}

// PerspectiveFov is Perspective with the aspect ratio given as a viewport
// size in any unit.
func PerspectiveFov[T scalar.Float](fov, width, height, near, far T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)
	zz, zw, wz := depthTerms(o, near, far)
	h := scalar.Cos(fov/2) / scalar.Sin(fov/2)
	w := h * height / width

	return linalg.NewMat4(
		w, 0, 0, 0,
		0, h, 0, 0,
		0, 0, zz, zw,
		0, 0, wz, 0,
	)
}

// InfinitePerspective is the limit of Perspective as far goes to infinity.
// Depth approaches but never reaches 1.
func InfinitePerspective[T scalar.Float](fovy, aspect, near T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)
	f := 1 / scalar.Tan(fovy/2)

	wz := T(-1)
	if o.handedness == LeftHanded {
		wz = 1
	}
	zw := -2 * near
	if o.clipRange == ZeroToOne {
		zw = -near
	}

	return linalg.NewMat4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, wz, zw,
		0, 0, wz, 0,
	)
}

// TweakedInfinitePerspective is InfinitePerspective with the far limit
// pulled in by ep: depth tends to 1-ep instead of 1.
func TweakedInfinitePerspective[T scalar.Float](fovy, aspect, near, ep T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)
	f := 1 / scalar.Tan(fovy/2)

	wz := T(-1)
	if o.handedness == LeftHanded {
		wz = 1
	}
	zw := (ep - 2) * near
	if o.clipRange == ZeroToOne {
		zw = (ep - 1) * near
	}

	return linalg.NewMat4(
		f/aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, wz*(1-ep), zw,
		0, 0, wz, 0,
	)
}

// Ortho2D builds an orthographic projection for 2D drawing: x and y map to
// [-1, 1] and z is negated.
func Ortho2D[T scalar.Float](left, right, bottom, top T) linalg.Mat4[T] {
	return linalg.NewMat4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, -1, 0,
		0, 0, 0, 1,
	)
}

// Ortho builds an orthographic projection for the box
// [left, right] x [bottom, top] x [near, far] in view space.
func Ortho[T scalar.Float](left, right, bottom, top, near, far T, opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)

	var zz, zw T
	if o.clipRange == ZeroToOne {
		zz = 1 / (far - near)
		zw = -near / (far - near)
	} else {
		zz = 2 / (far - near)
		zw = -(far + near) / (far - near)
	}
	if o.handedness == RightHanded {
		zz = -zz
	}

	return linalg.NewMat4(
		2/(right-left), 0, 0, -(right+left)/(right-left),
		0, 2/(top-bottom), 0, -(top+bottom)/(top-bottom),
		0, 0, zz, zw,
		0, 0, 0, 1,
	)
}
