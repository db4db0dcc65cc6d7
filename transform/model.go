package transform

import (
	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/scalar"
)

// Rotate returns m·R where R rotates by angle radians about axis.
//
// Implementation:
//   - Rodrigues' formula on the normalized axis builds the 3x3 block of R.
//   - Only the first three columns of m are combined; the translation column
//     is kept.
//
// Behavior highlights:
//   - Positive angles turn counter-clockwise when looking down the axis
//     towards the origin.
//   - A zero axis normalizes to zero and yields a uniform scale by cos(angle)
//     rather than NaNs.
func Rotate[T scalar.Float](m linalg.Mat4[T], angle T, axis linalg.Vec3[T]) linalg.Mat4[T] {
	c, s := scalar.Cos(angle), scalar.Sin(angle)
	a := axis.Normalized()
	t := a.MulScalar(1 - c)

	r := linalg.Mat3[T]{
		{c + t[0]*a[0], t[0]*a[1] + s*a[2], t[0]*a[2] - s*a[1]},
		{t[1]*a[0] - s*a[2], c + t[1]*a[1], t[1]*a[2] + s*a[0]},
		{t[2]*a[0] + s*a[1], t[2]*a[1] - s*a[0], c + t[2]*a[2]},
	}

	var out linalg.Mat4[T]
	for j := range r {
		out[j] = m[0].MulScalar(r[j][0]).
			Add(m[1].MulScalar(r[j][1])).
			Add(m[2].MulScalar(r[j][2]))
	}
	out[3] = m[3]
	return out
}

// Scale returns m·S where S scales x, y and z by v.
func Scale[T scalar.Float](m linalg.Mat4[T], v linalg.Vec3[T]) linalg.Mat4[T] {
	return linalg.Mat4[T]{
		m[0].MulScalar(v[0]),
		m[1].MulScalar(v[1]),
		m[2].MulScalar(v[2]),
		m[3],
	}
}

// Translate returns m·T where T moves points by v.
func Translate[T scalar.Float](m linalg.Mat4[T], v linalg.Vec3[T]) linalg.Mat4[T] {
	m[3] = m.MulVec(v.Extend(1))
	return m
}
