package transform

import (
	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/scalar"
)

// LookAt builds a view matrix for a camera at eye looking at center.
//
// Implementation:
//   - Stage 1: f = normalize(center - eye); s is the side axis from f and up,
//     u completes the orthonormal basis.
//   - Stage 2: the basis goes into the rows of the upper 3x3 block and the
//     last column holds -basis·eye, so eye maps to the origin.
//
// Behavior highlights:
//   - RightHanded: the camera looks down -Z, center lands on the negative Z axis.
//   - LeftHanded: the camera looks down +Z.
//   - up parallel to the viewing direction yields a zero side axis (no NaNs,
//     but a singular matrix).
func LookAt[T scalar.Float](eye, center, up linalg.Vec3[T], opts ...Option) linalg.Mat4[T] {
	o := gatherOptions(opts...)

	f := center.Sub(eye).Normalized()
	var s, u linalg.Vec3[T]
	if o.handedness == LeftHanded {
		s = up.Cross(f).Normalized()
		u = f.Cross(s)
	} else {
		s = f.Cross(up).Normalized()
		u = s.Cross(f)
		f = f.Neg()
	}

	return linalg.NewMat4(
		s[0], s[1], s[2], -s.Dot(eye),
		u[0], u[1], u[2], -u.Dot(eye),
		f[0], f[1], f[2], -f.Dot(eye),
		0, 0, 0, 1,
	)
}
