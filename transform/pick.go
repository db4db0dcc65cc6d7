package transform

import (
	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/scalar"
)

// PickMatrix returns a matrix that zooms clip space onto a picking region.
// Pre-multiplied onto a projection (PickMatrix(...).Mul(proj)), it maps the
// window rectangle of size delta centred at center to the whole [-1, 1]
// range in x and y, so only geometry under the cursor survives clipping.
//
// Behavior highlights:
//   - A delta with a non-positive component yields Identity4.
//   - Depth is left untouched.
func PickMatrix[T scalar.Float, U scalar.Number](center, delta linalg.Vec2[T], viewport linalg.Vec4[U]) linalg.Mat4[T] {
	out := linalg.Identity4[T]()
	if !(delta[0] > 0 && delta[1] > 0) {
		return out
	}

	shift := linalg.NewVec3(
		(T(viewport[2])-2*(center[0]-T(viewport[0])))/delta[0],
		(T(viewport[3])-2*(center[1]-T(viewport[1])))/delta[1],
		0,
	)
	out = Translate(out, shift)
	return Scale(out, linalg.NewVec3(T(viewport[2])/delta[0], T(viewport[3])/delta[1], 1))
}
