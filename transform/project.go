package transform

import (
	"github.com/katalvlaran/lmath/linalg"
	"github.com/katalvlaran/lmath/scalar"
)

// Project maps object coordinates to window coordinates.
//
// Implementation:
//   - Stage 1: clip = proj·model·(obj, 1), then the perspective divide.
//   - Stage 2: NDC x and y go from [-1, 1] to [0, 1], and so does depth
//     when the clip range is NegativeOneToOne; ZeroToOne depth is kept.
//   - Stage 3: x and y are scaled into viewport = (x, y, width, height).
//
// Behavior highlights:
//   - The returned z is window depth in [0, 1] for points inside the view
//     volume under either clip range.
//   - viewport may use any numeric type (typically integer pixels).
func Project[T scalar.Float, U scalar.Number](
	obj linalg.Vec3[T], model, proj linalg.Mat4[T], viewport linalg.Vec4[U], opts ...Option,
) linalg.Vec3[T] {
	o := gatherOptions(opts...)

	tmp := proj.MulVec(model.MulVec(obj.Extend(1)))
	tmp = tmp.DivScalar(tmp[3])

	tmp[0] = tmp[0]*0.5 + 0.5
	tmp[1] = tmp[1]*0.5 + 0.5
	if o.clipRange == NegativeOneToOne {
		tmp[2] = tmp[2]*0.5 + 0.5
	}

	tmp[0] = tmp[0]*T(viewport[2]) + T(viewport[0])
	tmp[1] = tmp[1]*T(viewport[3]) + T(viewport[1])
	return tmp.Vec3()
}

// Unproject is the inverse of Project: it maps window coordinates (with z
// as window depth) back to object coordinates.
//
// Behavior highlights:
//   - Uses linalg.Inverse4(proj·model) and inherits its unguarded behavior:
//     a singular product yields ±Inf/NaN components.
func Unproject[T scalar.Float, U scalar.Number](
	win linalg.Vec3[T], model, proj linalg.Mat4[T], viewport linalg.Vec4[U], opts ...Option,
) linalg.Vec3[T] {
	o := gatherOptions(opts...)
	inv := linalg.Inverse4(proj.Mul(model))

	tmp := win.Extend(1)
	tmp[0] = (tmp[0] - T(viewport[0])) / T(viewport[2])
	tmp[1] = (tmp[1] - T(viewport[1])) / T(viewport[3])

	tmp[0] = tmp[0]*2 - 1
	tmp[1] = tmp[1]*2 - 1
	if o.clipRange == NegativeOneToOne {
		tmp[2] = tmp[2]*2 - 1
	}

	obj := inv.MulVec(tmp)
	return obj.DivScalar(obj[3]).Vec3()
}
