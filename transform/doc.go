// Package transform builds the 4x4 matrices a renderer needs around the
// linalg core: view (LookAt), projection (Perspective, PerspectiveFov,
// InfinitePerspective, TweakedInfinitePerspective, Frustum, Ortho, Ortho2D),
// picking (PickMatrix), model (Rotate, Scale, Translate) and the screen
// mapping pair Project / Unproject.
//
// What & Why:
//
//	Graphics APIs disagree on two conventions: the handedness of view
//	space and the depth range of clip space. Instead of a build-time
//	switch, every function that depends on them takes functional options
//	(WithHandedness, WithClipRange). The defaults are right-handed view
//	space and a [-1, 1] depth range.
//
// Semantics:
//
//   - Matrices are column-major linalg.Mat4 values and transform column
//     vectors: clip = proj.Mul(view).MulVec(p).
//   - Rotate, Scale and Translate post-multiply onto the given matrix, so
//     the new transform is applied to vertices first.
//   - Degenerate parameters (zero aspect, near == far, a singular
//     projection in Unproject) are not reported; they produce ±Inf/NaN
//     like the underlying float arithmetic.
//
// Complexity:
//
//	All functions are O(1) and allocation-free.
package transform
