// Package lmath is a small, generic linear-algebra toolkit for graphics
// code: fixed-size vectors and matrices plus the view/projection helpers
// a renderer needs around them.
//
// 🚀 What is lmath?
//
//	A pure-Go library built on generics that brings together:
//		• Scalars: numeric constraints, limits, degree/radian helpers
//		• Vectors: Vec1..Vec4 with component-wise and geometric operations
//		• Matrices: column-major Mat1..Mat4, products, determinants, inverses
//		• Transforms: LookAt, Perspective, Frustum, Ortho, Rotate, Project…
//
// ✨ Why choose lmath?
//
//   - Value types – every vector and matrix is a plain array, copied by value
//   - Any element type – int8 through float64 share one implementation
//   - Explicit conventions – handedness and clip range are options, not build flags
//   - Checked access – At/Set report ErrOutOfRange instead of panicking
//
// Under the hood, everything is organized under three subpackages:
//
//	scalar/    — Number/Signed/Float constraints and scalar math
//	linalg/    — Vec1..Vec4, Mat1..Mat4, conversions, Lerp, Inverse1..4
//	transform/ — view, projection and model matrices, Project/Unproject
//
// Quick example:
//
//	view := transform.LookAt(eye, target, linalg.Up[float32]())
//	proj := transform.Perspective(scalar.Radians[float32](60), 16.0/9.0, 0.1, 100)
//	clip := proj.Mul(view).MulVec(p.Extend(1))
//
// Runnable programs live under examples/.
//
//	go get github.com/katalvlaran/lmath
package lmath
