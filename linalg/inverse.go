// SPDX-License-Identifier: MIT
// Package linalg: closed-form inverses.
// Inversion is offered for signed element types only. None of the kernels
// test the determinant: a singular float matrix yields ±Inf/NaN entries and
// a singular integer matrix panics with an integer divide by zero. Callers
// that need a guard check Determinant first.

package linalg

import "github.com/katalvlaran/lmath/scalar"

// Inverse1 returns 1/m00.
func Inverse1[T scalar.Signed](m Mat1[T]) Mat1[T] {
	return Mat1[T]{{1 / m[0][0]}}
}

// Inverse2 returns the inverse of a 2x2 matrix.
//
// Implementation:
//   - adj(m) / det(m) with adj = | m11 -m01 ; -m10 m00 | (row-major).
//
// Behavior highlights:
//   - Every entry is divided by det separately, so integer matrices with
//     det = ±1 invert exactly.
//
// Complexity:
//   - Time O(1), no allocation.
func Inverse2[T scalar.Signed](m Mat2[T]) Mat2[T] {
	det := m.Determinant()
	return Mat2[T]{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}
}

// Inverse3 returns the inverse of a 3x3 matrix as adj(m) / det(m).
//
// Complexity:
//   - Time O(1): nine 2x2 minors, one determinant, nine divisions.
func Inverse3[T scalar.Signed](m Mat3[T]) Mat3[T] {
	adj := adjugate3(m)
	det := m[0][0]*adj[0][0] + m[1][0]*adj[0][1] + m[2][0]*adj[0][2]
	return adj.DivScalar(det)
}

// Inverse4 returns the inverse of a 4x4 matrix.
//
// Implementation:
//   - Stage 1: laplace4 yields the twelve complementary 2x2 minors.
//   - Stage 2: det = s0*c5 - s1*c4 + s2*c3 + s3*c2 - s4*c1 + s5*c0.
//   - Stage 3: each adjugate entry is a three-term combination of one matrix
//     entry row with the matching minors; the adjugate is divided by det.
//
// Behavior highlights:
//   - inv(m)·m ≈ I within float rounding for well-conditioned m.
//   - Singular input is not detected (see the package note above).
//
// Complexity:
//   - Time O(1): about 100 multiplications, no allocation.
func Inverse4[T scalar.Signed](m Mat4[T]) Mat4[T] {
	s, c := laplace4(m)
	det := s[0]*c[5] - s[1]*c[4] + s[2]*c[3] + s[3]*c[2] - s[4]*c[1] + s[5]*c[0]

	// aRC is row R, column C.
	a00, a01, a02, a03 := m[0][0], m[1][0], m[2][0], m[3][0]
	a10, a11, a12, a13 := m[0][1], m[1][1], m[2][1], m[3][1]
	a20, a21, a22, a23 := m[0][2], m[1][2], m[2][2], m[3][2]
	a30, a31, a32, a33 := m[0][3], m[1][3], m[2][3], m[3][3]

	adj := NewMat4(
		a11*c[5]-a12*c[4]+a13*c[3], -a01*c[5]+a02*c[4]-a03*c[3], a31*s[5]-a32*s[4]+a33*s[3], -a21*s[5]+a22*s[4]-a23*s[3],
		-a10*c[5]+a12*c[2]-a13*c[1], a00*c[5]-a02*c[2]+a03*c[1], -a30*s[5]+a32*s[2]-a33*s[1], a20*s[5]-a22*s[2]+a23*s[1],
		a10*c[4]-a11*c[2]+a13*c[0], -a00*c[4]+a01*c[2]-a03*c[0], a30*s[4]-a31*s[2]+a33*s[0], -a20*s[4]+a21*s[2]-a23*s[0],
		-a10*c[3]+a11*c[1]-a12*c[0], a00*c[3]-a01*c[1]+a02*c[0], -a30*s[3]+a31*s[1]-a32*s[0], a20*s[3]-a21*s[1]+a22*s[0],
	)
	return adj.DivScalar(det)
}
