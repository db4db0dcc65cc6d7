package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lmath/linalg"
)

func TestVectorConversions(t *testing.T) {
	t.Parallel()

	v4 := linalg.NewVec4(1, 2, 3, 4)
	require.Equal(t, linalg.Vec1[int]{1}, v4.Vec1())
	require.Equal(t, linalg.Vec2[int]{1, 2}, v4.Vec2())
	require.Equal(t, linalg.Vec3[int]{1, 2, 3}, v4.Vec3())
	require.Equal(t, v4, v4.Vec4())

	v1 := linalg.NewVec1(5)
	require.Equal(t, linalg.Vec2[int]{5, 0}, v1.Vec2())
	require.Equal(t, linalg.Vec3[int]{5, 0, 0}, v1.Vec3())
	require.Equal(t, linalg.Vec4[int]{5, 0, 0, 0}, v1.Vec4())

	v3 := linalg.NewVec3(1, 2, 3)
	require.Equal(t, linalg.Vec1[int]{1}, v3.Vec1())
	require.Equal(t, linalg.Vec2[int]{1, 2}, v3.Vec2())
	require.Equal(t, linalg.Vec4[int]{1, 2, 3, 0}, v3.Vec4())
	require.Equal(t, linalg.Vec3[int]{1, 2, 0}, v3.Vec2().Vec3(), "narrowing drops data for good")

	v2 := linalg.NewVec2(1, 2)
	require.Equal(t, linalg.Vec1[int]{1}, v2.Vec1())
	require.Equal(t, linalg.Vec3[int]{1, 2, 0}, v2.Vec3())
	require.Equal(t, linalg.Vec4[int]{1, 2, 0, 0}, v2.Vec4())
}

// Widening then narrowing back must be the identity for every size pair.
func TestVectorConversionRoundTrips(t *testing.T) {
	t.Parallel()

	v1 := linalg.NewVec1(1.5)
	require.Equal(t, v1, v1.Vec2().Vec1())
	require.Equal(t, v1, v1.Vec3().Vec1())
	require.Equal(t, v1, v1.Vec4().Vec1())

	v2 := linalg.NewVec2(1.5, -2)
	require.Equal(t, v2, v2.Vec2())
	require.Equal(t, v2, v2.Vec3().Vec2())
	require.Equal(t, v2, v2.Vec4().Vec2())

	v3 := linalg.NewVec3(1.5, -2, 3)
	require.Equal(t, v3, v3.Vec3())
	require.Equal(t, v3, v3.Vec4().Vec3())

	v4 := linalg.NewVec4(1.5, -2, 3, 4)
	require.Equal(t, v4.Vec3(), v4.Vec3().Vec4().Vec3())
	require.Equal(t, v4.Vec2(), v4.Vec3().Vec2(), "narrowing in steps equals narrowing at once")
	require.Equal(t, v4.Vec1(), v4.Vec2().Vec1())
}

func TestMatrixConversions(t *testing.T) {
	t.Parallel()

	m4 := linalg.NewMat4(
		1, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	require.Equal(t, linalg.NewMat3(1, 2, 3, 5, 6, 7, 9, 10, 11), m4.Mat3(), "top-left block")
	require.Equal(t, linalg.NewMat2(1, 2, 5, 6), m4.Mat2())
	require.Equal(t, linalg.NewMat1(1), m4.Mat1())
	require.Equal(t, m4, m4.Mat4())

	m2 := linalg.NewMat2(1, 2, 3, 4)
	require.Equal(t, linalg.NewMat3(
		1, 2, 0,
		3, 4, 0,
		0, 0, 1,
	), m2.Mat3(), "extension fills the diagonal with 1")
	require.Equal(t, linalg.NewMat4(
		1, 2, 0, 0,
		3, 4, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	), m2.Mat4())
	require.Equal(t, linalg.NewMat1(1), m2.Mat1())

	m1 := linalg.NewMat1(7)
	require.Equal(t, linalg.NewMat2(7, 0, 0, 1), m1.Mat2())
	require.Equal(t, linalg.Diag3(1).Mat4(), linalg.Identity4[int]())
	require.Equal(t, linalg.NewMat3(7, 0, 0, 0, 1, 0, 0, 0, 1), m1.Mat3())

	m3 := linalg.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, linalg.NewMat2(1, 2, 4, 5), m3.Mat2())
	require.Equal(t, linalg.NewMat1(1), m3.Mat1())
}

func TestMatrixConversionRoundTrips(t *testing.T) {
	t.Parallel()

	m1 := linalg.NewMat1(2.5)
	require.Equal(t, m1, m1.Mat2().Mat1())
	require.Equal(t, m1, m1.Mat3().Mat1())
	require.Equal(t, m1, m1.Mat4().Mat1())
	require.Equal(t, m1, m1.Mat1())

	m2 := linalg.NewMat2(1.0, 2, 3, 4)
	require.Equal(t, m2, m2.Mat3().Mat2())
	require.Equal(t, m2, m2.Mat4().Mat2())

	m3 := linalg.NewMat3(1.0, 2, 3, 4, 5, 6, 7, 8, 9)
	require.Equal(t, m3, m3.Mat4().Mat3())
	require.Equal(t, m3, m3.Mat3())

	// an identity stays an identity through every conversion
	require.Equal(t, linalg.Identity2[float64](), linalg.Identity4[float64]().Mat2())
	require.Equal(t, linalg.Identity4[float64](), linalg.Identity2[float64]().Mat4())
	require.Equal(t, linalg.Identity3[float64](), linalg.Identity1[float64]().Mat3())
}
