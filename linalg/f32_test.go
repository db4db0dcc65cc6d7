package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"

	"github.com/katalvlaran/lmath/linalg"
)

func TestF32Vectors(t *testing.T) {
	t.Parallel()

	require.Equal(t, f32.Vec2{1, -2}, linalg.NewVec2(1, -2).F32())
	require.Equal(t, f32.Vec3{0.5, 1, 2}, linalg.NewVec3(0.5, 1, 2).F32())
	require.Equal(t, f32.Vec4{1, 2, 3, 4}, linalg.NewVec4[int16](1, 2, 3, 4).F32())

	require.Equal(t, linalg.NewVec2(1.5, 2), linalg.Vec2FromF32[float64](f32.Vec2{1.5, 2}))
	require.Equal(t, linalg.NewVec3(1, 2, -3), linalg.Vec3FromF32[int](f32.Vec3{1.9, 2, -3.2}), "integers truncate")
	require.Equal(t, linalg.NewVec4[float32](1, 2, 3, 4), linalg.Vec4FromF32[float32](f32.Vec4{1, 2, 3, 4}))
}

func TestF32Matrices(t *testing.T) {
	t.Parallel()

	// both take their entries in row-major order
	m4 := linalg.NewMat4(
		1.0, 2, 3, 4,
		5, 6, 7, 8,
		9, 10, 11, 12,
		13, 14, 15, 16,
	)
	want4 := f32.Mat4{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	require.Equal(t, want4, m4.F32())
	require.Equal(t, m4, linalg.Mat4FromF32[float64](want4))

	m3 := linalg.NewMat3(1, 2, 3, 4, 5, 6, 7, 8, 9)
	want3 := f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}
	require.Equal(t, want3, m3.F32())
	require.Equal(t, m3, linalg.Mat3FromF32[int](want3))

	at, err := m4.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, float32(at), m4.F32()[4*1+2])
}
