package linalg

import "github.com/katalvlaran/lmath/scalar"

// Cross-size arithmetic is always spelled as an explicit narrowing of the
// right operand: v3.Add(Head3(v4)). Widening a right operand is not
// offered; a smaller vector must be extended or converted on purpose.

// Narrow1 admits every vector size, since each has at least one component.
type Narrow1[T scalar.Number] interface {
	Vec1[T] | Vec2[T] | Vec3[T] | Vec4[T]
	Vec1() Vec1[T]
}

// Narrow2 admits the vector sizes with at least two components.
type Narrow2[T scalar.Number] interface {
	Vec2[T] | Vec3[T] | Vec4[T]
	Vec2() Vec2[T]
}

// Narrow3 admits the vector sizes with at least three components.
type Narrow3[T scalar.Number] interface {
	Vec3[T] | Vec4[T]
	Vec3() Vec3[T]
}

// Head1 returns the first component of v as a Vec1.
func Head1[T scalar.Number, V Narrow1[T]](v V) Vec1[T] { return v.Vec1() }

// Head2 returns the first two components of v. Passing a Vec1 does not compile.
func Head2[T scalar.Number, V Narrow2[T]](v V) Vec2[T] { return v.Vec2() }

// Head3 returns the first three components of v. Only Vec3 and Vec4 are accepted.
func Head3[T scalar.Number, V Narrow3[T]](v V) Vec3[T] { return v.Vec3() }
