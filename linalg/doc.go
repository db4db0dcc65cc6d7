// Package linalg implements fixed-size generic vectors and square matrices
// for small dimensions (1 to 4), the numeric core of lmath.
//
// What & Why:
//
//	Vec1..Vec4 are plain arrays of N scalars, Mat1..Mat4 are arrays of N
//	column vectors (column-major, m[col][row]). Both are value types: they
//	live on the stack, copy by assignment and never allocate. Each size is
//	its own type so named accessors (X, Y, R, G, ...) and closed-form
//	kernels (determinant, inverse) are resolved at compile time.
//
// Semantics:
//
//   - Vector arithmetic is component-wise. Matrix Mul/MulVec is the
//     linear-algebra product (row · column), never component-wise.
//   - The left operand decides the result size. A longer right operand is
//     narrowed explicitly with Head1/Head2/Head3, which refuse to compile for
//     a right operand that is too short.
//   - Size conversions are explicit methods (Vec3(), Mat4(), ...):
//     vectors truncate or zero-fill, matrices take the top-left block or
//     extend with identity.
//   - Equality is exact. There is no built-in tolerance.
//   - Indexing is always checked: index expressions panic through the Go
//     runtime, At/Set/Col/Row return ErrOutOfRange.
//   - Degenerate numbers are not errors: normalising a (near) zero vector
//     yields the zero vector, inverting a singular float matrix yields
//     ±Inf/NaN.
//
// Complexity:
//
//	Every operation is O(N) or O(N²) (O(N³) for Mat.Mul) with N ≤ 4 and
//	performs no heap allocation.
package linalg
