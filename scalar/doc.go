// Package scalar provides the numeric constraints and the scalar utility
// functions that the linalg and transform packages are built on.
//
// Every function is generic over the constraints declared in constraints.go
// and behaves identically for named types whose underlying type is a Go
// numeric type. float32 arguments are evaluated in single precision through
// github.com/chewxy/math32; every other type goes through the math package
// in double precision and is converted back.
//
// Degenerate input is never an error here: float division by zero yields
// ±Inf or NaN, integer division by zero panics exactly like the built-in
// operators.
//
//	import "github.com/katalvlaran/lmath/scalar"
//
//	t := scalar.Clamp01(0.75)
//	x := scalar.Lerp(10, 20, t) // 17
package scalar
