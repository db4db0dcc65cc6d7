package scalar

import "golang.org/x/exp/constraints"

// Number is the set of scalar types a vector or matrix may hold.
type Number interface {
	constraints.Integer | constraints.Float
}

// Signed is the subset of Number that has a meaningful negation.
// Matrix inversion is only offered for these types.
type Signed interface {
	constraints.Signed | constraints.Float
}

// Float is the subset of Number used by the trigonometric helpers and the
// camera/projection transforms.
type Float interface {
	constraints.Float
}

// probes let generic code classify T at run time without reflection.
// They are variables, not constants, so converting them to an integer T
// truncates instead of failing to compile.
var (
	probeFraction = 0.5
	probeNarrow   = 1 + 1e-12
)

// isFloat reports whether T keeps fractional parts.
func isFloat[T Number]() bool { return T(probeFraction) != 0 }

// isFloat32 reports whether T is a single-precision float.
func isFloat32[T Number]() bool { return isFloat[T]() && T(probeNarrow) == 1 }

// isSigned reports whether T can hold negative values.
func isSigned[T Number]() bool {
	var z T
	z--
	return z < 0
}
