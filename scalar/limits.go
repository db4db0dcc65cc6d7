package scalar

import "math"

// Angle conversion constants.
const (
	Pi       = math.Pi
	DegToRad = Pi / 180
	RadToDeg = 180 / Pi
)

// Machine epsilon per float width.
const (
	epsilon32 = 0x1p-23
	epsilon64 = 0x1p-52
)

// Epsilon returns the difference between 1 and the next representable value
// of T. Integers have no fractional resolution, so the result is 0 for them.
func Epsilon[T Number]() T {
	switch {
	case isFloat32[T]():
		e := float32(epsilon32)
		return T(e)
	case isFloat[T]():
		e := float64(epsilon64)
		return T(e)
	default:
		return 0
	}
}

// MaxValue returns the largest finite value of T.
func MaxValue[T Number]() T {
	switch {
	case isFloat32[T]():
		v := float32(math.MaxFloat32)
		return T(v)
	case isFloat[T]():
		v := float64(math.MaxFloat64)
		return T(v)
	}
	// grow 1, 3, 7, ... until the next step wraps around
	m := T(1)
	for next := m*2 + 1; next > m; next = m*2 + 1 {
		m = next
	}
	return m
}

// Lowest returns the most negative finite value of T (0 for unsigned types).
func Lowest[T Number]() T {
	switch {
	case isFloat[T]():
		return -MaxValue[T]()
	case isSigned[T]():
		return -MaxValue[T]() - 1
	default:
		return 0
	}
}

// Radians converts degrees to radians.
func Radians[T Float](deg T) T { return deg * DegToRad }

// Degrees converts radians to degrees.
func Degrees[T Float](rad T) T { return rad * RadToDeg }
