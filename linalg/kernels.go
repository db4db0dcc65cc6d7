package linalg

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/lmath/scalar"
)

// Component kernels shared by every vector size. Callers pass slices of
// their backing arrays; dst, a and b always have the same length, so the
// size rule (left operand decides) is settled before these run.

func addInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func subInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mulInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

func divInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func modInto[T scalar.Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = scalar.Mod(a[i], b[i])
	}
}

func addScalarInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalarInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalarInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalarInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func modScalarInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = scalar.Mod(a[i], s)
	}
}

// subFromInto computes s - a[i].
func subFromInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = s - a[i]
	}
}

// divFromInto computes s / a[i].
func divFromInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = s / a[i]
	}
}

// modFromInto computes s mod a[i].
func modFromInto[T scalar.Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = scalar.Mod(s, a[i])
	}
}

func negInto[T scalar.Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func dot[T scalar.Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func equal[T scalar.Number](a, b []T) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalScalar[T scalar.Number](a []T, s T) bool {
	for i := range a {
		if a[i] != s {
			return false
		}
	}
	return true
}

// normalizedInto writes a/|a| into dst, or zeros when |a| <= Epsilon[T].
// One guard serves every size and both the copying and in-place forms.
func normalizedInto[T scalar.Number](dst, a []T) {
	mag := scalar.Sqrt(dot(a, a))
	if mag <= scalar.Epsilon[T]() {
		clear(dst)
		return
	}
	divScalarInto(dst, a, mag)
}

// formatComponents renders values separated by sep.
func formatComponents[T scalar.Number](a []T, sep string) string {
	var sb strings.Builder
	for i, v := range a {
		if i > 0 {
			sb.WriteString(sep)
		}
		fmt.Fprint(&sb, v)
	}
	return sb.String()
}
