// SPDX-License-Identifier: MIT
// Package linalg_test contains shared test helpers.
//
// Purpose:
//   - Compare float vectors and matrices entry by entry with a tolerance.
//   - Keep fixtures small, finite and well-conditioned.

package linalg_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lmath/linalg"
)

// tol is the default absolute tolerance for float64 comparisons.
const tol = 1e-9

// requireAllClose fails unless want and got have the same length and every
// pair of entries differs by at most delta.
func requireAllClose(t testing.TB, want, got []float64, delta float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		require.InDeltaf(t, want[i], got[i], delta, "entry %d: want %v got %v", i, want, got)
	}
}

// flat2 returns the entries of m column by column.
func flat2(m linalg.Mat2[float64]) []float64 {
	return []float64{m[0][0], m[0][1], m[1][0], m[1][1]}
}

// flat3 returns the entries of m column by column.
func flat3(m linalg.Mat3[float64]) []float64 {
	out := make([]float64, 0, 9)
	for _, c := range m {
		out = append(out, c[:]...)
	}
	return out
}

// flat4 returns the entries of m column by column.
func flat4(m linalg.Mat4[float64]) []float64 {
	out := make([]float64, 0, 16)
	for _, c := range m {
		out = append(out, c[:]...)
	}
	return out
}

// laplaceSample is a well-conditioned 4x4 with det = 30.
func laplaceSample() linalg.Mat4[float64] {
	return linalg.NewMat4[float64](
		1, 0, 2, -1,
		3, 0, 0, 5,
		2, 1, 4, -3,
		1, 0, 5, 0,
	)
}

// affineSample is a scale-plus-translation 4x4 with det = 24.
func affineSample() linalg.Mat4[float64] {
	return linalg.NewMat4[float64](
		2, 0, 0, 1,
		0, 3, 0, 2,
		0, 0, 4, 3,
		0, 0, 0, 1,
	)
}
