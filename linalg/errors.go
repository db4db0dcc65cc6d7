// SPDX-License-Identifier: MIT
// Package linalg: sentinel error set.
// Index accessors return these sentinels wrapped with the operation name;
// callers match them with errors.Is. Numeric degeneracy (zero magnitude,
// singular matrix) is never reported as an error.

package linalg

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOutOfRange indicates that a component, row or column index is outside
// [0, N). At, Set, Col and Row return it instead of panicking.
var ErrOutOfRange = errors.New("linalg: index out of range")

// Operation tags used to wrap errors; no magic strings at call sites.
const (
	opAt  = "At"
	opSet = "Set"
	opCol = "Col"
	opRow = "Row"
)

// linalgErrorf wraps err as "<Type>.<op>(<indices>): <err>" keeping it
// matchable with errors.Is. err must be non-nil.
func linalgErrorf(typ, op string, err error, idx ...int) error {
	args := make([]string, len(idx))
	for k, v := range idx {
		args[k] = strconv.Itoa(v)
	}
	return fmt.Errorf("%s.%s(%s): %w", typ, op, strings.Join(args, ","), err)
}

// checkIndex validates 0 <= i < n.
func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrOutOfRange
	}
	return nil
}

// checkCell validates a (row, col) pair against an n x n matrix.
func checkCell(row, col, n int) error {
	if err := checkIndex(row, n); err != nil {
		return err
	}
	return checkIndex(col, n)
}
