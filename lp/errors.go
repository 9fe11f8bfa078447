// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// errors.go - sentinel errors. Callers branch with errors.Is; call sites
// prefix method context with fmt.Errorf("%s: ...: %w").
//
// Infeasibility and unboundedness are not errors: they are reported through
// Status. Errors mean the facade could not produce an answer at all.

package lp

import "errors"

var (
	// ErrDestroyed indicates a call on a Problem after Destroy.
	ErrDestroyed = errors.New("lp: problem destroyed")

	// ErrIndexOutOfRange indicates a row or column index outside the problem.
	ErrIndexOutOfRange = errors.New("lp: index out of range")

	// ErrBadBounds indicates a NaN, infinite or inverted bound pair.
	ErrBadBounds = errors.New("lp: invalid bounds")

	// ErrBadCount indicates a non-positive count or mismatched slice lengths.
	ErrBadCount = errors.New("lp: invalid count")

	// ErrNumerical indicates the simplex backend failed (singular basis,
	// Bland's rule exhaustion, rank-deficient equality rows).
	ErrNumerical = errors.New("lp: numerical failure")

	// ErrResourceExhausted indicates the dense working matrices would exceed
	// Options.MaxDenseCells.
	ErrResourceExhausted = errors.New("lp: resource exhausted")
)
