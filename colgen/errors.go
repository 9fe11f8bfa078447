// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// errors.go - the failure classes a coloring run can end with.
//
// Error policy:
//   - ErrMalformedInstance: the input graph was rejected; no solver ran.
//   - ErrSolverFailure: a solve ended in a status the loop cannot continue
//     from, or returned data that violates the model (a dependent "independent"
//     set, an uncovered vertex).
//   - ErrResourceExhaustion: the LP facade refused to allocate a model.
//   - context errors from the caller are returned unwrapped by class.
//
// Nothing is retried; any error aborts the run and no result is produced.

package colgen

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

var (
	// ErrMalformedInstance aliases graph.ErrMalformedInstance.
	ErrMalformedInstance = graph.ErrMalformedInstance

	// ErrSolverFailure marks an unusable solver outcome.
	ErrSolverFailure = errors.New("colgen: solver failure")

	// ErrResourceExhaustion marks an allocation refused by the solver.
	ErrResourceExhaustion = errors.New("colgen: resource exhaustion")

	// ErrDuplicateColumn reports an attempt to add a column already pooled.
	ErrDuplicateColumn = errors.New("colgen: duplicate column")

	// ErrNotIndependent reports a column whose vertices share an edge.
	ErrNotIndependent = errors.New("colgen: vertex set is not independent")
)

// classify attaches a failure class to an error coming out of the lp package.
func classify(stage string, err error) error {
	switch {
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s: %w", stage, err)
	case errors.Is(err, lp.ErrResourceExhausted):
		return fmt.Errorf("%s: %w: %w", stage, ErrResourceExhaustion, err)
	default:
		return fmt.Errorf("%s: %w: %w", stage, ErrSolverFailure, err)
	}
}
