// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with `%w`:
//       fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
//   • Validation priority when several checks fail: size, then probability,
//     then RNG presence, then construction.

package builder

import "errors"

// ErrTooFewVertices indicates a size parameter (n, rows, cols, degree, order)
// below the constructor's minimum or outside its domain.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates a stochastic constructor ran without
// WithSeed/WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates the builder exhausted its attempts, or was
// handed a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")
