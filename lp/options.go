// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// options.go - solver knobs shared by SolveRelaxation and SolveInteger.

package lp

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Default knob values.
const (
	DefaultTolerance        = 1e-10
	DefaultIntegralityTol   = 1e-6
	DefaultDualBoundPenalty = 1e-7
	DefaultMaxDenseCells    = 1 << 24
)

// Options configures a solve. The zero value selects every default.
type Options struct {
	// Tolerance is the simplex optimality tolerance on reduced costs.
	Tolerance float64
	// IntegralityTol is how far from an integer a value may be and still
	// count as integral.
	IntegralityTol float64
	// TimeLimit bounds SolveInteger wall time; 0 means none.
	TimeLimit time.Duration
	// NodeLimit bounds the branch-and-bound node count; 0 means none.
	NodeLimit int
	// DualBoundPenalty perturbs the right-hand side of column upper-bound
	// rows in the dual solve so that, among alternative optimal duals, one
	// that leaves the bound rows unpriced is returned. Negative disables it.
	DualBoundPenalty float64
	// MaxDenseCells caps the size of any dense simplex matrix.
	MaxDenseCells int
	// Start is an optional starting point for SolveInteger, one value per
	// column. It becomes the first incumbent when it is integral on integral
	// columns, inside the column bounds and satisfies every row; otherwise it
	// is ignored. SolveRelaxation ignores it.
	Start []float64
	// Cutoff, when UseCutoff is set, prunes every SolveInteger node whose
	// relaxation cannot beat Cutoff in the objective direction. Points no
	// better than Cutoff may then be missed; Solution.CutoffPruned reports it.
	Cutoff    float64
	UseCutoff bool
	// Logger receives branch-and-bound progress; nil discards it.
	Logger logrus.FieldLogger
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Tolerance:        DefaultTolerance,
		IntegralityTol:   DefaultIntegralityTol,
		DualBoundPenalty: DefaultDualBoundPenalty,
		MaxDenseCells:    DefaultMaxDenseCells,
	}
}

// normalize replaces unset or meaningless values with defaults.
func (o Options) normalize() Options {
	if o.Tolerance <= 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.IntegralityTol <= 0 || o.IntegralityTol >= 0.5 {
		o.IntegralityTol = DefaultIntegralityTol
	}
	switch {
	case o.DualBoundPenalty == 0:
		o.DualBoundPenalty = DefaultDualBoundPenalty
	case o.DualBoundPenalty < 0:
		o.DualBoundPenalty = 0
	}
	if o.MaxDenseCells <= 0 {
		o.MaxDenseCells = DefaultMaxDenseCells
	}
	if o.TimeLimit < 0 {
		o.TimeLimit = 0
	}
	if o.NodeLimit < 0 {
		o.NodeLimit = 0
	}
	if o.Logger == nil {
		o.Logger = discardLogger()
	}

	return o
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
