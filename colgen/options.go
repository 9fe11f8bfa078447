// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// options.go - run configuration and observation hooks.

package colgen

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cgcolor/lp"
)

const (
	// DefaultEpsilon is the reduced-cost threshold: a priced column enters
	// only when 1 - z_pric < -DefaultEpsilon.
	DefaultEpsilon = 1e-8
	// DefaultPricingTimeLimit bounds each pricing solve.
	DefaultPricingTimeLimit = 3 * time.Second
)

// SolveKind names the solver invocations a run makes.
type SolveKind int

const (
	SolveMasterRelaxation SolveKind = iota
	SolvePricing
	SolveMasterInteger
)

func (k SolveKind) String() string {
	switch k {
	case SolveMasterRelaxation:
		return "master-relaxation"
	case SolvePricing:
		return "pricing"
	case SolveMasterInteger:
		return "master-integer"
	}

	return "unknown"
}

// Hooks observe a run. Every field is optional; hooks run synchronously on
// the solving goroutine and must not retain the *lp.Problem.
type Hooks struct {
	// OnState fires on every state entry.
	OnState func(State)
	// OnSolve fires right before each solver invocation.
	OnSolve func(SolveKind)
	// OnModel fires before each solve with a dump name such as
	// "coloring3", "pricing3" or "pmr-relax".
	OnModel func(name string, p *lp.Problem)
	// OnIteration fires after each pricing round is evaluated.
	OnIteration func(IterationStat)
}

// Options configures a run. The zero value selects every default.
type Options struct {
	// Epsilon is the reduced-cost tolerance; <= 0 selects DefaultEpsilon.
	Epsilon float64
	// PricingTimeLimit bounds each pricing solve; 0 selects the default and
	// a negative value disables the limit.
	PricingTimeLimit time.Duration
	// MasterTimeLimit bounds the final integer master solve; 0 means none.
	MasterTimeLimit time.Duration
	// MasterNodeLimit bounds the final integer master branch-and-bound node
	// count; 0 falls back to Solver.NodeLimit.
	MasterNodeLimit int
	// ExactPricing skips the greedy pricing heuristic: every round runs the
	// pricing MIP as a plain maximization, with no start point and no cutoff.
	ExactPricing bool
	// MaxIterations caps the master/pricing rounds; 0 means no cap.
	MaxIterations int
	// Solver holds the LP facade knobs; its TimeLimit is overridden per solve.
	Solver lp.Options
	// Logger receives progress; nil discards it.
	Logger logrus.FieldLogger
	Hooks  Hooks
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Epsilon:          DefaultEpsilon,
		PricingTimeLimit: DefaultPricingTimeLimit,
		Solver:           lp.DefaultOptions(),
	}
}

func (o Options) normalize() Options {
	if o.Epsilon <= 0 {
		o.Epsilon = DefaultEpsilon
	}
	switch {
	case o.PricingTimeLimit == 0:
		o.PricingTimeLimit = DefaultPricingTimeLimit
	case o.PricingTimeLimit < 0:
		o.PricingTimeLimit = 0
	}
	if o.MasterTimeLimit < 0 {
		o.MasterTimeLimit = 0
	}
	if o.MaxIterations < 0 {
		o.MaxIterations = 0
	}
	if o.MasterNodeLimit < 0 {
		o.MasterNodeLimit = 0
	}
	if o.Logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		o.Logger = l
	}
	if o.Solver.Logger == nil {
		o.Solver.Logger = o.Logger
	}

	return o
}

// solverBase is Solver without the per-call fields.
func (o Options) solverBase() lp.Options {
	s := o.Solver
	s.Start = nil
	s.UseCutoff, s.Cutoff = false, 0

	return s
}

func (o Options) masterRelaxOptions() lp.Options {
	s := o.solverBase()
	s.TimeLimit = 0

	return s
}

// pricingOptions seeds the search with start and, outside ExactPricing,
// prunes every node that cannot price out under Epsilon.
func (o Options) pricingOptions(start []float64) lp.Options {
	s := o.solverBase()
	s.TimeLimit = o.PricingTimeLimit
	if !o.ExactPricing {
		s.Start = start
		s.UseCutoff, s.Cutoff = true, 1+o.Epsilon
	}

	return s
}

func (o Options) masterIntegerOptions() lp.Options {
	s := o.solverBase()
	s.TimeLimit = o.MasterTimeLimit
	if o.MasterNodeLimit > 0 {
		s.NodeLimit = o.MasterNodeLimit
	}

	return s
}
