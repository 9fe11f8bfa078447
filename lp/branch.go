// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// branch.go - SolveInteger: depth-first branch-and-bound over relaxations.
//
// Search policy:
//  1. Each node is the model with tightened column bounds; its relaxation is
//     solved without duals.
//  2. Prune when the relaxation is infeasible or cannot beat the incumbent.
//     When every costed column is integral with an integer cost, objective
//     values are integers and the bound is rounded before comparing.
//  3. Otherwise branch on the integral column whose value is most fractional
//     (lowest index on ties), exploring the up-branch first.
//  4. For pure-integer models nearest rounding of each relaxation point is
//     tried as a cheap incumbent.
//  5. Context cancellation aborts; time and node limits stop the search and
//     return the incumbent (Feasible) or TimeLimit when there is none.
//  6. Options.Start, when valid, seeds the incumbent before the root is
//     solved; Options.Cutoff prunes nodes that cannot beat a caller bound.
//
// All comparisons run in minimization sense: z = sense * objective.

package lp

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/sirupsen/logrus"
)

const methodSolveInteger = "SolveInteger"

// improveTol is the smallest objective gain accepted as an improvement.
const improveTol = 1e-9

type bbNode struct {
	lo, hi []float64
	depth  int
}

// bbEngine holds the search state of one SolveInteger call.
type bbEngine struct {
	ctx   context.Context
	p     *Problem
	opts  Options
	log   logrus.FieldLogger
	sense float64

	integral    []bool
	pureInteger bool
	intObj      bool

	useDeadline bool
	deadline    time.Time

	best     []float64
	bestZ    float64
	foundAny bool

	useCutoff    bool
	cutoffZ      float64
	cutoffPruned bool

	nodes   int
	limited bool
}

// SolveInteger solves p honoring integrality flags.
func SolveInteger(ctx context.Context, p *Problem, opts Options) (Solution, error) {
	if err := p.alive(); err != nil {
		return Solution{}, fmt.Errorf("%s: %w", methodSolveInteger, err)
	}
	opts = opts.normalize()
	e := newEngine(ctx, p, opts)
	sol, err := e.run()
	if err != nil {
		return sol, fmt.Errorf("%s: %w", methodSolveInteger, err)
	}

	return sol, nil
}

func newEngine(ctx context.Context, p *Problem, opts Options) *bbEngine {
	e := &bbEngine{
		ctx:         ctx,
		p:           p,
		opts:        opts,
		log:         opts.Logger.WithField("problem", p.name),
		sense:       1,
		integral:    make([]bool, len(p.cols)),
		pureInteger: true,
		intObj:      true,
		bestZ:       math.Inf(1),
	}
	if p.dir == Maximize {
		e.sense = -1
	}
	for j, c := range p.cols {
		e.integral[j] = c.spec.Integral
		if !c.spec.Integral {
			e.pureInteger = false
			if c.spec.Objective != 0 {
				e.intObj = false
			}
			continue
		}
		if c.spec.Objective != math.Trunc(c.spec.Objective) {
			e.intObj = false
		}
	}
	if opts.TimeLimit > 0 {
		e.useDeadline = true
		e.deadline = time.Now().Add(opts.TimeLimit)
	}
	if opts.UseCutoff {
		e.useCutoff = true
		e.cutoffZ = e.sense * opts.Cutoff
	}

	return e
}

func (e *bbEngine) run() (Solution, error) {
	// root box: integral columns get their bounds rounded inward
	lo, hi := e.p.columnIntervals()
	for j := range lo {
		if e.integral[j] {
			lo[j] = math.Ceil(lo[j] - e.opts.IntegralityTol)
			hi[j] = math.Floor(hi[j] + e.opts.IntegralityTol)
		}
	}
	e.seed(lo, hi)
	stack := []bbNode{{lo: lo, hi: hi}}

	for len(stack) > 0 {
		if err := e.ctx.Err(); err != nil {
			return Solution{Nodes: e.nodes}, err
		}
		if e.limitHit() {
			e.limited = true
			break
		}

		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		e.nodes++

		// Each node rebuilds its standard form: columns fixed by branching
		// turn into constants, so deeper nodes solve smaller systems.
		rel, err := relax(e.p, node.lo, node.hi, e.opts, false)
		if err != nil {
			return Solution{Nodes: e.nodes}, err
		}
		switch rel.Status {
		case Infeasible:
			continue
		case Unbounded:
			if e.nodes == 1 {
				return Solution{Status: Unbounded, Nodes: e.nodes}, nil
			}
			continue
		}

		z := e.sense * rel.Objective
		if e.prunable(z) {
			continue
		}

		j := e.branchColumn(rel.Primal)
		if j < 0 {
			e.record(e.snap(rel.Primal), z, node.depth)
			continue
		}
		if e.pureInteger {
			e.tryRounding(rel.Primal, node)
		}

		v := rel.Primal[j]
		down := bbNode{lo: node.lo, hi: clone(node.hi), depth: node.depth + 1}
		down.hi[j] = math.Floor(v)
		up := bbNode{lo: clone(node.lo), hi: node.hi, depth: node.depth + 1}
		up.lo[j] = math.Ceil(v)
		// LIFO: the up child is explored first
		stack = append(stack, down, up)
		e.log.WithFields(logrus.Fields{"node": e.nodes, "depth": node.depth, "col": j, "value": v}).Trace("branch")
	}

	sol := Solution{Nodes: e.nodes, LimitReached: e.limited, CutoffPruned: e.cutoffPruned}
	switch {
	case e.foundAny && e.limited:
		sol.Status = Feasible
	case e.foundAny:
		sol.Status = Optimal
	case e.limited:
		sol.Status = TimeLimit
		return sol, nil
	default:
		sol.Status = Infeasible
		return sol, nil
	}
	sol.Values = e.best
	sol.Objective = e.p.objective(e.best)
	e.log.WithFields(logrus.Fields{"status": sol.Status, "objective": sol.Objective, "nodes": e.nodes}).Debug("branch-and-bound done")

	return sol, nil
}

func (e *bbEngine) limitHit() bool {
	if e.opts.NodeLimit > 0 && e.nodes >= e.opts.NodeLimit {
		return true
	}

	return e.useDeadline && time.Now().After(e.deadline)
}

// seed records opts.Start as the first incumbent when it is a valid point
// of the root box.
func (e *bbEngine) seed(lo, hi []float64) {
	x := e.opts.Start
	if x == nil {
		return
	}
	if len(x) != len(e.p.cols) {
		e.log.WithField("len", len(x)).Debug("start point ignored: wrong length")
		return
	}
	y := make([]float64, len(x))
	for j, v := range x {
		if v < lo[j]-feasTol || v > hi[j]+feasTol {
			e.log.WithField("col", j).Debug("start point ignored: out of bounds")
			return
		}
		y[j] = v
		if e.integral[j] {
			if math.Abs(v-math.Round(v)) > e.opts.IntegralityTol {
				e.log.WithField("col", j).Debug("start point ignored: fractional")
				return
			}
			y[j] = math.Round(v)
		}
	}
	if !e.p.satisfies(y) {
		e.log.Debug("start point ignored: violates a row")
		return
	}
	e.record(y, e.sense*e.p.objective(y), 0)
}

// prunable reports whether a node with relaxation value z cannot improve
// on the incumbent or on the cutoff.
func (e *bbEngine) prunable(z float64) bool {
	if e.useCutoff && z >= e.cutoffZ-improveTol {
		e.cutoffPruned = true
		return true
	}
	if !e.foundAny {
		return false
	}
	if e.intObj {
		return math.Ceil(z-e.opts.IntegralityTol) >= e.bestZ-improveTol
	}

	return z >= e.bestZ-improveTol
}

// branchColumn returns the most fractional integral column, or -1.
func (e *bbEngine) branchColumn(x []float64) int {
	best, bestFrac := -1, 0.0
	for j, v := range x {
		if !e.integral[j] {
			continue
		}
		f := math.Abs(v - math.Round(v))
		if f > e.opts.IntegralityTol && f > bestFrac+1e-12 {
			best, bestFrac = j, f
		}
	}

	return best
}

// snap rounds integral columns that are within tolerance of an integer.
func (e *bbEngine) snap(x []float64) []float64 {
	out := clone(x)
	for j := range out {
		if e.integral[j] {
			out[j] = math.Round(out[j])
		}
	}

	return out
}

func (e *bbEngine) record(x []float64, z float64, depth int) {
	if e.foundAny && z >= e.bestZ-improveTol {
		return
	}
	e.best, e.bestZ, e.foundAny = x, z, true
	e.log.WithFields(logrus.Fields{"node": e.nodes, "depth": depth, "objective": e.sense * z}).Debug("new incumbent")
}

// tryRounding checks nearest rounding and then floor rounding of x inside the
// node bounds against every row.
func (e *bbEngine) tryRounding(x []float64, node bbNode) {
	for _, round := range []func(float64) float64{math.Round, math.Floor} {
		y := make([]float64, len(x))
		for j, v := range x {
			y[j] = math.Max(node.lo[j], math.Min(node.hi[j], round(v+e.opts.IntegralityTol*sign(v))))
		}
		if !e.p.satisfies(y) {
			continue
		}
		e.record(y, e.sense*e.p.objective(y), node.depth)
	}
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}

	return 1
}

// satisfies checks every row of p at x.
func (p *Problem) satisfies(x []float64) bool {
	act := make([]float64, len(p.rows))
	for j, c := range p.cols {
		for k, r := range c.rows {
			act[r] += c.vals[k] * x[j]
		}
	}
	for i, r := range p.rows {
		lo, up, _ := interval(r.bound, r.lo, r.up)
		if act[i] < lo-feasTol || act[i] > up+feasTol {
			return false
		}
	}

	return true
}

func clone(a []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)

	return out
}
