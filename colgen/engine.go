// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// engine.go - the column-generation loop.
//
// Each round solves the master relaxation, prices its duals with a
// maximum-weight independent set, and adds the set when its reduced cost
// 1 - z_pric is below -Epsilon. Pricing tries a greedy set first and falls
// back to the MIP, so convergence is always proven by an exact solve.
// Generation stops when:
//   - no column prices out (converged);
//   - the priced set is already pooled (numerical noise; logged);
//   - the pricing time limit passes without any incumbent;
//   - MaxIterations rounds have run.
//
// The master is then solved once more with integral selection, over the
// final pool, and every vertex is colored by the lowest-id selected column
// that contains it.

package colgen

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

// Engine runs column generation on one graph. It is single-use per Run call
// and not safe for concurrent use.
type Engine struct {
	g       *graph.Graph
	opts    Options
	log     logrus.FieldLogger
	master  *Master
	pricing *Pricing
	rc      RunContext
	closed  bool
}

// New builds the master and pricing models for g.
func New(g *graph.Graph, opts Options) (*Engine, error) {
	if g == nil {
		return nil, fmt.Errorf("colgen: nil graph: %w", ErrMalformedInstance)
	}
	opts = opts.normalize()
	master, err := NewMaster(g)
	if err != nil {
		return nil, err
	}
	pricing, err := NewPricing(g)
	if err != nil {
		master.Close()
		return nil, err
	}

	return &Engine{
		g:       g,
		opts:    opts,
		log:     opts.Logger.WithFields(logrus.Fields{"n": g.N(), "m": g.M()}),
		master:  master,
		pricing: pricing,
	}, nil
}

// Master returns the master problem, whose pool grows during Run.
func (e *Engine) Master() *Master { return e.master }

// RunContext returns the counters of the current or last run.
func (e *Engine) RunContext() *RunContext { return &e.rc }

// Close destroys both models. It is idempotent.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	e.master.Close()
	e.pricing.Close()
}

// Solve builds an engine for g, runs it and releases it.
func Solve(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	e, err := New(g, opts)
	if err != nil {
		return nil, err
	}
	defer e.Close()

	return e.Run(ctx)
}

// SolveReader loads an instance from r and solves it. A malformed instance
// is rejected before any model is built.
func SolveReader(ctx context.Context, r io.Reader, opts Options) (*Result, error) {
	g, err := graph.Load(r)
	if err != nil {
		return nil, err
	}

	return Solve(ctx, g, opts)
}

func (e *Engine) enter(s State) {
	e.rc.State = s
	if e.opts.Hooks.OnState != nil {
		e.opts.Hooks.OnState(s)
	}
}

func (e *Engine) beforeSolve(kind SolveKind, name string, p *lp.Problem) {
	e.rc.SolverCalls++
	if e.opts.Hooks.OnModel != nil {
		e.opts.Hooks.OnModel(name, p)
	}
	if e.opts.Hooks.OnSolve != nil {
		e.opts.Hooks.OnSolve(kind)
	}
}

// Run executes the loop and the final integer solve.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if e.closed {
		return nil, fmt.Errorf("colgen: Run after Close: %w", lp.ErrDestroyed)
	}
	start := time.Now()
	e.rc.reset(start)
	e.enter(StateInit)

	var (
		history    []IterationStat
		converged  bool
		lpValue    float64
		lowerBound float64
	)

generation:
	for {
		e.enter(StateSolveMaster)
		e.rc.Iterations++
		it := e.rc.Iterations
		e.beforeSolve(SolveMasterRelaxation, fmt.Sprintf("coloring%d", it), e.master.Problem())
		rel, err := e.master.Relax(ctx, e.opts.masterRelaxOptions())
		if err != nil {
			return nil, err
		}
		lpValue = rel.Objective
		e.rc.MasterObjective = rel.Objective
		e.rc.Duals = rel.Duals

		e.enter(StatePrice)
		pr, err := e.price(ctx, it, rel.Duals)
		if err != nil {
			return nil, err
		}
		e.rc.Priced = pr.Vertices

		stat := IterationStat{
			Iteration:        it,
			MasterObjective:  rel.Objective,
			PricingObjective: pr.Value,
			ReducedCost:      1 - pr.Value,
			Column:           -1,
			Vertices:         pr.Vertices,
			Heuristic:        pr.Heuristic,
			Elapsed:          time.Since(start),
		}
		fields := logrus.Fields{
			"iteration":    it,
			"z":            rel.Objective,
			"z_pric":       pr.Value,
			"reduced_cost": stat.ReducedCost,
			"heuristic":    pr.Heuristic,
		}

		if pr.Status == lp.TimeLimit {
			e.log.WithFields(fields).Warn("pricing hit its time limit without a column; stopping generation")
			e.record(&history, stat)
			break generation
		}
		if pr.Status == lp.Optimal {
			// Farley: z_RMP / max(1, z_pric) bounds the chromatic number from below.
			lowerBound = math.Max(lowerBound, rel.Objective/math.Max(1, pr.Bound))
		}
		if !(stat.ReducedCost < -e.opts.Epsilon) {
			converged = pr.Status == lp.Optimal
			e.log.WithFields(fields).Debug("no improving column")
			e.record(&history, stat)
			break generation
		}
		if !e.g.IsIndependent(pr.Vertices) {
			return nil, fmt.Errorf("pricing returned %v: %w: %w", pr.Vertices, ErrSolverFailure, ErrNotIndependent)
		}
		if e.opts.MaxIterations > 0 && it >= e.opts.MaxIterations {
			e.log.WithFields(fields).Warn("iteration cap reached; stopping generation")
			e.record(&history, stat)
			break generation
		}

		e.enter(StateAddColumn)
		id, err := e.master.AddColumn(pr.Vertices)
		switch {
		case errors.Is(err, ErrDuplicateColumn):
			e.log.WithFields(fields).WithField("column", id).Warn("priced column already pooled; stopping generation")
			e.record(&history, stat)
			break generation
		case err != nil:
			return nil, err
		}
		e.rc.ColumnsGenerated++
		if pr.Heuristic {
			e.rc.HeuristicColumns++
		}
		stat.Column = id
		e.log.WithFields(fields).WithFields(logrus.Fields{"column": id, "vertices": pr.Vertices}).Debug("column added")
		e.record(&history, stat)
	}

	e.enter(StateTerminateGeneration)
	genElapsed := time.Since(start)
	if converged {
		lowerBound = math.Max(lowerBound, lpValue)
	}

	e.enter(StateSolveIntegerMaster)
	e.beforeSolve(SolveMasterInteger, "pmr-relax", e.master.Problem())
	sol, err := e.master.SolveInteger(ctx, e.opts.masterIntegerOptions())
	if err != nil {
		return nil, err
	}
	if sol.Status == lp.Feasible {
		e.log.WithField("nodes", sol.Nodes).Warn("integer master stopped at a limit; coloring is the best found")
	}

	res, err := e.buildResult(sol)
	if err != nil {
		return nil, err
	}
	res.LPValue = lpValue
	res.LowerBound = lowerBound
	res.Converged = converged
	res.History = history
	res.Iterations = e.rc.Iterations
	res.ColumnsGenerated = e.rc.ColumnsGenerated
	res.HeuristicColumns = e.rc.HeuristicColumns
	res.SolverCalls = e.rc.SolverCalls
	res.GenerationElapsed = genElapsed
	res.Elapsed = time.Since(start)

	e.enter(StateDone)
	e.log.WithFields(logrus.Fields{
		"colors":     res.Colors,
		"lp_bound":   res.LPValue,
		"iterations": res.Iterations,
		"colsgen":    res.ColumnsGenerated,
		"elapsed":    res.Elapsed,
	}).Info("coloring done")

	return res, nil
}

// price answers one pricing round. Outside ExactPricing the greedy set is
// tried first; only when it does not price out is the MIP solved, seeded
// with it.
func (e *Engine) price(ctx context.Context, it int, duals []float64) (PricingResult, error) {
	if err := e.pricing.SetDuals(duals); err != nil {
		return PricingResult{}, err
	}
	var start []float64
	if !e.opts.ExactPricing {
		gr := e.pricing.Greedy()
		if 1-gr.Value < -e.opts.Epsilon {
			return gr, nil
		}
		start = e.pricing.Point(gr.Vertices)
	}
	e.beforeSolve(SolvePricing, fmt.Sprintf("pricing%d", it), e.pricing.Problem())

	return e.pricing.Solve(ctx, e.opts.pricingOptions(start))
}

func (e *Engine) record(history *[]IterationStat, stat IterationStat) {
	*history = append(*history, stat)
	if e.opts.Hooks.OnIteration != nil {
		e.opts.Hooks.OnIteration(stat)
	}
}
