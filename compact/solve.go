// SPDX-License-Identifier: MIT
// Package: cgcolor/compact
//
// solve.go - solving the assignment model and decoding the coloring.

package compact

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

// Options configures Solve.
type Options struct {
	// Relaxation solves only the continuous relaxation.
	Relaxation bool
	Solver     lp.Options
	// Logger receives progress; nil discards it.
	Logger logrus.FieldLogger
}

// Result is the outcome of Solve.
type Result struct {
	// K is the number of colors the model offered.
	K         int
	Objective float64
	Status    lp.Status
	Nodes     int
	// Colors and Coloring are set only for integer solves; colors are
	// renumbered densely 1..Colors in order of first use.
	Colors   int
	Coloring []int
}

// Solve colors g one connected component at a time, each with its own
// model. Colors and Objective are the maxima over the components, Nodes the
// sum, and K the largest palette any component was offered.
func Solve(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("compact: nil graph: %w", graph.ErrMalformedInstance)
	}
	comps := g.Components()
	if len(comps) == 1 {
		return solveOne(ctx, g, opts)
	}

	total := &Result{Status: lp.Optimal}
	if !opts.Relaxation {
		total.Coloring = make([]int, g.N())
	}
	for _, comp := range comps {
		sub, orig, err := g.Induced(comp)
		if err != nil {
			return nil, err
		}
		res, err := solveOne(ctx, sub, opts)
		if err != nil {
			return nil, err
		}
		if res.K > total.K {
			total.K = res.K
		}
		if res.Objective > total.Objective {
			total.Objective = res.Objective
		}
		if res.Status != lp.Optimal {
			total.Status = res.Status
		}
		total.Nodes += res.Nodes
		for i, c := range res.Coloring {
			total.Coloring[orig[i]-1] = c
		}
	}
	if total.Coloring != nil {
		total.Colors = graph.ColorCount(total.Coloring)
	}

	return total, nil
}

func solveOne(ctx context.Context, g *graph.Graph, opts Options) (*Result, error) {
	m, err := NewModel(g)
	if err != nil {
		return nil, err
	}
	defer m.Close()

	return m.Solve(ctx, opts)
}

// Solve runs the model under opts.
func (m *Model) Solve(ctx context.Context, opts Options) (*Result, error) {
	log := opts.Logger
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}
	if opts.Solver.Logger == nil {
		opts.Solver.Logger = log
	}
	log = log.WithFields(logrus.Fields{"n": m.g.N(), "k": m.k, "relaxation": opts.Relaxation})

	res := &Result{K: m.k}
	if opts.Relaxation {
		rel, err := lp.SolveRelaxation(ctx, m.prob, opts.Solver)
		if err != nil {
			return nil, fmt.Errorf("compact relaxation: %w", err)
		}
		res.Objective, res.Status = rel.Objective, rel.Status
		log.WithField("objective", rel.Objective).Info("compact relaxation done")

		return res, nil
	}

	sol, err := lp.SolveInteger(ctx, m.prob, opts.Solver)
	if err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}
	res.Objective, res.Status, res.Nodes = sol.Objective, sol.Status, sol.Nodes
	if sol.Status != lp.Optimal && sol.Status != lp.Feasible {
		return nil, fmt.Errorf("compact: solve ended %v: %w", sol.Status, lp.ErrNumerical)
	}
	if res.Coloring, err = m.decode(sol.Values); err != nil {
		return nil, err
	}
	res.Colors = graph.ColorCount(res.Coloring)
	log.WithFields(logrus.Fields{"colors": res.Colors, "nodes": res.Nodes}).Info("compact coloring done")

	return res, nil
}

func (m *Model) decode(values []float64) ([]int, error) {
	coloring := make([]int, m.g.N())
	renum := make(map[int]int, m.k)
	for i := 1; i <= m.g.N(); i++ {
		for k := 1; k <= m.k; k++ {
			if values[m.x(i, k)] <= 0.5 {
				continue
			}
			c, ok := renum[k]
			if !ok {
				c = len(renum) + 1
				renum[k] = c
			}
			coloring[i-1] = c
			break
		}
	}
	if err := m.g.ValidateColoring(coloring); err != nil {
		return nil, fmt.Errorf("compact: %w", err)
	}

	return coloring, nil
}
