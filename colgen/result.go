// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// result.go - turning the integer master solution into a coloring.

package colgen

import (
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/cgcolor/lp"
)

// Result is the outcome of a completed run.
type Result struct {
	// Colors is the number of colors in Coloring.
	Colors int
	// Objective is the integer master objective (selected columns).
	Objective float64
	// LPValue is the last master relaxation optimum.
	LPValue float64
	// LowerBound is the best proven lower bound on the chromatic number; 0
	// when no pricing round was solved to optimality.
	LowerBound float64
	// Coloring[v-1] is the color (1..Colors) of vertex v.
	Coloring []int
	// Classes[c-1] lists the vertices colored c, ascending.
	Classes [][]int
	// ClassColumns[c-1] is the pool column that defines color c.
	ClassColumns []int
	// Selected lists the pool columns chosen by the integer master, ascending.
	Selected []int
	// Columns is the final pool.
	Columns []Column

	Iterations       int
	ColumnsGenerated int
	// HeuristicColumns counts generated columns priced without a solver call.
	HeuristicColumns  int
	SolverCalls       int
	Converged         bool
	Status            lp.Status
	Elapsed           time.Duration
	GenerationElapsed time.Duration
	History           []IterationStat
}

// LowerBoundColors rounds LowerBound up to a color count, discounting
// floating-point noise.
func (r *Result) LowerBoundColors() int {
	return int(math.Ceil(r.LowerBound - 1e-6))
}

// buildResult assigns each vertex the lowest-id selected column containing
// it and numbers the columns that end up used as colors 1..k.
func (e *Engine) buildResult(sol lp.Solution) (*Result, error) {
	pool := e.master.Pool()
	n := e.g.N()
	res := &Result{
		Objective: sol.Objective,
		Status:    sol.Status,
		Coloring:  make([]int, n),
		Columns:   pool.Columns(),
	}
	for id, v := range sol.Values {
		if v > 0.5 {
			res.Selected = append(res.Selected, id)
		}
	}

	owner := make([]int, n)
	for i := range owner {
		owner[i] = -1
	}
	for _, id := range res.Selected {
		for _, v := range pool.At(id).Vertices {
			if owner[v-1] < 0 {
				owner[v-1] = id
			}
		}
	}

	color := make(map[int]int, len(res.Selected))
	for _, id := range res.Selected {
		used := false
		for _, o := range owner {
			if o == id {
				used = true
				break
			}
		}
		if used {
			color[id] = len(res.ClassColumns) + 1
			res.ClassColumns = append(res.ClassColumns, id)
		}
	}
	res.Colors = len(res.ClassColumns)
	res.Classes = make([][]int, res.Colors)
	for v := 1; v <= n; v++ {
		id := owner[v-1]
		if id < 0 {
			return nil, fmt.Errorf("integer master leaves vertex %d uncovered: %w", v, ErrSolverFailure)
		}
		c := color[id]
		res.Coloring[v-1] = c
		res.Classes[c-1] = append(res.Classes[c-1], v)
	}
	if err := e.g.ValidateColoring(res.Coloring); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSolverFailure, err)
	}

	return res, nil
}
