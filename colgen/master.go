// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// master.go - the restricted master problem (set covering by independent sets):
//
//	minimize   sum_k lambda_k
//	subject to sum_{k : v in S_k} lambda_k >= 1   for every vertex v  (cover<v>)
//	           0 <= lambda_k <= 1, integral in the final solve        (lambda<k>)
//
// The pool starts with the n singletons {v}; column k of the LP is pool
// column k.

package colgen

import (
	"context"
	"fmt"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

// Master owns the master LP and the column pool it is built from.
type Master struct {
	g    *graph.Graph
	prob *lp.Problem
	pool *Pool
}

// MasterRelaxation is the continuous optimum of the master.
type MasterRelaxation struct {
	Objective float64
	// Duals holds one price per vertex: Duals[v-1] belongs to cover<v>.
	Duals []float64
	// Values holds one entry per pool column.
	Values []float64
}

var selectionSpec = lp.ColumnSpec{Bound: lp.Double, Lower: 0, Upper: 1, Objective: 1, Integral: true}

// NewMaster builds the master over g with the singleton pool. A failed build
// destroys the partial LP before returning.
func NewMaster(g *graph.Graph) (_ *Master, err error) {
	if g == nil {
		return nil, fmt.Errorf("NewMaster: nil graph: %w", ErrMalformedInstance)
	}
	n := g.N()
	m := &Master{g: g, prob: lp.NewProblem("coloring", lp.Minimize), pool: newPool(n)}
	defer func() {
		if err != nil {
			m.prob.Destroy()
		}
	}()

	if _, err = m.prob.AddRows(n, lp.Lower, 1, 0); err != nil {
		return nil, classify("master rows", err)
	}
	for v := 1; v <= n; v++ {
		if err = m.prob.SetRowName(v-1, fmt.Sprintf("cover%d", v)); err != nil {
			return nil, classify("master rows", err)
		}
	}
	for v := 1; v <= n; v++ {
		if _, err = m.AddColumn([]int{v}); err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Pool returns the column pool.
func (m *Master) Pool() *Pool { return m.pool }

// Problem exposes the underlying LP, for export.
func (m *Master) Problem() *lp.Problem { return m.prob }

// AddColumn appends an independent set as a new selection column and returns
// its id. Sets that are empty, out of range, dependent or already pooled are
// rejected and leave the master unchanged.
func (m *Master) AddColumn(vertices []int) (int, error) {
	sorted := sortedCopy(vertices)
	if len(sorted) == 0 {
		return 0, fmt.Errorf("AddColumn: empty set: %w", ErrNotIndependent)
	}
	if !m.g.IsIndependent(sorted) {
		return 0, fmt.Errorf("AddColumn: %v: %w", sorted, ErrNotIndependent)
	}
	if id, dup := m.pool.index[columnKey(sorted)]; dup {
		return id, fmt.Errorf("AddColumn: %v is column %d: %w", sorted, id, ErrDuplicateColumn)
	}

	rows := make([]int, len(sorted))
	vals := make([]float64, len(sorted))
	for i, v := range sorted {
		rows[i], vals[i] = v-1, 1
	}
	spec := selectionSpec
	spec.Name = fmt.Sprintf("lambda%d", m.pool.Len()+1)
	j, err := m.prob.AddColumn(spec, rows, vals)
	if err != nil {
		return 0, classify("AddColumn", err)
	}
	if id := m.pool.add(sorted); id != j {
		return 0, fmt.Errorf("AddColumn: pool id %d != lp column %d: %w", id, j, ErrSolverFailure)
	}

	return j, nil
}

// Relax solves the master relaxation. Anything but Optimal is a failure: the
// singleton pool keeps the master feasible and the objective is bounded by 0.
func (m *Master) Relax(ctx context.Context, opts lp.Options) (MasterRelaxation, error) {
	rel, err := lp.SolveRelaxation(ctx, m.prob, opts)
	if err != nil {
		return MasterRelaxation{}, classify("master relaxation", err)
	}
	if rel.Status != lp.Optimal {
		return MasterRelaxation{}, fmt.Errorf("master relaxation ended %v: %w", rel.Status, ErrSolverFailure)
	}

	return MasterRelaxation{Objective: rel.Objective, Duals: rel.Dual, Values: rel.Primal}, nil
}

// SolveInteger solves the master over the current pool with integral
// selection. Optimal and Feasible (limit reached with an incumbent) are
// accepted; anything else is a failure.
func (m *Master) SolveInteger(ctx context.Context, opts lp.Options) (lp.Solution, error) {
	sol, err := lp.SolveInteger(ctx, m.prob, opts)
	if err != nil {
		return lp.Solution{}, classify("integer master", err)
	}
	if sol.Status != lp.Optimal && sol.Status != lp.Feasible {
		return lp.Solution{}, fmt.Errorf("integer master ended %v: %w", sol.Status, ErrSolverFailure)
	}

	return sol, nil
}

// Close releases the LP.
func (m *Master) Close() { m.prob.Destroy() }
