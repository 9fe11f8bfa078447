// SPDX-License-Identifier: MIT
// Package: cgcolor/lp
//
// simplex.go - continuous solves on top of gonum's dense simplex.
//
// The backend returns a primal optimum only. Row duals are recovered by
// solving the dual of the standard form,
//
//	maximize b'y  subject to  A'y <= c,  y free,
//
// written in standard form itself as A'y+ - A'y- + w = c. Strong duality makes
// the optimal y the sensitivity of the optimum to b, which is mapped back to
// model rows through the row negations and the objective sense.

package lp

import (
	"context"
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	golp "gonum.org/v1/gonum/optimize/convex/lp"
)

const methodSolveRelaxation = "SolveRelaxation"

// SolveRelaxation solves p with every integrality flag ignored and returns
// primal values and row duals. Infeasible and unbounded models are reported
// through Relaxation.Status with a nil error.
func SolveRelaxation(ctx context.Context, p *Problem, opts Options) (Relaxation, error) {
	if err := p.alive(); err != nil {
		return Relaxation{}, fmt.Errorf("%s: %w", methodSolveRelaxation, err)
	}
	if err := ctx.Err(); err != nil {
		return Relaxation{}, fmt.Errorf("%s: %w", methodSolveRelaxation, err)
	}
	opts = opts.normalize()
	lo, hi := p.columnIntervals()
	rel, err := relax(p, lo, hi, opts, true)
	if err != nil {
		return Relaxation{}, fmt.Errorf("%s: %w", methodSolveRelaxation, err)
	}

	return rel, nil
}

// relax solves p under column bounds lo/hi; duals are computed on request.
func relax(p *Problem, lo, hi []float64, opts Options, wantDuals bool) (Relaxation, error) {
	// conversion alone may settle infeasible or unbounded models
	sf, st := buildStandard(p, lo, hi)
	if st != Undefined {
		return Relaxation{Status: st}, nil
	}

	// with no row left every kept column sits at zero
	z := make([]float64, sf.nKeep)
	if len(sf.rows) > 0 {
		a, b, c, err := sf.dense(opts.MaxDenseCells)
		if err != nil {
			return Relaxation{}, err
		}
		z, st, err = runSimplex(c, a, b, opts.Tolerance)
		if err != nil {
			return Relaxation{}, fmt.Errorf("primal: %w", err)
		}
		if st != Optimal {
			return Relaxation{Status: st}, nil
		}
	}

	x := sf.primal(z)
	rel := Relaxation{Status: Optimal, Objective: p.objective(x), Primal: x}
	if wantDuals {
		y, err := sf.duals(opts)
		if err != nil {
			return Relaxation{}, fmt.Errorf("dual: %w", err)
		}
		rel.Dual = sf.rowDuals(y, len(p.rows))
	}

	return rel, nil
}

func (p *Problem) objective(x []float64) float64 {
	var z float64
	for j, c := range p.cols {
		z += c.spec.Objective * x[j]
	}

	return z
}

// duals solves the dual of the standard form and returns y, one value per
// standard row.
func (sf *stdForm) duals(opts Options) ([]float64, error) {
	m, n := len(sf.rows), sf.nKeep
	if m == 0 {
		return nil, nil
	}
	width := 2*m + n
	if n*width > opts.MaxDenseCells {
		return nil, fmt.Errorf("dual %dx%d exceeds %d cells: %w", n, width, opts.MaxDenseCells, ErrResourceExhausted)
	}

	// Dense columns: y+ (0..m-1), y- (m..2m-1), then one slack w per primal
	// column. Row d of the system is the dual constraint of primal column d.
	data := make([]float64, n*width)
	rhs := make([]float64, n)
	for k, cost := range sf.cost {
		if d := sf.keep[k]; d >= 0 {
			rhs[d] = cost
		}
	}
	for i, r := range sf.rows {
		for _, t := range r.terms {
			d := sf.keep[t.col]
			data[d*width+i] += t.val
			data[d*width+m+i] -= t.val
		}
	}
	for d := 0; d < n; d++ {
		data[d*width+2*m+d] = 1
		if rhs[d] < 0 {
			rhs[d] = -rhs[d]
			for k := 0; k < width; k++ {
				data[d*width+k] = -data[d*width+k]
			}
		}
	}

	// maximize b'y is minimize -b'y+ + b'y-; bound rows carry the penalty
	cost := make([]float64, width)
	for i, r := range sf.rows {
		b := r.rhs
		if r.origin < 0 {
			b += opts.DualBoundPenalty
		}
		cost[i] = -b
		cost[m+i] = b
	}

	v, st, err := runSimplex(cost, mat.NewDense(n, width, data), rhs, opts.Tolerance)
	if err != nil {
		return nil, err
	}
	if st != Optimal {
		return nil, fmt.Errorf("dual solve ended %v: %w", st, ErrNumerical)
	}
	y := make([]float64, m)
	for i := range y {
		y[i] = v[i] - v[m+i]
	}

	return y, nil
}

// rowDuals folds standard-row duals into model-row duals.
func (sf *stdForm) rowDuals(y []float64, rows int) []float64 {
	out := make([]float64, rows)
	for i, r := range sf.rows {
		if r.origin < 0 || y == nil {
			continue
		}
		out[r.origin] += sf.sense * r.flip * y[i]
	}

	return out
}

// runSimplex calls the backend, turning its infeasible and unbounded errors
// into statuses and any other failure or panic into ErrNumerical.
func runSimplex(c []float64, a *mat.Dense, b []float64, tol float64) (x []float64, st Status, err error) {
	if m, n := a.Dims(); m > n {
		return nil, Undefined, fmt.Errorf("%d equality rows over %d columns: %w", m, n, ErrNumerical)
	}
	defer func() {
		if r := recover(); r != nil {
			x, st, err = nil, Undefined, fmt.Errorf("simplex panic: %v: %w", r, ErrNumerical)
		}
	}()

	_, x, err = golp.Simplex(c, a, b, tol, nil)
	switch {
	case err == nil:
		return x, Optimal, nil
	case errors.Is(err, golp.ErrInfeasible):
		return nil, Infeasible, nil
	case errors.Is(err, golp.ErrUnbounded):
		return nil, Unbounded, nil
	default:
		return nil, Undefined, fmt.Errorf("simplex: %v: %w", err, ErrNumerical)
	}
}
