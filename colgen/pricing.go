// SPDX-License-Identifier: MIT
// Package: cgcolor/colgen
//
// pricing.go - the pricing subproblem, a maximum-weight independent set:
//
//	maximize   sum_v pi_v x_v
//	subject to sum_{v in C} x_v <= 1   for every clique C of the cover (clique<c>)
//	           x_v in {0,1}                                            (x<v>)
//
// The cliques form an edge clique cover of the graph: every edge lies inside
// at least one of them, so the integer points are exactly the independent
// sets. Grouping edges into cliques tightens the relaxation over one row per
// edge. The structure is built once; SetDuals only rewrites objective
// coefficients.
//
// Greedy is the heuristic side of pricing: a weighted minimum-degree greedy
// that is tried before the MIP and seeds the MIP incumbent when it fails.

package colgen

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/cgcolor/graph"
	"github.com/katalvlaran/cgcolor/lp"
)

// Pricing owns the pricing LP.
type Pricing struct {
	g       *graph.Graph
	prob    *lp.Problem
	cliques [][]int
	duals   []float64
}

// PricingResult is one pricing answer.
type PricingResult struct {
	// Value is the weight of Vertices under the current duals (z_pric).
	Value    float64
	Vertices []int
	// Bound is an upper bound on the maximum weight when Status is Optimal.
	// It equals Value unless a cutoff pruned the search, in which case it is
	// max(Value, cutoff).
	Bound float64
	// Status is Optimal, Feasible (time limit with incumbent, or a heuristic
	// answer) or TimeLimit (no incumbent; Value is 0 and Vertices nil).
	Status lp.Status
	Nodes  int
	// Heuristic marks an answer produced by Greedy without a solver call.
	Heuristic bool
}

// NewPricing builds the pricing model over g. A failed build destroys the
// partial LP before returning.
func NewPricing(g *graph.Graph) (_ *Pricing, err error) {
	if g == nil {
		return nil, fmt.Errorf("NewPricing: nil graph: %w", ErrMalformedInstance)
	}
	prob := lp.NewProblem("IS", lp.Maximize)
	defer func() {
		if err != nil {
			prob.Destroy()
		}
	}()

	for v := 1; v <= g.N(); v++ {
		spec := lp.ColumnSpec{
			Name:     fmt.Sprintf("x%d", v),
			Bound:    lp.Double,
			Lower:    0,
			Upper:    1,
			Integral: true,
		}
		if _, err = prob.AddColumns(1, spec); err != nil {
			return nil, classify("pricing columns", err)
		}
	}

	cliques := edgeCliqueCover(g)
	if len(cliques) > 0 {
		if _, err = prob.AddRows(len(cliques), lp.Upper, 0, 1); err != nil {
			return nil, classify("pricing rows", err)
		}
		var nz []lp.Nonzero
		for c, members := range cliques {
			if err = prob.SetRowName(c, fmt.Sprintf("clique%d", c+1)); err != nil {
				return nil, classify("pricing rows", err)
			}
			for _, v := range members {
				nz = append(nz, lp.Nonzero{Row: c, Col: v - 1, Val: 1})
			}
		}
		if err = prob.SetMatrixEntries(nz); err != nil {
			return nil, classify("pricing matrix", err)
		}
	}

	return &Pricing{g: g, prob: prob, cliques: cliques, duals: make([]float64, g.N())}, nil
}

// edgeCliqueCover groups the edges of g into cliques. Each uncovered edge,
// in insertion order, seeds a clique that is grown by the common neighbors
// of its members in ascending order.
func edgeCliqueCover(g *graph.Graph) [][]int {
	covered := make(map[graph.Edge]bool, g.M())
	var cliques [][]int
	for _, ed := range g.Edges() {
		if covered[ed] {
			continue
		}
		clique := []int{ed.U, ed.V}
		for _, w := range g.Neighbors(ed.U) {
			if w == ed.V {
				continue
			}
			joins := true
			for _, c := range clique[1:] {
				if !g.Adjacent(w, c) {
					joins = false
					break
				}
			}
			if joins {
				clique = append(clique, w)
			}
		}
		sort.Ints(clique)
		for i, u := range clique {
			for _, v := range clique[i+1:] {
				covered[graph.Edge{U: u, V: v}] = true
			}
		}
		cliques = append(cliques, clique)
	}

	return cliques
}

// Problem exposes the underlying LP, for export.
func (p *Pricing) Problem() *lp.Problem { return p.prob }

// Cliques returns the rows of the model as vertex lists, ascending.
func (p *Pricing) Cliques() [][]int { return p.cliques }

// SetDuals rebinds the objective to the vertex prices; duals[v-1] prices v.
func (p *Pricing) SetDuals(duals []float64) error {
	if len(duals) != p.g.N() {
		return fmt.Errorf("SetDuals: %d prices for %d vertices: %w", len(duals), p.g.N(), ErrSolverFailure)
	}
	for j, d := range duals {
		if err := p.prob.SetObjective(j, d); err != nil {
			return classify("SetDuals", err)
		}
	}
	copy(p.duals, duals)

	return nil
}

// Greedy returns a maximal independent set built from the current duals.
// Two orders are tried and the heavier set wins (the first on ties):
//  1. weighted minimum degree: repeatedly take the vertex maximizing
//     pi_v / (d_v + 1), d_v counted among vertices still available;
//  2. heaviest first.
//
// Ties go to the lower vertex. Vertices priced at exactly zero are added
// last, so the set is maximal among the nonnegatively priced vertices.
// Complexity: O(n²) per order.
func (p *Pricing) Greedy() PricingResult {
	best := p.greedyByRatio()
	if alt := p.greedyByWeight(); p.weight(alt) > p.weight(best)+1e-12 {
		best = alt
	}
	best = p.extend(best)

	return PricingResult{
		Value:     p.weight(best),
		Vertices:  best,
		Bound:     math.Inf(1),
		Status:    lp.Feasible,
		Heuristic: true,
	}
}

func (p *Pricing) greedyByRatio() []int {
	n := p.g.N()
	alive := make([]bool, n+1)
	deg := make([]int, n+1)
	for v := 1; v <= n; v++ {
		alive[v] = p.duals[v-1] > 0
	}
	for v := 1; v <= n; v++ {
		if !alive[v] {
			continue
		}
		for _, w := range p.g.Neighbors(v) {
			if alive[w] {
				deg[v]++
			}
		}
	}

	var set []int
	for {
		pick, bestScore := 0, 0.0
		for v := 1; v <= n; v++ {
			if !alive[v] {
				continue
			}
			score := p.duals[v-1] / float64(deg[v]+1)
			if pick == 0 || score > bestScore+1e-15 {
				pick, bestScore = v, score
			}
		}
		if pick == 0 {
			break
		}
		set = append(set, pick)
		// drop pick and its neighborhood, then refresh residual degrees
		removed := append([]int{pick}, p.g.Neighbors(pick)...)
		for _, u := range removed {
			if !alive[u] {
				continue
			}
			alive[u] = false
			for _, w := range p.g.Neighbors(u) {
				if alive[w] {
					deg[w]--
				}
			}
		}
	}
	sort.Ints(set)

	return set
}

func (p *Pricing) greedyByWeight() []int {
	n := p.g.N()
	order := make([]int, 0, n)
	for v := 1; v <= n; v++ {
		if p.duals[v-1] > 0 {
			order = append(order, v)
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return p.duals[order[i]-1] > p.duals[order[j]-1] })

	var set []int
	for _, v := range order {
		if p.fits(set, v) {
			set = append(set, v)
		}
	}
	sort.Ints(set)

	return set
}

// extend adds, in ascending order, every nonnegatively priced vertex that
// keeps set independent.
func (p *Pricing) extend(set []int) []int {
	out := append([]int(nil), set...)
	in := make(map[int]bool, len(set))
	for _, v := range set {
		in[v] = true
	}
	for v := 1; v <= p.g.N(); v++ {
		if !in[v] && p.duals[v-1] >= 0 && p.fits(out, v) {
			out = append(out, v)
			in[v] = true
		}
	}
	sort.Ints(out)

	return out
}

func (p *Pricing) fits(set []int, v int) bool {
	for _, u := range set {
		if p.g.Adjacent(u, v) {
			return false
		}
	}

	return true
}

func (p *Pricing) weight(set []int) float64 {
	w := 0.0
	for _, v := range set {
		w += p.duals[v-1]
	}

	return w
}

// Point returns the 0/1 column vector of vertices, usable as lp.Options.Start.
func (p *Pricing) Point(vertices []int) []float64 {
	x := make([]float64, p.g.N())
	for _, v := range vertices {
		x[v-1] = 1
	}

	return x
}

// Solve runs the integer pricing solve under opts (opts.TimeLimit is the
// pricing time limit; opts.Start and opts.Cutoff pass through).
func (p *Pricing) Solve(ctx context.Context, opts lp.Options) (PricingResult, error) {
	sol, err := lp.SolveInteger(ctx, p.prob, opts)
	if err != nil {
		return PricingResult{}, classify("pricing", err)
	}
	switch sol.Status {
	case lp.Optimal, lp.Feasible:
	case lp.Infeasible:
		if opts.UseCutoff && sol.CutoffPruned {
			// nothing beats the cutoff
			return PricingResult{Bound: opts.Cutoff, Status: lp.Optimal, Nodes: sol.Nodes}, nil
		}
		return PricingResult{}, fmt.Errorf("pricing ended %v: %w", sol.Status, ErrSolverFailure)
	case lp.TimeLimit:
		return PricingResult{Status: lp.TimeLimit, Nodes: sol.Nodes}, nil
	default:
		return PricingResult{}, fmt.Errorf("pricing ended %v: %w", sol.Status, ErrSolverFailure)
	}

	res := PricingResult{Value: sol.Objective, Bound: sol.Objective, Status: sol.Status, Nodes: sol.Nodes}
	if sol.CutoffPruned {
		res.Bound = math.Max(res.Value, opts.Cutoff)
	}
	for j, x := range sol.Values {
		if x > 0.5 {
			res.Vertices = append(res.Vertices, j+1)
		}
	}

	return res, nil
}

// Close releases the LP.
func (p *Pricing) Close() { p.prob.Destroy() }
