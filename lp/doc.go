// Package lp is a small pure-Go LP/MIP facade in the style of the classic
// solver callable libraries: build a Problem row by row and column by column,
// then solve its continuous relaxation or the integer program.
//
// Relaxations are solved with the dense simplex of
// gonum.org/v1/gonum/optimize/convex/lp after a conversion to standard form
// (see standard.go). Row duals come from an explicit solve of the dual
// program. Integer programs use a depth-first branch-and-bound engine with
// time and node limits and context cancellation. A caller that already knows
// a good point passes it as Options.Start; one that only needs to know
// whether some point beats a threshold passes Options.Cutoff.
//
// The facade targets models of modest size: every simplex works on dense
// matrices, capped by Options.MaxDenseCells.
//
// Typical use:
//
//	p := lp.NewProblem("demo", lp.Maximize)
//	r, _ := p.AddRows(1, lp.Upper, 0, 4)
//	x, _ := p.AddColumns(2, lp.ColumnSpec{Bound: lp.Lower, Objective: 1, Integral: true})
//	_ = p.SetMatrixEntries([]lp.Nonzero{{Row: r, Col: x, Val: 2}, {Row: r, Col: x + 1, Val: 3}})
//	sol, err := lp.SolveInteger(ctx, p, lp.DefaultOptions())
package lp
