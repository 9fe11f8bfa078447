// Package colgen colors the vertices of a graph by column generation.
//
// The chromatic number is cast as a set cover of the vertices by independent
// sets (the master). Only a restricted pool of sets is kept explicitly.
// Starting from the n singletons, each round:
//
//  1. solves the master relaxation and reads one dual price per vertex;
//  2. prices: finds the independent set of largest total dual weight z_pric,
//     trying a greedy set first and solving the pricing MIP only when the
//     greedy set does not price out;
//  3. adds that set to the pool when its reduced cost 1 - z_pric < -Epsilon.
//
// When no set prices out, the relaxation value is the fractional chromatic
// number of the pool and a lower bound on the chromatic number. The master
// is then solved once with integral selection over the final pool, which
// yields the (heuristic) coloring.
//
// Usage:
//
//	res, err := colgen.SolveReader(ctx, f, colgen.DefaultOptions())
//	if errors.Is(err, colgen.ErrMalformedInstance) { ... }
//	fmt.Println(res.Colors, res.LPValue)
//
// Engine exposes the loop step by step through Hooks (state entries, solver
// invocations, per-round statistics and the models about to be solved) for
// tracing and LP export.
package colgen
