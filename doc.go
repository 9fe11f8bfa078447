// Package cgcolor colors the vertices of an undirected graph with a
// column-generation heuristic: a set-cover master over independent sets,
// priced by a maximum-weight independent set problem, and a final integral
// solve over the generated pool.
//
// Under the hood, everything is organized under these subpackages:
//
//	graph/   - immutable simple graph, instance loader, coloring checks, BFS
//	lp/      - LP/MIP facade: problem building, simplex relaxation with duals,
//	           branch and bound, CPLEX LP export (gonum backend)
//	colgen/  - master, pricing and the column-generation engine
//	compact/ - the assignment formulation, as a baseline on small graphs
//	builder/ - deterministic instance generators
//	report/  - text summaries and Graphviz DOT output
//	config/  - YAML run configuration
//	cmd/cgcolor - the command-line front end
//
// Quick example:
//
//	g, _ := graph.LoadFile("myciel4.txt")
//	res, err := colgen.Solve(ctx, g, colgen.DefaultOptions())
//	// res.Colors, res.LPValue, res.Coloring
//
// See each subpackage's doc.go for full API details.
package cgcolor
