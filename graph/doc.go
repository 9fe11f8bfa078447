// Package graph holds the read-only undirected graph that the coloring
// solvers work on, its text instance format, and small coloring utilities.
//
// Vertices are numbered 1..n exactly as in the instance file. Every defect in
// an instance surfaces as an error matching ErrMalformedInstance; the concrete
// *InstanceError carries the offending line.
//
//	g, err := graph.LoadFile("myciel3.col")
//	if errors.Is(err, graph.ErrMalformedInstance) {
//		// reject input
//	}
//	ub := graph.ColorCount(g.GreedyColoring())
package graph
