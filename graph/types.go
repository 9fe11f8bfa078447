// SPDX-License-Identifier: MIT
// Package: cgcolor/graph
//
// types.go - the immutable undirected Graph consumed by the coloring solvers.
//
// Contract:
//   - Vertices are the integers 1..n (the instance file numbering).
//   - Edges are simple and undirected; each is stored once with U < V.
//   - Adjacency is symmetric: Adjacent(u,v) == Adjacent(v,u).
//   - A Graph is read-only after construction; it is safe for concurrent readers.
//
// Complexity:
//   - Adjacent: O(1) (hash lookup); Neighbors/Degree: O(1) slice access.
//   - Memory: O(n + m).

package graph

import (
	"errors"
	"fmt"
)

// ErrMalformedInstance is the class of every structural defect in an instance:
// out-of-range endpoints, self-loops, edge-count mismatches, or unparsable lines.
// Callers branch with errors.Is(err, ErrMalformedInstance).
var ErrMalformedInstance = errors.New("graph: malformed instance")

// InstanceError reports where an instance was rejected. Line is 1-based and
// 0 when the defect is not tied to a single input line.
type InstanceError struct {
	Line   int
	Reason string
}

// Error implements error.
func (e *InstanceError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("graph: malformed instance: line %d: %s", e.Line, e.Reason)
	}

	return fmt.Sprintf("graph: malformed instance: %s", e.Reason)
}

// Unwrap exposes ErrMalformedInstance to errors.Is.
func (e *InstanceError) Unwrap() error { return ErrMalformedInstance }

func malformed(line int, format string, args ...interface{}) error {
	return &InstanceError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// Edge is an undirected pair of 1-based vertex numbers.
type Edge struct {
	U, V int
}

// canonical returns the edge with U < V.
func (e Edge) canonical() Edge {
	if e.U > e.V {
		return Edge{U: e.V, V: e.U}
	}

	return e
}

// String renders the edge the way DOT and the instance format do.
func (e Edge) String() string { return fmt.Sprintf("%d -- %d", e.U, e.V) }

// Graph is a simple undirected graph on vertices 1..n.
type Graph struct {
	n        int
	declared int // edge count as written in the header

	edges []Edge       // canonical, insertion order
	index map[Edge]int // canonical edge -> position in edges
	adj   [][]int      // adj[v] sorted ascending; adj[0] unused
}

// New builds a Graph over vertices 1..n from an edge list.
// Duplicate edges (in either orientation) collapse into one.
// Endpoints outside [1,n] and self-loops yield ErrMalformedInstance.
func New(n int, edges []Edge) (*Graph, error) {
	if n < 1 {
		return nil, malformed(0, "vertex count n=%d < 1", n)
	}
	g := newGraph(n)
	for _, e := range edges {
		if err := g.addEdge(e, 0); err != nil {
			return nil, err
		}
	}
	g.declared = len(g.edges)
	g.finish()

	return g, nil
}

func newGraph(n int) *Graph {
	return &Graph{
		n:     n,
		index: make(map[Edge]int),
		adj:   make([][]int, n+1),
	}
}

// addEdge inserts e unless it is already present. line is used for diagnostics.
func (g *Graph) addEdge(e Edge, line int) error {
	if e.U < 1 || e.U > g.n || e.V < 1 || e.V > g.n {
		return malformed(line, "edge (%d,%d) has an endpoint outside [1,%d]", e.U, e.V, g.n)
	}
	if e.U == e.V {
		return malformed(line, "self-loop on vertex %d", e.U)
	}
	c := e.canonical()
	if _, dup := g.index[c]; dup {
		return nil
	}
	g.index[c] = len(g.edges)
	g.edges = append(g.edges, c)
	g.adj[c.U] = append(g.adj[c.U], c.V)
	g.adj[c.V] = append(g.adj[c.V], c.U)

	return nil
}

// finish sorts the neighbor lists once all edges are in.
func (g *Graph) finish() {
	for v := 1; v <= g.n; v++ {
		sortInts(g.adj[v])
	}
}
