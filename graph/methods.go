// SPDX-License-Identifier: MIT
// Package: cgcolor/graph
//
// methods.go - read-only queries over Graph.

package graph

import "sort"

// N returns the number of vertices.
func (g *Graph) N() int { return g.n }

// M returns the number of distinct edges.
func (g *Graph) M() int { return len(g.edges) }

// DeclaredEdges returns the edge count from the instance header. It differs
// from M only when the header counted every edge twice.
func (g *Graph) DeclaredEdges() int { return g.declared }

// Edges returns a copy of the edge list in insertion order, each with U < V.
func (g *Graph) Edges() []Edge {
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Adjacent reports whether u and v share an edge. Out-of-range vertices are
// never adjacent.
func (g *Graph) Adjacent(u, v int) bool {
	if u == v {
		return false
	}
	_, ok := g.index[Edge{U: u, V: v}.canonical()]

	return ok
}

// Neighbors returns the sorted neighbors of v, or nil when v is out of range.
// The returned slice must not be modified.
func (g *Graph) Neighbors(v int) []int {
	if v < 1 || v > g.n {
		return nil
	}

	return g.adj[v]
}

// Degree returns len(Neighbors(v)).
func (g *Graph) Degree(v int) int { return len(g.Neighbors(v)) }

// IsIndependent reports whether vertices is a set of distinct in-range
// vertices with no edge between any two of them.
// Complexity: O(k²) for k vertices.
func (g *Graph) IsIndependent(vertices []int) bool {
	seen := make(map[int]struct{}, len(vertices))
	for i, u := range vertices {
		if u < 1 || u > g.n {
			return false
		}
		if _, dup := seen[u]; dup {
			return false
		}
		seen[u] = struct{}{}
		for _, v := range vertices[i+1:] {
			if g.Adjacent(u, v) {
				return false
			}
		}
	}

	return true
}

func sortInts(a []int) { sort.Ints(a) }
