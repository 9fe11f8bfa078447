// SPDX-License-Identifier: MIT
// Package: cgcolor/graph
//
// traverse.go - breadth-first search, connected components and induced
// subgraphs.
//
// BFS explores vertices in increasing distance from the start; neighbors
// are enqueued in ascending order, so Order is deterministic.

package graph

import (
	"errors"
	"fmt"
)

// ErrVertexOutOfRange is returned for a vertex outside [1,n].
var ErrVertexOutOfRange = errors.New("graph: vertex out of range")

// BFSResult holds one traversal. Depth and Parent are indexed by vertex
// (index 0 unused); unreached vertices have Depth -1 and Parent 0.
type BFSResult struct {
	Order  []int
	Depth  []int
	Parent []int
}

// queueItem pairs a vertex with its BFS depth.
type queueItem struct {
	v, depth int
}

// BFS runs breadth-first search from start.
func (g *Graph) BFS(start int) (*BFSResult, error) {
	if start < 1 || start > g.n {
		return nil, fmt.Errorf("BFS: start %d: %w", start, ErrVertexOutOfRange)
	}
	res := &BFSResult{
		Order:  make([]int, 0, g.n),
		Depth:  make([]int, g.n+1),
		Parent: make([]int, g.n+1),
	}
	for v := range res.Depth {
		res.Depth[v] = -1
	}
	g.walk(start, res)

	return res, nil
}

// walk fills res with the component of start; vertices with Depth >= 0 are
// treated as already visited.
func (g *Graph) walk(start int, res *BFSResult) {
	queue := []queueItem{{v: start}}
	res.Depth[start] = 0
	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		res.Order = append(res.Order, item.v)
		for _, w := range g.adj[item.v] {
			if res.Depth[w] >= 0 {
				continue
			}
			res.Depth[w] = item.depth + 1
			res.Parent[w] = item.v
			queue = append(queue, queueItem{v: w, depth: item.depth + 1})
		}
	}
}

// Components returns the connected components, each sorted ascending and
// ordered by smallest vertex.
func (g *Graph) Components() [][]int {
	res := &BFSResult{Depth: make([]int, g.n+1), Parent: make([]int, g.n+1)}
	for v := range res.Depth {
		res.Depth[v] = -1
	}
	var comps [][]int
	for v := 1; v <= g.n; v++ {
		if res.Depth[v] >= 0 {
			continue
		}
		from := len(res.Order)
		g.walk(v, res)
		comp := append([]int(nil), res.Order[from:]...)
		sortInts(comp)
		comps = append(comps, comp)
	}

	return comps
}

// Induced returns the subgraph induced by vertices, renumbered 1..k in the
// given order, and the map back: orig[i-1] is the vertex that became i.
func (g *Graph) Induced(vertices []int) (*Graph, []int, error) {
	if len(vertices) == 0 {
		return nil, nil, malformed(0, "induced subgraph on no vertices")
	}
	local := make(map[int]int, len(vertices))
	for i, v := range vertices {
		if v < 1 || v > g.n {
			return nil, nil, fmt.Errorf("Induced: vertex %d: %w", v, ErrVertexOutOfRange)
		}
		if _, dup := local[v]; dup {
			return nil, nil, fmt.Errorf("Induced: vertex %d repeated: %w", v, ErrVertexOutOfRange)
		}
		local[v] = i + 1
	}

	sub := newGraph(len(vertices))
	for _, e := range g.edges {
		lu, okU := local[e.U]
		lv, okV := local[e.V]
		if okU && okV {
			// endpoints are in range and distinct by construction
			_ = sub.addEdge(Edge{U: lu, V: lv}, 0)
		}
	}
	sub.declared = len(sub.edges)
	sub.finish()

	return sub, append([]int(nil), vertices...), nil
}
