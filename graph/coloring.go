// SPDX-License-Identifier: MIT
// Package: cgcolor/graph
//
// coloring.go - coloring checks and the greedy upper bound.
//
// A coloring is a slice c of length N() where c[v-1] >= 1 is the color of
// vertex v. Colors need not be contiguous.

package graph

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidColoring reports a coloring that is the wrong length, uses a
// color < 1, or gives two adjacent vertices the same color.
var ErrInvalidColoring = errors.New("graph: invalid coloring")

// ValidateColoring checks that colors is a proper coloring of g.
func (g *Graph) ValidateColoring(colors []int) error {
	if len(colors) != g.n {
		return fmt.Errorf("ValidateColoring: len=%d, want %d: %w", len(colors), g.n, ErrInvalidColoring)
	}
	for v, c := range colors {
		if c < 1 {
			return fmt.Errorf("ValidateColoring: vertex %d has color %d: %w", v+1, c, ErrInvalidColoring)
		}
	}
	for _, e := range g.edges {
		if colors[e.U-1] == colors[e.V-1] {
			return fmt.Errorf("ValidateColoring: edge %s shares color %d: %w", e, colors[e.U-1], ErrInvalidColoring)
		}
	}

	return nil
}

// ColorCount returns the number of distinct colors used.
func ColorCount(colors []int) int {
	seen := make(map[int]struct{}, len(colors))
	for _, c := range colors {
		seen[c] = struct{}{}
	}

	return len(seen)
}

// GreedyColoring colors vertices in order of decreasing degree (ties by
// vertex number), each with the smallest color unused by its neighbors.
// The result is a proper coloring with at most maxDegree+1 colors.
// Complexity: O(n log n + m).
func (g *Graph) GreedyColoring() []int {
	order := make([]int, g.n)
	for i := range order {
		order[i] = i + 1
	}
	sort.SliceStable(order, func(a, b int) bool {
		return len(g.adj[order[a]]) > len(g.adj[order[b]])
	})

	colors := make([]int, g.n)
	mark := make([]int, g.n+2) // mark[c] == v means color c is taken around v
	for _, v := range order {
		for _, u := range g.adj[v] {
			if c := colors[u-1]; c > 0 {
				mark[c] = v
			}
		}
		c := 1
		for mark[c] == v {
			c++
		}
		colors[v-1] = c
	}

	return colors
}

// Classes groups vertices by color, ordered by color value. Vertices inside a
// class are ascending.
func Classes(colors []int) [][]int {
	byColor := make(map[int][]int)
	keys := make([]int, 0)
	for i, c := range colors {
		if _, ok := byColor[c]; !ok {
			keys = append(keys, c)
		}
		byColor[c] = append(byColor[c], i+1)
	}
	sort.Ints(keys)
	out := make([][]int, 0, len(keys))
	for _, c := range keys {
		out = append(out, byColor[c])
	}

	return out
}
