// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// api.go - thin public entry-point for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in order.
//   - Every constructor appends a fresh block of vertices, so composing several
//     constructors yields their disjoint union.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/cgcolor/graph"
)

// sketch accumulates vertices and edges before the immutable graph is built.
// Vertices are 1-based like graph.Graph.
type sketch struct {
	n     int
	edges []graph.Edge
}

// block reserves k new vertices and returns the offset: the block is
// offset+1..offset+k.
func (s *sketch) block(k int) int {
	offset := s.n
	s.n += k

	return offset
}

func (s *sketch) edge(u, v int) {
	s.edges = append(s.edges, graph.Edge{U: u, V: v})
}

// Constructor appends one topology to the sketch using the resolved
// builderConfig. Constructors MUST validate parameters before touching the
// sketch and return sentinel errors instead of panicking.
type Constructor func(s *sketch, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and returns the
// resulting graph. Constructor errors are wrapped with "BuildGraph: %w".
//
// Complexity: O(len(bopts)) + Σ cost of each constructor + O(n + m) to freeze.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*graph.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	s := &sketch{}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(s, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	if s.n == 0 {
		return nil, fmt.Errorf("BuildGraph: no vertices: %w", ErrTooFewVertices)
	}

	g, err := graph.New(s.n, s.edges)
	if err != nil {
		// constructors only emit in-range simple edges
		return nil, fmt.Errorf("BuildGraph: %v: %w", err, ErrConstructFailed)
	}

	return g, nil
}

// =============================================================================
// Topology factories - implemented in impl_*.go
// =============================================================================
//
// Complete(n)             K_n, n ≥ 1.                       χ = n.
// Cycle(n)                C_n, n ≥ 3.                       χ = 2 (n even) or 3 (n odd).
// Path(n)                 P_n, n ≥ 1.                       χ = 2 (n ≥ 2).
// Star(n)                 hub + n-1 leaves, n ≥ 2.          χ = 2.
// Wheel(n)                C_{n-1} + hub, n ≥ 4.             χ = 3 or 4.
// CompleteBipartite(a,b)  K_{a,b}, a,b ≥ 1.                 χ = 2.
// Grid(r,c)               r×c 4-neighborhood, r,c ≥ 1.      χ ≤ 2.
// Mycielski(k)            M_k, k ≥ 2, triangle-free.        χ = k.
// RandomSparse(n,p)       G(n,p), needs an RNG for 0<p<1.
// RandomRegular(n,d)      d-regular by stub matching, needs an RNG.
