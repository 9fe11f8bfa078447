// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first vertex of the block is the hub; leaves follow in order.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that appends a star with n-1 leaves.
func Star(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) A star needs a center and at least one leaf.
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		// 2) Vertex 1 of the block is the center; leaves 2..n attach to it.
		off := s.block(n)
		for i := 2; i <= n; i++ {
			s.edge(off+1, off+i)
		}

		return nil
	}
}
