// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); P_1 is a single isolated vertex.
//   • Emits edges i -- i+1 for i=1..n-1.
//
// Complexity: O(n) vertices + O(n-1) edges.

package builder

import "fmt"

const (
	methodPath   = "Path"
	minPathNodes = 1
)

// Path returns a Constructor that appends the simple path P_n.
func Path(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) Validate n (P_1 is a single vertex, no edge).
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		// 2) Consecutive edges i -> i+1 for i = 1..n-1.
		off := s.block(n)
		for i := 1; i < n; i++ {
			s.edge(off+i, off+i+1)
		}

		return nil
	}
}
