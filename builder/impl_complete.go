// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_complete.go - implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits every pair (i,j), i<j, in row-major order.
//
// Complexity: O(n) vertices + O(n²) edges.

package builder

import "fmt"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that appends the complete graph K_n.
func Complete(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) Validate n (K_1 is a single isolated vertex).
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		// 2) Reserve the block, then emit each pair i<j in lexicographic order.
		off := s.block(n)
		for i := 1; i <= n; i++ {
			for j := i + 1; j <= n; j++ {
				s.edge(off+i, off+j)
			}
		}

		return nil
	}
}
