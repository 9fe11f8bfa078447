// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewVertices).
//   • Emits edges in stable order i -- i+1 for i=1..n-1, then n -- 1.
//
// Complexity: O(n) vertices + O(n) edges.

package builder

import "fmt"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that appends the n-vertex simple cycle C_n.
func Cycle(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) A simple cycle needs three vertices.
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		// 2) Ring edges i -> i+1; the last step (n -> 1) closes the cycle.
		off := s.block(n)
		for i := 1; i <= n; i++ {
			s.edge(off+i, off+i%n+1)
		}

		return nil
	}
}
