// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   • n ≥ 4 (else ErrTooFewVertices).
//   • Rim = C_{n-1} on the first n-1 vertices of the block (emitted as Cycle does),
//     hub = last vertex, spokes emitted after the rim in rim order.
//
// Complexity: O(n) vertices + O(2n-2) edges.

package builder

import "fmt"

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that appends the wheel W_n.
func Wheel(n int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) The rim must be a cycle, so n-1 ≥ 3.
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		// 2) Rim first: vertices 1..n-1 form C_{n-1}.
		off := s.block(n)
		rim := n - 1
		for i := 1; i <= rim; i++ {
			s.edge(off+i, off+i%rim+1)
		}
		// 3) Spokes: the hub is the last vertex of the block.
		for i := 1; i <= rim; i++ {
			s.edge(off+i, off+n)
		}

		return nil
	}
}
