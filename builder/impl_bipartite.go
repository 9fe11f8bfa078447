// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   • n1 ≥ 1 and n2 ≥ 1 (else ErrTooFewVertices).
//   • Left side = first n1 vertices of the block, right side = next n2.
//   • Emits left×right pairs in row-major order.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import "fmt"

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that appends K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) Both sides need at least one vertex.
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: partitions %d,%d < min=%d: %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		// 2) Left side is off+1..off+n1, right side follows it.
		off := s.block(n1 + n2)

		// 3) Every cross pair, left index major, right index minor.
		for i := 1; i <= n1; i++ {
			for j := 1; j <= n2; j++ {
				s.edge(off+i, off+n1+j)
			}
		}

		return nil
	}
}
