// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_mycielski.go - implementation of Mycielski(k) constructor.
//
// Canonical model:
//   • M_2 = K_2; M_{k+1} is the Mycielskian of M_k: for every vertex v_i add a
//     shadow u_i adjacent to the neighbors of v_i, then a root w adjacent to
//     every shadow.
//   • M_k is triangle-free with chromatic number k (M_3 = C_5, M_4 = Grötzsch).
//
// Contract:
//   • k ≥ 2 (else ErrTooFewVertices).
//   • Vertex numbering: originals, then shadows in the same order, then the root.
//
// Complexity: 3·2^(k-2) − 1 vertices; edges roughly triple per step.

package builder

import "fmt"

const (
	methodMycielski   = "Mycielski"
	minMycielskiOrder = 2
)

// Mycielski returns a Constructor that appends the Mycielski graph M_k.
func Mycielski(k int) Constructor {
	return func(s *sketch, _ builderConfig) error {
		// 1) M_2 = K_2 is the smallest member of the family.
		if k < minMycielskiOrder {
			return fmt.Errorf("%s: k=%d < min=%d: %w", methodMycielski, k, minMycielskiOrder, ErrTooFewVertices)
		}

		// 2) Iterate M_{step} -> M_{step+1} on a local edge list. With n
		// vertices, shadow u' = n+u copies the neighborhood of u and the root
		// 2n+1 joins every shadow.
		n := 2
		edges := [][2]int{{1, 2}}
		for step := minMycielskiOrder; step < k; step++ {
			next := make([][2]int, 0, 3*len(edges)+n)
			next = append(next, edges...)
			for _, e := range edges {
				next = append(next, [2]int{n + e[0], e[1]}, [2]int{e[0], n + e[1]})
			}
			root := 2*n + 1
			for i := 1; i <= n; i++ {
				next = append(next, [2]int{n + i, root})
			}
			n, edges = root, next
		}

		// 3) Commit the final edge list to the sketch.
		off := s.block(n)
		for _, e := range edges {
			s.edge(off+e[0], off+e[1])
		}

		return nil
	}
}
