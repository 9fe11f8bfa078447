// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model (stub matching):
//   • Each vertex contributes d stubs; stubs are shuffled and paired consecutively.
//   • A pairing with a self-loop or a repeated pair is rejected and reshuffled.
//
// Contract:
//   • n ≥ 1, 0 ≤ d < n, n·d even (else ErrTooFewVertices).
//   • d = 0 is deterministic (n isolated vertices) and draws nothing.
//   • cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource).
//   • After cfg.maxAttempts rejected shuffles → ErrConstructFailed.
//
// Complexity:
//   • Per attempt O(n·d) time and space.
//
// Determinism:
//   • Fixed attempt limit and fixed trial order → identical outcomes for same seed.

package builder

import "fmt"

const (
	methodRandomRegular = "RandomRegular"
	minRRVertices       = 1
)

// RandomRegular returns a Constructor that appends a random d-regular graph.
// Only d > 0 consumes randomness; RandomRegular(n, 0) works without WithSeed
// or WithRand.
func RandomRegular(n, d int) Constructor {
	return func(s *sketch, cfg builderConfig) error {
		// 1) Parameter validation: n≥1, 0≤d<n, parity (n*d) even.
		if n < minRRVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRandomRegular, n, minRRVertices, ErrTooFewVertices)
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w", methodRandomRegular, n, d, ErrTooFewVertices)
		}
		// 2) d=0 needs no pairing: n isolated vertices, no rng draw.
		if d == 0 {
			s.block(n)
			return nil
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: rng is required for d=%d: %w", methodRandomRegular, d, ErrNeedRandSource)
		}

		// 3) Stub list: vertex i repeated d times, i asc. The shuffle below
		// permutes it in place, so every attempt starts from the previous order.
		stubs := make([]int, 0, n*d)
		for i := 1; i <= n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		// 4) Bounded reshuffles until the pairing is simple. Vertices are
		// reserved only on success, so a failed build leaves the sketch intact.
		rng := cfg.rng
		for attempt := 1; attempt <= cfg.maxAttempts; attempt++ {
			rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			// 5) Commit: pair (stubs[2k], stubs[2k+1]) becomes one edge.
			off := s.block(n)
			for i := 0; i < len(stubs); i += 2 {
				s.edge(off+stubs[i], off+stubs[i+1])
			}

			return nil
		}

		return fmt.Errorf("%s: failed to construct after %d attempts: %w",
			methodRandomRegular, cfg.maxAttempts, ErrConstructFailed)
	}
}

// simplePairing reports whether consecutive stub pairs contain no loop and
// no repeated unordered pair.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
