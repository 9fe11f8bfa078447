// SPDX-License-Identifier: MIT
// Package: cgcolor/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic: no RNG unless WithSeed/WithRand is given.
//   • newBuilderConfig applies options in-order (later overrides earlier).

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// maxAttempts bounds reshuffles in RandomRegular.
	maxAttempts int
}

const defaultMaxAttempts = 64

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{maxAttempts: defaultMaxAttempts}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
