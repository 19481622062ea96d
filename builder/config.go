// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • base      = 0                     (ids 0,1,2,...)
//   • rng       = nil                   (pure/deterministic unless seeded)
//   • weightFn  = DefaultWeightFn
//   • directed  = false                 (connections stored both ways)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// base is added to every constructor-local index to form a node id.
	base int
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// Weight generator for edges.
	weightFn WeightFn
	// directed stores each connection once (u→v) instead of as a pair.
	directed bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// id maps a constructor-local index to a node id.
func (c builderConfig) id(i int) int { return c.base + i }

// weight draws the next edge weight.
func (c builderConfig) weight() int64 { return c.weightFn(c.rng) }
