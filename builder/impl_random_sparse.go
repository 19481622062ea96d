// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// impl_random_sparse.go: implementation of RandomSparse(n, p) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • An RNG is required when 0 < p < 1 (else ErrNeedRandSource).
//   • Undirected: one Bernoulli trial per pair i<j.
//     Directed: one trial per ordered pair i≠j.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) trials.
//
// Determinism:
//   • Stable trial order: i asc, then j asc; identical graphs for a fixed seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

const (
	methodRandomSparse      = "RandomSparse"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples an Erdős–Rényi-like graph
// over n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}
		if err := addNodes(methodRandomSparse, g, cfg, n); err != nil {
			return err
		}

		// hit performs the Bernoulli trial; p ∈ {0,1} needs no RNG.
		hit := func() bool {
			switch p {
			case probMin:
				return false
			case probMax:
				return true
			}
			return cfg.rng.Float64() < p
		}

		for i := 0; i < n; i++ {
			start := i + 1
			if cfg.directed {
				start = 0
			}
			for j := start; j < n; j++ {
				if i == j || !hit() {
					continue
				}
				if err := connect(methodRandomSparse, g, cfg, i, j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
