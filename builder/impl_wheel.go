// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • Wₙ = Cₙ₋₁ + hub: a ring of n-1 nodes plus one hub node.
//   • Therefore, n ≥ 4 (the ring must be a valid cycle: n-1 ≥ 3).
//
// Contract:
//   • Index 0 is the hub; the ring is 1..n-1.
//   • Emits the ring i -> i+1 (closing n-1 -> 1) first, then spokes
//     0 -> i in increasing ring order.
//
// Complexity:
//   • Time: O(n) nodes + O(2(n-1)) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds the wheel graph W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodWheel, g, cfg, n); err != nil {
			return err
		}

		// Ring over 1..n-1.
		for i := 1; i < n; i++ {
			next := i + 1
			if next == n {
				next = 1
			}
			if err := connect(methodWheel, g, cfg, i, next); err != nil {
				return err
			}
		}
		// Spokes.
		for i := 1; i < n; i++ {
			if err := connect(methodWheel, g, cfg, 0, i); err != nil {
				return err
			}
		}

		return nil
	}
}
