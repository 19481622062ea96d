// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • Index 0 is the hub; leaves are 1..n-1.
//   • Emits spokes hub -> leaf in ascending leaf order.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with hub cfg.id(0) and
// n-1 leaves.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodStar, g, cfg, n); err != nil {
			return err
		}
		for leaf := 1; leaf < n; leaf++ {
			if err := connect(methodStar, g, cfg, 0, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
