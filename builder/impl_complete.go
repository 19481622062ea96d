// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices).
//   • Emits each unordered pair {i,j}, i<j, in lexicographic order.
//     In directed mode both i→j and j→i are emitted so K_n stays symmetric.
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete simple graph K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		if err := addNodes(methodComplete, g, cfg, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := connect(methodComplete, g, cfg, i, j); err != nil {
					return err
				}
				if cfg.directed {
					if err := connect(methodComplete, g, cfg, j, i); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
