// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// helpers.go: node and edge emission shared by the constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

// addNodes registers ids cfg.id(0..n-1) in index order.
// Complexity: O(n).
func addNodes(method string, g *core.Graph, cfg builderConfig, n int) error {
	for i := 0; i < n; i++ {
		if err := g.AddNode(cfg.id(i)); err != nil {
			return fmt.Errorf("%s: AddNode(%d): %w", method, cfg.id(i), err)
		}
	}

	return nil
}

// connect links local indices i and j with one freshly drawn weight:
// a single edge in directed mode, an opposite pair otherwise.
func connect(method string, g *core.Graph, cfg builderConfig, i, j int) error {
	u, v := cfg.id(i), cfg.id(j)
	w := cfg.weight()

	var err error
	if cfg.directed {
		err = g.AddEdge(u, v, w)
	} else {
		err = g.AddUndirectedEdge(u, v, w)
	}
	if err != nil {
		return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", method, u, v, w, err)
	}

	return nil
}
