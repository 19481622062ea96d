// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// samples.go: the numbered sample gallery.
//
// Each sample is an adjacency list indexed by node: row i lists the
// neighbours of node i, so undirected samples list every edge twice.
// Sample(i) replays the rows verbatim (one directed edge per entry),
// which keeps multiplicity and isolated nodes exactly as listed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphplay/core"
)

const methodSample = "Sample"

// SampleInfo names one gallery entry.
type SampleInfo struct {
	Name string
	Adj  [][]int
}

// Samples returns a fresh copy of the gallery in display order.
func Samples() []SampleInfo {
	out := make([]SampleInfo, len(samples))
	for i, s := range samples {
		adj := make([][]int, len(s.Adj))
		for j, row := range s.Adj {
			adj[j] = make([]int, len(row))
			copy(adj[j], row)
		}
		out[i] = SampleInfo{Name: s.Name, Adj: adj}
	}

	return out
}

// Sample returns a Constructor that adds gallery entry i, shifted by the
// configured base. Weights come from the configured WeightFn.
func Sample(i int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if i < 0 || i >= len(samples) {
			return fmt.Errorf("%s: index %d not in [0,%d): %w", methodSample, i, len(samples), ErrUnknownSample)
		}
		adj := samples[i].Adj
		if err := addNodes(methodSample, g, cfg, len(adj)); err != nil {
			return err
		}
		for u, row := range adj {
			for _, v := range row {
				w := cfg.weight()
				if err := g.AddEdge(cfg.id(u), cfg.id(v), w); err != nil {
					return fmt.Errorf("%s: AddEdge(%d→%d, w=%d): %w", methodSample, cfg.id(u), cfg.id(v), w, err)
				}
			}
		}

		return nil
	}
}

// completeRows lists every other node for each of n nodes.
func completeRows(n int) [][]int {
	rows := make([][]int, n)
	for i := range rows {
		for j := 0; j < n; j++ {
			if j != i {
				rows[i] = append(rows[i], j)
			}
		}
	}

	return rows
}

// clusterRows is K8 on 0..7 with a pendant triangle hung off each of 0..6
// and a detached triangle 8..10.
func clusterRows() [][]int {
	rows := completeRows(8)
	rows[7] = append(rows[7], 8)
	rows = append(rows, []int{9, 10}, []int{8, 10}, []int{8, 9})
	for hub := 0; hub < 7; hub++ {
		a := 11 + 3*hub
		rows[hub] = append(rows[hub], a)
		rows = append(rows,
			[]int{hub, a + 1, a + 2},
			[]int{a, a + 2},
			[]int{a, a + 1},
		)
	}

	return rows
}

var samples = []SampleInfo{
	{Name: "house", Adj: [][]int{{1, 3}, {0, 2, 4}, {1, 3}, {0, 2}, {1, 2}}},
	{Name: "triangle", Adj: [][]int{{1, 2}, {0, 2}, {0, 1}}},
	{Name: "pair", Adj: [][]int{{1}, {0}}},
	{Name: "path5", Adj: [][]int{{1}, {0, 2}, {1, 3}, {2, 4}, {3}}},
	{Name: "isolated5", Adj: [][]int{{}, {}, {}, {}, {}}},
	{Name: "isolated3", Adj: [][]int{{}, {}, {}}},
	{Name: "lollipop", Adj: [][]int{{1}, {0, 2}, {1, 3}, {1, 2}}},
	{Name: "diamond", Adj: [][]int{{1, 2}, {0, 2}, {1, 3, 0}, {1, 2}}},
	{Name: "k5", Adj: completeRows(5)},
	{Name: "k8", Adj: completeRows(8)},
	{Name: "cluster32", Adj: clusterRows()},
	{Name: "binary-tree", Adj: [][]int{{1, 2}, {0, 3, 4}, {0, 5, 6}, {1}, {1}, {2}, {2}}},
}
