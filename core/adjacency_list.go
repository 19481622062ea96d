// File: adjacency_list.go
// Role: Bulk loaders (clear-then-populate) and derived adjacency views.
// Determinism:
//   - Loaders insert edges in ascending source id, then input order.
//   - Views list neighbors in edge insertion order.
// Concurrency:
//   - Loaders validate the whole input before taking the write lock and swap
//     nodes+edges in one critical section; a failed load leaves g untouched.
//   - Views are computed on demand under the read lock and never cached.

package core

import (
	"fmt"
	"sort"
)

// ReadAdjacencyList replaces g with the graph described by adj.
// Every key is a node; every listed neighbor yields one zero-weight edge.
// Duplicated neighbors yield parallel edges.
func (g *Graph) ReadAdjacencyList(adj map[int][]int) error {
	weighted := make(map[int][]Neighbor, len(adj))
	for from, tos := range adj {
		row := make([]Neighbor, len(tos))
		for i, to := range tos {
			row[i] = Neighbor{To: to}
		}
		weighted[from] = row
	}

	return g.ReadAdjacencyListWithWeights(weighted)
}

// ReadAdjacencyListWithWeights replaces g with the graph described by adj.
// Returns ErrInvalidArgument (and leaves g unchanged) if any id is negative.
// Complexity: O(V log V + E).
func (g *Graph) ReadAdjacencyListWithWeights(adj map[int][]Neighbor) error {
	// 1) Validate everything before touching g.
	for from, row := range adj {
		if !validID(from) {
			return fmt.Errorf("%w: node id %d is negative", ErrInvalidArgument, from)
		}
		for _, nb := range row {
			if !validID(nb.To) {
				return fmt.Errorf("%w: edge %d→%d has a negative endpoint", ErrInvalidArgument, from, nb.To)
			}
		}
	}

	// 2) Deterministic source order.
	sources := make([]int, 0, len(adj))
	for from := range adj {
		sources = append(sources, from)
	}
	sort.Ints(sources)

	// 3) Swap under lock.
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	for _, from := range sources {
		g.nodes[from] = struct{}{}
	}
	for _, from := range sources {
		for _, nb := range adj[from] {
			g.addEdgeLocked(from, nb.To, nb.Weight)
		}
	}

	return nil
}

// ReadAdjacencyMatrix replaces g with the graph described by a boolean matrix:
// nodes 0..n-1, and a zero-weight edge u→v wherever m[u][v] is true.
func (g *Graph) ReadAdjacencyMatrix(m [][]bool) error {
	weighted := make([][][]int64, len(m))
	for u, row := range m {
		weighted[u] = make([][]int64, len(row))
		for v, on := range row {
			if on {
				weighted[u][v] = []int64{0}
			}
		}
	}

	return g.ReadAdjacencyMatrixWithWeights(weighted)
}

// ReadAdjacencyMatrixWithWeights replaces g with nodes 0..n-1 and, for every
// weight w listed in m[u][v], one edge u→v of weight w.
// Returns ErrInvalidArgument if m is not square.
// Complexity: O(n² + E).
func (g *Graph) ReadAdjacencyMatrixWithWeights(m [][][]int64) error {
	n := len(m)
	for u, row := range m {
		if len(row) != n {
			return fmt.Errorf("%w: matrix row %d has %d cells, want %d", ErrInvalidArgument, u, len(row), n)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	for u := 0; u < n; u++ {
		g.nodes[u] = struct{}{}
	}
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			for _, w := range m[u][v] {
				g.addEdgeLocked(u, v, w)
			}
		}
	}

	return nil
}

// ReadEdgeList replaces g with the given edges plus the isolated nodes.
// Isolated ids that also appear in edges are simply nodes like any other.
func (g *Graph) ReadEdgeList(edges []Edge, isolated []int) error {
	for _, id := range isolated {
		if !validID(id) {
			return fmt.Errorf("%w: node id %d is negative", ErrInvalidArgument, id)
		}
	}
	for _, e := range edges {
		if !validID(e.From) || !validID(e.To) {
			return fmt.Errorf("%w: edge %d→%d has a negative endpoint", ErrInvalidArgument, e.From, e.To)
		}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
	for _, id := range isolated {
		g.nodes[id] = struct{}{}
	}
	for _, e := range edges {
		g.addEdgeLocked(e.From, e.To, e.Weight)
	}

	return nil
}

// AdjList returns the directed adjacency: node → neighbor ids, one entry per
// edge (parallel edges repeat the neighbor). Every node has a key.
func (g *Graph) AdjList() map[int][]int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int][]int, len(g.nodes))
	for id := range g.nodes {
		out[id] = []int{}
	}
	for _, e := range g.edges {
		out[e.From] = append(out[e.From], e.To)
	}

	return out
}

// AdjListWithWeights is AdjList with the weight of each edge.
func (g *Graph) AdjListWithWeights() map[int][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int][]Neighbor, len(g.nodes))
	for id := range g.nodes {
		out[id] = []Neighbor{}
	}
	for _, e := range g.edges {
		out[e.From] = append(out[e.From], Neighbor{To: e.To, Weight: e.Weight})
	}

	return out
}

// UndirectedAdjList lists, for each node, every edge endpoint across edges
// touching it in either direction.
func (g *Graph) UndirectedAdjList() map[int][]int {
	weighted := g.UndirectedAdjListWithWeights()
	out := make(map[int][]int, len(weighted))
	for id, row := range weighted {
		ids := make([]int, len(row))
		for i, nb := range row {
			ids[i] = nb.To
		}
		out[id] = ids
	}

	return out
}

// UndirectedAdjListWithWeights: each edge u→v contributes (v,w) to u and (u,w) to v.
func (g *Graph) UndirectedAdjListWithWeights() map[int][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int][]Neighbor, len(g.nodes))
	for id := range g.nodes {
		out[id] = []Neighbor{}
	}
	for _, e := range g.edges {
		out[e.From] = append(out[e.From], Neighbor{To: e.To, Weight: e.Weight})
		out[e.To] = append(out[e.To], Neighbor{To: e.From, Weight: e.Weight})
	}

	return out
}

// CollapsedAdjList reduces parallel edges to a single entry per distinct
// ordered pair carrying the minimum weight. Neighbor order follows the first
// appearance of each pair in the edge list.
// Complexity: O(V + E).
func (g *Graph) CollapsedAdjList() map[int][]Neighbor {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make(map[int][]Neighbor, len(g.nodes))
	for id := range g.nodes {
		out[id] = []Neighbor{}
	}
	// slot[from][to] is the index of the pair inside out[from].
	slot := make(map[int]map[int]int, len(g.nodes))
	for _, e := range g.edges {
		row, ok := slot[e.From]
		if !ok {
			row = make(map[int]int)
			slot[e.From] = row
		}
		if i, seen := row[e.To]; seen {
			if e.Weight < out[e.From][i].Weight {
				out[e.From][i].Weight = e.Weight
			}
			continue
		}
		row[e.To] = len(out[e.From])
		out[e.From] = append(out[e.From], Neighbor{To: e.To, Weight: e.Weight})
	}

	return out
}
