// File: methods_edges.go
// Role: Node & edge lifecycle: AddNode/AddEdge/AddUndirectedEdge and the
//       plain read accessors (Nodes, EdgeList, Weights, counts).
// Determinism:
//   - Nodes() returns ids ascending.
//   - EdgeList() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock; queries under mu read lock.

package core

import (
	"fmt"
	"sort"
)

// AddNode registers id as a node. Adding an existing node is a no-op.
// Returns ErrInvalidArgument if id < 0.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int) error {
	if !validID(id) {
		return fmt.Errorf("%w: node id %d is negative", ErrInvalidArgument, id)
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	g.nodes[id] = struct{}{}

	return nil
}

// AddEdge appends the directed edge from→to with the given weight.
//
// Steps:
//  1. Validate both ids (ErrInvalidArgument on a negative id).
//  2. Register both endpoints as nodes.
//  3. If from != to, append the edge; a self-loop is dropped silently.
//
// Parallel edges are always accepted and kept distinct.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Input validation
	if !validID(from) || !validID(to) {
		return fmt.Errorf("%w: edge %d→%d has a negative endpoint", ErrInvalidArgument, from, to)
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.addEdgeLocked(from, to, weight)

	return nil
}

// AddUndirectedEdge adds from→to and to→from with the same weight.
func (g *Graph) AddUndirectedEdge(from, to int, weight int64) error {
	if err := g.AddEdge(from, to, weight); err != nil {
		return err
	}

	return g.AddEdge(to, from, weight)
}

// addEdgeLocked implements steps 2-3 of AddEdge; caller holds mu.
func (g *Graph) addEdgeLocked(from, to int, weight int64) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}
	if from == to {
		return
	}
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id int) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns all node ids in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.sortedNodesLocked()
}

func (g *Graph) sortedNodesLocked() []int {
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	return ids
}

// NodeCount returns |V|.
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns |E|, counting every parallel edge.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// EdgeList returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) EdgeList() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// Weights returns the distinct weights of all edges from→to, ascending.
// The result is empty (not nil) when no such edge exists.
// Complexity: O(E).
func (g *Graph) Weights(from, to int) []int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	seen := make(map[int64]struct{})
	out := make([]int64, 0)
	for _, e := range g.edges {
		if e.From != from || e.To != to {
			continue
		}
		if _, dup := seen[e.Weight]; dup {
			continue
		}
		seen[e.Weight] = struct{}{}
		out = append(out, e.Weight)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
