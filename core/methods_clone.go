// File: methods_clone.go
// Role: Cloning, clearing and cheap diagnostics.
// Concurrency:
//   - Read lock for Clone/Stats; write lock for Clear.

package core

// Clone returns a deep copy of g. Later mutations of either graph are not
// visible in the other.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()
	clone := &Graph{
		nodes: make(map[int]struct{}, len(g.nodes)),
		edges: make([]Edge, len(g.edges)),
	}
	for id := range g.nodes {
		clone.nodes[id] = struct{}{}
	}
	copy(clone.edges, g.edges)

	return clone
}

// Clear removes every node and edge. The structure is replaced, not
// mutated in place, so slices previously returned by EdgeList stay valid.
func (g *Graph) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.resetLocked()
}

func (g *Graph) resetLocked() {
	g.nodes = make(map[int]struct{})
	g.edges = make([]Edge, 0)
}

// Stats is a point-in-time summary of a Graph.
type Stats struct {
	Nodes int
	Edges int
	// ParallelPairs counts ordered pairs joined by more than one edge.
	ParallelPairs int
	// HasNegative is true when any edge weight is below zero.
	HasNegative bool
}

// Stats returns a snapshot summary of g.
// Complexity: O(E).
func (g *Graph) Stats() Stats {
	g.mu.RLock()
	defer g.mu.RUnlock()
	st := Stats{Nodes: len(g.nodes), Edges: len(g.edges)}
	pairs := make(map[[2]int]int, len(g.edges))
	for _, e := range g.edges {
		if e.Weight < 0 {
			st.HasNegative = true
		}
		key := [2]int{e.From, e.To}
		pairs[key]++
		if pairs[key] == 2 {
			st.ParallelPairs++
		}
	}

	return st
}
