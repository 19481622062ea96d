// Package bfs turns breadth-first search over a core.Graph into a replayable
// trace.Trace.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node, over the
//     *directed* adjacency (core.Graph.AdjList), neighbors in edge insertion order.
//   - Emit, per dequeued node u:
//   - CURRENT_NODE u
//   - per edge u→v: EDGE_TRAVERSAL, UNVISITED_NEIGHBOR v (first discovery only),
//     EDGE_CLASSIFICATION (tree iff v was discovered along this edge)
//   - CURRENT_NODE_FINISHED u
//   - Attach a Snapshot{Queue, Visited} to every step.
//
// Determinism
//
//	Trace is a pure function of (graph, start, options). Parallel edges are
//	traversed once per edge; only the first can be a tree edge.
//
// Complexity (V = |Nodes|, E = |Edges|)
//
//   - Steps:  ≤ 2V + 3E
//   - Time:   O((V + E) · V) including snapshots
//
// Usage
//
//	tr, err := bfs.Trace(g, 0)
//	if errors.Is(err, trace.ErrNodeNotFound) {
//	    // unknown start node
//	}
//
//	tr, err = bfs.Trace(g, 0, bfs.WithMaxDepth(2), bfs.WithContext(ctx))
package bfs
