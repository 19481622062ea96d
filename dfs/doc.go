// Package dfs turns depth-first search over a core.Graph into a replayable
// trace.Trace.
//
// Key features:
//   - Trace(g, start, opts...): one DFS tree, or the full forest via WithFullTraversal
//   - Same step vocabulary as bfs; recursion only along tree edges
//   - Explicit frame stack: Snapshot.Stack equals the recursion path at every step
//   - White/Gray/Black coloring; Snapshot.Visited lists every non-White node
//   - Cancellation via context.Context
//
// Options:
//
//   - WithContext(ctx)          allows cancellation via context.Context.
//   - WithOnStep(fn)            observes each step as it is emitted.
//   - WithMaxDepth(limit)       stops discovery beyond the given depth (0 = no limit).
//   - WithFullTraversal()       restarts from each undiscovered node, ascending.
//
// Example: the path 0→1→2 traced from 0 yields
//
//	CURRENT_NODE 0            stack=[0]
//	EDGE_TRAVERSAL 0→1        stack=[0]
//	UNVISITED_NEIGHBOR 1      stack=[0]
//	EDGE_CLASSIFICATION 0→1   stack=[0]      (tree)
//	CURRENT_NODE 1            stack=[0 1]
//	...
//	CURRENT_NODE_FINISHED 0   stack=[0]
package dfs
