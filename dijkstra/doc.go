// Package dijkstra turns Dijkstra's shortest-path algorithm into a
// replayable trace.Trace.
//
// Overview:
//
//   - Works on core.Graph.CollapsedAdjList: parallel edges are reduced to the
//     minimum weight per ordered pair, announced by one PREPARING_GRAPH step.
//   - Uses a priority-free O(V²) selection scan. Ties go to the lowest node id
//     because ids are scanned in ascending order.
//   - Which edge is a tree edge is only known once a node is selected, so
//     EDGE_CLASSIFICATION steps for edges into v are emitted right before
//     v's CURRENT_NODE.
//
// Negative weights:
//
//	The whole graph is pre-scanned (O(E)). If any weight is negative the
//	trace is exactly one INVALID_GRAPH step with Reason
//	"negative-weight edges unsupported"; this is a result, not an error, so
//	a replay can still show the reason.
//
// Snapshots:
//
//	Dist holds every finite tentative distance; Visited the finalized nodes.
//	Distances(tr) returns the Dist map of the last step.
//
// API reference:
//
//	func Trace(g *core.Graph, start int, opts ...Option) (trace.Trace, error)
//	func Distances(tr trace.Trace) map[int]int64
//	func Predecessors(tr trace.Trace) map[int]int
package dijkstra
