// Package core provides the thread-safe in-memory Graph shared by the trace
// generators, the layout simulator and the scene.
//
// The Graph G = (V,E) is deliberately small:
//
//   - Nodes are non-negative ints; a negative id is ErrInvalidArgument.
//   - Edges are directed (From → To) with an int64 Weight.
//   - Parallel edges are kept distinct, in insertion order.
//   - Self-loops are dropped on insertion; their endpoint is still added.
//   - Adding an edge implicitly adds both endpoints.
//
// Bulk loaders always clear first and then populate, so a graph is replaced
// rather than merged:
//
//	– ReadAdjacencyList(map[int][]int)
//	– ReadAdjacencyListWithWeights(map[int][]Neighbor)
//	– ReadAdjacencyMatrix([][]bool)
//	– ReadAdjacencyMatrixWithWeights([][][]int64)   // cell = parallel weights
//	– ReadEdgeList([]Edge, isolated []int)
//
// Derived views are recomputed on every call and never cached:
//
//	– AdjList / AdjListWithWeights                   directed, multiplicity kept
//	– UndirectedAdjList / UndirectedAdjListWithWeights
//	– CollapsedAdjList                                min weight per ordered pair
//	– Weights(from, to)                               distinct weights, ascending
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes and edges together. Readers (the
//	layout and replay lanes) may run while a new graph is loaded; they see
//	either the old graph or the new one, never a mix.
//
// Quick example:
//
//	g := core.NewGraph()
//	_ = g.AddUndirectedEdge(0, 1, 4)
//	_ = g.AddEdge(1, 2, 7)
//	fmt.Println(g.Nodes())          // [0 1 2]
//	fmt.Println(g.AdjList()[1])     // [0 2]
package core
