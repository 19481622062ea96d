package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/graphplay/bfs"
	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/trace"
)

// ExampleTrace walks a small diamond 0→{1,2}→3 and prints the visit order
// and the tree edges.
func ExampleTrace() {
	g := core.NewGraph()
	_ = g.AddEdge(0, 1, 0)
	_ = g.AddEdge(0, 2, 0)
	_ = g.AddEdge(1, 3, 0)
	_ = g.AddEdge(2, 3, 0)

	tr, err := bfs.Trace(g, 0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(tr.Nodes(trace.CurrentNode))
	fmt.Println(tr.TreeEdges())
	fmt.Println(tr[0])
	// Output:
	// [0 1 2 3]
	// [[0 1] [0 2] [1 3]]
	// CURRENT_NODE 0
}
