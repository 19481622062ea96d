package bfs_test

import (
	"testing"

	"github.com/katalvlaran/graphplay/bfs"
	"github.com/katalvlaran/graphplay/core"
)

// BenchmarkBFS_Chain measures tracing a linear chain of N nodes.
func BenchmarkBFS_Chain(b *testing.B) {
	const N = 1000
	g := core.NewGraph()
	for i := 0; i < N; i++ {
		_ = g.AddEdge(i, i+1, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Trace(g, 0)
	}
}

// BenchmarkBFS_BinaryTree runs on a complete binary tree of depth D.
func BenchmarkBFS_BinaryTree(b *testing.B) {
	const depth = 9
	nodeCount := (1 << depth) - 1
	g := core.NewGraph()
	for i := 1; i <= (nodeCount-1)/2; i++ {
		_ = g.AddEdge(i, 2*i, 0)
		_ = g.AddEdge(i, 2*i+1, 0)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.Trace(g, 1)
	}
}
