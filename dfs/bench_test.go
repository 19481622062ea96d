package dfs_test

import (
	"testing"

	"github.com/katalvlaran/graphplay/dfs"
)

// BenchmarkDFS_Chain measures DFS tracing on a linear chain.
// Snapshots copy the stack, so cost is quadratic in the chain length.
func BenchmarkDFS_Chain(b *testing.B) {
	g := buildChain(b, 500)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Trace(g, 0)
	}
}

// BenchmarkDFS_BinaryTree measures a complete binary tree of depth 9.
func BenchmarkDFS_BinaryTree(b *testing.B) {
	g := buildBinaryTree(b, 9)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Trace(g, 1, dfs.WithFullTraversal())
	}
}
