package algorithms_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/dfs"
	"github.com/katalvlaran/graphplay/trace"
)

func TestLookupBuiltins(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddUndirectedEdge(0, 1, 2))

	for _, name := range []string{"bfs", "DFS", " dijkstra "} {
		gen, err := algorithms.Lookup(name)
		require.NoError(t, err, name)
		tr, err := gen(g, 0)
		require.NoError(t, err, name)
		assert.Contains(t, tr.Nodes(trace.CurrentNode), 1, name)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := algorithms.Lookup("astar")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	assert.Contains(t, err.Error(), "bfs, dfs")
}

func TestRegister(t *testing.T) {
	require.NoError(t, algorithms.Register("dfs-forest", dfs.Generator(dfs.WithFullTraversal())))
	assert.ErrorIs(t, algorithms.Register("DFS-forest", dfs.Generator()), algorithms.ErrDuplicateName)
	assert.Error(t, algorithms.Register("", dfs.Generator()))
	assert.Contains(t, algorithms.Names(), "dfs-forest")

	g := core.NewGraph()
	require.NoError(t, g.AddNode(0))
	require.NoError(t, g.AddNode(1))
	gen, err := algorithms.Lookup("dfs-forest")
	require.NoError(t, err)
	tr, err := gen(g, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, tr.Nodes(trace.CurrentNode))
}
