package builder_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/core"
)

func TestRecipe_Build(t *testing.T) {
	tests := []struct {
		name   string
		recipe builder.Recipe
		nodes  []int
		edges  int
	}{
		{"cycle", builder.Recipe{Topology: "cycle:5"}, []int{0, 1, 2, 3, 4}, 10},
		{"directed path", builder.Recipe{Topology: "path:4", Directed: true}, []int{0, 1, 2, 3}, 3},
		{"grid", builder.Recipe{Topology: "grid:2:3"}, []int{0, 1, 2, 3, 4, 5}, 14},
		{"two components", builder.Recipe{Topology: "cycle:3 + star:4"}, []int{0, 1, 2, 3, 4, 5, 6}, 12},
		{"base", builder.Recipe{Topology: "path:2", Base: 5}, []int{5, 6}, 2},
		{"upper case", builder.Recipe{Topology: "COMPLETE:3"}, []int{0, 1, 2}, 6},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.recipe.Build()
			require.NoError(t, err)
			assert.Equal(t, tc.nodes, g.Nodes())
			assert.Equal(t, tc.edges, g.EdgeCount())
		})
	}
}

func TestRecipe_ComponentsAreDisjoint(t *testing.T) {
	g, err := builder.Recipe{Topology: "cycle:3+star:4"}.Build()
	require.NoError(t, err)

	// the star hub is the first id after the cycle
	assert.ElementsMatch(t, []int{4, 5, 6}, g.AdjList()[3])
	for _, e := range g.EdgeList() {
		assert.Equal(t, e.From < 3, e.To < 3, "edge %d→%d crosses components", e.From, e.To)
	}
}

func TestRecipe_Weights(t *testing.T) {
	g, err := builder.Recipe{Topology: "wheel:5", Weights: "7"}.Build()
	require.NoError(t, err)
	for _, e := range g.EdgeList() {
		assert.Equal(t, int64(7), e.Weight)
	}

	r := builder.Recipe{Topology: "complete:5", Weights: "1..9", Seed: 42}
	a, err := r.Build()
	require.NoError(t, err)
	b, err := r.Build()
	require.NoError(t, err)
	assert.Equal(t, a.EdgeList(), b.EdgeList())
	for _, e := range a.EdgeList() {
		assert.GreaterOrEqual(t, e.Weight, int64(1))
		assert.LessOrEqual(t, e.Weight, int64(9))
	}
}

func TestRecipe_RandomIsSeeded(t *testing.T) {
	r := builder.Recipe{Topology: "random:12:0.4", Seed: 3}
	a, err := r.Build()
	require.NoError(t, err)
	b, err := r.Build()
	require.NoError(t, err)
	assert.Equal(t, a.EdgeList(), b.EdgeList())
	assert.Equal(t, 12, a.NodeCount())
}

func TestRecipe_ApplyExtendsGraph(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddNode(10))

	require.NoError(t, builder.Recipe{Topology: "path:2"}.Apply(g))
	assert.Equal(t, []int{10, 11, 12}, g.Nodes())
	assert.Equal(t, []int64{1}, g.Weights(11, 12))
}

func TestRecipe_Errors(t *testing.T) {
	tests := []struct {
		name   string
		recipe builder.Recipe
		want   error
	}{
		{"empty", builder.Recipe{}, builder.ErrBadRecipe},
		{"unknown", builder.Recipe{Topology: "hexagon:3"}, builder.ErrUnknownTopology},
		{"missing size", builder.Recipe{Topology: "cycle"}, builder.ErrBadRecipe},
		{"not a number", builder.Recipe{Topology: "path:x"}, builder.ErrBadRecipe},
		{"grid arity", builder.Recipe{Topology: "grid:3"}, builder.ErrBadRecipe},
		{"random arity", builder.Recipe{Topology: "random:5"}, builder.ErrBadRecipe},
		{"random probability", builder.Recipe{Topology: "random:5:1.5"}, builder.ErrInvalidProbability},
		{"too small", builder.Recipe{Topology: "cycle:2"}, builder.ErrTooFewVertices},
		{"bad second part", builder.Recipe{Topology: "path:3+"}, builder.ErrUnknownTopology},
		{"reversed range", builder.Recipe{Topology: "path:3", Weights: "9..1"}, builder.ErrBadRecipe},
		{"bad weight", builder.Recipe{Topology: "path:3", Weights: "heavy"}, builder.ErrBadRecipe},
		{"negative base", builder.Recipe{Topology: "path:3", Base: -1}, builder.ErrBadRecipe},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.recipe.Build()
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

func TestParseWeights_EmptyKeepsDefault(t *testing.T) {
	opt, err := builder.ParseWeights("  ")
	require.NoError(t, err)
	assert.Nil(t, opt)
}

func TestTopologies(t *testing.T) {
	names := builder.Topologies()
	assert.True(t, sort.StringsAreSorted(names))
	assert.Contains(t, names, "grid:R:C")
	assert.Contains(t, names, "random:N:P")
	assert.Contains(t, names, "cycle:N")
}
