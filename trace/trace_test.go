package trace_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/graphplay/trace"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "CURRENT_NODE", trace.CurrentNode.String())
	assert.Equal(t, "UNVISITED_NEIGHBOR", trace.UnvisitedNeighbor.String())
	assert.Equal(t, "INVALID_GRAPH", trace.InvalidGraph.String())
	assert.Equal(t, "Kind(42)", trace.Kind(42).String())
}

func TestStepString(t *testing.T) {
	cases := []struct {
		step trace.Step
		want string
	}{
		{trace.Step{Kind: trace.CurrentNode, Node: 3}, "CURRENT_NODE 3"},
		{trace.Step{Kind: trace.EdgeTraversal, Node: 1, Target: 2}, "EDGE_TRAVERSAL 1→2"},
		{trace.Step{Kind: trace.EdgeClassification, Node: 1, Target: 2, TreeEdge: true}, "EDGE_CLASSIFICATION 1→2 tree"},
		{trace.Step{Kind: trace.EdgeClassification, Node: 2, Target: 0}, "EDGE_CLASSIFICATION 2→0 non-tree"},
		{trace.Step{Kind: trace.InvalidGraph, Reason: "bad"}, "INVALID_GRAPH: bad"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.step.String())
	}
}

func TestStepFormat(t *testing.T) {
	names := []string{"a", "b", "c"}
	name := func(id int) string { return names[id] }
	assert.Equal(t, "EDGE_TRAVERSAL a→c", trace.Step{Kind: trace.EdgeTraversal, Node: 0, Target: 2}.Format(name))
	assert.Equal(t, "CURRENT_NODE_FINISHED b", trace.Step{Kind: trace.CurrentNodeFinished, Node: 1}.Format(name))
}

func TestSnapshotString(t *testing.T) {
	var nilSnap *trace.Snapshot
	assert.Equal(t, "", nilSnap.String())

	sn := &trace.Snapshot{Queue: []int{1, 2}, Visited: []int{0, 1, 2}}
	assert.Equal(t, "queue=[1 2] visited=[0 1 2]", sn.String())
}

func TestTraceHelpers(t *testing.T) {
	tr := trace.Trace{
		{Kind: trace.CurrentNode, Node: 0},
		{Kind: trace.EdgeClassification, Node: 0, Target: 1, TreeEdge: true},
		{Kind: trace.EdgeClassification, Node: 0, Target: 2},
		{Kind: trace.CurrentNode, Node: 1},
	}
	assert.Equal(t, []int{0, 1}, tr.Nodes(trace.CurrentNode))
	assert.Equal(t, 2, tr.Count(trace.EdgeClassification))
	assert.Equal(t, [][2]int{{0, 1}}, tr.TreeEdges())
	_, invalid := tr.Invalid()
	assert.False(t, invalid)

	reason, invalid := trace.Trace{{Kind: trace.InvalidGraph, Reason: "x"}}.Invalid()
	assert.True(t, invalid)
	assert.Equal(t, "x", reason)
}

func TestVisitedSnapshotSorted(t *testing.T) {
	got := trace.VisitedSnapshot(map[int]bool{5: true, 1: true, 3: false})
	assert.Equal(t, []int{1, 5}, got)
	assert.NotNil(t, trace.CopyInts(nil))
}
