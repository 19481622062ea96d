package scene_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/scene"
)

func newScene(opts ...scene.Option) (*scene.Scene, *render.Recorder) {
	rec := &render.Recorder{}
	cfg := layout.DefaultConfig()

	return scene.New(core.NewGraph(), cfg.NewPositions(), rec, opts...), rec
}

func TestLoad_LabelsByFirstAppearance(t *testing.T) {
	s, _ := newScene()
	require.NoError(t, s.Load([][]string{
		{"b", "c", "4"},
		{"c", "a"},
		{"b", "c", "7x"},
		{"b", "c", "oops"},
	}, []string{"z"}))

	for label, want := range map[string]int{"z": 0, "b": 1, "c": 2, "a": 3} {
		id, err := s.ResolveLabel(label)
		require.NoError(t, err)
		assert.Equal(t, want, id, label)
	}
	_, err := s.ResolveLabel("q")
	assert.ErrorIs(t, err, scene.ErrNotFound)

	assert.Equal(t, "0, 4, 7", s.EdgeLabel(1, 2))
	assert.Equal(t, "0", s.EdgeLabel(2, 3))
	assert.Equal(t, "", s.EdgeLabel(3, 2))
	assert.Equal(t, 4, s.Graph().NodeCount())
	assert.Equal(t, 4, s.Graph().EdgeCount())
	assert.Equal(t, 4, s.Positions().Len())
}

func TestLoad_BadRowKeepsPreviousGraph(t *testing.T) {
	s, _ := newScene()
	require.NoError(t, s.Load([][]string{{"a", "b"}}, nil))

	err := s.Load([][]string{{"x", "y"}, {"lonely"}}, nil)
	assert.ErrorIs(t, err, scene.ErrBadRow)
	id, err := s.ResolveLabel("b")
	require.NoError(t, err)
	assert.Equal(t, 1, id)
	assert.Equal(t, 2, s.Graph().NodeCount())
}

func TestLoad_PrunesPositions(t *testing.T) {
	s, _ := newScene()
	require.NoError(t, s.Load([][]string{{"a", "b"}, {"b", "c"}}, nil))
	before, _ := s.Positions().Get(0)

	require.NoError(t, s.Load([][]string{{"a", "b"}}, nil))
	assert.Equal(t, []int{0, 1}, s.Positions().IDs())
	after, _ := s.Positions().Get(0)
	assert.Equal(t, before, after, "surviving ids keep their place")
}

func TestRedraw_FrameContents(t *testing.T) {
	s, rec := newScene()
	require.NoError(t, s.Load([][]string{{"a", "b", "3"}, {"a", "b", "1"}, {"b", "a"}}, nil))

	s.SetNodeFill(0, "lightBlue")
	s.SetEdgeStroke(0, 1, "black", 4)
	require.NoError(t, s.Redraw())

	f, ok := rec.Last()
	require.True(t, ok)
	require.Len(t, f.Nodes, 2)
	require.Len(t, f.Edges, 2, "parallel edges share one drawn line")
	assert.Equal(t, "lightBlue", f.Nodes[0].Fill)
	assert.Equal(t, "white", f.Nodes[1].Fill)
	assert.Equal(t, "a", f.Nodes[0].Label)
	assert.Equal(t, 19.0, f.Nodes[0].Radius)
	assert.Equal(t, 4.0, f.Edges[0].Width)
	assert.Equal(t, "1, 3", f.Edges[0].Label)
	assert.Equal(t, 2.0, f.Edges[1].Width)
	assert.False(t, f.Edges[0].Directed)

	s.ResetDefaults()
	require.NoError(t, s.SetDirected(true))
	f, _ = rec.Last()
	assert.Equal(t, "white", f.Nodes[0].Fill)
	assert.Equal(t, 2.0, f.Edges[0].Width)
	assert.True(t, f.Edges[0].Directed)
	assert.True(t, s.Directed())
}

func TestLoadGraph_DecimalLabels(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, 2, 5))
	require.NoError(t, g.AddNode(4))

	s, _ := newScene(scene.WithStyle(scene.Style{NodeFill: "gray", EdgeStroke: "red", EdgeWidth: 1}))
	require.NoError(t, s.LoadGraph(g))

	id, err := s.ResolveLabel("4")
	require.NoError(t, err)
	assert.Equal(t, 4, id)
	_, err = s.ResolveLabel("1")
	assert.ErrorIs(t, err, scene.ErrNotFound)
	assert.Equal(t, "gray", s.NodeFill(2))
	assert.Equal(t, "7", s.LabelOf(7))
}

func TestLoadGraph_SparseIDs(t *testing.T) {
	const far = 1_000_000_000
	g := core.NewGraph()
	require.NoError(t, g.AddEdge(0, far, 1))

	s, _ := newScene()
	require.NoError(t, s.LoadGraph(g))

	id, err := s.ResolveLabel("1000000000")
	require.NoError(t, err)
	assert.Equal(t, far, id)
	l, ok := s.Label(far)
	assert.True(t, ok)
	assert.Equal(t, "1000000000", l)
	_, ok = s.Label(1)
	assert.False(t, ok)
	assert.Equal(t, "1", s.EdgeLabel(0, far))
}

func TestParseWeight(t *testing.T) {
	cases := map[string]int64{
		"12":   12,
		"  -3": -3,
		"+8kg": 8,
		"7.9":  7,
		"abc":  0,
		"":     0,
		"-":    0,
		"1e3":  1,
	}
	assert.Zero(t, scene.ParseWeight("99999999999999999999"), "out of range")
	for in, want := range cases {
		assert.Equal(t, want, scene.ParseWeight(in), "%q", in)
	}
}
