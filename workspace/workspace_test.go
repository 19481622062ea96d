package workspace_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/algorithms"
	"github.com/katalvlaran/graphplay/builder"
	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/replay"
	"github.com/katalvlaran/graphplay/scene"
	"github.com/katalvlaran/graphplay/workspace"
)

func fastConfig() *config.Config {
	cfg := config.Default()
	cfg.Layout.Sweeps = 3
	cfg.Layout.Pace = 0
	cfg.Replay.Delay = 0

	return cfg
}

func TestLoadText_AndSettle(t *testing.T) {
	rec := &render.Recorder{}
	w := workspace.New(fastConfig(), rec)
	defer w.Close()

	require.NoError(t, w.LoadText("A B 3\nB C\nD"))
	require.NoError(t, w.Settle(context.Background()))

	f, ok := rec.Last()
	require.True(t, ok)
	assert.Len(t, f.Nodes, 4)
	assert.Len(t, f.Edges, 2)
	assert.Equal(t, layout.Idle, w.Simulator().State())
	a, err := w.Scene().ResolveLabel("A")
	require.NoError(t, err)
	b, err := w.Scene().ResolveLabel("B")
	require.NoError(t, err)
	assert.Equal(t, "3", w.Scene().EdgeLabel(a, b))
}

func TestLoadText_EmptyKeepsGraph(t *testing.T) {
	w := workspace.New(fastConfig(), &render.Recorder{})
	defer w.Close()

	require.NoError(t, w.LoadText("A B"))
	assert.ErrorIs(t, w.LoadText("A B\n  \n"), workspace.ErrEmptyInput)
	assert.ErrorIs(t, w.LoadText(""), workspace.ErrEmptyInput)
	assert.Equal(t, 2, w.Scene().Graph().NodeCount())
}

func TestReplay_LogsAndPaints(t *testing.T) {
	w := workspace.New(fastConfig(), &render.Recorder{})
	defer w.Close()
	require.NoError(t, w.LoadText("A B\nB A\nA C\nC A\nB C\nC B"))

	require.NoError(t, w.Replay(context.Background(), algorithms.BFS, "A"))
	lines := w.Steps().Lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "CURRENT_NODE A  [queue=[] visited=[0]]", lines[0])
	assert.Equal(t, "lightGreen", w.Scene().NodeFill(2))
}

func TestTrace_Errors(t *testing.T) {
	w := workspace.New(fastConfig(), &render.Recorder{})
	defer w.Close()
	require.NoError(t, w.LoadText("A B"))

	_, err := w.Trace("astar", "A")
	assert.ErrorIs(t, err, algorithms.ErrUnknownAlgorithm)
	_, err = w.Trace("dfs", "Z")
	assert.ErrorIs(t, err, scene.ErrNotFound)
}

func TestLoad_StopsReplayAndClearsSteps(t *testing.T) {
	cfg := fastConfig()
	cfg.Replay.Delay = 20 * time.Millisecond
	extra := &replay.MemoryLog{}
	w := workspace.New(cfg, &render.Recorder{}, workspace.WithStepLog(extra))
	defer w.Close()

	require.NoError(t, w.LoadSample(9))
	require.NoError(t, w.Play(context.Background(), algorithms.DFS, "0"))
	require.Eventually(t, func() bool { return len(extra.Lines()) > 0 }, time.Second, time.Millisecond)

	require.NoError(t, w.LoadSample(1))
	assert.False(t, w.Driver().Live())
	assert.Empty(t, w.Steps().Lines())
	assert.Empty(t, extra.Lines())
	assert.Equal(t, 3, w.Scene().Graph().NodeCount())
	assert.Equal(t, "white", w.Scene().NodeFill(0))
}

func TestAnimate_StopAndResume(t *testing.T) {
	cfg := fastConfig()
	cfg.Layout.Sweeps = 1000
	cfg.Layout.Pace = time.Millisecond
	w := workspace.New(cfg, &render.Recorder{})
	defer w.Close()

	require.NoError(t, w.LoadSample(0))
	require.NoError(t, w.Animate(context.Background()))
	assert.Equal(t, layout.Running, w.Simulator().State())
	w.StopLayout()
	assert.Equal(t, layout.Superseded, w.Simulator().State())

	require.NoError(t, w.Animate(context.Background()))
	assert.Equal(t, layout.Running, w.Simulator().State())
}

func TestSetDirectedAndSpeed(t *testing.T) {
	rec := &render.Recorder{}
	w := workspace.New(fastConfig(), rec)
	defer w.Close()
	require.NoError(t, w.LoadText("A B"))

	require.NoError(t, w.SetDirected(true))
	f, _ := rec.Last()
	require.Len(t, f.Edges, 1)
	assert.True(t, f.Edges[0].Directed)

	w.SetSpeed(1010)
	assert.Equal(t, time.Second, w.Driver().Delay())
}

func TestGenerate(t *testing.T) {
	w := workspace.New(fastConfig(), &render.Recorder{})
	defer w.Close()

	require.NoError(t, w.Generate(builder.Recipe{Topology: "wheel:5", Weights: "2..4", Seed: 1}))
	assert.Equal(t, 5, w.Scene().Graph().NodeCount())

	steps, err := w.Trace(algorithms.BFS, "0")
	require.NoError(t, err)
	assert.NotEmpty(t, steps)

	err = w.Generate(builder.Recipe{Topology: "wheel:2"})
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
	assert.Equal(t, 5, w.Scene().Graph().NodeCount())
}
