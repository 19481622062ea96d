package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand(context.Background(), "test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func fastConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  sweeps: 3\n  pace: 0s\nreplay:\n  delay: 0s\nlog:\n  level: warn\n"), 0o644))

	return path
}

func TestTrace_Stdin(t *testing.T) {
	out, err := run(t, "A B\nB A\nA C\nC A\n", "--config", fastConfig(t), "trace", "--algo", "bfs", "--start", "A", "-")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "CURRENT_NODE A  [queue=[] visited=[0]]", lines[0])
	assert.Contains(t, out, "CURRENT_NODE_FINISHED C")
}

func TestTrace_Sample(t *testing.T) {
	out, err := run(t, "", "--config", fastConfig(t), "--sample", "2", "trace", "--algo", "dfs")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "CURRENT_NODE 0"), out)
}

func TestTrace_Errors(t *testing.T) {
	cfg := fastConfig(t)
	_, err := run(t, "", "--config", cfg, "trace")
	assert.ErrorContains(t, err, "missing FILE")

	_, err = run(t, "A B\n", "--config", cfg, "trace", "--algo", "astar", "--start", "A", "-")
	assert.ErrorContains(t, err, "unknown algorithm")

	_, err = run(t, "A B\n", "--config", cfg, "--log-level", "loud", "trace", "-")
	assert.Error(t, err)
}

func TestLayout_WritesSVG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.svg")
	_, err := run(t, "", "--config", fastConfig(t), "--sample", "1", "layout", "-o", path, "--sweeps", "2")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Equal(t, 3, strings.Count(string(data), "<circle"))
}

func TestPlay_WritesReplayFrames(t *testing.T) {
	dir := t.TempDir()
	out, err := run(t, "", "--config", fastConfig(t), "--sample", "1", "play", "--frames", dir, "--algo", "bfs", "--start", "0")
	require.NoError(t, err)

	steps := strings.Count(out, "\n")
	files, err := filepath.Glob(filepath.Join(dir, "frame-*.svg"))
	require.NoError(t, err)
	// One frame for the reset, one per step.
	assert.Equal(t, steps+1, len(files))
}

func TestPlay_RequiresFrames(t *testing.T) {
	_, err := run(t, "", "--config", fastConfig(t), "--sample", "1", "play")
	assert.ErrorContains(t, err, "--frames")
}

func TestSamples(t *testing.T) {
	out, err := run(t, "", "samples")
	require.NoError(t, err)
	assert.Contains(t, out, "triangle")
	assert.Equal(t, 12, strings.Count(out, "\n"))
}

func TestTrace_Generated(t *testing.T) {
	out, err := run(t, "", "--config", fastConfig(t), "--gen", "path:3", "--weights", "4", "trace", "--algo", "dijkstra", "--start", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "dist=map[0:0 1:4 2:8]")

	_, err = run(t, "", "--config", fastConfig(t), "--gen", "path:3", "--sample", "1", "trace")
	assert.ErrorContains(t, err, "mutually exclusive")

	_, err = run(t, "", "--config", fastConfig(t), "--gen", "ring:3", "trace")
	assert.ErrorContains(t, err, "unknown topology")
}

func TestTopologies(t *testing.T) {
	out, err := run(t, "", "topologies")
	require.NoError(t, err)
	assert.Contains(t, out, "grid:R:C\n")
}
