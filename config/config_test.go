package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphplay/config"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/replay"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graphplay.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	return path
}

func TestDefault_MatchesComponents(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, layout.DefaultConfig(), cfg.LayoutConfig())
	assert.Equal(t, replay.DefaultColorScheme(), cfg.ColorScheme())
	assert.Equal(t, replay.DefaultDelay, cfg.Replay.Delay)
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesOnlyNamedFields(t *testing.T) {
	path := writeFile(t, `
canvas:
  width: 1024
layout:
  sweeps: 10
  pace: 0s
replay:
  delay: 250ms
  colors:
    current_node: red
log:
  level: debug
  format: json
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 1024.0, cfg.Canvas.Width)
	assert.Equal(t, 600.0, cfg.Canvas.Height)
	assert.Equal(t, 10, cfg.Layout.Sweeps)
	assert.Zero(t, cfg.Layout.Pace)
	assert.Equal(t, 130.0, cfg.Layout.RestLength)
	assert.Equal(t, 250*time.Millisecond, cfg.Replay.Delay)
	assert.Equal(t, "red", cfg.ColorScheme().CurrentNode)
	assert.Equal(t, "cyan", cfg.ColorScheme().EdgeTraversal)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, 1024.0, cfg.SVGOptions().Width)
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading config: ")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = config.Load(writeFile(t, "layout: [1, 2"))
	assert.ErrorContains(t, err, "parsing config: ")

	_, err = config.Load(writeFile(t, "layout:\n  rate: 0\n"))
	assert.ErrorIs(t, err, config.ErrInvalid)
	assert.ErrorIs(t, err, layout.ErrBadConfig)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"negative delay", func(c *config.Config) { c.Replay.Delay = -time.Second }},
		{"bad format", func(c *config.Config) { c.Log.Format = "xml" }},
		{"bad level", func(c *config.Config) { c.Log.Level = "loud" }},
		{"negative width", func(c *config.Config) { c.Replay.Colors.TreeEdgeWidth = -1 }},
		{"tiny canvas", func(c *config.Config) { c.Canvas.Width = 10 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalid)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	cfg := config.Default()
	cfg.Layout.Seed = 42
	cfg.Replay.Delay = 3 * time.Second
	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, cfg.Save(path))

	got, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
