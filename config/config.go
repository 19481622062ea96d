// Package config loads graphplay settings from YAML.
//
// Every field has a default (Default); a file only needs to name the
// values it changes:
//
//	canvas:
//	  width: 1024
//	layout:
//	  sweeps: 100
//	  pace: 0s
//	replay:
//	  delay: 250ms
//	log:
//	  level: debug
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/render"
	"github.com/katalvlaran/graphplay/replay"
	"github.com/katalvlaran/graphplay/scene"
)

// ErrInvalid wraps every Validate failure.
var ErrInvalid = errors.New("config: invalid value")

// Config is the root of the YAML document.
type Config struct {
	Canvas Canvas `yaml:"canvas"`
	Layout Layout `yaml:"layout"`
	Replay Replay `yaml:"replay"`
	Log    Log    `yaml:"log"`
	Server Server `yaml:"server"`
}

// Canvas sizes the drawing surface and its default styles.
type Canvas struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	NodeRadius float64 `yaml:"node_radius"`
	Background string  `yaml:"background"`
	NodeFill   string  `yaml:"node_fill"`
	EdgeStroke string  `yaml:"edge_stroke"`
	EdgeWidth  float64 `yaml:"edge_width"`
	Directed   bool    `yaml:"directed"`
}

// Layout holds the force simulation constants.
type Layout struct {
	K1          float64       `yaml:"k1"`
	K2          float64       `yaml:"k2"`
	RestLength  float64       `yaml:"rest_length"`
	Rate        float64       `yaml:"rate"`
	Sweeps      int           `yaml:"sweeps"`
	Pace        time.Duration `yaml:"pace"`
	MinDistance float64       `yaml:"min_distance"`
	Seed        int64         `yaml:"seed"`
}

// Replay holds the pacing and palette of the step visualizer.
type Replay struct {
	Delay  time.Duration `yaml:"delay"`
	Colors Colors        `yaml:"colors"`
}

// Colors mirrors replay.ColorScheme.
type Colors struct {
	CurrentNode         string  `yaml:"current_node"`
	EdgeTraversal       string  `yaml:"edge_traversal"`
	UnvisitedNeighbor   string  `yaml:"unvisited_neighbor"`
	EdgeClassification  string  `yaml:"edge_classification"`
	CurrentNodeFinished string  `yaml:"current_node_finished"`
	EdgeWidth           float64 `yaml:"edge_width"`
	TreeEdgeWidth       float64 `yaml:"tree_edge_width"`
}

// Log selects the logrus level and formatter ("text" or "json").
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Server configures `graphplay serve`.
type Server struct {
	Addr string `yaml:"addr"`
}

// Default returns the built-in settings.
func Default() *Config {
	lc := layout.DefaultConfig()
	cs := replay.DefaultColorScheme()
	st := scene.DefaultStyle()
	so := render.DefaultSVGOptions()

	return &Config{
		Canvas: Canvas{
			Width:      lc.Width,
			Height:     lc.Height,
			NodeRadius: lc.Radius,
			Background: so.Background,
			NodeFill:   st.NodeFill,
			EdgeStroke: st.EdgeStroke,
			EdgeWidth:  st.EdgeWidth,
		},
		Layout: Layout{
			K1:          lc.K1,
			K2:          lc.K2,
			RestLength:  lc.RestLength,
			Rate:        lc.Rate,
			Sweeps:      lc.Sweeps,
			Pace:        lc.Pace,
			MinDistance: lc.MinDistance,
			Seed:        lc.Seed,
		},
		Replay: Replay{
			Delay: replay.DefaultDelay,
			Colors: Colors{
				CurrentNode:         cs.CurrentNode,
				EdgeTraversal:       cs.EdgeTraversal,
				UnvisitedNeighbor:   cs.UnvisitedNeighbor,
				EdgeClassification:  cs.EdgeClassification,
				CurrentNodeFinished: cs.CurrentNodeFinished,
				EdgeWidth:           cs.EdgeWidth,
				TreeEdgeWidth:       cs.TreeEdgeWidth,
			},
		},
		Log:    Log{Level: "info", Format: "text"},
		Server: Server{Addr: "127.0.0.1:8080"},
	}
}

// Load reads the YAML file at path over the defaults. An empty path returns
// the defaults unchanged.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first value no component would accept.
func (c *Config) Validate() error {
	if err := c.LayoutConfig().Validate(); err != nil {
		return fmt.Errorf("%w: layout: %w", ErrInvalid, err)
	}
	switch {
	case c.Replay.Delay < 0:
		return fmt.Errorf("%w: replay delay %s < 0", ErrInvalid, c.Replay.Delay)
	case c.Canvas.EdgeWidth < 0 || c.Replay.Colors.EdgeWidth < 0 || c.Replay.Colors.TreeEdgeWidth < 0:
		return fmt.Errorf("%w: negative stroke width", ErrInvalid)
	case c.Log.Format != "text" && c.Log.Format != "json":
		return fmt.Errorf("%w: log format %q (want text or json)", ErrInvalid, c.Log.Format)
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return nil
}

// Save writes c as YAML to path.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}

// LayoutConfig maps the canvas and layout sections onto layout.Config.
func (c *Config) LayoutConfig() layout.Config {
	return layout.Config{
		K1:          c.Layout.K1,
		K2:          c.Layout.K2,
		RestLength:  c.Layout.RestLength,
		Rate:        c.Layout.Rate,
		Sweeps:      c.Layout.Sweeps,
		Radius:      c.Canvas.NodeRadius,
		Width:       c.Canvas.Width,
		Height:      c.Canvas.Height,
		Pace:        c.Layout.Pace,
		MinDistance: c.Layout.MinDistance,
		Seed:        c.Layout.Seed,
	}
}

// ColorScheme maps the replay colors onto replay.ColorScheme.
func (c *Config) ColorScheme() replay.ColorScheme {
	k := c.Replay.Colors

	return replay.ColorScheme{
		CurrentNode:         k.CurrentNode,
		EdgeTraversal:       k.EdgeTraversal,
		UnvisitedNeighbor:   k.UnvisitedNeighbor,
		EdgeClassification:  k.EdgeClassification,
		CurrentNodeFinished: k.CurrentNodeFinished,
		EdgeWidth:           k.EdgeWidth,
		TreeEdgeWidth:       k.TreeEdgeWidth,
	}
}

// Style returns the default scene styles.
func (c *Config) Style() scene.Style {
	return scene.Style{
		NodeFill:   c.Canvas.NodeFill,
		EdgeStroke: c.Canvas.EdgeStroke,
		EdgeWidth:  c.Canvas.EdgeWidth,
	}
}

// SVGOptions returns the document settings for render.SVG sinks.
func (c *Config) SVGOptions() render.SVGOptions {
	return render.SVGOptions{
		Width:      c.Canvas.Width,
		Height:     c.Canvas.Height,
		Background: c.Canvas.Background,
	}
}
