package replay

import (
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/lane"
)

// Sentinel errors for the replay driver.
var (
	// ErrNilCanvas is returned by Play and Start on a driver without a canvas.
	ErrNilCanvas = errors.New("replay: canvas is nil")
)

// LaneName is the name of the lane a Driver creates for itself.
const LaneName = "replay"

// Delay bounds and the slider mapping: delay = SpeedBase - v milliseconds.
const (
	DefaultDelay = time.Second
	MinDelay     = 10 * time.Millisecond
	SpeedBase    = 2010
)

// Canvas is the surface a replay paints on.
type Canvas interface {
	SetNodeFill(id int, fill string)
	SetEdgeStroke(from, to int, color string, width float64)
	ResetDefaults()
	Redraw() error
}

// ColorScheme maps step kinds to visual intents.
type ColorScheme struct {
	CurrentNode         string
	EdgeTraversal       string
	UnvisitedNeighbor   string
	EdgeClassification  string
	CurrentNodeFinished string

	// EdgeWidth is the stroke width of traversed and non-tree edges.
	EdgeWidth float64
	// TreeEdgeWidth is the stroke width of edges classified as tree edges.
	TreeEdgeWidth float64
}

// DefaultColorScheme returns the classic palette.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		CurrentNode:         "lightBlue",
		EdgeTraversal:       "cyan",
		UnvisitedNeighbor:   "yellow",
		EdgeClassification:  "black",
		CurrentNodeFinished: "lightGreen",
		EdgeWidth:           2,
		TreeEdgeWidth:       4,
	}
}

// Option customizes a Driver.
type Option func(*Driver)

// WithDelay sets the initial pause after each step.
func WithDelay(d time.Duration) Option {
	return func(dr *Driver) { dr.SetDelay(d) }
}

// WithColors replaces the default palette.
func WithColors(cs ColorScheme) Option {
	return func(dr *Driver) { dr.colors = cs }
}

// WithStepLog sets the sink for step lines.
func WithStepLog(l StepLog) Option {
	return func(dr *Driver) {
		if l != nil {
			dr.steps = l
		}
	}
}

// WithLabeler renders node ids in step lines, e.g. scene.LabelOf.
func WithLabeler(name func(int) string) Option {
	return func(dr *Driver) { dr.name = name }
}

// WithLogger sets the logger for run start/stop lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(dr *Driver) {
		if l != nil {
			dr.log = l
		}
	}
}

// WithSource makes the driver share an existing lane.
func WithSource(src *lane.Source) Option {
	return func(dr *Driver) {
		if src != nil {
			dr.src = src
		}
	}
}
