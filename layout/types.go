package layout

import (
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/graphplay/lane"
)

// Sentinel errors for the layout simulator.
var (
	// ErrSimulationStopped is returned by Run when its context ends the loop.
	// Supersession by another run is not an error.
	ErrSimulationStopped = errors.New("layout: simulation stopped")

	// ErrBadConfig wraps every Config.Validate failure.
	ErrBadConfig = errors.New("layout: invalid config")

	// ErrGraphNil is returned when Run or Start receive a nil graph.
	ErrGraphNil = errors.New("layout: graph is nil")
)

// Config holds the physical constants of the simulation.
type Config struct {
	// K1 is the spring constant along every incident edge.
	K1 float64
	// K2 is the repulsion constant between every pair of nodes.
	K2 float64
	// RestLength is the spring length at which an edge exerts no force.
	RestLength float64
	// Rate scales the net force into a displacement.
	Rate float64
	// Sweeps is the number of passes over all nodes.
	Sweeps int
	// Radius of node circles; positions stay at least Radius from the border.
	Radius float64
	// Width and Height of the canvas.
	Width, Height float64
	// Pace is slept after every node update.
	Pace time.Duration
	// MinDistance floors pairwise distances in the force terms.
	MinDistance float64
	// Seed drives initial placement and the coincident-node direction noise.
	Seed int64
}

// DefaultConfig returns the classic constants: k1=10, k2=1500², l=130,
// rate 0.01, 250 sweeps on an 800×600 canvas with 19px nodes.
func DefaultConfig() Config {
	return Config{
		K1:          10,
		K2:          1500 * 1500,
		RestLength:  130,
		Rate:        0.01,
		Sweeps:      250,
		Radius:      19,
		Width:       800,
		Height:      600,
		Pace:        time.Millisecond,
		MinDistance: 1,
		Seed:        1,
	}
}

// Validate reports the first out-of-range field.
func (c Config) Validate() error {
	switch {
	case c.Sweeps < 0:
		return fmt.Errorf("%w: sweeps %d < 0", ErrBadConfig, c.Sweeps)
	case c.Rate <= 0:
		return fmt.Errorf("%w: rate %g must be positive", ErrBadConfig, c.Rate)
	case c.Radius < 0:
		return fmt.Errorf("%w: radius %g < 0", ErrBadConfig, c.Radius)
	case c.Width < 2*c.Radius || c.Height < 2*c.Radius:
		return fmt.Errorf("%w: canvas %gx%g smaller than a node", ErrBadConfig, c.Width, c.Height)
	case c.MinDistance <= 0:
		return fmt.Errorf("%w: min distance %g must be positive", ErrBadConfig, c.MinDistance)
	case c.Pace < 0:
		return fmt.Errorf("%w: pace %s < 0", ErrBadConfig, c.Pace)
	}

	return nil
}

// NewPositions returns a table sized and seeded from c.
func (c Config) NewPositions() *Positions {
	return NewPositions(c.Width, c.Height, c.Radius, c.Seed)
}

// State of a Simulator's latest run.
type State int

const (
	// Idle: never started, finished all sweeps, or ended by its context.
	Idle State = iota
	// Running: a loop is moving nodes.
	Running
	// Superseded: the last run was stopped or replaced before finishing.
	Superseded
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Superseded:
		return "superseded"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// Option customizes a Simulator.
type Option func(*Simulator)

// WithLogger sets the logger for run start/stop lines.
func WithLogger(l logrus.FieldLogger) Option {
	return func(s *Simulator) {
		if l != nil {
			s.log = l
		}
	}
}

// WithSource makes the simulator share an existing lane.
func WithSource(src *lane.Source) Option {
	return func(s *Simulator) {
		if src != nil {
			s.src = src
		}
	}
}
