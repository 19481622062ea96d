// Package dijkstra defines the options and sentinel errors of the
// shortest-path step trace.
//
// Options:
//
//	– WithContext:         cancellation for long traces.
//	– WithOnStep:          observe each emitted step.
//	– MaxDistance:         nodes whose tentative distance exceeds this cap are never selected.
//	– InfEdgeThreshold:    edges with weight >= threshold are treated as impassable.
//
// Errors (sentinel):
//
//	– ErrNilGraph         if the provided graph pointer is nil.
//	– ErrBadMaxDistance   if MaxDistance < 0 (panics in the option constructor).
//	– ErrBadInfThreshold  if InfEdgeThreshold <= 0 (panics in the option constructor).
//
// A negative edge weight is not an error: it yields a one-step trace whose
// only step has kind trace.InvalidGraph and reason NegativeWeightReason.
package dijkstra

import (
	"context"
	"errors"
	"math"

	"github.com/katalvlaran/graphplay/trace"
)

// Sentinel errors returned by the Dijkstra tracer.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or negative.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Reasons carried by non-traversal steps.
const (
	NegativeWeightReason = "negative-weight edges unsupported"
	CollapseReason       = "multi-edges collapsed to minimum weight"
)

// Options configures the tracer.
//
// MaxDistance      – cap on distances to explore. Must be ≥ 0. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight ≥ this threshold are skipped. Must be > 0.
type Options struct {
	Ctx              context.Context
	OnStep           func(trace.Step)
	MaxDistance      int64
	InfEdgeThreshold int64
}

// Option represents a functional option for configuring the tracer.
type Option func(*Options)

// WithContext sets the context checked once per selected node.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnStep registers a callback invoked for each emitted step.
func WithOnStep(fn func(trace.Step)) Option {
	return func(o *Options) {
		o.OnStep = fn
	}
}

// WithMaxDistance sets a maximum distance threshold.
// Nodes whose shortest distance would exceed this value are not explored.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxDistance.Error())
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold defines a weight threshold at or above which edges
// are considered non-traversable.
func WithInfEdgeThreshold(threshold int64) Option {
	return func(o *Options) {
		if threshold <= 0 {
			panic(ErrBadInfThreshold.Error())
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns an Options struct initialized with defaults:
//   - Ctx:              context.Background()
//   - OnStep:           nil
//   - MaxDistance:      math.MaxInt64 (no limit)
//   - InfEdgeThreshold: math.MaxInt64 (no edge is impassable)
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: math.MaxInt64,
	}
}
