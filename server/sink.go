package server

import (
	"sync"

	"github.com/katalvlaran/graphplay/render"
)

// frameSink renders into a Builder and parks each completed frame in a
// single slot; the connection writer picks up whatever is newest.
type frameSink struct {
	render.Builder

	mu      sync.Mutex
	pending *render.Frame
	kick    chan struct{}
}

func newFrameSink() *frameSink {
	return &frameSink{kick: make(chan struct{}, 1)}
}

// Flush implements render.Flusher.
func (s *frameSink) Flush() error {
	f := s.Frame()
	s.mu.Lock()
	s.pending = &f
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}

	return nil
}

// take returns and clears the parked frame.
func (s *frameSink) take() *render.Frame {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := s.pending
	s.pending = nil

	return f
}

// stepSink forwards step lines to the client.
type stepSink struct {
	send func(Event)
}

func (s stepSink) Log(line string) { s.send(Event{Type: TypeStep, Line: line}) }

func (s stepSink) Clear() { s.send(Event{Type: TypeClearSteps}) }
