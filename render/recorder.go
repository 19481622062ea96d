package render

import (
	"sync"
	"sync/atomic"
	"time"
)

// Recorder is a Renderer that keeps flushed frames in memory and counts
// every call. A non-zero Delay makes each call sleep, which simulates a
// slow surface.
type Recorder struct {
	Builder

	// Delay is slept inside every PlaceNode, PlaceEdge and ClearScene.
	Delay time.Duration

	// Keep bounds the number of retained frames; 0 keeps all of them.
	Keep int

	nodes   atomic.Int64
	edges   atomic.Int64
	clears  atomic.Int64
	flushes atomic.Int64

	mu     sync.Mutex
	frames []Frame
}

// ClearScene implements Renderer.
func (r *Recorder) ClearScene() {
	r.pause()
	r.clears.Add(1)
	r.Builder.ClearScene()
}

// PlaceNode implements Renderer.
func (r *Recorder) PlaceNode(id int, x, y, radius float64, label, fill string) {
	r.pause()
	r.nodes.Add(1)
	r.Builder.PlaceNode(id, x, y, radius, label, fill)
}

// PlaceEdge implements Renderer.
func (r *Recorder) PlaceEdge(from, to int, stroke string, width float64, directed bool, label string) {
	r.pause()
	r.edges.Add(1)
	r.Builder.PlaceEdge(from, to, stroke, width, directed, label)
}

// Flush stores a copy of the current frame.
func (r *Recorder) Flush() error {
	r.flushes.Add(1)
	f := r.Frame()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	if r.Keep > 0 && len(r.frames) > r.Keep {
		r.frames = append(r.frames[:0], r.frames[len(r.frames)-r.Keep:]...)
	}

	return nil
}

// Frames returns the retained frames, oldest first.
func (r *Recorder) Frames() []Frame {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]Frame, len(r.frames))
	copy(out, r.frames)

	return out
}

// Last returns the most recently flushed frame.
func (r *Recorder) Last() (Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.frames) == 0 {
		return Frame{}, false
	}

	return r.frames[len(r.frames)-1], true
}

// Calls returns the total number of Renderer calls seen so far.
func (r *Recorder) Calls() int64 {
	return r.nodes.Load() + r.edges.Load() + r.clears.Load()
}

// Clears returns the number of ClearScene calls.
func (r *Recorder) Clears() int64 { return r.clears.Load() }

// Flushes returns the number of Flush calls.
func (r *Recorder) Flushes() int64 { return r.flushes.Load() }

func (r *Recorder) pause() {
	if r.Delay > 0 {
		time.Sleep(r.Delay)
	}
}
