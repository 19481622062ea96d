// Package lane provides the generation-token source that lets only the most
// recently started animation of a lane keep producing effects.
//
// Each animated loop (layout, replay) captures the Token it was issued when
// it starts and checks Live before every externally observable effect. A
// later Issue on the same Source retires the token; the old loop notices at
// its next checkpoint and returns on its own. Nothing is interrupted
// forcibly and no error is produced.
//
// Usage:
//
//	src := lane.NewSource("replay")
//	tok := src.Issue()
//	for _, step := range steps {
//	    if !tok.Live() {
//	        return
//	    }
//	    apply(step)
//	    if !tok.Sleep(ctx, delay) {
//	        return
//	    }
//	}
//
// Concurrency:
//
//	Issue, Current and Stop are safe for concurrent use. Live is a single
//	atomic load. Two loops of the same lane may overlap briefly after a new
//	Issue; the old one stops at its next checkpoint.
package lane

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Source issues monotonically superseding tokens for one lane.
type Source struct {
	name string

	mu      sync.Mutex
	gen     uint64
	current *Token
}

// NewSource returns a Source with no current token.
func NewSource(name string) *Source {
	return &Source{name: name}
}

// Name returns the lane name given to NewSource.
func (s *Source) Name() string { return s.name }

// Issue retires the current token, if any, and returns a fresh live one.
// Complexity: O(1).
func (s *Source) Issue() *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current != nil {
		s.current.retire()
	}
	s.gen++
	t := &Token{lane: s.name, gen: s.gen, done: make(chan struct{})}
	t.live.Store(true)
	s.current = t

	return t
}

// Stop retires the current token without handing out its successor.
func (s *Source) Stop() {
	_ = s.Issue()
}

// Current returns the most recently issued token, or nil before the first Issue.
func (s *Source) Current() *Token {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Token is the liveness handle of one loop run. Tokens are never reused.
type Token struct {
	lane string
	gen  uint64

	live atomic.Bool
	once sync.Once
	done chan struct{}
}

// Live reports whether t is still the current token of its lane.
// A nil token is never live.
func (t *Token) Live() bool {
	return t != nil && t.live.Load()
}

// Done is closed when t is superseded.
func (t *Token) Done() <-chan struct{} { return t.done }

// Generation is the 1-based issue number of t within its lane.
func (t *Token) Generation() uint64 { return t.gen }

// Lane names the Source that issued t.
func (t *Token) Lane() string { return t.lane }

// Sleep pauses for d and reports whether the caller should continue: it
// returns false as soon as t is superseded or ctx is done, without waiting
// out the rest of d. A non-positive d only checks liveness.
func (t *Token) Sleep(ctx context.Context, d time.Duration) bool {
	if !t.Live() {
		return false
	}
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return t.Live()
	case <-t.done:
		return false
	case <-ctx.Done():
		return false
	}
}

func (t *Token) retire() {
	t.once.Do(func() {
		t.live.Store(false)
		close(t.done)
	})
}
