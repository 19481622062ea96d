package layout

import (
	"math/rand"
	"sort"
	"sync"

	"gonum.org/v1/gonum/spatial/r2"
)

// Positions is the node id → center table shared by the simulator and the
// scene. Every stored point lies in [radius, width-radius] × [radius,
// height-radius]. Safe for concurrent use.
type Positions struct {
	mu     sync.RWMutex
	width  float64
	height float64
	radius float64
	rng    *rand.Rand
	at     map[int]r2.Vec
}

// NewPositions returns an empty table for a width×height canvas holding
// circles of the given radius. seed drives the placement of new nodes.
func NewPositions(width, height, radius float64, seed int64) *Positions {
	return &Positions{
		width:  width,
		height: height,
		radius: radius,
		rng:    rand.New(rand.NewSource(seed)),
		at:     make(map[int]r2.Vec),
	}
}

// Radius is the node circle radius.
func (p *Positions) Radius() float64 { return p.radius }

// Bounds returns the canvas width and height.
func (p *Positions) Bounds() (float64, float64) { return p.width, p.height }

// Ensure places every node of ids that has no position yet at a
// pseudo-random in-bounds point and returns how many were placed.
// Existing positions are kept.
func (p *Positions) Ensure(ids []int) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	placed := 0
	for _, id := range ids {
		if _, ok := p.at[id]; ok {
			continue
		}
		p.at[id] = r2.Vec{
			X: p.rng.Float64()*(p.width-2*p.radius) + p.radius,
			Y: p.rng.Float64()*(p.height-2*p.radius) + p.radius,
		}
		placed++
	}

	return placed
}

// Get returns the center of id.
func (p *Positions) Get(id int) (r2.Vec, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.at[id]

	return v, ok
}

// Set stores v for id after clamping it into bounds and returns the
// stored value.
func (p *Positions) Set(id int, v r2.Vec) r2.Vec {
	v = p.Clamp(v)
	p.mu.Lock()
	p.at[id] = v
	p.mu.Unlock()

	return v
}

// Clamp confines v to [radius, bound-radius] on both axes.
func (p *Positions) Clamp(v r2.Vec) r2.Vec {
	return r2.Vec{
		X: clamp(v.X, p.radius, p.width-p.radius),
		Y: clamp(v.Y, p.radius, p.height-p.radius),
	}
}

// Prune drops every id not in keep and returns how many were dropped.
func (p *Positions) Prune(keep []int) int {
	set := make(map[int]struct{}, len(keep))
	for _, id := range keep {
		set[id] = struct{}{}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	dropped := 0
	for id := range p.at {
		if _, ok := set[id]; !ok {
			delete(p.at, id)
			dropped++
		}
	}

	return dropped
}

// Reset drops every position.
func (p *Positions) Reset() {
	p.mu.Lock()
	p.at = make(map[int]r2.Vec)
	p.mu.Unlock()
}

// Len is the number of placed nodes.
func (p *Positions) Len() int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return len(p.at)
}

// Snapshot returns a copy of the table.
func (p *Positions) Snapshot() map[int]r2.Vec {
	p.mu.RLock()
	defer p.mu.RUnlock()

	out := make(map[int]r2.Vec, len(p.at))
	for id, v := range p.at {
		out[id] = v
	}

	return out
}

// IDs returns the placed ids in ascending order.
func (p *Positions) IDs() []int {
	p.mu.RLock()
	ids := make([]int, 0, len(p.at))
	for id := range p.at {
		ids = append(ids, id)
	}
	p.mu.RUnlock()
	sort.Ints(ids)

	return ids
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}

	return x
}
