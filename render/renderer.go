package render

import "sync"

// Renderer receives one complete frame per redraw.
type Renderer interface {
	PlaceNode(id int, x, y, radius float64, label, fill string)
	PlaceEdge(from, to int, stroke string, width float64, directed bool, label string)
	ClearScene()
}

// Flusher is implemented by renderers that emit a frame once it is complete.
type Flusher interface {
	Flush() error
}

// Flush calls r.Flush if r is a Flusher.
func Flush(r Renderer) error {
	if f, ok := r.(Flusher); ok {
		return f.Flush()
	}

	return nil
}

// NodeShape is a placed node circle.
type NodeShape struct {
	ID     int     `json:"id"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"r"`
	Label  string  `json:"label"`
	Fill   string  `json:"fill"`
}

// EdgeShape is a placed edge, already cut at both node surfaces.
type EdgeShape struct {
	From     int     `json:"from"`
	To       int     `json:"to"`
	X1       float64 `json:"x1"`
	Y1       float64 `json:"y1"`
	X2       float64 `json:"x2"`
	Y2       float64 `json:"y2"`
	Stroke   string  `json:"stroke"`
	Width    float64 `json:"width"`
	Directed bool    `json:"directed"`
	Label    string  `json:"label,omitempty"`
}

// Frame is everything placed between two ClearScene calls.
type Frame struct {
	Nodes []NodeShape `json:"nodes"`
	Edges []EdgeShape `json:"edges"`
}

// Clone returns a deep copy of f.
func (f Frame) Clone() Frame {
	out := Frame{
		Nodes: make([]NodeShape, len(f.Nodes)),
		Edges: make([]EdgeShape, len(f.Edges)),
	}
	copy(out.Nodes, f.Nodes)
	copy(out.Edges, f.Edges)

	return out
}

// Builder implements Renderer by accumulating the current Frame.
// The zero value is ready to use.
type Builder struct {
	mu      sync.Mutex
	frame   Frame
	index   map[int]int // node id → position in frame.Nodes
	dropped int
}

// ClearScene starts a new, empty frame.
func (b *Builder) ClearScene() {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.frame = Frame{}
	b.index = make(map[int]int)
	b.dropped = 0
}

// PlaceNode adds or replaces the node id in the current frame.
func (b *Builder) PlaceNode(id int, x, y, radius float64, label, fill string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.index == nil {
		b.index = make(map[int]int)
	}
	shape := NodeShape{ID: id, X: x, Y: y, Radius: radius, Label: label, Fill: fill}
	if i, ok := b.index[id]; ok {
		b.frame.Nodes[i] = shape
		return
	}
	b.index[id] = len(b.frame.Nodes)
	b.frame.Nodes = append(b.frame.Nodes, shape)
}

// PlaceEdge adds an edge between two nodes already placed in this frame.
// Edges to unplaced nodes are dropped and counted (see Dropped).
func (b *Builder) PlaceEdge(from, to int, stroke string, width float64, directed bool, label string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	fi, ok1 := b.index[from]
	ti, ok2 := b.index[to]
	if !ok1 || !ok2 {
		b.dropped++
		return
	}
	a, z := b.frame.Nodes[fi], b.frame.Nodes[ti]
	x1, y1 := SurfacePoint(a.X, a.Y, z.X, z.Y, a.Radius)
	x2, y2 := SurfacePoint(z.X, z.Y, a.X, a.Y, z.Radius)
	b.frame.Edges = append(b.frame.Edges, EdgeShape{
		From: from, To: to,
		X1: x1, Y1: y1, X2: x2, Y2: y2,
		Stroke: stroke, Width: width, Directed: directed, Label: label,
	})
}

// Frame returns a copy of the frame under construction.
func (b *Builder) Frame() Frame {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.frame.Clone()
}

// Dropped reports how many edges of the current frame referenced an
// unplaced node.
func (b *Builder) Dropped() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.dropped
}
