package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/layout"
	"github.com/katalvlaran/graphplay/render"
)

// Sentinel errors for scene operations.
var (
	// ErrNotFound is returned by ResolveLabel for a label not in the graph.
	ErrNotFound = errors.New("scene: label not found")

	// ErrBadRow is returned by Load for an edge row without two endpoints.
	ErrBadRow = errors.New("scene: malformed edge row")
)

// Style holds the default look every ResetDefaults returns to.
type Style struct {
	NodeFill   string
	EdgeStroke string
	EdgeWidth  float64
}

// DefaultStyle is white nodes and 2px black edges.
func DefaultStyle() Style {
	return Style{NodeFill: "white", EdgeStroke: "black", EdgeWidth: 2}
}

type stroke struct {
	color string
	width float64
}

type pair struct{ from, to int }

// edgeUI is one drawn edge per distinct ordered pair; parallel edges share
// it and its label lists their distinct weights.
type edgeUI struct {
	pair
	label string
}

// Option customizes a Scene.
type Option func(*Scene)

// WithStyle replaces the default look.
func WithStyle(st Style) Option {
	return func(s *Scene) { s.style = st }
}

// WithDirected sets the initial arrow display.
func WithDirected(directed bool) Option {
	return func(s *Scene) { s.directed = directed }
}

// Scene is the drawing engine: it owns the label table and the per-node
// and per-edge styles, and redraws everything through a Renderer.
type Scene struct {
	graph *core.Graph
	pos   *layout.Positions
	out   render.Renderer
	style Style

	mu       sync.RWMutex
	labels   *labelTable
	edges    []edgeUI
	fills    map[int]string
	strokes  map[pair]stroke
	directed bool

	drawMu sync.Mutex
}

// New returns an empty scene drawing g at the positions in pos onto out.
func New(g *core.Graph, pos *layout.Positions, out render.Renderer, opts ...Option) *Scene {
	s := &Scene{
		graph:   g,
		pos:     pos,
		out:     out,
		style:   DefaultStyle(),
		labels:  newLabelTable(),
		fills:   make(map[int]string),
		strokes: make(map[pair]stroke),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Graph returns the graph the scene draws.
func (s *Scene) Graph() *core.Graph { return s.graph }

// Positions returns the position table the scene reads.
func (s *Scene) Positions() *layout.Positions { return s.pos }

// Load replaces the graph with rows of [from, to] or [from, to, weight]
// labels plus isolated node labels. Ids follow first appearance, isolated
// nodes first. Weights are read with ParseWeight. On error nothing changes.
func (s *Scene) Load(rows [][]string, isolated []string) error {
	table := newLabelTable()
	iso := make([]int, 0, len(isolated))
	for _, label := range isolated {
		iso = append(iso, table.intern(label))
	}
	edges := make([]core.Edge, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 || len(row) > 3 {
			return fmt.Errorf("%w: row %d has %d fields", ErrBadRow, i+1, len(row))
		}
		e := core.Edge{From: table.intern(row[0]), To: table.intern(row[1])}
		if len(row) == 3 {
			e.Weight = ParseWeight(row[2])
		}
		edges = append(edges, e)
	}
	if err := s.graph.ReadEdgeList(edges, iso); err != nil {
		return err
	}

	s.adopt(table)

	return nil
}

// LoadGraph redraws an already populated graph, labelling node id by its
// decimal form.
func (s *Scene) LoadGraph(g *core.Graph) error {
	table := newLabelTable()
	nodes := g.Nodes()
	for _, id := range nodes {
		table.assign(id, strconv.Itoa(id))
	}
	if err := s.graph.ReadEdgeList(g.EdgeList(), nodes); err != nil {
		return err
	}
	s.adopt(table)

	return nil
}

// adopt swaps in the label table of the freshly loaded graph and rebuilds
// the edge list and positions.
func (s *Scene) adopt(table *labelTable) {
	var edges []edgeUI
	seen := make(map[pair]struct{})
	for _, e := range s.graph.EdgeList() {
		p := pair{e.From, e.To}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		edges = append(edges, edgeUI{pair: p, label: joinWeights(s.graph.Weights(e.From, e.To))})
	}

	nodes := s.graph.Nodes()
	s.pos.Prune(nodes)
	s.pos.Ensure(nodes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.labels = table
	s.edges = edges
	s.fills = make(map[int]string)
	s.strokes = make(map[pair]stroke)
}

// ResolveLabel returns the id of the node labelled text.
func (s *Scene) ResolveLabel(text string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.labels.lookup(text)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, text)
	}

	return id, nil
}

// Label returns the label of node id.
func (s *Scene) Label(id int) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.labels.label(id)
}

// LabelOf returns the label of id, or its decimal form when unknown.
func (s *Scene) LabelOf(id int) string {
	if l, ok := s.Label(id); ok {
		return l
	}

	return strconv.Itoa(id)
}

// EdgeLabel is the label drawn on from→to: its distinct weights joined by
// ", ", or "" when there is no such edge.
func (s *Scene) EdgeLabel(from, to int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.edges {
		if e.from == from && e.to == to {
			return e.label
		}
	}

	return ""
}

// SetDirected toggles arrow heads and redraws.
func (s *Scene) SetDirected(directed bool) error {
	s.mu.Lock()
	s.directed = directed
	s.mu.Unlock()

	return s.Redraw()
}

// Directed reports whether arrows are drawn.
func (s *Scene) Directed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.directed
}

// SetNodeFill colors node id until the next ResetDefaults.
func (s *Scene) SetNodeFill(id int, fill string) {
	s.mu.Lock()
	s.fills[id] = fill
	s.mu.Unlock()
}

// SetEdgeStroke styles every edge from→to until the next ResetDefaults.
func (s *Scene) SetEdgeStroke(from, to int, color string, width float64) {
	s.mu.Lock()
	s.strokes[pair{from, to}] = stroke{color: color, width: width}
	s.mu.Unlock()
}

// ResetDefaults drops every node fill and edge stroke.
func (s *Scene) ResetDefaults() {
	s.mu.Lock()
	s.fills = make(map[int]string)
	s.strokes = make(map[pair]stroke)
	s.mu.Unlock()
}

// NodeFill returns the current fill of id.
func (s *Scene) NodeFill(id int) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if f, ok := s.fills[id]; ok {
		return f
	}

	return s.style.NodeFill
}

// Redraw clears the renderer and places every node, then every edge.
// Redraws from different lanes never interleave.
func (s *Scene) Redraw() error {
	s.drawMu.Lock()
	defer s.drawMu.Unlock()

	nodes := s.graph.Nodes()
	radius := s.pos.Radius()

	s.mu.RLock()
	s.out.ClearScene()
	for _, id := range nodes {
		at, ok := s.pos.Get(id)
		if !ok {
			continue
		}
		fill, ok := s.fills[id]
		if !ok {
			fill = s.style.NodeFill
		}
		label, _ := s.labels.label(id)
		s.out.PlaceNode(id, at.X, at.Y, radius, label, fill)
	}
	for _, e := range s.edges {
		st, ok := s.strokes[e.pair]
		if !ok {
			st = stroke{color: s.style.EdgeStroke, width: s.style.EdgeWidth}
		}
		s.out.PlaceEdge(e.from, e.to, st.color, st.width, s.directed, e.label)
	}
	s.mu.RUnlock()

	return render.Flush(s.out)
}

func joinWeights(ws []int64) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.FormatInt(w, 10)
	}

	return strings.Join(parts, ", ")
}
