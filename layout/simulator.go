package layout

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/google/uuid"
	opensimplex "github.com/ojrac/opensimplex-go"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/katalvlaran/graphplay/core"
	"github.com/katalvlaran/graphplay/lane"
)

// LaneName is the name of the lane a Simulator creates for itself.
const LaneName = "layout"

const (
	// Below this distance two centers count as coincident.
	coincident = 1e-9
	noiseScale = 0.37
)

// Redrawer draws the whole scene from the current positions.
type Redrawer interface {
	Redraw() error
}

type nopRedrawer struct{}

func (nopRedrawer) Redraw() error { return nil }

// Simulator moves nodes of a graph under spring and repulsion forces.
//
// Every run captures a token of the layout lane; Start, Run and Stop
// supersede any earlier run, which stops at its next node update. Runs
// keep the positions already in the table, so starting again continues
// from where a stopped run left off.
type Simulator struct {
	cfg   Config
	pos   *Positions
	draw  Redrawer
	src   *lane.Source
	log   logrus.FieldLogger
	noise opensimplex.Noise

	mu    sync.Mutex
	state State
	gen   uint64
	err   error

	wg sync.WaitGroup
}

// NewSimulator wires a simulator to its position table and redraw target.
// A nil pos gets a fresh table built from cfg; a nil r draws nothing.
func NewSimulator(cfg Config, pos *Positions, r Redrawer, opts ...Option) *Simulator {
	if pos == nil {
		pos = cfg.NewPositions()
	}
	if r == nil {
		r = nopRedrawer{}
	}
	s := &Simulator{
		cfg:   cfg,
		pos:   pos,
		draw:  r,
		src:   lane.NewSource(LaneName),
		log:   logrus.StandardLogger(),
		noise: opensimplex.New(cfg.Seed),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Positions returns the table the simulator writes to.
func (s *Simulator) Positions() *Positions { return s.pos }

// Config returns the simulator constants.
func (s *Simulator) Config() Config { return s.cfg }

// Start supersedes any running loop and runs a new one in the background.
// Errors of the background run are available from Err after Wait.
func (s *Simulator) Start(ctx context.Context, g *core.Graph) error {
	if err := s.check(g); err != nil {
		return err
	}
	tok := s.begin()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.run(ctx, tok, g); err != nil {
			s.mu.Lock()
			s.err = err
			s.mu.Unlock()
		}
	}()

	return nil
}

// Run supersedes any running loop and runs a new one on the calling
// goroutine. It returns nil when all sweeps completed or the run was
// superseded, and ErrSimulationStopped when ctx ended it.
func (s *Simulator) Run(ctx context.Context, g *core.Graph) error {
	if err := s.check(g); err != nil {
		return err
	}

	return s.run(ctx, s.begin(), g)
}

// Stop supersedes the running loop without starting a new one.
// Positions stay where the loop left them.
func (s *Simulator) Stop() {
	s.src.Stop()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Running {
		s.state = Superseded
	}
	s.gen = 0
}

// Wait blocks until every loop started with Start has returned.
func (s *Simulator) Wait() { s.wg.Wait() }

// State reports the state of the latest run.
func (s *Simulator) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Err returns the error of the last background run that failed, if any.
func (s *Simulator) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

func (s *Simulator) check(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	return s.cfg.Validate()
}

func (s *Simulator) begin() *lane.Token {
	tok := s.src.Issue()

	s.mu.Lock()
	s.gen = tok.Generation()
	s.state = Running
	s.err = nil
	s.mu.Unlock()

	return tok
}

func (s *Simulator) finish(tok *lane.Token, st State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gen == tok.Generation() {
		s.state = st
	}
}

func (s *Simulator) run(ctx context.Context, tok *lane.Token, g *core.Graph) error {
	nodes := g.Nodes()
	nbrs := distinctNeighbors(g.UndirectedAdjList())
	placed := s.pos.Ensure(nodes)

	log := s.log.WithFields(logrus.Fields{
		"lane":       tok.Lane(),
		"generation": tok.Generation(),
		"run":        uuid.NewString(),
	})
	log.WithFields(logrus.Fields{"nodes": len(nodes), "placed": placed, "sweeps": s.cfg.Sweeps}).Debug("layout started")

	if !tok.Live() {
		s.finish(tok, Superseded)
		return nil
	}
	if err := s.draw.Redraw(); err != nil {
		s.finish(tok, Idle)
		return fmt.Errorf("layout: redraw: %w", err)
	}

	for sweep := 0; sweep < s.cfg.Sweeps; sweep++ {
		for _, v := range nodes {
			if err := ctx.Err(); err != nil {
				s.finish(tok, Idle)
				log.WithField("sweep", sweep).Debug("layout cancelled")
				return fmt.Errorf("%w: %w", ErrSimulationStopped, err)
			}
			if !tok.Live() {
				s.finish(tok, Superseded)
				log.WithField("sweep", sweep).Debug("layout superseded")
				return nil
			}

			at := s.pos.Snapshot()
			f := s.force(v, at, nodes, nbrs[v])
			s.pos.Set(v, r2.Add(at[v], r2.Scale(s.cfg.Rate, f)))

			if err := s.draw.Redraw(); err != nil {
				s.finish(tok, Idle)
				return fmt.Errorf("layout: redraw: %w", err)
			}
			tok.Sleep(ctx, s.cfg.Pace)
		}
	}

	s.finish(tok, Idle)
	log.Debug("layout finished")

	return nil
}

// force is the net force on v: a spring toward every distinct neighbor
// and a repulsion away from every other node.
func (s *Simulator) force(v int, at map[int]r2.Vec, nodes, nbrs []int) r2.Vec {
	p := at[v]
	var f r2.Vec
	for _, u := range nbrs {
		dir, d := s.direction(v, u, p, at[u])
		f = r2.Add(f, r2.Scale(s.cfg.K1*(d-s.cfg.RestLength), dir))
	}
	for _, u := range nodes {
		if u == v {
			continue
		}
		dir, d := s.direction(v, u, p, at[u])
		f = r2.Sub(f, r2.Scale(s.cfg.K2/(d*d), dir))
	}

	return f
}

// direction returns the unit vector from p (node v) toward q (node u) and
// the distance floored at MinDistance. Coincident centers get a direction
// from simplex noise keyed by the unordered pair, opposite for v and u.
func (s *Simulator) direction(v, u int, p, q r2.Vec) (r2.Vec, float64) {
	delta := r2.Sub(q, p)
	d := r2.Norm(delta)
	if d >= coincident {
		return r2.Scale(1/d, delta), math.Max(d, s.cfg.MinDistance)
	}

	lo, hi, sign := v, u, 1.0
	if lo > hi {
		lo, hi, sign = u, v, -1.0
	}
	theta := math.Pi * (1 + s.noise.Eval2(float64(lo)*noiseScale, float64(hi)*noiseScale))

	return r2.Vec{X: sign * math.Cos(theta), Y: sign * math.Sin(theta)}, s.cfg.MinDistance
}

// distinctNeighbors dedupes every neighbor list, keeping first appearance.
func distinctNeighbors(adj map[int][]int) map[int][]int {
	out := make(map[int][]int, len(adj))
	for v, list := range adj {
		seen := make(map[int]struct{}, len(list))
		uniq := make([]int, 0, len(list))
		for _, u := range list {
			if _, dup := seen[u]; dup {
				continue
			}
			seen[u] = struct{}{}
			uniq = append(uniq, u)
		}
		out[v] = uniq
	}

	return out
}
