// SPDX-License-Identifier: MIT
// Package: graphplay/builder
//
// recipe.go: text form of a generated graph, shared by the CLI and the
// websocket server.
//
// Grammar:
//   • Topology: one or more parts joined by "+", each "name:arg[:arg]":
//       cycle:N  path:N  star:N  wheel:N  complete:N  grid:R:C  random:N:P
//     Parts become disjoint components; part k starts right after the
//     largest id of the parts before it.
//   • Weights: "" (DefaultEdgeWeight), "W" (constant) or "A..B" (uniform,
//     inclusive).
//
// Determinism:
//   • Part k is seeded with Seed+k; identical recipes give identical graphs.

package builder

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/graphplay/core"
)

// ErrBadRecipe indicates a topology or weight text that does not parse,
// or a recipe field out of range.
var ErrBadRecipe = errors.New("builder: malformed recipe")

// ErrUnknownTopology indicates a topology name with no constructor.
var ErrUnknownTopology = errors.New("builder: unknown topology")

const (
	partSep   = "+"
	argSep    = ":"
	rangeSep  = ".."
	nameGrid  = "grid"
	nameRand  = "random"
	usageGrid = "grid:R:C"
	usageRand = "random:N:P"
)

// sized maps single-argument topologies to their constructors.
var sized = map[string]func(int) Constructor{
	"cycle":    Cycle,
	"path":     Path,
	"star":     Star,
	"wheel":    Wheel,
	"complete": Complete,
}

// Recipe describes a generated graph, e.g. the CLI's
// --gen cycle:6 --weights 1..9 --seed 7.
type Recipe struct {
	Topology string
	Weights  string
	Seed     int64
	Directed bool
	// Base is the first id of the first part.
	Base int
}

// Topologies lists the accepted topology forms, sorted.
func Topologies() []string {
	out := make([]string, 0, len(sized)+2)
	for name := range sized {
		out = append(out, name+argSep+"N")
	}
	out = append(out, usageGrid, usageRand)
	sort.Strings(out)

	return out
}

// ParseTopology returns the constructor for a single part such as
// "grid:3:4".
func ParseTopology(s string) (Constructor, error) {
	fields := strings.Split(strings.TrimSpace(s), argSep)
	name, args := strings.ToLower(fields[0]), fields[1:]

	if fn, ok := sized[name]; ok {
		n, err := recipeInts(s, args, 1)
		if err != nil {
			return nil, err
		}
		return fn(n[0]), nil
	}

	switch name {
	case nameGrid:
		n, err := recipeInts(s, args, 2)
		if err != nil {
			return nil, err
		}
		return Grid(n[0], n[1]), nil
	case nameRand:
		if len(args) != 2 {
			return nil, fmt.Errorf("%w: %q: want %s", ErrBadRecipe, s, usageRand)
		}
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRecipe, s, err)
		}
		p, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRecipe, s, err)
		}
		return RandomSparse(n, p), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownTopology, name)
}

// ParseWeights turns "", "W" or "A..B" into a weight option. The empty
// string yields a nil option (keep the default).
func ParseWeights(s string) (BuilderOption, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	lo, hi, isRange := strings.Cut(s, rangeSep)
	min, err := strconv.ParseInt(strings.TrimSpace(lo), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: weights %q: %v", ErrBadRecipe, s, err)
	}
	if !isRange {
		return WithConstantWeight(min), nil
	}
	max, err := strconv.ParseInt(strings.TrimSpace(hi), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: weights %q: %v", ErrBadRecipe, s, err)
	}
	if max < min {
		return nil, fmt.Errorf("%w: weights %q: max < min", ErrBadRecipe, s)
	}

	return WithUniformWeight(min, max), nil
}

// Build generates the graph r describes.
func (r Recipe) Build() (*core.Graph, error) {
	g := core.NewGraph()
	if err := r.Apply(g); err != nil {
		return nil, err
	}

	return g, nil
}

// Apply adds the components of r to g. The first part starts at r.Base or
// after the largest id already in g, whichever is greater.
func (r Recipe) Apply(g *core.Graph) error {
	if r.Base < 0 {
		return fmt.Errorf("%w: base %d < 0", ErrBadRecipe, r.Base)
	}
	if strings.TrimSpace(r.Topology) == "" {
		return fmt.Errorf("%w: empty topology", ErrBadRecipe)
	}
	weights, err := ParseWeights(r.Weights)
	if err != nil {
		return err
	}

	parts := strings.Split(r.Topology, partSep)
	cons := make([]Constructor, len(parts))
	for i, part := range parts {
		if cons[i], err = ParseTopology(part); err != nil {
			return err
		}
	}

	base := r.Base
	for i, fn := range cons {
		if next := nextID(g); next > base {
			base = next
		}
		opts := []BuilderOption{WithSeed(r.Seed + int64(i)), WithBase(base)}
		if weights != nil {
			opts = append(opts, weights)
		}
		if r.Directed {
			opts = append(opts, WithDirected())
		}
		if err := Apply(g, opts, fn); err != nil {
			return fmt.Errorf("part %q: %w", strings.TrimSpace(parts[i]), err)
		}
	}

	return nil
}

// nextID is one past the largest node id of g, or 0 for an empty graph.
func nextID(g *core.Graph) int {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return 0
	}

	return nodes[len(nodes)-1] + 1
}

func recipeInts(s string, args []string, want int) ([]int, error) {
	if len(args) != want {
		return nil, fmt.Errorf("%w: %q: want %d argument(s), got %d", ErrBadRecipe, s, want, len(args))
	}
	out := make([]int, want)
	for i, a := range args {
		n, err := strconv.Atoi(strings.TrimSpace(a))
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadRecipe, s, err)
		}
		out[i] = n
	}

	return out, nil
}
