// Package builder assembles deterministic sample graphs for the tracers,
// the layout simulator and the CLI.
//
// The package offers:
//
//   - BuildGraph: creates a core.Graph and applies Constructors in order.
//   - Topology constructors: Cycle, Path, Star, Wheel, Complete, Grid and
//     RandomSparse.
//   - Recipe: the text form used by the CLI (--gen) and the websocket
//     "generate" command, e.g. "cycle:6+star:4" with weights "1..9".
//     Parts become disjoint components.
//   - Sample(i): the numbered gallery graphs (triangle, K5, K8, the
//     32-node cluster, the binary tree, ...), listed by Samples.
//   - Configuration primitives:
//     - BuilderOption:  a function that mutates builderConfig before use.
//     - WithSeed/WithRand, WithWeightFn, WithDirected, WithBase.
//   - Edge-weight distributions (WeightFn implementations):
//     - DefaultWeightFn:  constant DefaultEdgeWeight.
//     - ConstantWeightFn: fixed user-provided value.
//     - UniformWeightFn:  uniform integer in [min,max].
//
// Node ids are base, base+1, ... in construction order (base defaults to 0).
// Unless WithDirected is given, every connection is stored as a pair of
// opposite edges, which is how the visualizer models undirected graphs.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors never panic; they return errors wrapping the package
//     sentinels (ErrTooFewVertices, ErrInvalidProbability, ...).
//   - Same options, seed and constructor order produce identical graphs.
package builder
