// Package layout places graph nodes on a bounded canvas with a
// spring/repulsion simulation.
//
// Model (per node update, nodes in ascending id order, Sweeps passes):
//
//	F(v) = Σ  K1·(d(v,u) − RestLength)·û(v→u)     over distinct undirected neighbors u
//	     − Σ  K2/d(v,u)²·û(v→u)                    over every other node u
//	pos(v) ← clamp(pos(v) + Rate·F(v))            into [Radius, bound−Radius]
//
// d is floored at MinDistance. When two centers coincide the unit vector
// comes from OpenSimplex noise keyed by the node pair, so the pair is
// pushed apart along a deterministic, non-zero direction.
//
// Cancellation:
//
//	A Simulator owns a lane.Source named "layout". Each Start/Run issues a
//	token; the loop checks it before every node update and sleeps Pace with
//	a token-aware sleep. Stop, or a later Start, retires the token and the
//	old loop returns without an error, leaving positions as they are.
//	Context cancellation is the process-level stop: Run then returns
//	ErrSimulationStopped.
//
// Positions is shared with the scene, which reads it on every redraw.
package layout
