// Package render is the drawing boundary of graphplay.
//
// The scene never draws pixels itself. On every redraw it clears the
// Renderer and places each node and each edge again:
//
//	r.ClearScene()
//	r.PlaceNode(id, x, y, radius, label, fill)    // all nodes first
//	r.PlaceEdge(from, to, stroke, width, directed, label)
//	render.Flush(r)                               // optional Flusher
//
// Edges are drawn between node surfaces, not centers; the endpoints are
// computed from the node positions placed earlier in the same frame
// (SurfacePoint).
//
// Sinks:
//
//   - Builder  accumulates the current Frame; embedded by the other sinks.
//   - SVG      writes one SVG document per flushed frame.
//   - Recorder keeps every flushed frame and counts calls (tests, CLI).
//
// Renderers are called from the layout and replay lanes concurrently; all
// sinks in this package are safe for concurrent use.
package render
