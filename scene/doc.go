// Package scene is the drawing engine between the graph, its layout and a
// render.Renderer.
//
// A Scene owns:
//
//   - the label table: user labels ↔ dense node ids, assigned in order of
//     first appearance (isolated nodes first);
//   - one drawn edge per distinct ordered pair, labelled with the pair's
//     distinct weights ("4, 7");
//   - the current node fills and edge strokes, cleared by ResetDefaults;
//   - the directed/undirected display flag, which only toggles arrows.
//
// Scene satisfies layout.Redrawer and replay.Canvas, so the layout lane
// and the replay lane draw through the same object. Redraws are serialized.
//
// Loading a new graph replaces the core.Graph contents in place, keeps
// positions of surviving ids, drops positions of vanished ids and places
// new ids at random.
package scene
