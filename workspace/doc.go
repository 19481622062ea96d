// Package workspace wires one interactive graph session: a scene drawing a
// graph through a renderer, the layout simulator moving its nodes and the
// replay driver animating traces on it, all configured from config.Config.
//
// It carries the editor rules of the visualizer: loading a graph stops every
// replay and clears the step log, an empty input never replaces the current
// graph, and starting a replay clears the step log first.
package workspace
