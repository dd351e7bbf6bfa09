// Package terminal is the console boundary: a cell grid write primitive and a
// non-blocking key source.
//
// The Terminal interface is what the render loop flushes frames into; Screen
// implements it, together with KeySource, on top of tcell. Everything above this
// package deals in logical keys and attribute bitmasks only.
package terminal
