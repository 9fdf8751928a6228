// Package mincut builds the split-vertex flow graph spec.md §4.2 describes
// from a classified room, runs Dinic over it, and converts the resulting
// min cut back into rampart tile coordinates.
//
// GetCutTiles is the package's single public entry point for callers that
// just want "the ramparts needed to protect these tiles"; BuildGraph and
// PruneDeadEnds are exported separately as the individual stages
// GetCutTiles runs, and the tests drive BuildGraph directly. The layout
// package's rampart/exposure pipeline (layout.Calculate) calls
// GetCutTiles with its own expanded protected set.
package mincut
