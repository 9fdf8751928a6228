// Package layout implements the iterative building-cluster placement
// search spec.md §4.6 describes: for each cluster, compute a weighted sum
// of distance fields, find its minimum over valid placements, commit the
// placement, and connect it back to storage with the host's path-finder.
//
// It also implements the "ramparts & exposure" pipeline (Calculate),
// which expands a protected set with a moat BFS, hands it to the mincut
// package, and derives the pathfinding cost matrix the host persists
// alongside the layout.
//
// Every structure kind is a tagged variant (Kind, see types.go), not a
// string key, per spec.md §9's redesign note on the original's
// stringly-typed cluster maps.
package layout
