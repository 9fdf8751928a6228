// Package tile defines the grid primitives shared by every other package in
// this module: the 50×50 coordinate space, tile tags, inclusive rectangular
// bounds, the 8-neighbor offset table, and the bijection between a tile
// coordinate and its split-graph vertex id.
//
// Nothing in this package performs I/O or depends on a running room; it is
// pure data plus O(1) arithmetic, the same role core/types.go plays for the
// rest of the lvlath graph stack.
package tile
