// Package field implements the bounded 8-neighbor BFS distance fields
// spec.md §4.5 describes, and the two combinators the layout planner uses
// to blend several of them into a single placement score.
package field
