// Package flow implements the split-vertex max-flow reduction spec.md §4.2
// describes: a directed graph of integer-capacity edges stored as an
// adjacency list of {to, reverse-index, capacity, flow} records, solved
// with Dinic's blocking-flow algorithm.
//
// The graph here is index-addressed (vertices are plain ints, not the
// string-keyed *core.Graph the rest of this module's sibling library
// uses) because the min-cut reduction is dense and fixed-size: 5002
// vertices for a 50×50 room, known entirely up front. An adjacency-list-
// of-structs representation avoids a map lookup on every edge relaxation,
// which matters at the vertex counts Dinic visits per phase on this graph.
//
// # Algorithms
//
//   - Dinic
//
//   - Method: level graph (BFS) + blocking flow (DFS with per-vertex
//     iteration cursors that are advanced, never restarted, within a
//     phase — see dinic.go's dfsAugment and its iter slice).
//
//   - Time: O(E·√V) on this module's unit-capacity TOP→BOT edges.
//
//   - Memory: O(V + E) for the level array, iteration cursors, and the
//     adjacency list itself.
//
//   - EdmondsKarp
//
//   - Method: BFS augmenting paths, one per phase.
//
//   - Time: O(V·E²) worst case.
//
//   - Exported for this package's own cross-checks: dinic_test.go
//     verifies MaxFlow and MaxFlowEdmondsKarp agree on a small
//     unit-capacity fixture (TestAgreesWithEdmondsKarp).
//     The min-cut driver in package mincut always calls Dinic.
//
// # Errors
//
//	ErrSameSourceSink - s == t was passed to MaxFlow; spec.md §7 treats
//	                    this as a sentinel -1, never as a panic.
//
// See cut.go for CutTiles, the residual-graph walk that turns a computed
// max flow back into the set of saturated unit edges spec.md calls the
// minimum cut.
package flow
