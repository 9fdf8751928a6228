package flow

// CutSourceEdge identifies one saturated edge on the minimum cut: the
// vertex it departs from, and its index within that vertex's adjacency
// slice (so callers can, if needed, re-inspect g.Edges(From)[Index]).
type CutSourceEdge struct {
	From  int
	Index int
}

// CutTiles enumerates the saturated edges that form a minimum s-cut,
// after a max-flow computation has already saturated the graph, per
// spec.md §4.2:
//
//  1. Reset level[]; BFS from s following only residual edges
//     (Flow < Cap); this reaches exactly the source side of the min cut.
//  2. Walk every vertex u reached by that BFS; for each of u's edges
//     that is saturated (Flow == Cap, Cap > 0) and whose destination was
//     NOT reached by the residual BFS, record it — its source endpoint
//     is on the min cut.
//
// CutTiles must be called with the same Graph MaxFlow already solved;
// it performs no flow computation of its own.
func CutTiles(g *Graph, s int) []CutSourceEdge {
	reached := make([]bool, g.n)
	reached[s] = true
	queue := []int{s}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range g.edges[u] {
			if e.Residual() > 0 && !reached[e.To] {
				reached[e.To] = true
				queue = append(queue, e.To)
			}
		}
	}

	var cut []CutSourceEdge
	for _, u := range queue {
		for idx, e := range g.edges[u] {
			if e.Cap > 0 && e.Flow == e.Cap && !reached[e.To] {
				cut = append(cut, CutSourceEdge{From: u, Index: idx})
			}
		}
	}

	return cut
}
