package flow

// MaxFlowEdmondsKarp computes max flow from s to t using repeated BFS
// augmenting paths. It exists purely as an independent cross-check for
// dinic_test.go — two different algorithms against the same Graph
// constructor should always agree on the flow value, which is the
// strongest test available short of a reference max-flow oracle.
func MaxFlowEdmondsKarp(g *Graph, s, t int) (int, error) {
	if s == t {
		return -1, ErrSameSourceSink
	}

	total := 0
	parentEdge := make([]int, g.n)
	parentVertex := make([]int, g.n)

	for {
		for i := range parentVertex {
			parentVertex[i] = -1
		}
		parentVertex[s] = s
		queue := []int{s}
		for i := 0; i < len(queue) && parentVertex[t] == -1; i++ {
			u := queue[i]
			for idx, e := range g.edges[u] {
				if e.Residual() > 0 && parentVertex[e.To] == -1 {
					parentVertex[e.To] = u
					parentEdge[e.To] = idx
					queue = append(queue, e.To)
				}
			}
		}
		if parentVertex[t] == -1 {
			break
		}

		bottleneck := maxInt
		for v := t; v != s; v = parentVertex[v] {
			e := g.edges[parentVertex[v]][parentEdge[v]]
			if e.Residual() < bottleneck {
				bottleneck = e.Residual()
			}
		}
		for v := t; v != s; v = parentVertex[v] {
			g.push(parentVertex[v], parentEdge[v], bottleneck)
		}
		total += bottleneck
	}

	return total, nil
}
