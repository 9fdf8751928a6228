package flow

import "fmt"

// MaxFlow computes the maximum flow from s to t in g using Dinic's
// algorithm, per spec.md §4.2.
//
// Steps:
//  1. Returns -1 together with ErrSameSourceSink if s == t, so callers
//     can distinguish it from a real zero-flow graph (mincut's driver
//     treats any MaxFlow error as an empty cut).
//  2. Repeat until a BFS layering pass fails to reach t:
//     a. BFS from s over residual edges (Flow < Cap) builds level[].
//     b. Reset the per-vertex DFS cursor iter[u] to 0 for every u.
//     c. Repeatedly DFS from s along strictly-increasing-level edges,
//     pushing the bottleneck of each found path, until a DFS call
//     returns 0.
//  3. Sum of all pushed bottlenecks is the max flow.
//
// Complexity: O(E·√V) on this package's unit-capacity TOP→BOT edges
// (spec.md §4.2); O(V·E) per phase in general via the iter-cursor DFS.
func MaxFlow(g *Graph, s, t int, opts DinicOptions) (int, error) {
	if s == t {
		return -1, ErrSameSourceSink
	}
	opts.normalize()

	total := 0
	level := make([]int, g.n)
	iter := make([]int, g.n)

	for {
		if err := opts.Ctx.Err(); err != nil {
			return total, err
		}

		bfsLevel(g, s, level)
		if level[t] < 0 {
			break
		}

		for i := range iter {
			iter[i] = 0
		}
		for {
			pushed := dfsAugment(g, level, iter, s, t, maxInt)
			if pushed == 0 {
				break
			}
			total += pushed
			if opts.Verbose {
				fmt.Printf("dinic: pushed %d, total %d\n", pushed, total)
			}
		}
	}

	return total, nil
}

const maxInt = int(^uint(0) >> 1)

// bfsLevel resets level[] to -1, sets level[s]=0, and assigns
// level[v]=level[u]+1 to every vertex v reachable from s over a residual
// edge not yet leveled. Callers check level[t] to decide whether the sink
// was reached (spec.md §4.2's BFS layer pass).
func bfsLevel(g *Graph, s int, level []int) {
	for i := range level {
		level[i] = -1
	}
	level[s] = 0
	queue := make([]int, 0, len(level))
	queue = append(queue, s)
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		for _, e := range g.edges[u] {
			if e.Residual() > 0 && level[e.To] < 0 {
				level[e.To] = level[u] + 1
				queue = append(queue, e.To)
			}
		}
	}
}

// dfsAugment advances iter[u] as it searches, per spec.md §4.2: "DFS
// advances the cursor instead of restarting so total work per phase is
// O(V·E)." At each u it tries only the edge at iter[u]; on success it
// returns immediately without resetting the cursor, so the next call
// resumes exactly where this one left off.
func dfsAugment(g *Graph, level, iter []int, u, t, bottleneck int) int {
	if u == t {
		return bottleneck
	}
	for ; iter[u] < len(g.edges[u]); iter[u]++ {
		e := g.edges[u][iter[u]]
		if level[e.To] != level[u]+1 || e.Residual() <= 0 {
			continue
		}
		send := e.Residual()
		if bottleneck < send {
			send = bottleneck
		}
		pushed := dfsAugment(g, level, iter, e.To, t, send)
		if pushed > 0 {
			g.push(u, iter[u], pushed)

			return pushed
		}
	}

	return 0
}
