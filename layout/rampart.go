package layout

import (
	"github.com/katalvlaran/roomplanner/mincut"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

// CostMatrix is the 50×50 pathfinding cost array Calculate returns: 0xff
// marks a tile left exposed after ramparts are placed, 0 marks every
// other tile (spec.md §4.6).
type CostMatrix [tile.Size][tile.Size]byte

// Calculate runs the ramparts & exposure pipeline spec.md §4.6 describes:
//
//  1. Expand protected by a depth-3 BFS moat around each seed: each
//     expansion step appends the neighbor with depth+1 as a new
//     protected tile; tiles at depth <= 3 continue to expand, tiles at
//     depth == 4 are appended but do not themselves expand.
//  2. Append the controller's 8-neighbors to the protected set.
//  3. Call the min-cut driver with the expanded protected set.
//  4. Retag every cut tile RAMPART_MIN on a fresh full-room grid; BFS
//     from every EXIT tile through everything that is not UNWALKABLE and
//     not RAMPART_MIN, retagging visited tiles EXPOSED.
//  5. Build the cost matrix: 0xff at every EXPOSED tile, 0 elsewhere.
func Calculate(q terrain.Query, protected []tile.Pos, controller tile.Pos, opts mincut.DriverOptions) ([]tile.Pos, CostMatrix) {
	expanded := expandProtectedMoat(protected)
	tile.EachNeighbor8(controller.X, controller.Y, func(nx, ny int) {
		expanded = append(expanded, tile.Pos{X: nx, Y: ny})
	})

	ramparts := mincut.GetCutTiles(q, expanded, nil, opts)

	grid, err := terrain.Classify(q, tile.FullRoom())
	var cost CostMatrix
	if err != nil {
		return ramparts, cost
	}
	for _, p := range ramparts {
		grid.Set(p.X, p.Y, tile.RampartMin)
	}

	var queue []tile.Pos
	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			if grid.At(x, y) == tile.Exit {
				queue = append(queue, tile.Pos{X: x, Y: y})
				grid.Set(x, y, tile.Exposed)
			}
		}
	}
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		tile.EachNeighbor8(u.X, u.Y, func(nx, ny int) {
			t := grid.At(nx, ny)
			if t == tile.Unwalkable || t == tile.RampartMin || t == tile.Exposed {
				return
			}
			grid.Set(nx, ny, tile.Exposed)
			queue = append(queue, tile.Pos{X: nx, Y: ny})
		})
	}

	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			if grid.At(x, y) == tile.Exposed {
				cost[y][x] = 0xff
			}
		}
	}

	return ramparts, cost
}

// expandProtectedMoat implements spec.md §4.6's "expand the protected set
// by a BFS of depth 3 around each protected tile": each expansion step
// appends the neighbor with depth+1 as a new protected tile; tiles at
// depth <= 3 continue to expand. Tiles at depth exactly 4 are appended to
// the returned list but do not continue the BFS (spec.md §9 Open
// Question, resolved as literally specified: a 3-wide moat, not a
// 4-wide one).
func expandProtectedMoat(seeds []tile.Pos) []tile.Pos {
	type item struct {
		pos   tile.Pos
		depth int
	}
	visited := make(map[tile.Pos]bool, len(seeds)*9)
	var result []tile.Pos
	var queue []item
	for _, s := range seeds {
		if !visited[s] {
			visited[s] = true
			result = append(result, s)
			queue = append(queue, item{pos: s, depth: 0})
		}
	}

	for i := 0; i < len(queue); i++ {
		it := queue[i]
		tile.EachNeighbor8(it.pos.X, it.pos.Y, func(nx, ny int) {
			np := tile.Pos{X: nx, Y: ny}
			if visited[np] {
				return
			}
			visited[np] = true
			result = append(result, np)
			if it.depth+1 <= 3 {
				queue = append(queue, item{pos: np, depth: it.depth + 1})
			}
		})
	}

	return result
}
