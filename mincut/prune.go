package mincut

import (
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

// PruneDeadEnds drops cut tiles that wall off pockets of NORMAL terrain
// unreachable from any real exit, per spec.md §4.4.
//
// Algorithm: reclassify the room at full bounds; mark every cut
// coordinate UNWALKABLE in this working grid; seed a BFS queue with every
// TO_EXIT tile on the inner exit band (x=1, x=48, y=1, y=48); flood-fill
// from there, retagging every still-reachable NORMAL 8-neighbor TO_EXIT;
// finally keep only cut tiles with at least one 8-neighbor tagged TO_EXIT
// in the updated grid.
//
// The remaining cut still separates every PROTECTED region from every
// reachable exit: pruning only removes tiles adjacent to regions that are
// themselves unreachable from the exit set once the cut is in place.
func PruneDeadEnds(q terrain.Query, cut []tile.Pos) []tile.Pos {
	grid, err := terrain.Classify(q, tile.FullRoom())
	if err != nil {
		return cut
	}

	for _, p := range cut {
		grid.Set(p.X, p.Y, tile.Unwalkable)
	}

	const last = tile.Size - 1
	var queue []tile.Pos
	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			if (x == 1 || x == last-1 || y == 1 || y == last-1) && grid.At(x, y) == tile.ToExit {
				queue = append(queue, tile.Pos{X: x, Y: y})
			}
		}
	}

	for i := 0; i < len(queue); i++ {
		u := queue[i]
		tile.EachNeighbor8(u.X, u.Y, func(nx, ny int) {
			if grid.At(nx, ny) == tile.Normal {
				grid.Set(nx, ny, tile.ToExit)
				queue = append(queue, tile.Pos{X: nx, Y: ny})
			}
		})
	}

	kept := make([]tile.Pos, 0, len(cut))
	for _, p := range cut {
		hasToExitNeighbor := false
		tile.EachNeighbor8(p.X, p.Y, func(nx, ny int) {
			if grid.At(nx, ny) == tile.ToExit {
				hasToExitNeighbor = true
			}
		})
		if hasToExitNeighbor {
			kept = append(kept, p)
		}
	}

	return kept
}
