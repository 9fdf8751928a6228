package field

import "github.com/katalvlaran/roomplanner/tile"

// BFSCost runs a bounded 8-neighbor BFS seeded at (sx,sy) and writes
// tile-distance values into field, per spec.md §4.5.
//
// field[sx][sy] is set to 0 and the seed is marked explored. While the
// queue is non-empty, each popped (x,y,d) with d >= maxRange is skipped
// without expanding; otherwise every unexplored, non-wall 8-neighbor is
// marked explored, gets field value d+1, and — if d+1 < maxRange — is
// enqueued.
//
// explored is independent scratch state: field's pre-existing values on
// tiles BFSCost never reaches are left untouched, which is how callers
// seed "untouched" cells for later min/can-place checks (spec.md §4.5).
// explored may be nil, in which case BFSCost allocates its own; callers
// accumulating several seeds into the same field (e.g. sourceField) pass
// a shared explored grid across calls so a tile claimed by one seed is
// never revisited by a later one.
func BFSCost(f *Field, sx, sy, maxRange int, isWall tile.WallTest, explored *[tile.Size][tile.Size]bool) {
	if explored == nil {
		explored = &[tile.Size][tile.Size]bool{}
	}
	if explored[sy][sx] {
		return
	}

	type qitem struct{ x, y, d int }
	queue := []qitem{{sx, sy, 0}}
	explored[sy][sx] = true
	f.Set(sx, sy, 0)

	for i := 0; i < len(queue); i++ {
		it := queue[i]
		if it.d >= maxRange {
			continue
		}
		tile.EachNeighbor8(it.x, it.y, func(nx, ny int) {
			if explored[ny][nx] || isWall(nx, ny) {
				return
			}
			explored[ny][nx] = true
			f.Set(nx, ny, float64(it.d+1))
			if it.d+1 < maxRange {
				queue = append(queue, qitem{nx, ny, it.d + 1})
			}
		})
	}
}
