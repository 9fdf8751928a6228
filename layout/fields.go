package layout

import (
	"github.com/katalvlaran/roomplanner/field"
	"github.com/katalvlaran/roomplanner/tile"
)

// wallTest adapts a classified grid to the field.BFSCost wall predicate.
func wallTest(grid *tile.Grid) tile.WallTest {
	return func(x, y int) bool {
		return grid.At(x, y) == tile.Unwalkable
	}
}

// sourceField accumulates a radius-3 BFS from every source position into
// a single field, per spec.md §4.6.
func sourceField(grid *tile.Grid, sources []tile.Pos) *field.Field {
	var f field.Field
	f.Fill(field.PosInf)
	var explored [tile.Size][tile.Size]bool
	isWall := wallTest(grid)
	for _, s := range sources {
		field.BFSCost(&f, s.X, s.Y, 3, isWall, &explored)
	}

	return &f
}

// mineralField is a radius-2 BFS seeded at mineral.
func mineralField(grid *tile.Grid, mineral tile.Pos) *field.Field {
	var f field.Field
	f.Fill(field.PosInf)
	field.BFSCost(&f, mineral.X, mineral.Y, 2, wallTest(grid), nil)

	return &f
}

// controllerField is a radius-4 BFS seeded at controller.
func controllerField(grid *tile.Grid, controller tile.Pos) *field.Field {
	var f field.Field
	f.Fill(field.PosInf)
	field.BFSCost(&f, controller.X, controller.Y, 4, wallTest(grid), nil)

	return &f
}

// storageField is a radius-0 BFS seeded at the storage placement: only
// the storage tile itself reads 0, every other tile keeps its default.
func storageField(storage tile.Pos) *field.Field {
	var f field.Field
	f.Fill(field.PosInf)
	f.Set(storage.X, storage.Y, 0)

	return &f
}

// wallField runs a multi-source BFS seeded at every wall-or-edge tile
// with value 0; each BFS step the new tile's value is
// (previousValue+10)*0.75, a soft preference for tiles a few steps off
// walls (spec.md §4.6). The recurrence converges toward 30 as depth
// grows, so depths beyond the grid's diameter add no further gradient.
func wallField(grid *tile.Grid) *field.Field {
	var f field.Field
	f.Fill(0)

	var explored [tile.Size][tile.Size]bool
	type qitem struct {
		x, y int
		val  float64
	}
	var queue []qitem
	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			isEdge := x == 0 || y == 0 || x == tile.Size-1 || y == tile.Size-1
			if grid.At(x, y) == tile.Unwalkable || isEdge {
				explored[y][x] = true
				queue = append(queue, qitem{x, y, 0})
			}
		}
	}

	for i := 0; i < len(queue); i++ {
		it := queue[i]
		nextVal := (it.val + 10) * 0.75
		tile.EachNeighbor8(it.x, it.y, func(nx, ny int) {
			if explored[ny][nx] {
				return
			}
			explored[ny][nx] = true
			f.Set(nx, ny, nextVal)
			queue = append(queue, qitem{nx, ny, nextVal})
		})
	}

	return &f
}
