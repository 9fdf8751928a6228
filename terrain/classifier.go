package terrain

import "github.com/katalvlaran/roomplanner/tile"

// Query is the host's terrain lookup: bit 0 of the returned integer is set
// when (x,y) is a wall. This is the exact shape spec.md §6 requires of the
// "Terrain query" external collaborator.
type Query func(x, y int) int

// IsWall reports whether q marks (x,y) as a wall.
func (q Query) IsWall(x, y int) bool {
	return q(x, y)&1 != 0
}

// Classify labels every tile of the room UNWALKABLE | NORMAL | TO_EXIT |
// EXIT, following spec.md §4.1.
//
// Every tile starts UNWALKABLE. For (x,y) inside bounds with a non-wall
// terrain query, the tile becomes NORMAL; it is upgraded to TO_EXIT if it
// sits on the bounds edge, then further upgraded to EXIT if it sits on the
// room edge (x=0, y=0, x=49, y=49). A second pass marks the tile one step
// in from any EXIT as TO_EXIT, independently on each of the four room
// edges, using a three-cell moving window centered on the candidate row or
// column (see DESIGN.md for the open question this resolves).
//
// Returns an error if bounds is invalid (spec.md §4.2's "invalid bounds"
// failure surfaces here, not inside the flow-graph builder, so callers see
// it before any graph work begins).
func Classify(q Query, bounds tile.Bounds) (tile.Grid, error) {
	var grid tile.Grid
	if !bounds.Valid() {
		return grid, &InvalidBoundsError{Bounds: bounds}
	}

	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			grid.Set(x, y, tile.Unwalkable)
		}
	}

	for y := bounds.Y1; y <= bounds.Y2; y++ {
		for x := bounds.X1; x <= bounds.X2; x++ {
			if q.IsWall(x, y) {
				continue
			}
			tag := tile.Normal
			if bounds.OnEdge(x, y) {
				tag = tile.ToExit
			}
			if isRoomEdge(x, y) {
				tag = tile.Exit
			}
			grid.Set(x, y, tag)
		}
	}

	markExitAdjacency(&grid)

	return grid, nil
}

// isRoomEdge reports whether (x,y) sits on the room's outer boundary,
// independent of the requested sub-rectangle.
func isRoomEdge(x, y int) bool {
	return x == 0 || y == 0 || x == tile.Size-1 || y == tile.Size-1
}

// markExitAdjacency upgrades tiles one step in from an EXIT to TO_EXIT, on
// all four room edges, using the three-cell moving window spec.md §4.1
// describes: for inner coordinate c in [1,48], if any of the three
// boundary cells at c-1, c, c+1 is EXIT, the tile one step in at c is
// marked TO_EXIT.
func markExitAdjacency(grid *tile.Grid) {
	const last = tile.Size - 1

	for c := 1; c <= last-1; c++ {
		if columnHasExit(grid, 0, c-1, c+1) {
			grid.Set(1, c, tile.ToExit)
		}
		if columnHasExit(grid, last, c-1, c+1) {
			grid.Set(last-1, c, tile.ToExit)
		}
		if rowHasExit(grid, 0, c-1, c+1) {
			grid.Set(c, 1, tile.ToExit)
		}
		if rowHasExit(grid, last, c-1, c+1) {
			grid.Set(c, last-1, tile.ToExit)
		}
	}
}

// columnHasExit reports whether any of (x, yLo..yHi) is EXIT.
func columnHasExit(grid *tile.Grid, x, yLo, yHi int) bool {
	for y := yLo; y <= yHi; y++ {
		if grid.At(x, y) == tile.Exit {
			return true
		}
	}
	return false
}

// rowHasExit reports whether any of (xLo..xHi, y) is EXIT.
func rowHasExit(grid *tile.Grid, y, xLo, xHi int) bool {
	for x := xLo; x <= xHi; x++ {
		if grid.At(x, y) == tile.Exit {
			return true
		}
	}
	return false
}

// InvalidBoundsError reports a rejected bounds rectangle, per spec.md §4.2
// and §7's invalid-bounds failure semantics.
type InvalidBoundsError struct {
	Bounds tile.Bounds
}

func (e *InvalidBoundsError) Error() string {
	return "terrain: invalid bounds"
}
