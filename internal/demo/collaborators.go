package demo

import (
	"fmt"

	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/tile"
)

// StraightLinePathFinder is a host-free stand-in for the game's real
// pathfinder: it steps one 8-connected tile at a time toward the goal,
// ignoring every PathOptions knob, until it is within range.
type StraightLinePathFinder struct{}

// FindPath implements layout.PathFinder.
func (StraightLinePathFinder) FindPath(start, goal tile.Pos, opts layout.PathOptions) ([]tile.Pos, error) {
	path := []tile.Pos{start}
	cur := start
	for chebyshev(cur, goal) > opts.Range {
		cur = stepToward(cur, goal)
		path = append(path, cur)
		if len(path) > tile.Size*2 {
			break
		}
	}
	return path, nil
}

func chebyshev(a, b tile.Pos) int {
	dx, dy := abs(a.X-b.X), abs(a.Y-b.Y)
	if dx > dy {
		return dx
	}
	return dy
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func stepToward(cur, goal tile.Pos) tile.Pos {
	nx, ny := cur.X, cur.Y
	switch {
	case goal.X > cur.X:
		nx++
	case goal.X < cur.X:
		nx--
	}
	switch {
	case goal.Y > cur.Y:
		ny++
	case goal.Y < cur.Y:
		ny--
	}
	return tile.Pos{X: nx, Y: ny}
}

// EmptyLookup reports every tile as unoccupied, for a demo room with no
// creeps or construction sites.
type EmptyLookup struct{}

// Look implements layout.Lookup.
func (EmptyLookup) Look(x, y int) []layout.Occupant { return nil }

// ConsoleMemory implements layout.Memory by printing every write, a
// stand-in for the host's persistent memory store.
type ConsoleMemory struct{}

// Set implements layout.Memory.
func (ConsoleMemory) Set(key, value string) {
	fmt.Printf("demo: memory[%s] = %s\n", key, value)
}
