package layout

import "github.com/katalvlaran/roomplanner/tile"

// PathOptions mirrors the host path-finder options spec.md §6 requires:
// ignore creeps, ignore destructible structures, ignore roads, a swamp
// cost, a heuristic weight, and a target range.
type PathOptions struct {
	IgnoreCreeps                 bool
	IgnoreDestructibleStructures bool
	IgnoreRoads                  bool
	SwampCost                    int
	HeuristicWeight              float64
	Range                        int
}

// DefaultRoadOptions is the option set the layout planner uses when
// routing roads back to storage (spec.md §4.6 step 5).
func DefaultRoadOptions(rng int) PathOptions {
	return PathOptions{
		IgnoreCreeps:                 true,
		IgnoreDestructibleStructures: true,
		IgnoreRoads:                  true,
		SwampCost:                    1,
		HeuristicWeight:              1,
		Range:                        rng,
	}
}

// PathFinder is the host's shortest-path collaborator: given a start,
// goal, and options, it returns an ordered list of tiles from start to
// goal inclusive of intermediate tiles.
type PathFinder interface {
	FindPath(start, goal tile.Pos, opts PathOptions) ([]tile.Pos, error)
}

// Lookup is the host's structure/construction-site collaborator. A
// non-empty result means (x,y) is currently occupied by something the
// planner must not build over.
type Lookup interface {
	Look(x, y int) []Occupant
}

// Occupant is an opaque marker for whatever the host's look() returns;
// the planner only cares whether the slice Lookup.Look returns is empty.
type Occupant struct {
	Kind string
}

// Memory is the host's mutable memory bag. BuildLayout writes
// containerPos and linkPos into it, keyed by the resource/controller id,
// one key at a time (spec.md §5: "written exclusively by the layout
// planner's container/link placement step, one key at a time").
type Memory interface {
	Set(key, value string)
}
