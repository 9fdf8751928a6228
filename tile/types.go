package tile

import "fmt"

// Size is the fixed edge length of a room. Every grid in this module is
// Size×Size; there is no support for other room sizes.
const Size = 50

// Tag classifies a single tile for the purposes of the min-cut reduction.
type Tag int

// Tile tags. Values match spec: UNWALKABLE(-1), NORMAL(0), PROTECTED(1),
// TO_EXIT(2), EXIT(3), EXPOSED(5), RAMPART_MIN(9).
const (
	Unwalkable Tag = -1
	Normal     Tag = 0
	Protected  Tag = 1
	ToExit     Tag = 2
	Exit       Tag = 3
	Exposed    Tag = 5
	RampartMin Tag = 9
)

// String renders a Tag for logs and test failure messages.
func (t Tag) String() string {
	switch t {
	case Unwalkable:
		return "UNWALKABLE"
	case Normal:
		return "NORMAL"
	case Protected:
		return "PROTECTED"
	case ToExit:
		return "TO_EXIT"
	case Exit:
		return "EXIT"
	case Exposed:
		return "EXPOSED"
	case RampartMin:
		return "RAMPART_MIN"
	default:
		return fmt.Sprintf("Tag(%d)", int(t))
	}
}

// Pos is a room-local tile coordinate.
type Pos struct {
	X, Y int
}

// InBounds reports whether p lies within the fixed 50×50 room.
func (p Pos) InBounds() bool {
	return p.X >= 0 && p.X < Size && p.Y >= 0 && p.Y < Size
}

// Bounds is an inclusive rectangle: x1 <= x <= x2, y1 <= y <= y2.
type Bounds struct {
	X1, Y1, X2, Y2 int
}

// FullRoom is the default bounds covering the entire room.
func FullRoom() Bounds {
	return Bounds{X1: 0, Y1: 0, X2: Size - 1, Y2: Size - 1}
}

// Valid reports whether b satisfies 0 <= x1 < x2 <= 49, 0 <= y1 < y2 <= 49.
func (b Bounds) Valid() bool {
	return b.X1 >= 0 && b.X1 < b.X2 && b.X2 <= Size-1 &&
		b.Y1 >= 0 && b.Y1 < b.Y2 && b.Y2 <= Size-1
}

// Contains reports whether (x,y) falls inside the inclusive rectangle.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// OnEdge reports whether (x,y) lies on the boundary of b.
func (b Bounds) OnEdge(x, y int) bool {
	return x == b.X1 || x == b.X2 || y == b.Y1 || y == b.Y2
}

// Neighbors8 is the fixed 8-connectivity offset table, enumerated in a
// stable order so BFS tie-breaks (insertion order) are reproducible across
// runs, per the determinism guarantee in spec.md §5.
var Neighbors8 = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// EachNeighbor8 calls fn for every in-bounds 8-neighbor of (x,y), in the
// fixed Neighbors8 order.
func EachNeighbor8(x, y int, fn func(nx, ny int)) {
	for _, d := range Neighbors8 {
		nx, ny := x+d[0], y+d[1]
		if nx >= 0 && nx < Size && ny >= 0 && ny < Size {
			fn(nx, ny)
		}
	}
}

// Grid is a fixed 50×50 tag array.
type Grid [Size][Size]Tag

// At returns the tag at (x,y), or Unwalkable if out of range — grid reads
// defensively treat out-of-range coordinates as walls (spec.md §7).
func (g *Grid) At(x, y int) Tag {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return Unwalkable
	}
	return g[y][x]
}

// Set writes tag at (x,y). Out-of-range writes are silently skipped.
func (g *Grid) Set(x, y int, t Tag) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	g[y][x] = t
}

// Built tracks which tiles have been claimed by a layout placement.
// Entries only transition false -> true within a planning run.
type Built [Size][Size]bool

// At returns whether (x,y) is built, or false if the coordinate is out
// of range (spec.md §7).
func (b *Built) At(x, y int) bool {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return false
	}
	return b[y][x]
}

// Set marks (x,y) built. Out-of-range writes are silently skipped.
func (b *Built) Set(x, y int) {
	if x < 0 || x >= Size || y < 0 || y >= Size {
		return
	}
	b[y][x] = true
}

// WallTest is a pure terrain predicate: it reports whether (x,y) is a wall.
// Hosts adapt their native terrain lookup to this shape; see the root
// package's TerrainQuery type (terrain.Query) for the raw bitmask variant
// accepted at the API boundary (spec.md §6).
type WallTest func(x, y int) bool
