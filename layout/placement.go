package layout

import (
	"errors"

	"github.com/katalvlaran/roomplanner/field"
	"github.com/katalvlaran/roomplanner/tile"
)

// ErrNoPlacement is returned by FindMin when no candidate tile satisfies
// the placement predicate. spec.md §9 flags the original's (0,0)-sentinel
// behavior as a bug that corrupts the layout; this is the REDESIGN FLAG's
// resolution: surface a distinct error instead and let the caller abort
// the layout pass, returning whatever was placed so far (spec.md §7).
var ErrNoPlacement = errors.New("layout: no tile satisfies the placement predicate")

// CanPut reports whether every structure in cluster can be placed with
// its anchor at (x,y): every absolute tile must be in bounds, not
// already built, not a wall, and not currently occupied according to
// lookup (spec.md §4.6).
func CanPut(x, y int, cluster Cluster, grid *tile.Grid, built *tile.Built, lookup Lookup) bool {
	for _, s := range cluster.Structures {
		ax, ay := x+s.Offset.X, y+s.Offset.Y
		p := tile.Pos{X: ax, Y: ay}
		if !p.InBounds() {
			return false
		}
		if built.At(ax, ay) {
			return false
		}
		if grid.At(ax, ay) == tile.Unwalkable {
			return false
		}
		if len(lookup.Look(ax, ay)) > 0 {
			return false
		}
	}

	return true
}

// Put commits cluster at anchor (x,y): every absolute tile is appended to
// its structure kind's list in layout and marked built.
func Put(x, y int, cluster Cluster, layout *Layout, built *tile.Built) {
	for _, s := range cluster.Structures {
		ax, ay := x+s.Offset.X, y+s.Offset.Y
		layout.Add(s.Kind, tile.Pos{X: ax, Y: ay})
		built.Set(ax, ay)
	}
}

// FindMin performs the linear scan spec.md §4.6 calls find_min: over all
// 2500 cells, in row-major order (x varying fastest within increasing y
// is NOT used here — ties break by x then y, so x is the outer loop),
// return the coordinate with the smallest predicate-satisfying field
// value. Missing or out-of-range cells are treated as +Inf via
// field.Field.At.
func FindMin(f *field.Field, predicate func(x, y int) bool) (tile.Pos, error) {
	best := field.PosInf
	var bestPos tile.Pos
	found := false

	for x := 0; x < tile.Size; x++ {
		for y := 0; y < tile.Size; y++ {
			if !predicate(x, y) {
				continue
			}
			v := f.At(x, y)
			if !found || v < best {
				best = v
				bestPos = tile.Pos{X: x, Y: y}
				found = true
			}
		}
	}

	if !found {
		return tile.Pos{}, ErrNoPlacement
	}

	return bestPos, nil
}
