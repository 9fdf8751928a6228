package layout_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplanner/field"
	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

func openTerrain(x, y int) int { return 0 }

type emptyLookup struct{}

func (emptyLookup) Look(x, y int) []layout.Occupant { return nil }

type blockingLookup struct{ blocked map[tile.Pos]bool }

func (b blockingLookup) Look(x, y int) []layout.Occupant {
	if b.blocked[tile.Pos{X: x, Y: y}] {
		return []layout.Occupant{{Kind: "creep"}}
	}
	return nil
}

// TestCanPutRejectsOutOfBounds exercises spec.md §8: can_put must return
// false whenever any offset maps outside [0,49]^2.
func TestCanPutRejectsOutOfBounds(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)
	var built tile.Built

	ok := layout.CanPut(0, 0, layout.TowerCluster, &grid, &built, emptyLookup{})
	require.False(t, ok, "tower cluster offset (-1,-1) goes out of bounds at anchor (0,0)")
}

func TestCanPutRejectsWall(t *testing.T) {
	wallAt := func(x, y int) int {
		if x == 25 && y == 24 {
			return 1
		}
		return 0
	}
	grid, err := terrain.Classify(wallAt, tile.FullRoom())
	require.NoError(t, err)
	var built tile.Built

	ok := layout.CanPut(25, 25, layout.TowerCluster, &grid, &built, emptyLookup{})
	require.False(t, ok)
}

func TestCanPutRejectsOccupied(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)
	var built tile.Built

	lookup := blockingLookup{blocked: map[tile.Pos]bool{{X: 25, Y: 24}: true}}
	ok := layout.CanPut(25, 25, layout.TowerCluster, &grid, &built, lookup)
	require.False(t, ok)
}

func TestCanPutRejectsAlreadyBuilt(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)
	var built tile.Built
	built.Set(25, 24)

	ok := layout.CanPut(25, 25, layout.TowerCluster, &grid, &built, emptyLookup{})
	require.False(t, ok)
}

func TestPutMarksAllOffsetsBuilt(t *testing.T) {
	var layoutRecord layout.Layout
	var built tile.Built

	layout.Put(10, 10, layout.ExtensionCluster, &layoutRecord, &built)

	require.Len(t, layoutRecord.Get(layout.Extension), 5)
	require.True(t, built.At(9, 9))
	require.True(t, built.At(11, 10))
}

func TestFindMinTieBreaksByXThenY(t *testing.T) {
	var f field.Field
	f.Fill(5)
	f.Set(3, 10, 1)
	f.Set(3, 2, 1)

	pos, err := layout.FindMin(&f, func(x, y int) bool { return true })
	require.NoError(t, err)
	require.Equal(t, tile.Pos{X: 3, Y: 2}, pos)
}

func TestFindMinNoPlacementReturnsError(t *testing.T) {
	var f field.Field
	f.Fill(1)

	_, err := layout.FindMin(&f, func(x, y int) bool { return false })
	require.ErrorIs(t, err, layout.ErrNoPlacement)
}
