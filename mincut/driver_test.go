package mincut_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplanner/mincut"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

func openTerrain(x, y int) int { return 0 }

// TestOpenRoomCut reproduces spec.md §8 scenario 1: empty terrain,
// protect (25,25), default bounds -> the cut is exactly its 8-neighborhood.
func TestOpenRoomCut(t *testing.T) {
	cut := mincut.GetCutTiles(openTerrain, []tile.Pos{{X: 25, Y: 25}}, nil, mincut.DefaultDriverOptions())

	want := map[tile.Pos]bool{
		{X: 24, Y: 24}: true, {X: 25, Y: 24}: true, {X: 26, Y: 24}: true,
		{X: 24, Y: 25}: true, {X: 26, Y: 25}: true,
		{X: 24, Y: 26}: true, {X: 25, Y: 26}: true, {X: 26, Y: 26}: true,
	}
	require.Len(t, cut, len(want))
	for _, p := range cut {
		require.True(t, want[p], "unexpected cut tile %+v", p)
	}
}

// TestCorridorCut reproduces spec.md §8 scenario 2: walls everywhere
// except row y=25. Protecting (10,25) yields a two-tile cut.
func TestCorridorCut(t *testing.T) {
	corridor := func(x, y int) int {
		if y == 25 {
			return 0
		}
		return 1
	}

	cut := mincut.GetCutTiles(corridor, []tile.Pos{{X: 10, Y: 25}}, nil, mincut.DefaultDriverOptions())

	want := map[tile.Pos]bool{
		{X: 9, Y: 25}: true, {X: 11, Y: 25}: true,
	}
	require.Len(t, cut, len(want))
	for _, p := range cut {
		require.True(t, want[p], "unexpected cut tile %+v", p)
	}
}

// TestInvalidBoundsYieldsEmptyCut exercises spec.md §7's invalid-bounds
// failure semantics.
func TestInvalidBoundsYieldsEmptyCut(t *testing.T) {
	bad := tile.Bounds{X1: 5, Y1: 5, X2: 5, Y2: 10}
	cut := mincut.GetCutTiles(openTerrain, []tile.Pos{{X: 6, Y: 6}}, &bad, mincut.DefaultDriverOptions())
	require.Empty(t, cut)
}

// TestDeadEndPruning reproduces spec.md §8 scenario 3: within a
// sub-rectangle, every retained rampart tile has at least one 8-neighbor
// tagged TO_EXIT by the post-cut flood fill.
func TestDeadEndPruning(t *testing.T) {
	bounds := tile.Bounds{X1: 10, Y1: 10, X2: 20, Y2: 20}
	cut := mincut.GetCutTiles(openTerrain, []tile.Pos{{X: 15, Y: 15}}, &bounds, mincut.DefaultDriverOptions())
	require.NotEmpty(t, cut)

	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)
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

	for _, p := range cut {
		hasToExit := false
		tile.EachNeighbor8(p.X, p.Y, func(nx, ny int) {
			if grid.At(nx, ny) == tile.ToExit {
				hasToExit = true
			}
		})
		require.True(t, hasToExit, "rampart tile %+v has no TO_EXIT neighbor after flood fill", p)
	}
}

// TestCutDisconnectsProtectedFromExit checks the general quantified
// invariant from spec.md §8: removing the cut from the NORMAL set
// disconnects every PROTECTED tile from every EXIT tile.
func TestCutDisconnectsProtectedFromExit(t *testing.T) {
	protected := tile.Pos{X: 25, Y: 25}
	cut := mincut.GetCutTiles(openTerrain, []tile.Pos{protected}, nil, mincut.DefaultDriverOptions())

	blocked := make(map[tile.Pos]bool, len(cut))
	for _, p := range cut {
		blocked[p] = true
	}

	visited := map[tile.Pos]bool{protected: true}
	queue := []tile.Pos{protected}
	reachedExit := false
	for i := 0; i < len(queue); i++ {
		u := queue[i]
		tile.EachNeighbor8(u.X, u.Y, func(nx, ny int) {
			p := tile.Pos{X: nx, Y: ny}
			if visited[p] || blocked[p] {
				return
			}
			visited[p] = true
			if nx == 0 || ny == 0 || nx == tile.Size-1 || ny == tile.Size-1 {
				reachedExit = true
			}
			queue = append(queue, p)
		})
	}

	require.False(t, reachedExit, "protected tile must not reach an exit once the cut is removed")
}
