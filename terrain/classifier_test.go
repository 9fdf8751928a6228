package terrain_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

func openTerrain(x, y int) int { return 0 }

// TestClassifyMarksCorners exercises spec.md §8's quantified invariant:
// classify marks the four room corners EXIT whenever they are not walls.
func TestClassifyMarksCorners(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)

	require.Equal(t, tile.Exit, grid.At(0, 0))
	require.Equal(t, tile.Exit, grid.At(0, 49))
	require.Equal(t, tile.Exit, grid.At(49, 0))
	require.Equal(t, tile.Exit, grid.At(49, 49))
}

func TestClassifyExitAdjacencyBand(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.FullRoom())
	require.NoError(t, err)

	require.Equal(t, tile.ToExit, grid.At(1, 25))
	require.Equal(t, tile.ToExit, grid.At(48, 25))
	require.Equal(t, tile.ToExit, grid.At(25, 1))
	require.Equal(t, tile.ToExit, grid.At(25, 48))
	require.Equal(t, tile.Normal, grid.At(25, 25))
}

func TestClassifyInvalidBounds(t *testing.T) {
	_, err := terrain.Classify(openTerrain, tile.Bounds{X1: 5, Y1: 5, X2: 5, Y2: 10})
	require.Error(t, err)
}

func TestClassifySubRectangleProducesExitAndToExitBands(t *testing.T) {
	grid, err := terrain.Classify(openTerrain, tile.Bounds{X1: 10, Y1: 10, X2: 20, Y2: 20})
	require.NoError(t, err)

	// Bounds-edge band is TO_EXIT (a wall there is disallowed).
	require.Equal(t, tile.ToExit, grid.At(10, 15))
	require.Equal(t, tile.ToExit, grid.At(20, 15))
	// Interior of the sub-rectangle stays NORMAL.
	require.Equal(t, tile.Normal, grid.At(15, 15))
	// Outside the sub-rectangle remains UNWALKABLE.
	require.Equal(t, tile.Unwalkable, grid.At(0, 0))
}

func TestClassifyWallsStayUnwalkable(t *testing.T) {
	wallAt := func(x, y int) int {
		if x == 25 && y == 25 {
			return 1
		}
		return 0
	}
	grid, err := terrain.Classify(wallAt, tile.FullRoom())
	require.NoError(t, err)
	require.Equal(t, tile.Unwalkable, grid.At(25, 25))
}
