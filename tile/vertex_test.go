package tile_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roomplanner/tile"
)

// TestVertexBijection exercises spec.md §8 scenario 4: pos_to_vertex and
// vertex_to_pos must be mutual inverses over [0, 2500).
func TestVertexBijection(t *testing.T) {
	cases := []struct {
		x, y, want int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{0, 1, 50},
		{49, 49, 2499},
	}
	for _, c := range cases {
		got := tile.PosToVertex(c.x, c.y)
		require.Equal(t, c.want, got)
		require.Equal(t, tile.Pos{X: c.x, Y: c.y}, tile.VertexToPos(got))
	}

	for v := 0; v < tile.Size*tile.Size; v++ {
		p := tile.VertexToPos(v)
		require.Equal(t, v, tile.PosToVertex(p.X, p.Y))
	}
}

func TestBoundsValid(t *testing.T) {
	require.True(t, tile.FullRoom().Valid())
	require.False(t, tile.Bounds{X1: 5, Y1: 0, X2: 5, Y2: 10}.Valid(), "x1 must be strictly less than x2")
	require.False(t, tile.Bounds{X1: 0, Y1: 0, X2: 50, Y2: 49}.Valid(), "x2 must be <= 49")
	require.True(t, tile.Bounds{X1: 0, Y1: 0, X2: 49, Y2: 49}.Valid())
}

func TestGridOutOfRangeReadsAreDefensive(t *testing.T) {
	var g tile.Grid
	require.Equal(t, tile.Unwalkable, g.At(-1, 0))
	require.Equal(t, tile.Unwalkable, g.At(0, tile.Size))

	var b tile.Built
	require.False(t, b.At(-1, 0))
	b.Set(-1, 0) // must not panic
}
