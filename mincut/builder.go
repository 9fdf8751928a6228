package mincut

import (
	"github.com/katalvlaran/roomplanner/flow"
	"github.com/katalvlaran/roomplanner/tile"
)

// Infinite is the capacity used for edges spec.md §4.2 marks "cap ∞".
// It is large enough that no combination of unit TOP→BOT edges on a
// 50×50 room (at most 2304 interior tiles) can saturate it.
const Infinite = 1 << 30

// BuildGraph constructs the split-vertex flow graph for grid, per the
// edge table in spec.md §4.2:
//
//	NORMAL     TOP→BOT cap 1; BOT→n.TOP cap ∞ for each 8-neighbor n in {NORMAL,TO_EXIT}
//	PROTECTED  SOURCE→TOP cap ∞; TOP→BOT cap ∞ (uncuttable); same neighbor edges as NORMAL
//	TO_EXIT    TOP→SINK cap ∞
//	UNWALKABLE / EXIT   no edges
//
// A PROTECTED tile's own TOP→BOT edge must be uncuttable: PROTECTED marks
// the source region of the vertex cut, and a vertex cut is only valid if
// every removed vertex is neither a source nor a sink. Giving it the same
// cap-1 edge as NORMAL would let the minimum cut fall on the protected
// tile itself (SOURCE's only path runs SOURCE→TOP(p)→BOT(p)), instead of
// on the ring of NORMAL tiles surrounding it.
//
// Only tiles with 1 <= x,y <= 48 are enumerated for edge creation;
// boundary tiles are excluded from the interior loop, matching spec.md's
// explicit carve-out.
func BuildGraph(grid *tile.Grid) *flow.Graph {
	g := flow.NewGraph(tile.VertexCount)

	for y := 1; y <= tile.Size-2; y++ {
		for x := 1; x <= tile.Size-2; x++ {
			tag := grid.At(x, y)
			top := tile.TopVertex(x, y)
			bot := tile.BotVertex(x, y)

			switch tag {
			case tile.Normal, tile.Protected:
				if tag == tile.Protected {
					g.AddEdge(tile.Source, top, Infinite)
					g.AddEdge(top, bot, Infinite)
				} else {
					g.AddEdge(top, bot, 1)
				}
				tile.EachNeighbor8(x, y, func(nx, ny int) {
					nt := grid.At(nx, ny)
					if nt == tile.Normal || nt == tile.ToExit {
						g.AddEdge(bot, tile.TopVertex(nx, ny), Infinite)
					}
				})
			case tile.ToExit:
				g.AddEdge(top, tile.Sink, Infinite)
			default: // Unwalkable, Exit: no edges
			}
		}
	}

	return g
}
