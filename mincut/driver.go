package mincut

import (
	"context"
	"fmt"

	"github.com/katalvlaran/roomplanner/flow"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

// DriverOptions configures GetCutTiles: Ctx for cancellation parity with
// the rest of this module, Verbose to log each pipeline phase the way
// flow.MaxFlow logs each augmentation.
type DriverOptions struct {
	Ctx     context.Context
	Verbose bool
}

// DefaultDriverOptions returns DriverOptions with a background context
// and logging disabled.
func DefaultDriverOptions() DriverOptions {
	return DriverOptions{Ctx: context.Background()}
}

func (o *DriverOptions) normalize() {
	if o.Ctx == nil {
		o.Ctx = context.Background()
	}
}

// GetCutTiles computes the minimum set of rampart tiles separating
// protected from the room's exits, per spec.md §4.3.
//
// Steps: classify the room terrain within bounds (defaulting to the full
// room); upgrade every protected coordinate currently tagged NORMAL to
// PROTECTED (tiles outside bounds or already TO_EXIT/EXIT are left
// untouched — protecting an unreachable or edge tile is a no-op); build
// the flow graph; run Dinic; extract the cut; convert cut edges back to
// tile coordinates; and, when bounds is a strict sub-rectangle and the
// cut is non-empty, prune dead-end rampart tiles that wall off pockets
// with no path to a real exit.
//
// Invalid bounds are reported to the caller via opts.Verbose logging and
// yield an empty cut, per spec.md §7's invalid-bounds failure semantics.
func GetCutTiles(q terrain.Query, protected []tile.Pos, bounds *tile.Bounds, opts DriverOptions) []tile.Pos {
	opts.normalize()

	b := tile.FullRoom()
	if bounds != nil {
		b = *bounds
	}

	grid, err := terrain.Classify(q, b)
	if err != nil {
		if opts.Verbose {
			fmt.Printf("mincut: invalid bounds %+v, returning empty cut\n", b)
		}
		return nil
	}

	for _, p := range protected {
		if grid.At(p.X, p.Y) == tile.Normal {
			grid.Set(p.X, p.Y, tile.Protected)
		}
	}

	g := BuildGraph(&grid)
	flowOpts := flow.DinicOptions{Ctx: opts.Ctx, Verbose: opts.Verbose}
	maxFlow, err := flow.MaxFlow(g, tile.Source, tile.Sink, flowOpts)
	if err != nil {
		if opts.Verbose {
			fmt.Printf("mincut: max-flow failed: %v\n", err)
		}
		return nil
	}
	if opts.Verbose {
		fmt.Printf("mincut: max flow = %d\n", maxFlow)
	}

	cutEdges := flow.CutTiles(g, tile.Source)
	cut := make([]tile.Pos, 0, len(cutEdges))
	for _, e := range cutEdges {
		edge := g.Edges(e.From)[e.Index]
		if edge.Cap != 1 {
			continue // only TOP->BOT unit edges are cut candidates (spec.md §4.2)
		}
		cut = append(cut, tile.VertexToPos(e.From))
	}

	full := tile.FullRoom()
	if b != full && len(cut) > 0 {
		if opts.Verbose {
			fmt.Printf("mincut: pruning dead-end ramparts from %d candidates\n", len(cut))
		}
		cut = PruneDeadEnds(q, cut)
	}

	return cut
}
