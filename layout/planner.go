package layout

import (
	"fmt"

	"github.com/katalvlaran/roomplanner/field"
	"github.com/katalvlaran/roomplanner/tile"
)

// ResourcePos pairs a host-assigned id with a position, for the sources
// and mineral inputs spec.md §4.6 requires (the planner needs a stable
// id per target to key container/link memory writes).
type ResourcePos struct {
	ID  string
	Pos tile.Pos
}

// PlannerOptions configures BuildLayout. Verbose logs each cluster commit
// and each road, container path or link placement that fails, mirroring
// flow.MaxFlow's logging.
type PlannerOptions struct {
	Verbose bool
}

// BuildLayout runs the placement sequence from spec.md §4.6: storage,
// lab, six tower/extension iterations, observer, road routing, then
// containers and links for the controller, each source, and the
// mineral.
//
// It returns the layout built so far, and a non-nil error, the first time
// FindMin reports ErrNoPlacement — the REDESIGN FLAG resolution of
// spec.md §7's "no valid placement" failure: a distinct error instead of
// a silent (0,0) placement.
func BuildLayout(
	grid *tile.Grid,
	sources []ResourcePos,
	mineral ResourcePos,
	controller tile.Pos,
	finder PathFinder,
	lookup Lookup,
	mem Memory,
	opts PlannerOptions,
) (*Layout, error) {
	layout := &Layout{}
	var built tile.Built

	srcPositions := make([]tile.Pos, len(sources))
	for i, s := range sources {
		srcPositions[i] = s.Pos
	}

	srcField := sourceField(grid, srcPositions)
	minField := mineralField(grid, mineral.Pos)
	ctrlField := controllerField(grid, controller)
	wallF := wallField(grid)

	// 1. Storage.
	storageScore := field.AddFields(
		srcField,
		field.MulField(minField, 0.25),
		ctrlField,
		field.MulField(wallF, -1),
	)
	storagePos, err := FindMin(storageScore, func(x, y int) bool {
		return CanPut(x, y, StorageCluster, grid, &built, lookup)
	})
	if err != nil {
		return layout, err
	}
	if opts.Verbose {
		fmt.Printf("layout: storage at %+v\n", storagePos)
	}
	Put(storagePos.X, storagePos.Y, StorageCluster, layout, &built)
	storF := storageField(storagePos)

	var centers []tile.Pos

	// 2. Lab.
	labScore := field.AddFields(
		minField,
		field.MulField(storF, 5),
		field.MulField(srcField, 0.01),
		field.MulField(ctrlField, 0.01),
	)
	labPos, err := FindMin(labScore, func(x, y int) bool {
		return CanPut(x, y, LabCluster, grid, &built, lookup)
	})
	if err != nil {
		return layout, err
	}
	Put(labPos.X, labPos.Y, LabCluster, layout, &built)
	centers = append(centers, labPos)
	if opts.Verbose {
		fmt.Printf("layout: lab at %+v\n", labPos)
	}

	// 3. Six tower/extension iterations.
	towerScore := field.AddFields(
		field.MulField(minField, 0.01),
		storF,
		field.MulField(srcField, 0.01),
		field.MulField(ctrlField, 0.01),
	)
	extensionScore := field.AddFields(
		field.MulField(minField, 0.01),
		field.MulField(storF, 4),
		srcField,
		field.MulField(ctrlField, 0.01),
	)
	for i := 0; i < 6; i++ {
		towerPos, err := FindMin(towerScore, func(x, y int) bool {
			return CanPut(x, y, TowerCluster, grid, &built, lookup)
		})
		if err != nil {
			return layout, err
		}
		Put(towerPos.X, towerPos.Y, TowerCluster, layout, &built)
		centers = append(centers, towerPos)
		if opts.Verbose {
			fmt.Printf("layout: tower[%d] at %+v\n", i, towerPos)
		}

		extPos, err := FindMin(extensionScore, func(x, y int) bool {
			return CanPut(x, y, ExtensionCluster, grid, &built, lookup)
		})
		if err != nil {
			return layout, err
		}
		Put(extPos.X, extPos.Y, ExtensionCluster, layout, &built)
		centers = append(centers, extPos)
		if opts.Verbose {
			fmt.Printf("layout: extension[%d] at %+v\n", i, extPos)
		}
	}

	// 4. Observer (same score field as tower).
	observerPos, err := FindMin(towerScore, func(x, y int) bool {
		return CanPut(x, y, ObserverCluster, grid, &built, lookup)
	})
	if err != nil {
		return layout, err
	}
	Put(observerPos.X, observerPos.Y, ObserverCluster, layout, &built)
	centers = append(centers, observerPos)
	if opts.Verbose {
		fmt.Printf("layout: observer at %+v\n", observerPos)
	}

	// 5. Roads from every recorded center back to storage.
	for _, c := range centers {
		path, err := finder.FindPath(c, storagePos, DefaultRoadOptions(1))
		if err != nil {
			if opts.Verbose {
				fmt.Printf("layout: road from %+v failed: %v\n", c, err)
			}
			continue
		}
		for _, p := range path {
			if !built.At(p.X, p.Y) {
				layout.Add(Road, p)
				built.Set(p.X, p.Y)
			}
		}
	}

	// 6. Containers & links.
	targets := make([]ResourcePos, 0, len(sources)+2)
	targets = append(targets, ResourcePos{ID: "controller", Pos: controller})
	targets = append(targets, sources...)
	targets = append(targets, mineral)

	for _, t := range targets {
		rng := 1
		if t.ID == "controller" {
			rng = 3
		}
		path, err := finder.FindPath(storagePos, t.Pos, PathOptions{
			IgnoreCreeps:                 true,
			IgnoreDestructibleStructures: true,
			IgnoreRoads:                  true,
			SwampCost:                    1,
			HeuristicWeight:              1,
			Range:                        rng,
		})
		if err != nil || len(path) == 0 {
			if opts.Verbose {
				fmt.Printf("layout: container path to %s failed: %v\n", t.ID, err)
			}
			continue
		}

		for _, p := range path[:len(path)-1] {
			if !built.At(p.X, p.Y) {
				layout.Add(Road, p)
				built.Set(p.X, p.Y)
			}
		}
		containerPos := path[len(path)-1]
		layout.Add(Container, containerPos)
		built.Set(containerPos.X, containerPos.Y)
		mem.Set(fmt.Sprintf("containerPos:%s", t.ID), fmt.Sprintf("%d,%d", containerPos.X, containerPos.Y))

		if t.ID == mineral.ID {
			continue // no link at the mineral extraction point
		}
		if linkPos, ok := placeLink(grid, &built, containerPos); ok {
			layout.Add(Link, linkPos)
			built.Set(linkPos.X, linkPos.Y)
			mem.Set(fmt.Sprintf("linkPos:%s", t.ID), fmt.Sprintf("%d,%d", linkPos.X, linkPos.Y))
		} else if opts.Verbose {
			fmt.Printf("layout: no link placement found near container %+v for %s\n", containerPos, t.ID)
		}
	}

	return layout, nil
}

// placeLink scans container's 8 neighbors, in the fixed Neighbors8 order,
// for a tile to host a link: first preferring one not near a wall/edge,
// falling back to one merely not sitting on a wall/edge, per spec.md
// §4.6 and the soft-failure Open Question in §9.
func placeLink(grid *tile.Grid, built *tile.Built, container tile.Pos) (tile.Pos, bool) {
	for _, d := range tile.Neighbors8 {
		x, y := container.X+d[0], container.Y+d[1]
		if built.At(x, y) || !nearWallOrEdgeOK(grid, x, y, true) {
			continue
		}
		return tile.Pos{X: x, Y: y}, true
	}
	for _, d := range tile.Neighbors8 {
		x, y := container.X+d[0], container.Y+d[1]
		if built.At(x, y) || !nearWallOrEdgeOK(grid, x, y, false) {
			continue
		}
		return tile.Pos{X: x, Y: y}, true
	}

	return tile.Pos{}, false
}

// nearWallOrEdgeOK reports whether (x,y) qualifies as a link site. When
// strict is true it additionally rejects tiles whose neighbors touch a
// wall or the room edge ("near"); when false it only rejects the tile
// itself sitting on a wall or the room edge ("on").
func nearWallOrEdgeOK(grid *tile.Grid, x, y int, strict bool) bool {
	if onWallOrEdge(grid, x, y) {
		return false
	}
	if !strict {
		return true
	}

	ok := true
	tile.EachNeighbor8(x, y, func(nx, ny int) {
		if onWallOrEdge(grid, nx, ny) {
			ok = false
		}
	})

	return ok
}

func onWallOrEdge(grid *tile.Grid, x, y int) bool {
	if x <= 0 || y <= 0 || x >= tile.Size-1 || y >= tile.Size-1 {
		return true
	}
	return grid.At(x, y) == tile.Unwalkable
}
