// Package roomplanner is the façade tying together this module's
// subpackages (tile, terrain, flow, mincut, field, layout) into the three
// operations spec.md §6 exposes to a host: GetCutTiles, Calculate, and
// BuildLayout.
//
// Like the teacher library's top-level doc.go, the subpackages are the
// real API surface; this file exists so a host can depend on one import
// and one set of host-collaborator interfaces instead of wiring every
// subpackage itself.
package roomplanner

import (
	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/mincut"
	"github.com/katalvlaran/roomplanner/terrain"
	"github.com/katalvlaran/roomplanner/tile"
)

// Re-exported types so a host only needs this package's import path for
// the common case.
type (
	Pos          = tile.Pos
	Bounds       = tile.Bounds
	TerrainQuery = terrain.Query
	PathFinder   = layout.PathFinder
	PathOptions  = layout.PathOptions
	Lookup       = layout.Lookup
	Occupant     = layout.Occupant
	Memory       = layout.Memory
	ResourcePos  = layout.ResourcePos
	Layout       = layout.Layout
	Kind         = layout.Kind
	CostMatrix   = layout.CostMatrix
)

// Structure kind constants, re-exported for hosts that only import this
// package.
const (
	Spawn      = layout.Spawn
	Extension  = layout.Extension
	Extractor  = layout.Extractor
	Factory    = layout.Factory
	Lab        = layout.Lab
	Tower      = layout.Tower
	Link       = layout.Link
	Nuker      = layout.Nuker
	Observer   = layout.Observer
	PowerSpawn = layout.PowerSpawn
	Storage    = layout.Storage
	Terminal   = layout.Terminal
	Container  = layout.Container
	Road       = layout.Road
)

// Options bundles the knobs the façade forwards to the subpackages, so a
// host configures the whole pipeline once. Only Verbose is forwarded; the
// subpackages run with a background context and cannot be canceled
// through this package.
type Options struct {
	Verbose bool
}

// GetCutTiles computes the minimum rampart set separating protected from
// the room's exits, optionally restricted to bounds (nil means the full
// room). See mincut.GetCutTiles for the full algorithm description.
func GetCutTiles(q TerrainQuery, protected []Pos, bounds *Bounds, opts Options) []Pos {
	return mincut.GetCutTiles(q, protected, bounds, mincut.DriverOptions{Verbose: opts.Verbose})
}

// Calculate runs the full ramparts & exposure pipeline: it expands
// protected with a defensive moat, appends the controller's neighbors,
// computes the minimum cut, and derives the pathfinding cost matrix
// marking tiles left exposed once the ramparts are in place. See
// layout.Calculate for the full algorithm description.
func Calculate(q TerrainQuery, protected []Pos, controller Pos, opts Options) ([]Pos, CostMatrix) {
	return layout.Calculate(q, protected, controller, mincut.DriverOptions{Verbose: opts.Verbose})
}

// BuildLayout runs the iterative cluster placement search and returns the
// resulting layout record. See layout.BuildLayout for the full algorithm
// description.
func BuildLayout(
	q TerrainQuery,
	bounds *Bounds,
	sources []ResourcePos,
	mineral ResourcePos,
	controller Pos,
	finder PathFinder,
	lookup Lookup,
	mem Memory,
	opts Options,
) (*Layout, error) {
	b := tile.FullRoom()
	if bounds != nil {
		b = *bounds
	}
	grid, err := terrain.Classify(q, b)
	if err != nil {
		return &Layout{}, err
	}

	return layout.BuildLayout(&grid, sources, mineral, controller, finder, lookup, mem, layout.PlannerOptions{Verbose: opts.Verbose})
}
