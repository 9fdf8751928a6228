package layout

import "github.com/katalvlaran/roomplanner/tile"

// Kind is a structure kind, replacing the original's string-keyed
// cluster maps with a fixed tagged variant (spec.md §9).
type Kind int

// The fourteen structure kinds a Layout can hold (spec.md §3).
const (
	Spawn Kind = iota
	Extension
	Extractor
	Factory
	Lab
	Tower
	Link
	Nuker
	Observer
	PowerSpawn
	Storage
	Terminal
	Container
	Road
	numKinds
)

// String renders a Kind for logs and memory keys.
func (k Kind) String() string {
	names := [numKinds]string{
		"spawn", "extension", "extractor", "factory", "lab", "tower",
		"link", "nuker", "observer", "powerSpawn", "storage", "terminal",
		"container", "road",
	}
	if k < 0 || int(k) >= len(names) {
		return "unknown"
	}
	return names[k]
}

// ClusterStructure is one member of a Cluster: a structure Kind placed at
// a fixed Offset relative to the cluster's anchor tile.
type ClusterStructure struct {
	Kind   Kind
	Offset tile.Pos
}

// Cluster is a named group of relative offsets placed together, anchored
// at (0,0) (spec.md §4.6).
type Cluster struct {
	Name       string
	Structures []ClusterStructure
}

// StorageCluster places a storage at the anchor and a link one tile south.
var StorageCluster = Cluster{
	Name: "storage",
	Structures: []ClusterStructure{
		{Kind: Storage, Offset: tile.Pos{X: 0, Y: 0}},
		{Kind: Link, Offset: tile.Pos{X: 0, Y: 1}},
	},
}

// LabCluster fills the 3x3 block around the anchor plus one tile further
// south with ten labs.
var LabCluster = Cluster{
	Name: "lab",
	Structures: func() []ClusterStructure {
		var s []ClusterStructure
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				s = append(s, ClusterStructure{Kind: Lab, Offset: tile.Pos{X: dx, Y: dy}})
			}
		}
		s = append(s, ClusterStructure{Kind: Lab, Offset: tile.Pos{X: 0, Y: 2}})

		return s
	}(),
}

// TowerCluster places three towers along the row north of the anchor.
var TowerCluster = Cluster{
	Name: "tower",
	Structures: []ClusterStructure{
		{Kind: Tower, Offset: tile.Pos{X: -1, Y: -1}},
		{Kind: Tower, Offset: tile.Pos{X: 0, Y: -1}},
		{Kind: Tower, Offset: tile.Pos{X: 1, Y: -1}},
	},
}

// ExtensionCluster places five extensions in a plus-minus-center pattern
// north and astride the anchor.
var ExtensionCluster = Cluster{
	Name: "extension",
	Structures: []ClusterStructure{
		{Kind: Extension, Offset: tile.Pos{X: -1, Y: -1}},
		{Kind: Extension, Offset: tile.Pos{X: 0, Y: -1}},
		{Kind: Extension, Offset: tile.Pos{X: 1, Y: -1}},
		{Kind: Extension, Offset: tile.Pos{X: -1, Y: 0}},
		{Kind: Extension, Offset: tile.Pos{X: 1, Y: 0}},
	},
}

// ObserverCluster places a single observer at the anchor.
var ObserverCluster = Cluster{
	Name:       "observer",
	Structures: []ClusterStructure{{Kind: Observer, Offset: tile.Pos{X: 0, Y: 0}}},
}

// Layout is the planner's output: an ordered list of placements per
// structure kind (spec.md §3).
type Layout struct {
	Placements [numKinds][]tile.Pos
}

// Add appends pos to kind's placement list.
func (l *Layout) Add(kind Kind, pos tile.Pos) {
	l.Placements[kind] = append(l.Placements[kind], pos)
}

// Get returns kind's placement list.
func (l *Layout) Get(kind Kind) []tile.Pos {
	return l.Placements[kind]
}
