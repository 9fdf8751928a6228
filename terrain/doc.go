// Package terrain classifies a raw room terrain query into the tile.Tag
// grid the flow-graph builder and layout planner consume.
//
// Classification has three layers, applied in order: a tile starts
// UNWALKABLE, becomes NORMAL once a non-wall terrain query and the
// requested sub-rectangle admit it, then is upgraded to TO_EXIT or EXIT
// depending on its position relative to the bounds edge and the room edge.
// A final adjacency pass marks the tiles one step in from an EXIT as
// TO_EXIT, since the host game disallows a rampart directly next to an
// exit.
package terrain
