package demo

import (
	"io"

	"github.com/ajstarks/svgo"

	"github.com/katalvlaran/roomplanner/layout"
	"github.com/katalvlaran/roomplanner/tile"
)

const cell = 12

// kindColor assigns each structure kind a fill color for the rendered
// layout, cycling through a small fixed palette.
var kindColor = [...]string{
	"#888888", // spawn
	"#ffd966", // extension
	"#b4a7d6", // extractor
	"#c27ba0", // factory
	"#93c47d", // lab
	"#e06666", // tower
	"#76a5af", // link
	"#a64d79", // nuker
	"#6fa8dc", // observer
	"#f6b26b", // powerSpawn
	"#f1c232", // storage
	"#45818e", // terminal
	"#999999", // container
	"#cccccc", // road
}

// RenderSVG draws the room grid, rampart tiles, and committed layout to
// w: walls as dark squares, ramparts as a red border ring, and each
// structure kind as a colored square, mirroring the "export a grid
// result to SVG" shape of a dungeon-map renderer.
func RenderSVG(w io.Writer, walls func(x, y int) bool, ramparts []tile.Pos, result *layout.Layout) {
	size := tile.Size * cell
	canvas := svg.New(w)
	canvas.Start(size, size)
	canvas.Rect(0, 0, size, size, "fill:white;stroke:none")

	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			if walls(x, y) {
				canvas.Rect(x*cell, y*cell, cell, cell, "fill:#333333")
			}
		}
	}

	for _, p := range ramparts {
		canvas.Rect(p.X*cell, p.Y*cell, cell, cell, "fill:none;stroke:#cc0000;stroke-width:2")
	}

	if result != nil {
		for k := layout.Spawn; k.String() != "unknown"; k++ {
			color := kindColor[int(k)%len(kindColor)]
			for _, p := range result.Get(k) {
				canvas.Rect(p.X*cell+1, p.Y*cell+1, cell-2, cell-2, "fill:"+color)
			}
		}
	}

	canvas.End()
}
