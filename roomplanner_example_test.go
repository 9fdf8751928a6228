package roomplanner_test

import (
	"fmt"

	"github.com/katalvlaran/roomplanner"
)

// ExampleGetCutTiles computes the rampart set protecting a single tile in
// the middle of an open room: an 8-tile ring around the protected tile.
func ExampleGetCutTiles() {
	openTerrain := func(x, y int) int { return 0 }

	cut := roomplanner.GetCutTiles(openTerrain, []roomplanner.Pos{{X: 25, Y: 25}}, nil, roomplanner.Options{})

	fmt.Println(len(cut))
	// Output:
	// 8
}
