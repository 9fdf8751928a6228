package field

import "github.com/katalvlaran/roomplanner/tile"

// AddFields returns a fresh Field holding the elementwise sum of every
// given field. AddFields is commutative and associative (spec.md §8).
func AddFields(fields ...*Field) *Field {
	var out Field
	for _, f := range fields {
		for y := 0; y < tile.Size; y++ {
			for x := 0; x < tile.Size; x++ {
				out[y][x] += f[y][x]
			}
		}
	}

	return &out
}

// MulField returns a fresh Field holding f scaled elementwise by k.
// MulField(a, 1) equals a elementwise (spec.md §8).
func MulField(f *Field, k float64) *Field {
	var out Field
	for y := 0; y < tile.Size; y++ {
		for x := 0; x < tile.Size; x++ {
			out[y][x] = f[y][x] * k
		}
	}

	return &out
}
