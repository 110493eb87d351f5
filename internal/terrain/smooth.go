package terrain

import "relief/internal/core"

// Smooth blends every cell toward one neighbour, repeated passes times. Each
// pass runs four in-place sweeps (left-to-right, right-to-left, top-to-bottom,
// bottom-to-top). The neighbour is the one the sweep arrives from, not the one
// ahead of it: x-1 when sweeping left-to-right, x+1 right-to-left, y-1
// top-to-bottom and y+1 bottom-to-top. That neighbour has already been updated
// by the same sweep, which is what carries values along a row or column:
//
//	new = neighbour*(1-factor) + current*factor
//
// The first cell of each sweep has no such neighbour and is left unchanged.
// factor 1 leaves the grid untouched.
func Smooth(g *core.HeightGrid, factor float64, passes int) {
	side := g.Side()
	cells := g.Cells()
	keep := factor
	take := 1 - factor
	blend := func(idx, from int) {
		v := float64(cells[from])*take + float64(cells[idx])*keep
		cells[idx] = core.ClampElevation(int64(v))
	}

	for p := 0; p < passes; p++ {
		for y := 0; y < side; y++ {
			row := y * side
			for x := 1; x < side; x++ {
				blend(row+x, row+x-1)
			}
		}
		for y := 0; y < side; y++ {
			row := y * side
			for x := side - 2; x >= 0; x-- {
				blend(row+x, row+x+1)
			}
		}
		for y := 1; y < side; y++ {
			for x := 0; x < side; x++ {
				idx := y*side + x
				blend(idx, idx-side)
			}
		}
		for y := side - 2; y >= 0; y-- {
			for x := 0; x < side; x++ {
				idx := y*side + x
				blend(idx, idx+side)
			}
		}
	}
}
