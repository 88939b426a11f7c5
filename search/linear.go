package search

import "github.com/katalvlaran/gridseek/grid"

// LinearScan visits every cell of g in row-major order and returns the first
// one equal to value. A match charges 1; a miss charges nothing.
// It exists as the correctness and performance baseline for Search.
// Complexity: O(H·W).
func LinearScan(g *grid.Grid, value float64, opts ...Option) Result {
	o := buildOptions(opts)
	var res Result
	if g.Len() == 0 {
		return res
	}

scan:
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			v := g.At(r, c)
			res.Inspected++
			cell := grid.Coordinate{Row: r, Col: c}
			o.OnVisit(Region{RowFrom: r, RowTo: r, ColFrom: c, ColTo: c}, cell, v)
			if v == value {
				res.Scanned = 1
				res.Coord, res.Found = cell, true
				break scan
			}
		}
	}

	o.Counter.Add(res.Scanned)

	return res
}
