package search

import "github.com/katalvlaran/gridseek/grid"

// Search looks for value anywhere in g. See SearchRegion.
func Search(g *grid.Grid, value float64, opts ...Option) Result {
	return SearchRegion(g, value, Full(g), opts...)
}

// SearchRegion looks for value inside region of the monotone grid g.
// Parts of region outside g are ignored.
//
// Algorithm (per rectangle popped from the work stack):
//  1. Prune if the rectangle is empty, value > its bottom-right corner or
//     value < its top-left corner.
//  2. Compare value with the midpoint cell m.
//  3. Equal: charge 1 and return m.
//  4. Single cell that did not match: drop it.
//  5. Charge Region.Charge, then schedule A,B (value < m) or C,D (value > m)
//     so that A/C are explored completely before B/D.
//
// Complexity: O(log H + log W) rectangles on strongly sorted grids, never
// more than O(H·W). Memory: O(depth).
func SearchRegion(g *grid.Grid, value float64, region Region, opts ...Option) Result {
	o := buildOptions(opts)
	var res Result
	if g.Len() == 0 {
		return res
	}

	stack := make([]Region, 1, 64)
	stack[0] = region.clip(g)
	for len(stack) > 0 {
		r := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if r.Empty() {
			continue
		}
		res.Inspected++
		if value > g.At(r.RowTo, r.ColTo) {
			continue
		}
		res.Inspected++
		if value < g.At(r.RowFrom, r.ColFrom) {
			continue
		}

		m := r.Mid()
		mv := g.AtCoord(m)
		res.Inspected++
		o.OnVisit(r, m, mv)

		if mv == value {
			res.Scanned++
			res.Coord, res.Found = m, true
			break
		}
		if r.Single() {
			continue
		}

		res.Scanned += r.Charge()
		// LIFO: push the second rectangle first.
		if value < mv {
			stack = append(stack,
				Region{RowFrom: m.Row, RowTo: r.RowTo, ColFrom: r.ColFrom, ColTo: m.Col - 1},     // B
				Region{RowFrom: r.RowFrom, RowTo: m.Row - 1, ColFrom: r.ColFrom, ColTo: r.ColTo}, // A
			)
		} else {
			stack = append(stack,
				Region{RowFrom: m.Row + 1, RowTo: r.RowTo, ColFrom: r.ColFrom, ColTo: r.ColTo}, // D
				Region{RowFrom: r.RowFrom, RowTo: m.Row, ColFrom: m.Col + 1, ColTo: r.ColTo},   // C
			)
		}
	}

	o.Counter.Add(res.Scanned)

	return res
}
