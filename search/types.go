package search

import "github.com/katalvlaran/gridseek/grid"

// Region is a closed rectangle [RowFrom,RowTo] × [ColFrom,ColTo].
// A Region with RowFrom > RowTo or ColFrom > ColTo is empty.
type Region struct {
	RowFrom, RowTo int
	ColFrom, ColTo int
}

// Full returns the Region covering every cell of g. It is empty for a nil
// or cell-less grid.
func Full(g *grid.Grid) Region {
	if g.Len() == 0 {
		return Region{RowTo: -1, ColTo: -1}
	}

	return Region{RowFrom: 0, RowTo: g.Height - 1, ColFrom: 0, ColTo: g.Width - 1}
}

// Empty reports whether r contains no cells.
func (r Region) Empty() bool {
	return r.RowFrom > r.RowTo || r.ColFrom > r.ColTo
}

// Single reports whether r is exactly one cell.
func (r Region) Single() bool {
	return r.RowFrom == r.RowTo && r.ColFrom == r.ColTo
}

// Cells returns the number of cells in r.
func (r Region) Cells() int {
	if r.Empty() {
		return 0
	}

	return (r.RowTo - r.RowFrom + 1) * (r.ColTo - r.ColFrom + 1)
}

// Charge returns the accounting cost of splitting r: the product of its row
// and column spans, (RowTo-RowFrom)*(ColTo-ColFrom). It is a heuristic, not
// a cell count.
func (r Region) Charge() int {
	return (r.RowTo - r.RowFrom) * (r.ColTo - r.ColFrom)
}

// Mid returns the midpoint cell of a non-empty r.
func (r Region) Mid() grid.Coordinate {
	return grid.Coordinate{Row: (r.RowFrom + r.RowTo) / 2, Col: (r.ColFrom + r.ColTo) / 2}
}

// clip intersects r with the bounds of g.
func (r Region) clip(g *grid.Grid) Region {
	return Region{
		RowFrom: max(r.RowFrom, 0),
		RowTo:   min(r.RowTo, g.Height-1),
		ColFrom: max(r.ColFrom, 0),
		ColTo:   min(r.ColTo, g.Width-1),
	}
}

// Result is the outcome of one search call.
//   - Coord, Found: the matching cell, if any.
//   - Scanned: cost charged by this call under the accounting heuristic.
//   - Inspected: exact number of cell reads performed by this call.
type Result struct {
	Coord     grid.Coordinate
	Found     bool
	Scanned   int
	Inspected int
}

// Counter accumulates Scanned costs across calls. It never resets on its
// own. The zero value is ready to use; it is not safe for concurrent use.
type Counter struct {
	total int
}

// Add charges n to the counter. Add on a nil Counter is a no-op.
func (c *Counter) Add(n int) {
	if c != nil {
		c.total += n
	}
}

// Total returns the accumulated cost.
func (c *Counter) Total() int {
	if c == nil {
		return 0
	}

	return c.total
}

// Reset zeroes the counter.
func (c *Counter) Reset() {
	if c != nil {
		c.total = 0
	}
}

// Option configures a search call via functional arguments.
type Option func(*Options)

// Options holds the parameters of a search call.
type Options struct {
	// Counter, if non-nil, receives the call's Scanned cost.
	Counter *Counter

	// OnVisit is called for every cell compared against the target: each
	// midpoint in Search, each cell in LinearScan. r is the rectangle the
	// cell was taken from.
	OnVisit func(r Region, cell grid.Coordinate, v float64)
}

// DefaultOptions returns Options with no counter and a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Counter: nil,
		OnVisit: func(Region, grid.Coordinate, float64) {},
	}
}

// WithCounter accumulates each call's Scanned cost into c.
func WithCounter(c *Counter) Option {
	return func(o *Options) {
		o.Counter = c
	}
}

// WithOnVisit registers a callback run on every compared cell.
func WithOnVisit(fn func(r Region, cell grid.Coordinate, v float64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
