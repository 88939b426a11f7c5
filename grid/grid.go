package grid

// NewGrid constructs a Grid from a non-empty, rectangular 2D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(H×W) time and memory.
func NewGrid(values [][]float64) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	g := alloc(h, w)
	for r := 0; r < h; r++ {
		copy(g.cells[r], values[r])
	}

	return g, nil
}

// alloc returns a zero-filled h×w grid backed by one contiguous slice.
func alloc(h, w int) *Grid {
	backing := make([]float64, h*w)
	cells := make([][]float64, h)
	for r := range cells {
		cells[r] = backing[r*w : (r+1)*w : (r+1)*w]
	}

	return &Grid{Height: h, Width: w, cells: cells}
}

// At returns the value stored at (row, col).
// It panics if the cell is out of bounds; use InBounds to check first.
func (g *Grid) At(row, col int) float64 {
	return g.cells[row][col]
}

// AtCoord returns the value stored at c.
func (g *Grid) AtCoord(c Coordinate) float64 {
	return g.cells[c.Row][c.Col]
}

// InBounds reports whether (row, col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.Height && col >= 0 && col < g.Width
}

// Len returns the number of cells, Height*Width. A nil grid has none.
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}

	return g.Height * g.Width
}

// Index maps c to a row-major index: Row*Width + Col.
// Complexity: O(1).
func (g *Grid) Index(c Coordinate) int {
	return c.Row*g.Width + c.Col
}

// Coordinate converts a row-major index back to (row, col).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coordinate {
	return Coordinate{Row: idx / g.Width, Col: idx % g.Width}
}

// Rows returns a deep copy of the cell values.
func (g *Grid) Rows() [][]float64 {
	out := make([][]float64, g.Height)
	for r := range out {
		out[r] = append([]float64(nil), g.cells[r]...)
	}

	return out
}

// Values returns all cell values in row-major order.
func (g *Grid) Values() []float64 {
	out := make([]float64, 0, g.Len())
	for _, row := range g.cells {
		out = append(out, row...)
	}

	return out
}

// IsMonotone reports whether every row and every column is non-decreasing,
// the precondition of the divide-and-conquer search.
// Complexity: O(H×W).
func (g *Grid) IsMonotone() bool {
	for r := 0; r < g.Height; r++ {
		for c := 0; c < g.Width; c++ {
			v := g.cells[r][c]
			if c > 0 && g.cells[r][c-1] > v {
				return false
			}
			if r > 0 && g.cells[r-1][c] > v {
				return false
			}
		}
	}

	return true
}
