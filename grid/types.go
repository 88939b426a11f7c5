package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrShape indicates invalid dimensions or an input list whose length is not height*width.
	ErrShape = errors.New("grid: input does not match grid shape")
	// ErrValue indicates a decoded cell that is not a finite number.
	ErrValue = errors.New("grid: cell value is not numeric")
)

// Coordinate addresses a single cell: Row in [0,Height), Col in [0,Width).
type Coordinate struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid is a rectangular block of numeric cells. It is immutable once built.
// Height and Width define dimensions; cells[r][c] holds the value at (r,c).
type Grid struct {
	Height, Width int
	cells         [][]float64
}
