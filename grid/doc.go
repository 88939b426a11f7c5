// Package grid holds the monotone 2D grid searched by gridseek and the
// builders that populate it from cipher-encoded input lists.
//
// What:
//
//   - Grid wraps a rectangular Height×Width block of float64 cells, deep-copied
//     on construction and immutable afterwards.
//   - Coordinate addresses a cell as (Row, Col); Index/Coordinate convert to
//     and from row-major indices.
//   - BuildValues and BuildLabels consume flat, row-major lists of encoded
//     strings (row 0 left to right, then row 1, ...) and decode them.
//
// Why:
//
//   - Search algorithms need O(1) cell access and cheap corner reads.
//   - Input arrives as a flat list, so wrap-around placement lives in one spot.
//
// Precondition:
//
//	Searches assume every row and every column is non-decreasing. The builders
//	do not check this; callers that need a guarantee use Grid.IsMonotone.
//
// Complexity:
//
//   - NewGrid, BuildValues, BuildLabels: O(H×W) time and memory.
//   - At, InBounds, Index, Coordinate: O(1).
//   - IsMonotone: O(H×W).
//
// Errors:
//
//   - ErrEmptyGrid: input has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrShape: non-positive dimensions or a list length other than H×W.
//   - ErrValue: a decoded cell is not a finite number.
//   - cipher.ErrDecode (wrapped): an encoded entry could not be decoded.
package grid
