package grid

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/gridseek/cipher"
)

// checkShape validates dimensions against the length of a flat input list.
func checkShape(n, height, width int) error {
	if height <= 0 || width <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrShape, height, width)
	}
	if n != height*width {
		return fmt.Errorf("%w: got %d entries, want %d (%dx%d)", ErrShape, n, height*width, height, width)
	}

	return nil
}

// BuildLabels decodes a flat, row-major list of encoded labels into a
// coordinate→label map with exactly height*width entries. For a 2×2 grid the
// list [a, b, c, d] yields (0,0)→a, (0,1)→b, (1,0)→c, (1,1)→d.
//
// Returns ErrShape on a length mismatch and a wrapped cipher.ErrDecode naming
// the cell whose label could not be decoded.
// Complexity: O(H×W) time and memory.
func BuildLabels(codec cipher.Codec, encoded []string, height, width int) (map[Coordinate]string, error) {
	if err := checkShape(len(encoded), height, width); err != nil {
		return nil, err
	}
	labels := make(map[Coordinate]string, len(encoded))
	i := 0
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			label, err := codec.Decode(encoded[i])
			if err != nil {
				return nil, fmt.Errorf("grid: label at (%d,%d): %w", r, c, err)
			}
			labels[Coordinate{Row: r, Col: c}] = label
			i++
		}
	}

	return labels, nil
}

// BuildValues decodes a flat, row-major list of encoded numbers into a new
// height×width Grid. For a 2×2 grid the list [10, 15, 11, 16] yields
//
//	[[10 15]
//	 [11 16]]
//
// Returns ErrShape on a length mismatch, a wrapped cipher.ErrDecode for
// undecodable entries and ErrValue when the decoded text is not a finite
// number. The result is not checked for monotonicity.
// Complexity: O(H×W) time and memory.
func BuildValues(codec cipher.Codec, encoded []string, height, width int) (*Grid, error) {
	if err := checkShape(len(encoded), height, width); err != nil {
		return nil, err
	}
	g := alloc(height, width)
	i := 0
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			text, err := codec.Decode(encoded[i])
			if err != nil {
				return nil, fmt.Errorf("grid: value at (%d,%d): %w", r, c, err)
			}
			v, err := parseValue(text)
			if err != nil {
				return nil, fmt.Errorf("grid: value at (%d,%d): %w", r, c, err)
			}
			g.cells[r][c] = v
			i++
		}
	}

	return g, nil
}

// parseValue parses a decoded cell as a finite float64.
func parseValue(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrValue, text)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not finite", ErrValue, text)
	}

	return v, nil
}
