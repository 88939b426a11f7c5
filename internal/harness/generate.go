package harness

import "math/rand"

// GenerateGrid returns an m×n grid whose values grow along row-major order:
// the first cell is 0 and each following cell adds 1 or 2. Every row starts
// above the previous row's end, so rows and columns are strictly increasing.
// The same seed always yields the same grid.
func GenerateGrid(m, n int, seed int64) [][]float64 {
	rng := rand.New(rand.NewSource(seed))
	rows := make([][]float64, m)
	x := 0
	for r := range rows {
		rows[r] = make([]float64, n)
		for c := range rows[r] {
			rows[r][c] = float64(x)
			x += 1 + rng.Intn(2)
		}
	}

	return rows
}
