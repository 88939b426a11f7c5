// Package gridseek locates values in monotone grids, the "Young tableau"
// shape where every row and every column is non-decreasing.
//
// 🚀 What is gridseek?
//
//	A small, pure-Go library that brings together:
//		• Cipher codec: shift every rune and render it as binary tokens
//		• Grid builder: decode a flat, row-major encoded list into a grid
//		  and a coordinate → label map
//		• Search: divide-and-conquer quadrant elimination with an explicit
//		  work stack, plus a linear baseline
//		• Locator: a session that owns the built grid, answers queries and
//		  keeps a cumulative scan counter
//
// ✨ Why choose gridseek?
//
//   - Deterministic: same inputs, same coordinate and the same charged cost
//   - No recursion: adversarial grids cannot exhaust the call stack
//   - Observable: OnVisit hook on every examined midpoint
//
// Under the hood, everything is organized under four subpackages:
//
//	cipher/  shift cipher with binary token rendering
//	grid/    Grid, Coordinate and the encoded-input builders
//	search/  Search, SearchRegion, LinearScan, Region and Counter
//	locator/ Device: build once, locate repeatedly
//
// Quick ASCII example (value 16 in a 2×2 grid):
//
//	    10  15
//	    11  16  ← found at (1,1)
//
// The gridseek command (cmd/gridseek) wraps the codec and the locator and
// runs the comparative benchmark of internal/harness.
//
//	go install github.com/katalvlaran/gridseek/cmd/gridseek@latest
package gridseek
