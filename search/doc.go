// Package search locates values in a monotone grid (every row and every
// column non-decreasing) by divide and conquer, with a row-major linear scan
// kept as the reference baseline.
//
// 🚀 How does it work?
//
//	A rectangle can only hold value if its top-left corner is ≤ value and its
//	bottom-right corner is ≥ value; anything else is pruned with two reads.
//	Surviving rectangles are split at their midpoint cell m:
//
//	  value < m: the block right-and-below of m is all ≥ m, so search
//	             A = rows above m (full width), then
//	             B = rows from m down, columns left of m.
//	  value > m: the block left-and-above of m is all ≤ m, so search
//	             C = rows down to m, columns right of m, then
//	             D = rows below m (full width).
//
//	This is saddleback search generalised with midpoint bisection.
//
// ✨ Key features:
//   - explicit LIFO work stack: same visiting order as the recursive form
//     (A before B, C before D) without call-stack growth on adversarial,
//     all-equal grids
//   - per-call cost in Result.Scanned, cumulative cost via WithCounter
//   - exact cell reads in Result.Inspected for honest comparisons
//   - OnVisit hook for tracing midpoints
//
// Cost accounting:
//
//	Scanned follows a fixed heuristic: a match charges 1 and every split
//	charges (RowTo-RowFrom)*(ColTo-ColFrom) of the rectangle being split. It
//	overestimates the work done and exists only for comparative benchmarks.
//	LinearScan charges 1 on success and nothing otherwise.
//
// Performance:
//
//   - Search:     O(log H + log W) rectangles on strongly sorted grids;
//     worst case bounded by the number of cells.
//   - LinearScan: O(H·W).
//   - Memory:     O(depth) for the work stack.
//
// Concurrency:
//
//	Grids are read-only and may be searched concurrently; a Counter is not
//	safe for concurrent use, so give each goroutine its own.
package search
