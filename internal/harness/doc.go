// Package harness drives repeated Device queries to compare the
// divide-and-conquer search with the linear baseline.
//
// For every configured size n it generates a deterministic n×n monotone
// grid, encodes it into a Fixture, builds one Device per algorithm, sweeps
// every cell value through it and records cumulative scan counters, exact
// cell reads and wall time. Reports are written as JSON, a PNG line chart
// (gonum/plot) and an interactive HTML bar chart (go-echarts).
package harness
