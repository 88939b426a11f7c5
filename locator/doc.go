// Package locator ties the cipher, grid and search packages into a session
// object: a Device owns one grid, its coordinate→label map, the shift
// constant and a cumulative scan counter.
//
// Lifecycle:
//
//	d, err := locator.New(height, width, encLabels, encValues, shift)
//	err = d.BuildLabelMap() // decode labels, row-major
//	err = d.BuildGrid()     // decode values, row-major
//	m, ok := d.Locate(17)   // m.Label is re-encoded with the same shift
//
// Builds are explicit and never run implicitly. Re-running a build replaces
// the previous result only when it succeeds. A Device that has not been built
// answers every query with not-found.
//
// The scan counter accumulates across Locate and LocateLinear calls until
// ResetScans; Match.CallScans isolates the cost of one call.
//
// A Device is not safe for concurrent use.
package locator
