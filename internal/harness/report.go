package harness

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Algorithm names used in reports and logs.
const (
	AlgoDivConq = "divconq"
	AlgoLinear  = "linear"
)

// Report holds the results of one benchmark run.
type Report struct {
	RunID    string       `json:"run_id"`
	Started  time.Time    `json:"started"`
	Duration float64      `json:"duration_secs"`
	Seed     int64        `json:"seed"`
	Shift    int          `json:"shift"`
	Repeats  int          `json:"repeats"`
	Sizes    []SizeResult `json:"sizes"`
}

// SizeResult holds both algorithms' statistics for one n×n grid.
type SizeResult struct {
	Size       int       `json:"size"`
	Cells      int       `json:"cells"`
	DivConq    AlgoStats `json:"divconq"`
	Linear     AlgoStats `json:"linear"`
	Mismatches int       `json:"mismatches"` // values whose labels disagree between algorithms
}

// AlgoStats holds per-algorithm results of one full sweep.
//   - Scans: cumulative scan counter after sweeping every cell value once.
//   - Inspected: exact cell reads over the sweep.
//   - Found: number of values located.
//   - MeanSecs, StdDevSecs: wall time of a sweep over Repeats runs.
type AlgoStats struct {
	Name       string  `json:"name"`
	Scans      int     `json:"scans"`
	Inspected  int     `json:"inspected"`
	Found      int     `json:"found"`
	MeanSecs   float64 `json:"mean_secs"`
	StdDevSecs float64 `json:"stddev_secs"`
}

// WriteJSON writes r as indented JSON to path.
func (r *Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	return nil
}

// ReadReport loads a JSON report.
func ReadReport(path string) (*Report, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read report: %w", err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &r, nil
}
