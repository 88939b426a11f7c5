package harness

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridseek/internal/config"
	"github.com/katalvlaran/gridseek/locator"
)

// Output file names inside the run directory.
const (
	ReportFile = "report.json"
	PNGFile    = "scans.png"
	HTMLFile   = "scans.html"
)

// Runner executes benchmark runs for one configuration.
type Runner struct {
	cfg config.BenchConfig
	log *zap.Logger
	now func() time.Time
}

// NewRunner validates cfg and returns a Runner. A nil logger disables
// logging.
func NewRunner(cfg config.BenchConfig, logger *zap.Logger) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Runner{cfg: cfg, log: logger, now: time.Now}, nil
}

// Run sweeps every configured size. It stops between sizes when ctx is
// cancelled and returns the partial report with ctx.Err().
func (r *Runner) Run(ctx context.Context) (*Report, error) {
	start := r.now()
	rep := &Report{
		RunID:   uuid.NewString(),
		Started: start,
		Seed:    r.cfg.Seed,
		Shift:   r.cfg.Shift,
		Repeats: r.cfg.Repeats,
	}
	for _, n := range r.cfg.Sizes() {
		if err := ctx.Err(); err != nil {
			return rep, err
		}
		res, err := r.runSize(n)
		if err != nil {
			return rep, fmt.Errorf("size %d: %w", n, err)
		}
		rep.Sizes = append(rep.Sizes, res)
		r.log.Info("size done",
			zap.Int("size", n),
			zap.Int("divconq_scans", res.DivConq.Scans),
			zap.Int("linear_scans", res.Linear.Scans),
			zap.Int("divconq_inspected", res.DivConq.Inspected),
			zap.Int("linear_inspected", res.Linear.Inspected),
			zap.Int("mismatches", res.Mismatches))
	}
	rep.Duration = r.now().Sub(start).Seconds()

	return rep, nil
}

// runSize benchmarks one n×n grid with a fresh Device per algorithm.
func (r *Runner) runSize(n int) (SizeResult, error) {
	rows := GenerateGrid(n, n, r.cfg.Seed)
	fx, err := NewFixture(rows, r.cfg.Shift)
	if err != nil {
		return SizeResult{}, err
	}
	values := make([]float64, 0, n*n)
	for _, row := range rows {
		values = append(values, row...)
	}

	fast, err := fx.Device(locator.WithLogger(r.log.Named(AlgoDivConq)))
	if err != nil {
		return SizeResult{}, err
	}
	slow, err := fx.Device(locator.WithLogger(r.log.Named(AlgoLinear)))
	if err != nil {
		return SizeResult{}, err
	}

	res := SizeResult{Size: n, Cells: n * n}
	var fastLabels, slowLabels []string
	res.DivConq, fastLabels = r.sweep(AlgoDivConq, fast.Locate, fast, values)
	res.Linear, slowLabels = r.sweep(AlgoLinear, slow.LocateLinear, slow, values)
	for i := range values {
		if fastLabels[i] != slowLabels[i] {
			res.Mismatches++
		}
	}

	return res, nil
}

// sweep queries every value Repeats times through locate. Counters and
// labels come from the first sweep; every sweep is timed.
func (r *Runner) sweep(name string, locate func(float64) (locator.Match, bool), d *locator.Device, values []float64) (AlgoStats, []string) {
	st := AlgoStats{Name: name}
	labels := make([]string, len(values))
	secs := make([]float64, 0, r.cfg.Repeats)
	for rep := 0; rep < r.cfg.Repeats; rep++ {
		d.ResetScans()
		t0 := r.now()
		for i, v := range values {
			m, ok := locate(v)
			if rep > 0 {
				continue
			}
			st.Inspected += m.Inspected
			if ok {
				st.Found++
				labels[i] = m.Label
			}
		}
		secs = append(secs, r.now().Sub(t0).Seconds())
		if rep == 0 {
			st.Scans = d.Scans()
		}
	}
	st.MeanSecs, st.StdDevSecs = stat.MeanStdDev(secs, nil)
	if len(secs) < 2 {
		st.StdDevSecs = 0
	}

	return st, labels
}

// Write stores rep in dir in every format requested by the configuration
// and returns the written paths.
func (r *Runner) Write(rep *Report, dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}
	var written []string
	if r.cfg.Wants(config.FormatJSON) {
		p := filepath.Join(dir, ReportFile)
		if err := rep.WriteJSON(p); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	if r.cfg.Wants(config.FormatPNG) {
		p := filepath.Join(dir, PNGFile)
		if err := WritePNG(rep, p); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	if r.cfg.Wants(config.FormatHTML) {
		p := filepath.Join(dir, HTMLFile)
		if err := WriteHTML(rep, p); err != nil {
			return written, err
		}
		written = append(written, p)
	}
	r.log.Info("report written", zap.String("run_id", rep.RunID), zap.Strings("files", written))

	return written, nil
}
