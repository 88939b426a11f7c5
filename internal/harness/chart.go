package harness

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteHTML renders the scan counters and wall times of both algorithms as
// interactive bar charts.
func WriteHTML(rep *Report, path string) error {
	if len(rep.Sizes) == 0 {
		return fmt.Errorf("harness: no sizes to chart")
	}

	x := make([]string, len(rep.Sizes))
	fastScans := make([]opts.BarData, len(rep.Sizes))
	slowScans := make([]opts.BarData, len(rep.Sizes))
	fastSecs := make([]opts.BarData, len(rep.Sizes))
	slowSecs := make([]opts.BarData, len(rep.Sizes))
	for i, s := range rep.Sizes {
		x[i] = strconv.Itoa(s.Size)
		fastScans[i] = opts.BarData{Value: max(1, s.DivConq.Scans)}
		slowScans[i] = opts.BarData{Value: max(1, s.Linear.Scans)}
		fastSecs[i] = opts.BarData{Value: s.DivConq.MeanSecs}
		slowSecs[i] = opts.BarData{Value: s.Linear.MeanSecs}
	}

	scans := charts.NewBar()
	scans.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "gridseek benchmark", Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Scan counter per grid side", Subtitle: fmt.Sprintf("run=%s seed=%d shift=%d", rep.RunID, rep.Seed, rep.Shift)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n", NameLocation: "middle", NameGap: 25}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log", Name: "scans"}),
	)
	scans.SetXAxis(x).
		AddSeries(AlgoDivConq, fastScans).
		AddSeries(AlgoLinear, slowScans)

	times := charts.NewBar()
	times.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: "1200px", Height: "600px"}),
		charts.WithTitleOpts(opts.Title{Title: "Mean sweep time (s)", Subtitle: fmt.Sprintf("repeats=%d", rep.Repeats)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n", NameLocation: "middle", NameGap: 25}),
	)
	times.SetXAxis(x).
		AddSeries(AlgoDivConq, fastSecs).
		AddSeries(AlgoLinear, slowSecs)

	page := components.NewPage()
	page.AddCharts(scans, times)

	var buf bytes.Buffer
	if err := page.Render(&buf); err != nil {
		return fmt.Errorf("render error: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}

	return nil
}
