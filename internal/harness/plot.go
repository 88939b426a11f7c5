package harness

import (
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	divConqColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}
	linearColor  = color.RGBA{R: 214, G: 39, B: 40, A: 255}
)

// WritePNG plots the cumulative scan counters and exact cell reads of both
// algorithms against grid size on a log scale.
func WritePNG(rep *Report, path string) error {
	if len(rep.Sizes) == 0 {
		return fmt.Errorf("harness: no sizes to plot")
	}

	p := plot.New()
	p.Title.Text = "Divide and Conquer vs. Linear Scan"
	p.X.Label.Text = "Grid side (n)"
	p.Y.Label.Text = "Cost (log)"
	p.Y.Scale = plot.LogScale{}
	p.Y.Tick.Marker = plot.LogTicks{Prec: -1}

	series := []struct {
		name  string
		col   color.Color
		dash  bool
		value func(SizeResult) int
	}{
		{"divconq scans", divConqColor, false, func(s SizeResult) int { return s.DivConq.Scans }},
		{"linear scans", linearColor, false, func(s SizeResult) int { return s.Linear.Scans }},
		{"divconq reads", divConqColor, true, func(s SizeResult) int { return s.DivConq.Inspected }},
		{"linear reads", linearColor, true, func(s SizeResult) int { return s.Linear.Inspected }},
	}
	for _, s := range series {
		pts := make(plotter.XYs, len(rep.Sizes))
		for i, sr := range rep.Sizes {
			// log scale needs strictly positive values
			pts[i] = plotter.XY{X: float64(sr.Size), Y: math.Max(1, float64(s.value(sr)))}
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return err
		}
		line.Color = s.col
		line.Width = vg.Points(1)
		if s.dash {
			line.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
		}
		points.Color = s.col
		points.Shape = draw.CircleGlyph{}
		p.Add(line, points)
		p.Legend.Add(s.name, line, points)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	p.Legend.XOffs = 10
	p.Legend.YOffs = -10

	if err := p.Save(10*vg.Inch, 6*vg.Inch, path); err != nil {
		return fmt.Errorf("save scans plot: %w", err)
	}

	return nil
}
