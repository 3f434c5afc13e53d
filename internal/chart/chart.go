package chart

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"ABTestLab/internal/model"
)

var (
	rateColor     = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	bandColor     = color.NRGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0x26}
	baselineColor = color.NRGBA{R: 0xdc, G: 0x26, B: 0x26, A: 0xff}
	trueRateColor = color.NRGBA{R: 0x16, G: 0xa3, B: 0x4a, A: 0xff}
)

// Render draws the cumulative rate over time with a shaded confidence band,
// a dashed baseline rule, and a dotted true-rate rule, then writes the chart
// as a PNG at the given DPI. An existing file at path is overwritten.
func Render(path string, dpi int, exp model.Experiment, obs []model.Observation) error {
	if len(obs) == 0 {
		return errors.New("no observations to plot")
	}
	if dpi <= 0 {
		return errors.New("dpi must be positive")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("A/B Test: Cumulative Conversion Rate with %.0f%% CI", exp.Confidence*100)
	p.X.Label.Text = "Date"
	p.Y.Label.Text = "Conversion Rate"
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	rateXYs := make(plotter.XYs, len(obs))
	for i, o := range obs {
		rateXYs[i] = plotter.XY{X: float64(o.Date.Unix()), Y: o.CumRate}
	}

	// Band polygon: lower bound left to right, then upper bound back.
	band := make(plotter.XYs, 0, 2*len(obs))
	for _, o := range obs {
		band = append(band, plotter.XY{X: float64(o.Date.Unix()), Y: o.CILower})
	}
	for i := len(obs) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: float64(obs[i].Date.Unix()), Y: obs[i].CIUpper})
	}

	poly, err := plotter.NewPolygon(band)
	if err != nil {
		return fmt.Errorf("build confidence band: %w", err)
	}
	poly.Color = bandColor
	poly.LineStyle.Width = 0

	line, err := plotter.NewLine(rateXYs)
	if err != nil {
		return fmt.Errorf("build rate line: %w", err)
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = rateColor

	baseline, err := horizontalRule(obs, exp.BaselineRate)
	if err != nil {
		return fmt.Errorf("build baseline rule: %w", err)
	}
	baseline.LineStyle.Color = baselineColor
	baseline.LineStyle.Width = vg.Points(1.5)
	baseline.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(4)}

	trueRate, err := horizontalRule(obs, exp.VariantRate)
	if err != nil {
		return fmt.Errorf("build true-rate rule: %w", err)
	}
	trueRate.LineStyle.Color = trueRateColor
	trueRate.LineStyle.Width = vg.Points(1.5)
	trueRate.LineStyle.Dashes = []vg.Length{vg.Points(1.5), vg.Points(3)}

	p.Add(poly, line, baseline, trueRate)
	p.Legend.Add("Cumulative Conversion Rate", line)
	p.Legend.Add(fmt.Sprintf("%.0f%% Confidence Interval", exp.Confidence*100), poly)
	p.Legend.Add(fmt.Sprintf("Baseline (%.0f%%)", exp.BaselineRate*100), baseline)
	p.Legend.Add(fmt.Sprintf("True Variant Rate (%.0f%%)", exp.VariantRate*100), trueRate)
	p.Legend.Top = true

	c := vgimg.NewWith(vgimg.UseWH(10*vg.Inch, 6*vg.Inch), vgimg.UseDPI(dpi))
	p.Draw(draw.New(c))

	w, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	png := vgimg.PngCanvas{Canvas: c}
	if _, err := png.WriteTo(w); err != nil {
		w.Close()
		return fmt.Errorf("write chart: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("close chart file: %w", err)
	}
	return nil
}

func horizontalRule(obs []model.Observation, y float64) (*plotter.Line, error) {
	first := float64(obs[0].Date.Unix())
	last := float64(obs[len(obs)-1].Date.Unix())
	return plotter.NewLine(plotter.XYs{{X: first, Y: y}, {X: last, Y: y}})
}
