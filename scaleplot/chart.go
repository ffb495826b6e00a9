// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaleplot

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/brewer"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/scaling-tools/scalestat/scaling"
)

// A Kind is one of the charts the commands can draw.
type Kind int

const (
	// RuntimeChart plots walltime against the independent variable.
	RuntimeChart Kind = iota
	// SpeedupChart plots speedup with the ideal linear speedup.
	SpeedupChart
	// EfficiencyChart plots efficiency with the ideal of 1.
	EfficiencyChart
	// ScalingChart plots walltime on log-log axes with the ideal
	// strong-scaling curve.
	ScalingChart
)

var kindNames = [...]string{
	RuntimeChart:    "runtime",
	SpeedupChart:    "speedup",
	EfficiencyChart: "efficiency",
	ScalingChart:    "scaling",
}

func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Metric returns the metric plotted by charts of kind k.
func (k Kind) Metric() scaling.Metric {
	switch k {
	case SpeedupChart:
		return scaling.Speedup
	case EfficiencyChart:
		return scaling.Efficiency
	}
	return scaling.Runtime
}

// Options controls chart rendering.
type Options struct {
	// Width and Height are the figure size.
	Width, Height vg.Length

	// DPI is the resolution of raster formats.
	DPI int

	// LogBase is the base of the logarithmic X axis. Values <= 1
	// select a linear X axis. The base only affects which values
	// are considered "round"; the X ticks are always the run values.
	LogBase float64

	// LogY selects a logarithmic Y axis.
	LogY bool

	// Title and XLabel label the chart. An empty XLabel uses the
	// series key.
	Title, XLabel string

	// Ideal, if non-nil, is a reference curve drawn beneath the
	// series at the same X values.
	Ideal []float64
}

// DefaultOptions returns a 6x4 inch, 120 DPI figure with a base-2
// logarithmic X axis.
func DefaultOptions() Options {
	return Options{
		Width:   6 * vg.Inch,
		Height:  4 * vg.Inch,
		DPI:     120,
		LogBase: 2,
	}
}

const (
	lineWidth   = 3
	pointRadius = 5
	markRadius  = 9
)

var idealColor = color.Gray{128}

// seriesColors are the line colors for runtime, speedup and efficiency,
// followed by the highlight color.
var seriesColors = func() []color.Color {
	p, err := brewer.GetPalette(brewer.TypeQualitative, "Set1", 3)
	if err != nil {
		panic(err)
	}
	c := p.Colors()
	return []color.Color{
		scaling.Runtime:    c[1],
		scaling.Speedup:    c[1],
		scaling.Efficiency: c[0],
		3:                  c[2],
	}
}()

// Chart draws a chart of kind k for pts and saves it to path.
func Chart(pts []scaling.Point, k Kind, highlight int, path string, opts Options) error {
	s := NewSeries(pts, k.Metric(), highlight)
	switch k {
	case SpeedupChart, EfficiencyChart, ScalingChart:
		opts.Ideal = scaling.Ideal(pts, k.Metric())
	}
	if k == ScalingChart {
		opts.LogY = true
	}
	return Save(s, path, opts)
}

// Plot builds the chart of s.
func Plot(s *Series, opts Options) (*plot.Plot, error) {
	if s.Len() == 0 {
		return nil, fmt.Errorf("no points to plot")
	}
	if opts.Ideal != nil && len(opts.Ideal) != s.Len() {
		return nil, fmt.Errorf("ideal curve has %d points, series has %d", len(opts.Ideal), s.Len())
	}

	p := plot.New()
	p.BackgroundColor = color.Transparent
	p.Title.Text = opts.Title
	p.X.Label.Text = opts.XLabel
	if p.X.Label.Text == "" {
		p.X.Label.Text = s.Key
	}
	p.Y.Label.Text = s.Metric.Label()

	if opts.LogBase > 1 && logScalable(s.X) {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = valueTicks(s.X)
	}
	if opts.LogY && logScalable(s.Y) && allPositive(opts.Ideal) {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{}
	}

	if opts.Ideal != nil {
		xys := make(plotter.XYs, s.Len())
		for i := range xys {
			xys[i].X, xys[i].Y = s.X[i], opts.Ideal[i]
		}
		ideal, err := plotter.NewLine(xys)
		if err != nil {
			return nil, err
		}
		ideal.Color = idealColor
		ideal.Width = vg.Points(lineWidth)
		p.Add(ideal)
		p.Legend.Add("ideal", ideal)
	}

	line, points, err := plotter.NewLinePoints(s)
	if err != nil {
		return nil, err
	}
	clr := seriesColors[s.Metric]
	line.Color = clr
	line.Width = vg.Points(lineWidth)
	points.Color = clr
	points.Shape = draw.CircleGlyph{}
	points.Radius = vg.Points(pointRadius)
	p.Add(line, points)
	if opts.Ideal != nil {
		p.Legend.Add("measured", line, points)
		p.Legend.Top = s.Metric == scaling.Speedup
	}

	if s.Highlight != NoHighlight {
		x, y := s.XY(s.Highlight)
		mark, err := plotter.NewScatter(plotter.XYs{{X: x, Y: y}})
		if err != nil {
			return nil, err
		}
		mark.Color = seriesColors[3]
		mark.Shape = draw.RingGlyph{}
		mark.Radius = vg.Points(markRadius)
		p.Add(mark)
	}
	return p, nil
}

// Save renders s to path. The file extension selects the format: png,
// jpg, jpeg, tif, tiff, svg, pdf or eps.
func Save(s *Series, path string, opts Options) error {
	if opts.Width == 0 || opts.Height == 0 {
		def := DefaultOptions()
		opts.Width, opts.Height = def.Width, def.Height
	}
	if opts.DPI == 0 {
		opts.DPI = DefaultOptions().DPI
	}
	p, err := Plot(s, opts)
	if err != nil {
		return err
	}
	wt, err := writerTo(p, strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")), opts)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := wt.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writerTo(p *plot.Plot, ext string, opts Options) (io.WriterTo, error) {
	raster := func(bg color.Color) *vgimg.Canvas {
		c := vgimg.NewWith(vgimg.UseWH(opts.Width, opts.Height), vgimg.UseDPI(opts.DPI), vgimg.UseBackgroundColor(bg))
		p.Draw(draw.New(c))
		return c
	}
	switch ext {
	case "png":
		return vgimg.PngCanvas{Canvas: raster(color.Transparent)}, nil
	case "jpg", "jpeg":
		return vgimg.JpegCanvas{Canvas: raster(color.White)}, nil
	case "tif", "tiff":
		return vgimg.TiffCanvas{Canvas: raster(color.Transparent)}, nil
	case "svg", "pdf", "eps":
		return p.WriterTo(opts.Width, opts.Height, ext)
	}
	return nil, fmt.Errorf("unsupported figure format %q", ext)
}

// valueTicks labels exactly the given X values.
func valueTicks(xs []float64) plot.ConstantTicks {
	ticks := make([]plot.Tick, len(xs))
	for i, x := range xs {
		ticks[i] = plot.Tick{Value: x, Label: strconv.FormatFloat(x, 'g', -1, 64)}
	}
	return plot.ConstantTicks(ticks)
}

// logScalable reports whether xs can be drawn on a log axis: all
// values are finite and positive, and they span a non-empty range.
func logScalable(xs []float64) bool {
	if !allPositive(xs) {
		return false
	}
	for _, x := range xs {
		if x != xs[0] {
			return true
		}
	}
	return false
}

func allPositive(xs []float64) bool {
	for _, x := range xs {
		if !(x > 0) || math.IsInf(x, 0) {
			return false
		}
	}
	return true
}
