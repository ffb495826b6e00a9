// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaleplot turns scaling results into numeric series and
// renders them as charts.
//
// A Series is all a renderer needs: the independent variable of each
// run, one metric of each run, and optionally the index of a run to
// mark. Save renders Series with gonum/plot; other renderers can
// consume Series directly.
package scaleplot

import (
	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
	"github.com/scaling-tools/scalestat/scaling"
)

// DefaultHighlight is the index of the run marked by default: the
// third run.
const DefaultHighlight = 2

// NoHighlight means no run is marked.
const NoHighlight = -1

// A Series is a pair of parallel sequences ready for plotting.
type Series struct {
	Metric scaling.Metric

	// Key names the independent variable.
	Key string

	// X holds the Value of each run and Y the Metric of each run,
	// in run order. They have equal length.
	X, Y []float64

	// Highlight is the index of the run to mark, or NoHighlight.
	Highlight int
}

// NewSeries extracts metric m from pts. A highlight index outside pts
// is dropped silently.
func NewSeries(pts []scaling.Point, m scaling.Metric, highlight int) *Series {
	s := &Series{Metric: m, Highlight: NoHighlight}
	if len(pts) > 0 {
		s.Key = pts[0].Key
	}
	t := pointTable(pts)
	slice.Convert(&s.X, t.MustColumn("value"))
	slice.Convert(&s.Y, t.MustColumn(m.String()))
	if highlight >= 0 && highlight < len(pts) {
		s.Highlight = highlight
	}
	return s
}

// pointTable lays pts out as a table with one column per metric,
// named after the metric.
func pointTable(pts []scaling.Point) *table.Table {
	values := make([]int, len(pts))
	cols := map[scaling.Metric][]float64{}
	for _, m := range []scaling.Metric{scaling.Runtime, scaling.Speedup, scaling.Efficiency} {
		col := make([]float64, len(pts))
		for i := range pts {
			col[i] = m.Of(&pts[i])
		}
		cols[m] = col
	}
	for i, p := range pts {
		values[i] = p.Value
	}
	return new(table.Builder).
		Add("value", values).
		Add(scaling.Runtime.String(), cols[scaling.Runtime]).
		Add(scaling.Speedup.String(), cols[scaling.Speedup]).
		Add(scaling.Efficiency.String(), cols[scaling.Efficiency]).
		Done()
}

// Len returns the number of points in s.
func (s *Series) Len() int {
	return len(s.X)
}

// XY returns the i'th point of s.
func (s *Series) XY(i int) (x, y float64) {
	return s.X[i], s.Y[i]
}
