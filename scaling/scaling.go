// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaling derives speedup and parallel efficiency from a
// sequence of timed runs.
//
// The baseline is always the first run in the sequence, whatever its
// value. Logs whose first run is not the smallest-scale run therefore
// report speedups relative to a larger run; callers that care should
// order their runs accordingly.
package scaling

import (
	"errors"

	"github.com/scaling-tools/scalestat/timelog"
)

// ErrInsufficientData is returned when there are too few runs to
// derive anything from.
var ErrInsufficientData = errors.New("insufficient data: no runs to derive scaling from")

// A Point is a timed run together with its scaling relative to the
// baseline run.
type Point struct {
	timelog.Record

	// Speedup is baseline.Real / Real.
	Speedup float64

	// Efficiency is Speedup / Value.
	Efficiency float64
}

// Derive computes the speedup and efficiency of every record relative
// to recs[0] and returns one Point per record, in order.
//
// Derive does not validate its input: a zero Real yields an infinite
// speedup rather than an error.
func Derive(recs []*timelog.Record) ([]Point, error) {
	if len(recs) < 1 {
		return nil, ErrInsufficientData
	}
	base := recs[0].Real
	pts := make([]Point, len(recs))
	for i, r := range recs {
		p := &pts[i]
		p.Record = *r
		p.Speedup = base / r.Real
		p.Efficiency = p.Speedup / float64(r.Value)
	}
	return pts, nil
}

// Baseline returns the point all others are measured against.
func Baseline(pts []Point) *Point {
	if len(pts) == 0 {
		return nil
	}
	return &pts[0]
}

// Ideal returns the ideal-scaling reference of metric m at each point,
// extrapolated from the baseline: perfect speedup grows linearly with
// Value and runtime shrinks as 1/Value. Ideal efficiency is the ideal
// speedup over Value, which is 1 when the baseline Value is 1.
func Ideal(pts []Point, m Metric) []float64 {
	base := Baseline(pts)
	if base == nil {
		return nil
	}
	ys := make([]float64, len(pts))
	for i, p := range pts {
		ratio := float64(p.Value) / float64(base.Value)
		switch m {
		case Runtime:
			ys[i] = base.Real / ratio
		case Speedup:
			ys[i] = ratio
		case Efficiency:
			ys[i] = ratio / float64(p.Value)
		}
	}
	return ys
}
