// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"math"

	"github.com/aclements/go-moremath/stats"
)

// A Summary condenses the scaling of all non-baseline runs.
type Summary struct {
	// Runs is the number of runs compared against the baseline.
	Runs int

	// GeoMeanSpeedup and GeoMeanEfficiency are geometric means
	// over the compared runs. They are NaN if Runs is 0.
	GeoMeanSpeedup    float64
	GeoMeanEfficiency float64
}

// Summarize computes a Summary of pts. The baseline is excluded from
// the means since its speedup is 1 by construction.
func Summarize(pts []Point) Summary {
	var sum Summary
	if len(pts) == 0 {
		return sum
	}
	var speedups, effs []float64
	for _, p := range pts[1:] {
		speedups = append(speedups, p.Speedup)
		effs = append(effs, p.Efficiency)
	}
	sum.Runs = len(speedups)
	if sum.Runs == 0 {
		sum.GeoMeanSpeedup, sum.GeoMeanEfficiency = math.NaN(), math.NaN()
		return sum
	}
	sum.GeoMeanSpeedup = stats.GeoMean(speedups)
	sum.GeoMeanEfficiency = stats.GeoMean(effs)
	return sum
}
