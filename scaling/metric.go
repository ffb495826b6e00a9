// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"fmt"
	"strings"
)

// A Metric selects one derived quantity of a Point.
type Metric int

const (
	Runtime Metric = iota
	Speedup
	Efficiency
)

var metricNames = [...]string{
	Runtime:    "runtime",
	Speedup:    "speedup",
	Efficiency: "efficiency",
}

func (m Metric) String() string {
	if m >= 0 && int(m) < len(metricNames) {
		return metricNames[m]
	}
	return fmt.Sprintf("Metric(%d)", int(m))
}

// Label returns an axis label for m.
func (m Metric) Label() string {
	switch m {
	case Runtime:
		return "Walltime (sec)"
	case Speedup:
		return "Speedup"
	case Efficiency:
		return "Efficiency"
	}
	return m.String()
}

// Of returns the value of m for p.
func (m Metric) Of(p *Point) float64 {
	switch m {
	case Runtime:
		return p.Real
	case Speedup:
		return p.Speedup
	case Efficiency:
		return p.Efficiency
	}
	panic(fmt.Sprintf("unknown metric %d", int(m)))
}

// ParseMetric returns the Metric named s, ignoring case.
func ParseMetric(s string) (Metric, error) {
	for m, name := range metricNames {
		if strings.EqualFold(s, name) {
			return Metric(m), nil
		}
	}
	return 0, fmt.Errorf("unknown metric %q: want runtime, speedup, or efficiency", s)
}
