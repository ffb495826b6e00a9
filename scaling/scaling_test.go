// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaling

import (
	"errors"
	"math"
	"testing"

	"github.com/scaling-tools/scalestat/timelog"
)

func recs(pairs ...float64) []*timelog.Record {
	var out []*timelog.Record
	for i := 0; i < len(pairs); i += 2 {
		out = append(out, &timelog.Record{Key: "NPROCS", Value: int(pairs[i]), Real: pairs[i+1]})
	}
	return out
}

func TestDerive(t *testing.T) {
	pts, err := Derive(recs(1, 100, 4, 25, 8, 20))
	if err != nil {
		t.Fatal(err)
	}
	type want struct{ speedup, eff float64 }
	for i, w := range []want{{1, 1}, {4, 1}, {5, 0.625}} {
		if pts[i].Speedup != w.speedup || pts[i].Efficiency != w.eff {
			t.Errorf("point %d: want speedup %v eff %v, got %v %v", i, w.speedup, w.eff, pts[i].Speedup, pts[i].Efficiency)
		}
	}
	if pts[2].Value != 8 || pts[2].Key != "NPROCS" {
		t.Errorf("record not carried over: %+v", pts[2].Record)
	}
}

func TestDeriveBaselineIsFirst(t *testing.T) {
	// The first run is the baseline even when it is not the
	// smallest one.
	pts, err := Derive(recs(4, 30, 1, 90, 2, 45))
	if err != nil {
		t.Fatal(err)
	}
	if pts[0].Speedup != 1 {
		t.Errorf("baseline speedup: want 1, got %v", pts[0].Speedup)
	}
	if pts[0].Efficiency != 0.25 {
		t.Errorf("baseline efficiency: want 0.25, got %v", pts[0].Efficiency)
	}
	if got, want := pts[1].Speedup, 30.0/90; got != want {
		t.Errorf("want speedup %v, got %v", want, got)
	}
	if b := Baseline(pts); b != &pts[0] {
		t.Errorf("Baseline is not the first point")
	}
}

func TestDeriveBaselineExactlyOne(t *testing.T) {
	for _, real := range []float64{0.1, 1.0 / 3, 12345.678, 1e-9, 7} {
		pts, err := Derive(recs(3, real, 6, real/2))
		if err != nil {
			t.Fatal(err)
		}
		if pts[0].Speedup != 1.0 {
			t.Errorf("real=%v: baseline speedup %v", real, pts[0].Speedup)
		}
	}
}

func TestDeriveZeroRuntime(t *testing.T) {
	pts, err := Derive(recs(1, 10, 2, 0))
	if err != nil {
		t.Fatal(err)
	}
	if !math.IsInf(pts[1].Speedup, 1) {
		t.Errorf("want +Inf speedup, got %v", pts[1].Speedup)
	}
}

func TestDeriveEmpty(t *testing.T) {
	if _, err := Derive(nil); !errors.Is(err, ErrInsufficientData) {
		t.Errorf("want ErrInsufficientData, got %v", err)
	}
}

func TestIdeal(t *testing.T) {
	pts, err := Derive(recs(2, 80, 4, 50, 16, 20))
	if err != nil {
		t.Fatal(err)
	}
	check := func(m Metric, want ...float64) {
		t.Helper()
		got := Ideal(pts, m)
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("%s: want %v, got %v", m, want, got)
				return
			}
		}
	}
	check(Runtime, 80, 40, 10)
	check(Speedup, 1, 2, 8)
	check(Efficiency, 0.5, 0.5, 0.5)
	if Ideal(nil, Speedup) != nil {
		t.Errorf("want nil ideal for no points")
	}
}

func TestMetric(t *testing.T) {
	p := &Point{Record: timelog.Record{Real: 3}, Speedup: 2, Efficiency: 0.5}
	for _, test := range []struct {
		name string
		m    Metric
		val  float64
	}{
		{"runtime", Runtime, 3},
		{"Speedup", Speedup, 2},
		{"EFFICIENCY", Efficiency, 0.5},
	} {
		m, err := ParseMetric(test.name)
		if err != nil {
			t.Fatal(err)
		}
		if m != test.m {
			t.Errorf("ParseMetric(%q): want %v, got %v", test.name, test.m, m)
		}
		if got := m.Of(p); got != test.val {
			t.Errorf("%v.Of: want %v, got %v", m, test.val, got)
		}
	}
	if _, err := ParseMetric("latency"); err == nil {
		t.Errorf("ParseMetric(latency): want error")
	}
	if s := Metric(7).String(); s != "Metric(7)" {
		t.Errorf("want Metric(7), got %s", s)
	}
}

func TestSummarize(t *testing.T) {
	pts, err := Derive(recs(1, 64, 2, 32, 4, 8, 8, 16))
	if err != nil {
		t.Fatal(err)
	}
	sum := Summarize(pts)
	if sum.Runs != 3 {
		t.Errorf("want 3 runs, got %d", sum.Runs)
	}
	// Speedups 2, 8, 4; efficiencies 1, 2, 0.5.
	if math.Abs(sum.GeoMeanSpeedup-4) > 1e-12 {
		t.Errorf("want geomean speedup 4, got %v", sum.GeoMeanSpeedup)
	}
	if math.Abs(sum.GeoMeanEfficiency-1) > 1e-12 {
		t.Errorf("want geomean efficiency 1, got %v", sum.GeoMeanEfficiency)
	}

	one := Summarize(pts[:1])
	if one.Runs != 0 || !math.IsNaN(one.GeoMeanSpeedup) {
		t.Errorf("want empty summary, got %+v", one)
	}
}
