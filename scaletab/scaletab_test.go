// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaletab

import (
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/scaling-tools/scalestat/scaling"
	"github.com/scaling-tools/scalestat/timelog"
)

func points(t *testing.T, key string, pairs ...float64) []scaling.Point {
	t.Helper()
	var recs []*timelog.Record
	for i := 0; i < len(pairs); i += 2 {
		recs = append(recs, &timelog.Record{Key: key, Value: int(pairs[i]), Real: pairs[i+1], User: 1.5, Sys: 0.25})
	}
	pts, err := scaling.Derive(recs)
	if err != nil {
		t.Fatal(err)
	}
	return pts
}

func checkLines(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Errorf("want %d lines, got %d:\n%s", len(want), len(got), strings.Join(got, "\n"))
		return
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d:\nwant %q\ngot  %q", i, want[i], got[i])
		}
	}
}

func TestText(t *testing.T) {
	pts := points(t, "nprocs", 1, 6000, 4, 1500)
	checkLines(t, Lines(pts, Text, Options{}),
		"NPROCS       RUNTIME  SPEEDUP  EFF.",
		"1            6000.0   1.0      1.000",
		"4            1500.0   4.0      1.000",
	)
}

func TestMarkdown(t *testing.T) {
	pts := points(t, "NPROCS", 1, 6000, 4, 1500)
	checkLines(t, Lines(pts, Markdown, Options{}),
		"| NPROCS      | RUNTIME | SPEEDUP | EFF.  |",
		"|-------------|---------|---------|-------|",
		"| 1           | 6000.0  | 1.0     | 1.000 |",
		"| 4           | 1500.0  | 4.0     | 1.000 |",
	)
}

func TestGeoMean(t *testing.T) {
	pts := points(t, "NTHREADS", 1, 100, 2, 50, 4, 25)
	checkLines(t, Lines(pts, Text, Options{GeoMean: true}),
		"NTHREADS     RUNTIME  SPEEDUP  EFF.",
		"1            100.0    1.0      1.000",
		"2            50.0     2.0      1.000",
		"4            25.0     4.0      1.000",
		"geomean               2.8      1.000",
	)
}

func TestLineCount(t *testing.T) {
	for n := 1; n <= 5; n++ {
		var pairs []float64
		for i := 1; i <= n; i++ {
			pairs = append(pairs, float64(i), 10/float64(i))
		}
		pts := points(t, "N", pairs...)
		if got := len(Lines(pts, Text, Options{})); got != n+1 {
			t.Errorf("text, %d points: want %d lines, got %d", n, n+1, got)
		}
		if got := len(Lines(pts, Markdown, Options{})); got != n+2 {
			t.Errorf("markdown, %d points: want %d lines, got %d", n, n+2, got)
		}
	}
}

func TestFixedPrecision(t *testing.T) {
	pts := points(t, "NPROCS", 3, 123456.789, 96, 0.00123, 1024, 1e9)
	cellRE := regexp.MustCompile(`^\| (\d+) +\| (\d+\.\d) +\| (\d+\.\d) +\| (\d+\.\d{3}) +\|$`)
	lines := Lines(pts, Markdown, Options{})
	for _, line := range lines[2:] {
		if !cellRE.MatchString(line) {
			t.Errorf("bad precision in %q", line)
		}
	}
	// Wide values widen the column rather than being truncated.
	if !strings.Contains(lines[2], "| 123456.8 ") {
		t.Errorf("want full runtime in %q", lines[2])
	}
	if !strings.Contains(lines[4], "| 1000000000.0 |") {
		t.Errorf("want full runtime in %q", lines[4])
	}
}

func TestFormat(t *testing.T) {
	pts := points(t, "NPROCS", 1, 6000, 4, 1500)
	var buf strings.Builder
	if err := Format(&buf, pts, Markdown, Options{}); err != nil {
		t.Fatal(err)
	}
	want := strings.Join(Lines(pts, Markdown, Options{}), "\n") + "\n"
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}

	if err := Format(&buf, nil, Text, Options{}); !errors.Is(err, scaling.ErrInsufficientData) {
		t.Errorf("want ErrInsufficientData, got %v", err)
	}
}

func TestCSV(t *testing.T) {
	pts := points(t, "nthreads", 1, 9, 3, 4)
	var buf strings.Builder
	if err := FormatCSV(&buf, pts); err != nil {
		t.Fatal(err)
	}
	want := "NTHREADS,RUNTIME,USER,SYS,SPEEDUP,EFFICIENCY\n" +
		"1,9,1.5,0.25,1,1\n" +
		"3,4,1.5,0.25,2.25,0.75\n"
	if buf.String() != want {
		t.Errorf("want:\n%sgot:\n%s", want, buf.String())
	}
}

func TestHTML(t *testing.T) {
	pts := points(t, "NPROCS", 1, 6000, 4, 1500)
	var buf strings.Builder
	if err := FormatHTML(&buf, pts, Options{GeoMean: true}); err != nil {
		t.Fatal(err)
	}
	got := buf.String()
	for _, want := range []string{
		"<table class='scalestat'>",
		"<tr><th>NPROCS<th>RUNTIME<th>SPEEDUP<th>EFF.\n",
		"<tr class='baseline'><td>1<td>6000.0<td>1.0<td>1.000\n",
		"<tr><td>4<td>1500.0<td>4.0<td>1.000\n",
		"<tr class='geomean'><td>geomean<td><td>4.0<td>1.000\n",
		"</table>\n",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q:\n%s", want, got)
		}
	}
}

func TestHTMLEscapesKey(t *testing.T) {
	pts := points(t, "a<b", 1, 2, 2, 1)
	var buf strings.Builder
	if err := FormatHTML(&buf, pts, Options{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "A<B") || !strings.Contains(buf.String(), "A&lt;B") {
		t.Errorf("key not escaped:\n%s", buf.String())
	}
}

func TestParseLayout(t *testing.T) {
	for _, l := range []Layout{Text, Markdown, CSV, HTML} {
		got, err := ParseLayout(l.String())
		if err != nil || got != l {
			t.Errorf("ParseLayout(%q) = %v, %v", l.String(), got, err)
		}
	}
	if got, _ := ParseLayout("md"); got != Markdown {
		t.Errorf("ParseLayout(md) = %v", got)
	}
	if _, err := ParseLayout("xml"); err == nil {
		t.Errorf("ParseLayout(xml): want error")
	}
}
