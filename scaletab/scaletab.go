// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scaletab formats scaling results as tables.
//
// The fixed layouts have one header row naming the independent
// variable (upper-cased) followed by RUNTIME, SPEEDUP and EFF., and one
// row per run:
//
//	| NPROCS      | RUNTIME | SPEEDUP | EFF.  |
//	|-------------|---------|---------|-------|
//	| 1           | 6000.0  | 1.0     | 1.000 |
//	| 4           | 1500.0  | 4.0     | 1.000 |
//
// Runtime and speedup have one decimal place and efficiency three,
// whatever their magnitude. Formatting never depends on the locale.
package scaletab

import (
	"fmt"
	"io"
	"strings"

	"github.com/scaling-tools/scalestat/internal/texttab"
	"github.com/scaling-tools/scalestat/scaling"
)

// A Layout selects a table format.
type Layout int

const (
	// Text is a fixed-width table without borders.
	Text Layout = iota
	// Markdown is a pipe-delimited table with a header separator.
	Markdown
	// CSV has full-precision values and includes user and system
	// times.
	CSV
	// HTML is a single <table> element.
	HTML
)

var layoutNames = [...]string{
	Text:     "text",
	Markdown: "markdown",
	CSV:      "csv",
	HTML:     "html",
}

func (l Layout) String() string {
	if l >= 0 && int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", int(l))
}

// ParseLayout returns the Layout named s. "md" is accepted for
// Markdown.
func ParseLayout(s string) (Layout, error) {
	if s == "md" {
		return Markdown, nil
	}
	for l, name := range layoutNames {
		if s == name {
			return Layout(l), nil
		}
	}
	return 0, fmt.Errorf("unknown table format %q: want text, markdown, csv, or html", s)
}

// Options adjusts table output.
type Options struct {
	// GeoMean adds a footer row with the geometric mean speedup
	// and efficiency of the non-baseline runs.
	GeoMean bool
}

// Minimum column widths of the fixed layouts.
const (
	keyWidth     = 11
	runtimeWidth = 7
	speedupWidth = 7
	effWidth     = 5
)

// Header names of the fixed columns.
const (
	RuntimeHeader = "RUNTIME"
	SpeedupHeader = "SPEEDUP"
	EffHeader     = "EFF."
)

// Lines returns the Text or Markdown rendering of pts as one string
// per line, without terminators. Other layouts return nil.
func Lines(pts []scaling.Point, layout Layout, opts Options) []string {
	var style texttab.Style
	switch layout {
	case Text:
		style = texttab.Plain
	case Markdown:
		style = texttab.Pipe
	default:
		return nil
	}
	if len(pts) == 0 {
		return nil
	}

	var tab texttab.Table
	for col, w := range []int{keyWidth, runtimeWidth, speedupWidth, effWidth} {
		tab.SetMinWidth(col, w)
	}
	tab.Row().Cell(strings.ToUpper(pts[0].Key)).Cell(RuntimeHeader).Cell(SpeedupHeader).Cell(EffHeader)
	for _, p := range pts {
		tab.Row().
			Cell(fmt.Sprintf("%d", p.Value)).
			Cell(fmt.Sprintf("%.1f", p.Real)).
			Cell(fmt.Sprintf("%.1f", p.Speedup)).
			Cell(fmt.Sprintf("%.3f", p.Efficiency))
	}
	if opts.GeoMean {
		if sum := scaling.Summarize(pts); sum.Runs > 0 {
			tab.Row().
				Cell("geomean").
				Cell("").
				Cell(fmt.Sprintf("%.1f", sum.GeoMeanSpeedup)).
				Cell(fmt.Sprintf("%.3f", sum.GeoMeanEfficiency))
		}
	}
	return tab.Lines(style)
}

// Format writes pts to w in the given layout.
func Format(w io.Writer, pts []scaling.Point, layout Layout, opts Options) error {
	if len(pts) == 0 {
		return scaling.ErrInsufficientData
	}
	switch layout {
	case Text, Markdown:
		for _, line := range Lines(pts, layout, opts) {
			if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
				return err
			}
		}
		return nil
	case CSV:
		return FormatCSV(w, pts)
	case HTML:
		return FormatHTML(w, pts, opts)
	}
	return fmt.Errorf("unknown table format %v", layout)
}
