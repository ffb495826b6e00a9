// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package report implements the output flags shared by the scaling
// commands: tabulation in several layouts and chart files.
package report

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/scaling-tools/scalestat/scaleplot"
	"github.com/scaling-tools/scalestat/scaletab"
	"github.com/scaling-tools/scalestat/scaling"
)

// DefaultFigure is the chart file written when -o is not given.
const DefaultFigure = "plot.png"

// Flags holds the output selection of a command.
type Flags struct {
	Tabulate  bool
	Format    string
	GeoMean   bool
	Figure    string
	Highlight int
	Title     string
	XLabel    string
	LinearX   bool

	plots  [len(kinds)]bool
	layout scaletab.Layout
	fs     *flag.FlagSet
}

var kinds = [...]scaleplot.Kind{
	scaleplot.RuntimeChart,
	scaleplot.SpeedupChart,
	scaleplot.EfficiencyChart,
	scaleplot.ScalingChart,
}

// Register defines the output flags on fs.
func (f *Flags) Register(fs *flag.FlagSet) {
	f.fs = fs
	fs.BoolVar(&f.Tabulate, "tabulate", false, "print a table of runtime, speedup and efficiency (default if no -plot flag is given)")
	fs.StringVar(&f.Format, "format", "text", "table `format`: text, markdown, csv, or html")
	fs.BoolVar(&f.GeoMean, "geomean", false, "add the geometric mean speedup and efficiency to the table")
	for i, k := range kinds {
		fs.BoolVar(&f.plots[i], "plot-"+k.String(), false, fmt.Sprintf("draw the %s chart", k))
	}
	fs.StringVar(&f.Figure, "o", DefaultFigure, "chart output `file`; the extension selects the format")
	fs.IntVar(&f.Highlight, "highlight", scaleplot.DefaultHighlight, "mark the run at `index` in charts; -1 for none")
	fs.StringVar(&f.Title, "title", "", "chart `title`")
	fs.StringVar(&f.XLabel, "xlabel", "", "chart X axis `label` (default the log's key)")
	fs.BoolVar(&f.LinearX, "linear", false, "use a linear X axis instead of log base 2")
}

// Check validates the flags after parsing.
func (f *Flags) Check() error {
	l, err := scaletab.ParseLayout(f.Format)
	if err != nil {
		return err
	}
	f.layout = l
	if f.Figure == "" && f.plotting() {
		return fmt.Errorf("-o must name a file")
	}
	return nil
}

func (f *Flags) plotting() bool {
	for _, on := range f.plots {
		if on {
			return true
		}
	}
	return false
}

// Kinds returns the requested chart kinds, in a fixed order.
func (f *Flags) Kinds() []scaleplot.Kind {
	var ks []scaleplot.Kind
	for i, on := range f.plots {
		if on {
			ks = append(ks, kinds[i])
		}
	}
	return ks
}

// Emit writes the table to w and the charts to their files, as the
// flags request. Warnings go to wErr. The table is written only once
// every chart has been saved. Emit returns the names of the chart
// files written.
func (f *Flags) Emit(w, wErr io.Writer, pts []scaling.Point) ([]string, error) {
	ks := f.Kinds()
	var table bytes.Buffer
	if f.Tabulate || len(ks) == 0 {
		if err := scaletab.Format(&table, pts, f.layout, scaletab.Options{GeoMean: f.GeoMean}); err != nil {
			return nil, err
		}
	}

	if len(ks) > 0 && f.highlightSet() && f.Highlight >= len(pts) {
		fmt.Fprintf(wErr, "%s: warning: -highlight %d is out of range for %d runs; not highlighting\n", f.fs.Name(), f.Highlight, len(pts))
	}
	opts := scaleplot.DefaultOptions()
	opts.Title = f.Title
	opts.XLabel = f.XLabel
	if f.LinearX {
		opts.LogBase = 0
	}
	var files []string
	for _, k := range ks {
		path := FigurePath(f.Figure, k, len(ks))
		if err := scaleplot.Chart(pts, k, f.Highlight, path, opts); err != nil {
			return files, err
		}
		files = append(files, path)
	}

	_, err := table.WriteTo(w)
	return files, err
}

// highlightSet reports whether -highlight was given on the command
// line.
func (f *Flags) highlightSet() bool {
	set := false
	if f.fs != nil {
		f.fs.Visit(func(fl *flag.Flag) {
			if fl.Name == "highlight" {
				set = true
			}
		})
	}
	return set
}

// FigurePath returns the file for chart k when n charts share the base
// name. With more than one chart, "-<kind>" is inserted before the
// extension so charts do not overwrite each other.
func FigurePath(base string, k scaleplot.Kind, n int) string {
	if n <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + k.String() + ext
}
