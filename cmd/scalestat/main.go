// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Scalestat computes and presents the scaling of a parallel program
// from a log of timed runs.
//
// Usage:
//
//	scalestat [flags] log.txt
//
// The log contains one block per run, as written by a driver script
// that echoes the varying parameter and then times the program:
//
//	NPROCS=4
//	[1] 0.25 1.5
//
//	real	2m50.0s
//	user	11m20.1s
//	sys	0m1.2s
//
// The first block is the baseline. For every run scalestat derives
// the speedup over the baseline and the parallel efficiency (speedup
// divided by the parameter value). Lines starting with "Loading
// required package:" are ignored. A log file of "-" reads standard
// input.
//
// By default scalestat prints a fixed-width table:
//
//	$ scalestat nprocs.log
//	NPROCS       RUNTIME  SPEEDUP  EFF.
//	1            640.0    1.0      1.000
//	2            330.0    1.9      0.970
//	4            170.0    3.8      0.941
//	8            100.0    6.4      0.800
//
// The -format flag selects another table layout: markdown (a pipe
// table), csv (full precision, including user and sys times), or html.
// The -geomean flag adds a row with the geometric mean speedup and
// efficiency of the non-baseline runs.
//
// The -plot-runtime, -plot-speedup, -plot-efficiency and -plot-scaling
// flags draw charts to the file named by -o. The extension of that file
// selects the image format (png, jpg, tif, svg, pdf, or eps). When more
// than one chart is requested, the chart name is inserted before the
// extension, as in plot-speedup.png. -tabulate prints the table in
// addition to charts.
//
// The -dump flag prints the parsed records, one per line, as key,
// value, and real, user and sys seconds, and nothing else.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/scaling-tools/scalestat/internal/report"
	"github.com/scaling-tools/scalestat/scaling"
	"github.com/scaling-tools/scalestat/timelog"
)

var exit = os.Exit // replaced during testing

// errUsage reports bad command-line arguments. The usage message has
// already been printed.
var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("scalestat: ")
	log.SetFlags(0)

	err := scalestat(os.Stdout, os.Stderr, os.Args[1:])
	if errors.Is(err, errUsage) {
		exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func scalestat(w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("scalestat", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: scalestat [flags] log.txt\n")
		flags.PrintDefaults()
	}
	var out report.Flags
	out.Register(flags)
	dump := flags.Bool("dump", false, "print the parsed records and exit")
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if flags.NArg() != 1 {
		flags.Usage()
		return errUsage
	}
	if err := out.Check(); err != nil {
		fmt.Fprintf(wErr, "scalestat: %s\n", err)
		flags.Usage()
		return errUsage
	}

	recs, err := timelog.ReadFile(flags.Arg(0))
	if err != nil {
		return err
	}
	if *dump {
		for _, r := range recs {
			fmt.Fprintln(w, r)
		}
		return nil
	}

	pts, err := scaling.Derive(recs)
	if err != nil {
		return err
	}
	_, err = out.Emit(w, wErr, pts)
	return err
}
