// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Jobscale computes the scaling of a parallel program from the
// walltimes of finished batch jobs.
//
// Usage:
//
//	jobscale -j id,id,... -n ntasks,ntasks,... [flags]
//
// For each job id, jobscale runs "slurm_jobinfo <id>" and reads the
// job's used walltime. The -n flag gives the number of tasks of each
// job, in the same order. The first job is the baseline.
//
// The output flags are those of scalestat: by default jobscale prints
// a table of runtime, speedup and efficiency keyed by NTASKS, and the
// -plot-* flags draw charts to the file named by -o.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/scaling-tools/scalestat/internal/report"
	"github.com/scaling-tools/scalestat/jobinfo"
	"github.com/scaling-tools/scalestat/scaling"
)

var exit = os.Exit // replaced during testing

var errUsage = errors.New("usage")

func main() {
	log.SetPrefix("jobscale: ")
	log.SetFlags(0)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := jobscale(ctx, jobinfo.ExecRunner{}, os.Stdout, os.Stderr, os.Args[1:])
	stop()
	if errors.Is(err, errUsage) {
		exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func jobscale(ctx context.Context, r jobinfo.Runner, w, wErr io.Writer, args []string) error {
	flags := flag.NewFlagSet("jobscale", flag.ContinueOnError)
	flags.SetOutput(wErr)
	flags.Usage = func() {
		fmt.Fprintf(wErr, "usage: jobscale -j id,id,... -n ntasks,ntasks,... [flags]\n")
		flags.PrintDefaults()
	}
	jobs := flags.String("j", "", "comma-separated job `ids`; the first is the baseline")
	tasks := flags.String("n", "", "comma-separated task `counts`, one per job")
	var out report.Flags
	out.Register(flags)
	if err := flags.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil
		}
		return errUsage
	}
	if flags.NArg() != 0 || *jobs == "" || *tasks == "" {
		flags.Usage()
		return errUsage
	}
	ntasks, err := parseCounts(*tasks)
	if err == nil {
		err = out.Check()
	}
	if err != nil {
		fmt.Fprintf(wErr, "jobscale: %s\n", err)
		flags.Usage()
		return errUsage
	}

	recs, err := jobinfo.Collect(ctx, r, splitList(*jobs), ntasks)
	if err != nil {
		return err
	}
	pts, err := scaling.Derive(recs)
	if err != nil {
		return err
	}
	_, err = out.Emit(w, wErr, pts)
	return err
}

func splitList(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func parseCounts(s string) ([]int, error) {
	var ns []int
	for _, f := range splitList(s) {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("bad task count %q", f)
		}
		ns = append(ns, n)
	}
	return ns, nil
}
