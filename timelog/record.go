// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package timelog reads the timing logs produced by repeated runs of
// the shell's time builtin over a varying problem size or worker
// count.
//
// A log is a sequence of blocks. Each block looks like
//
//	NPROCS=4
//	[0] 1.2345 6.789e-01
//
//	real	1m31.45s
//	user	5m58.10s
//	sys	0m1.02s
//
// The first line names the independent variable and its value for
// the run. The bracketed data line is output of the workload itself;
// it must be present and numeric but is otherwise ignored. Durations
// are either plain seconds or the "<min>m<sec>s" form printed by bash.
//
// Lines starting with "Loading required package:" are chatter from
// the workload's environment and are dropped before blocks are
// matched, wherever they appear.
package timelog

import "fmt"

// A Record is one timed run read from a log.
type Record struct {
	// Key names the independent variable, such as "NPROCS" or
	// "NTHREADS". All records of one log share the same Key.
	Key string

	// Value is the independent variable's value for this run.
	// It is always > 0.
	Value int

	// Real, User, and Sys are the elapsed wall-clock, user CPU,
	// and system CPU times of the run, in seconds.
	Real, User, Sys float64

	// FileName and Line give the position of the block's key line
	// in the original input, for diagnostics. Line is 1-based and
	// counts noise lines.
	FileName string
	Line     int
}

// Pos returns the position of r's block as a file name and a 1-based
// line number within that file.
func (r *Record) Pos() (fileName string, line int) {
	return r.FileName, r.Line
}

// String formats r as a dump line: key, value, and the three times
// in seconds.
func (r *Record) String() string {
	return fmt.Sprintf("%s %d %g %g %g", r.Key, r.Value, r.Real, r.User, r.Sys)
}
