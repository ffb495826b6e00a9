// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package jobinfo reads the walltime of finished batch jobs from the
// scheduler's job information command, as an alternative to timing
// logs.
//
// For each job it runs
//
//	slurm_jobinfo <jobid>
//
// and reads the last field of the line containing "Used walltime",
// which is an HH:MM:SS duration.
package jobinfo

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/scaling-tools/scalestat/timelog"
)

// Command is the job information command run for each job.
const Command = "slurm_jobinfo"

// Key is the Record key of job records: the number of tasks of the job.
const Key = "NTASKS"

const walltimeMarker = "Used walltime"

// ErrNoWalltime is returned for a job whose information has no
// walltime line. It wraps timelog.ErrNotFound.
var ErrNoWalltime = fmt.Errorf("%w: no %q in job information", timelog.ErrNotFound, walltimeMarker)

// A Runner runs an external command and returns its standard output
// and standard error.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error) {
	var out, errOut bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &out
	cmd.Stderr = &errOut
	err = cmd.Run()
	return out.Bytes(), errOut.Bytes(), err
}

// A CommandError reports a job information command that failed or
// wrote to standard error.
type CommandError struct {
	Command string
	Stderr  string
	Err     error // nil if the command exited 0
}

func (e *CommandError) Error() string {
	msg := e.Command
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	if e.Stderr != "" {
		msg += ": " + strings.TrimSpace(e.Stderr)
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Walltime returns the walltime in seconds of job jobID.
func Walltime(ctx context.Context, r Runner, jobID string) (float64, error) {
	stdout, stderr, err := r.Run(ctx, Command, jobID)
	if err != nil || len(stderr) > 0 {
		return 0, &CommandError{Command + " " + jobID, string(stderr), err}
	}
	s := bufio.NewScanner(bytes.NewReader(stdout))
	for s.Scan() {
		line := s.Text()
		if !strings.Contains(line, walltimeMarker) {
			continue
		}
		f := strings.Fields(line)
		wt, err := ParseWalltime(f[len(f)-1])
		if err != nil {
			return 0, fmt.Errorf("job %s: %w", jobID, err)
		}
		return wt, nil
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	return 0, fmt.Errorf("job %s: %w", jobID, ErrNoWalltime)
}

// ParseWalltime converts an HH:MM:SS duration to seconds. Hours may
// exceed 24.
func ParseWalltime(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return 0, &timelog.DurationError{Text: s}
	}
	var hms [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil || v < 0 || (i > 0 && v >= 60) {
			return 0, &timelog.DurationError{Text: s}
		}
		hms[i] = v
	}
	return float64(3600*hms[0] + 60*hms[1] + hms[2]), nil
}

// ErrMismatch reports job ids and task counts of different lengths.
var ErrMismatch = errors.New("number of job ids and task counts differ")

// Collect queries every job and returns one record per job, in order,
// with Key NTASKS, Value the job's task count and Real its walltime.
// The first job is the baseline for scaling.
func Collect(ctx context.Context, r Runner, jobIDs []string, ntasks []int) ([]*timelog.Record, error) {
	if len(jobIDs) != len(ntasks) {
		return nil, fmt.Errorf("%w: %d job ids, %d task counts", ErrMismatch, len(jobIDs), len(ntasks))
	}
	if len(jobIDs) == 0 {
		return nil, fmt.Errorf("%w: no jobs given", timelog.ErrNotFound)
	}
	recs := make([]*timelog.Record, 0, len(jobIDs))
	for i, id := range jobIDs {
		if ntasks[i] <= 0 {
			return nil, fmt.Errorf("job %s: task count must be positive, got %d", id, ntasks[i])
		}
		wt, err := Walltime(ctx, r, id)
		if err != nil {
			return nil, err
		}
		recs = append(recs, &timelog.Record{Key: Key, Value: ntasks[i], Real: wt, FileName: id})
	}
	return recs, nil
}
