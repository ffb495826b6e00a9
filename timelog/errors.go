// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound reports that the input source is missing or
	// cannot be read.
	ErrNotFound = errors.New("input not found")

	// ErrMalformedLog reports that the input does not follow the
	// block grammar or holds fewer than two blocks.
	ErrMalformedLog = errors.New("malformed timing log")

	// ErrMalformedDuration reports a duration token in neither
	// the plain seconds nor the "<min>m<sec>s" form.
	ErrMalformedDuration = errors.New("malformed duration")
)

// A SyntaxError represents a problem at a particular line of a timing
// log. Err is one of the package's sentinel errors, or a
// *DurationError.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
	Err      error
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("%s: %s", e.FileName, e.Msg)
	}
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// A DurationError records a duration token that could not be
// normalized to seconds.
type DurationError struct {
	Text string
}

func (e *DurationError) Error() string {
	return fmt.Sprintf("%s %q", ErrMalformedDuration, e.Text)
}

func (e *DurationError) Is(target error) bool {
	return target == ErrMalformedDuration
}
