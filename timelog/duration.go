// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"regexp"
	"strconv"
)

var minSecRE = regexp.MustCompile(`^(\d+)m(\d+(?:\.\d*)?|\.\d+)s$`)

// ParseDuration converts a duration printed by the time builtin to
// seconds.
//
// The "<min>m<sec>s" form, such as "2m30.5s", is 60*min+sec. A token
// with no unit suffix, such as "12.3", is already in seconds. Anything
// else returns a *DurationError.
func ParseDuration(s string) (float64, error) {
	if m := minSecRE.FindStringSubmatch(s); m != nil {
		min, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, &DurationError{s}
		}
		sec, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return 0, &DurationError{s}
		}
		return 60*min + sec, nil
	}
	if !isPlainSeconds(s) {
		return 0, &DurationError{s}
	}
	sec, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, &DurationError{s}
	}
	return sec, nil
}

// isPlainSeconds reports whether s is a decimal number with an
// optional fraction and exponent. It excludes the hex, infinity and
// NaN spellings strconv.ParseFloat would otherwise accept.
func isPlainSeconds(s string) bool {
	if s == "" {
		return false
	}
	digits := false
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			digits = true
		case c == '.', c == '+', c == '-':
		case c == 'e' || c == 'E':
			if !digits {
				return false
			}
		default:
			return false
		}
	}
	return digits
}
