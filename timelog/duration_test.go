// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"errors"
	"testing"
)

func TestParseDuration(t *testing.T) {
	check := func(s string, want float64) {
		t.Helper()
		got, err := ParseDuration(s)
		if err != nil {
			t.Errorf("ParseDuration(%q): unexpected error %v", s, err)
			return
		}
		if got != want {
			t.Errorf("ParseDuration(%q): want %v, got %v", s, want, got)
		}
	}
	check("0m0.0s", 0)
	check("1m0s", 60)
	check("2m30.5s", 150.5)
	check("0m1.020s", 1.02)
	check("100m0.000s", 6000)
	check("12.3", 12.3)
	check("7", 7)
	check("1e2", 100)

	checkErr := func(s string) {
		t.Helper()
		_, err := ParseDuration(s)
		if !errors.Is(err, ErrMalformedDuration) {
			t.Errorf("ParseDuration(%q): want malformed duration, got %v", s, err)
		}
		var de *DurationError
		if !errors.As(err, &de) || de.Text != s {
			t.Errorf("ParseDuration(%q): want *DurationError for %q, got %#v", s, s, err)
		}
	}
	checkErr("abc")
	checkErr("")
	checkErr("1m")
	checkErr("30s")
	checkErr("1h2m3s")
	checkErr("0x10")
	checkErr("Inf")
	checkErr("NaN")
	checkErr("1.2.3")
	checkErr("1m2.5s3")
}
