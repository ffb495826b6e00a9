// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package timelog

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
)

// NoisePrefix starts lines that are dropped before matching.
const NoisePrefix = "Loading required package:"

// MinRecords is the fewest blocks a log must hold: a baseline and
// one run to compare against it.
const MinRecords = 2

// blockRE matches one block. Submatches are key, value, the two data
// fields, and the real, user and sys durations.
var blockRE = regexp.MustCompile(`(?m)` +
	`^(\w+)=(\d+)\n` +
	`\[\d+\]\s([-+eE0-9.]+)\s+([-+eE0-9.]+)\n` +
	`\n` +
	`real\s+([\w.]+)\n` +
	`user\s+([\w.]+)\n` +
	`sys\s+([\w.]+)(?:\n|\z)`)

// ReadFile reads and parses the timing log at path. The path "-"
// denotes standard input.
func ReadFile(path string) ([]*Record, error) {
	if path == "-" {
		return Read(os.Stdin, "<stdin>")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return Parse(data, path)
}

// Read parses the timing log read from r. fileName is used in error
// messages and in the returned records; it is purely diagnostic.
func Read(r io.Reader, fileName string) ([]*Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrNotFound, fileName, err)
	}
	return Parse(data, fileName)
}

// Parse extracts the records of a timing log in the order their
// blocks appear. Blocks are never reordered or merged, even when two
// share a value.
//
// Parse fails with ErrMalformedLog if fewer than MinRecords blocks
// match, if a block's value is not a positive int, or if blocks
// disagree on the key. A bad duration in a matched block fails with a
// *DurationError.
func Parse(data []byte, fileName string) ([]*Record, error) {
	if fileName == "" {
		fileName = "<unknown>"
	}
	text, lines := dropNoise(data)

	var recs []*Record
	for _, m := range blockRE.FindAllSubmatchIndex(text, -1) {
		line := lines.origLine(m[0])
		field := func(i int) string {
			return string(text[m[2*i]:m[2*i+1]])
		}
		synErr := func(err error, format string, args ...interface{}) *SyntaxError {
			return &SyntaxError{fileName, line, fmt.Sprintf(format, args...), err}
		}

		rec := &Record{Key: field(1), FileName: fileName, Line: line}
		val, err := strconv.Atoi(field(2))
		if err != nil {
			return nil, synErr(ErrMalformedLog, "parsing %s value: %v", rec.Key, err.(*strconv.NumError).Err)
		}
		if val <= 0 {
			return nil, synErr(ErrMalformedLog, "%s value must be positive, got %d", rec.Key, val)
		}
		rec.Value = val
		if len(recs) > 0 && recs[0].Key != rec.Key {
			return nil, synErr(ErrMalformedLog, "key %s differs from %s at line %d", rec.Key, recs[0].Key, recs[0].Line)
		}

		for i, dst := range []*float64{&rec.Real, &rec.User, &rec.Sys} {
			d, err := ParseDuration(field(5 + i))
			if err != nil {
				return nil, synErr(err, "%s: %v", timeNames[i], err)
			}
			*dst = d
		}
		recs = append(recs, rec)
	}

	switch len(recs) {
	case 0:
		return nil, &SyntaxError{fileName, 0, "no timing blocks found", ErrMalformedLog}
	case 1:
		return nil, &SyntaxError{fileName, recs[0].Line, "only one timing block found; need a baseline and at least one more", ErrMalformedLog}
	}
	return recs, nil
}

var timeNames = [...]string{"real", "user", "sys"}

// lineMap maps the start offsets of lines in noise-free text back to
// line numbers in the original input.
type lineMap struct {
	offs  []int // offset of each kept line in the filtered text
	lines []int // original 1-based line number of each kept line
}

func (lm *lineMap) origLine(off int) int {
	i := sort.SearchInts(lm.offs, off+1) - 1
	if i < 0 {
		return 0
	}
	return lm.lines[i]
}

// dropNoise removes every line beginning with NoisePrefix. It also
// rewrites "\r\n" and lone "\r" line ends as "\n".
func dropNoise(data []byte) ([]byte, *lineMap) {
	noise := []byte(NoisePrefix)
	out := make([]byte, 0, len(data))
	lm := new(lineMap)
	for n := 1; len(data) > 0; n++ {
		line, eol := data, 0
		if i := bytes.IndexAny(data, "\r\n"); i >= 0 {
			line, eol = data[:i], 1
			if data[i] == '\r' && i+1 < len(data) && data[i+1] == '\n' {
				eol = 2
			}
		}
		data = data[len(line)+eol:]
		if bytes.HasPrefix(line, noise) {
			continue
		}
		lm.offs = append(lm.offs, len(out))
		lm.lines = append(lm.lines, n)
		out = append(out, line...)
		if eol > 0 {
			out = append(out, '\n')
		}
	}
	return out, lm
}
