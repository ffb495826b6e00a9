// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaletab

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/scaling-tools/scalestat/scaling"
)

// FormatCSV writes pts to w as CSV with full-precision values.
func FormatCSV(w io.Writer, pts []scaling.Point) error {
	if len(pts) == 0 {
		return scaling.ErrInsufficientData
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{strings.ToUpper(pts[0].Key), RuntimeHeader, "USER", "SYS", SpeedupHeader, "EFFICIENCY"})
	for _, p := range pts {
		cw.Write([]string{
			strconv.Itoa(p.Value),
			strof(p.Real),
			strof(p.User),
			strof(p.Sys),
			strof(p.Speedup),
			strof(p.Efficiency),
		})
	}
	cw.Flush()
	return cw.Error()
}

func strof(x float64) string {
	return strconv.FormatFloat(x, 'g', -1, 64)
}
