// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scaletab

import (
	"fmt"
	"io"
	"strings"

	"github.com/google/safehtml/template"
	"github.com/scaling-tools/scalestat/scaling"
)

const htmlText = `<table class='scalestat'>
<thead>
<tr><th>{{.Key}}<th>RUNTIME<th>SPEEDUP<th>EFF.
</thead>
<tbody>
{{range .Rows -}}
<tr{{if .Baseline}} class='baseline'{{end}}><td>{{.Value}}<td>{{.Runtime}}<td>{{.Speedup}}<td>{{.Eff}}
{{end -}}
</tbody>
{{- with .GeoMean}}
<tfoot>
<tr class='geomean'><td>geomean<td><td>{{.Speedup}}<td>{{.Eff}}
</tfoot>
{{- end}}
</table>
`

var htmlTemplate = template.Must(template.New("scaletab").Parse(htmlText))

type htmlRow struct {
	Baseline                    bool
	Value, Runtime, Speedup, Eff string
}

type htmlTable struct {
	Key     string
	Rows    []htmlRow
	GeoMean *htmlRow
}

// FormatHTML writes pts to w as an HTML table. Cell text matches the
// fixed layouts.
func FormatHTML(w io.Writer, pts []scaling.Point, opts Options) error {
	if len(pts) == 0 {
		return scaling.ErrInsufficientData
	}
	t := htmlTable{Key: strings.ToUpper(pts[0].Key)}
	for i, p := range pts {
		t.Rows = append(t.Rows, htmlRow{
			Baseline: i == 0,
			Value:    fmt.Sprintf("%d", p.Value),
			Runtime:  fmt.Sprintf("%.1f", p.Real),
			Speedup:  fmt.Sprintf("%.1f", p.Speedup),
			Eff:      fmt.Sprintf("%.3f", p.Efficiency),
		})
	}
	if opts.GeoMean {
		if sum := scaling.Summarize(pts); sum.Runs > 0 {
			t.GeoMean = &htmlRow{
				Speedup: fmt.Sprintf("%.1f", sum.GeoMeanSpeedup),
				Eff:     fmt.Sprintf("%.3f", sum.GeoMeanEfficiency),
			}
		}
	}
	return htmlTemplate.Execute(w, t)
}
