// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package texttab lays out fixed-width text tables, either bare or as
// pipe-delimited tables suitable for lightweight markup.
package texttab

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// Table does layout of text-based tables.
//
// Many of its methods return the Table so callers can easily chain
// them to build up many cells at once. The first row is the header.
type Table struct {
	rows   [][]textCell
	widths []int // minimum width of each column
}

type textCell struct {
	value     string
	alignment align
}

type CellOption func(c *textCell)

var (
	Left   CellOption = func(c *textCell) { c.alignment = alignLeft }
	Center            = func(c *textCell) { c.alignment = alignCenter }
	Right             = func(c *textCell) { c.alignment = alignRight }
)

type align int

const (
	alignLeft align = iota
	alignCenter
	alignRight
)

// pad pads s with spaces to width w according to a.
func (a align) pad(s string, w int) string {
	n := w - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	switch a {
	case alignCenter:
		l := n / 2
		return fmt.Sprintf("%*s%s%*s", l, "", s, n-l, "")
	case alignRight:
		return fmt.Sprintf("%*s", w, s)
	}
	return fmt.Sprintf("%-*s", w, s)
}

// A Style selects how rows are rendered.
type Style int

const (
	// Plain separates columns with two spaces and draws no
	// borders. Trailing spaces are trimmed.
	Plain Style = iota
	// Pipe surrounds every cell with "| " and " |" and follows the
	// header with a "|---|" separator row.
	Pipe
)

// Row starts a new row in table t.
func (t *Table) Row() *Table {
	t.rows = append(t.rows, nil)
	return t
}

// Cell adds a cell at the end of the current row.
func (t *Table) Cell(value string, opts ...CellOption) *Table {
	if len(t.rows) == 0 {
		t.Row()
	}
	c := textCell{value: value}
	for _, o := range opts {
		o(&c)
	}
	last := len(t.rows) - 1
	t.rows[last] = append(t.rows[last], c)
	return t
}

// SetMinWidth sets the minimum width of column col. Cells wider than
// this still widen the column.
func (t *Table) SetMinWidth(col, width int) {
	for len(t.widths) < col+1 {
		t.widths = append(t.widths, 0)
	}
	t.widths[col] = width
}

func (t *Table) colWidths() []int {
	ws := append([]int(nil), t.widths...)
	for _, row := range t.rows {
		for col, cell := range row {
			for len(ws) < col+1 {
				ws = append(ws, 0)
			}
			if n := utf8.RuneCountInString(cell.value); n > ws[col] {
				ws[col] = n
			}
		}
	}
	return ws
}

// Lines lays out table t in the given style and returns one string
// per output line, without line terminators.
func (t *Table) Lines(style Style) []string {
	ws := t.colWidths()
	var lines []string
	for i, row := range t.rows {
		cells := make([]string, len(ws))
		for col := range ws {
			var c textCell
			if col < len(row) {
				c = row[col]
			}
			cells[col] = c.alignment.pad(c.value, ws[col])
		}
		switch style {
		case Plain:
			lines = append(lines, strings.TrimRight(strings.Join(cells, "  "), " "))
		case Pipe:
			lines = append(lines, "| "+strings.Join(cells, " | ")+" |")
			if i == 0 {
				var sep strings.Builder
				sep.WriteString("|")
				for _, w := range ws {
					sep.WriteString(strings.Repeat("-", w+2))
					sep.WriteString("|")
				}
				lines = append(lines, sep.String())
			}
		}
	}
	return lines
}

// Format lays out table t in the given style and writes it to w.
func (t *Table) Format(w io.Writer, style Style) error {
	for _, line := range t.Lines(style) {
		if _, err := fmt.Fprintf(w, "%s\n", line); err != nil {
			return err
		}
	}
	return nil
}
