// Package ui provides table formatting and time rendering helpers for the
// CLI.
package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

const (
	tableCellMaxWidth = 60
	tableCellEllipsis = "..."
	tableColumnGap    = 2
)

// Table collects rows and renders them as an aligned plain-text table.
type Table struct {
	headers []string
	rows    [][]string
}

// NewTable returns a table with the given column headers.
func NewTable(headers ...string) *Table {
	return &Table{headers: headers}
}

// AddRow appends a row to the table.
func (t *Table) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.rows) == 0
}

// String renders the table. Cells are truncated to a maximum width and
// columns are padded to align.
func (t *Table) String() string {
	headers := make([]string, len(t.headers))
	for i, h := range t.headers {
		headers[i] = normalizeCell(h)
	}

	rows := make([][]string, len(t.rows))
	for i, row := range t.rows {
		rows[i] = make([]string, len(row))
		for j, cell := range row {
			rows[i][j] = normalizeCell(cell)
		}
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				break
			}
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	writeRow := func(row []string) {
		for i, cell := range row {
			b.WriteString(cell)
			if i == len(row)-1 {
				break
			}
			padding := widths[i] - runewidth.StringWidth(cell) + tableColumnGap
			b.WriteString(strings.Repeat(" ", padding))
		}
		b.WriteByte('\n')
	}

	writeRow(headers)
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

// normalizeCell collapses newlines and truncates long cells.
func normalizeCell(cell string) string {
	cell = strings.ReplaceAll(cell, "\n", " ")
	if runewidth.StringWidth(cell) <= tableCellMaxWidth {
		return cell
	}
	return runewidth.Truncate(cell, tableCellMaxWidth, tableCellEllipsis)
}
