package ui

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// Table renders rows in fixed-width columns separated by a single space.
// Widths are minimums: a longer cell is never truncated and pushes the
// following columns to the right.
type Table struct {
	Headers []string
	Rows    [][]string
	Widths  []int
	// Rule is printed between the header and the rows when non-empty.
	Rule string

	// Renderer enables styling. A nil renderer produces plain text.
	Renderer *lipgloss.Renderer
	// CellStyle optionally overrides the style of a data cell.
	CellStyle func(col int, value string) lipgloss.Style
}

// width returns the minimum width of column i.
func (t *Table) width(i int) int {
	if i < len(t.Widths) {
		return t.Widths[i]
	}
	return 0
}

// Render outputs the table to a string, one trailing newline per line.
func (t *Table) Render() string {
	if len(t.Headers) == 0 {
		return ""
	}

	var sb strings.Builder

	headerCells := make([]string, len(t.Headers))
	for i, h := range t.Headers {
		headerCells[i] = t.style(headerStyle, padRight(h, t.width(i)))
	}
	sb.WriteString(strings.Join(headerCells, " ") + "\n")

	if t.Rule != "" {
		sb.WriteString(t.style(ruleStyle, t.Rule) + "\n")
	}

	for _, row := range t.Rows {
		cells := make([]string, len(t.Headers))
		for i := range t.Headers {
			val := ""
			if i < len(row) {
				val = row[i]
			}
			cells[i] = t.cell(i, val)
		}
		sb.WriteString(strings.Join(cells, " ") + "\n")
	}

	return sb.String()
}

// cell pads a data value first so styling never shifts alignment.
func (t *Table) cell(col int, val string) string {
	padded := padRight(val, t.width(col))
	if t.Renderer == nil {
		return padded
	}
	if t.CellStyle != nil {
		return t.CellStyle(col, val).Render(padded)
	}
	return textStyle(t.Renderer).Render(padded)
}

func (t *Table) style(fn func(*lipgloss.Renderer) lipgloss.Style, s string) string {
	if t.Renderer == nil {
		return s
	}
	return fn(t.Renderer).Render(s)
}

// padRight pads a string with spaces to width runes.
func padRight(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}
