package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Table renders rows as a monospace grid. Column widths adapt to the widest
// cell, header cells are centered and numeric cells are right-justified.
type Table struct {
	header []string
	rows   [][]string
}

// NewTable creates a table with the given header row. A table without a
// header renders rows only.
func NewTable(header ...string) *Table {
	return &Table{header: header}
}

// AddRow appends a row; cells are stringified with fmt.Sprint.
func (t *Table) AddRow(cells ...any) {
	row := make([]string, len(cells))
	for i, c := range cells {
		row[i] = fmt.Sprint(c)
	}
	t.rows = append(t.rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int { return len(t.rows) }

func (t *Table) widths() []int {
	var widths []int
	grow := func(row []string) {
		for i, cell := range row {
			for len(widths) <= i {
				widths = append(widths, 0)
			}
			if n := len([]rune(cell)); n > widths[i] {
				widths[i] = n
			}
		}
	}
	grow(t.header)
	for _, row := range t.rows {
		grow(row)
	}
	return widths
}

func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func pad(cell string, width int, numeric, center bool) string {
	gap := width - len([]rune(cell))
	if gap <= 0 {
		return cell
	}
	switch {
	case center:
		left := gap / 2
		return strings.Repeat(" ", left) + cell + strings.Repeat(" ", gap-left)
	case numeric:
		return strings.Repeat(" ", gap) + cell
	default:
		return cell + strings.Repeat(" ", gap)
	}
}

func writeRow(w io.Writer, row []string, widths []int, center bool) {
	cells := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		cells[i] = " " + pad(cell, widths[i], isNumeric(cell), center) + " "
	}
	fmt.Fprintf(w, "|%s|\n", strings.Join(cells, "|"))
}

// Render writes the table to w.
func (t *Table) Render(w io.Writer) {
	widths := t.widths()
	if len(widths) == 0 {
		return
	}
	rules := make([]string, len(widths))
	for i, width := range widths {
		rules[i] = strings.Repeat("-", width+2)
	}
	border := "+" + strings.Join(rules, "+") + "+"

	fmt.Fprintln(w, border)
	if len(t.header) > 0 {
		writeRow(w, t.header, widths, true)
		fmt.Fprintln(w, border)
	}
	for _, row := range t.rows {
		writeRow(w, row, widths, false)
	}
	fmt.Fprintln(w, border)
}

// String renders the table in memory.
func (t *Table) String() string {
	var b strings.Builder
	t.Render(&b)
	return b.String()
}

// WriteReport renders the table into a text report.
func (t *Table) WriteReport(r *TextReport) {
	t.Render(r.w)
}
