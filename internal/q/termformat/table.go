package termformat

import (
	"fmt"
	"strings"
)

// Align is the horizontal alignment of a cell's text.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// BorderStyle selects the characters used to draw a Table.
type BorderStyle int

const (
	BorderStyleBox   BorderStyle = iota // ┌─┬─┐ box-drawing characters
	BorderStyleASCII                    // +-+-+ for terminals without box-drawing glyphs
)

// Cell is one table cell. Text may contain newlines; each line is wrapped to the column width independently.
type Cell struct {
	Text  string
	Style Style
	Align Align
}

// Table is a bordered, fixed-column-width table.
//
// Every row must have exactly len(Widths) cells. Each column is Widths[i] cells of content plus one space of padding on either side, so a rendered table
// is sum(Widths) + 3*len(Widths) + 1 cells wide.
type Table struct {
	Widths      []int
	Rows        [][]Cell
	BorderStyle BorderStyle

	// RowSeparators draws a horizontal rule between every pair of rows. Otherwise only the top and bottom borders are drawn.
	RowSeparators bool
}

// TableWidth returns the rendered width of a table with the given column widths.
func TableWidth(widths []int) int {
	total := 1
	for _, w := range widths {
		total += w + 3
	}
	return total
}

// Render returns the table as rows joined by "\n", without a trailing newline. Render panics if a row's cell count doesn't match Widths.
func (t Table) Render() string {
	if len(t.Widths) == 0 {
		return ""
	}

	b := borderBox
	if t.BorderStyle == BorderStyleASCII {
		b = borderASCII
	}

	rule := func(left, join, right rune) string {
		var sb strings.Builder
		sb.WriteRune(left)
		for i, w := range t.Widths {
			if i > 0 {
				sb.WriteRune(join)
			}
			sb.WriteString(strings.Repeat(string(b.horizontal), w+2))
		}
		sb.WriteRune(right)
		return sb.String()
	}

	var out []string
	out = append(out, rule(b.topLeft, b.topJoin, b.topRight))
	for ri, row := range t.Rows {
		if len(row) != len(t.Widths) {
			panic(fmt.Sprintf("termformat: table row %d has %d cells, want %d", ri, len(row), len(t.Widths)))
		}
		if ri > 0 && t.RowSeparators {
			out = append(out, rule(b.leftJoin, b.cross, b.rightJoin))
		}
		out = append(out, t.renderRow(row, b)...)
	}
	out = append(out, rule(b.bottomLeft, b.bottomJoin, b.bottomRight))

	return strings.Join(out, "\n")
}

func (t Table) renderRow(row []Cell, b border) []string {
	cellLines := make([][]string, len(row))
	height := 1
	for i, cell := range row {
		var lines []string
		for _, line := range strings.Split(cell.Text, "\n") {
			lines = append(lines, Wrap(line, t.Widths[i])...)
		}
		cellLines[i] = lines
		if len(lines) > height {
			height = len(lines)
		}
	}

	vertical := string(b.vertical)
	out := make([]string, 0, height)
	for k := 0; k < height; k++ {
		var sb strings.Builder
		sb.WriteString(vertical)
		for i, cell := range row {
			text := ""
			if k < len(cellLines[i]) {
				text = cellLines[i][k]
			}
			sb.WriteByte(' ')
			sb.WriteString(alignText(text, t.Widths[i], cell.Align, cell.Style))
			sb.WriteByte(' ')
			sb.WriteString(vertical)
		}
		out = append(out, sb.String())
	}
	return out
}

// alignText pads text to width according to align. The style is applied to the text only, never to the padding.
func alignText(text string, width int, align Align, style Style) string {
	pad := width - TextWidth(text)
	if pad < 0 {
		pad = 0
	}
	styled := style.Apply(text)
	switch align {
	case AlignCenter:
		left := pad / 2
		return strings.Repeat(" ", left) + styled + strings.Repeat(" ", pad-left)
	case AlignRight:
		return strings.Repeat(" ", pad) + styled
	default:
		return styled + strings.Repeat(" ", pad)
	}
}
