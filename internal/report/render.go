package report

import (
	"fmt"
	"io"

	"github.com/codalotl/linediff/internal/q/termformat"
)

const (
	// DefaultWidth is used when the render width is unknown.
	DefaultWidth = 80

	minColumnWidth = 10
	tabWidth       = 4
)

// RenderOptions controls Render.
type RenderOptions struct {
	Width int  // total width in terminal cells; <= 0 means DefaultWidth
	Color bool // emit ANSI colors
	ASCII bool // draw borders with +-| instead of box-drawing characters
}

// ColumnWidth returns the content width of each of the three columns for a table totalWidth cells wide (total minus borders and padding, divided by three).
// The result is never below 10.
func ColumnWidth(totalWidth int) int {
	if totalWidth <= 0 {
		totalWidth = DefaultWidth
	}
	cw := (totalWidth - termformat.TableWidth([]int{0, 0, 0})) / 3
	if cw < minColumnWidth {
		cw = minColumnWidth
	}
	return cw
}

// Render writes r to w as a bordered three-column table followed by a newline. Cell text is sanitized and wrapped to the column width.
func Render(w io.Writer, r Report, opts RenderOptions) error {
	cw := ColumnWidth(opts.Width)
	tbl := termformat.Table{
		Widths:        []int{cw, cw, cw},
		Rows:          make([][]termformat.Cell, 0, len(r.Rows)),
		RowSeparators: true,
	}
	if opts.ASCII {
		tbl.BorderStyle = termformat.BorderStyleASCII
	}
	for _, row := range r.Rows {
		tbl.Rows = append(tbl.Rows, cells(row, opts.Color))
	}

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("render report: %w", err)
	}
	return nil
}

func cells(row Row, color bool) []termformat.Cell {
	var leftStyle, markerStyle, rightStyle termformat.Style
	align := termformat.AlignLeft

	if row.Kind == RowHeader || row.Kind == RowSummary {
		align = termformat.AlignCenter
	}
	if color {
		switch row.Kind {
		case RowHeader, RowSummary:
			emphasis := termformat.Style{Bold: true, Foreground: termformat.ANSIGreen}
			leftStyle, markerStyle, rightStyle = emphasis, emphasis, emphasis
		case RowRemoved:
			leftStyle = termformat.Style{Foreground: termformat.ANSIRed}
		case RowAdded:
			rightStyle = termformat.Style{Foreground: termformat.ANSIGreen}
		case RowChanged:
			leftStyle = termformat.Style{Foreground: termformat.ANSIRed}
			rightStyle = termformat.Style{Foreground: termformat.ANSIGreen}
		}
	}

	return []termformat.Cell{
		{Text: termformat.Sanitize(row.Left, tabWidth), Style: leftStyle, Align: align},
		{Text: termformat.Sanitize(row.Marker, tabWidth), Style: markerStyle, Align: align},
		{Text: termformat.Sanitize(row.Right, tabWidth), Style: rightStyle, Align: align},
	}
}
