package termformat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender(t *testing.T) {
	tbl := Table{
		Widths: []int{5, 4, 5},
		Rows: [][]Cell{
			{{Text: "L", Align: AlignCenter}, {Text: "Same", Align: AlignCenter}, {Text: "R", Align: AlignCenter}},
			{{Text: "ab"}, {Text: ""}, {Text: "cd"}},
		},
		RowSeparators: true,
	}

	want := strings.Join([]string{
		"┌───────┬──────┬───────┐",
		"│   L   │ Same │   R   │",
		"├───────┼──────┼───────┤",
		"│ ab    │      │ cd    │",
		"└───────┴──────┴───────┘",
	}, "\n")
	assert.Equal(t, want, tbl.Render())
}

func TestTableRender_WrapsAndGrowsRows(t *testing.T) {
	tbl := Table{
		Widths: []int{3, 3},
		Rows: [][]Cell{
			{{Text: "a\nb"}, {Text: "abcdefg", Align: AlignRight}},
		},
		BorderStyle: BorderStyleASCII,
	}

	want := strings.Join([]string{
		"+-----+-----+",
		"| a   | abc |",
		"| b   | def |",
		"|     |   g |",
		"+-----+-----+",
	}, "\n")
	assert.Equal(t, want, tbl.Render())
}

func TestTableRender_StyleDoesNotAffectAlignment(t *testing.T) {
	tbl := Table{
		Widths: []int{4},
		Rows:   [][]Cell{{{Text: "ok", Style: Style{Foreground: ANSIGreen}}}},
	}
	lines := strings.Split(tbl.Render(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "│ \x1b[32mok"+ANSIReset+"   │", lines[1])
	for _, line := range lines {
		assert.Equal(t, TableWidth(tbl.Widths), TextWidth(line))
	}
}

func TestTableRender_RowCellMismatchPanics(t *testing.T) {
	tbl := Table{Widths: []int{1, 1}, Rows: [][]Cell{{{Text: "x"}}}}
	assert.Panics(t, func() { tbl.Render() })
}

func TestTableWidth(t *testing.T) {
	assert.Equal(t, 1, TableWidth(nil))
	assert.Equal(t, 24, TableWidth([]int{5, 4, 5}))
}
