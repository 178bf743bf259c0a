package termformat

import (
	"github.com/clipperhouse/uax29/v2/graphemes"
)

// Wrap breaks line into rows no wider than width cells. line must not contain newlines or ANSI codes.
//
// Rows break after the last space that fits; the space at a break is dropped. A word wider than width is broken between grapheme clusters. A single
// grapheme cluster wider than width gets its own row (which is then wider than width). If width <= 0 or line already fits, Wrap returns []string{line}.
func Wrap(line string, width int) []string {
	if width <= 0 || TextWidth(line) <= width {
		return []string{line}
	}

	type cluster struct {
		text  string
		width int
		space bool
	}

	var out []string
	var cur []cluster
	curWidth := 0
	lastSpace := -1 // index in cur of the last space

	flush := func(cs []cluster) {
		n := 0
		for _, c := range cs {
			n += len(c.text)
		}
		buf := make([]byte, 0, n)
		for _, c := range cs {
			buf = append(buf, c.text...)
		}
		out = append(out, string(buf))
	}

	iter := graphemes.FromString(line)
	for iter.Next() {
		v := iter.Value()
		c := cluster{text: v, width: widthCondition.StringWidth(v), space: v == " "}

		if curWidth+c.width > width && len(cur) > 0 {
			if c.space {
				flush(cur)
				cur, curWidth, lastSpace = nil, 0, -1
				continue
			}
			if lastSpace >= 0 {
				flush(cur[:lastSpace])
				cur = append([]cluster(nil), cur[lastSpace+1:]...)
				curWidth = 0
				for _, rc := range cur {
					curWidth += rc.width
				}
				lastSpace = -1
			}
			if curWidth+c.width > width && len(cur) > 0 {
				flush(cur)
				cur, curWidth = nil, 0
			}
		}

		cur = append(cur, c)
		curWidth += c.width
		if c.space {
			lastSpace = len(cur) - 1
		}
	}
	if len(cur) > 0 {
		flush(cur)
	}

	return out
}
