package termformat

type border struct {
	horizontal rune
	vertical   rune

	topLeft     rune
	topRight    rune
	bottomLeft  rune
	bottomRight rune

	topJoin    rune // ┬
	bottomJoin rune // ┴
	leftJoin   rune // ├
	rightJoin  rune // ┤
	cross      rune // ┼
}

var borderBox = border{
	horizontal:  '─',
	vertical:    '│',
	topLeft:     '┌',
	topRight:    '┐',
	bottomLeft:  '└',
	bottomRight: '┘',
	topJoin:     '┬',
	bottomJoin:  '┴',
	leftJoin:    '├',
	rightJoin:   '┤',
	cross:       '┼',
}

var borderASCII = border{
	horizontal:  '-',
	vertical:    '|',
	topLeft:     '+',
	topRight:    '+',
	bottomLeft:  '+',
	bottomRight: '+',
	topJoin:     '+',
	bottomJoin:  '+',
	leftJoin:    '+',
	rightJoin:   '+',
	cross:       '+',
}
