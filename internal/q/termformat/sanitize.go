package termformat

import (
	"strings"
	"unicode/utf8"
)

const hexDigits = "0123456789ABCDEF"

// Sanitize makes user input s safe to place in a fixed-width layout.
//   - If tabWidth > 0, each \t is expanded with spaces up to the next multiple of tabWidth (columns restart after each \n). Otherwise, \t is escaped.
//   - \n is left as-is.
//   - All other ASCII control characters (<= 0x1F, including \r, and 0x7F) are replaced with "\\xXX" (ex: []byte{'\', 'x', '1', 'B'} for ESC).
//   - Invalid UTF-8 is replaced by U+FFFD.
func Sanitize(s string, tabWidth int) string {
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	col := 0
	writeEscaped := func(code byte) {
		b.WriteByte('\\')
		b.WriteByte('x')
		b.WriteByte(hexDigits[code>>4])
		b.WriteByte(hexDigits[code&0x0F])
		col += 4
	}

	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size

		switch {
		case r == utf8.RuneError && size == 1:
			b.WriteRune('\uFFFD')
			col += RuneWidth('\uFFFD')
		case r == '\n':
			b.WriteByte('\n')
			col = 0
		case r == '\t' && tabWidth > 0:
			n := tabWidth - col%tabWidth
			b.WriteString(strings.Repeat(" ", n))
			col += n
		case r <= 0x7F && (r < 0x20 || r == 0x7F):
			writeEscaped(byte(r))
		default:
			b.WriteRune(r)
			col += RuneWidth(r)
		}
	}

	return b.String()
}
