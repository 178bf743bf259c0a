package termformat

import (
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"
)

// TerminalWidth returns the column count of the terminal that w writes to. If w is not a terminal (or its size can't be read), $COLUMNS is used. Returns 0 if
// the width is unknown.
func TerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok && f != nil {
		fd := int(f.Fd())
		if term.IsTerminal(fd) {
			if cols, _, err := term.GetSize(fd); err == nil && cols > 0 {
				return cols
			}
		}
	}
	if cols := strings.TrimSpace(os.Getenv("COLUMNS")); cols != "" {
		if n, err := strconv.Atoi(cols); err == nil && n > 0 {
			return n
		}
	}
	return 0
}

// IsTerminal reports whether rw (typically an *os.File) is attached to a terminal.
func IsTerminal(rw any) bool {
	f, ok := rw.(*os.File)
	if !ok || f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
