package termformat

import (
	"strconv"
	"strings"
)

// ANSIReset resets all SGR attributes.
const ANSIReset = "\x1b[0m"

// ANSIColor is one of the eight basic ANSI colors. The zero value means "terminal default" and emits nothing.
type ANSIColor int

const (
	ANSIDefault ANSIColor = iota
	ANSIBlack
	ANSIRed
	ANSIGreen
	ANSIYellow
	ANSIBlue
	ANSIMagenta
	ANSICyan
	ANSIWhite
)

// ANSISequence returns the SGR sequence selecting c as the foreground (or, if background, the background) color. It returns "" for ANSIDefault.
func (c ANSIColor) ANSISequence(background bool) string {
	if c <= ANSIDefault || c > ANSIWhite {
		return ""
	}
	base := 30
	if background {
		base = 40
	}
	return "\x1b[" + strconv.Itoa(base+int(c)-1) + "m"
}

// Style is a set of SGR attributes. The zero Style leaves text unchanged.
type Style struct {
	Bold       bool
	Foreground ANSIColor
}

// IsZero reports whether s has no attributes.
func (s Style) IsZero() bool {
	return !s.Bold && s.Foreground == ANSIDefault
}

// Apply wraps str in s's attributes, ending with ANSIReset. str should not contain newlines; style each line separately.
func (s Style) Apply(str string) string {
	if s.IsZero() || str == "" {
		return str
	}
	var b strings.Builder
	if s.Bold {
		b.WriteString("\x1b[1m")
	}
	b.WriteString(s.Foreground.ANSISequence(false))
	b.WriteString(str)
	b.WriteString(ANSIReset)
	return b.String()
}
