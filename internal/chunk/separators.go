package chunk

import (
	"slices"
	"strconv"
	"strings"
)

// Separators is an immutable set of separator runes. The zero value is the empty set.
type Separators struct {
	set map[rune]struct{}
}

// NewSeparators returns a set containing runes.
func NewSeparators(runes ...rune) Separators {
	set := make(map[rune]struct{}, len(runes))
	for _, r := range runes {
		set[r] = struct{}{}
	}
	return Separators{set: set}
}

// ParseSeparators returns a set containing every rune of every value. Ex: ParseSeparators(" ", ";,") is {' ', ';', ','}.
func ParseSeparators(values ...string) Separators {
	var runes []rune
	for _, v := range values {
		runes = append(runes, []rune(v)...)
	}
	return NewSeparators(runes...)
}

// Contains reports whether r is a separator.
func (s Separators) Contains(r rune) bool {
	_, ok := s.set[r]
	return ok
}

// WithNewline returns a copy of s that also contains '\n'.
func (s Separators) WithNewline() Separators {
	if s.Contains('\n') {
		return s
	}
	return NewSeparators(append(s.Runes(), '\n')...)
}

// Len returns the number of separators.
func (s Separators) Len() int {
	return len(s.set)
}

// Runes returns the separators in ascending order.
func (s Separators) Runes() []rune {
	runes := make([]rune, 0, len(s.set))
	for r := range s.set {
		runes = append(runes, r)
	}
	slices.Sort(runes)
	return runes
}

// String returns the separators as Go-quoted runes, ex: "[' ' '\n']".
func (s Separators) String() string {
	parts := make([]string, 0, len(s.set))
	for _, r := range s.Runes() {
		parts = append(parts, strconv.QuoteRune(r))
	}
	return "[" + strings.Join(parts, " ") + "]"
}
