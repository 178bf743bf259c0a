package chunk

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		seps Separators
		opts Options
		want []string
	}{
		{name: "space", raw: "hello world", seps: NewSeparators(' '), want: []string{"hello", "world"}},
		{name: "separator absent", raw: "hello world", seps: NewSeparators(';'), want: []string{"hello world"}},
		{name: "letter separator", raw: "hello world", seps: NewSeparators('o'), want: []string{"hell", " w", "rld"}},
		{name: "lowercase then split", raw: "HELLO WORLD", seps: NewSeparators('o'), opts: Options{Lowercase: true}, want: []string{"hell", " w", "rld"}},
		{name: "lowercase without separator", raw: "Hello wOrld", seps: NewSeparators(';'), opts: Options{Lowercase: true}, want: []string{"hello world"}},
		{name: "sort", raw: "c b a", seps: NewSeparators(' '), opts: Options{Sort: true}, want: []string{"a", "b", "c"}},
		{name: "sort already sorted", raw: "a b c", seps: NewSeparators(' '), opts: Options{Sort: true}, want: []string{"a", "b", "c"}},
		{name: "only one of two separators", raw: "a b;c", seps: NewSeparators(' '), opts: Options{Sort: true}, want: []string{"a", "b;c"}},
		{name: "multiple separators", raw: "c b;a", seps: NewSeparators(' ', ';'), opts: Options{Sort: true}, want: []string{"a", "b", "c"}},
		{name: "consecutive separators keep empty chunk", raw: "a  b", seps: NewSeparators(' '), want: []string{"a", "", "b"}},
		{name: "leading and trailing separators", raw: " a ", seps: NewSeparators(' '), want: []string{"", "a", ""}},
		{name: "empty input", raw: "", seps: NewSeparators(' '), want: []string{""}},
		{name: "empty separator set", raw: "a b", seps: Separators{}, want: []string{"a b"}},
		{name: "newline is not implied", raw: "a\nb c", seps: NewSeparators(' '), want: []string{"a\nb", "c"}},
		{name: "newline when added", raw: "a\nb c", seps: NewSeparators(' ').WithNewline(), want: []string{"a", "b", "c"}},
		{name: "multibyte separator", raw: "α→β→γ", seps: NewSeparators('→'), want: []string{"α", "β", "γ"}},
		{name: "sort is ordinal", raw: "b B a A", seps: NewSeparators(' '), opts: Options{Sort: true}, want: []string{"A", "B", "a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.raw, tt.seps, tt.opts))
		})
	}
}

func TestSplit_InvalidUTF8(t *testing.T) {
	raw := "a\xffb c"
	got := Split(raw, NewSeparators(' '), Options{})
	require.Equal(t, []string{"a\xffb", "c"}, got)
}

func TestSplit_PreservesOrderOfNonSeparatorRuns(t *testing.T) {
	inputs := []string{
		"-O2 -Wall -Wextra -fPIC",
		"key=value;other=thing;;last",
		"  leading and trailing  ",
		"no-separators-here",
	}
	seps := NewSeparators(' ', ';')

	for _, raw := range inputs {
		chunks := Split(raw, seps, Options{})

		// Re-inserting one representative separator reconstructs raw once every separator is normalized to it.
		normalized := strings.Map(func(r rune) rune {
			if seps.Contains(r) {
				return ' '
			}
			return r
		}, raw)
		require.Equal(t, normalized, strings.Join(chunks, " "), "input %q", raw)
	}
}

func TestCount(t *testing.T) {
	for _, chunks := range [][]string{{""}, {"a"}, {"a", "b"}, {"", "", ""}, {"x y", "z"}} {
		assert.Equal(t, len(chunks), Count(Join(chunks)))
	}
	assert.Equal(t, 1, Count(""))
}

func TestSplit_Idempotence(t *testing.T) {
	raw := "Zeta alpha BETA alpha gamma"
	seps := NewSeparators(' ')

	sorted := Split(raw, seps, Options{Sort: true})
	resorted := slices.Clone(sorted)
	slices.Sort(resorted)
	assert.Equal(t, sorted, resorted)

	folded := strings.ToLower(raw)
	assert.Equal(t, folded, strings.ToLower(folded))
	assert.Equal(t, Split(raw, seps, Options{Lowercase: true}), Split(folded, seps, Options{Lowercase: true}))
}

func TestSeparators(t *testing.T) {
	s := ParseSeparators(" ", ";,")
	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains(';'))
	assert.False(t, s.Contains('\n'))
	assert.Equal(t, []rune{' ', ',', ';'}, s.Runes())

	withNL := s.WithNewline()
	assert.True(t, withNL.Contains('\n'))
	assert.Equal(t, 4, withNL.Len())
	assert.False(t, s.Contains('\n'), "WithNewline must not modify the receiver")
	assert.Equal(t, withNL, withNL.WithNewline())

	assert.Equal(t, `['\n' ' ']`, NewSeparators(' ', '\n').String())
	assert.Equal(t, "[]", Separators{}.String())
}
