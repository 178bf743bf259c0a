package termformat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		tabWidth int
		want     string
	}{
		{
			name:     "plain text unchanged",
			input:    "hello, 世界",
			tabWidth: 4,
			want:     "hello, 世界",
		},
		{
			name:     "tab expanded to next stop",
			input:    "a\tb",
			tabWidth: 4,
			want:     "a   b",
		},
		{
			name:     "tab at stop expands fully",
			input:    "abcd\tb",
			tabWidth: 4,
			want:     "abcd    b",
		},
		{
			name:     "wide runes count toward tab stops",
			input:    "世\tx",
			tabWidth: 4,
			want:     "世  x",
		},
		{
			name:     "tab escaped when width nonpositive",
			input:    "a\tb",
			tabWidth: 0,
			want:     "a\\x09b",
		},
		{
			name:     "control characters escaped",
			input:    "\x1bX\x00Y\x7f",
			tabWidth: 4,
			want:     "\\x1BX\\x00Y\\x7F",
		},
		{
			name:     "newline preserved and carriage return escaped",
			input:    "line1\r\nline2",
			tabWidth: 4,
			want:     "line1\\x0D\nline2",
		},
		{
			name:     "columns restart after newline",
			input:    "abc\n\tx",
			tabWidth: 4,
			want:     "abc\n    x",
		},
		{
			name:     "invalid utf8 replaced",
			input:    string([]byte{0xff, 'a', 0xc1}),
			tabWidth: 4,
			want:     "�a�",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, Sanitize(tt.input, tt.tabWidth))
		})
	}
}
