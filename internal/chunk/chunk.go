// Package chunk splits a line of text into chunks on a set of separator characters.
//
// Splitting is positional: consecutive separators produce empty chunks between them, and leading or trailing separators produce leading or trailing empty chunks.
// Split never returns zero chunks (the empty string is one empty chunk).
//
// Chunks are usually handed to a line-based differ joined by '\n' (see Join). Newline is not special to Split; callers that want literal newlines inside an input
// to act as chunk boundaries add it with Separators.WithNewline.
package chunk

import (
	"slices"
	"strings"
	"unicode/utf8"
)

// Options controls normalization applied by Split.
type Options struct {
	Sort      bool // sort chunks by ordinal (byte-wise) string comparison after splitting
	Lowercase bool // case-fold the whole input before splitting
}

// Split splits raw into chunks at every rune contained in seps.
//
// If opts.Lowercase, raw is lowercased (simple, locale-insensitive mapping) before splitting. If opts.Sort, the resulting chunks are sorted; sorting happens
// after splitting, never before. The result always has at least one element.
func Split(raw string, seps Separators, opts Options) []string {
	s := raw
	if opts.Lowercase {
		s = strings.ToLower(s)
	}

	var chunks []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if seps.Contains(r) {
			chunks = append(chunks, s[start:i])
			start = i + size
		}
		i += size
	}
	chunks = append(chunks, s[start:])

	if opts.Sort {
		slices.Sort(chunks)
	}
	return chunks
}

// Join joins chunks with '\n', the form consumed by line-oriented differs and written to output files.
func Join(chunks []string) string {
	return strings.Join(chunks, "\n")
}

// Count returns the number of chunks in joined, a string produced by Join. It is the number of '\n' plus one, so Count("") == 1.
func Count(joined string) int {
	return strings.Count(joined, "\n") + 1
}
