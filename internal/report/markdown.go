package report

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/codalotl/linediff/internal/q/termformat"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderMarkdown writes r as a GitHub-flavored Markdown table. The header row names the columns; summary rows come last. Chunks of a multi-chunk cell are
// separated by <br>.
func RenderMarkdown(w io.Writer, r Report) error {
	var b strings.Builder
	for i, row := range r.Rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", markdownCell(row.Left), markdownCell(row.Marker), markdownCell(row.Right))
		if i == 0 {
			b.WriteString("| --- | --- | --- |\n")
		}
	}
	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("render markdown report: %w", err)
	}
	return nil
}

// RenderHTML writes r as an HTML table, converted from the Markdown rendering.
func RenderHTML(w io.Writer, r Report) error {
	var src bytes.Buffer
	if err := RenderMarkdown(&src, r); err != nil {
		return err
	}

	// Cell text is fully escaped by markdownCell, so the only raw HTML is our own <br>.
	md := goldmark.New(
		goldmark.WithExtensions(extension.Table),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	if err := md.Convert(src.Bytes(), w); err != nil {
		return fmt.Errorf("render html report: %w", err)
	}
	return nil
}

// markdownCell sanitizes s and backslash-escapes its ASCII punctuation. Chunk boundaries become <br>.
func markdownCell(s string) string {
	s = termformat.Sanitize(s, tabWidth)

	var b strings.Builder
	for i, line := range strings.Split(s, "\n") {
		if i > 0 {
			b.WriteString("<br>")
		}
		for _, r := range line {
			if r < 0x80 && isASCIIPunct(byte(r)) {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

func isASCIIPunct(c byte) bool {
	return (c >= '!' && c <= '/') || (c >= ':' && c <= '@') || (c >= '[' && c <= '`') || (c >= '{' && c <= '~')
}
