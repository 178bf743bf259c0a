// Package termformat formats plain text for monospace terminals: display width (grapheme- and ANSI-aware), sanitizing of control characters, word
// wrapping, box-drawn tables, basic ANSI styling, and terminal size detection.
//
// Widths are measured in terminal cells. East Asian ambiguous-width code points are treated as narrow and emoji as neutral, matching most western-locale
// terminals.
package termformat
