package input

import "github.com/codalotl/linediff/internal/linediff"

// Source says where each line comes from.
type Source struct {
	File  string // one file holding both lines; wins over everything else
	File1 string // first line of this file is the left line
	File2 string
	Line1 *string // inline left line; wins over File1 even when empty
	Line2 *string
}

// Resolve obtains both lines from src. If src.File is set, both lines come from it. Otherwise each side uses its inline line, then its file, then the
// prompter (in that order of preference). p may be nil when no side needs prompting.
//
// The left side is resolved completely before the right side. Resolve returns the first error encountered.
func Resolve(src Source, p *Prompter) (left, right linediff.LineInput, warnings []string, err error) {
	if src.File != "" {
		return TwoLineFile(src.File)
	}

	left, w, err := resolveSide(1, src.Line1, src.File1, p)
	if err != nil {
		return linediff.LineInput{}, linediff.LineInput{}, nil, err
	}
	warnings = append(warnings, w...)

	right, w, err = resolveSide(2, src.Line2, src.File2, p)
	if err != nil {
		return linediff.LineInput{}, linediff.LineInput{}, nil, err
	}
	warnings = append(warnings, w...)

	return left, right, warnings, nil
}

func resolveSide(n int, line *string, file string, p *Prompter) (linediff.LineInput, []string, error) {
	switch {
	case line != nil:
		return Inline(LineName(n), *line), nil, nil
	case file != "":
		return FirstLineFile(file)
	case p == nil:
		return linediff.LineInput{}, nil, &Error{Kind: ErrReadFailure, Err: errNoPrompter(n)}
	default:
		in, err := p.Line(n)
		return in, nil, err
	}
}

type errNoPrompter int

func (e errNoPrompter) Error() string {
	return "no source for " + LineName(int(e))
}
