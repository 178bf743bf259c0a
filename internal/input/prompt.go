package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/codalotl/linediff/internal/linediff"
)

// Prompter asks for lines interactively. Successive calls share one buffered reader over In, so several prompts can read from one stream.
type Prompter struct {
	In  io.Reader
	Out io.Writer

	once sync.Once
	r    *bufio.Reader
}

// Line prints "Please provide line #n: " to Out, reads one line from In, and returns it trimmed of surrounding whitespace and named "Line n". End of input
// after a partial line is accepted; end of input before any text is an error.
func (p *Prompter) Line(n int) (linediff.LineInput, error) {
	p.once.Do(func() { p.r = bufio.NewReader(p.In) })

	if p.Out != nil {
		fmt.Fprintf(p.Out, "Please provide line #%d: ", n)
	}
	line, err := readLine(p.r)
	if err == io.EOF {
		return linediff.LineInput{}, &Error{Kind: ErrReadFailure, Err: fmt.Errorf("line %d: %w", n, io.ErrUnexpectedEOF)}
	}
	if err != nil {
		return linediff.LineInput{}, &Error{Kind: ErrReadFailure, Err: err}
	}
	return Inline(LineName(n), strings.TrimSpace(line)), nil
}
