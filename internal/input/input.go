// Package input obtains the two lines to compare: inline text, one file holding both lines, one file per line, or an interactive prompt.
package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/codalotl/linediff/internal/linediff"
)

// WarnExtraLines is the warning produced when a file has more lines than are used.
const WarnExtraLines = "file contains additional lines that will be ignored"

// LineName returns the default name of the n-th line ("Line 1", "Line 2").
func LineName(n int) string {
	return fmt.Sprintf("Line %d", n)
}

// Inline returns raw as a line named name.
func Inline(name, raw string) linediff.LineInput {
	return linediff.LineInput{Name: name, Raw: raw}
}

// TwoLineFile reads the first two lines of path, named "Line 1" and "Line 2". Missing lines are empty. If the file has more than two lines, the extra
// lines are ignored and a warning is returned.
func TwoLineFile(path string) (left, right linediff.LineInput, warnings []string, err error) {
	lines, more, err := readLines(path, 2)
	if err != nil {
		return linediff.LineInput{}, linediff.LineInput{}, nil, err
	}
	for len(lines) < 2 {
		lines = append(lines, "")
	}
	if more {
		warnings = append(warnings, fmt.Sprintf("%s: %s", path, WarnExtraLines))
	}
	return Inline(LineName(1), lines[0]), Inline(LineName(2), lines[1]), warnings, nil
}

// FirstLineFile reads the first line of path, named after the file's base name. If the file has more lines, they are ignored and a warning is returned.
func FirstLineFile(path string) (linediff.LineInput, []string, error) {
	lines, more, err := readLines(path, 1)
	if err != nil {
		return linediff.LineInput{}, nil, err
	}
	raw := ""
	if len(lines) > 0 {
		raw = lines[0]
	}
	var warnings []string
	if more {
		warnings = append(warnings, fmt.Sprintf("%s: %s", path, WarnExtraLines))
	}
	return Inline(filepath.Base(path), raw), warnings, nil
}

// readLines returns up to limit lines of path (without line terminators) and whether more lines follow. A trailing terminator does not start a new line.
func readLines(path string, limit int) ([]string, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, false, &Error{Kind: ErrInputNotFound, Path: path, Err: err}
		}
		return nil, false, &Error{Kind: ErrReadFailure, Path: path, Err: err}
	}
	if !info.Mode().IsRegular() {
		return nil, false, &Error{Kind: ErrInputNotAFile, Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, false, &Error{Kind: ErrReadFailure, Path: path, Err: err}
	}
	defer f.Close()

	r := bufio.NewReader(f)
	var lines []string
	for {
		line, err := readLine(r)
		if err == io.EOF {
			return lines, false, nil
		}
		if err != nil {
			return nil, false, &Error{Kind: ErrReadFailure, Path: path, Err: err}
		}
		if len(lines) == limit {
			return lines, true, nil
		}
		lines = append(lines, line)
	}
}

// readLine reads one line terminated by "\n", "\r\n", or EOF, and returns it without the terminator. It returns io.EOF only if nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", err
	}
	if err == io.EOF && line == "" {
		return "", io.EOF
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
