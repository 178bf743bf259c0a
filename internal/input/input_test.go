package input

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/codalotl/linediff/internal/linediff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestTwoLineFile(t *testing.T) {
	tests := []struct {
		name      string
		contents  string
		wantLeft  string
		wantRight string
		wantWarn  bool
	}{
		{name: "two lines", contents: "Hello World\nhello World\n", wantLeft: "Hello World", wantRight: "hello World"},
		{name: "no trailing newline", contents: "a\nb", wantLeft: "a", wantRight: "b"},
		{name: "crlf", contents: "a b\r\nc d\r\n", wantLeft: "a b", wantRight: "c d"},
		{name: "three lines", contents: "a\nb\nc\n", wantLeft: "a", wantRight: "b", wantWarn: true},
		{name: "one line", contents: "only\n", wantLeft: "only", wantRight: ""},
		{name: "empty file", contents: "", wantLeft: "", wantRight: ""},
		{name: "blank lines", contents: "\n\n", wantLeft: "", wantRight: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "lines.txt", tt.contents)

			left, right, warnings, err := TwoLineFile(path)
			require.NoError(t, err)
			assert.Equal(t, linediff.LineInput{Name: "Line 1", Raw: tt.wantLeft}, left)
			assert.Equal(t, linediff.LineInput{Name: "Line 2", Raw: tt.wantRight}, right)
			if tt.wantWarn {
				require.Len(t, warnings, 1)
				assert.Contains(t, warnings[0], WarnExtraLines)
				assert.Contains(t, warnings[0], path)
			} else {
				assert.Empty(t, warnings)
			}
		})
	}
}

func TestFirstLineFile(t *testing.T) {
	path := writeFile(t, "left.txt", "first line\nsecond line\n")

	in, warnings, err := FirstLineFile(path)
	require.NoError(t, err)
	assert.Equal(t, linediff.LineInput{Name: "left.txt", Raw: "first line"}, in)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], WarnExtraLines)

	path = writeFile(t, "single.txt", "just one")
	in, warnings, err = FirstLineFile(path)
	require.NoError(t, err)
	assert.Equal(t, linediff.LineInput{Name: "single.txt", Raw: "just one"}, in)
	assert.Empty(t, warnings)

	path = writeFile(t, "empty.txt", "")
	in, _, err = FirstLineFile(path)
	require.NoError(t, err)
	assert.Equal(t, "", in.Raw)
}

func TestFileErrors(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "nope.txt")

	_, _, _, err := TwoLineFile(missing)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotFound)
	assert.Equal(t, "cannot find file: "+missing, err.Error())

	_, _, err = FirstLineFile(dir)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInputNotAFile)
	assert.NotErrorIs(t, err, ErrInputNotFound)
	assert.Equal(t, "is not a file: "+dir, err.Error())

	var ie *Error
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, dir, ie.Path)
}

func TestFileErrors_Unreadable(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	path := writeFile(t, "secret.txt", "a\nb\n")
	require.NoError(t, os.Chmod(path, 0))

	_, _, _, err := TwoLineFile(path)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFailure)
	assert.ErrorIs(t, err, os.ErrPermission)
	assert.True(t, strings.HasPrefix(err.Error(), "read "+path+": "))
}

func TestPrompter_Line(t *testing.T) {
	var out strings.Builder
	p := &Prompter{In: strings.NewReader("  Hello World \nhello World\n"), Out: &out}

	l1, err := p.Line(1)
	require.NoError(t, err)
	l2, err := p.Line(2)
	require.NoError(t, err)

	assert.Equal(t, linediff.LineInput{Name: "Line 1", Raw: "Hello World"}, l1)
	assert.Equal(t, linediff.LineInput{Name: "Line 2", Raw: "hello World"}, l2)
	assert.Equal(t, "Please provide line #1: Please provide line #2: ", out.String())
}

func TestPrompter_EOF(t *testing.T) {
	p := &Prompter{In: strings.NewReader("partial")}

	l1, err := p.Line(1)
	require.NoError(t, err)
	assert.Equal(t, "partial", l1.Raw)

	_, err = p.Line(2)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReadFailure)
}

func ptr(s string) *string { return &s }

func TestResolve(t *testing.T) {
	both := writeFile(t, "both.txt", "from file one\nfrom file two\n")
	f1 := writeFile(t, "one.txt", "first\n")
	f2 := writeFile(t, "two.txt", "second\n")

	tests := []struct {
		name      string
		src       Source
		stdin     string
		wantLeft  linediff.LineInput
		wantRight linediff.LineInput
		wantOut   string
	}{
		{
			name:      "file wins",
			src:       Source{File: both, File1: f1, Line2: ptr("ignored")},
			wantLeft:  linediff.LineInput{Name: "Line 1", Raw: "from file one"},
			wantRight: linediff.LineInput{Name: "Line 2", Raw: "from file two"},
		},
		{
			name:      "inline",
			src:       Source{Line1: ptr("a b"), Line2: ptr("c d")},
			wantLeft:  linediff.LineInput{Name: "Line 1", Raw: "a b"},
			wantRight: linediff.LineInput{Name: "Line 2", Raw: "c d"},
		},
		{
			name:      "inline beats per-side file",
			src:       Source{Line1: ptr("inline"), File1: f1, File2: f2},
			wantLeft:  linediff.LineInput{Name: "Line 1", Raw: "inline"},
			wantRight: linediff.LineInput{Name: "two.txt", Raw: "second"},
		},
		{
			name:      "empty inline line is used as-is",
			src:       Source{Line1: ptr(""), Line2: ptr("x")},
			stdin:     "typed\n",
			wantLeft:  linediff.LineInput{Name: "Line 1", Raw: ""},
			wantRight: linediff.LineInput{Name: "Line 2", Raw: "x"},
		},
		{
			name:      "per-side files",
			src:       Source{File1: f1, File2: f2},
			wantLeft:  linediff.LineInput{Name: "one.txt", Raw: "first"},
			wantRight: linediff.LineInput{Name: "two.txt", Raw: "second"},
		},
		{
			name:      "prompt for missing side",
			src:       Source{File1: f1},
			stdin:     "typed\n",
			wantLeft:  linediff.LineInput{Name: "one.txt", Raw: "first"},
			wantRight: linediff.LineInput{Name: "Line 2", Raw: "typed"},
			wantOut:   "Please provide line #2: ",
		},
		{
			name:      "prompt both",
			stdin:     "x\ny\n",
			wantLeft:  linediff.LineInput{Name: "Line 1", Raw: "x"},
			wantRight: linediff.LineInput{Name: "Line 2", Raw: "y"},
			wantOut:   "Please provide line #1: Please provide line #2: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := &Prompter{In: strings.NewReader(tt.stdin), Out: &out}

			left, right, warnings, err := Resolve(tt.src, p)
			require.NoError(t, err)
			assert.Empty(t, warnings)
			assert.Equal(t, tt.wantLeft, left)
			assert.Equal(t, tt.wantRight, right)
			assert.Equal(t, tt.wantOut, out.String())
		})
	}
}

func TestResolve_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")

	_, _, _, err := Resolve(Source{Line1: ptr("ok"), File2: missing}, nil)
	assert.ErrorIs(t, err, ErrInputNotFound)

	_, _, _, err = Resolve(Source{Line1: ptr("ok")}, nil)
	assert.ErrorIs(t, err, ErrReadFailure)
}

func TestResolve_CollectsWarnings(t *testing.T) {
	f1 := writeFile(t, "one.txt", "a\nextra\n")
	f2 := writeFile(t, "two.txt", "b\nextra\n")

	_, _, warnings, err := Resolve(Source{File1: f1, File2: f2}, nil)
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
}
