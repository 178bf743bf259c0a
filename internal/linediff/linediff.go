// Package linediff compares two lines of text chunk by chunk.
//
// Each side is preprocessed (optionally lowercased, split on separator runes plus newline, optionally sorted), the two chunk sequences are diffed, and
// the result is assembled into a three-column report. Preprocessed text can also be persisted to per-side sinks.
//
// Compare never fails: splitting, diffing, and report building are total. Only sink writes can fail, and those failures are reported alongside the
// result rather than aborting it.
package linediff

import (
	"unicode/utf8"

	"github.com/codalotl/linediff/internal/chunk"
	"github.com/codalotl/linediff/internal/diff"
	"github.com/codalotl/linediff/internal/report"
	"github.com/codalotl/linediff/internal/simplelogger"
)

// LineInput is one side of a comparison.
type LineInput struct {
	Name string // label shown in the report header
	Raw  string
}

// PreprocessedLine is a LineInput after lowercasing, splitting, and sorting.
type PreprocessedLine struct {
	Name           string
	OriginalLength int      // rune count of the raw input
	Chunks         []string // at least one chunk
}

// Text returns the chunks joined by "\n".
func (p PreprocessedLine) Text() string {
	return chunk.Join(p.Chunks)
}

// ChunkCount returns the number of chunks (the number of newlines in Text, plus one).
func (p PreprocessedLine) ChunkCount() int {
	return chunk.Count(p.Text())
}

func (p PreprocessedLine) meta() report.Meta {
	return report.Meta{Name: p.Name, OriginalLength: p.OriginalLength, ChunkCount: p.ChunkCount()}
}

// Options apply to both sides of a comparison.
type Options struct {
	Separators chunk.Separators // newline is always added
	Sort       bool
	Lowercase  bool
	Algorithm  diff.Algorithm // "" means diff.AlgorithmMyers

	LeftOutput  Sink // if non-nil, receives the left side's preprocessed text
	RightOutput Sink // if non-nil, receives the right side's preprocessed text
}

// Preprocess lowercases (if requested), splits, and sorts (if requested) in.Raw.
func Preprocess(in LineInput, opts Options) PreprocessedLine {
	return PreprocessedLine{
		Name:           in.Name,
		OriginalLength: utf8.RuneCountInString(in.Raw),
		Chunks: chunk.Split(in.Raw, opts.Separators.WithNewline(), chunk.Options{
			Sort:      opts.Sort,
			Lowercase: opts.Lowercase,
		}),
	}
}

// Comparison is the result of Compare.
type Comparison struct {
	Left     PreprocessedLine
	Right    PreprocessedLine
	Segments []diff.Segment
	Report   report.Report

	// OutputErrors holds sink failures (each wrapping ErrWriteFailure). They do not affect the rest of the result.
	OutputErrors []error
}

// Compare preprocesses both inputs, diffs their chunks, and builds the report. If opts names output sinks, each side's preprocessed text is written to
// its sink; write failures are logged and collected in OutputErrors.
//
// Compare holds no shared state and is safe to call concurrently (as long as the sinks are).
func Compare(left, right LineInput, opts Options) Comparison {
	l := Preprocess(left, opts)
	r := Preprocess(right, opts)

	segs := diff.New(opts.Algorithm).Diff(l.Chunks, r.Chunks)
	simplelogger.Log("compare %q (%d chunks) vs %q (%d chunks): %d segments", l.Name, len(l.Chunks), r.Name, len(r.Chunks), len(segs))

	c := Comparison{
		Left:     l,
		Right:    r,
		Segments: segs,
		Report:   report.Build(l.meta(), r.meta(), segs),
	}

	for _, out := range []struct {
		sink Sink
		line PreprocessedLine
	}{{opts.LeftOutput, l}, {opts.RightOutput, r}} {
		if out.sink == nil {
			continue
		}
		if err := out.sink.WritePreprocessed(out.line.Text()); err != nil {
			simplelogger.Log("write preprocessed %q: %v", out.line.Name, err)
			c.OutputErrors = append(c.OutputErrors, err)
		}
	}

	return c
}
