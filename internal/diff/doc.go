// Package diff aligns two chunk sequences and reports the result as an ordered list of segments.
//
// Representation: a Segment is a maximal run of consecutive chunks that share one Op:
//   - OpSame: chunks present, in order, on both sides.
//   - OpRemoved: chunks present only on the left (old) side.
//   - OpAdded: chunks present only on the right (new) side.
//
// Invariants (checked by Validate):
//   - concat(Same and Removed segments' Chunks) == left
//   - concat(Same and Added segments' Chunks) == right
//   - No segment is empty, and no two adjacent segments share an Op.
//   - Within a run of changes (between two Same segments), the Removed segment precedes the Added segment.
//
// Alignment itself is delegated to third-party libraries; this package only adapts their output. Two algorithms are available:
//   - AlgorithmMyers (default): github.com/sergi/go-diff's diff-match-patch over one rune per distinct chunk.
//   - AlgorithmDifflib: github.com/pmezard/go-difflib's SequenceMatcher (Python difflib's Ratcliff/Obershelp matching).
//
// Usage:
//
//	segs := diff.New(diff.AlgorithmMyers).Diff([]string{"Hello", "World"}, []string{"hello", "World"})
//	// segs: Removed["Hello"], Added["hello"], Same["World"]
package diff
