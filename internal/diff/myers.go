package diff

import (
	"unicode"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Myers aligns chunks with diff-match-patch (a Myers O(ND) diff) run over one rune per distinct chunk.
//
// Chunks may contain any text, including '\n'. If the inputs hold more distinct chunks than there are non-surrogate runes, Myers falls back to SequenceMatcher.
type Myers struct{}

// Diff implements Differ.
func (Myers) Diff(left, right []string) []Segment {
	var ids chunkIDs
	rLeft := ids.encode(left)
	rRight := ids.encode(right)
	if len(ids.chunks) > maxChunkIDs {
		return SequenceMatcher{}.Diff(left, right)
	}

	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMainRunes(rLeft, rRight, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var b segmentBuilder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			b.same(ids.decode(d.Text))
		case diffmatchpatch.DiffDelete:
			b.removed(ids.decode(d.Text))
		case diffmatchpatch.DiffInsert:
			b.added(ids.decode(d.Text))
		}
	}
	segs := b.segments()

	mustValidate("Myers.Diff", left, right, segs)
	return segs
}

// Surrogate code points can't survive a round trip through a Go string, so ids skip them.
const (
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
	surrogates   = surrogateMax - surrogateMin + 1
	maxChunkIDs  = unicode.MaxRune + 1 - surrogates
)

// chunkIDs numbers distinct chunks in order of first appearance.
type chunkIDs struct {
	byChunk map[string]int
	chunks  []string
}

func (c *chunkIDs) encode(seq []string) []rune {
	if c.byChunk == nil {
		c.byChunk = make(map[string]int)
	}
	out := make([]rune, len(seq))
	for i, chunk := range seq {
		idx, ok := c.byChunk[chunk]
		if !ok {
			idx = len(c.chunks)
			c.byChunk[chunk] = idx
			c.chunks = append(c.chunks, chunk)
		}
		out[i] = idToRune(idx)
	}
	return out
}

func (c *chunkIDs) decode(s string) []string {
	if s == "" {
		return nil
	}
	out := make([]string, 0, len(s))
	for _, r := range s {
		if idx := runeToID(r); idx >= 0 && idx < len(c.chunks) {
			out = append(out, c.chunks[idx])
		}
	}
	return out
}

func idToRune(idx int) rune {
	if idx >= surrogateMin {
		idx += surrogates
	}
	return rune(idx)
}

func runeToID(r rune) int {
	idx := int(r)
	if idx > surrogateMax {
		idx -= surrogates
	}
	return idx
}
