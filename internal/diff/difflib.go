package diff

import (
	"github.com/pmezard/go-difflib/difflib"
)

// SequenceMatcher aligns chunks with difflib's SequenceMatcher, which favors the longest contiguous matching blocks. On noisy inputs it often produces
// fewer, larger change blocks than Myers.
type SequenceMatcher struct{}

// Diff implements Differ.
func (SequenceMatcher) Diff(left, right []string) []Segment {
	m := difflib.NewMatcher(left, right)

	var b segmentBuilder
	for _, oc := range m.GetOpCodes() {
		switch oc.Tag {
		case 'e':
			b.same(left[oc.I1:oc.I2])
		case 'd':
			b.removed(left[oc.I1:oc.I2])
		case 'i':
			b.added(right[oc.J1:oc.J2])
		case 'r':
			b.removed(left[oc.I1:oc.I2])
			b.added(right[oc.J1:oc.J2])
		}
	}
	segs := b.segments()

	mustValidate("SequenceMatcher.Diff", left, right, segs)
	return segs
}
