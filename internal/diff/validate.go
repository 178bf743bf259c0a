package diff

import (
	"fmt"
	"slices"
)

// Validate checks that segs is a well-formed alignment of left and right, returning an error on the first violation. See the package documentation for the invariants.
func Validate(left, right []string, segs []Segment) error {
	for i, s := range segs {
		switch s.Op {
		case OpSame, OpRemoved, OpAdded:
		default:
			return fmt.Errorf("segment[%d]: unknown op %v", i, s.Op)
		}
		if len(s.Chunks) == 0 {
			return fmt.Errorf("segment[%d]: %v segment has no chunks", i, s.Op)
		}
		if i == 0 {
			continue
		}
		prev := segs[i-1]
		if prev.Op == s.Op {
			return fmt.Errorf("segment[%d]: adjacent %v segments must be coalesced", i, s.Op)
		}
		if prev.Op == OpAdded && s.Op == OpRemoved {
			return fmt.Errorf("segment[%d]: Removed must precede Added within a change", i)
		}
	}

	if got := Left(segs); !slices.Equal(got, left) {
		return fmt.Errorf("segments do not reconstruct left: got %q, want %q", got, left)
	}
	if got := Right(segs); !slices.Equal(got, right) {
		return fmt.Errorf("segments do not reconstruct right: got %q, want %q", got, right)
	}
	return nil
}
