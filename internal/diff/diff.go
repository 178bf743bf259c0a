package diff

import (
	"fmt"
	"strings"
)

// Op is an operation from the left chunk sequence to the right one.
type Op int

// Operations from left to right.
const (
	OpSame Op = iota
	OpRemoved
	OpAdded
)

func (o Op) String() string {
	switch o {
	case OpSame:
		return "Same"
	case OpRemoved:
		return "Removed"
	case OpAdded:
		return "Added"
	default:
		return fmt.Sprintf("Op(%d)", int(o))
	}
}

// Segment is a run of consecutive chunks sharing one Op.
type Segment struct {
	Op     Op
	Chunks []string // never empty
}

// Text returns the segment's chunks joined by '\n'.
func (s Segment) Text() string {
	return strings.Join(s.Chunks, defaultEOL)
}

// Differ aligns two chunk sequences. Chunks may hold any text, including newlines. Implementations must return segments satisfying the package
// invariants.
type Differ interface {
	Diff(left, right []string) []Segment
}

// Algorithm names a Differ implementation.
type Algorithm string

const (
	AlgorithmMyers   Algorithm = "myers"
	AlgorithmDifflib Algorithm = "difflib"
)

// Algorithms lists the supported algorithms, default first.
var Algorithms = []Algorithm{AlgorithmMyers, AlgorithmDifflib}

// ParseAlgorithm parses s (case-insensitive, surrounding whitespace ignored). The empty string parses to AlgorithmMyers.
func ParseAlgorithm(s string) (Algorithm, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return AlgorithmMyers, nil
	}
	for _, a := range Algorithms {
		if string(a) == s {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown diff algorithm %q (want one of: myers, difflib)", s)
}

// New returns the Differ for alg. The zero Algorithm selects Myers. New panics on an unknown algorithm; use ParseAlgorithm to validate user input.
func New(alg Algorithm) Differ {
	switch alg {
	case "", AlgorithmMyers:
		return Myers{}
	case AlgorithmDifflib:
		return SequenceMatcher{}
	default:
		panic(fmt.Sprintf("diff: unknown algorithm %q", string(alg)))
	}
}

// Left returns the left chunk sequence described by segs (Same and Removed chunks, in order).
func Left(segs []Segment) []string {
	return collect(segs, OpRemoved)
}

// Right returns the right chunk sequence described by segs (Same and Added chunks, in order).
func Right(segs []Segment) []string {
	return collect(segs, OpAdded)
}

func collect(segs []Segment, side Op) []string {
	var out []string
	for _, s := range segs {
		if s.Op == OpSame || s.Op == side {
			out = append(out, s.Chunks...)
		}
	}
	return out
}

// segmentBuilder accumulates library output into normalized segments: runs are coalesced and each block of changes is emitted as Removed then Added.
type segmentBuilder struct {
	segs []Segment
	dels []string
	ins  []string
}

func (b *segmentBuilder) same(chunks []string) {
	if len(chunks) == 0 {
		return
	}
	b.flush()
	b.push(OpSame, chunks)
}

func (b *segmentBuilder) removed(chunks []string) {
	b.dels = append(b.dels, chunks...)
}

func (b *segmentBuilder) added(chunks []string) {
	b.ins = append(b.ins, chunks...)
}

func (b *segmentBuilder) flush() {
	if len(b.dels) > 0 {
		b.push(OpRemoved, b.dels)
	}
	if len(b.ins) > 0 {
		b.push(OpAdded, b.ins)
	}
	b.dels = nil
	b.ins = nil
}

func (b *segmentBuilder) push(op Op, chunks []string) {
	if n := len(b.segs); n > 0 && b.segs[n-1].Op == op {
		b.segs[n-1].Chunks = append(b.segs[n-1].Chunks, chunks...)
		return
	}
	b.segs = append(b.segs, Segment{Op: op, Chunks: append([]string(nil), chunks...)})
}

func (b *segmentBuilder) segments() []Segment {
	b.flush()
	return b.segs
}

// mustValidate panics if segs violate the package invariants. A violation means a library broke its contract.
func mustValidate(name string, left, right []string, segs []Segment) {
	if err := Validate(left, right, segs); err != nil {
		panic(fmt.Errorf("%s: validate failed with %v", name, err))
	}
}

// defaultEOL joins chunks into text and terminates encoded lines.
const defaultEOL = "\n"
