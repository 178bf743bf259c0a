// Package report turns a chunk diff into a three-column report: text only on the left, text on both sides, and text only on the right.
//
// A Removed segment immediately followed by an Added segment collapses into one RowChanged row showing the before and after text side by side. Only the
// most recent Removed segment is eligible: if two Removed segments arrive back to back, the first stays a standalone RowRemoved row.
package report

import (
	"strconv"

	"github.com/codalotl/linediff/internal/diff"
)

// RowKind classifies a Row.
type RowKind int

const (
	RowHeader  RowKind = iota // names of both inputs; Marker is "Same"
	RowSame                   // chunks on both sides, shown in Marker
	RowRemoved                // chunks only on the left
	RowAdded                  // chunks only on the right
	RowChanged                // Removed chunks (Left) replaced by Added chunks (Right)
	RowSummary                // a count for each side, labeled by Marker
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "Header"
	case RowSame:
		return "Same"
	case RowRemoved:
		return "Removed"
	case RowAdded:
		return "Added"
	case RowChanged:
		return "Changed"
	case RowSummary:
		return "Summary"
	default:
		return "RowKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Row is the content of one report line. Multi-chunk cells hold their chunks joined by '\n'.
type Row struct {
	Kind   RowKind
	Left   string
	Marker string
	Right  string
}

// Report is a header row, the diff rows, and two summary rows (characters, chunks).
type Report struct {
	Rows []Row
}

// Meta describes one side of a comparison.
type Meta struct {
	Name           string
	OriginalLength int // characters in the raw input
	ChunkCount     int
}

// Labels of the summary rows.
const (
	SameLabel       = "Same"
	CharactersLabel = "Characters"
	ChunksLabel     = "Chunks"
)

// Build builds the report for segs, which align left's chunks to right's.
func Build(left, right Meta, segs []diff.Segment) Report {
	rows := make([]Row, 0, len(segs)+3)
	rows = append(rows, Row{Kind: RowHeader, Left: left.Name, Marker: SameLabel, Right: right.Name})

	var m merger
	for _, seg := range segs {
		rows = m.step(rows, seg)
	}

	rows = append(rows,
		Row{Kind: RowSummary, Left: strconv.Itoa(left.OriginalLength), Marker: CharactersLabel, Right: strconv.Itoa(right.OriginalLength)},
		Row{Kind: RowSummary, Left: strconv.Itoa(left.ChunkCount), Marker: ChunksLabel, Right: strconv.Itoa(right.ChunkCount)},
	)
	return Report{Rows: rows}
}

// Body returns the rows between the header and the summary rows.
func (r Report) Body() []Row {
	if len(r.Rows) < 3 {
		return nil
	}
	return r.Rows[1 : len(r.Rows)-2]
}

// Identical reports whether the report contains no removed, added, or changed rows.
func (r Report) Identical() bool {
	for _, row := range r.Body() {
		if row.Kind != RowSame {
			return false
		}
	}
	return true
}

type mergeState int

const (
	stateIdle           mergeState = iota
	statePendingRemoval            // the last emitted row is a provisional RowRemoved for pending
)

// merger is a one-slot lookback that pairs a Removed segment with an immediately following Added segment.
type merger struct {
	state   mergeState
	pending string
}

// step appends the row(s) for seg to rows and returns the updated slice. In statePendingRemoval, rows' last element is the provisional Removed row.
func (m *merger) step(rows []Row, seg diff.Segment) []Row {
	text := seg.Text()

	switch seg.Op {
	case diff.OpSame:
		m.state, m.pending = stateIdle, ""
		return append(rows, Row{Kind: RowSame, Marker: text})

	case diff.OpAdded:
		if m.state == statePendingRemoval {
			rows[len(rows)-1] = Row{Kind: RowChanged, Left: m.pending, Right: text}
			m.state, m.pending = stateIdle, ""
			return rows
		}
		return append(rows, Row{Kind: RowAdded, Right: text})

	case diff.OpRemoved:
		// A second Removed replaces the merge candidate; its predecessor's row is final.
		m.state, m.pending = statePendingRemoval, text
		return append(rows, Row{Kind: RowRemoved, Left: text})
	}
	return rows
}
