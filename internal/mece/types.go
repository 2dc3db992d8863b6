// Package mece checks category breakdowns for overlap and gaps and
// proposes framework-based structures. Records are immutable once
// stored; every call creates a new analysis.
package mece

import "time"

// ViolationType is the overall verdict for a category set.
type ViolationType string

const (
	ViolationOverlap ViolationType = "overlap (mutual exclusivity broken)"
	ViolationGap     ViolationType = "gap (exhaustiveness broken)"
	ViolationBoth    ViolationType = "both overlap and gap"
	ViolationNone    ViolationType = "conforms to the MECE principle"
)

// Category is one bucket in a breakdown, with a generated description
// and estimated member items.
type Category struct {
	ID          string
	Name        string
	Description string
	Items       []string
}

// OverlapPair names two categories that likely overlap.
type OverlapPair struct {
	First  string
	Second string
}

// Analysis is a stored MECE evaluation or structure proposal.
type Analysis struct {
	ID          string
	Topic       string
	Framework   string // set for structure proposals, empty for plain analyses
	Input       []string
	Categories  []Category
	Violation   ViolationType
	Overlaps    []OverlapPair
	Gaps        []string
	Suggestions []string
	Notes       []string
	CreatedAt   time.Time
}
