// Package dialectical runs thesis → antithesis → synthesis processes.
//
// The progression is strictly linear and guarded by preconditions:
// an antithesis requires a thesis, a synthesis requires both. Only
// forward-progress gaps are guarded — re-setting a thesis before the
// antithesis exists silently overwrites it, matching observed behavior.
package dialectical

import "time"

// PositionKind labels the three dialectical positions.
type PositionKind string

const (
	KindThesis     PositionKind = "thesis"
	KindAntithesis PositionKind = "antithesis"
	KindSynthesis  PositionKind = "synthesis"
)

// Position is one of the three stances in a process.
type Position struct {
	Kind      PositionKind
	Content   string
	Evidence  []string
	CreatedAt time.Time
}

// Process is the root record for one dialectical run.
type Process struct {
	ID          string
	Topic       string
	Context     string
	Thesis      *Position
	Antithesis  *Position
	Synthesis   *Position
	Reasoning   string
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Completed reports whether the synthesis has been recorded.
func (p *Process) Completed() bool {
	return p.CompletedAt != nil
}

// NextStep derives the next expected operation from which positions
// are set. Derived on every read, never stored, so it cannot drift.
func (p *Process) NextStep() string {
	switch {
	case p.Thesis == nil:
		return "dialectical_set_thesis"
	case p.Antithesis == nil:
		return "dialectical_set_antithesis"
	case p.Synthesis == nil:
		return "dialectical_create_synthesis"
	default:
		return ""
	}
}
