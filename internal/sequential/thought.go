// Package sequential keeps a running log of numbered thoughts with
// revision and branch tracking.
package sequential

import "errors"

// Thought is one validated entry in the log.
//
// Optional fields stay at their zero values when unused: a revision
// carries IsRevision and RevisesThought, a branch carries
// BranchFromThought and BranchID.
type Thought struct {
	Thought           string
	ThoughtNumber     int
	TotalThoughts     int
	NextThoughtNeeded bool
	IsRevision        bool
	RevisesThought    int
	BranchFromThought int
	BranchID          string
	NeedsMoreThoughts bool
}

var (
	errThought           = errors.New("Invalid thought: must be a string")
	errThoughtNumber     = errors.New("Invalid thoughtNumber: must be a number")
	errTotalThoughts     = errors.New("Invalid totalThoughts: must be a number")
	errNextThoughtNeeded = errors.New("Invalid nextThoughtNeeded: must be a boolean")
)

// validate rejects thoughts with missing or non-positive required
// fields. hasNext reports whether the caller supplied the
// nextThoughtNeeded flag at all.
func validate(t Thought, hasNext bool) error {
	if t.Thought == "" {
		return errThought
	}
	if t.ThoughtNumber <= 0 {
		return errThoughtNumber
	}
	if t.TotalThoughts <= 0 {
		return errTotalThoughts
	}
	if !hasNext {
		return errNextThoughtNeeded
	}
	return nil
}
