// Package fivewhys implements 5-Why root-cause analysis.
//
// An analysis is an append-only chain of (level, question, answer)
// entries, levels 0 through 4. Questions are generated lazily: level
// L+1 appears only once level L is answered, so the chain never has an
// unanswered gap followed by a further entry. Answers are immutable —
// re-answering a level is rejected. Five levels is a hard bound.
package fivewhys

import "time"

// MaxLevels is the fixed depth of the why chain.
const MaxLevels = 5

// Status tracks the analysis lifecycle. Completed is terminal.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// Why is one level of the chain. Answered reports whether the answer
// has been recorded; once true, the answer never changes.
type Why struct {
	Level      int
	Question   string
	Answer     string
	Answered   bool
	AnsweredAt *time.Time
}

// Analysis is the root record for one 5-Why run.
type Analysis struct {
	ID        string
	Problem   string
	Context   string
	Whys      []*Why
	Status    Status
	CreatedAt time.Time
}

// Frontier returns the deepest unanswered entry, which is always the
// last entry of the chain while the analysis is active. Nil once the
// analysis is complete.
func (a *Analysis) Frontier() *Why {
	last := a.Whys[len(a.Whys)-1]
	if last.Answered {
		return nil
	}
	return last
}

// AnsweredCount reports how many levels have recorded answers.
func (a *Analysis) AnsweredCount() int {
	n := 0
	for _, w := range a.Whys {
		if w.Answered {
			n++
		}
	}
	return n
}

// Answers returns the recorded answers in level order. The last entry
// of a completed analysis is the root cause.
func (a *Analysis) Answers() []string {
	var out []string
	for _, w := range a.Whys {
		if w.Answered {
			out = append(out, w.Answer)
		}
	}
	return out
}
