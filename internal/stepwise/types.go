// Package stepwise breaks a problem into a fixed execution plan and
// tracks per-step completion.
//
// A plan is created fully formed: the step list is generated once, at
// creation time, from keyword matches against the problem text. The
// state machine is agnostic to step content — it only records results
// and watches for the plan to finish.
package stepwise

import "time"

// StepStatus tracks a single step's progress.
type StepStatus string

const (
	StatusPending   StepStatus = "pending"
	StatusCompleted StepStatus = "completed"
)

// Step is one addressable unit of a plan. Result is overwritten on
// re-execution — unlike 5-Why answers, step results are not immutable.
type Step struct {
	Number          int
	Description     string
	ExpectedOutcome string
	Status          StepStatus
	Result          string
	CompletedAt     *time.Time
}

// Plan is the root record for a stepwise breakdown.
type Plan struct {
	ID          string
	Problem     string
	Context     string
	Steps       []*Step
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// Step returns the step with the given number, or nil. Numbers must
// match exactly — no fuzzy matching.
func (p *Plan) Step(number int) *Step {
	for _, s := range p.Steps {
		if s.Number == number {
			return s
		}
	}
	return nil
}

// Progress reports completed and total step counts.
func (p *Plan) Progress() (done, total int) {
	for _, s := range p.Steps {
		if s.Status == StatusCompleted {
			done++
		}
	}
	return done, len(p.Steps)
}

// NextPending returns the first step still pending, or nil when every
// step has been executed.
func (p *Plan) NextPending() *Step {
	for _, s := range p.Steps {
		if s.Status == StatusPending {
			return s
		}
	}
	return nil
}
