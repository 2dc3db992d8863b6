package fivewhys

import (
	"fmt"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Engine owns the analysis registry. 5-Why analyses use 8-character
// short identifiers so a human can retype them between calls.
type Engine struct {
	mu       sync.Mutex
	analyses map[string]*Analysis
	order    []string
}

// NewEngine creates an empty analysis registry.
func NewEngine() *Engine {
	return &Engine{analyses: make(map[string]*Analysis)}
}

// Start creates an analysis with the level-0 question pre-seeded from
// the problem statement.
func (e *Engine) Start(problem, context string) *Analysis {
	a := &Analysis{
		ID:        ident.NewShort(),
		Problem:   problem,
		Context:   context,
		Status:    StatusActive,
		CreatedAt: timeNow(),
	}
	a.Whys = append(a.Whys, &Why{
		Level:    0,
		Question: questionFor(problem),
	})

	e.mu.Lock()
	defer e.mu.Unlock()
	e.analyses[a.ID] = a
	e.order = append(e.order, a.ID)
	return a
}

// AddAnswer records the answer for a level and appends the next
// question. Answering past the frontier or re-answering a level fails
// without mutating anything. Answering level 4 completes the analysis.
//
// The returned Why is the newly generated next question, or nil when
// the analysis just completed.
func (e *Engine) AddAnswer(id string, level int, answer string) (*Analysis, *Why, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.analyses[id]
	if !ok {
		return nil, nil, fmt.Errorf("analysis %q not found", id)
	}
	if level < 0 || level >= len(a.Whys) {
		return nil, nil, fmt.Errorf("level %d has no question yet", level)
	}
	if a.Whys[level].Answered {
		return nil, nil, fmt.Errorf("level %d is already answered", level)
	}

	now := timeNow()
	a.Whys[level].Answer = answer
	a.Whys[level].Answered = true
	a.Whys[level].AnsweredAt = &now

	if level < MaxLevels-1 {
		next := &Why{
			Level:    level + 1,
			Question: questionFor(answer),
		}
		a.Whys = append(a.Whys, next)
		return a, next, nil
	}

	a.Status = StatusCompleted
	return a, nil, nil
}

// Get returns an analysis by id.
func (e *Engine) Get(id string) (*Analysis, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.analyses[id]
	if !ok {
		return nil, fmt.Errorf("analysis %q not found", id)
	}
	return a, nil
}

// List returns all analyses in creation order.
func (e *Engine) List() []*Analysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Analysis, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.analyses[id])
	}
	return out
}

// questionFor phrases the why question for a statement. Level 0 uses
// the problem itself; deeper levels use the prior answer.
func questionFor(statement string) string {
	return fmt.Sprintf("Why did %q happen?", statement)
}
