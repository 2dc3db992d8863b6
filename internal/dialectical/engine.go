package dialectical

import (
	"errors"
	"fmt"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Precondition failures for out-of-order advancement. These surface to
// the caller as data-shaped error results, not faults.
var (
	ErrThesisUnset     = errors.New("set a thesis first")
	ErrAntithesisUnset = errors.New("set both the thesis and the antithesis first")
)

// Engine owns the process registry.
type Engine struct {
	mu        sync.Mutex
	processes map[string]*Process
	order     []string
}

// NewEngine creates an empty process registry.
func NewEngine() *Engine {
	return &Engine{processes: make(map[string]*Process)}
}

// Start creates a new process with no positions set.
func (e *Engine) Start(topic, context string) *Process {
	proc := &Process{
		ID:        ident.New(),
		Topic:     topic,
		Context:   context,
		CreatedAt: timeNow(),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.processes[proc.ID] = proc
	e.order = append(e.order, proc.ID)
	return proc
}

// SetThesis records the thesis. Calling it again before the antithesis
// is set overwrites the previous thesis.
func (e *Engine) SetThesis(id, content string, evidence []string) (*Process, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	proc, ok := e.processes[id]
	if !ok {
		return nil, fmt.Errorf("process %q not found", id)
	}

	proc.Thesis = &Position{
		Kind:      KindThesis,
		Content:   content,
		Evidence:  evidence,
		CreatedAt: timeNow(),
	}
	return proc, nil
}

// SetAntithesis records the antithesis. Fails while the thesis is unset.
func (e *Engine) SetAntithesis(id, content string, evidence []string) (*Process, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	proc, ok := e.processes[id]
	if !ok {
		return nil, fmt.Errorf("process %q not found", id)
	}
	if proc.Thesis == nil {
		return nil, ErrThesisUnset
	}

	proc.Antithesis = &Position{
		Kind:      KindAntithesis,
		Content:   content,
		Evidence:  evidence,
		CreatedAt: timeNow(),
	}
	return proc, nil
}

// CreateSynthesis records the synthesis and stamps the completion
// timestamp the first time it succeeds. Fails unless both thesis and
// antithesis are set.
func (e *Engine) CreateSynthesis(id, content, reasoning string) (*Process, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	proc, ok := e.processes[id]
	if !ok {
		return nil, fmt.Errorf("process %q not found", id)
	}
	if proc.Thesis == nil || proc.Antithesis == nil {
		return nil, ErrAntithesisUnset
	}

	now := timeNow()
	proc.Synthesis = &Position{
		Kind:      KindSynthesis,
		Content:   content,
		CreatedAt: now,
	}
	proc.Reasoning = reasoning
	if proc.CompletedAt == nil {
		proc.CompletedAt = &now
	}
	return proc, nil
}

// Get returns a process by id.
func (e *Engine) Get(id string) (*Process, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	proc, ok := e.processes[id]
	if !ok {
		return nil, fmt.Errorf("process %q not found", id)
	}
	return proc, nil
}

// List returns all processes in creation order.
func (e *Engine) List() []*Process {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Process, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.processes[id])
	}
	return out
}
