package stepwise

import (
	"fmt"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Engine owns the plan registry. All state is in-memory and
// process-wide; the mutex covers concurrent tool dispatch by the host.
type Engine struct {
	mu    sync.Mutex
	plans map[string]*Plan
	order []string
}

// NewEngine creates an empty plan registry.
func NewEngine() *Engine {
	return &Engine{plans: make(map[string]*Plan)}
}

// CreatePlan generates a fully formed plan for the problem. Step
// generation happens here, once — ExecuteStep never touches content.
func (e *Engine) CreatePlan(problem, context string) *Plan {
	plan := &Plan{
		ID:        ident.New(),
		Problem:   problem,
		Context:   context,
		Steps:     buildSteps(problem),
		CreatedAt: timeNow(),
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	e.plans[plan.ID] = plan
	e.order = append(e.order, plan.ID)
	return plan
}

// ExecuteStep records a result for a step and marks it completed.
// Re-executing a step overwrites its previous result. When the last
// pending step completes, the plan's completion timestamp is stamped
// (once — re-execution after completion never moves it).
func (e *Engine) ExecuteStep(planID string, stepNumber int, result string) (*Plan, *Step, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plan, ok := e.plans[planID]
	if !ok {
		return nil, nil, fmt.Errorf("plan %q not found", planID)
	}

	step := plan.Step(stepNumber)
	if step == nil {
		return nil, nil, fmt.Errorf("plan %q has no step %d", planID, stepNumber)
	}

	now := timeNow()
	step.Result = result
	step.Status = StatusCompleted
	step.CompletedAt = &now

	if done, total := plan.Progress(); done == total && plan.CompletedAt == nil {
		plan.CompletedAt = &now
	}

	return plan, step, nil
}

// Get returns a plan by id.
func (e *Engine) Get(id string) (*Plan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	plan, ok := e.plans[id]
	if !ok {
		return nil, fmt.Errorf("plan %q not found", id)
	}
	return plan, nil
}

// List returns all plans in creation order.
func (e *Engine) List() []*Plan {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Plan, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.plans[id])
	}
	return out
}
