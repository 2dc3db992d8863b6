package logical

import (
	"fmt"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Engine owns the argument and causal-analysis registries.
type Engine struct {
	mu        sync.Mutex
	arguments map[string]*Argument
	argOrder  []string
	causal    map[string]*CausalAnalysis
	causOrder []string
}

// NewEngine creates empty registries.
func NewEngine() *Engine {
	return &Engine{
		arguments: make(map[string]*Argument),
		causal:    make(map[string]*CausalAnalysis),
	}
}

// BuildArgument classifies the argument, assesses it, and stores the
// finished record.
func (e *Engine) BuildArgument(premises []string, conclusion string) *Argument {
	a := &Argument{
		ID:         ident.New(),
		Premises:   premises,
		Conclusion: conclusion,
		CreatedAt:  timeNow(),
	}
	a.Type = classifyArgumentType(premises, conclusion)
	a.Structure = identifyStructure(premises, conclusion)
	a.Validity = assessValidity(a)
	a.Soundness = assessSoundness(a)
	annotateArgument(a)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.arguments[a.ID] = a
	e.argOrder = append(e.argOrder, a.ID)
	return a
}

// FindCausality analyzes a situation and its candidate factors and
// stores the finished record. Factors may be empty.
func (e *Engine) FindCausality(situation string, factors []string) *CausalAnalysis {
	a := &CausalAnalysis{
		ID:        ident.New(),
		Situation: situation,
		Factors:   factors,
		CreatedAt: timeNow(),
	}
	analyzeCausality(a)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.causal[a.ID] = a
	e.causOrder = append(e.causOrder, a.ID)
	return a
}

// GetArgument returns an argument by id.
func (e *Engine) GetArgument(id string) (*Argument, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.arguments[id]
	if !ok {
		return nil, fmt.Errorf("argument %q not found", id)
	}
	return a, nil
}

// ListArguments returns arguments in creation order.
func (e *Engine) ListArguments() []*Argument {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Argument, 0, len(e.argOrder))
	for _, id := range e.argOrder {
		out = append(out, e.arguments[id])
	}
	return out
}

// ListCausal returns causal analyses in creation order.
func (e *Engine) ListCausal() []*CausalAnalysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*CausalAnalysis, 0, len(e.causOrder))
	for _, id := range e.causOrder {
		out = append(out, e.causal[id])
	}
	return out
}
