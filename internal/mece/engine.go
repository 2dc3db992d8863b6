package mece

import (
	"fmt"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Engine owns the analysis registry.
type Engine struct {
	mu       sync.Mutex
	analyses map[string]*Analysis
	order    []string
}

// NewEngine creates an empty registry.
func NewEngine() *Engine {
	return &Engine{analyses: make(map[string]*Analysis)}
}

// AnalyzeCategories evaluates a caller-supplied breakdown for overlap
// and gaps and stores the verdict.
func (e *Engine) AnalyzeCategories(topic string, categories []string) *Analysis {
	a := &Analysis{
		ID:        ident.New(),
		Topic:     topic,
		Input:     categories,
		CreatedAt: timeNow(),
	}
	buildCategories(a)

	a.Overlaps = findOverlaps(a.Categories)
	a.Gaps = findGaps(a.Topic, a.Categories)
	switch {
	case len(a.Overlaps) > 0 && len(a.Gaps) > 0:
		a.Violation = ViolationBoth
	case len(a.Overlaps) > 0:
		a.Violation = ViolationOverlap
	case len(a.Gaps) > 0:
		a.Violation = ViolationGap
	default:
		a.Violation = ViolationNone
	}
	suggestImprovements(a)
	annotate(a)

	e.store(a)
	return a
}

// CreateStructure proposes a breakdown for the topic using the named
// framework ("4P", "3C", "SWOT", "timeline", "internal-external", or
// "auto") and stores it. The proposal is not violation-checked.
func (e *Engine) CreateStructure(topic, framework string) *Analysis {
	if framework == "" {
		framework = "auto"
	}
	a := &Analysis{
		ID:        ident.New(),
		Topic:     topic,
		Framework: framework,
		Input:     suggestStructure(topic, framework),
		CreatedAt: timeNow(),
	}
	buildCategories(a)
	a.Notes = append(a.Notes, fmt.Sprintf("Structure proposed using the %q framework", framework))
	annotate(a)

	e.store(a)
	return a
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

// List returns analyses in creation order.
func (e *Engine) List() []*Analysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Analysis, 0, len(e.order))
	for _, id := range e.order {
		out = append(out, e.analyses[id])
	}
	return out
}

func (e *Engine) store(a *Analysis) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.analyses[a.ID] = a
	e.order = append(e.order, a.ID)
}

// buildCategories expands the raw names into described categories.
func buildCategories(a *Analysis) {
	for _, name := range a.Input {
		a.Categories = append(a.Categories, Category{
			ID:          ident.New(),
			Name:        name,
			Description: describeCategory(name, a.Topic),
			Items:       estimateItems(name),
		})
	}
}
