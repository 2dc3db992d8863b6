package critical

import (
	"fmt"
	"strconv"
	"sync"
)

// Engine owns two independent registries: claim analyses and bias
// analyses. Both use monotonic counter identifiers rendered as decimal
// strings — never reused, never caller-supplied.
type Engine struct {
	mu         sync.Mutex
	claims     map[string]*ClaimAnalysis
	claimOrder []string
	biases     map[string]*BiasAnalysis
	biasOrder  []string
}

// NewEngine creates empty analysis registries.
func NewEngine() *Engine {
	return &Engine{
		claims: make(map[string]*ClaimAnalysis),
		biases: make(map[string]*BiasAnalysis),
	}
}

// AnalyzeClaim classifies the source, scans the claim text, scores
// reliability, and stores the finished record.
func (e *Engine) AnalyzeClaim(claim, source string) *ClaimAnalysis {
	a := &ClaimAnalysis{
		Claim:       claim,
		Source:      source,
		SourceType:  classifySource(source),
		Reliability: ReliabilityUnknown,
		AnalyzedAt:  timeNow(),
	}
	analyzeClaim(a)
	a.Reliability = assessReliability(a)

	e.mu.Lock()
	defer e.mu.Unlock()
	a.ID = strconv.Itoa(len(e.claims) + 1)
	e.claims[a.ID] = a
	e.claimOrder = append(e.claimOrder, a.ID)
	return a
}

// IdentifyBias scans content for biases and fallacies and stores the
// finished record.
func (e *Engine) IdentifyBias(content string) *BiasAnalysis {
	a := &BiasAnalysis{
		Content:    content,
		AnalyzedAt: timeNow(),
	}
	identifyBiases(a)
	identifyFallacies(a)
	recommend(a)

	e.mu.Lock()
	defer e.mu.Unlock()
	a.ID = strconv.Itoa(len(e.biases) + 1)
	e.biases[a.ID] = a
	e.biasOrder = append(e.biasOrder, a.ID)
	return a
}

// GetClaim returns a claim analysis by id.
func (e *Engine) GetClaim(id string) (*ClaimAnalysis, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	a, ok := e.claims[id]
	if !ok {
		return nil, fmt.Errorf("claim analysis %q not found", id)
	}
	return a, nil
}

// ListClaims returns claim analyses in creation order.
func (e *Engine) ListClaims() []*ClaimAnalysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*ClaimAnalysis, 0, len(e.claimOrder))
	for _, id := range e.claimOrder {
		out = append(out, e.claims[id])
	}
	return out
}

// ListBiases returns bias analyses in creation order.
func (e *Engine) ListBiases() []*BiasAnalysis {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*BiasAnalysis, 0, len(e.biasOrder))
	for _, id := range e.biasOrder {
		out = append(out, e.biases[id])
	}
	return out
}
