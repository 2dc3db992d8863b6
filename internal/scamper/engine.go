package scamper

import (
	"fmt"
	"sort"
	"sync"

	"github.com/yuyat/thoughtflow/internal/ident"
)

// Engine owns the session registry.
type Engine struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

// NewEngine creates an empty registry.
func NewEngine() *Engine {
	return &Engine{sessions: make(map[string]*Session)}
}

// StartSession opens a new session seeded with the technique summaries.
// Context, when given, lands in the session notes.
func (e *Engine) StartSession(topic, currentSituation, context string) *Session {
	now := timeNow()
	s := &Session{
		ID:               ident.New(),
		Topic:            topic,
		CurrentSituation: currentSituation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if context != "" {
		s.Notes = append(s.Notes, "Background: "+context)
	}
	s.Notes = append(s.Notes, techniqueSummaries...)

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[s.ID] = s
	return s
}

// ApplyTechnique appends one idea per entry in ideas, paired with
// explanations by index. Missing explanations become empty strings.
func (e *Engine) ApplyTechnique(sessionID string, technique Technique, ideas, explanations []string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %q not found", sessionID)
	}

	s.ActiveTechnique = technique
	now := timeNow()
	for i, text := range ideas {
		explanation := ""
		if i < len(explanations) {
			explanation = explanations[i]
		}
		s.Ideas = append(s.Ideas, &Idea{
			ID:          ident.New(),
			Technique:   technique,
			Text:        text,
			Explanation: explanation,
			CreatedAt:   now,
		})
	}
	s.UpdatedAt = now
	s.Notes = append(s.Notes, fmt.Sprintf("Applied the %s technique: generated %d ideas", technique, len(ideas)))
	return s, nil
}

// EvaluateIdeas scores ideas by exact text match. Each evaluation
// scores the first idea whose text matches; unmatched evaluations are
// dropped silently and unmatched ideas keep zero scores.
func (e *Engine) EvaluateIdeas(sessionID string, evaluations []Evaluation) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[sessionID]
	if !ok {
		return nil, fmt.Errorf("session %q not found", sessionID)
	}

	for _, ev := range evaluations {
		for _, idea := range s.Ideas {
			if idea.Text == ev.Idea {
				idea.Feasibility = ev.Feasibility
				idea.Impact = ev.Impact
				break
			}
		}
	}
	s.UpdatedAt = timeNow()
	s.Notes = append(s.Notes, fmt.Sprintf("Completed idea evaluation: %d ideas scored", len(evaluations)))
	return s, nil
}

// GenerateComprehensive opens a new session and fills it with the
// canned ideas of all seven techniques, three per technique.
func (e *Engine) GenerateComprehensive(topic, currentSituation, context string) *Session {
	now := timeNow()
	s := &Session{
		ID:               ident.New(),
		Topic:            topic,
		CurrentSituation: currentSituation,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if context != "" {
		s.Notes = append(s.Notes, "Background: "+context)
	}
	for _, t := range Techniques {
		for _, idea := range generatedIdeas(t, topic) {
			idea.ID = ident.New()
			idea.Technique = t
			idea.CreatedAt = now
			stored := idea
			s.Ideas = append(s.Ideas, &stored)
		}
	}
	s.Notes = append(s.Notes, "Completed comprehensive idea generation across all SCAMPER techniques")

	e.mu.Lock()
	defer e.mu.Unlock()
	e.sessions[s.ID] = s
	return s
}

// Get returns a session by id.
func (e *Engine) Get(id string) (*Session, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	s, ok := e.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %q not found", id)
	}
	return s, nil
}

// List returns sessions newest-updated first.
func (e *Engine) List() []*Session {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make([]*Session, 0, len(e.sessions))
	for _, s := range e.sessions {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UpdatedAt.Equal(out[j].UpdatedAt) {
			return out[i].UpdatedAt.After(out[j].UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}
