// Package scamper runs creative-thinking sessions over the seven
// SCAMPER techniques. Sessions accumulate ideas without bound and have
// no terminal state.
package scamper

import (
	"fmt"
	"strings"
	"time"
)

// Technique is one of the seven SCAMPER lenses. The set is closed.
type Technique string

const (
	Substitute    Technique = "Substitute"
	Combine       Technique = "Combine"
	Adapt         Technique = "Adapt"
	Modify        Technique = "Modify"
	PutToOtherUse Technique = "Put to other use"
	Eliminate     Technique = "Eliminate"
	Reverse       Technique = "Reverse"
)

// Techniques lists all seven in canonical S-C-A-M-P-E-R order.
var Techniques = []Technique{
	Substitute, Combine, Adapt, Modify, PutToOtherUse, Eliminate, Reverse,
}

// ParseTechnique resolves a caller-supplied technique name, accepting
// the canonical names plus common aliases, case-insensitively.
func ParseTechnique(name string) (Technique, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "substitute":
		return Substitute, nil
	case "combine":
		return Combine, nil
	case "adapt":
		return Adapt, nil
	case "modify":
		return Modify, nil
	case "put to other use", "put_to_other_use":
		return PutToOtherUse, nil
	case "eliminate":
		return Eliminate, nil
	case "reverse":
		return Reverse, nil
	}
	return "", fmt.Errorf("invalid technique %q, valid techniques: %s", name, techniqueNames())
}

func techniqueNames() string {
	names := make([]string, len(Techniques))
	for i, t := range Techniques {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// Idea is one generated idea. Scores stay zero until an evaluation
// matches the idea text.
type Idea struct {
	ID          string
	Technique   Technique
	Text        string
	Explanation string
	Feasibility int // 0-10
	Impact      int // 0-10
	CreatedAt   time.Time
}

// Session is one SCAMPER working session.
type Session struct {
	ID               string
	Topic            string
	CurrentSituation string
	Ideas            []*Idea
	ActiveTechnique  Technique
	Notes            []string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TechniqueCounts tallies ideas per technique in canonical order,
// skipping techniques with none.
func (s *Session) TechniqueCounts() map[Technique]int {
	counts := make(map[Technique]int)
	for _, idea := range s.Ideas {
		counts[idea.Technique]++
	}
	return counts
}

// IdeasFor returns the session's ideas for one technique, in the order
// they were added.
func (s *Session) IdeasFor(t Technique) []*Idea {
	var out []*Idea
	for _, idea := range s.Ideas {
		if idea.Technique == t {
			out = append(out, idea)
		}
	}
	return out
}

// Evaluation is one caller-supplied score pair for an idea, matched by
// exact idea text.
type Evaluation struct {
	Idea        string
	Feasibility int
	Impact      int
}
