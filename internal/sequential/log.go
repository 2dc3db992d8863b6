package sequential

import "sync"

// Result is the JSON payload returned after recording a thought.
type Result struct {
	ThoughtNumber        int      `json:"thought_number"`
	TotalThoughts        int      `json:"total_thoughts"`
	NextThoughtNeeded    bool     `json:"next_thought_needed"`
	Branches             []string `json:"branches"`
	ThoughtHistoryLength int      `json:"thought_history_length"`
	Status               string   `json:"status"`
}

// ErrorResult is the JSON payload returned when validation fails.
type ErrorResult struct {
	Error  string `json:"error"`
	Status string `json:"status"`
}

// Log is the thought history plus per-branch sublists. Branch order is
// first-seen order.
type Log struct {
	mu          sync.Mutex
	history     []Thought
	branches    map[string][]Thought
	branchOrder []string
}

// NewLog creates an empty log.
func NewLog() *Log {
	return &Log{branches: make(map[string][]Thought)}
}

// Record validates and appends a thought. A thought number past the
// declared total raises the total; the total is never lowered. Returns
// the result snapshot taken under the same lock.
func (l *Log) Record(t Thought, hasNext bool) (Result, error) {
	if err := validate(t, hasNext); err != nil {
		return Result{}, err
	}
	if t.ThoughtNumber > t.TotalThoughts {
		t.TotalThoughts = t.ThoughtNumber
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.history = append(l.history, t)
	if t.BranchFromThought > 0 && t.BranchID != "" {
		if _, ok := l.branches[t.BranchID]; !ok {
			l.branchOrder = append(l.branchOrder, t.BranchID)
		}
		l.branches[t.BranchID] = append(l.branches[t.BranchID], t)
	}

	return Result{
		ThoughtNumber:        t.ThoughtNumber,
		TotalThoughts:        t.TotalThoughts,
		NextThoughtNeeded:    t.NextThoughtNeeded,
		Branches:             append(make([]string, 0, len(l.branchOrder)), l.branchOrder...),
		ThoughtHistoryLength: len(l.history),
		Status:               "success",
	}, nil
}

// History returns a copy of the full thought history.
func (l *Log) History() []Thought {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Thought(nil), l.history...)
}

// Branch returns a copy of one branch's thoughts.
func (l *Log) Branch(id string) []Thought {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Thought(nil), l.branches[id]...)
}

// BranchIDs returns branch ids in first-seen order.
func (l *Log) BranchIDs() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.branchOrder...)
}

// Clear drops the history and all branches.
func (l *Log) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.history = nil
	l.branches = make(map[string][]Thought)
	l.branchOrder = nil
}
