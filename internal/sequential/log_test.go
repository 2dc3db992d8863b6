package sequential

import (
	"errors"
	"testing"
)

func thought(n, total int) Thought {
	return Thought{
		Thought:           "t",
		ThoughtNumber:     n,
		TotalThoughts:     total,
		NextThoughtNeeded: true,
	}
}

// --- validation ---

func TestRecord_Validation(t *testing.T) {
	l := NewLog()

	tests := []struct {
		name    string
		in      Thought
		hasNext bool
		want    error
	}{
		{"empty thought", Thought{ThoughtNumber: 1, TotalThoughts: 1}, true, errThought},
		{"zero number", Thought{Thought: "x", TotalThoughts: 1}, true, errThoughtNumber},
		{"zero total", Thought{Thought: "x", ThoughtNumber: 1}, true, errTotalThoughts},
		{"missing next flag", Thought{Thought: "x", ThoughtNumber: 1, TotalThoughts: 1}, false, errNextThoughtNeeded},
	}
	for _, tt := range tests {
		if _, err := l.Record(tt.in, tt.hasNext); !errors.Is(err, tt.want) {
			t.Errorf("%s: err = %v, want %v", tt.name, err, tt.want)
		}
	}

	// Rejected thoughts never reach the history.
	if len(l.History()) != 0 {
		t.Errorf("history = %d after rejected records, want 0", len(l.History()))
	}
}

// --- totals ---

func TestRecord_RaisesTotalNeverLowers(t *testing.T) {
	l := NewLog()

	res, err := l.Record(thought(5, 3), true)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if res.TotalThoughts != 5 {
		t.Errorf("total = %d, want raised to the thought number", res.TotalThoughts)
	}

	res, _ = l.Record(thought(2, 10), true)
	if res.TotalThoughts != 10 {
		t.Errorf("total = %d, want declared total kept when ahead", res.TotalThoughts)
	}
}

func TestRecord_HistoryLength(t *testing.T) {
	l := NewLog()
	for i := 1; i <= 4; i++ {
		res, err := l.Record(thought(i, 4), true)
		if err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
		if res.ThoughtHistoryLength != i {
			t.Errorf("history length = %d, want %d", res.ThoughtHistoryLength, i)
		}
		if res.Status != "success" {
			t.Errorf("status = %q", res.Status)
		}
	}
}

// --- branches ---

func TestRecord_Branches(t *testing.T) {
	l := NewLog()
	l.Record(thought(1, 3), true)

	branch := thought(2, 3)
	branch.BranchFromThought = 1
	branch.BranchID = "alt-1"
	res, err := l.Record(branch, true)
	if err != nil {
		t.Fatalf("Record branch: %v", err)
	}
	if len(res.Branches) != 1 || res.Branches[0] != "alt-1" {
		t.Errorf("branches = %v, want [alt-1]", res.Branches)
	}

	branch.ThoughtNumber = 3
	l.Record(branch, true)

	if got := l.Branch("alt-1"); len(got) != 2 {
		t.Errorf("branch members = %d, want 2", len(got))
	}
	if got := l.History(); len(got) != 3 {
		t.Errorf("history = %d, branch thoughts belong to the main history too", len(got))
	}
}

func TestRecord_BranchNeedsBothFields(t *testing.T) {
	l := NewLog()

	half := thought(1, 1)
	half.BranchFromThought = 1 // no BranchID
	l.Record(half, true)

	if len(l.BranchIDs()) != 0 {
		t.Errorf("branches = %v, want none without a branch id", l.BranchIDs())
	}
}

// --- clear ---

func TestClear(t *testing.T) {
	l := NewLog()
	l.Record(thought(1, 1), true)
	b := thought(2, 2)
	b.BranchFromThought = 1
	b.BranchID = "x"
	l.Record(b, true)

	l.Clear()

	if len(l.History()) != 0 || len(l.BranchIDs()) != 0 {
		t.Error("Clear left state behind")
	}
	res, _ := l.Record(thought(1, 1), true)
	if res.ThoughtHistoryLength != 1 {
		t.Errorf("history length after clear = %d, want 1", res.ThoughtHistoryLength)
	}
}
