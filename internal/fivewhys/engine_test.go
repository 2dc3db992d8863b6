package fivewhys

import (
	"fmt"
	"strings"
	"testing"
	"time"
)

func init() {
	// Freeze time for deterministic tests.
	timeNow = func() time.Time {
		return time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC)
	}
}

func TestStart_SeedsFirstQuestion(t *testing.T) {
	e := NewEngine()
	a := e.Start("deploys keep failing", "CI pipeline")

	if len(a.ID) != 8 {
		t.Errorf("id length = %d, want 8", len(a.ID))
	}
	if len(a.Whys) != 1 {
		t.Fatalf("len(Whys) = %d, want 1", len(a.Whys))
	}
	w := a.Whys[0]
	if w.Level != 0 || w.Answered {
		t.Errorf("seed entry = %+v, want level 0 unanswered", w)
	}
	if !strings.Contains(w.Question, "deploys keep failing") {
		t.Errorf("seed question %q does not quote the problem", w.Question)
	}
	if a.Status != StatusActive {
		t.Errorf("status = %q, want active", a.Status)
	}
}

func TestAddAnswer_AppendsNextLevel(t *testing.T) {
	e := NewEngine()
	a := e.Start("P", "")

	got, next, err := e.AddAnswer(a.ID, 0, "r1")
	if err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	if len(got.Whys) != 2 {
		t.Fatalf("len(Whys) = %d, want 2", len(got.Whys))
	}
	if next == nil || next.Level != 1 {
		t.Fatalf("next = %+v, want level 1", next)
	}
	if !strings.Contains(next.Question, "r1") {
		t.Errorf("next question %q does not quote the prior answer", next.Question)
	}
}

func TestAddAnswer_BeyondFrontierFails(t *testing.T) {
	e := NewEngine()
	a := e.Start("P", "")

	_, _, err := e.AddAnswer(a.ID, 1, "too early")
	if err == nil {
		t.Fatal("answering past the frontier should fail")
	}
	if len(a.Whys) != 1 {
		t.Errorf("failed call mutated the chain: len = %d", len(a.Whys))
	}
	if a.Whys[0].Answered {
		t.Error("failed call answered level 0")
	}
}

func TestAddAnswer_DuplicateFails(t *testing.T) {
	e := NewEngine()
	a := e.Start("P", "")

	if _, _, err := e.AddAnswer(a.ID, 0, "original"); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	_, _, err := e.AddAnswer(a.ID, 0, "rewrite")
	if err == nil {
		t.Fatal("re-answering a level should fail")
	}
	if a.Whys[0].Answer != "original" {
		t.Errorf("stored answer changed to %q", a.Whys[0].Answer)
	}
}

func TestAddAnswer_UnknownID(t *testing.T) {
	e := NewEngine()
	if _, _, err := e.AddAnswer("missing", 0, "x"); err == nil {
		t.Fatal("expected error for unknown analysis id")
	}
}

func TestFullChain_CompletesAtLevelFour(t *testing.T) {
	e := NewEngine()
	a := e.Start("P", "")

	for level := 0; level < MaxLevels; level++ {
		got, next, err := e.AddAnswer(a.ID, level, fmt.Sprintf("r%d", level+1))
		if err != nil {
			t.Fatalf("AddAnswer(%d): %v", level, err)
		}
		if level < MaxLevels-1 {
			if next == nil {
				t.Fatalf("level %d: no next question generated", level)
			}
			if got.Status != StatusActive {
				t.Fatalf("level %d: status = %q, want active", level, got.Status)
			}
		} else {
			if next != nil {
				t.Fatalf("level 4 generated a sixth question")
			}
			if got.Status != StatusCompleted {
				t.Fatalf("status after level 4 = %q, want completed", got.Status)
			}
		}
	}

	if len(a.Whys) != MaxLevels {
		t.Errorf("chain length = %d, want %d", len(a.Whys), MaxLevels)
	}

	answers := a.Answers()
	want := []string{"r1", "r2", "r3", "r4", "r5"}
	if len(answers) != len(want) {
		t.Fatalf("Answers() length = %d, want %d", len(answers), len(want))
	}
	for i := range want {
		if answers[i] != want[i] {
			t.Errorf("Answers()[%d] = %q, want %q", i, answers[i], want[i])
		}
	}

	// Terminal: nothing left to answer.
	if _, _, err := e.AddAnswer(a.ID, 4, "again"); err == nil {
		t.Error("re-answering the root cause should fail")
	}
	if _, _, err := e.AddAnswer(a.ID, 5, "sixth"); err == nil {
		t.Error("a sixth level should never be answerable")
	}
}

func TestAnsweredCountAndFrontier(t *testing.T) {
	e := NewEngine()
	a := e.Start("P", "")

	if a.AnsweredCount() != 0 {
		t.Errorf("fresh analysis: answered = %d, want 0", a.AnsweredCount())
	}
	if f := a.Frontier(); f == nil || f.Level != 0 {
		t.Errorf("fresh analysis: frontier = %+v, want level 0", f)
	}
	if _, _, err := e.AddAnswer(a.ID, 0, "r1"); err != nil {
		t.Fatal(err)
	}
	if a.AnsweredCount() != 1 {
		t.Errorf("after one answer: answered = %d, want 1", a.AnsweredCount())
	}
	if f := a.Frontier(); f == nil || f.Level != 1 {
		t.Errorf("after one answer: frontier = %+v, want level 1", f)
	}

	for level := 1; level < MaxLevels; level++ {
		if _, _, err := e.AddAnswer(a.ID, level, "r"); err != nil {
			t.Fatal(err)
		}
	}
	if f := a.Frontier(); f != nil {
		t.Errorf("completed analysis: frontier = %+v, want nil", f)
	}
}

func TestGetAndList(t *testing.T) {
	e := NewEngine()
	a := e.Start("first", "")
	b := e.Start("second", "")

	got, err := e.Get(a.ID)
	if err != nil || got.Problem != "first" {
		t.Fatalf("Get = %v, %v", got, err)
	}
	if _, err := e.Get("nope"); err == nil {
		t.Error("Get(unknown) should fail")
	}

	list := e.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("List() out of creation order")
	}
}
