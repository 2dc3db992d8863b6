package scamper

import (
	"testing"
	"time"
)

func init() {
	// Strictly increasing clock so update ordering is observable.
	current := time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC)
	timeNow = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
}

// --- ParseTechnique ---

func TestParseTechnique(t *testing.T) {
	tests := []struct {
		in   string
		want Technique
	}{
		{"substitute", Substitute},
		{"Substitute", Substitute},
		{"COMBINE", Combine},
		{"put to other use", PutToOtherUse},
		{"put_to_other_use", PutToOtherUse},
		{" reverse ", Reverse},
	}
	for _, tt := range tests {
		got, err := ParseTechnique(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseTechnique(%q) = %q, %v, want %q", tt.in, got, err, tt.want)
		}
	}

	if _, err := ParseTechnique("transmute"); err == nil {
		t.Error("ParseTechnique(invalid) should fail")
	}
}

// --- StartSession ---

func TestStartSession(t *testing.T) {
	e := NewEngine()

	plain := e.StartSession("coffee shop", "slow mornings", "")
	if len(plain.Notes) != 7 {
		t.Errorf("notes = %d, want the 7 technique summaries", len(plain.Notes))
	}

	withCtx := e.StartSession("coffee shop", "slow mornings", "downtown location")
	if len(withCtx.Notes) != 8 || withCtx.Notes[0] != "Background: downtown location" {
		t.Errorf("notes = %v, want background note first", withCtx.Notes)
	}
	if withCtx.ID == plain.ID {
		t.Error("sessions share an id")
	}
}

// --- ApplyTechnique ---

func TestApplyTechnique(t *testing.T) {
	e := NewEngine()
	s := e.StartSession("onboarding flow", "five manual steps", "")

	got, err := e.ApplyTechnique(s.ID, Eliminate,
		[]string{"drop the email confirmation", "merge steps two and three"},
		[]string{"confirmation adds no signal"})
	if err != nil {
		t.Fatalf("ApplyTechnique: %v", err)
	}

	if len(got.Ideas) != 2 {
		t.Fatalf("ideas = %d, want 2", len(got.Ideas))
	}
	if got.Ideas[0].Explanation != "confirmation adds no signal" || got.Ideas[1].Explanation != "" {
		t.Errorf("explanations not paired by index: %q, %q",
			got.Ideas[0].Explanation, got.Ideas[1].Explanation)
	}
	if got.ActiveTechnique != Eliminate {
		t.Errorf("active technique = %q, want Eliminate", got.ActiveTechnique)
	}
	if got.Notes[len(got.Notes)-1] != "Applied the Eliminate technique: generated 2 ideas" {
		t.Errorf("missing application note, notes = %v", got.Notes)
	}
}

func TestApplyTechnique_UnknownSession(t *testing.T) {
	e := NewEngine()
	if _, err := e.ApplyTechnique("nope", Adapt, []string{"x"}, nil); err == nil {
		t.Error("ApplyTechnique(unknown) should fail")
	}
}

func TestApplyTechnique_Accumulates(t *testing.T) {
	e := NewEngine()
	s := e.StartSession("t", "s", "")

	for i := 0; i < 3; i++ {
		if _, err := e.ApplyTechnique(s.ID, Modify, []string{"idea"}, nil); err != nil {
			t.Fatalf("apply %d: %v", i, err)
		}
	}
	got, _ := e.Get(s.ID)
	if len(got.Ideas) != 3 {
		t.Errorf("ideas = %d, want one per application", len(got.Ideas))
	}
}

// --- EvaluateIdeas ---

func TestEvaluateIdeas_FirstMatchWins(t *testing.T) {
	e := NewEngine()
	s := e.StartSession("t", "s", "")
	e.ApplyTechnique(s.ID, Substitute, []string{"same text", "same text", "other"}, nil)

	got, err := e.EvaluateIdeas(s.ID, []Evaluation{
		{Idea: "same text", Feasibility: 7, Impact: 9},
		{Idea: "no such idea", Feasibility: 5, Impact: 5},
	})
	if err != nil {
		t.Fatalf("EvaluateIdeas: %v", err)
	}

	if got.Ideas[0].Feasibility != 7 || got.Ideas[0].Impact != 9 {
		t.Errorf("first match not scored: %+v", got.Ideas[0])
	}
	if got.Ideas[1].Feasibility != 0 || got.Ideas[2].Feasibility != 0 {
		t.Error("later duplicate or unmatched idea was scored")
	}
}

// --- GenerateComprehensive ---

func TestGenerateComprehensive(t *testing.T) {
	e := NewEngine()
	s := e.GenerateComprehensive("delivery routes", "fixed daily schedule", "")

	if len(s.Ideas) != 21 {
		t.Fatalf("ideas = %d, want 3 per technique across 7 techniques", len(s.Ideas))
	}
	counts := s.TechniqueCounts()
	for _, technique := range Techniques {
		if counts[technique] != 3 {
			t.Errorf("count[%s] = %d, want 3", technique, counts[technique])
		}
	}
	if len(s.IdeasFor(Reverse)) != 3 {
		t.Errorf("IdeasFor(Reverse) = %d, want 3", len(s.IdeasFor(Reverse)))
	}
}

// --- Get / List ---

func TestList_NewestUpdatedFirst(t *testing.T) {
	e := NewEngine()
	a := e.StartSession("a", "s", "")
	b := e.StartSession("b", "s", "")

	// Touch the older session; it should move to the front.
	e.ApplyTechnique(a.ID, Combine, []string{"x"}, nil)

	list := e.List()
	if len(list) != 2 || list[0].ID != a.ID || list[1].ID != b.ID {
		t.Errorf("list order = [%s %s], want updated session first", list[0].Topic, list[1].Topic)
	}
}

func TestGet(t *testing.T) {
	e := NewEngine()
	s := e.StartSession("t", "s", "")

	got, err := e.Get(s.ID)
	if err != nil || got.ID != s.ID {
		t.Errorf("Get(%q) = %v, %v", s.ID, got, err)
	}
	if _, err := e.Get("missing"); err == nil {
		t.Error("Get(unknown) should fail")
	}
}
