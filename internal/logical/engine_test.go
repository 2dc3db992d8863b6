package logical

import (
	"testing"
	"time"
)

func init() {
	// Freeze time for deterministic tests.
	timeNow = func() time.Time {
		return time.Date(2026, 2, 23, 12, 0, 0, 0, time.UTC)
	}
}

// --- classification ---

func TestClassifyArgumentType(t *testing.T) {
	tests := []struct {
		premises   []string
		conclusion string
		want       ArgumentType
	}{
		{[]string{"All humans are mortal", "Socrates is a human"}, "Socrates is mortal", ArgumentDeductive},
		{[]string{"The statistic shows most users churn"}, "New users will probably churn", ArgumentInductive},
		{[]string{"The lawn is wet"}, "Rain is the best explanation", ArgumentAbductive},
		{[]string{"The server restarted"}, "The deploy went out", ArgumentDeductive},
	}
	for _, tt := range tests {
		if got := classifyArgumentType(tt.premises, tt.conclusion); got != tt.want {
			t.Errorf("classifyArgumentType(%v, %q) = %q, want %q", tt.premises, tt.conclusion, got, tt.want)
		}
	}
}

func TestIdentifyStructure(t *testing.T) {
	tests := []struct {
		premises   []string
		conclusion string
		want       Structure
	}{
		{[]string{"if it rains then the ground gets wet", "it rains"}, "the ground gets wet", StructureModusPonens},
		{[]string{"if it rains then the ground gets wet", "the ground is dry"}, "it did not rain", StructureModusTollens},
		{[]string{"latency rose because the cache was cold"}, "warm the cache", StructureCausalChain},
		{[]string{"all A are B", "all B are C"}, "all A are C", StructureSyllogism},
	}
	for _, tt := range tests {
		if got := identifyStructure(tt.premises, tt.conclusion); got != tt.want {
			t.Errorf("identifyStructure(%v, %q) = %q, want %q", tt.premises, tt.conclusion, got, tt.want)
		}
	}
}

// --- BuildArgument ---

func TestBuildArgument_ValidSyllogism(t *testing.T) {
	e := NewEngine()
	a := e.BuildArgument(
		[]string{"All services emit traces", "The gateway is a service"},
		"The gateway emits traces",
	)

	if a.Structure != StructureSyllogism {
		t.Errorf("structure = %q, want syllogism", a.Structure)
	}
	if a.Validity != AssessmentHolds || a.Soundness != AssessmentHolds {
		t.Errorf("validity = %v, soundness = %v, want both holds", a.Validity, a.Soundness)
	}
}

func TestBuildArgument_SinglePremiseFails(t *testing.T) {
	e := NewEngine()
	a := e.BuildArgument([]string{"All tests pass"}, "The build is green")

	if a.Validity != AssessmentFails {
		t.Errorf("validity = %v, want fails for a single-premise syllogism", a.Validity)
	}
	if a.Soundness != AssessmentFails {
		t.Errorf("soundness = %v, want fails when validity fails", a.Soundness)
	}

	hidden := false
	for _, n := range a.Notes {
		if n == "Few premises given. Check for hidden premises" {
			hidden = true
		}
	}
	if !hidden {
		t.Errorf("notes = %v, want hidden-premise warning", a.Notes)
	}
}

func TestBuildArgument_UncheckedStructureUndetermined(t *testing.T) {
	e := NewEngine()
	a := e.BuildArgument(
		[]string{"Revenue dropped because churn rose", "Churn rose last quarter"},
		"Fixing churn restores revenue",
	)

	if a.Structure != StructureCausalChain {
		t.Fatalf("structure = %q, want causal chain", a.Structure)
	}
	if a.Validity != AssessmentUnknown || a.Soundness != AssessmentUnknown {
		t.Errorf("validity = %v, soundness = %v, want both undetermined", a.Validity, a.Soundness)
	}
	if a.Validity.String() != "undetermined" {
		t.Errorf("Assessment.String() = %q", a.Validity.String())
	}
}

// --- FindCausality ---

func TestFindCausality_FactorSplit(t *testing.T) {
	e := NewEngine()
	a := e.FindCausality("deploy frequency dropped", []string{"review backlog", "flaky tests", "oncall load"})

	if len(a.PrimaryCauses) != 2 || a.PrimaryCauses[0] != "review backlog" {
		t.Errorf("primary = %v, want first two factors", a.PrimaryCauses)
	}
	if len(a.SecondaryCauses) != 1 || a.SecondaryCauses[0] != "oncall load" {
		t.Errorf("secondary = %v, want remaining factors", a.SecondaryCauses)
	}
}

func TestFindCausality_DomainCauses(t *testing.T) {
	e := NewEngine()
	a := e.FindCausality("sales fell this quarter", nil)

	if len(a.PrimaryCauses) == 0 || a.PrimaryCauses[0] != "economic conditions" {
		t.Errorf("primary = %v, want economic domain causes", a.PrimaryCauses)
	}
	// No factors and no causal phrasing: both advisory notes appear.
	if len(a.Notes) != 3 {
		t.Errorf("notes = %v, want base note plus two advisories", a.Notes)
	}
}

func TestFindCausality_Links(t *testing.T) {
	e := NewEngine()
	a := e.FindCausality("outage due to expired certificate", []string{"error rate increase"})

	if len(a.Links) != 2 {
		t.Fatalf("links = %v, want direct + correlation", a.Links)
	}
	if a.Links[0].Relation != RelationDirect {
		t.Errorf("first link relation = %q, want direct", a.Links[0].Relation)
	}
	if a.Links[1].Relation != RelationCorrelation || a.Links[1].Cause != "error rate increase" {
		t.Errorf("second link = %+v, want correlation from factor", a.Links[1])
	}
}

func TestFindCausality_Intervening(t *testing.T) {
	e := NewEngine()
	a := e.FindCausality("team performance declined", nil)

	if len(a.Intervening) != 4 {
		t.Errorf("intervening = %v, want execution/consistency plus time/effort", a.Intervening)
	}
}

// --- Stores ---

func TestGetAndList(t *testing.T) {
	e := NewEngine()
	a := e.BuildArgument([]string{"p1", "p2"}, "c")
	e.FindCausality("s", nil)

	got, err := e.GetArgument(a.ID)
	if err != nil || got.ID != a.ID {
		t.Errorf("GetArgument(%q) = %v, %v", a.ID, got, err)
	}
	if _, err := e.GetArgument("missing"); err == nil {
		t.Error("GetArgument(unknown) should fail")
	}
	if len(e.ListArguments()) != 1 || len(e.ListCausal()) != 1 {
		t.Errorf("list sizes = %d, %d, want 1, 1", len(e.ListArguments()), len(e.ListCausal()))
	}
}
