package critical

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

// --- classifySource ---

func TestClassifySource(t *testing.T) {
	tests := []struct {
		source string
		want   SourceType
	}{
		{"", SourceUnknown},
		{"https://arxiv.org/abs/1234", SourceAcademic},
		{"https://twitter.com/someone", SourceSocialMedia},
		{"https://www.example.gov/report", SourceGovernment},
		{"https://daily-news.example.com", SourceNewsMedia},
		{"https://medium.com/@dev/post", SourcePersonalBlog},
		{"https://vendor.example.com", SourceCorporate},
	}
	for _, tt := range tests {
		if got := classifySource(tt.source); got != tt.want {
			t.Errorf("classifySource(%q) = %q, want %q", tt.source, got, tt.want)
		}
	}
}

// --- AnalyzeClaim ---

func TestAnalyzeClaim_CounterIDs(t *testing.T) {
	e := NewEngine()
	a := e.AnalyzeClaim("claim one", "")
	b := e.AnalyzeClaim("claim two", "")
	if a.ID != "1" || b.ID != "2" {
		t.Errorf("ids = %q, %q, want \"1\", \"2\"", a.ID, b.ID)
	}
}

func TestAnalyzeClaim_ReliabilityScoring(t *testing.T) {
	e := NewEngine()

	// Academic source + research keyword, no weaknesses: score 4 → high.
	high := e.AnalyzeClaim("The study presents new data", "https://arxiv.org/abs/1")
	if high.Reliability != ReliabilityHigh {
		t.Errorf("academic claim reliability = %q, want high", high.Reliability)
	}

	// Social media + overgeneralization + assertiveness: negative → low.
	low := e.AnalyzeClaim("Everyone absolutely agrees", "https://twitter.com/x")
	if low.Reliability != ReliabilityLow {
		t.Errorf("social claim reliability = %q, want low", low.Reliability)
	}
}

func TestAnalyzeClaim_WeaknessDetection(t *testing.T) {
	e := NewEngine()
	a := e.AnalyzeClaim("I think this always works", "")
	if len(a.Weaknesses) < 2 {
		t.Errorf("weaknesses = %v, want subjective + overgeneralization flags", a.Weaknesses)
	}
	if len(a.Questions) != 4 {
		t.Errorf("standing questions = %d, want 4", len(a.Questions))
	}
}

// --- IdentifyBias ---

func TestIdentifyBias_Bandwagon(t *testing.T) {
	e := NewEngine()
	a := e.IdentifyBias("Everyone is switching, so we should too")

	found := false
	for _, f := range a.Biases {
		if f.Bias == BiasBandwagon {
			found = true
		}
	}
	if !found {
		t.Errorf("biases = %v, want bandwagon detected", a.Biases)
	}
	if len(a.Recommendations) != 4 {
		t.Errorf("recommendations = %d, want 4 when findings exist", len(a.Recommendations))
	}
}

func TestIdentifyBias_CleanContent(t *testing.T) {
	e := NewEngine()
	a := e.IdentifyBias("The report compares three vendors on cost and latency")

	if len(a.Biases) != 0 || len(a.Fallacies) != 0 {
		t.Errorf("unexpected findings: biases=%v fallacies=%v", a.Biases, a.Fallacies)
	}
	if len(a.Recommendations) != 1 {
		t.Errorf("recommendations = %v, want single balanced note", a.Recommendations)
	}
}

func TestIdentifyBias_FalseDilemma(t *testing.T) {
	e := NewEngine()
	a := e.IdentifyBias("It is black or white: adopt the tool or fall behind")
	if len(a.Fallacies) == 0 {
		t.Error("false dilemma not detected")
	}
}

// --- Stores ---

func TestStoresAreIndependent(t *testing.T) {
	e := NewEngine()
	e.AnalyzeClaim("c", "")
	e.IdentifyBias("b")
	e.IdentifyBias("b2")

	if len(e.ListClaims()) != 1 {
		t.Errorf("claim store size = %d, want 1", len(e.ListClaims()))
	}
	if len(e.ListBiases()) != 2 {
		t.Errorf("bias store size = %d, want 2", len(e.ListBiases()))
	}

	if _, err := e.GetClaim("1"); err != nil {
		t.Errorf("GetClaim(1): %v", err)
	}
	if _, err := e.GetClaim("99"); err == nil {
		t.Error("GetClaim(unknown) should fail")
	}
}
