// Package logical builds argument analyses and causal analyses.
//
// Both record kinds are single-shot: classification, validity checks,
// and notes happen at creation and the record never mutates afterward.
package logical

import "time"

// ArgumentType classifies the mode of inference.
type ArgumentType string

const (
	ArgumentDeductive ArgumentType = "deductive"
	ArgumentInductive ArgumentType = "inductive"
	ArgumentAbductive ArgumentType = "abductive"
)

// Structure labels the recognized logical form.
type Structure string

const (
	StructureModusPonens  Structure = "modus ponens"
	StructureModusTollens Structure = "modus tollens"
	StructureSyllogism    Structure = "syllogism"
	StructureCausalChain  Structure = "causal chain"
)

// Assessment is a three-valued verdict: true, false, or undetermined.
type Assessment int

const (
	AssessmentUnknown Assessment = iota
	AssessmentHolds
	AssessmentFails
)

// String renders an assessment for output.
func (a Assessment) String() string {
	switch a {
	case AssessmentHolds:
		return "holds"
	case AssessmentFails:
		return "fails"
	default:
		return "undetermined"
	}
}

// Argument is the stored result of logical_build_argument.
type Argument struct {
	ID         string
	Premises   []string
	Conclusion string
	Type       ArgumentType
	Structure  Structure
	Validity   Assessment
	Soundness  Assessment
	Notes      []string
	CreatedAt  time.Time
}

// RelationType classifies a cause/effect link.
type RelationType string

const (
	RelationDirect      RelationType = "direct causation"
	RelationIndirect    RelationType = "indirect causation"
	RelationCorrelation RelationType = "correlation"
	RelationSpurious    RelationType = "spurious correlation"
)

// CausalLink is one identified cause/effect edge.
type CausalLink struct {
	Cause    string
	Effect   string
	Relation RelationType
}

// CausalAnalysis is the stored result of logical_find_causality.
type CausalAnalysis struct {
	ID              string
	Situation       string
	Factors         []string
	Links           []CausalLink
	PrimaryCauses   []string
	SecondaryCauses []string
	Intervening     []string
	Notes           []string
	CreatedAt       time.Time
}
