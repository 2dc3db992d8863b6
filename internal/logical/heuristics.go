package logical

import "strings"

// classifyArgumentType buckets the argument by keyword hints across the
// premises and the conclusion. Deductive is the default.
func classifyArgumentType(premises []string, conclusion string) ArgumentType {
	all := joinLower(premises, conclusion)
	switch {
	case containsAny(all, "all ", "every ", "always", "must", "necessarily"):
		return ArgumentDeductive
	case containsAny(all, "probably", "likely", "possibility", "statistic", "most "):
		return ArgumentInductive
	case containsAny(all, "best explanation", "hypothesis", "suspect", "plausible"):
		return ArgumentAbductive
	default:
		return ArgumentDeductive
	}
}

// identifyStructure picks the logical form. Conditional phrasing maps to
// modus ponens, or tollens when the conclusion negates. Causal wording
// maps to a causal chain. Everything else is treated as a syllogism.
func identifyStructure(premises []string, conclusion string) Structure {
	all := joinLower(premises, conclusion)
	switch {
	case strings.Contains(all, "if ") && strings.Contains(all, "then"):
		if strings.Contains(strings.ToLower(conclusion), "not") {
			return StructureModusTollens
		}
		return StructureModusPonens
	case containsAny(all, "cause", "effect", "because"):
		return StructureCausalChain
	default:
		return StructureSyllogism
	}
}

// assessValidity applies the form check. Only modus ponens and syllogism
// have a mechanical check here; the check itself is the premise count.
func assessValidity(a *Argument) Assessment {
	switch a.Structure {
	case StructureModusPonens, StructureSyllogism:
		if len(a.Premises) >= 2 {
			return AssessmentHolds
		}
		return AssessmentFails
	default:
		return AssessmentUnknown
	}
}

// assessSoundness derives from validity. An invalid argument is never
// sound; a valid one is treated as sound since premise truth is assumed.
func assessSoundness(a *Argument) Assessment {
	switch a.Validity {
	case AssessmentFails:
		return AssessmentFails
	case AssessmentHolds:
		return AssessmentHolds
	default:
		return AssessmentUnknown
	}
}

// annotateArgument fills the analysis notes.
func annotateArgument(a *Argument) {
	switch a.Type {
	case ArgumentDeductive:
		a.Notes = append(a.Notes, "Deductive reasoning: if the premises are true the conclusion follows necessarily")
	case ArgumentInductive:
		a.Notes = append(a.Notes, "Inductive reasoning: the premises make the conclusion probable, not certain")
	}
	if a.Validity != AssessmentHolds {
		a.Notes = append(a.Notes, "The logical structure may have gaps")
	}
	if len(a.Premises) == 1 {
		a.Notes = append(a.Notes, "Few premises given. Check for hidden premises")
	}
}

// analyzeCausality fills links, cause tiers, intervening variables, and
// notes on a fresh analysis.
func analyzeCausality(a *CausalAnalysis) {
	situation := strings.ToLower(a.Situation)

	if containsAny(situation, "because of", "due to", "caused by") {
		a.Links = append(a.Links, CausalLink{
			Cause:    "a specific stated factor",
			Effect:   a.Situation,
			Relation: RelationDirect,
		})
	}
	for _, factor := range a.Factors {
		if containsAny(strings.ToLower(factor), "increase", "decrease", "rise", "drop") {
			a.Links = append(a.Links, CausalLink{
				Cause:    factor,
				Effect:   a.Situation,
				Relation: RelationCorrelation,
			})
		}
	}

	// Known domains get canned cause tiers; anything else splits the
	// supplied factors, first two primary, rest secondary.
	switch {
	case containsAny(situation, "econom", "market", "sales"):
		a.PrimaryCauses = append(a.PrimaryCauses, "economic conditions", "market environment")
		a.SecondaryCauses = append(a.SecondaryCauses, "policy changes", "technical innovation")
	case containsAny(situation, "health", "illness"):
		a.PrimaryCauses = append(a.PrimaryCauses, "lifestyle habits", "genetic factors")
		a.SecondaryCauses = append(a.SecondaryCauses, "environmental factors", "stress")
	case containsAny(situation, "education", "learning", "study"):
		a.PrimaryCauses = append(a.PrimaryCauses, "study time", "study methods")
		a.SecondaryCauses = append(a.SecondaryCauses, "environment", "motivation")
	default:
		if len(a.Factors) > 0 {
			a.PrimaryCauses = append(a.PrimaryCauses, a.Factors[:min(2, len(a.Factors))]...)
			if len(a.Factors) > 2 {
				a.SecondaryCauses = append(a.SecondaryCauses, a.Factors[2:]...)
			}
		}
	}

	if containsAny(situation, "result", "outcome", "performance") {
		a.Intervening = append(a.Intervening, "execution capability", "consistency")
	}
	a.Intervening = append(a.Intervening, "time", "effort")

	a.Notes = append(a.Notes, "Establishing causation needs sufficient data and careful analysis")
	if len(a.Factors) == 0 {
		a.Notes = append(a.Notes, "Listing more candidate factors would sharpen the analysis")
	}
	if len(a.Links) == 0 {
		a.Notes = append(a.Notes, "No clear causal link found. More information may be needed")
	}
}

func joinLower(premises []string, conclusion string) string {
	return strings.ToLower(strings.Join(append(append([]string{}, premises...), conclusion), " "))
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
