package mece

import (
	"fmt"
	"strings"
)

// overlapHints lists keyword pairs that usually name the same thing.
var overlapHints = [][2]string{
	{"technology", "engineering"},
	{"people", "talent"},
	{"organization", "team"},
	{"finance", "financial"},
	{"marketing", "sales"},
	{"customer", "client"},
}

// customerTiers never overlap even though each contains "customer".
var customerTiers = [][2]string{
	{"existing customer", "new customer"},
	{"existing customer", "potential customer"},
	{"new customer", "potential customer"},
}

// gapFrameworks maps a topic keyword to the categories a complete
// breakdown of that topic is expected to carry. First match wins.
var gapFrameworks = []struct {
	keyword  string
	expected []string
}{
	{"business", []string{"strategy", "organization", "process", "technology", "finance"}},
	{"marketing", []string{"product", "price", "place", "promotion"}},
	{"organization", []string{"talent", "process", "technology", "structure"}},
	{"problem", []string{"people", "process", "technology", "environment"}},
	{"time", []string{"past", "present", "future"}},
	{"scope", []string{"internal", "external"}},
	{"customer", []string{"existing customers", "new customers", "potential customers"}},
}

// categoryProfiles supplies canned descriptions and member items for
// well-known category names.
var categoryProfiles = []struct {
	keyword     string
	description string
	items       []string
}{
	{"strategy", "Elements concerning direction and planning", []string{"vision", "goals", "plans"}},
	{"organization", "Elements concerning structure and governance", []string{"org chart", "roles", "authority"}},
	{"process", "Elements concerning procedures and workflows", []string{"procedures", "flows", "rules"}},
	{"technology", "Elements concerning systems and tooling", []string{"systems", "tools", "infrastructure"}},
	{"finance", "Elements concerning funding and revenue", []string{"budget", "revenue", "cost"}},
	{"talent", "Elements concerning human resources", []string{"skills", "experience", "motivation"}},
	{"customer", "Elements concerning customers and the market", []string{"needs", "satisfaction", "segments"}},
	{"product", "Elements concerning goods and services", []string{"features", "quality", "lineup"}},
}

const maxGaps = 3

// describeCategory returns the canned description for a known name or a
// generic one tied to the topic.
func describeCategory(name, topic string) string {
	lower := strings.ToLower(name)
	for _, p := range categoryProfiles {
		if strings.Contains(lower, p.keyword) {
			return p.description
		}
	}
	return fmt.Sprintf("The %s aspect of %s", name, topic)
}

// estimateItems returns likely member items for a known category name.
func estimateItems(name string) []string {
	lower := strings.ToLower(name)
	for _, p := range categoryProfiles {
		if strings.Contains(lower, p.keyword) {
			return append([]string(nil), p.items...)
		}
	}
	return nil
}

// categoriesOverlap reports whether two category names likely cover the
// same ground.
func categoriesOverlap(a, b Category) bool {
	n1 := strings.ToLower(a.Name)
	n2 := strings.ToLower(b.Name)

	for _, tier := range customerTiers {
		if (strings.Contains(n1, tier[0]) && strings.Contains(n2, tier[1])) ||
			(strings.Contains(n1, tier[1]) && strings.Contains(n2, tier[0])) {
			return false
		}
	}
	for _, hint := range overlapHints {
		if (strings.Contains(n1, hint[0]) && strings.Contains(n2, hint[1])) ||
			(strings.Contains(n1, hint[1]) && strings.Contains(n2, hint[0])) {
			return true
		}
	}

	common := 0
	for _, item := range a.Items {
		for _, other := range b.Items {
			if item == other {
				common++
			}
		}
	}
	return common > 1
}

// findOverlaps checks every category pair.
func findOverlaps(categories []Category) []OverlapPair {
	var overlaps []OverlapPair
	for i, a := range categories {
		for _, b := range categories[i+1:] {
			if categoriesOverlap(a, b) {
				overlaps = append(overlaps, OverlapPair{First: a.Name, Second: b.Name})
			}
		}
	}
	return overlaps
}

// findGaps compares the categories against the expected set for the
// first framework whose keyword appears in the topic. Capped at three.
func findGaps(topic string, categories []Category) []string {
	topicLower := strings.ToLower(topic)

	var gaps []string
	for _, fw := range gapFrameworks {
		if !strings.Contains(topicLower, fw.keyword) {
			continue
		}
		for _, expected := range fw.expected {
			present := false
			for _, c := range categories {
				if strings.Contains(strings.ToLower(c.Name), expected) {
					present = true
					break
				}
			}
			if !present {
				gaps = append(gaps, expected)
			}
		}
		break
	}
	if len(gaps) > maxGaps {
		gaps = gaps[:maxGaps]
	}
	return gaps
}

// suggestImprovements fills suggestions based on the verdict.
func suggestImprovements(a *Analysis) {
	switch a.Violation {
	case ViolationOverlap:
		a.Suggestions = append(a.Suggestions, "Merge overlapping categories or draw a clear line between them")
		for _, o := range a.Overlaps {
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("Clarify the boundary between %q and %q", o.First, o.Second))
		}
	case ViolationGap:
		a.Suggestions = append(a.Suggestions, "Add the missing categories to improve coverage")
		for _, g := range a.Gaps {
			a.Suggestions = append(a.Suggestions, fmt.Sprintf("Consider adding a %q category", g))
		}
	case ViolationBoth:
		a.Suggestions = append(a.Suggestions,
			"Resolve the overlaps and fill the gaps together",
			"Consider rebuilding the category set from scratch",
		)
	case ViolationNone:
		a.Suggestions = append(a.Suggestions, "The breakdown conforms to the MECE principle. Consider fine adjustments")
	}
}

// suggestStructure returns the categories the named framework proposes
// for a topic. "auto" picks by topic keywords.
func suggestStructure(topic, framework string) []string {
	switch framework {
	case "4P":
		return []string{"Product", "Price", "Place", "Promotion"}
	case "3C":
		return []string{"Customer", "Competitor", "Company"}
	case "SWOT":
		return []string{"Strengths", "Weaknesses", "Opportunities", "Threats"}
	case "timeline":
		return []string{"Past", "Present", "Future"}
	case "internal-external":
		return []string{"Internal factors", "External factors"}
	}

	topicLower := strings.ToLower(topic)
	switch {
	case containsAny(topicLower, "business", "company", "management"):
		return []string{"Strategy", "Organization", "Process", "Technology", "Finance"}
	case containsAny(topicLower, "marketing", "sales"):
		return []string{"Product", "Price", "Place", "Promotion"}
	case containsAny(topicLower, "organization", "team"):
		return []string{"Talent", "Process", "Technology", "Structure"}
	case containsAny(topicLower, "problem", "issue"):
		return []string{"People factors", "Process factors", "Technology factors", "Environment factors"}
	default:
		return []string{"Category A", "Category B", "Category C", "Other"}
	}
}

// annotate fills the analysis notes.
func annotate(a *Analysis) {
	a.Notes = append(a.Notes, "MECE analysis is an effective framework for logical structuring")
	if len(a.Input) < 3 {
		a.Notes = append(a.Notes, "The category count looks low. Check coverage")
	} else if len(a.Input) > 7 {
		a.Notes = append(a.Notes, "The category count looks high. Consider grouping")
	}
	if a.Violation != ViolationNone && a.Violation != "" {
		a.Notes = append(a.Notes, "Fixing the MECE violations would make the classification more effective")
	}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
