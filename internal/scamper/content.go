package scamper

import "fmt"

// techniqueSummaries are the one-line overviews seeded into a new
// session's notes.
var techniqueSummaries = []string{
	"S - Substitute: generate new ideas by replacing something with something else",
	"C - Combine: create new value by joining two or more elements",
	"A - Adapt: apply ideas from other fields to the current problem",
	"M - Modify: change, enlarge, or shrink what exists to improve it",
	"P - Put to other use: find other purposes or applications",
	"E - Eliminate: simplify by removing unnecessary elements",
	"R - Reverse: explore new possibilities by inverting order or roles",
}

// GuidanceQuestions returns the thinking prompts for a technique.
func GuidanceQuestions(t Technique) []string {
	switch t {
	case Substitute:
		return []string{
			"What could be replaced with something else?",
			"What happens if you change the materials, process, people, or place?",
			"How are similar problems solved elsewhere?",
		}
	case Combine:
		return []string{
			"What could be combined with what?",
			"Can different elements or ideas be merged?",
			"Can several functions be folded into one?",
		}
	case Adapt:
		return []string{
			"Can ideas from other fields be applied?",
			"What can past experience teach here?",
			"Can a mechanism from nature be imitated?",
		}
	case Modify:
		return []string{
			"What could be enlarged or shrunk?",
			"What could be emphasized or toned down?",
			"Can the shape, color, sound, or feel be changed?",
		}
	case PutToOtherUse:
		return []string{
			"Could it serve another purpose?",
			"Could it apply to a different market or audience?",
			"Are there byproducts or derivative uses?",
		}
	case Eliminate:
		return []string{
			"What could be removed?",
			"What could be simplified?",
			"What is truly indispensable?",
		}
	case Reverse:
		return []string{
			"What happens if the order is inverted?",
			"What happens if the roles are swapped?",
			"Is the exact opposite approach possible?",
		}
	}
	return nil
}

// generatedIdeas returns the three canned ideas a comprehensive run
// produces for each technique.
func generatedIdeas(t Technique, topic string) []Idea {
	switch t {
	case Substitute:
		return []Idea{
			{Text: fmt.Sprintf("Replace the main elements of %s with substitutes", topic), Explanation: "May improve cost or efficiency"},
			{Text: "Replace the conventional method with a new approach", Explanation: "Opens an innovation opportunity"},
			{Text: "Replace manual work with automation", Explanation: "Raises efficiency and quality"},
		}
	case Combine:
		return []Idea{
			{Text: fmt.Sprintf("Integrate %s with related services", topic), Explanation: "Offers a one-stop solution"},
			{Text: "Fold several functions into a single platform", Explanation: "Improves convenience and cuts cost"},
			{Text: "Combine different areas of expertise", Explanation: "Creates value through synergy"},
		}
	case Adapt:
		return []Idea{
			{Text: fmt.Sprintf("Apply success stories from other industries to %s", topic), Explanation: "Reuses a proven model"},
			{Text: "Take an approach that imitates a mechanism from nature", Explanation: "Applies biomimetics"},
			{Text: "Apply past experience and knowledge to the current problem", Explanation: "Leverages learning effects"},
		}
	case Modify:
		return []Idea{
			{Text: fmt.Sprintf("Scale %s up substantially", topic), Explanation: "Pursues economies of scale"},
			{Text: "Speed the process up dramatically", Explanation: "Drastically improves efficiency"},
			{Text: "Raise the quality level step by step", Explanation: "Takes a continuous-improvement approach"},
		}
	case PutToOtherUse:
		return []Idea{
			{Text: fmt.Sprintf("Apply %s to a completely different field", topic), Explanation: "Opens a new market"},
			{Text: "Put byproducts and waste to good use", Explanation: "Improves sustainability"},
			{Text: "Use existing skills in a new area", Explanation: "Makes the most of available resources"},
		}
	case Eliminate:
		return []Idea{
			{Text: fmt.Sprintf("Remove unnecessary process steps from %s", topic), Explanation: "Simplification improves efficiency"},
			{Text: "Cut the costly elements", Explanation: "Improves the economics"},
			{Text: "Strip complexity to improve usability", Explanation: "Pursues ease of use"},
		}
	case Reverse:
		return []Idea{
			{Text: fmt.Sprintf("Run the %s process in reverse order", topic), Explanation: "Solves the problem from a new angle"},
			{Text: "Invert the conventional roles", Explanation: "Redistributes authority and responsibility"},
			{Text: "Try the opposite of what customers expect", Explanation: "Creates a differentiation strategy"},
		}
	}
	return nil
}
