package stepwise

import "strings"

// ProblemCategory selects which step template a plan is built from.
type ProblemCategory string

const (
	CategoryProgramming    ProblemCategory = "programming"
	CategoryLearning       ProblemCategory = "learning"
	CategoryProblemSolving ProblemCategory = "problem-solving"
	CategoryGeneric        ProblemCategory = "generic"
)

// Categorize picks a template by substring matching against the
// problem text. The matching is deliberately shallow — no NLU.
func Categorize(problem string) ProblemCategory {
	p := strings.ToLower(problem)
	switch {
	case containsAny(p, "program", "code", "develop", "software", "implement"):
		return CategoryProgramming
	case containsAny(p, "learn", "study"):
		return CategoryLearning
	case containsAny(p, "problem", "issue", "solve"):
		return CategoryProblemSolving
	default:
		return CategoryGeneric
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

// stepTemplate is a (description, expected outcome) pair.
type stepTemplate struct {
	description string
	outcome     string
}

var stepTemplates = map[ProblemCategory][]stepTemplate{
	CategoryProgramming: {
		{"Clarify and analyze the requirements", "Concrete functional requirements and constraints identified"},
		{"Evaluate the design and architecture", "System structure and implementation approach decided"},
		{"Prepare the development environment", "Required tools and libraries verified and set up"},
		{"Implement the core functionality", "The most important functionality implemented"},
		{"Test and debug", "Behavior verified and defects fixed"},
		{"Polish and optimize", "Performance improved and code cleaned up"},
	},
	CategoryLearning: {
		{"Set the learning goal", "A clear, measurable learning goal defined"},
		{"Assess current knowledge", "Existing knowledge and gaps identified"},
		{"Draft a learning plan", "An efficient learning order and schedule laid out"},
		{"Acquire the fundamentals", "Required base concepts understood"},
		{"Practice hands-on", "Knowledge applied in realistic exercises"},
		{"Review and consolidate", "Material revisited and retention confirmed"},
	},
	CategoryProblemSolving: {
		{"Define the problem", "The essence and scope of the problem pinned down"},
		{"Gather information and analyze the current state", "Relevant information collected and the situation understood in detail"},
		{"Identify the causes", "Root causes of the problem analyzed"},
		{"Explore solutions", "Multiple candidate solutions drafted and compared"},
		{"Pick and execute the best option", "The most suitable solution carried out"},
		{"Evaluate the outcome and adjust", "Results assessed and improvements applied where needed"},
	},
	CategoryGeneric: {
		{"Set the goal", "The target outcome made explicit"},
		{"Understand the current state", "Present situation and obstacles laid out"},
		{"Draft the plan", "A concrete plan toward the goal"},
		{"Execute", "Actions carried out according to the plan"},
		{"Check and adjust", "Progress reviewed and the plan corrected where needed"},
		{"Wrap up and reflect", "Goal confirmed and lessons captured"},
	},
}

// buildSteps generates the fixed step list for a problem. Every plan
// gets exactly six steps, all starting pending with no result.
func buildSteps(problem string) []*Step {
	templates := stepTemplates[Categorize(problem)]
	steps := make([]*Step, len(templates))
	for i, tmpl := range templates {
		steps[i] = &Step{
			Number:          i + 1,
			Description:     tmpl.description,
			ExpectedOutcome: tmpl.outcome,
			Status:          StatusPending,
		}
	}
	return steps
}
