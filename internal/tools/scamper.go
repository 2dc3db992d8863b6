package tools

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/scamper"
)

// ScamperStartSessionTool handles scamper_start_session.
type ScamperStartSessionTool struct {
	engine *scamper.Engine
}

// NewScamperStartSessionTool creates the tool with the given engine.
func NewScamperStartSessionTool(engine *scamper.Engine) *ScamperStartSessionTool {
	return &ScamperStartSessionTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperStartSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_start_session",
		mcp.WithDescription(
			"Start a SCAMPER creative-thinking session for a topic. Apply "+
				"techniques one at a time with scamper_apply_technique, or run all "+
				"seven at once with scamper_generate_comprehensive.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to generate ideas about."),
		),
		mcp.WithString("current_situation",
			mcp.Required(),
			mcp.Description("The present state the ideas should improve on."),
		),
		mcp.WithString("context",
			mcp.Description("Optional background information."),
		),
	)
}

// Handle processes the scamper_start_session tool call.
func (t *ScamperStartSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	situation := req.GetString("current_situation", "")
	if strings.TrimSpace(topic) == "" || strings.TrimSpace(situation) == "" {
		return mcp.NewToolResultError("'topic' and 'current_situation' are required"), nil
	}

	s := t.engine.StartSession(topic, situation, req.GetString("context", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 SCAMPER session started (ID: %s)\n\n", s.ID)
	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Current situation: %s\n\n", s.CurrentSituation)

	b.WriteString("The seven SCAMPER techniques:\n")
	b.WriteString("• S - Substitute: replace something with something else\n")
	b.WriteString("• C - Combine: join several elements\n")
	b.WriteString("• A - Adapt: apply ideas from elsewhere\n")
	b.WriteString("• M - Modify: change or improve what exists\n")
	b.WriteString("• P - Put to other use: find other applications\n")
	b.WriteString("• E - Eliminate: remove what is unnecessary\n")
	b.WriteString("• R - Reverse: invert order or roles\n\n")

	b.WriteString("How to proceed:\n")
	b.WriteString("• scamper_apply_technique applies one technique with your ideas\n")
	b.WriteString("• scamper_generate_comprehensive applies all techniques at once\n")
	b.WriteString("• scamper_evaluate_ideas scores the generated ideas")

	return mcp.NewToolResultText(b.String()), nil
}

// ScamperApplyTechniqueTool handles scamper_apply_technique.
type ScamperApplyTechniqueTool struct {
	engine *scamper.Engine
}

// NewScamperApplyTechniqueTool creates the tool with the given engine.
func NewScamperApplyTechniqueTool(engine *scamper.Engine) *ScamperApplyTechniqueTool {
	return &ScamperApplyTechniqueTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperApplyTechniqueTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_apply_technique",
		mcp.WithDescription(
			"Record ideas generated with one SCAMPER technique. Technique "+
				"names are case-insensitive; 'put_to_other_use' is accepted for "+
				"'Put to other use'.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session identifier."),
		),
		mcp.WithString("technique",
			mcp.Required(),
			mcp.Description("One of: Substitute, Combine, Adapt, Modify, Put to other use, Eliminate, Reverse."),
		),
		mcp.WithArray("ideas",
			mcp.Required(),
			mcp.Description("The ideas produced with this technique."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("explanations",
			mcp.Description("Optional explanations, paired with ideas by position."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the scamper_apply_technique tool call.
func (t *ScamperApplyTechniqueTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	technique, err := scamper.ParseTechnique(req.GetString("technique", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	ideas := stringListArg(req, "ideas")
	if len(ideas) == 0 {
		return mcp.NewToolResultError("'ideas' is required"), nil
	}

	s, err := t.engine.ApplyTechnique(req.GetString("session_id", ""), technique, ideas, stringListArg(req, "explanations"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "🔧 %s technique applied\n\n", technique)
	fmt.Fprintf(&b, "Session: %s\n\n", s.Topic)

	b.WriteString("Recorded ideas:\n")
	for i, idea := range ideas {
		fmt.Fprintf(&b, "%d. %s\n", i+1, idea)
	}

	fmt.Fprintf(&b, "\n%s thinking guide:\n", technique)
	for _, q := range scamper.GuidanceQuestions(technique) {
		fmt.Fprintf(&b, "• %s\n", q)
	}

	fmt.Fprintf(&b, "\nSession totals: %d ideas across %d techniques.",
		len(s.Ideas), len(s.TechniqueCounts()))

	return mcp.NewToolResultText(b.String()), nil
}

// ScamperEvaluateIdeasTool handles scamper_evaluate_ideas.
type ScamperEvaluateIdeasTool struct {
	engine *scamper.Engine
}

// NewScamperEvaluateIdeasTool creates the tool with the given engine.
func NewScamperEvaluateIdeasTool(engine *scamper.Engine) *ScamperEvaluateIdeasTool {
	return &ScamperEvaluateIdeasTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperEvaluateIdeasTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_evaluate_ideas",
		mcp.WithDescription(
			"Score session ideas on feasibility and impact (0-10 each). "+
				"Evaluations match ideas by exact text; ideas that match nothing "+
				"keep zero scores.",
		),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session identifier."),
		),
		mcp.WithArray("evaluations",
			mcp.Required(),
			mcp.Description("Objects with 'idea' (exact text), 'feasibility' (0-10), and 'impact' (0-10)."),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"idea":        map[string]any{"type": "string"},
					"feasibility": map[string]any{"type": "number"},
					"impact":      map[string]any{"type": "number"},
				},
				"required": []string{"idea"},
			}),
		),
	)
}

// Handle processes the scamper_evaluate_ideas tool call.
func (t *ScamperEvaluateIdeasTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := objectListArg(req, "evaluations")
	if len(raw) == 0 {
		return mcp.NewToolResultError("'evaluations' is required"), nil
	}
	evaluations := make([]scamper.Evaluation, 0, len(raw))
	for _, m := range raw {
		ev := scamper.Evaluation{}
		if s, ok := m["idea"].(string); ok {
			ev.Idea = s
		}
		if f, ok := m["feasibility"].(float64); ok {
			ev.Feasibility = int(f)
		}
		if f, ok := m["impact"].(float64); ok {
			ev.Impact = int(f)
		}
		evaluations = append(evaluations, ev)
	}

	s, err := t.engine.EvaluateIdeas(req.GetString("session_id", ""), evaluations)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// Scored ideas, best combined score first, capped at ten.
	scored := make([]*scamper.Idea, 0, len(s.Ideas))
	for _, idea := range s.Ideas {
		if idea.Feasibility > 0 || idea.Impact > 0 {
			scored = append(scored, idea)
		}
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Feasibility+scored[i].Impact > scored[j].Feasibility+scored[j].Impact
	})
	if len(scored) > 10 {
		scored = scored[:10]
	}

	var b strings.Builder
	b.WriteString("📊 Idea evaluation results\n\n")
	fmt.Fprintf(&b, "Session: %s\n\n", s.Topic)

	b.WriteString("🏆 Scored ideas (by combined feasibility + impact):\n")
	for i, idea := range scored {
		fmt.Fprintf(&b, "%d. %s\n", i+1, idea.Text)
		fmt.Fprintf(&b, "   Technique: %s\n", idea.Technique)
		fmt.Fprintf(&b, "   Feasibility: %d/10, Impact: %d/10, Combined: %d/20\n",
			idea.Feasibility, idea.Impact, idea.Feasibility+idea.Impact)
		if idea.Explanation != "" {
			fmt.Fprintf(&b, "   Explanation: %s\n", idea.Explanation)
		}
	}

	// Average combined score per technique, over scored ideas only.
	sums := make(map[scamper.Technique]int)
	counts := make(map[scamper.Technique]int)
	for _, idea := range scored {
		sums[idea.Technique] += idea.Feasibility + idea.Impact
		counts[idea.Technique]++
	}
	if len(counts) > 0 {
		b.WriteString("\nAverage combined score per technique:\n")
		for _, technique := range scamper.Techniques {
			if counts[technique] == 0 {
				continue
			}
			avg := float64(sums[technique]) / float64(counts[technique])
			fmt.Fprintf(&b, "• %s: %.1f/20\n", technique, avg)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ScamperGetSessionTool handles scamper_get_session.
type ScamperGetSessionTool struct {
	engine *scamper.Engine
}

// NewScamperGetSessionTool creates the tool with the given engine.
func NewScamperGetSessionTool(engine *scamper.Engine) *ScamperGetSessionTool {
	return &ScamperGetSessionTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperGetSessionTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_get_session",
		mcp.WithDescription("Show a SCAMPER session: idea counts per technique and the latest ideas."),
		mcp.WithString("session_id",
			mcp.Required(),
			mcp.Description("The session identifier."),
		),
	)
}

// Handle processes the scamper_get_session tool call.
func (t *ScamperGetSessionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s, err := t.engine.Get(req.GetString("session_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "📋 SCAMPER session (ID: %s)\n\n", s.ID)
	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Current situation: %s\n", s.CurrentSituation)
	fmt.Fprintf(&b, "Created: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Updated: %s\n\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))

	counts := s.TechniqueCounts()
	b.WriteString("Ideas per technique:\n")
	for _, technique := range scamper.Techniques {
		if counts[technique] > 0 {
			fmt.Fprintf(&b, "• %s: %d\n", technique, counts[technique])
		}
	}
	fmt.Fprintf(&b, "\nTotal ideas: %d\n", len(s.Ideas))

	if len(s.Ideas) > 0 {
		latest := s.Ideas
		if len(latest) > 5 {
			latest = latest[len(latest)-5:]
		}
		b.WriteString("\nLatest ideas:\n")
		for i := len(latest) - 1; i >= 0; i-- {
			idea := latest[i]
			fmt.Fprintf(&b, "• %s (%s)\n", idea.Text, idea.Technique)
			if idea.Explanation != "" {
				fmt.Fprintf(&b, "  Explanation: %s\n", idea.Explanation)
			}
		}
	}

	if len(s.Notes) > 0 {
		recent := s.Notes
		if len(recent) > 3 {
			recent = recent[len(recent)-3:]
		}
		b.WriteString("\nSession notes:\n")
		for _, n := range recent {
			fmt.Fprintf(&b, "• %s\n", n)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ScamperListSessionsTool handles scamper_list_sessions.
type ScamperListSessionsTool struct {
	engine *scamper.Engine
}

// NewScamperListSessionsTool creates the tool with the given engine.
func NewScamperListSessionsTool(engine *scamper.Engine) *ScamperListSessionsTool {
	return &ScamperListSessionsTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperListSessionsTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_list_sessions",
		mcp.WithDescription("List all SCAMPER sessions, most recently updated first."),
	)
}

// Handle processes the scamper_list_sessions tool call.
func (t *ScamperListSessionsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sessions := t.engine.List()
	if len(sessions) == 0 {
		return mcp.NewToolResultText("There are no SCAMPER sessions yet."), nil
	}

	var b strings.Builder
	b.WriteString("SCAMPER sessions:\n\n")
	for _, s := range sessions {
		fmt.Fprintf(&b, "Session ID: %s\n", s.ID)
		fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
		fmt.Fprintf(&b, "Ideas: %d\n", len(s.Ideas))
		fmt.Fprintf(&b, "Created: %s\n", s.CreatedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(&b, "Updated: %s\n", s.UpdatedAt.Format("2006-01-02 15:04:05"))
		b.WriteString(strings.Repeat("─", 50) + "\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// ScamperGenerateComprehensiveTool handles scamper_generate_comprehensive.
type ScamperGenerateComprehensiveTool struct {
	engine *scamper.Engine
}

// NewScamperGenerateComprehensiveTool creates the tool with the given engine.
func NewScamperGenerateComprehensiveTool(engine *scamper.Engine) *ScamperGenerateComprehensiveTool {
	return &ScamperGenerateComprehensiveTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *ScamperGenerateComprehensiveTool) Definition() mcp.Tool {
	return mcp.NewTool("scamper_generate_comprehensive",
		mcp.WithDescription(
			"Open a new session and generate starter ideas with all seven "+
				"SCAMPER techniques at once, three ideas per technique.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to generate ideas about."),
		),
		mcp.WithString("current_situation",
			mcp.Required(),
			mcp.Description("The present state the ideas should improve on."),
		),
		mcp.WithString("context",
			mcp.Description("Optional background information."),
		),
	)
}

// Handle processes the scamper_generate_comprehensive tool call.
func (t *ScamperGenerateComprehensiveTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	situation := req.GetString("current_situation", "")
	if strings.TrimSpace(topic) == "" || strings.TrimSpace(situation) == "" {
		return mcp.NewToolResultError("'topic' and 'current_situation' are required"), nil
	}

	s := t.engine.GenerateComprehensive(topic, situation, req.GetString("context", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "🎯 Comprehensive SCAMPER ideas (ID: %s)\n\n", s.ID)
	fmt.Fprintf(&b, "Topic: %s\n", s.Topic)
	fmt.Fprintf(&b, "Current situation: %s\n\n", s.CurrentSituation)

	for _, technique := range scamper.Techniques {
		ideas := s.IdeasFor(technique)
		if len(ideas) == 0 {
			continue
		}
		fmt.Fprintf(&b, "🔧 %s ideas:\n", technique)
		for i, idea := range ideas {
			fmt.Fprintf(&b, "   %d. %s\n", i+1, idea.Text)
			if idea.Explanation != "" {
				fmt.Fprintf(&b, "      Explanation: %s\n", idea.Explanation)
			}
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Totals: %d ideas across %d techniques.\n\n", len(s.Ideas), len(scamper.Techniques))
	b.WriteString("Next steps:\n")
	b.WriteString("• Score the ideas with scamper_evaluate_ideas\n")
	b.WriteString("• Examine the promising ones in detail\n")
	b.WriteString("• Combine several ideas into a stronger solution")

	return mcp.NewToolResultText(b.String()), nil
}
