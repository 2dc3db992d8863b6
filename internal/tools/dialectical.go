package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/dialectical"
)

// DialecticalStartTool handles dialectical_start_process.
type DialecticalStartTool struct {
	engine *dialectical.Engine
}

// NewDialecticalStartTool creates the tool with the given engine.
func NewDialecticalStartTool(engine *dialectical.Engine) *DialecticalStartTool {
	return &DialecticalStartTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalStartTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_start_process",
		mcp.WithDescription(
			"Start a dialectical thinking process for a topic. The process "+
				"advances thesis, then antithesis, then synthesis, each through "+
				"its own tool call.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to examine dialectically."),
		),
		mcp.WithString("context",
			mcp.Description("Optional background for the topic."),
		),
	)
}

// Handle processes the dialectical_start_process tool call.
func (t *DialecticalStartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	if strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("'topic' is required"), nil
	}

	proc := t.engine.Start(topic, req.GetString("context", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "Dialectical process started (ID: %s)\n\n", proc.ID)
	fmt.Fprintf(&b, "Topic: %s\n", proc.Topic)
	if proc.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", proc.Context)
	}
	b.WriteString("\nThe dialectical method proceeds in three movements:\n")
	b.WriteString("1. Thesis: state a position\n")
	b.WriteString("2. Antithesis: state the opposing position\n")
	b.WriteString("3. Synthesis: integrate both into a higher understanding\n\n")
	fmt.Fprintf(&b, "Next step: set the thesis with %s.", proc.NextStep())

	return mcp.NewToolResultText(b.String()), nil
}

// DialecticalSetThesisTool handles dialectical_set_thesis.
type DialecticalSetThesisTool struct {
	engine *dialectical.Engine
}

// NewDialecticalSetThesisTool creates the tool with the given engine.
func NewDialecticalSetThesisTool(engine *dialectical.Engine) *DialecticalSetThesisTool {
	return &DialecticalSetThesisTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalSetThesisTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_set_thesis",
		mcp.WithDescription(
			"Set the thesis of a dialectical process. Calling this again "+
				"before the antithesis is set replaces the thesis.",
		),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("The process identifier."),
		),
		mcp.WithString("thesis",
			mcp.Required(),
			mcp.Description("The position being asserted."),
		),
		mcp.WithArray("evidence",
			mcp.Description("Supporting evidence for the thesis."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the dialectical_set_thesis tool call.
func (t *DialecticalSetThesisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	thesis := req.GetString("thesis", "")
	if strings.TrimSpace(thesis) == "" {
		return mcp.NewToolResultError("'thesis' is required"), nil
	}

	proc, err := t.engine.SetThesis(req.GetString("process_id", ""), thesis, stringListArg(req, "evidence"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Thesis set\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", proc.Topic)
	fmt.Fprintf(&b, "Thesis: %s\n", proc.Thesis.Content)
	if len(proc.Thesis.Evidence) > 0 {
		b.WriteString("Evidence:\n")
		for _, e := range proc.Thesis.Evidence {
			fmt.Fprintf(&b, "• %s\n", e)
		}
	}
	fmt.Fprintf(&b, "\nNext step: state the opposing position with %s.", proc.NextStep())

	return mcp.NewToolResultText(b.String()), nil
}

// DialecticalSetAntithesisTool handles dialectical_set_antithesis.
type DialecticalSetAntithesisTool struct {
	engine *dialectical.Engine
}

// NewDialecticalSetAntithesisTool creates the tool with the given engine.
func NewDialecticalSetAntithesisTool(engine *dialectical.Engine) *DialecticalSetAntithesisTool {
	return &DialecticalSetAntithesisTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalSetAntithesisTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_set_antithesis",
		mcp.WithDescription(
			"Set the antithesis of a dialectical process. Requires the thesis "+
				"to be set first.",
		),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("The process identifier."),
		),
		mcp.WithString("antithesis",
			mcp.Required(),
			mcp.Description("The position opposing the thesis."),
		),
		mcp.WithArray("evidence",
			mcp.Description("Supporting evidence for the antithesis."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the dialectical_set_antithesis tool call.
func (t *DialecticalSetAntithesisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	antithesis := req.GetString("antithesis", "")
	if strings.TrimSpace(antithesis) == "" {
		return mcp.NewToolResultError("'antithesis' is required"), nil
	}

	proc, err := t.engine.SetAntithesis(req.GetString("process_id", ""), antithesis, stringListArg(req, "evidence"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Antithesis set\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", proc.Topic)
	fmt.Fprintf(&b, "Thesis: %s\n", proc.Thesis.Content)
	fmt.Fprintf(&b, "Antithesis: %s\n", proc.Antithesis.Content)
	if len(proc.Antithesis.Evidence) > 0 {
		b.WriteString("Evidence:\n")
		for _, e := range proc.Antithesis.Evidence {
			fmt.Fprintf(&b, "• %s\n", e)
		}
	}
	fmt.Fprintf(&b, "\nNext step: integrate both positions with %s.", proc.NextStep())

	return mcp.NewToolResultText(b.String()), nil
}

// DialecticalCreateSynthesisTool handles dialectical_create_synthesis.
type DialecticalCreateSynthesisTool struct {
	engine *dialectical.Engine
}

// NewDialecticalCreateSynthesisTool creates the tool with the given engine.
func NewDialecticalCreateSynthesisTool(engine *dialectical.Engine) *DialecticalCreateSynthesisTool {
	return &DialecticalCreateSynthesisTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalCreateSynthesisTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_create_synthesis",
		mcp.WithDescription(
			"Create the synthesis that integrates thesis and antithesis, "+
				"completing the process. Requires both positions to be set.",
		),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("The process identifier."),
		),
		mcp.WithString("synthesis",
			mcp.Required(),
			mcp.Description("The integrated position."),
		),
		mcp.WithString("reasoning",
			mcp.Description("Why this integration resolves the opposition."),
		),
	)
}

// Handle processes the dialectical_create_synthesis tool call.
func (t *DialecticalCreateSynthesisTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	synthesis := req.GetString("synthesis", "")
	if strings.TrimSpace(synthesis) == "" {
		return mcp.NewToolResultError("'synthesis' is required"), nil
	}

	proc, err := t.engine.CreateSynthesis(req.GetString("process_id", ""), synthesis, req.GetString("reasoning", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Dialectical process completed\n\n")
	fmt.Fprintf(&b, "Topic: %s\n", proc.Topic)
	fmt.Fprintf(&b, "Thesis: %s\n", proc.Thesis.Content)
	fmt.Fprintf(&b, "Antithesis: %s\n", proc.Antithesis.Content)
	fmt.Fprintf(&b, "Synthesis: %s\n", proc.Synthesis.Content)
	if proc.Reasoning != "" {
		fmt.Fprintf(&b, "\nReasoning for the integration: %s\n", proc.Reasoning)
	}
	b.WriteString("\nOutcomes of the dialectical process:\n")
	b.WriteString("• The problem was examined from multiple perspectives\n")
	b.WriteString("• Opposing views were integrated into a higher understanding\n")
	b.WriteString("• New perspectives and solutions were derived")

	return mcp.NewToolResultText(b.String()), nil
}

// DialecticalAnalyzeContradictionTool handles
// dialectical_analyze_contradiction. Stateless: nothing is stored.
type DialecticalAnalyzeContradictionTool struct{}

// NewDialecticalAnalyzeContradictionTool creates the tool.
func NewDialecticalAnalyzeContradictionTool() *DialecticalAnalyzeContradictionTool {
	return &DialecticalAnalyzeContradictionTool{}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalAnalyzeContradictionTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_analyze_contradiction",
		mcp.WithDescription(
			"Analyze two contradictory positions on a topic and suggest how "+
				"to approach a dialectical integration. Advisory only; use "+
				"dialectical_start_process to run the formal process.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The disputed topic."),
		),
		mcp.WithString("position_a",
			mcp.Required(),
			mcp.Description("The first position."),
		),
		mcp.WithString("position_b",
			mcp.Required(),
			mcp.Description("The second, conflicting position."),
		),
	)
}

// Handle processes the dialectical_analyze_contradiction tool call.
func (t *DialecticalAnalyzeContradictionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	posA := req.GetString("position_a", "")
	posB := req.GetString("position_b", "")
	if topic == "" || posA == "" || posB == "" {
		return mcp.NewToolResultError("'topic', 'position_a', and 'position_b' are required"), nil
	}

	var b strings.Builder
	b.WriteString("Contradiction analysis and integration proposal\n\n")
	fmt.Fprintf(&b, "Topic: %s\n\n", topic)
	fmt.Fprintf(&b, "Position A: %s\n", posA)
	fmt.Fprintf(&b, "Position B: %s\n\n", posB)

	b.WriteString("Analysis of the contradiction:\n")
	b.WriteString("• On the surface these positions appear opposed\n")
	b.WriteString("• Each may be weighting different aspects or values\n")
	b.WriteString("• The assumptions and contexts underneath both need examining\n\n")

	b.WriteString("Guidelines toward integration:\n")
	b.WriteString("1. Identify the values and goals behind both positions\n")
	b.WriteString("2. Find common ground and complementary elements\n")
	b.WriteString("3. Reframe the problem from a higher vantage point\n")
	b.WriteString("4. Consider switching between them by time or context\n")
	b.WriteString("5. Search for a third way or creative resolution\n\n")

	b.WriteString("Recommended dialectical approach:\n")
	b.WriteString("• Start a formal process with dialectical_start_process\n")
	b.WriteString("• Set position A as the thesis\n")
	b.WriteString("• Develop position B as the antithesis\n")
	b.WriteString("• Build a synthesis that integrates both")

	return mcp.NewToolResultText(b.String()), nil
}

// DialecticalGetProcessTool handles dialectical_get_process.
type DialecticalGetProcessTool struct {
	engine *dialectical.Engine
}

// NewDialecticalGetProcessTool creates the tool with the given engine.
func NewDialecticalGetProcessTool(engine *dialectical.Engine) *DialecticalGetProcessTool {
	return &DialecticalGetProcessTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalGetProcessTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_get_process",
		mcp.WithDescription("Show the current state of a dialectical process."),
		mcp.WithString("process_id",
			mcp.Required(),
			mcp.Description("The process identifier."),
		),
	)
}

// Handle processes the dialectical_get_process tool call.
func (t *DialecticalGetProcessTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	proc, err := t.engine.Get(req.GetString("process_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dialectical process status (ID: %s)\n\n", proc.ID)
	fmt.Fprintf(&b, "Topic: %s\n", proc.Topic)
	if proc.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", proc.Context)
	}
	fmt.Fprintf(&b, "Started: %s\n", proc.CreatedAt.Format("2006-01-02 15:04:05"))
	if proc.CompletedAt != nil {
		fmt.Fprintf(&b, "Completed: %s\n", proc.CompletedAt.Format("2006-01-02 15:04:05"))
	}

	b.WriteString("\nProgress:\n")
	writePosition(&b, "Thesis", proc.Thesis)
	writePosition(&b, "Antithesis", proc.Antithesis)
	writePosition(&b, "Synthesis", proc.Synthesis)

	if next := proc.NextStep(); next != "" {
		fmt.Fprintf(&b, "\nNext step: %s.", next)
	} else {
		b.WriteString("\n✅ The process is complete.")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func writePosition(b *strings.Builder, label string, pos *dialectical.Position) {
	if pos != nil {
		fmt.Fprintf(b, "✓ %s: %s\n", label, pos.Content)
	} else {
		fmt.Fprintf(b, "⏳ %s: not set\n", label)
	}
}

// DialecticalListProcessesTool handles dialectical_list_processes.
type DialecticalListProcessesTool struct {
	engine *dialectical.Engine
}

// NewDialecticalListProcessesTool creates the tool with the given engine.
func NewDialecticalListProcessesTool(engine *dialectical.Engine) *DialecticalListProcessesTool {
	return &DialecticalListProcessesTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *DialecticalListProcessesTool) Definition() mcp.Tool {
	return mcp.NewTool("dialectical_list_processes",
		mcp.WithDescription("List all dialectical processes with their status."),
	)
}

// Handle processes the dialectical_list_processes tool call.
func (t *DialecticalListProcessesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	processes := t.engine.List()
	if len(processes) == 0 {
		return mcp.NewToolResultText("There are no dialectical processes in progress."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Dialectical processes (%d)\n\n", len(processes))
	for _, proc := range processes {
		status := "in progress"
		if proc.Completed() {
			status = "completed"
		}
		fmt.Fprintf(&b, "• ID: %s\n", proc.ID)
		fmt.Fprintf(&b, "  Topic: %s\n", proc.Topic)
		fmt.Fprintf(&b, "  Status: %s\n", status)
		fmt.Fprintf(&b, "  Started: %s\n", proc.CreatedAt.Format("2006-01-02 15:04:05"))
		if proc.CompletedAt != nil {
			fmt.Fprintf(&b, "  Completed: %s\n", proc.CompletedAt.Format("2006-01-02 15:04:05"))
		}
		b.WriteString("\n")
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
