package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/logical"
)

// LogicalBuildArgumentTool handles logical_build_argument.
type LogicalBuildArgumentTool struct {
	engine *logical.Engine
}

// NewLogicalBuildArgumentTool creates the tool with the given engine.
func NewLogicalBuildArgumentTool(engine *logical.Engine) *LogicalBuildArgumentTool {
	return &LogicalBuildArgumentTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *LogicalBuildArgumentTool) Definition() mcp.Tool {
	return mcp.NewTool("logical_build_argument",
		mcp.WithDescription(
			"Build a logical argument from premises to a conclusion. The "+
				"argument is classified (deductive, inductive, abductive), its "+
				"structure identified, and its validity and soundness assessed.",
		),
		mcp.WithArray("premises",
			mcp.Required(),
			mcp.Description("The premises of the argument."),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("conclusion",
			mcp.Required(),
			mcp.Description("The conclusion drawn from the premises."),
		),
	)
}

// Handle processes the logical_build_argument tool call.
func (t *LogicalBuildArgumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	premises := stringListArg(req, "premises")
	conclusion := req.GetString("conclusion", "")
	if len(premises) == 0 || strings.TrimSpace(conclusion) == "" {
		return mcp.NewToolResultError("'premises' and 'conclusion' are required"), nil
	}

	a := t.engine.BuildArgument(premises, conclusion)

	var b strings.Builder
	fmt.Fprintf(&b, "Logical argument analysis (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Argument type: %s\n", a.Type)
	fmt.Fprintf(&b, "Logical structure: %s\n\n", a.Structure)

	b.WriteString("Premises:\n")
	for i, p := range a.Premises {
		fmt.Fprintf(&b, "  %d. %s\n", i+1, p)
	}
	fmt.Fprintf(&b, "\nConclusion: %s\n\n", a.Conclusion)
	fmt.Fprintf(&b, "Validity: %s\n", a.Validity)
	fmt.Fprintf(&b, "Soundness: %s\n", a.Soundness)

	if len(a.Notes) > 0 {
		b.WriteString("\nAnalysis notes:\n")
		for _, n := range a.Notes {
			fmt.Fprintf(&b, "• %s\n", n)
		}
	}

	b.WriteString("\nPoints for rigorous reasoning:\n")
	b.WriteString("• Verify the truth of each premise carefully\n")
	b.WriteString("• Check for leaps in the logic\n")
	b.WriteString("• Look for counterexamples\n")
	b.WriteString("• Consider hidden premises")

	return mcp.NewToolResultText(b.String()), nil
}

// LogicalFindCausalityTool handles logical_find_causality.
type LogicalFindCausalityTool struct {
	engine *logical.Engine
}

// NewLogicalFindCausalityTool creates the tool with the given engine.
func NewLogicalFindCausalityTool(engine *logical.Engine) *LogicalFindCausalityTool {
	return &LogicalFindCausalityTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *LogicalFindCausalityTool) Definition() mcp.Tool {
	return mcp.NewTool("logical_find_causality",
		mcp.WithDescription(
			"Analyze a situation for cause-and-effect relationships: primary "+
				"and secondary causes, intervening variables, and identified "+
				"causal links.",
		),
		mcp.WithString("situation",
			mcp.Required(),
			mcp.Description("The situation to analyze."),
		),
		mcp.WithArray("factors",
			mcp.Description("Candidate contributing factors, if known."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the logical_find_causality tool call.
func (t *LogicalFindCausalityTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	situation := req.GetString("situation", "")
	if strings.TrimSpace(situation) == "" {
		return mcp.NewToolResultError("'situation' is required"), nil
	}

	a := t.engine.FindCausality(situation, stringListArg(req, "factors"))

	var b strings.Builder
	fmt.Fprintf(&b, "Causal analysis (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Situation: %s\n\n", a.Situation)

	if len(a.PrimaryCauses) > 0 {
		b.WriteString("Primary causes:\n")
		for _, c := range a.PrimaryCauses {
			fmt.Fprintf(&b, "🎯 %s\n", c)
		}
		b.WriteString("\n")
	}
	if len(a.SecondaryCauses) > 0 {
		b.WriteString("Secondary causes:\n")
		for _, c := range a.SecondaryCauses {
			fmt.Fprintf(&b, "📍 %s\n", c)
		}
		b.WriteString("\n")
	}
	if len(a.Intervening) > 0 {
		b.WriteString("Intervening variables:\n")
		for _, v := range a.Intervening {
			fmt.Fprintf(&b, "🔗 %s\n", v)
		}
		b.WriteString("\n")
	}
	if len(a.Links) > 0 {
		b.WriteString("Identified causal links:\n")
		for _, l := range a.Links {
			fmt.Fprintf(&b, "• %s leads to %s (%s)\n", l.Cause, l.Effect, l.Relation)
		}
		b.WriteString("\n")
	}
	if len(a.Notes) > 0 {
		b.WriteString("Analysis notes:\n")
		for _, n := range a.Notes {
			fmt.Fprintf(&b, "• %s\n", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("Points for causal analysis:\n")
	b.WriteString("• Distinguish correlation from causation\n")
	b.WriteString("• Check the time order: causes precede effects\n")
	b.WriteString("• Consider third variables\n")
	b.WriteString("• Consider compound causes\n")
	b.WriteString("• Consider reverse causation")

	return mcp.NewToolResultText(b.String()), nil
}
