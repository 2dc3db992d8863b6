package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/mece"
)

// MECEAnalyzeCategoriesTool handles mece_analyze_categories.
type MECEAnalyzeCategoriesTool struct {
	engine *mece.Engine
}

// NewMECEAnalyzeCategoriesTool creates the tool with the given engine.
func NewMECEAnalyzeCategoriesTool(engine *mece.Engine) *MECEAnalyzeCategoriesTool {
	return &MECEAnalyzeCategoriesTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *MECEAnalyzeCategoriesTool) Definition() mcp.Tool {
	return mcp.NewTool("mece_analyze_categories",
		mcp.WithDescription(
			"Check a category breakdown against the MECE principle: detect "+
				"overlapping categories and gaps in coverage, and suggest "+
				"improvements.",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("What the categories are breaking down."),
		),
		mcp.WithArray("categories",
			mcp.Required(),
			mcp.Description("The category names to evaluate."),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the mece_analyze_categories tool call.
func (t *MECEAnalyzeCategoriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	categories := stringListArg(req, "categories")
	if strings.TrimSpace(topic) == "" || len(categories) == 0 {
		return mcp.NewToolResultError("'topic' and 'categories' are required"), nil
	}

	a := t.engine.AnalyzeCategories(topic, categories)

	var b strings.Builder
	fmt.Fprintf(&b, "MECE analysis (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Topic: %s\n\n", a.Topic)

	b.WriteString("Provided categories:\n")
	for i, name := range a.Input {
		fmt.Fprintf(&b, "%d. %s\n", i+1, name)
	}
	fmt.Fprintf(&b, "\nVerdict: %s\n\n", a.Violation)

	if len(a.Overlaps) > 0 {
		b.WriteString("🚨 Overlaps:\n")
		for _, o := range a.Overlaps {
			fmt.Fprintf(&b, "• %q and %q likely overlap\n", o.First, o.Second)
		}
		b.WriteString("\n")
	}
	if len(a.Gaps) > 0 {
		b.WriteString("⚠️ Coverage gaps:\n")
		for _, g := range a.Gaps {
			fmt.Fprintf(&b, "• %q appears to be missing\n", g)
		}
		b.WriteString("\n")
	}
	if len(a.Suggestions) > 0 {
		b.WriteString("Improvement suggestions:\n")
		for _, s := range a.Suggestions {
			fmt.Fprintf(&b, "• %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(a.Notes) > 0 {
		b.WriteString("Analysis notes:\n")
		for _, n := range a.Notes {
			fmt.Fprintf(&b, "• %s\n", n)
		}
	}

	return mcp.NewToolResultText(b.String()), nil
}

// MECECreateStructureTool handles mece_create_structure.
type MECECreateStructureTool struct {
	engine *mece.Engine
}

// NewMECECreateStructureTool creates the tool with the given engine.
func NewMECECreateStructureTool(engine *mece.Engine) *MECECreateStructureTool {
	return &MECECreateStructureTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *MECECreateStructureTool) Definition() mcp.Tool {
	return mcp.NewTool("mece_create_structure",
		mcp.WithDescription(
			"Propose a MECE category structure for a topic using a standard "+
				"framework: 4P, 3C, SWOT, timeline, internal-external, or auto "+
				"(picked from the topic).",
		),
		mcp.WithString("topic",
			mcp.Required(),
			mcp.Description("The topic to structure."),
		),
		mcp.WithString("framework",
			mcp.Description("The framework to apply. Defaults to auto."),
		),
	)
}

// Handle processes the mece_create_structure tool call.
func (t *MECECreateStructureTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	topic := req.GetString("topic", "")
	if strings.TrimSpace(topic) == "" {
		return mcp.NewToolResultError("'topic' is required"), nil
	}

	a := t.engine.CreateStructure(topic, req.GetString("framework", "auto"))

	var b strings.Builder
	fmt.Fprintf(&b, "MECE structure proposal (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Topic: %s\n", a.Topic)
	fmt.Fprintf(&b, "Framework: %s\n\n", a.Framework)

	b.WriteString("Proposed structure:\n")
	for i, c := range a.Categories {
		fmt.Fprintf(&b, "%d. %s\n", i+1, c.Name)
		if c.Description != "" {
			fmt.Fprintf(&b, "   Description: %s\n", c.Description)
		}
		if len(c.Items) > 0 {
			fmt.Fprintf(&b, "   Likely elements: %s\n", strings.Join(c.Items, ", "))
		}
	}

	if len(a.Notes) > 0 {
		b.WriteString("\nAnalysis notes:\n")
		for _, n := range a.Notes {
			fmt.Fprintf(&b, "• %s\n", n)
		}
	}

	b.WriteString("\nPoints for applying MECE:\n")
	b.WriteString("• Check that no categories overlap\n")
	b.WriteString("• Verify the whole is covered\n")
	b.WriteString("• Keep category granularity consistent\n")
	b.WriteString("• Consider hierarchy where the purpose calls for it")

	return mcp.NewToolResultText(b.String()), nil
}
