package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/critical"
)

// CriticalAnalyzeClaimTool handles critical_analyze_claim.
type CriticalAnalyzeClaimTool struct {
	engine *critical.Engine
}

// NewCriticalAnalyzeClaimTool creates the tool with the given engine.
func NewCriticalAnalyzeClaimTool(engine *critical.Engine) *CriticalAnalyzeClaimTool {
	return &CriticalAnalyzeClaimTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *CriticalAnalyzeClaimTool) Definition() mcp.Tool {
	return mcp.NewTool("critical_analyze_claim",
		mcp.WithDescription(
			"Critically analyze a claim: classify its source, list strengths "+
				"and weaknesses of the phrasing, pose verification questions, and "+
				"score overall reliability.",
		),
		mcp.WithString("claim",
			mcp.Required(),
			mcp.Description("The claim to analyze."),
		),
		mcp.WithString("source",
			mcp.Description("Where the claim comes from (URL or description)."),
		),
	)
}

// Handle processes the critical_analyze_claim tool call.
func (t *CriticalAnalyzeClaimTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	claim := req.GetString("claim", "")
	if strings.TrimSpace(claim) == "" {
		return mcp.NewToolResultError("'claim' is required"), nil
	}

	a := t.engine.AnalyzeClaim(claim, req.GetString("source", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "Claim analysis (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Claim: %s\n", a.Claim)
	if a.Source != "" {
		fmt.Fprintf(&b, "Source: %s\n", a.Source)
	}
	fmt.Fprintf(&b, "Source type: %s\n", a.SourceType)
	fmt.Fprintf(&b, "Reliability: %s\n\n", a.Reliability)

	if len(a.Strengths) > 0 {
		b.WriteString("Strengths:\n")
		for _, s := range a.Strengths {
			fmt.Fprintf(&b, "• %s\n", s)
		}
		b.WriteString("\n")
	}
	if len(a.Weaknesses) > 0 {
		b.WriteString("Weaknesses:\n")
		for _, w := range a.Weaknesses {
			fmt.Fprintf(&b, "• %s\n", w)
		}
		b.WriteString("\n")
	}
	b.WriteString("Questions to verify:\n")
	for _, q := range a.Questions {
		fmt.Fprintf(&b, "• %s\n", q)
	}

	return mcp.NewToolResultText(b.String()), nil
}

// CriticalIdentifyBiasTool handles critical_identify_bias.
type CriticalIdentifyBiasTool struct {
	engine *critical.Engine
}

// NewCriticalIdentifyBiasTool creates the tool with the given engine.
func NewCriticalIdentifyBiasTool(engine *critical.Engine) *CriticalIdentifyBiasTool {
	return &CriticalIdentifyBiasTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *CriticalIdentifyBiasTool) Definition() mcp.Tool {
	return mcp.NewTool("critical_identify_bias",
		mcp.WithDescription(
			"Scan content for cognitive biases (confirmation bias, appeal to "+
				"authority, bandwagon effect) and logical fallacies, and recommend "+
				"countermeasures.",
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The content to scan for biases."),
		),
	)
}

// Handle processes the critical_identify_bias tool call.
func (t *CriticalIdentifyBiasTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	content := req.GetString("content", "")
	if strings.TrimSpace(content) == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	a := t.engine.IdentifyBias(content)

	var b strings.Builder
	fmt.Fprintf(&b, "Bias analysis (ID: %s)\n\n", a.ID)

	if len(a.Biases) > 0 {
		b.WriteString("Detected biases:\n")
		for _, f := range a.Biases {
			fmt.Fprintf(&b, "• %s: %s\n", f.Bias, f.Explanation)
		}
		b.WriteString("\n")
	}
	if len(a.Fallacies) > 0 {
		b.WriteString("Detected fallacies:\n")
		for _, f := range a.Fallacies {
			fmt.Fprintf(&b, "• %s\n", f)
		}
		b.WriteString("\n")
	}
	if len(a.Biases) == 0 && len(a.Fallacies) == 0 {
		b.WriteString("No obvious biases or fallacies were detected.\n\n")
	}

	b.WriteString("Recommendations:\n")
	for _, r := range a.Recommendations {
		fmt.Fprintf(&b, "• %s\n", r)
	}

	return mcp.NewToolResultText(b.String()), nil
}
