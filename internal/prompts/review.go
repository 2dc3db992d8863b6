package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ReviewPrompt handles the think-review MCP prompt.
// It instructs the AI to collect and present all in-progress thinking work.
type ReviewPrompt struct{}

// NewReviewPrompt creates a ReviewPrompt.
func NewReviewPrompt() *ReviewPrompt {
	return &ReviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ReviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("think-review",
		mcp.WithPromptDescription(
			"Review all thinking work in this session: open plans, analyses, "+
				"dialectical processes, and idea sessions, with what to do next "+
				"for each.",
		),
	)
}

// Handle processes the think-review prompt request.
func (p *ReviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Thinking session review",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please review my thinking work in this session.\n\n" +
						"1. Read the thoughtflow://status resource for the live counts\n" +
						"2. List anything in progress with dialectical_list_processes, why_analysis_list, and scamper_list_sessions\n" +
						"3. For each open item, tell me the next step to move it forward\n" +
						"4. If nothing is in progress, suggest a framework that fits what we've been discussing",
				),
			},
		},
	}, nil
}
