// Package prompts implements MCP prompt handlers for the thinking
// framework toolkit.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ExplorePrompt handles the think-explore MCP prompt. It guides the AI
// to pick the right thinking framework for a problem and start it.
type ExplorePrompt struct{}

// NewExplorePrompt creates an ExplorePrompt.
func NewExplorePrompt() *ExplorePrompt {
	return &ExplorePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ExplorePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("think-explore",
		mcp.WithPromptDescription(
			"Work through a problem with a structured thinking framework. "+
				"Picks the framework that fits the problem (step-by-step planning, "+
				"root cause analysis, creative ideation, and more) and starts it.",
		),
		mcp.WithArgument("problem",
			mcp.ArgumentDescription("The problem or question to think through"),
		),
		mcp.WithArgument("framework",
			mcp.ArgumentDescription(
				"Force a specific framework: stepwise, critical, logical, dialectical, five_whys, mece, scamper, or sequential. Default: let the AI choose",
			),
		),
	)
}

// Handle processes the think-explore prompt request.
func (p *ExplorePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	problem := "my problem"
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["problem"]; ok && v != "" {
			problem = v
		}
	}

	framework := ""
	if args := req.Params.Arguments; args != nil {
		if v, ok := args["framework"]; ok && v != "" {
			framework = v
		}
	}

	frameworkInstruction := "1. Pick the framework that fits the problem (see the framework guide in the server instructions)\n"
	if framework != "" {
		frameworkInstruction = fmt.Sprintf("1. Use the %s framework\n", framework)
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Explore: %s", problem),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want to think through the following problem with a structured framework:\n\n"+
						"%s\n\n"+
						"Please:\n"+
						"%s"+
						"2. Start the framework with its start tool, passing my problem\n"+
						"3. Walk me through each step, asking for my input where the framework needs it\n"+
						"4. When the framework completes, summarize what we learned and suggest next actions",
					problem, frameworkInstruction,
				)),
			},
		},
	}, nil
}
