package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/sequential"
)

// SequentialThinkingTool handles sequential_thinking. Unlike the other
// tools it answers with JSON, and each recorded thought is also drawn
// to stderr unless thought logging is disabled.
type SequentialThinkingTool struct {
	log      *sequential.Log
	renderer *sequential.Renderer
}

// NewSequentialThinkingTool creates the tool with the given log and
// renderer.
func NewSequentialThinkingTool(log *sequential.Log, renderer *sequential.Renderer) *SequentialThinkingTool {
	return &SequentialThinkingTool{log: log, renderer: renderer}
}

// Definition returns the MCP tool definition for registration.
func (t *SequentialThinkingTool) Definition() mcp.Tool {
	return mcp.NewTool("sequential_thinking",
		mcp.WithDescription(
			"A tool for dynamic and reflective problem-solving through a "+
				"running log of numbered thoughts. Thoughts can revise earlier "+
				"ones, branch into alternatives, and extend past the originally "+
				"estimated total. Set next_thought_needed to false only when "+
				"the chain is truly done.",
		),
		mcp.WithString("thought",
			mcp.Required(),
			mcp.Description("The current thinking step."),
		),
		mcp.WithNumber("thought_number",
			mcp.Required(),
			mcp.Description("Current thought number, starting at 1."),
		),
		mcp.WithNumber("total_thoughts",
			mcp.Required(),
			mcp.Description("Current estimate of thoughts needed. Raised automatically if passed."),
		),
		mcp.WithBoolean("next_thought_needed",
			mcp.Required(),
			mcp.Description("Whether another thought is needed after this one."),
		),
		mcp.WithBoolean("is_revision",
			mcp.Description("Whether this thought revises an earlier one."),
		),
		mcp.WithNumber("revises_thought",
			mcp.Description("The thought number being revised."),
		),
		mcp.WithNumber("branch_from_thought",
			mcp.Description("The thought number this branch starts from."),
		),
		mcp.WithString("branch_id",
			mcp.Description("Identifier of the branch this thought belongs to."),
		),
		mcp.WithBoolean("needs_more_thoughts",
			mcp.Description("Signal that more thoughts are needed than estimated."),
		),
	)
}

// Handle processes the sequential_thinking tool call.
func (t *SequentialThinkingTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	thought := sequential.Thought{
		Thought:  req.GetString("thought", ""),
		BranchID: req.GetString("branch_id", ""),
	}
	thought.ThoughtNumber, _ = intArg(req, "thought_number")
	thought.TotalThoughts, _ = intArg(req, "total_thoughts")

	next, hasNext := boolArg(req, "next_thought_needed")
	thought.NextThoughtNeeded = next
	thought.IsRevision, _ = boolArg(req, "is_revision")
	thought.RevisesThought, _ = intArg(req, "revises_thought")
	thought.BranchFromThought, _ = intArg(req, "branch_from_thought")
	thought.NeedsMoreThoughts, _ = boolArg(req, "needs_more_thoughts")

	result, err := t.log.Record(thought, hasNext)
	if err != nil {
		payload, merr := json.MarshalIndent(sequential.ErrorResult{
			Error:  err.Error(),
			Status: "failed",
		}, "", "  ")
		if merr != nil {
			return nil, fmt.Errorf("encoding error result: %w", merr)
		}
		return mcp.NewToolResultError(string(payload)), nil
	}

	// Record applied the totalThoughts raise; render the stored view.
	thought.TotalThoughts = result.TotalThoughts
	t.renderer.Render(thought)

	payload, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding result: %w", err)
	}
	return mcp.NewToolResultText(string(payload)), nil
}
