package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/fivewhys"
)

// WhyStartTool handles why_analysis_start.
type WhyStartTool struct {
	engine *fivewhys.Engine
}

// NewWhyStartTool creates the tool with the given engine.
func NewWhyStartTool(engine *fivewhys.Engine) *WhyStartTool {
	return &WhyStartTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *WhyStartTool) Definition() mcp.Tool {
	return mcp.NewTool("why_analysis_start",
		mcp.WithDescription(
			"Start a 5-Why root cause analysis. The first why question is "+
				"generated from the problem statement; answer each level with "+
				"why_analysis_add_answer until all five levels are done.",
		),
		mcp.WithString("problem",
			mcp.Required(),
			mcp.Description("The problem whose root cause is being sought."),
		),
		mcp.WithString("context",
			mcp.Description("Optional background for the problem."),
		),
	)
}

// Handle processes the why_analysis_start tool call.
func (t *WhyStartTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	problem := req.GetString("problem", "")
	if strings.TrimSpace(problem) == "" {
		return mcp.NewToolResultError("'problem' is required"), nil
	}

	a := t.engine.Start(problem, req.GetString("context", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "5-Why analysis started (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Problem: %s\n", a.Problem)
	if a.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", a.Context)
	}
	fmt.Fprintf(&b, "\nLevel 0 question: %s\n\n", a.Whys[0].Question)
	fmt.Fprintf(&b, "Answer it with why_analysis_add_answer, passing analysis_id %q and level 0. "+
		"Each answer generates the next why, down to level %d.", a.ID, fivewhys.MaxLevels-1)

	return mcp.NewToolResultText(b.String()), nil
}

// WhyAddAnswerTool handles why_analysis_add_answer.
type WhyAddAnswerTool struct {
	engine *fivewhys.Engine
}

// NewWhyAddAnswerTool creates the tool with the given engine.
func NewWhyAddAnswerTool(engine *fivewhys.Engine) *WhyAddAnswerTool {
	return &WhyAddAnswerTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *WhyAddAnswerTool) Definition() mcp.Tool {
	return mcp.NewTool("why_analysis_add_answer",
		mcp.WithDescription(
			"Answer one level of a 5-Why analysis. Answers are final: a level "+
				"can only be answered once, and only the deepest unanswered level "+
				"has a question. Answering the last level completes the analysis.",
		),
		mcp.WithString("analysis_id",
			mcp.Required(),
			mcp.Description("The analysis identifier."),
		),
		mcp.WithNumber("level",
			mcp.Required(),
			mcp.Description("The level being answered (0 through 4)."),
		),
		mcp.WithString("answer",
			mcp.Required(),
			mcp.Description("The answer to that level's why question."),
		),
	)
}

// Handle processes the why_analysis_add_answer tool call.
func (t *WhyAddAnswerTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := req.GetString("analysis_id", "")
	level, ok := intArg(req, "level")
	answer := req.GetString("answer", "")
	if id == "" || !ok || strings.TrimSpace(answer) == "" {
		return mcp.NewToolResultError("'analysis_id', 'level', and 'answer' are required"), nil
	}

	a, next, err := t.engine.AddAnswer(id, level, answer)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Level %d answered\n\n", level)
	fmt.Fprintf(&b, "Question: %s\n", a.Whys[level].Question)
	fmt.Fprintf(&b, "Answer: %s\n\n", a.Whys[level].Answer)

	if next != nil {
		fmt.Fprintf(&b, "Level %d question: %s\n\n", next.Level, next.Question)
		fmt.Fprintf(&b, "Progress: %d/%d levels answered.", a.AnsweredCount(), fivewhys.MaxLevels)
	} else {
		b.WriteString("All five levels are answered. The analysis is complete.\n\n")
		b.WriteString("Causal chain:\n")
		fmt.Fprintf(&b, "Problem: %s\n", a.Problem)
		answers := a.Answers()
		for i, answer := range answers {
			fmt.Fprintf(&b, "%d. %s\n", i+1, answer)
		}
		fmt.Fprintf(&b, "\nLikely root cause: %s", answers[len(answers)-1])
	}

	return mcp.NewToolResultText(b.String()), nil
}

// WhyGetTool handles why_analysis_get.
type WhyGetTool struct {
	engine *fivewhys.Engine
}

// NewWhyGetTool creates the tool with the given engine.
func NewWhyGetTool(engine *fivewhys.Engine) *WhyGetTool {
	return &WhyGetTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *WhyGetTool) Definition() mcp.Tool {
	return mcp.NewTool("why_analysis_get",
		mcp.WithDescription("Show the current state of a 5-Why analysis."),
		mcp.WithString("analysis_id",
			mcp.Required(),
			mcp.Description("The analysis identifier."),
		),
	)
}

// Handle processes the why_analysis_get tool call.
func (t *WhyGetTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a, err := t.engine.Get(req.GetString("analysis_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "5-Why analysis (ID: %s)\n\n", a.ID)
	fmt.Fprintf(&b, "Problem: %s\n", a.Problem)
	if a.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", a.Context)
	}
	fmt.Fprintf(&b, "Status: %s\n", a.Status)
	fmt.Fprintf(&b, "Progress: %d/%d levels answered\n\n", a.AnsweredCount(), fivewhys.MaxLevels)

	for _, why := range a.Whys {
		fmt.Fprintf(&b, "Level %d: %s\n", why.Level, why.Question)
		if why.Answered {
			fmt.Fprintf(&b, "  Answer: %s\n", why.Answer)
		} else {
			b.WriteString("  Answer: (pending)\n")
		}
	}

	if frontier := a.Frontier(); frontier != nil {
		fmt.Fprintf(&b, "\nNext: answer level %d with why_analysis_add_answer.", frontier.Level)
	} else {
		b.WriteString("\nThe analysis is complete.")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// WhyListTool handles why_analysis_list.
type WhyListTool struct {
	engine *fivewhys.Engine
}

// NewWhyListTool creates the tool with the given engine.
func NewWhyListTool(engine *fivewhys.Engine) *WhyListTool {
	return &WhyListTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *WhyListTool) Definition() mcp.Tool {
	return mcp.NewTool("why_analysis_list",
		mcp.WithDescription("List all 5-Why analyses with their progress."),
	)
}

// Handle processes the why_analysis_list tool call.
func (t *WhyListTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	analyses := t.engine.List()
	if len(analyses) == 0 {
		return mcp.NewToolResultText("There are no 5-Why analyses yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "5-Why analyses (%d)\n\n", len(analyses))
	for _, a := range analyses {
		fmt.Fprintf(&b, "• ID: %s\n", a.ID)
		fmt.Fprintf(&b, "  Problem: %s\n", a.Problem)
		fmt.Fprintf(&b, "  Status: %s (%d/%d answered)\n\n", a.Status, a.AnsweredCount(), fivewhys.MaxLevels)
	}

	return mcp.NewToolResultText(strings.TrimRight(b.String(), "\n")), nil
}
