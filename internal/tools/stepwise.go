package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/yuyat/thoughtflow/internal/stepwise"
)

// StepwiseCreatePlanTool handles stepwise_create_plan.
type StepwiseCreatePlanTool struct {
	engine *stepwise.Engine
}

// NewStepwiseCreatePlanTool creates the tool with the given engine.
func NewStepwiseCreatePlanTool(engine *stepwise.Engine) *StepwiseCreatePlanTool {
	return &StepwiseCreatePlanTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *StepwiseCreatePlanTool) Definition() mcp.Tool {
	return mcp.NewTool("stepwise_create_plan",
		mcp.WithDescription(
			"Break a problem into a step-by-step execution plan. "+
				"The plan is generated from the problem statement and returned with "+
				"numbered steps, each with a description and an expected outcome. "+
				"Execute steps one at a time with stepwise_execute_step.",
		),
		mcp.WithString("problem",
			mcp.Required(),
			mcp.Description("The problem to break down into steps."),
		),
		mcp.WithString("context",
			mcp.Description("Optional background information for the plan."),
		),
	)
}

// Handle processes the stepwise_create_plan tool call.
func (t *StepwiseCreatePlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	problem := req.GetString("problem", "")
	if strings.TrimSpace(problem) == "" {
		return mcp.NewToolResultError("'problem' is required"), nil
	}

	plan := t.engine.CreatePlan(problem, req.GetString("context", ""))

	var b strings.Builder
	fmt.Fprintf(&b, "Step-by-step plan created (ID: %s)\n\n", plan.ID)
	fmt.Fprintf(&b, "Problem: %s\n", plan.Problem)
	if plan.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", plan.Context)
	}
	b.WriteString("\nSteps:\n")
	for _, step := range plan.Steps {
		fmt.Fprintf(&b, "%d. %s\n", step.Number, step.Description)
		fmt.Fprintf(&b, "   Expected outcome: %s\n", step.ExpectedOutcome)
	}
	fmt.Fprintf(&b, "\nExecute each step with stepwise_execute_step, passing plan_id %q and the step number.", plan.ID)

	return mcp.NewToolResultText(b.String()), nil
}

// StepwiseExecuteStepTool handles stepwise_execute_step.
type StepwiseExecuteStepTool struct {
	engine *stepwise.Engine
}

// NewStepwiseExecuteStepTool creates the tool with the given engine.
func NewStepwiseExecuteStepTool(engine *stepwise.Engine) *StepwiseExecuteStepTool {
	return &StepwiseExecuteStepTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *StepwiseExecuteStepTool) Definition() mcp.Tool {
	return mcp.NewTool("stepwise_execute_step",
		mcp.WithDescription(
			"Record the result of executing one step of a plan. The step is "+
				"marked completed; executing it again overwrites the earlier result. "+
				"When the last step completes, the plan is reported as finished.",
		),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("The plan identifier returned by stepwise_create_plan."),
		),
		mcp.WithNumber("step_number",
			mcp.Required(),
			mcp.Description("The number of the step that was executed."),
		),
		mcp.WithString("result",
			mcp.Required(),
			mcp.Description("What actually happened when the step was carried out."),
		),
	)
}

// Handle processes the stepwise_execute_step tool call.
func (t *StepwiseExecuteStepTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	planID := req.GetString("plan_id", "")
	stepNumber, ok := intArg(req, "step_number")
	if planID == "" || !ok {
		return mcp.NewToolResultError("'plan_id' and 'step_number' are required"), nil
	}

	plan, step, err := t.engine.ExecuteStep(planID, stepNumber, req.GetString("result", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	done, total := plan.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "Step %d completed: %s\n", step.Number, step.Description)
	fmt.Fprintf(&b, "Result: %s\n\n", step.Result)
	fmt.Fprintf(&b, "Progress: %d/%d steps completed\n", done, total)

	if next := plan.NextPending(); next != nil {
		fmt.Fprintf(&b, "\nNext step: %d. %s\n", next.Number, next.Description)
		fmt.Fprintf(&b, "Expected outcome: %s", next.ExpectedOutcome)
	} else {
		b.WriteString("\nAll steps are completed. The plan is finished.")
	}

	return mcp.NewToolResultText(b.String()), nil
}

// StepwiseGetPlanTool handles stepwise_get_plan.
type StepwiseGetPlanTool struct {
	engine *stepwise.Engine
}

// NewStepwiseGetPlanTool creates the tool with the given engine.
func NewStepwiseGetPlanTool(engine *stepwise.Engine) *StepwiseGetPlanTool {
	return &StepwiseGetPlanTool{engine: engine}
}

// Definition returns the MCP tool definition for registration.
func (t *StepwiseGetPlanTool) Definition() mcp.Tool {
	return mcp.NewTool("stepwise_get_plan",
		mcp.WithDescription(
			"Show the current state of a plan: every step with its status, "+
				"recorded results, and overall progress.",
		),
		mcp.WithString("plan_id",
			mcp.Required(),
			mcp.Description("The plan identifier."),
		),
	)
}

// Handle processes the stepwise_get_plan tool call.
func (t *StepwiseGetPlanTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	plan, err := t.engine.Get(req.GetString("plan_id", ""))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	done, total := plan.Progress()

	var b strings.Builder
	fmt.Fprintf(&b, "Plan status (ID: %s)\n\n", plan.ID)
	fmt.Fprintf(&b, "Problem: %s\n", plan.Problem)
	if plan.Context != "" {
		fmt.Fprintf(&b, "Context: %s\n", plan.Context)
	}
	fmt.Fprintf(&b, "Progress: %d/%d steps completed\n\n", done, total)

	for _, step := range plan.Steps {
		marker := "⏳"
		if step.Status == stepwise.StatusCompleted {
			marker = "✓"
		}
		fmt.Fprintf(&b, "%s %d. %s\n", marker, step.Number, step.Description)
		if step.Result != "" {
			fmt.Fprintf(&b, "   Result: %s\n", step.Result)
		}
	}

	if plan.CompletedAt != nil {
		b.WriteString("\nThe plan is finished.")
	} else if next := plan.NextPending(); next != nil {
		fmt.Fprintf(&b, "\nNext step: %d. %s", next.Number, next.Description)
	}

	return mcp.NewToolResultText(b.String()), nil
}
