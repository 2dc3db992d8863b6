// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it creates the framework engines and
// injects them into the tools, prompts, and resources that depend on
// them. No business logic lives here, only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/yuyat/thoughtflow/internal/critical"
	"github.com/yuyat/thoughtflow/internal/dialectical"
	"github.com/yuyat/thoughtflow/internal/fivewhys"
	"github.com/yuyat/thoughtflow/internal/logical"
	"github.com/yuyat/thoughtflow/internal/mece"
	"github.com/yuyat/thoughtflow/internal/prompts"
	"github.com/yuyat/thoughtflow/internal/resources"
	"github.com/yuyat/thoughtflow/internal/scamper"
	"github.com/yuyat/thoughtflow/internal/sequential"
	"github.com/yuyat/thoughtflow/internal/stepwise"
	"github.com/yuyat/thoughtflow/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// Every engine is in-memory and scoped to the server process: state
// lives for one session and is gone on restart.
func New() *server.MCPServer {
	// --- Create the framework engines ---

	stepwiseEngine := stepwise.NewEngine()
	criticalEngine := critical.NewEngine()
	logicalEngine := logical.NewEngine()
	dialecticalEngine := dialectical.NewEngine()
	whyEngine := fivewhys.NewEngine()
	meceEngine := mece.NewEngine()
	scamperEngine := scamper.NewEngine()

	thoughtLog := sequential.NewLog()
	thoughtRenderer := sequential.NewRenderer()

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"thoughtflow",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register stepwise tools ---

	createPlan := tools.NewStepwiseCreatePlanTool(stepwiseEngine)
	s.AddTool(createPlan.Definition(), createPlan.Handle)

	executeStep := tools.NewStepwiseExecuteStepTool(stepwiseEngine)
	s.AddTool(executeStep.Definition(), executeStep.Handle)

	getPlan := tools.NewStepwiseGetPlanTool(stepwiseEngine)
	s.AddTool(getPlan.Definition(), getPlan.Handle)

	// --- Register critical thinking tools ---

	analyzeClaim := tools.NewCriticalAnalyzeClaimTool(criticalEngine)
	s.AddTool(analyzeClaim.Definition(), analyzeClaim.Handle)

	identifyBias := tools.NewCriticalIdentifyBiasTool(criticalEngine)
	s.AddTool(identifyBias.Definition(), identifyBias.Handle)

	// --- Register logical thinking tools ---

	buildArgument := tools.NewLogicalBuildArgumentTool(logicalEngine)
	s.AddTool(buildArgument.Definition(), buildArgument.Handle)

	findCausality := tools.NewLogicalFindCausalityTool(logicalEngine)
	s.AddTool(findCausality.Definition(), findCausality.Handle)

	// --- Register dialectical tools ---

	dialecticalStart := tools.NewDialecticalStartTool(dialecticalEngine)
	s.AddTool(dialecticalStart.Definition(), dialecticalStart.Handle)

	setThesis := tools.NewDialecticalSetThesisTool(dialecticalEngine)
	s.AddTool(setThesis.Definition(), setThesis.Handle)

	setAntithesis := tools.NewDialecticalSetAntithesisTool(dialecticalEngine)
	s.AddTool(setAntithesis.Definition(), setAntithesis.Handle)

	createSynthesis := tools.NewDialecticalCreateSynthesisTool(dialecticalEngine)
	s.AddTool(createSynthesis.Definition(), createSynthesis.Handle)

	analyzeContradiction := tools.NewDialecticalAnalyzeContradictionTool()
	s.AddTool(analyzeContradiction.Definition(), analyzeContradiction.Handle)

	getProcess := tools.NewDialecticalGetProcessTool(dialecticalEngine)
	s.AddTool(getProcess.Definition(), getProcess.Handle)

	listProcesses := tools.NewDialecticalListProcessesTool(dialecticalEngine)
	s.AddTool(listProcesses.Definition(), listProcesses.Handle)

	// --- Register 5-Why tools ---

	whyStart := tools.NewWhyStartTool(whyEngine)
	s.AddTool(whyStart.Definition(), whyStart.Handle)

	whyAddAnswer := tools.NewWhyAddAnswerTool(whyEngine)
	s.AddTool(whyAddAnswer.Definition(), whyAddAnswer.Handle)

	whyGet := tools.NewWhyGetTool(whyEngine)
	s.AddTool(whyGet.Definition(), whyGet.Handle)

	whyList := tools.NewWhyListTool(whyEngine)
	s.AddTool(whyList.Definition(), whyList.Handle)

	// --- Register MECE tools ---

	analyzeCategories := tools.NewMECEAnalyzeCategoriesTool(meceEngine)
	s.AddTool(analyzeCategories.Definition(), analyzeCategories.Handle)

	createStructure := tools.NewMECECreateStructureTool(meceEngine)
	s.AddTool(createStructure.Definition(), createStructure.Handle)

	// --- Register SCAMPER tools ---

	startSession := tools.NewScamperStartSessionTool(scamperEngine)
	s.AddTool(startSession.Definition(), startSession.Handle)

	applyTechnique := tools.NewScamperApplyTechniqueTool(scamperEngine)
	s.AddTool(applyTechnique.Definition(), applyTechnique.Handle)

	evaluateIdeas := tools.NewScamperEvaluateIdeasTool(scamperEngine)
	s.AddTool(evaluateIdeas.Definition(), evaluateIdeas.Handle)

	getSession := tools.NewScamperGetSessionTool(scamperEngine)
	s.AddTool(getSession.Definition(), getSession.Handle)

	listSessions := tools.NewScamperListSessionsTool(scamperEngine)
	s.AddTool(listSessions.Definition(), listSessions.Handle)

	generateComprehensive := tools.NewScamperGenerateComprehensiveTool(scamperEngine)
	s.AddTool(generateComprehensive.Definition(), generateComprehensive.Handle)

	// --- Register the sequential thinking tool ---

	sequentialThinking := tools.NewSequentialThinkingTool(thoughtLog, thoughtRenderer)
	s.AddTool(sequentialThinking.Definition(), sequentialThinking.Handle)

	// --- Register prompts ---

	explorePrompt := prompts.NewExplorePrompt()
	s.AddPrompt(explorePrompt.Definition(), explorePrompt.Handle)

	reviewPrompt := prompts.NewReviewPrompt()
	s.AddPrompt(reviewPrompt.Definition(), reviewPrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(
		stepwiseEngine, criticalEngine, logicalEngine, dialecticalEngine,
		whyEngine, meceEngine, scamperEngine, thoughtLog,
	)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	return s
}

// serverInstructions returns the system instructions that tell the AI
// how to pick and drive the thinking frameworks.
func serverInstructions() string {
	return `You have access to thoughtflow, a structured thinking MCP server.

It provides eight thinking frameworks as tools. Each framework keeps its
state on the server for the lifetime of the session, so you can start a
process, do other work, and come back to it by ID.

## Choosing a framework

- stepwise_* — break a concrete problem into an executable plan and work
  it step by step. Use for "how do I do X" problems with a clear goal.
- critical_* — assess a claim's reliability or scan content for biases
  and fallacies. Use when evaluating information, not producing it.
- logical_* — build an argument from premises or map cause and effect in
  a situation. Use when the reasoning itself is the deliverable.
- dialectical_* — examine a topic through thesis, antithesis, and
  synthesis. Use for genuinely two-sided questions and tradeoffs.
- why_analysis_* — 5-Why root cause analysis. Use for "why did this
  happen" problems, especially recurring failures.
- mece_* — check a category breakdown for overlaps and gaps, or propose
  one from a standard framework. Use when structuring a problem space.
- scamper_* — generate and score ideas with the seven SCAMPER
  techniques. Use for open-ended "how could we improve X" questions.
- sequential_thinking — a running log of numbered thoughts that can be
  revised and branched. Use for exploratory reasoning that doesn't fit
  any of the above.

## How the tools work

These are THINKING tools, not knowledge tools. They structure and store
reasoning YOU produce:

1. Generate the substantive content yourself (answers, ideas, positions)
2. Call the tool with that content
3. The tool records it, advances the framework's state, and tells you
   the next step

Never pass placeholder text. Frameworks with multiple stages
(dialectical, 5-Why, stepwise) enforce their order: follow the "Next
step" hints in each response.

## Session state

- Multi-step frameworks return an ID in their start response — keep it
  and pass it to the follow-up tools
- why_analysis answers are final; a level cannot be re-answered
- dialectical processes require thesis before antithesis before synthesis
- The thoughtflow://status resource shows live counts of everything in
  progress

## Picking proactively

When the user is circling a decision, debugging a recurring problem, or
brainstorming, suggest the matching framework briefly and start it if
they agree. Do not force a framework onto simple questions.`
}
